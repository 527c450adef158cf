package codec

import (
	"io"

	"github.com/etfgo/letf/endian"
	"github.com/etfgo/letf/errs"
)

// wireEndian is the byte order of every ETF integer field except bignum
// magnitude bytes (§3.1, §4.1).
var wireEndian = endian.GetBigEndianEngine()

// byteSource is the minimal buffered-read surface the decoder needs. A
// *bufio.Reader (what NewDecoder wraps its io.Reader argument in) satisfies
// it, and so does a bytes.Reader; kept narrow so internal helpers can be
// unit-tested against a plain []byte source.
type byteSource interface {
	io.Reader
	io.ByteReader
}

func (d *Decoder) readByte() (byte, error) {
	b, err := d.src.ReadByte()
	if err != nil {
		return 0, &errs.IoError{Err: err}
	}

	return b, nil
}

func (d *Decoder) readFull(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.src, buf); err != nil {
		return nil, &errs.IoError{Err: err}
	}

	return buf, nil
}

func (d *Decoder) readU8() (uint8, error) {
	b, err := d.readByte()

	return uint8(b), err
}

func (d *Decoder) readU16() (uint16, error) {
	buf, err := d.readFull(2)
	if err != nil {
		return 0, err
	}

	return wireEndian.Uint16(buf), nil
}

func (d *Decoder) readU32() (uint32, error) {
	buf, err := d.readFull(4)
	if err != nil {
		return 0, err
	}

	return wireEndian.Uint32(buf), nil
}

func (d *Decoder) readU64() (uint64, error) {
	buf, err := d.readFull(8)
	if err != nil {
		return 0, err
	}

	return wireEndian.Uint64(buf), nil
}

func (d *Decoder) readI32() (int32, error) {
	v, err := d.readU32()

	return int32(v), err
}
