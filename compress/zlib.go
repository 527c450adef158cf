package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec is the COMPRESSED envelope's only supported algorithm. The wire
// format names zlib specifically; klauspost's implementation is a drop-in,
// faster codec against the same standard interface.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec returns the zlib codec backing the `P` COMPRESSED tag.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress returns data deflated as a zlib stream.
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream previously produced by Compress (or by
// any other zlib-conformant writer, e.g. a peer implementation).
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
