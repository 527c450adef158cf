package codec

import (
	"github.com/etfgo/letf/atomcache"
	"github.com/etfgo/letf/errs"
	"github.com/etfgo/letf/internal/bitreader"
	"github.com/etfgo/letf/term"
)

// readDistHeader implements §4.4: parses the atom-cache-ref vector for the
// message that follows and returns a term.Dist (whose Kind is KindNil)
// carrying the reference count. Decode hands that term.Dist back to its
// caller; the body term that follows the header is not read by the same
// call and stays unread in the source.
func (d *Decoder) readDistHeader() (term.Term, error) {
	n, err := d.readU8()
	if err != nil {
		return nil, err
	}

	d.msgRefs = atomcache.NewMessageRefs()

	if n == 0 {
		return term.Dist{NumRefs: 0}, nil
	}

	if d.cache == nil {
		return nil, errs.ErrNoAtomCache
	}

	numFlagBytes := int(n)/2 + 1
	flagBytes, err := d.readFull(numFlagBytes)
	if err != nil {
		return nil, err
	}

	longAtoms := longAtomsBit(flagBytes, int(n))

	br := bitreader.New(flagBytes)
	for range int(n) {
		newEntry, ok := br.ReadBit()
		if !ok {
			return nil, &errs.IoError{Err: errShortFlagBitstream}
		}
		segIdx, ok := br.ReadBits(3)
		if !ok {
			return nil, &errs.IoError{Err: errShortFlagBitstream}
		}

		internalSegIdx, err := d.readU8()
		if err != nil {
			return nil, err
		}

		slot := int(segIdx)<<8 | int(internalSegIdx)

		if newEntry == 1 {
			var atomLen int
			if longAtoms {
				v, err := d.readU16()
				if err != nil {
					return nil, err
				}
				atomLen = int(v)
			} else {
				v, err := d.readU8()
				if err != nil {
					return nil, err
				}
				atomLen = int(v)
			}
			raw, err := d.readFull(atomLen)
			if err != nil {
				return nil, err
			}

			h := d.atoms.Intern(d.distAtomEncoding, raw)
			if _, _, err := d.cache.Insert(slot, h); err != nil {
				return nil, err
			}
			if err := d.msgRefs.Add(atomcache.NewAtomRefNew(slot, h)); err != nil {
				return nil, err
			}
		} else {
			h, found, err := d.cache.Get(slot)
			if err != nil {
				return nil, err
			}
			if !found {
				return nil, errs.ErrAtomCacheNotFound
			}
			if err := d.msgRefs.Add(atomcache.NewAtomRef(slot, h)); err != nil {
				return nil, err
			}
		}
	}

	return term.Dist{NumRefs: int(n)}, nil
}

// longAtomsBit extracts the long_atoms bit: the low-order nibble of the last
// flag byte when n is even, the high-order nibble when n is odd (§4.4).
func longAtomsBit(flagBytes []byte, n int) bool {
	last := flagBytes[len(flagBytes)-1]
	if n%2 == 0 {
		return last&0x1 != 0
	}

	return last&0x10 != 0
}

var errShortFlagBitstream = shortFlagBitstreamError{}

type shortFlagBitstreamError struct{}

func (shortFlagBitstreamError) Error() string { return "distribution header: truncated flag bitstream" }
