package codec

import (
	"io"

	"github.com/etfgo/letf/atomcache"
	"github.com/etfgo/letf/internal/options"
	"github.com/etfgo/letf/process"
	"github.com/etfgo/letf/term"
	"github.com/rs/zerolog"
)

// Encoder writes a single term to a byte sink as External Term Format,
// charging the configured process.Handle's reduction budget as it goes
// (§4.2).
type Encoder struct {
	w      io.Writer
	proc   process.Handle
	cache  *atomcache.Cache
	logger zerolog.Logger
}

// NewEncoder wraps w for writing a single ETF value. Defaults to
// process.Blocking(); use EncoderWithProcess/EncoderWithAtomCache/
// EncoderWithLogger to override.
func NewEncoder(w io.Writer, opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		w:      w,
		proc:   process.Blocking(),
		logger: zerolog.Nop(),
	}

	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// Encode writes VersionMagic followed by t's tagged wire encoding to e's
// writer, returning the number of bytes written.
func (e *Encoder) Encode(t term.Term) (int, error) {
	emitter := NewByteEmitter()
	traverse(t, emitter, e.proc)

	body := emitter.Bytes()
	out := make([]byte, 0, len(body)+1)
	out = append(out, VersionMagic)
	out = append(out, body...)

	n, err := e.w.Write(out)
	if err != nil {
		return n, err
	}

	return n, nil
}

// Encode is the package-level convenience wrapping NewEncoder+Encode for
// one-shot callers (the common path the root façade re-exports).
func Encode(w io.Writer, t term.Term, opts ...EncoderOption) (int, error) {
	e, err := NewEncoder(w, opts...)
	if err != nil {
		return 0, err
	}

	return e.Encode(t)
}
