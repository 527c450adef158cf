package codec

import (
	"github.com/etfgo/letf/atom"
	"github.com/etfgo/letf/atomcache"
	"github.com/etfgo/letf/internal/options"
	"github.com/etfgo/letf/process"
	"github.com/rs/zerolog"
)

// DecoderOption configures a Decoder. See NewDecoder.
type DecoderOption = options.Option[*Decoder]

// EncoderOption configures an Encoder. See NewEncoder.
type EncoderOption = options.Option[*Encoder]

// WithProcess sets the cooperative-scheduling handle a Decoder/Encoder
// charges reductions against. Defaults to process.Blocking().
func WithProcess(p process.Handle) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.proc = p
	})
}

// WithAtomTable sets the atom table atoms are interned into. Defaults to a
// fresh table per decoder.
func WithAtomTable(t *atom.Table) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.atoms = t
	})
}

// WithAtomCache sets the distribution atom cache. Required only when the
// input may carry a DIST_HEADER; a header encountered without one
// configured fails with errs.ErrNoAtomCache.
func WithAtomCache(c *atomcache.Cache) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.cache = c
	})
}

// WithDistAtomEncoding resolves Open Question (a): the source encoding used
// to interpret DIST_HEADER atom text when the session did not negotiate
// UTF8_ATOMS. Defaults to atom.Latin1.
func WithDistAtomEncoding(enc atom.Encoding) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.distAtomEncoding = enc
	})
}

// WithLogger stores a zerolog.Logger on the Decoder. The decoder itself
// emits no log events; suspension events are logged by a process handle
// built with process.YieldingWithLogger. Disabled (zerolog.Nop()) by default.
func WithLogger(logger zerolog.Logger) DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.logger = logger
	})
}

// EncoderWithProcess is the Encoder counterpart of WithProcess.
func EncoderWithProcess(p process.Handle) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.proc = p
	})
}

// EncoderWithAtomCache is the Encoder counterpart of WithAtomCache.
func EncoderWithAtomCache(c *atomcache.Cache) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.cache = c
	})
}

// EncoderWithLogger is the Encoder counterpart of WithLogger.
func EncoderWithLogger(logger zerolog.Logger) EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.logger = logger
	})
}
