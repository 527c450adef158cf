// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// This enables cleaner API design and improved performance for binary data operations.
//
// # Basic Usage
//
// The wire format this module implements (ETF) is big-endian for every
// multibyte integer field except bignum magnitude bytes, so codec always
// uses the big-endian engine:
//
//	import "github.com/etfgo/letf/endian"
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint32(buf, value)
//
// The one little-endian field of the wire format (bignum magnitude bytes)
// is converted by hand in the codec; GetLittleEndianEngine is not used by
// the codec and is exercised only by this package's tests.
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) provides approximately 30%
// better performance for appending operations compared to ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)  // ~30% faster
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...)  // Slower, extra allocation
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine, used for every ETF integer
// field except bignum magnitude bytes.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine. The codec does not
// call it; SMALL_BIG_EXT/LARGE_BIG_EXT magnitude bytes are reversed by hand.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
