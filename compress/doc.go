// Package compress implements the COMPRESSED envelope used by the ETF wire
// format (§4.1, tag `P` / 0x50):
//
//	u32 uncompressed_size (big-endian, informational)
//	zlib stream
//
// The zlib stream, once inflated, is itself a single internal term read to
// completion by a nested decoder instance. Unlike the teacher's
// multi-algorithm compress package (None/Zstd/S2/LZ4, chosen per time-series
// payload characteristics), the wire format here names exactly one
// algorithm, so this package exposes only ZlibCodec plus a pass-through
// NoOpCodec. The Compressor/Decompressor/Codec interface split is kept from
// the teacher. The codec package's COMPRESSED-envelope decoding calls
// ZlibCodec directly; NoOpCodec is not wired into it.
package compress
