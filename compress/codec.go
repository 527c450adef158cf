package compress

// Compressor compresses a byte payload for the COMPRESSED envelope.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a COMPRESSED envelope payload back to its
// original bytes.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. The wire format names exactly one
// compressed envelope (zlib); ZlibCodec and NoOpCodec both satisfy Codec.
// The codec package always decodes the envelope with ZlibCodec and offers
// no way to substitute another Codec.
type Codec interface {
	Compressor
	Decompressor
}
