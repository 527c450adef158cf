package codec

// sink is the shared output surface both concrete visitors write through:
// SizeEstimator only accumulates a byte count, ByteEmitter actually appends.
// Keeping tag-selection logic (encodeHeader, below) against this narrow
// interface is what guarantees the tag-minimization law (encoded size ==
// estimator output) by construction rather than by keeping two independent
// implementations in sync by hand.
type sink interface {
	PutU8(b byte)
	PutU16(v uint16)
	PutU32(v uint32)
	PutU64(v uint64)
	PutI32(v int32)
	PutBytes(b []byte)
}
