package codec

// DistFlags is the 64-bit (as two 32-bit halves) distribution capability
// flagset (§6.2). The codec itself reads none of these bits (DIST_HEADER
// atom-text decoding follows WithDistAtomEncoding); they are carried so a
// transport collaborator can negotiate a handshake without the codec
// needing to know their meaning.
//
// Modeled on the teacher's section.NumericFlag packed-bitfield style: a
// plain integer type with Has/With accessor pairs rather than named struct
// fields per bit.
type DistFlags uint64

const (
	FlagPublished         DistFlags = 0x1
	FlagAtomCache         DistFlags = 0x2
	FlagExtendedReferences DistFlags = 0x4
	FlagDistMonitor       DistFlags = 0x8
	FlagFunTags           DistFlags = 0x10
	FlagDistMonitorName   DistFlags = 0x20
	FlagHiddenAtomCache   DistFlags = 0x40
	FlagNewFunTags        DistFlags = 0x80
	FlagExtendedPidsPorts DistFlags = 0x100
	FlagExportPtrTag      DistFlags = 0x200
	FlagBitBinaries       DistFlags = 0x400
	FlagNewFloats         DistFlags = 0x800
	FlagUnicodeIo         DistFlags = 0x1000
	FlagDistHdrAtomCache  DistFlags = 0x2000
	FlagSmallAtomTags     DistFlags = 0x4000
	FlagEtsCompressed     DistFlags = 0x8000
	FlagUtf8Atoms         DistFlags = 0x10000
	FlagMapTag            DistFlags = 0x20000
	FlagBigCreation       DistFlags = 0x40000
	FlagSendSender        DistFlags = 0x80000
	FlagBigSeqtraceLabels DistFlags = 0x100000
	FlagPendingConnect    DistFlags = 0x200000
	FlagExitPayload       DistFlags = 0x400000
	FlagFragments         DistFlags = 0x800000
	FlagHandshake23       DistFlags = 0x1000000
	FlagUnlinkId          DistFlags = 0x2000000
	FlagMandatory25Digest DistFlags = 0x4000000

	FlagSpawn         DistFlags = 1 << 32
	FlagNameMe        DistFlags = 2 << 32
	FlagV4Nc          DistFlags = 4 << 32
	FlagAlias         DistFlags = 8 << 32

	// Aliases named in §6.2.
	FlagDeterministic DistFlags = FlagAtomCache
	FlagTermToBinary  DistFlags = FlagNewFloats
)

// Has reports whether all bits in want are set.
func (f DistFlags) Has(want DistFlags) bool {
	return f&want == want
}

// With returns f with bits set added.
func (f DistFlags) With(set DistFlags) DistFlags {
	return f | set
}

// Without returns f with bits clear removed.
func (f DistFlags) Without(clear DistFlags) DistFlags {
	return f &^ clear
}

// MandatorySet is the union of bits a v25/v26 connection must negotiate.
const MandatorySet = FlagExtendedReferences | FlagExtendedPidsPorts |
	FlagBitBinaries | FlagNewFloats | FlagMapTag | FlagFunTags |
	FlagHandshake23 | FlagUnlinkId

// DefaultFlags is this library's default outbound flagset: the mandatory
// set plus UTF8_ATOMS, DIST_HDR_ATOM_CACHE, SMALL_ATOM_TAGS, NEW_FUN_TAGS
// and BIG_CREATION. The encoder does not emit DIST_HEADER itself.
const DefaultFlags = MandatorySet | FlagUtf8Atoms | FlagDistHdrAtomCache |
	FlagSmallAtomTags | FlagNewFunTags | FlagBigCreation
