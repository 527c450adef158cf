package term

// Dist models a parsed distribution header record (§3.1, §4.4). It is what
// a decode of a DIST_HEADER-prefixed message returns: the header's
// reference count, reported as KindNil. The body term after the header is
// not part of it and is not read by that decode call.
type Dist struct {
	NumRefs int
}

func (Dist) Kind() Kind { return KindNil }
func (Dist) isTerm()    {}
