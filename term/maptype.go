package term

// MapPair is a single key/value entry within a Map, in wire order.
type MapPair struct {
	Key   Term
	Value Term
}

// Map is an ordered sequence of key/value pairs (MAP_EXT). Unlike a Go map,
// insertion order is preserved, matching the wire format and the ordering
// invariant comparing maps pairwise in sequence.
type Map struct {
	Pairs []MapPair
}

func (Map) Kind() Kind { return KindMap }
func (Map) isTerm()    {}
