package term

// Nil is the empty-list sentinel (NIL_EXT) and also the canonical proper-list
// tail.
type Nil struct{}

func (Nil) Kind() Kind { return KindNil }
func (Nil) isTerm()    {}

// IsNil reports whether t is the Nil sentinel.
func IsNil(t Term) bool {
	_, ok := t.(Nil)

	return ok
}

// List is an ordered sequence of head terms plus a tail term. Tail == Nil{}
// denotes a proper list; anything else denotes an improper list.
type List struct {
	Elements []Term
	Tail     Term
}

// NewProperList builds a proper list (tail Nil{}) from elements.
func NewProperList(elements ...Term) List {
	return List{Elements: elements, Tail: Nil{}}
}

func (List) Kind() Kind { return KindList }
func (List) isTerm()    {}

// IsProper reports whether l's tail is Nil.
func (l List) IsProper() bool { return IsNil(l.Tail) }
