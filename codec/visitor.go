package codec

import (
	"github.com/etfgo/letf/process"
	"github.com/etfgo/letf/term"
)

// Hint identifies the structural role of the term a TermVisitor is entering
// (§4.2): the position within its parent compound, or OuterTerm for the
// traversal's root.
type Hint uint8

const (
	HintOuterTerm Hint = iota
	HintTupleElement
	HintListElement
	HintListTail
	HintMapKey
	HintMapValue
	HintInternalFunFreeVar
)

// Action is a TermVisitor callback's return value, controlling how the
// driver proceeds.
type Action uint8

const (
	// Continue traverses t's children (if any) with the driver's default
	// child-pushing rules.
	Continue Action = iota
	// Skip treats t as already fully handled by the callback (e.g. the byte
	// emitter wrote a whole STRING_EXT itself) and does not push children.
	Skip
	// Halt aborts the remainder of the traversal immediately.
	Halt
)

// TermVisitor receives the three traversal callbacks described in §4.2: one
// on first observation of the outer term, one on entry into each inner
// term (carrying the Hint that identifies its role), and one when a term,
// leaf or compound, has been fully processed (for a compound, after all its
// children).
type TermVisitor interface {
	VisitOuter(t term.Term) Action
	Enter(parent, child term.Term, hint Hint) Action
	Exit(t term.Term, hint Hint) Action
}

// frameKind distinguishes the three traversal-frame shapes the driver
// pushes onto its explicit stack (§4.2: OuterTerm, InnerTerm, and the
// per-compound iterator frames, here folded into a single exit marker since
// children are pre-expanded rather than iterated lazily).
type frameKind uint8

const (
	frameOuter frameKind = iota
	frameInner
	frameExit
)

type stackFrame struct {
	kind   frameKind
	parent term.Term
	t      term.Term
	hint   Hint
}

// traverse drives v over t using an explicit stack so arbitrarily deep terms
// never grow the Go call stack, charging 1 reduction per frame processed and
// yielding via proc when the budget is exhausted (§4.2, §5).
func traverse(t term.Term, v TermVisitor, proc process.Handle) {
	stack := []stackFrame{{kind: frameOuter, t: t}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		proc.BumpReds(1)

		switch f.kind {
		case frameOuter:
			switch v.VisitOuter(f.t) {
			case Halt:
				return
			case Skip:
				// nothing further for this term
			default:
				stack = append(stack, stackFrame{kind: frameExit, t: f.t, hint: HintOuterTerm})
				stack = pushChildren(stack, f.t, HintOuterTerm)
			}
		case frameInner:
			switch v.Enter(f.parent, f.t, f.hint) {
			case Halt:
				return
			case Skip:
				// nothing further for this term
			default:
				stack = append(stack, stackFrame{kind: frameExit, t: f.t, hint: f.hint})
				stack = pushChildren(stack, f.t, f.hint)
			}
		case frameExit:
			v.Exit(f.t, f.hint)
		}
	}
}

// pushChildren appends the inner-term frames for t's children, in an order
// such that popping the stack visits them left to right: elements before
// tail for List, key before value per pair for Map, declaration order for
// Tuple and InternalFun free variables.
func pushChildren(stack []stackFrame, t term.Term, _ Hint) []stackFrame {
	switch v := t.(type) {
	case term.Tuple:
		for i := len(v.Elements) - 1; i >= 0; i-- {
			stack = append(stack, stackFrame{kind: frameInner, parent: t, t: v.Elements[i], hint: HintTupleElement})
		}
	case term.List:
		stack = append(stack, stackFrame{kind: frameInner, parent: t, t: v.Tail, hint: HintListTail})
		for i := len(v.Elements) - 1; i >= 0; i-- {
			stack = append(stack, stackFrame{kind: frameInner, parent: t, t: v.Elements[i], hint: HintListElement})
		}
	case term.Map:
		for i := len(v.Pairs) - 1; i >= 0; i-- {
			stack = append(stack, stackFrame{kind: frameInner, parent: t, t: v.Pairs[i].Value, hint: HintMapValue})
			stack = append(stack, stackFrame{kind: frameInner, parent: t, t: v.Pairs[i].Key, hint: HintMapKey})
		}
	case term.InternalFun:
		for i := len(v.FreeVars) - 1; i >= 0; i-- {
			stack = append(stack, stackFrame{kind: frameInner, parent: t, t: v.FreeVars[i], hint: HintInternalFunFreeVar})
		}
	}

	return stack
}
