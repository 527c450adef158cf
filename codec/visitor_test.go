package codec

import (
	"testing"

	"github.com/etfgo/letf/process"
	"github.com/etfgo/letf/term"
	"github.com/stretchr/testify/require"
)

// recordingVisitor logs Enter/Exit calls in visitation order, letting tests
// assert the driver visits children before firing a parent's Exit (§4.2).
type recordingVisitor struct {
	events []string
}

func (r *recordingVisitor) VisitOuter(t term.Term) Action {
	r.events = append(r.events, "outer:"+t.Kind().String())

	return Continue
}

func (r *recordingVisitor) Enter(_, child term.Term, hint Hint) Action {
	r.events = append(r.events, "enter:"+child.Kind().String())

	return Continue
}

func (r *recordingVisitor) Exit(t term.Term, _ Hint) Action {
	r.events = append(r.events, "exit:"+t.Kind().String())

	return Continue
}

func TestTraverse_ChildrenVisitedBeforeParentExit(t *testing.T) {
	tup := term.NewTuple(term.FixInteger(1), term.FixInteger(2))

	v := &recordingVisitor{}
	traverse(tup, v, process.Blocking())

	require.Equal(t, []string{
		"outer:Tuple",
		"enter:Number",
		"exit:Number",
		"enter:Number",
		"exit:Number",
		"exit:Tuple",
	}, v.events)
}

func TestTraverse_ListVisitsElementsThenTail(t *testing.T) {
	lst := term.NewProperList(term.FixInteger(1))

	v := &recordingVisitor{}
	traverse(lst, v, process.Blocking())

	require.Equal(t, []string{
		"outer:List",
		"enter:Number",
		"exit:Number",
		"enter:Nil",
		"exit:Nil",
		"exit:List",
	}, v.events)
}

func TestTraverse_HaltStopsImmediately(t *testing.T) {
	halting := &haltingVisitor{}
	tup := term.NewTuple(term.FixInteger(1), term.FixInteger(2))
	traverse(tup, halting, process.Blocking())

	require.Equal(t, 1, halting.outerCalls)
	require.Equal(t, 0, halting.enterCalls)
}

type haltingVisitor struct {
	outerCalls int
	enterCalls int
}

func (h *haltingVisitor) VisitOuter(term.Term) Action {
	h.outerCalls++

	return Halt
}

func (h *haltingVisitor) Enter(_, _ term.Term, _ Hint) Action {
	h.enterCalls++

	return Continue
}

func (h *haltingVisitor) Exit(term.Term, Hint) Action { return Continue }
