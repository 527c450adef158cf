package term

import "github.com/etfgo/letf/atom"

// Port models PORT_EXT/NEW_PORT_EXT/V4_PORT_EXT: node-atom + 64-bit id + creation.
// Legacy variants carry a narrower id (u32); it is widened to uint64 here.
type Port struct {
	Node     atom.Handle
	Id       uint64
	Creation uint32
}

func (Port) Kind() Kind { return KindPort }
func (Port) isTerm()    {}

// Pid models PID_EXT/NEW_PID_EXT: node-atom + id + serial + creation.
type Pid struct {
	Node     atom.Handle
	Id       uint32
	Serial   uint32
	Creation uint32
}

func (Pid) Kind() Kind { return KindPid }
func (Pid) isTerm()    {}
