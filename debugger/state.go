package debugger

import "fmt"

// State tells why a register does or does not hold a value.
type State int

const (
	STATE_NOT_CAPTURED State = iota
	STATE_VALID
	STATE_READ_FAILED
	STATE_CLEARED
)

func (s State) String() string {
	switch s {
	case STATE_NOT_CAPTURED:
		return "not captured"
	case STATE_VALID:
		return "valid"
	case STATE_READ_FAILED:
		return "read failed"
	case STATE_CLEARED:
		return "cleared"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (r *Registers) State(number uint32) State {
	if _, ok := r.values[number]; ok {
		return STATE_VALID
	}
	if s, ok := r.absent[number]; ok {
		return s
	}
	return STATE_NOT_CAPTURED
}
