// internal/drive/runstate.go
package drive

// RunState is the decoded run/direction field of the command word.
// Wire encoding lives entirely in Encode/DecodeRunState; nothing else
// is allowed to touch the raw bits.
type RunState uint8

const (
	// Stopped: run bit clear.
	Stopped RunState = iota
	// RunForward: run bit set, direction bit clear.
	RunForward
	// RunReverse: run bit set, direction bit set.
	RunReverse
)

// runStateMask selects the run and direction bits of a status or
// command word.
const runStateMask uint16 = 0x0003

// DecodeRunState extracts the run state from a 16-bit word.
// A clear run bit means Stopped regardless of the direction bit.
func DecodeRunState(word uint16) RunState {
	switch word & runStateMask {
	case 0x0001:
		return RunForward
	case 0x0003:
		return RunReverse
	default:
		return Stopped
	}
}

// Encode packs the run state into the 16-bit command word.
func (r RunState) Encode() uint16 {
	switch r {
	case RunForward:
		return 0x0001
	case RunReverse:
		return 0x0003
	default:
		return 0x0000
	}
}

// Running reports whether the run bit is set.
func (r RunState) Running() bool {
	return r == RunForward || r == RunReverse
}

func (r RunState) String() string {
	switch r {
	case RunForward:
		return "forward"
	case RunReverse:
		return "reverse"
	default:
		return "stopped"
	}
}
