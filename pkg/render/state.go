package render

// State is the lifecycle position of a render session.
type State int

const (
	StatePending State = iota
	StateShellReady
	StateStreaming
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StatePending:    "pending",
	StateShellReady: "shell-ready",
	StateStreaming:  "streaming",
	StateDone:       "done",
	StateFailed:     "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}

// canTransition encodes pending -> shell-ready -> streaming -> done, with
// failed reachable from every non-terminal state. A render that completes
// before the handoff goes straight from shell-ready to done.
func (s State) canTransition(to State) bool {
	switch s {
	case StatePending:
		return to == StateShellReady || to == StateFailed
	case StateShellReady:
		return to == StateStreaming || to == StateDone || to == StateFailed
	case StateStreaming:
		return to == StateDone || to == StateFailed
	default:
		return false
	}
}
