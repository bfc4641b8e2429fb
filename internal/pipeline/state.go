package pipeline

import "fmt"

// State is a pipeline stage.
type State int

const (
	StateStart State = iota
	StatePrompted
	StateScaffolded
	StateNavigated
	StateInstalled
	StateWritten
	StateDone
	StateAborted
)

var stateNames = [...]string{
	StateStart:      "start",
	StatePrompted:   "prompted",
	StateScaffolded: "scaffolded",
	StateNavigated:  "navigated",
	StateInstalled:  "installed",
	StateWritten:    "written",
	StateDone:       "done",
	StateAborted:    "aborted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// IsTerminal reports whether no further transition is possible.
func IsTerminal(s State) bool {
	return s == StateDone || s == StateAborted
}

// isAllowedTransition permits only the next stage in order, or an abort from
// any non-terminal stage.
func isAllowedTransition(from, to State) bool {
	if IsTerminal(from) {
		return false
	}
	if to == StateAborted {
		return true
	}
	return to == from+1
}
