package elimination

import "fmt"

// State is the position of one team in the elimination state machine:
//
//	Unchecked → TriviallyEliminated
//	Unchecked → FlowEligible → Eliminated
//	                         → NotEliminated
//
// TriviallyEliminated, Eliminated and NotEliminated are terminal.
type State int

const (
	Unchecked State = iota
	TriviallyEliminated
	FlowEligible
	Eliminated
	NotEliminated
)

var stateNames = [...]string{
	Unchecked:           "unchecked",
	TriviallyEliminated: "trivially-eliminated",
	FlowEligible:        "flow-eligible",
	Eliminated:          "eliminated",
	NotEliminated:       "not-eliminated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == TriviallyEliminated || s == Eliminated || s == NotEliminated
}

// IsEliminated reports whether s is either eliminated state.
func (s State) IsEliminated() bool {
	return s == TriviallyEliminated || s == Eliminated
}

// Transition returns to if the move s→to is legal, or ErrIllegalTransition.
func (s State) Transition(to State) (State, error) {
	ok := false
	switch s {
	case Unchecked:
		ok = to == TriviallyEliminated || to == FlowEligible
	case FlowEligible:
		ok = to == Eliminated || to == NotEliminated
	}
	if !ok {
		return s, fmt.Errorf("%w: %s → %s", ErrIllegalTransition, s, to)
	}
	return to, nil
}
