package lifecycle

import "resource-backend/internal/pkg/errs"

var ErrAlreadyDisabled = errs.New("entity is already disabled")

// State is the lifecycle of a stored entity: absent -> active -> disabled.
// Disabled entities persist for audit but are invisible to reads and lists.
// There is no resurrection transition.
type State string

const (
	StateActive   State = "active"
	StateDisabled State = "disabled"
)

func (s State) Active() bool {
	return s == StateActive
}

func (s State) Disable() (State, error) {
	if s != StateActive {
		return s, ErrAlreadyDisabled
	}
	return StateDisabled, nil
}

// FromDisabledFlag converts the store's boolean column into a State.
func FromDisabledFlag(disabled bool) State {
	if disabled {
		return StateDisabled
	}
	return StateActive
}

func (s State) DisabledFlag() bool {
	return s == StateDisabled
}
