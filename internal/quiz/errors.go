package quiz

import "fmt"

// MinPoolSize is the number of verses a user needs before a quiz can start.
const MinPoolSize = 3

// InsufficientDataError is returned when the verse pool is too small to quiz on.
type InsufficientDataError struct {
	Have int
	Need int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("quiz needs at least %d verses, have %d", e.Need, e.Have)
}

// InvalidStateError is returned when an operation is not allowed in the
// session's current state.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s while quiz session is %s", e.Op, e.State)
}
