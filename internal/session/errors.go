package session

import "errors"

var (
	// ErrInvalidSelection is returned when a selection does not name one
	// of the current options, or the question is not open for answers.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInconsistent signals that displayed options and the source
	// question disagree. It is not reachable through the public API.
	ErrInconsistent = errors.New("inconsistent question state")
)
