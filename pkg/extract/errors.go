package extract

import (
	"errors"
	"strings"
)

// Parse errors. Every parser fails with one of these (possibly wrapped) so
// callers can match with errors.Is.
var (
	ErrInvalidResponse       = errors.New("invalid response: expected a JSON object")
	ErrNoRecognizablePattern = errors.New("unable to determine stock status: no recognizable patterns found")
	ErrNoEmbeddedJSON        = errors.New("no embedded JSON found")
	ErrMalformedEmbeddedJSON = errors.New("malformed embedded JSON")
	ErrNotJSONShaped         = errors.New("response body is not JSON-shaped")
	ErrUnknownStrategy       = errors.New("unknown parse strategy")
)

// AttemptError is a failed parse attempt labeled with the strategy that
// produced it.
type AttemptError struct {
	Label string
	Err   error
}

func (e *AttemptError) Error() string {
	return e.Label + ": " + e.Err.Error()
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// AllStrategiesFailedError is returned in auto mode when no strategy could
// parse the body. It keeps every attempt, in the order they were tried.
type AllStrategiesFailedError struct {
	Attempts []AttemptError
}

func (e *AllStrategiesFailedError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for i := range e.Attempts {
		parts = append(parts, e.Attempts[i].Error())
	}
	return "all parsing strategies failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the individual attempt errors to errors.Is and errors.As.
func (e *AllStrategiesFailedError) Unwrap() []error {
	errs := make([]error, 0, len(e.Attempts))
	for i := range e.Attempts {
		errs = append(errs, &e.Attempts[i])
	}
	return errs
}
