package patmatch

import (
	"errors"

	"github.com/npillmayer/patmatch/pattern"
	"github.com/npillmayer/patmatch/value"
)

// ErrNoMatch is matched by errors.Is for every *ExhaustionError.
var ErrNoMatch = errors.New("no match")

// ErrLateExhaustive is returned if Exhaustive() is called on a session
// which already received cases.
var ErrLateExhaustive = errors.New("exhaustive mode must be set before the first case")

// ErrSessionClosed is returned if cases are supplied to a session which has
// already been finalized.
var ErrSessionClosed = errors.New("match session already finalized")

// ErrMalformedPattern is the error a case with a malformed pattern is
// rejected with. See pattern.Validate.
var ErrMalformedPattern = pattern.ErrMalformedPattern

// ExhaustionError is returned by an exhaustive match without a matching
// case and without a fallback case.
type ExhaustionError struct {
	Subject any    // the subject of the match
	Repr    string // Subject serialized as JSON
}

func newExhaustionError(subject any) *ExhaustionError {
	return &ExhaustionError{Subject: subject, Repr: value.Serialize(subject)}
}

func (e *ExhaustionError) Error() string {
	return "No match: " + e.Repr
}

// Is makes errors.Is(err, ErrNoMatch) hold.
func (e *ExhaustionError) Is(target error) bool {
	return target == ErrNoMatch
}
