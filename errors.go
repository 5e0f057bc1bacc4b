package compr_flow

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is wrapped by every error returned for inputs outside
	// the valid range of a formula.
	ErrDomain = errors.New("compr_flow: domain error")

	// ErrNoAttachedShock means M·sin(β) < 1: no attached oblique shock
	// exists at the given shock angle.
	ErrNoAttachedShock = fmt.Errorf("%w: no attached oblique shock", ErrDomain)
)

// DomainError describes which argument of which formula was rejected.
type DomainError struct {
	Op     string  // formula name, e.g. "Pi"
	Param  string  // offending argument, e.g. "lambda"
	Value  float64 // its value
	Reason string
	cause  error
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("compr_flow.%s: %s = %g: %s", e.Op, e.Param, e.Value, e.Reason)
}

func (e *DomainError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return ErrDomain
}

func domainError(op, param string, value float64, reason string) error {
	return &DomainError{Op: op, Param: param, Value: value, Reason: reason}
}

func noAttachedShock(op string, mSinBeta float64) error {
	return &DomainError{
		Op:     op,
		Param:  "mach*sin(beta)",
		Value:  mSinBeta,
		Reason: "must be >= 1",
		cause:  ErrNoAttachedShock,
	}
}
