package attr

import "fmt"

// ErrInvalid matches every [ValidationError] via [errors.Is].
const ErrInvalid = Error("invalid attribute value")

// Error is an error type for attribute sentinel errors.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// ValidationError reports an attribute value that failed its own domain
// constraints at construction.
type ValidationError struct {
	Attribute string
	Input     string
	Reason    string

	cause error
}

// Error satisfies [error].
func (verr *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", verr.Attribute, verr.Input, verr.Reason)
}

// Is reports whether target is [ErrInvalid].
func (verr *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Unwrap returns the underlying parse error, if any.
func (verr *ValidationError) Unwrap() error {
	return verr.cause
}

func invalid(attribute, input, reason string) *ValidationError {
	return &ValidationError{Attribute: attribute, Input: input, Reason: reason}
}

func invalidCause(attribute, input string, cause error) *ValidationError {
	return &ValidationError{Attribute: attribute, Input: input, Reason: cause.Error(), cause: cause}
}
