package core

// Compile-time check that Error implements the error interface.
var _ error = Error("")

// Error is an immutable error type backed by a string constant.
// Unlike errors.New, which returns a pointer and must be stored in a var,
// Error values can be declared as const, preventing reassignment. Because
// Error is comparable, the default == comparison used by errors.Is works
// through wrapped error chains.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}

// ErrEmptyName is returned when an operation is invoked with an empty object
// name. The check runs before any store round trip.
const ErrEmptyName = Error("object name must not be empty")

// ErrEmptyToken is returned when an operation is invoked with an empty
// finalizer token. A finalizer token is an opaque non-empty string; an empty
// value indicates a programming error in the caller.
const ErrEmptyToken = Error("finalizer token must not be empty")
