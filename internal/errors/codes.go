package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Fatal reports whether an error with this code must end the session.
// Only user input errors and lookups are recoverable.
func (c Code) Fatal() bool {
	switch c {
	case CodeOK, CodeInvalidArgument, CodeNotFound:
		return false
	default:
		return true
	}
}
