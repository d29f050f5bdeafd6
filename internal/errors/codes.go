package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodePermissionDenied   Code = "PERMISSION_DENIED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeOutOfRange         Code = "OUT_OF_RANGE"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeDataLoss           Code = "DATA_LOSS"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Title returns the heading used when an error with this code is shown to
// the user in a dialog or status line.
func (c Code) Title() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeInvalidArgument, CodeOutOfRange:
		return "Invalid input"
	case CodeNotFound:
		return "Not found"
	case CodePermissionDenied:
		return "Permission denied"
	case CodeFailedPrecondition:
		return "Not ready"
	case CodeUnavailable:
		return "Unavailable"
	case CodeDataLoss:
		return "Corrupt data"
	case CodeCanceled:
		return "Canceled"
	default:
		return "Error"
	}
}
