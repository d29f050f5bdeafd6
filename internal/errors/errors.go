package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
)

// Error is a coded error. Message is what the editor shows the user; Cause
// keeps the underlying failure for logs and UserMessage.
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && e.Code == t.Code
}

// WithMeta attaches a key to the error, e.g. the save path or slot number
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// LogValue lets slog print the code and metadata as attributes instead of
// one flattened string.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.String("cause", e.Cause.Error()))
	}
	for k, v := range e.Meta {
		attrs = append(attrs, slog.Any(k, v))
	}
	return slog.GroupValue(attrs...)
}

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds a message to err. A coded cause keeps its code and metadata;
// anything else becomes Internal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return &Error{Code: existing.Code, Message: message, Cause: err, Meta: existing.Meta}
	}
	return &Error{Code: CodeInternal, Message: message, Cause: err}
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code, copying any metadata it carries
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	meta := make(map[string]any)
	var existing *Error
	if errors.As(err, &existing) {
		maps.Copy(meta, existing.Meta)
	}
	return &Error{Code: code, Message: message, Cause: err, Meta: meta}
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// FromFS classifies a filesystem error for path: a missing file is
// NotFound, a refused one PermissionDenied, the rest Internal. The path is
// recorded as metadata.
func FromFS(err error, path, message string) *Error {
	if err == nil {
		return nil
	}

	var wrapped *Error
	switch {
	case errors.Is(err, fs.ErrNotExist):
		wrapped = WrapWithCodef(err, CodeNotFound, "%s: %s not found", message, path)
	case errors.Is(err, fs.ErrPermission):
		wrapped = WrapWithCodef(err, CodePermissionDenied, "%s: %s", message, path)
	default:
		wrapped = Wrapf(err, "%s: %s", message, path)
	}
	return wrapped.WithMeta("path", path)
}

// NotFound creates a not found error
func NotFound(message string) *Error { return New(CodeNotFound, message) }

// NotFoundf creates a not found error with a formatted message
func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

// InvalidArgumentf creates an invalid argument error with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// PermissionDenied creates a permission denied error
func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

// Internal creates an internal error
func Internal(message string) *Error { return New(CodeInternal, message) }

// Internalf creates an internal error with a formatted message
func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

// Unavailable creates an unavailable error, used when Redis cannot be reached
func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

// Unavailablef creates an unavailable error with a formatted message
func Unavailablef(format string, args ...any) *Error { return Newf(CodeUnavailable, format, args...) }

// FailedPrecondition creates a failed precondition error, e.g. saving with
// no file open
func FailedPrecondition(message string) *Error { return New(CodeFailedPrecondition, message) }

// FailedPreconditionf creates a failed precondition error with a formatted message
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// OutOfRange creates an out of range error for skill indexes and slots
func OutOfRange(message string) *Error { return New(CodeOutOfRange, message) }

// OutOfRangef creates an out of range error with a formatted message
func OutOfRangef(format string, args ...any) *Error { return Newf(CodeOutOfRange, format, args...) }

// DataLoss creates a data loss error
func DataLoss(message string) *Error { return New(CodeDataLoss, message) }

// DataLossf creates a data loss error with a formatted message
func DataLossf(format string, args ...any) *Error { return Newf(CodeDataLoss, format, args...) }
