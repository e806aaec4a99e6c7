package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// AnnotatedError includes more context than a plain error that is useful for troubleshooting.
type AnnotatedError struct {
	// msg is the error message.
	msg string
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are slog attributes that are added to the log event to provide more context for the error.
	attrs []slog.Attr
	// cause is the wrapped error, if any.
	cause error
}

func newAnnotated(skip int, msg string, cause error, attrs []slog.Attr) AnnotatedError {
	var pcs [1]uintptr
	runtime.Callers(skip, pcs[:])
	return AnnotatedError{
		msg:   msg,
		pc:    pcs[0],
		attrs: attrs,
		cause: cause,
	}
}

// New creates a new AnnotatedError with the given message and attributes.
func New(msg string, attrs ...slog.Attr) AnnotatedError {
	// Skip runtime.Callers, newAnnotated and this function.
	return newAnnotated(3, msg, nil, attrs)
}

// NewSentinel creates a plain error without other context that can be used as sentinel error that can be
// detected with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with a message describing what was being done and optional attributes.
// It returns nil if err is nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return newAnnotated(3, msg, err, attrs)
}

// Error implements error interface.
func (err AnnotatedError) Error() string {
	if err.cause == nil {
		return err.msg
	}
	return fmt.Sprintf("%s: %s", err.msg, err.cause.Error())
}

// Unwrap returns the wrapped error so that errors.Is and errors.As see through the annotation.
func (err AnnotatedError) Unwrap() error {
	return err.cause
}

// LogValue formats the error for useful logging.
func (err AnnotatedError) LogValue() slog.Value {
	// Retrieve the source location of the error so that developers can locate it faster.
	frames := runtime.CallersFrames([]uintptr{err.pc})
	source, _ := frames.Next()
	attrs := make([]slog.Attr, 0, len(err.attrs)+2)
	attrs = append(attrs,
		slog.String("msg", err.Error()),
		slog.String("source", fmt.Sprintf("%s:%d", source.File, source.Line)),
	)

	// Collect the attributes of wrapped annotated errors too.
	attrs = append(attrs, err.attrs...)
	var inner AnnotatedError
	if errors.As(err.cause, &inner) {
		attrs = append(attrs, inner.attrs...)
	}

	return slog.GroupValue(attrs...)
}

// SlogError returns an attribute for logging err under the "error" key.
func SlogError(err error) slog.Attr {
	var annotated AnnotatedError
	if errors.As(err, &annotated) {
		return slog.Any("error", annotated)
	}
	return slog.String("error", err.Error())
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Unwrap exposes stdlib errors.Unwrap.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
