package errors

import (
	"fmt"
	"strings"
)

// Stage indicates where in processing the error occurred
type Stage string

const (
	StageProvider Stage = "provider" // type/dimension resolution
	StageLayout   Stage = "layout"   // layout manager construction and relayout
	StageRecycle  Stage = "recycle"  // view recycling
	StageRender   Stage = "render"   // list view rendering
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported    Kind = "unsupported"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindInvalidInput   Kind = "invalid_input"
	KindNotInitialized Kind = "not_initialized"
	KindExhausted      Kind = "exhausted"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Stage  Stage
	Kind   Kind
	Detail string

	// Index is the item index involved, or -1 when the error is not tied
	// to a particular index.
	Index int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Stage))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Index >= 0 {
		fmt.Fprintf(&b, " at index %d", e.Index)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when their
// Stage and Kind agree; index and detail are ignored.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// Unsupported creates an unsupported configuration error
func Unsupported(stage Stage, what string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindUnsupported,
		Detail: what,
		Index:  -1,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(stage Stage, index, length int) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index out of bounds (length %d)", length),
		Index:  index,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(stage Stage, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindInvalidInput,
		Detail: detail,
		Index:  -1,
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(stage Stage, component string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
		Index:  -1,
	}
}

// Exhausted creates an exhausted capacity error
func Exhausted(stage Stage, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindExhausted,
		Detail: detail,
		Index:  -1,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(stage Stage, kind Kind, cause error, detail string) *Error {
	return &Error{
		Stage:  stage,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Index:  -1,
	}
}
