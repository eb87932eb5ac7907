package domain

import (
	"errors"
	"fmt"
)

// ErrKind classifies a failure the way callers of the load-order engine
// need to distinguish: by what went wrong, not by which function raised it.
type ErrKind int

const (
	// ErrKindInvalidPlugin means a named file failed PluginProbe validation.
	ErrKindInvalidPlugin ErrKind = iota
	// ErrKindInvalidOrder means a proposed ordering violates the master
	// partition, the Textfile game-master-first rule, or has duplicates.
	ErrKindInvalidOrder
	// ErrKindTooManyActive means an operation would push the active count
	// past MaxActivePlugins.
	ErrKindTooManyActive
	// ErrKindImplicitActive means an attempt to deactivate a plugin the
	// game forces active.
	ErrKindImplicitActive
	// ErrKindOutOfRange means a position index was past the end of the
	// load order.
	ErrKindOutOfRange
	// ErrKindIO means a filesystem failure during load or save.
	ErrKindIO
	// ErrKindParse means a plugin's binary header could not be parsed.
	ErrKindParse
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalidPlugin:
		return "InvalidPlugin"
	case ErrKindInvalidOrder:
		return "InvalidOrder"
	case ErrKindTooManyActive:
		return "TooManyActive"
	case ErrKindImplicitActive:
		return "ImplicitActive"
	case ErrKindOutOfRange:
		return "OutOfRange"
	case ErrKindIO:
		return "Io"
	case ErrKindParse:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// Error is the single well-typed failure every public operation returns.
// Callers distinguish failure modes with errors.As and (*Error).Kind,
// never by string-matching the message.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is allows errors.Is(err, NewError(kind, "")) style checks against a
// kind sentinel, independent of message or wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// NewError builds a kind-tagged error with no wrapped cause.
func NewError(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap builds a kind-tagged error around an underlying cause (typically
// an *os.PathError or similar I/O failure).
func Wrap(kind ErrKind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the ErrKind from err if it is (or wraps) a *Error,
// returning ok=false otherwise.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
