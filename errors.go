package gdip

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a bridge failure.
type ErrorKind uint8

const (
	// KindNone is the zero kind; it never appears on a returned error.
	KindNone ErrorKind = iota

	// KindException means the native call raised instead of returning.
	KindException

	// KindStatus means the native call returned a non-OK status that has no
	// more specific kind.
	KindStatus

	// KindNullPointer means an output location supplied by the caller was nil.
	KindNullPointer

	// KindInvalidParameter is the native InvalidParameter status.
	KindInvalidParameter

	// KindOutOfMemory is the native OutOfMemory status.
	KindOutOfMemory

	// KindNotInitialized is the native GdiplusNotInitialized status.
	KindNotInitialized

	// KindUnsupported means the active backend cannot perform the operation.
	KindUnsupported

	// KindConfig means the bridge could not be set up from its configuration,
	// for example an unknown backend or log level.
	KindConfig
)

// Sentinel errors, one per kind. Use errors.Is to match a returned *Error.
var (
	ErrException        = errors.New("GDI+ threw an exception")
	ErrStatus           = errors.New("GDI+ function returned non-OK status")
	ErrNullPointer      = errors.New("output pointer is null")
	ErrInvalidParameter = errors.New("GDI+ rejected a parameter")
	ErrOutOfMemory      = errors.New("GDI+ ran out of memory")
	ErrNotInitialized   = errors.New("GDI+ is not initialized")
	ErrUnsupported      = errors.New("operation not supported by backend")
	ErrConfig           = errors.New("bridge configuration is invalid")
)

var kindErrors = [...]error{
	KindException:        ErrException,
	KindStatus:           ErrStatus,
	KindNullPointer:      ErrNullPointer,
	KindInvalidParameter: ErrInvalidParameter,
	KindOutOfMemory:      ErrOutOfMemory,
	KindNotInitialized:   ErrNotInitialized,
	KindUnsupported:      ErrUnsupported,
	KindConfig:           ErrConfig,
}

// Sentinel returns the sentinel error for the kind, or nil for KindNone.
func (k ErrorKind) Sentinel() error {
	if int(k) < len(kindErrors) {
		return kindErrors[k]
	}
	return nil
}

// String returns the message of the kind's sentinel error.
func (k ErrorKind) String() string {
	if err := k.Sentinel(); err != nil {
		return err.Error()
	}
	if k == KindNone {
		return "no error"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// kindOf maps a non-OK native status to its error kind.
func kindOf(s Status) ErrorKind {
	switch s {
	case Ok:
		return KindNone
	case InvalidParameter:
		return KindInvalidParameter
	case OutOfMemory:
		return KindOutOfMemory
	case GdiplusNotInitialized:
		return KindNotInitialized
	case NotImplemented:
		return KindUnsupported
	default:
		return KindStatus
	}
}

// Error is the error returned by every fallible bridge operation.
type Error struct {
	Op     string    // bridge operation, e.g. "CreatePen"
	Kind   ErrorKind // failure classification
	Status Status    // native status, Ok when no native call failed
	Err    error     // recovered panic value or other cause, may be nil
}

func (e *Error) Error() string {
	msg := "gdip: " + e.Op + ": " + e.Kind.String()
	if e.Status != Ok {
		msg += " (" + e.Status.String() + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel error of the error's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && s == target
}

// KindOf returns the kind of err, or KindNone if err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindNone
}

func statusError(op string, s Status) error {
	return &Error{Op: op, Kind: kindOf(s), Status: s}
}

func exceptionError(op string, r any) error {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	return &Error{Op: op, Kind: KindException, Err: err}
}

// NullPointerError reports a nil output location for op.
// It is used by flat call layers that accept caller-owned output pointers.
func NullPointerError(op string) error {
	return &Error{Op: op, Kind: KindNullPointer}
}
