// Package emgerr defines the stable error codes returned across the
// library's host boundary. Geometry, document, and registry operations
// report failures as an *Error carrying one of these kinds and a
// formatted message; Wrap additionally attaches an underlying cause,
// reachable through Unwrap.
package emgerr

import "fmt"

// Kind is a stable, wire-compatible error code. Values must never be
// renumbered once released, since hosts key behavior off the numeric code.
type Kind uint32

const (
	None Kind = iota
	Mutex
	Generation
	NotImplemented
	_ // reserved: WebAssemblyCompile, kept numerically for wire compatibility
	_ // reserved: WebAssemblyInstance
	_ // reserved: WebAssemblyExecution
	_ // reserved: ModuleNotParaforge
	_ // reserved: ModelGeneratorNotFound
	ParameterCount
	ParameterType
	ParameterOutOfRange
	_ // reserved: OutputNotGLB
	PointerTooLow
	UnrecognizedErrorCode
	HandleOutOfBounds
	NotInitialized
	SizeOutOfBounds
	UnicodeError
	VtxOutOfBounds
	TriOutOfBounds
)

// Code returns the stable u32 wire code for this Kind.
func (k Kind) Code() uint32 {
	return uint32(k)
}

// String names the Kind for log lines and test failure messages.
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Mutex:
		return "Mutex"
	case Generation:
		return "Generation"
	case NotImplemented:
		return "NotImplemented"
	case ParameterCount:
		return "ParameterCount"
	case ParameterType:
		return "ParameterType"
	case ParameterOutOfRange:
		return "ParameterOutOfRange"
	case PointerTooLow:
		return "PointerTooLow"
	case UnrecognizedErrorCode:
		return "UnrecognizedErrorCode"
	case HandleOutOfBounds:
		return "HandleOutOfBounds"
	case NotInitialized:
		return "NotInitialized"
	case SizeOutOfBounds:
		return "SizeOutOfBounds"
	case UnicodeError:
		return "UnicodeError"
	case VtxOutOfBounds:
		return "VtxOutOfBounds"
	case TriOutOfBounds:
		return "TriOutOfBounds"
	default:
		return "Unknown"
	}
}

// Error wraps a Kind with a human-readable message and an optional cause.
type Error struct {
	Kind Kind
	msg  string
	err  error
}

// New builds an Error of the given Kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given Kind that wraps an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), err: cause}
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.msg, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Is reports whether target is an *Error with the same Kind, so callers can
// use errors.Is(err, emgerr.New(emgerr.VtxOutOfBounds, "")) style checks, or
// more commonly emgerr.KindOf(err) == emgerr.VtxOutOfBounds.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// KindOf extracts the Kind from err, or None if err is nil or not an *Error.
func KindOf(err error) Kind {
	if err == nil {
		return None
	}
	var e *Error
	if as, ok := err.(*Error); ok {
		e = as
		return e.Kind
	}
	return None
}

// PointerTooLowThreshold is the reserved collision window between failure
// codes (encoded as 0x1_0000_0000 + code) and valid byte offsets. Any byte
// offset below this value would be ambiguous with the failure encoding and
// must be rejected at the source, per spec.
const PointerTooLowThreshold = 1 << 16

// CheckPointer returns a PointerTooLow error if offset falls in the
// reserved collision window.
func CheckPointer(offset int) error {
	if offset != 0 && offset < PointerTooLowThreshold {
		return New(PointerTooLow, "byte offset %d is below the reserved %d boundary", offset, PointerTooLowThreshold)
	}
	return nil
}
