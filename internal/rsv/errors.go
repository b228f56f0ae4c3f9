package rsv

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes I/O failures. The numeric values double as the
// process exit status for each kind.
type ErrorKind int

const (
	// KindRead indicates a byte could not be read from an opened source.
	KindRead ErrorKind = 1
	// KindWrite indicates output could not be written to the sink.
	KindWrite ErrorKind = 2
	// KindOpen indicates a named source could not be opened.
	KindOpen ErrorKind = 3
)

func (k ErrorKind) String() string {
	switch k {
	case KindRead:
		return "reading"
	case KindWrite:
		return "writing"
	case KindOpen:
		return "opening"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a terminal I/O failure tied to the source being processed.
// Write failures carry the name of the source whose output was being
// written.
type Error struct {
	Kind   ErrorKind
	Source string
	Err    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("in %q: %s error (%v)", e.Source, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}

// IsOpenError reports whether err is an Open failure.
func IsOpenError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindOpen
}

// IsReadError reports whether err is a Read failure.
func IsReadError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindRead
}

// IsWriteError reports whether err is a Write failure.
func IsWriteError(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindWrite
}
