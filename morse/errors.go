package morse

import "fmt"

// ErrorKind distinguishes gomorse's error families, mirroring
// original_source/libmorse/exceptions.py's MorseError/CODE hierarchy.
type ErrorKind int

const (
	// Generic is the catch-all fallback (exceptions.py: MorseError, CODE=1).
	Generic ErrorKind = iota
	// Process is a processing-stage failure, e.g. an invalid resource
	// type (exceptions.py: ProcessMorseError, CODE=11).
	Process
	// Translator is input/output queue misuse (closed, full, empty) or
	// a "missing variation" window-exhaustion fault (spec.md 7; not
	// present in the Python original, added for the distilled spec).
	Translator
)

// Error is gomorse's single error type, carrying a stable numeric code
// per kind so callers (cmd/gomorse) can map it to a process exit code.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Code returns the stable integer code for e's kind.
func (e *Error) Code() int {
	switch e.Kind {
	case Process:
		return 11
	case Translator:
		return 21
	default:
		return 1
	}
}

func newGenericError(format string, args ...interface{}) *Error {
	return &Error{Kind: Generic, Message: fmt.Sprintf(format, args...)}
}

func newProcessError(format string, args ...interface{}) *Error {
	return &Error{Kind: Process, Message: fmt.Sprintf(format, args...)}
}

func newTranslatorError(format string, args ...interface{}) *Error {
	return &Error{Kind: Translator, Message: fmt.Sprintf(format, args...)}
}

// Sentinel Translator errors, referenced by identity from callers.
var (
	// ErrAlreadyClosed is raised by put/get/close on a closed Decoder,
	// or by close on an already-closed one.
	ErrAlreadyClosed = newTranslatorError("translator already closed")
	// ErrEmpty is raised by a non-blocking get against an empty output queue.
	ErrEmpty = newTranslatorError("get operation on empty queue")
	// ErrFullQueue is raised by put against a bounded, full input queue.
	ErrFullQueue = newTranslatorError("put operation on full queue")
)

// errMissingVariation is fatal: a window evicted past its already
// classified offset (spec.md 3, 9).
func errMissingVariation() *Error {
	return newTranslatorError("missing variation: window offset exhausted on eviction")
}

// isFatalError reports whether err should terminate the Pipeline
// Host's worker (spec.md 7: queue-state misuse and window-exhaustion
// are surfaced/fatal; clustering failures are recovered locally and
// never reach here as *Error values of kind Translator).
func isFatalError(err error) bool {
	me, ok := err.(*Error)
	if !ok {
		return false
	}
	return me.Kind == Translator
}

// GetReturnCode maps an error to a stable process exit code, mirroring
// original_source/libmorse/utils.py's get_return_code.
func GetReturnCode(err error) int {
	if err == nil {
		return 0
	}
	var me *Error
	if as, ok := err.(*Error); ok {
		me = as
	}
	if me == nil {
		return 1
	}
	return me.Code()
}
