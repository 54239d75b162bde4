package report

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures that can abort compilation.
type ErrorKind int

// Enumeration of the different kinds of compilation failures.
const (
	// UndefinedVariable indicates a reference to a name that was never bound.
	// A prior validation stage is assumed to have rejected these, so observing
	// one is an internal-invariant violation.
	UndefinedVariable ErrorKind = iota

	// UndefinedFunction indicates a call whose target is not present in the
	// module.
	UndefinedFunction

	// TypeMismatch indicates a binary operator applied to incompatible float
	// widths.
	TypeMismatch

	// UnsupportedOperation indicates an operator applied to a type pairing
	// with no defined lowering, eg. string arithmetic.
	UnsupportedOperation

	// LiteralParseFailure indicates literal text that does not parse under
	// its declared type.
	LiteralParseFailure

	// ExternalToolFailure indicates that a toolchain subprocess reported
	// failure.
	ExternalToolFailure
)

var kindStrings = map[ErrorKind]string{
	UndefinedVariable:    "undefined variable",
	UndefinedFunction:    "undefined function",
	TypeMismatch:         "type mismatch",
	UnsupportedOperation: "unsupported operation",
	LiteralParseFailure:  "literal parse failure",
	ExternalToolFailure:  "external tool failure",
}

func (k ErrorKind) String() string {
	return kindStrings[k]
}

// -----------------------------------------------------------------------------

// CompileError is a typed failure produced during compilation.  One error
// aborts the whole compilation: generation never attempts partial recovery.
type CompileError struct {
	// The kind of failure.
	Kind ErrorKind

	// The formatted error message.
	Message string
}

func (ce *CompileError) Error() string {
	return ce.Message
}

// Errorf creates a new compile error of the given kind.
func Errorf(kind ErrorKind, format string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the error kind from an error returned by compilation.  The
// boolean is false if the error is not a compile error.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CompileError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}

	return 0, false
}
