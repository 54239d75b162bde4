// Package types defines the value types of the source language and their
// machine-level representations.
package types

import (
	"minigo/report"

	lltypes "github.com/llir/llvm/ir/types"
)

// Type represents a source-language value type.  Types are compared
// structurally: there is no subtyping and no implicit widening.
type Type int

// Enumeration of the value types of the language.
const (
	Int     Type = iota // 64-bit signed integer
	Bool                // 1-bit boolean
	Float32             // IEEE binary32
	Float64             // IEEE binary64
	String              // pointer to NUL-terminated bytes
)

// Repr returns the LLVM representation of the type.
func (t Type) Repr() lltypes.Type {
	switch t {
	case Int:
		return lltypes.I64
	case Bool:
		return lltypes.I1
	case Float32:
		return lltypes.Float
	case Float64:
		return lltypes.Double
	case String:
		return lltypes.I8Ptr
	}

	// unreachable
	return nil
}

// Precision returns the bit width used when lowering literals of the type.
// Strings have no precision concept, so asking for one is an error.
func (t Type) Precision() (int, error) {
	switch t {
	case Int, Float64:
		return 64, nil
	case Float32:
		return 32, nil
	case Bool:
		return 1, nil
	}

	return 0, report.Errorf(report.UnsupportedOperation, "type `%s` has no numeric precision", t)
}

func (t Type) String() string {
	switch t {
	case Int:
		return "int"
	case Bool:
		return "bool"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case String:
		return "string"
	}

	return "<unknown>"
}
