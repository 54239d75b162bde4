// Package ast defines the typed tree consumed by code generation.  The tree
// is produced for one compilation unit (package) and every node carries its
// resolved type: the backend never infers types, it only consumes them.
//
// There is no parser yet, so programs are constructed programmatically by the
// embedding application.
package ast

import "minigo/types"

// Program is the typed AST for one package.  It owns all of the package's
// functions and lives for the whole compilation.
type Program struct {
	// The name of the package being compiled.
	PackageName string

	// The ordered list of imported package names.  Imports are unused by code
	// generation and are carried only for round-trip formatting.
	Imports []string

	// The ordered list of function definitions.  Generation preserves this
	// order for output reproducibility.
	Funcs []*FuncDef
}

// Param is a single (name, type) function parameter.  Parameter names are
// unique within their function.
type Param struct {
	Name string
	Type types.Type
}

// FuncDef is a single function definition.  One FuncDef maps to exactly one
// generated callable unit; parameters become stack-addressable local bindings
// on entry.
type FuncDef struct {
	Name   string
	Params []Param

	// The return type of the function.  A nil return type means the function
	// produces no value.
	ReturnType *types.Type

	// The ordered statements of the function body.
	Body []Stmt
}
