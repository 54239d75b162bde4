package ast

import "minigo/types"

// Stmt is the closed set of statement nodes.
type Stmt interface {
	stmtNode()
}

// Assignment introduces or rebinds a local variable.  Rebinding a name reuses
// its storage location rather than allocating a second one.
type Assignment struct {
	// The name being bound.
	Name string

	// The declared type of the variable.
	VarType types.Type

	// The initializer expression.
	Init Expr
}

// If is a conditional statement.  The else block may be empty: an if without
// an else still merges control flow into a single continuation block.
type If struct {
	// The condition expression.  Must yield a boolean truth value.
	Cond Expr

	// The ordered statements of each branch.
	Then, Else []Stmt
}

// Return terminates the function with a value.
type Return struct {
	Expr Expr
}

// ExprStmt evaluates an expression (typically a call) for side effect only,
// discarding any result.
type ExprStmt struct {
	Expr Expr
}

func (*Assignment) stmtNode() {}
func (*If) stmtNode()         {}
func (*Return) stmtNode()     {}
func (*ExprStmt) stmtNode()   {}
