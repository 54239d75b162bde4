package ast

import "minigo/types"

// Expr is the closed set of expression nodes.  All expression nodes implement
// the `Expr` interface and are matched exhaustively at each generation site.
type Expr interface {
	exprNode()
}

// Name is a reference to an in-scope binding.
type Name struct {
	// The resolved type of the binding.
	Type types.Type

	// The identifier being referenced.
	Ident string
}

// Literal is a constant value.  The textual value encodes the literal per
// type: decimal text for numerics, "0"/"1" for booleans, and raw text for
// strings.
type Literal struct {
	Type types.Type

	Value string
}

// BinaryOp is a fully-typed binary operation over two typed sub-expressions.
type BinaryOp struct {
	// The resolved result type of the operation.
	Type types.Type

	Op Oper

	Lhs, Rhs Expr
}

// Call is a call to a named function with ordered argument expressions.
type Call struct {
	// The return type of the callee.  This is nil exactly when the target
	// function returns nothing.
	Type *types.Type

	// The name of the function being called.
	Func string

	Args []Expr
}

func (*Name) exprNode()     {}
func (*Literal) exprNode()  {}
func (*BinaryOp) exprNode() {}
func (*Call) exprNode()     {}

// -----------------------------------------------------------------------------

// Oper is a binary operator.
type Oper int

// Enumeration of the binary operators of the language.
const (
	OpAdd Oper = iota // +
	OpSub             // -
	OpMul             // *
	OpDiv             // /
	OpEq              // ==
	OpNeq             // !=
	OpGt              // >
	OpLt              // <
	OpGeq             // >=
	OpLeq             // <=
)

var operStrings = map[Oper]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpEq:  "==",
	OpNeq: "!=",
	OpGt:  ">",
	OpLt:  "<",
	OpGeq: ">=",
	OpLeq: "<=",
}

func (op Oper) String() string {
	return operStrings[op]
}
