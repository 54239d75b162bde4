package generate

import (
	"minigo/ast"
	"minigo/report"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genBinaryOp generates a binary operator application.  Dispatch is on the
// kind pair of the generated operand values, not the static type tag alone.
func (g *Generator) genBinaryOp(bop *ast.BinaryOp) (value.Value, error) {
	lhs, err := g.genExpr(bop.Lhs)
	if err != nil {
		return nil, err
	}

	rhs, err := g.genExpr(bop.Rhs)
	if err != nil {
		return nil, err
	}

	_, lhsInt := lhs.Type().(*lltypes.IntType)
	_, rhsInt := rhs.Type().(*lltypes.IntType)
	_, lhsFloat := lhs.Type().(*lltypes.FloatType)
	_, rhsFloat := rhs.Type().(*lltypes.FloatType)

	switch {
	case lhsInt && rhsInt:
		return g.genIntOp(bop.Op, lhs, rhs)
	case lhsFloat && rhsFloat:
		// Both operands must carry the identical float type: there is no
		// implicit promotion between float widths, ever.
		if !lhs.Type().Equal(rhs.Type()) {
			return nil, report.Errorf(report.TypeMismatch,
				"operands of `%s` have mismatched float widths (%s and %s)", bop.Op, lhs.Type(), rhs.Type())
		}

		return g.genFloatOp(bop.Op, lhs, rhs)
	}

	// Reaching this path means the upstream type checker missed a case.
	return nil, report.Errorf(report.UnsupportedOperation,
		"operator `%s` is not defined for operands of type %s and %s", bop.Op, lhs.Type(), rhs.Type())
}

// genIntOp generates an integer arithmetic or comparison instruction.
// Integers are 64-bit and signed; comparisons use signed ordering and
// produce a boolean.
func (g *Generator) genIntOp(op ast.Oper, lhs, rhs value.Value) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		return g.block.NewAdd(lhs, rhs), nil
	case ast.OpSub:
		return g.block.NewSub(lhs, rhs), nil
	case ast.OpMul:
		return g.block.NewMul(lhs, rhs), nil
	case ast.OpDiv:
		return g.genIntDiv(lhs, rhs), nil
	case ast.OpEq:
		return g.block.NewICmp(enum.IPredEQ, lhs, rhs), nil
	case ast.OpNeq:
		return g.block.NewICmp(enum.IPredNE, lhs, rhs), nil
	case ast.OpGt:
		return g.block.NewICmp(enum.IPredSGT, lhs, rhs), nil
	case ast.OpLt:
		return g.block.NewICmp(enum.IPredSLT, lhs, rhs), nil
	case ast.OpGeq:
		return g.block.NewICmp(enum.IPredSGE, lhs, rhs), nil
	case ast.OpLeq:
		return g.block.NewICmp(enum.IPredSLE, lhs, rhs), nil
	}

	return nil, report.Errorf(report.UnsupportedOperation, "operator `%s` is not defined for integers", op)
}

// genIntDiv generates a signed division guarded by a zero check.  The guard
// is a three-block diamond: the current block tests the divisor, a trap block
// panics and never rejoins, and a continuation block performs the division.
// The cursor is left at the continuation block.
func (g *Generator) genIntDiv(lhs, rhs value.Value) value.Value {
	isZero := g.block.NewICmp(enum.IPredEQ, rhs, constant.NewInt(rhs.Type().(*lltypes.IntType), 0))

	trapBlock := g.appendBlock()
	contBlock := g.appendBlock()
	g.block.NewCondBr(isZero, trapBlock, contBlock)

	// The trap aborts the compiled program at execution time with a fixed
	// diagnostic; it has no fallthrough.
	trapBlock.NewCall(g.runtime["__gopanic"], g.internString("division by zero"))
	trapBlock.NewUnreachable()

	g.block = contBlock
	return g.block.NewSDiv(lhs, rhs)
}

// genFloatOp generates a floating-point arithmetic or comparison instruction.
// Comparisons use ordered predicates and produce a boolean.
func (g *Generator) genFloatOp(op ast.Oper, lhs, rhs value.Value) (value.Value, error) {
	switch op {
	case ast.OpAdd:
		return g.block.NewFAdd(lhs, rhs), nil
	case ast.OpSub:
		return g.block.NewFSub(lhs, rhs), nil
	case ast.OpMul:
		return g.block.NewFMul(lhs, rhs), nil
	case ast.OpDiv:
		return g.block.NewFDiv(lhs, rhs), nil
	case ast.OpEq:
		return g.block.NewFCmp(enum.FPredOEQ, lhs, rhs), nil
	case ast.OpNeq:
		return g.block.NewFCmp(enum.FPredONE, lhs, rhs), nil
	case ast.OpGt:
		return g.block.NewFCmp(enum.FPredOGT, lhs, rhs), nil
	case ast.OpLt:
		return g.block.NewFCmp(enum.FPredOLT, lhs, rhs), nil
	case ast.OpGeq:
		return g.block.NewFCmp(enum.FPredOGE, lhs, rhs), nil
	case ast.OpLeq:
		return g.block.NewFCmp(enum.FPredOLE, lhs, rhs), nil
	}

	return nil, report.Errorf(report.UnsupportedOperation, "operator `%s` is not defined for floats", op)
}
