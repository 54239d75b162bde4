package generate

import (
	"strconv"
	"strings"

	"minigo/ast"
	"minigo/report"
	"minigo/types"

	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// genExpr generates an expression, appending onto the block under the build
// cursor, and returns the typed machine value it produces.
func (g *Generator) genExpr(expr ast.Expr) (value.Value, error) {
	switch v := expr.(type) {
	case *ast.Name:
		return g.genNameRef(v)
	case *ast.Literal:
		return g.genLiteral(v)
	case *ast.BinaryOp:
		return g.genBinaryOp(v)
	case *ast.Call:
		return g.genCall(v)
	}

	// unreachable: the expression variants are closed
	return nil, report.Errorf(report.UnsupportedOperation, "unknown expression node")
}

// genNameRef generates a reference to an in-scope binding by loading its
// current value from its storage location.
func (g *Generator) genNameRef(name *ast.Name) (value.Value, error) {
	slot, ok := g.symbols.Lookup(name.Ident)
	if !ok {
		// Should have been caught by the upstream semantic checker.
		return nil, report.Errorf(report.UndefinedVariable, "variable `%s` is not defined", name.Ident)
	}

	return g.block.NewLoad(slot.Type().(*lltypes.PointerType).ElemType, slot), nil
}

// genLiteral generates a literal constant, parsing its textual value
// according to its declared type.
func (g *Generator) genLiteral(lit *ast.Literal) (value.Value, error) {
	switch lit.Type {
	case types.Int:
		x, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return nil, report.Errorf(report.LiteralParseFailure, "`%s` is not a valid int literal", lit.Value)
		}

		return constant.NewInt(lltypes.I64, x), nil
	case types.Bool:
		// Boolean literal text is "1" for true and "0" for false.
		switch lit.Value {
		case "1":
			return constant.NewBool(true), nil
		case "0":
			return constant.NewBool(false), nil
		}

		return nil, report.Errorf(report.LiteralParseFailure, "`%s` is not a valid bool literal", lit.Value)
	case types.Float32:
		x, err := strconv.ParseFloat(lit.Value, 32)
		if err != nil {
			return nil, report.Errorf(report.LiteralParseFailure, "`%s` is not a valid float32 literal", lit.Value)
		}

		return constant.NewFloat(lltypes.Float, x), nil
	case types.Float64:
		x, err := strconv.ParseFloat(lit.Value, 64)
		if err != nil {
			return nil, report.Errorf(report.LiteralParseFailure, "`%s` is not a valid float64 literal", lit.Value)
		}

		return constant.NewFloat(lltypes.Double, x), nil
	case types.String:
		// The textual escape `\n` is unescaped before emission.
		return g.internString(strings.ReplaceAll(lit.Value, `\n`, "\n")), nil
	}

	// unreachable
	return nil, report.Errorf(report.LiteralParseFailure, "literal of unknown type")
}

// genCall generates a function call.  Arguments are generated in
// left-to-right order.
func (g *Generator) genCall(call *ast.Call) (value.Value, error) {
	callee, err := g.lookupFunc(call.Func)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(call.Args))
	for i, argExpr := range call.Args {
		arg, err := g.genExpr(argExpr)
		if err != nil {
			return nil, err
		}

		args[i] = arg
	}

	result := g.block.NewCall(callee, args...)

	// A void callee still has to yield *some* typed value since every call
	// site of genExpr expects one.  The sentinel is never consumed: void
	// calls only ever appear as statement-level expressions.
	if call.Type == nil {
		return constant.NewBool(true), nil
	}

	return result, nil
}
