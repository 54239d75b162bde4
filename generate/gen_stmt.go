package generate

import (
	"minigo/ast"
	"minigo/report"

	"github.com/llir/llvm/ir"
)

// genStmt generates the effects of a single statement.
func (g *Generator) genStmt(stmt ast.Stmt) error {
	switch v := stmt.(type) {
	case *ast.Assignment:
		return g.genAssignment(v)
	case *ast.If:
		return g.genIf(v)
	case *ast.Return:
		return g.genReturn(v)
	case *ast.ExprStmt:
		// Evaluate for side effect only, discarding any result.
		_, err := g.genExpr(v.Expr)
		return err
	}

	// unreachable: the statement variants are closed
	return report.Errorf(report.UnsupportedOperation, "unknown statement node")
}

// genAssignment generates a variable declaration or rebinding.  Rebinding a
// name stores through its existing stack slot instead of allocating a second
// one.
func (g *Generator) genAssignment(as *ast.Assignment) error {
	init, err := g.genExpr(as.Init)
	if err != nil {
		return err
	}

	slot, bound := g.symbols.Lookup(as.Name)
	if !bound {
		slot = g.block.NewAlloca(as.VarType.Repr())
		g.symbols.Bind(as.Name, slot)
	}

	g.block.NewStore(init, slot)
	return nil
}

// genReturn generates a return of a value; the current control path
// terminates here.
func (g *Generator) genReturn(ret *ast.Return) error {
	val, err := g.genExpr(ret.Expr)
	if err != nil {
		return err
	}

	g.block.NewRet(val)
	return nil
}

// genIf generates a conditional statement as a then/else/continuation block
// triple parented under the enclosing function.  Both arms branch to the
// continuation block, so an if without an else still merges control flow.
// The cursor is left at the continuation block.
func (g *Generator) genIf(ifStmt *ast.If) error {
	cond, err := g.genExpr(ifStmt.Cond)
	if err != nil {
		return err
	}

	thenBlock := g.appendBlock()
	elseBlock := g.appendBlock()
	contBlock := g.appendBlock()

	g.block.NewCondBr(cond, thenBlock, elseBlock)

	if err := g.genArm(ifStmt.Then, thenBlock, contBlock); err != nil {
		return err
	}

	if err := g.genArm(ifStmt.Else, elseBlock, contBlock); err != nil {
		return err
	}

	g.block = contBlock
	return nil
}

// genArm generates one arm of a conditional into its block and, unless the
// arm's own control flow already terminated, branches to the continuation
// block.  Bindings introduced inside the arm are scoped to it.
func (g *Generator) genArm(stmts []ast.Stmt, arm, cont *ir.Block) error {
	g.block = arm

	g.symbols.PushScope()
	defer g.symbols.PopScope()

	for _, stmt := range stmts {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}

	if g.block.Term == nil {
		g.block.NewBr(cont)
	}

	return nil
}
