// Package generate converts the typed AST into LLVM IR.  It converts one
// package into a single LLVM module in a deterministic depth-first walk:
// Program -> Function -> Statement -> Expression.
package generate

import (
	"fmt"

	"minigo/ast"
	"minigo/report"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// Generator is responsible for converting a typed AST into an LLVM module.
// Generation is single-threaded: the generator holds exactly one build cursor
// at a time, and every routine that creates new blocks leaves the cursor at a
// well-defined position before returning.
type Generator struct {
	// prog is the program being generated.
	prog *ast.Program

	// mod is the LLVM module being generated.
	mod *ir.Module

	// funcs maps the names of already-generated user functions to their LLVM
	// functions.
	funcs map[string]*ir.Func

	// runtime maps the names of the declared runtime support routines to
	// their LLVM declarations.
	runtime map[string]*ir.Func

	// enclosingFunc is the function enclosing the block being generated.  It
	// must be set before generating any statement that may create new blocks.
	enclosingFunc *ir.Func

	// block is the build cursor: the current insertion point into the module.
	// Immediately after a conditional construct, the cursor is left at the
	// continuation block so callers may append further statements without
	// re-deriving position.
	block *ir.Block

	// symbols is the symbol table of the function currently being generated.
	symbols *SymbolTable

	// globalCounter is a counter used to name anonymous globals such as
	// interned strings.
	globalCounter int
}

// NewGenerator creates a new generator for the given program.
func NewGenerator(prog *ast.Program) *Generator {
	return &Generator{
		prog:    prog,
		mod:     ir.NewModule(),
		funcs:   make(map[string]*ir.Func),
		runtime: make(map[string]*ir.Func),
	}
}

// Generate runs the main generation algorithm for the program and returns the
// completed module.  The first failure aborts the whole generation: there is
// no partial-function fallback.
func (g *Generator) Generate() (*ir.Module, error) {
	// The runtime symbols must be declared before use so the final link step
	// can resolve them.
	g.declareRuntime()

	for _, fd := range g.prog.Funcs {
		if err := g.genFunction(fd); err != nil {
			return nil, err
		}
	}

	return g.mod, nil
}

// genFunction generates a single function definition.
func (g *Generator) genFunction(fd *ast.FuncDef) error {
	params := make([]*ir.Param, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = ir.NewParam(p.Name, p.Type.Repr())
	}

	// An absent return type lowers to a no-value signature.
	var retType lltypes.Type = lltypes.Void
	if fd.ReturnType != nil {
		retType = fd.ReturnType.Repr()
	}

	fn := g.mod.NewFunc(fd.Name, retType, params...)
	g.funcs[fd.Name] = fn
	g.enclosingFunc = fn

	// Each function gets a fresh symbol table owned by this pass.
	g.symbols = NewSymbolTable()

	g.block = fn.NewBlock("entry")

	// Bind each parameter to newly allocated stack storage.
	for i, p := range fd.Params {
		slot := g.block.NewAlloca(p.Type.Repr())
		g.block.NewStore(params[i], slot)
		g.symbols.Bind(p.Name, slot)
	}

	for _, stmt := range fd.Body {
		if err := g.genStmt(stmt); err != nil {
			return err
		}
	}

	// Terminate the final block if the body's own control flow did not.  For
	// a function declared to return nothing this is the implicit no-value
	// return; otherwise the block is only reachable past an exhaustive set of
	// returns and is marked unreachable.
	if g.block.Term == nil {
		if fd.ReturnType == nil {
			g.block.NewRet(nil)
		} else {
			g.block.NewUnreachable()
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// appendBlock adds a new basic block to the enclosing function.  It does
// *not* move the build cursor to the new block.
func (g *Generator) appendBlock() *ir.Block {
	return g.enclosingFunc.NewBlock(fmt.Sprintf("bb%d", len(g.enclosingFunc.Blocks)))
}

// internString materializes an addressable constant byte sequence for the
// given text and returns a pointer to its first byte.
func (g *Generator) internString(text string) constant.Constant {
	data := constant.NewCharArrayFromString(text + "\x00")

	glob := g.mod.NewGlobalDef(fmt.Sprintf("str.%d", g.globalCounter), data)
	g.globalCounter++

	zero := constant.NewInt(lltypes.I64, 0)
	return constant.NewGetElementPtr(glob.ContentType, glob, zero, zero)
}

// lookupFunc resolves a call target by name: user-defined functions shadow
// runtime routines.
func (g *Generator) lookupFunc(name string) (*ir.Func, error) {
	if fn, ok := g.funcs[name]; ok {
		return fn, nil
	}

	if fn, ok := g.runtime[name]; ok {
		return fn, nil
	}

	return nil, report.Errorf(report.UndefinedFunction, "function `%s` is not defined", name)
}
