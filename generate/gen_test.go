package generate

import (
	"strings"
	"testing"

	"minigo/ast"
	"minigo/report"
	"minigo/types"
)

// Helpers for building typed test programs.

func intLit(v string) *ast.Literal {
	return &ast.Literal{Type: types.Int, Value: v}
}

func intName(ident string) *ast.Name {
	return &ast.Name{Type: types.Int, Ident: ident}
}

func intOp(op ast.Oper, lhs, rhs ast.Expr) *ast.BinaryOp {
	resType := types.Int
	if op >= ast.OpEq {
		resType = types.Bool
	}

	return &ast.BinaryOp{Type: resType, Op: op, Lhs: lhs, Rhs: rhs}
}

// oneFunc wraps a body into a program with a single function named `f`.
func oneFunc(retType *types.Type, params []ast.Param, body ...ast.Stmt) *ast.Program {
	return &ast.Program{
		PackageName: "test",
		Funcs: []*ast.FuncDef{
			{Name: "f", Params: params, ReturnType: retType, Body: body},
		},
	}
}

func generateIR(t *testing.T, prog *ast.Program) string {
	t.Helper()

	mod, err := NewGenerator(prog).Generate()
	if err != nil {
		t.Fatalf("generation failed: %s", err)
	}

	return mod.String()
}

func generateError(t *testing.T, prog *ast.Program, wantKind report.ErrorKind) {
	t.Helper()

	_, err := NewGenerator(prog).Generate()
	if err == nil {
		t.Fatal("generation succeeded, want error")
	}

	kind, ok := report.KindOf(err)
	if !ok {
		t.Fatalf("generation returned an untyped error: %s", err)
	}

	if kind != wantKind {
		t.Fatalf("error kind is %s, want %s (error: %s)", kind, wantKind, err)
	}
}

func wantContains(t *testing.T, ir, substr string) {
	t.Helper()

	if !strings.Contains(ir, substr) {
		t.Errorf("generated IR does not contain %q:\n%s", substr, ir)
	}
}

// -----------------------------------------------------------------------------

func TestIntArithmetic(t *testing.T) {
	// var x int = 2; var y int = x * 2; return y
	intType := types.Int
	ir := generateIR(t, oneFunc(&intType, nil,
		&ast.Assignment{Name: "x", VarType: types.Int, Init: intLit("2")},
		&ast.Assignment{Name: "y", VarType: types.Int, Init: intOp(ast.OpMul, intName("x"), intLit("2"))},
		&ast.Return{Expr: intName("y")},
	))

	wantContains(t, ir, "mul i64")
	wantContains(t, ir, "ret i64")
}

func TestDivisionGuard(t *testing.T) {
	intType := types.Int
	ir := generateIR(t, oneFunc(&intType, []ast.Param{{Name: "x", Type: types.Int}},
		&ast.Return{Expr: intOp(ast.OpDiv, intLit("5"), intName("x"))},
	))

	// The guard is a test block, a trap block that panics without
	// fallthrough, and a continuation block holding the division.
	wantContains(t, ir, "icmp eq i64")
	wantContains(t, ir, "br i1")
	wantContains(t, ir, "call void @__gopanic")
	wantContains(t, ir, "unreachable")
	wantContains(t, ir, "sdiv i64")
	wantContains(t, ir, `division by zero\00`)
}

func TestDivisionLeavesCursorOnContinuation(t *testing.T) {
	// A statement after the division must land in the continuation block,
	// not the trap block.
	intType := types.Int
	ir := generateIR(t, oneFunc(&intType, []ast.Param{{Name: "x", Type: types.Int}},
		&ast.Assignment{Name: "q", VarType: types.Int, Init: intOp(ast.OpDiv, intLit("10"), intName("x"))},
		&ast.Return{Expr: intOp(ast.OpAdd, intName("q"), intLit("1"))},
	))

	trapNdx := strings.Index(ir, "unreachable")
	divNdx := strings.Index(ir, "sdiv i64")
	if trapNdx == -1 || divNdx == -1 || divNdx < trapNdx {
		t.Fatalf("division is not in the continuation block:\n%s", ir)
	}

	wantContains(t, ir, "add i64")
}

func TestIntComparisons(t *testing.T) {
	preds := map[ast.Oper]string{
		ast.OpEq:  "icmp eq i64",
		ast.OpNeq: "icmp ne i64",
		ast.OpGt:  "icmp sgt i64",
		ast.OpLt:  "icmp slt i64",
		ast.OpGeq: "icmp sge i64",
		ast.OpLeq: "icmp sle i64",
	}

	boolType := types.Bool
	for op, want := range preds {
		ir := generateIR(t, oneFunc(&boolType, nil,
			&ast.Return{Expr: intOp(op, intLit("1"), intLit("2"))},
		))

		wantContains(t, ir, want)
	}
}

func TestFloatArithmeticAndCompare(t *testing.T) {
	floatLit := func(ft types.Type, v string) *ast.Literal {
		return &ast.Literal{Type: ft, Value: v}
	}

	boolType := types.Bool

	ir := generateIR(t, oneFunc(&boolType, nil,
		&ast.Return{Expr: &ast.BinaryOp{
			Type: types.Bool,
			Op:   ast.OpEq,
			Lhs:  floatLit(types.Float32, "5.0"),
			Rhs:  floatLit(types.Float32, "5.0"),
		}},
	))
	wantContains(t, ir, "fcmp oeq float")

	ir = generateIR(t, oneFunc(&boolType, nil,
		&ast.Return{Expr: &ast.BinaryOp{
			Type: types.Bool,
			Op:   ast.OpEq,
			Lhs:  floatLit(types.Float64, "5.0"),
			Rhs:  floatLit(types.Float64, "5.0"),
		}},
	))
	wantContains(t, ir, "fcmp oeq double")

	f64 := types.Float64
	ir = generateIR(t, oneFunc(&f64, nil,
		&ast.Return{Expr: &ast.BinaryOp{
			Type: types.Float64,
			Op:   ast.OpAdd,
			Lhs:  floatLit(types.Float64, "1.5"),
			Rhs:  floatLit(types.Float64, "2.5"),
		}},
	))
	wantContains(t, ir, "fadd double")
}

func TestMixedFloatWidthsFail(t *testing.T) {
	// Float32 + Float64 must fail: no implicit promotion, ever.
	f32 := types.Float32
	generateError(t, oneFunc(&f32, nil,
		&ast.Return{Expr: &ast.BinaryOp{
			Type: types.Float32,
			Op:   ast.OpAdd,
			Lhs:  &ast.Literal{Type: types.Float32, Value: "1.0"},
			Rhs:  &ast.Literal{Type: types.Float64, Value: "2.0"},
		}},
	), report.TypeMismatch)
}

func TestStringArithmeticFails(t *testing.T) {
	strType := types.String
	generateError(t, oneFunc(&strType, nil,
		&ast.Return{Expr: &ast.BinaryOp{
			Type: types.String,
			Op:   ast.OpAdd,
			Lhs:  &ast.Literal{Type: types.String, Value: "a"},
			Rhs:  &ast.Literal{Type: types.String, Value: "b"},
		}},
	), report.UnsupportedOperation)
}

func TestUndefinedVariable(t *testing.T) {
	intType := types.Int
	generateError(t, oneFunc(&intType, nil,
		&ast.Return{Expr: intName("ghost")},
	), report.UndefinedVariable)
}

func TestUndefinedFunction(t *testing.T) {
	generateError(t, oneFunc(nil, nil,
		&ast.ExprStmt{Expr: &ast.Call{Func: "missing"}},
	), report.UndefinedFunction)
}

func TestForwardCallFails(t *testing.T) {
	// Single-pass generation: a call can only target an already-generated
	// function or a runtime routine.
	prog := &ast.Program{
		PackageName: "test",
		Funcs: []*ast.FuncDef{
			{Name: "caller", Body: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.Call{Func: "callee"}},
			}},
			{Name: "callee"},
		},
	}

	generateError(t, prog, report.UndefinedFunction)
}

func TestBadLiterals(t *testing.T) {
	intType := types.Int
	generateError(t, oneFunc(&intType, nil,
		&ast.Return{Expr: intLit("twelve")},
	), report.LiteralParseFailure)

	boolType := types.Bool
	generateError(t, oneFunc(&boolType, nil,
		&ast.Return{Expr: &ast.Literal{Type: types.Bool, Value: "true"}},
	), report.LiteralParseFailure)
}

func TestVoidFunctionImplicitReturn(t *testing.T) {
	ir := generateIR(t, oneFunc(nil, nil))
	wantContains(t, ir, "ret void")
}

func TestIfWithoutElseMerges(t *testing.T) {
	ir := generateIR(t, oneFunc(nil, nil,
		&ast.If{
			Cond: &ast.Literal{Type: types.Bool, Value: "1"},
			Then: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.Call{Func: "__flush_stdout"}},
			},
		},
	))

	// Both the then-path and the empty else-path must branch to the same
	// continuation block.
	if n := strings.Count(ir, "br label %bb3"); n != 2 {
		t.Fatalf("found %d branches to the continuation block, want 2:\n%s", n, ir)
	}
}

func TestIfElseBranches(t *testing.T) {
	// if 5.0 == 5.0 { print("good") } else { print("oops") }
	ir := generateIR(t, oneFunc(nil, nil,
		&ast.If{
			Cond: &ast.BinaryOp{
				Type: types.Bool,
				Op:   ast.OpEq,
				Lhs:  &ast.Literal{Type: types.Float64, Value: "5.0"},
				Rhs:  &ast.Literal{Type: types.Float64, Value: "5.0"},
			},
			Then: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.Call{
					Func: "__print_gostring",
					Args: []ast.Expr{&ast.Literal{Type: types.String, Value: "good"}},
				}},
			},
			Else: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.Call{
					Func: "__print_gostring",
					Args: []ast.Expr{&ast.Literal{Type: types.String, Value: "oops"}},
				}},
			},
		},
	))

	wantContains(t, ir, "fcmp oeq double")
	wantContains(t, ir, `good\00`)
	wantContains(t, ir, `oops\00`)
	wantContains(t, ir, "br i1")
}

func TestNestedIf(t *testing.T) {
	intType := types.Int
	ir := generateIR(t, oneFunc(&intType, []ast.Param{{Name: "n", Type: types.Int}},
		&ast.If{
			Cond: intOp(ast.OpGt, intName("n"), intLit("0")),
			Then: []ast.Stmt{
				&ast.If{
					Cond: intOp(ast.OpGt, intName("n"), intLit("10")),
					Then: []ast.Stmt{&ast.Return{Expr: intLit("2")}},
				},
				&ast.Return{Expr: intLit("1")},
			},
		},
		&ast.Return{Expr: intLit("0")},
	))

	// entry + 2 triples = 7 blocks
	for _, label := range []string{"bb1:", "bb2:", "bb3:", "bb4:", "bb5:", "bb6:"} {
		wantContains(t, ir, label)
	}
}

func TestIfArmScopeIsDiscarded(t *testing.T) {
	// A binding introduced inside an if arm is not visible after the arm
	// closes.
	intType := types.Int
	generateError(t, oneFunc(&intType, nil,
		&ast.If{
			Cond: &ast.Literal{Type: types.Bool, Value: "1"},
			Then: []ast.Stmt{
				&ast.Assignment{Name: "tmp", VarType: types.Int, Init: intLit("1")},
			},
		},
		&ast.Return{Expr: intName("tmp")},
	), report.UndefinedVariable)
}

func TestRebindReusesStorage(t *testing.T) {
	ir := generateIR(t, oneFunc(nil, nil,
		&ast.Assignment{Name: "x", VarType: types.Int, Init: intLit("2")},
		&ast.Assignment{Name: "x", VarType: types.Int, Init: intLit("3")},
	))

	if n := strings.Count(ir, "alloca"); n != 1 {
		t.Fatalf("rebinding allocated %d slots, want 1:\n%s", n, ir)
	}
}

func TestSymbolTableFreshPerFunction(t *testing.T) {
	// A name bound in one function must not be visible in a later one.
	intType := types.Int
	prog := &ast.Program{
		PackageName: "test",
		Funcs: []*ast.FuncDef{
			{Name: "first", Body: []ast.Stmt{
				&ast.Assignment{Name: "x", VarType: types.Int, Init: intLit("1")},
			}},
			{Name: "second", ReturnType: &intType, Body: []ast.Stmt{
				&ast.Return{Expr: intName("x")},
			}},
		},
	}

	generateError(t, prog, report.UndefinedVariable)
}

func TestParamsAreStackBound(t *testing.T) {
	intType := types.Int
	ir := generateIR(t, oneFunc(&intType,
		[]ast.Param{{Name: "a", Type: types.Int}, {Name: "b", Type: types.Int}},
		&ast.Return{Expr: intOp(ast.OpAdd, intName("a"), intName("b"))},
	))

	if n := strings.Count(ir, "alloca i64"); n != 2 {
		t.Fatalf("found %d parameter slots, want 2:\n%s", n, ir)
	}

	wantContains(t, ir, "add i64")
}

func TestVoidUserCall(t *testing.T) {
	prog := &ast.Program{
		PackageName: "test",
		Funcs: []*ast.FuncDef{
			{Name: "noop"},
			{Name: "main", Body: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.Call{Func: "noop"}},
			}},
		},
	}

	ir := generateIR(t, prog)
	wantContains(t, ir, "call void @noop()")
}

func TestRuntimeDeclarations(t *testing.T) {
	ir := generateIR(t, &ast.Program{PackageName: "test"})

	for _, want := range []string{
		"declare i64 @add(i64",
		"declare void @__gopanic(i8*",
		"declare void @__flush_stdout()",
		"declare void @__print_int(i64",
		"declare void @__print_bool(i1",
		"declare void @__print_float32(float",
		"declare void @__print_float64(double",
		"declare void @__print_gostring(i8*",
	} {
		wantContains(t, ir, want)
	}
}

func TestStringLiteralUnescapesNewline(t *testing.T) {
	ir := generateIR(t, oneFunc(nil, nil,
		&ast.ExprStmt{Expr: &ast.Call{
			Func: "__print_gostring",
			Args: []ast.Expr{&ast.Literal{Type: types.String, Value: `hi\n`}},
		}},
	))

	// The two-character escape becomes a real newline (0x0A) in the interned
	// bytes.
	wantContains(t, ir, `hi\0A\00`)
}

func TestGenerationOrderIsPreserved(t *testing.T) {
	prog := &ast.Program{
		PackageName: "test",
		Funcs: []*ast.FuncDef{
			{Name: "alpha"},
			{Name: "beta"},
			{Name: "gamma"},
		},
	}

	ir := generateIR(t, prog)

	alpha := strings.Index(ir, "define void @alpha")
	beta := strings.Index(ir, "define void @beta")
	gamma := strings.Index(ir, "define void @gamma")
	if alpha == -1 || beta == -1 || gamma == -1 || !(alpha < beta && beta < gamma) {
		t.Fatalf("functions are not emitted in program order:\n%s", ir)
	}
}
