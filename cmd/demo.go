package cmd

import (
	"minigo/ast"
	"minigo/types"
)

// demoProgram builds the typed AST the `demo` subcommand compiles.  It stands
// in for parsed source until a parser exists, and exercises calls, integer
// arithmetic, guarded division, conditionals, and string output.
func demoProgram() *ast.Program {
	intType := types.Int

	return &ast.Program{
		PackageName: "main",
		Funcs: []*ast.FuncDef{
			{
				Name: "classify",
				Params: []ast.Param{
					{Name: "n", Type: types.Int},
				},
				ReturnType: &intType,
				Body: []ast.Stmt{
					&ast.If{
						Cond: &ast.BinaryOp{
							Type: types.Bool,
							Op:   ast.OpGt,
							Lhs:  &ast.Name{Type: types.Int, Ident: "n"},
							Rhs:  &ast.Literal{Type: types.Int, Value: "5"},
						},
						Then: []ast.Stmt{
							&ast.Return{Expr: &ast.Literal{Type: types.Int, Value: "1"}},
						},
					},
					&ast.Return{Expr: &ast.Literal{Type: types.Int, Value: "0"}},
				},
			},
			{
				Name: "main",
				Body: []ast.Stmt{
					&ast.Assignment{
						Name:    "x",
						VarType: types.Int,
						Init: &ast.Call{
							Type: &intType,
							Func: "add",
							Args: []ast.Expr{
								&ast.Literal{Type: types.Int, Value: "2"},
								&ast.Literal{Type: types.Int, Value: "3"},
							},
						},
					},
					&ast.Assignment{
						Name:    "y",
						VarType: types.Int,
						Init: &ast.BinaryOp{
							Type: types.Int,
							Op:   ast.OpMul,
							Lhs:  &ast.Name{Type: types.Int, Ident: "x"},
							Rhs:  &ast.Literal{Type: types.Int, Value: "2"},
						},
					},
					&ast.Assignment{
						Name:    "q",
						VarType: types.Int,
						Init: &ast.BinaryOp{
							Type: types.Int,
							Op:   ast.OpDiv,
							Lhs:  &ast.Name{Type: types.Int, Ident: "y"},
							Rhs:  &ast.Name{Type: types.Int, Ident: "x"},
						},
					},
					&ast.ExprStmt{
						Expr: &ast.Call{
							Func: "__print_int",
							Args: []ast.Expr{
								&ast.Call{
									Type: &intType,
									Func: "classify",
									Args: []ast.Expr{&ast.Name{Type: types.Int, Ident: "q"}},
								},
							},
						},
					},
					&ast.Assignment{
						Name:    "z",
						VarType: types.String,
						Init:    &ast.Literal{Type: types.String, Value: `hello world!\n`},
					},
					&ast.ExprStmt{
						Expr: &ast.Call{
							Func: "__print_gostring",
							Args: []ast.Expr{&ast.Name{Type: types.String, Ident: "z"}},
						},
					},
					&ast.ExprStmt{
						Expr: &ast.Call{Func: "__flush_stdout"},
					},
				},
			},
		},
	}
}
