// Package format pretty-prints a typed AST back to source text.
package format

import (
	"fmt"
	"strings"

	"minigo/ast"
	"minigo/types"
)

const indentStep = 4

// Program formats a whole program as source text.
func Program(prog *ast.Program) string {
	sb := &strings.Builder{}

	fmt.Fprintf(sb, "package %s\n\n", prog.PackageName)

	if len(prog.Imports) > 0 {
		fmt.Fprintf(sb, "import (\"%s\")\n\n", strings.Join(prog.Imports, ", "))
	}

	for i, fd := range prog.Funcs {
		if i > 0 {
			sb.WriteByte('\n')
		}

		writeFuncDef(sb, fd)
		sb.WriteByte('\n')
	}

	return sb.String()
}

func writeFuncDef(sb *strings.Builder, fd *ast.FuncDef) {
	params := make([]string, len(fd.Params))
	for i, p := range fd.Params {
		params[i] = fmt.Sprintf("%s %s", p.Name, p.Type)
	}

	fmt.Fprintf(sb, "func %s(%s) ", fd.Name, strings.Join(params, ", "))

	if fd.ReturnType != nil {
		fmt.Fprintf(sb, "%s ", *fd.ReturnType)
	}

	writeBlock(sb, fd.Body, 0)
}

func writeBlock(sb *strings.Builder, stmts []ast.Stmt, indent int) {
	sb.WriteString("{\n")

	for _, stmt := range stmts {
		writeStmt(sb, stmt, indent+indentStep)
		sb.WriteByte('\n')
	}

	writeIndent(sb, indent)
	sb.WriteString("}")
}

func writeStmt(sb *strings.Builder, stmt ast.Stmt, indent int) {
	writeIndent(sb, indent)

	switch v := stmt.(type) {
	case *ast.Assignment:
		fmt.Fprintf(sb, "var %s %s = %s", v.Name, v.VarType, formatExpr(v.Init))
	case *ast.If:
		fmt.Fprintf(sb, "if %s ", formatExpr(v.Cond))
		writeBlock(sb, v.Then, indent)

		if len(v.Else) > 0 {
			sb.WriteString(" else ")
			writeBlock(sb, v.Else, indent)
		}
	case *ast.Return:
		fmt.Fprintf(sb, "return %s", formatExpr(v.Expr))
	case *ast.ExprStmt:
		sb.WriteString(formatExpr(v.Expr))
	}
}

func formatExpr(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Name:
		return v.Ident
	case *ast.Literal:
		return formatLiteral(v)
	case *ast.BinaryOp:
		return fmt.Sprintf("%s %s %s", formatExpr(v.Lhs), v.Op, formatExpr(v.Rhs))
	case *ast.Call:
		args := make([]string, len(v.Args))
		for i, arg := range v.Args {
			args[i] = formatExpr(arg)
		}

		return fmt.Sprintf("%s(%s)", v.Func, strings.Join(args, ", "))
	}

	return ""
}

func formatLiteral(lit *ast.Literal) string {
	switch lit.Type {
	case types.Bool:
		if lit.Value == "1" {
			return "true"
		}

		return "false"
	case types.String:
		// The literal text already carries its escape sequences.
		return `"` + lit.Value + `"`
	}

	return lit.Value
}

func writeIndent(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat(" ", indent))
}
