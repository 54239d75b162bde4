package generate

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
)

// The calling contract of the companion runtime: flat C-style calls, linked
// by name against the runtime archive.
var runtimeSignatures = []struct {
	name    string
	retType lltypes.Type
	params  []lltypes.Type
}{
	{"add", lltypes.I64, []lltypes.Type{lltypes.I64, lltypes.I64}},
	{"__gopanic", lltypes.Void, []lltypes.Type{lltypes.I8Ptr}},
	{"__flush_stdout", lltypes.Void, nil},
	{"__print_int", lltypes.Void, []lltypes.Type{lltypes.I64}},
	{"__print_bool", lltypes.Void, []lltypes.Type{lltypes.I1}},
	{"__print_float32", lltypes.Void, []lltypes.Type{lltypes.Float}},
	{"__print_float64", lltypes.Void, []lltypes.Type{lltypes.Double}},
	{"__print_gostring", lltypes.Void, []lltypes.Type{lltypes.I8Ptr}},
}

// declareRuntime declares every exposed runtime symbol in the module with
// external linkage.
func (g *Generator) declareRuntime() {
	for _, sig := range runtimeSignatures {
		params := make([]*ir.Param, len(sig.params))
		for i, pt := range sig.params {
			params[i] = ir.NewParam("", pt)
		}

		fn := g.mod.NewFunc(sig.name, sig.retType, params...)
		fn.Linkage = enum.LinkageExternal
		g.runtime[sig.name] = fn
	}
}
