package generate

import (
	"github.com/llir/llvm/ir/value"
)

// SymbolTable maps in-scope variable names to their stack storage locations
// for the function currently being generated.  It is exclusively owned by the
// generation pass that created it and lives for exactly one function's
// generation: a fresh table backs each function so names never leak across
// function boundaries.
type SymbolTable struct {
	// The stack of lexical scopes.  Scope 0 holds the function's parameters
	// and top-level locals; conditional arms push and pop their own scopes.
	scopes []map[string]value.Value
}

// NewSymbolTable creates a fresh symbol table with a single open scope.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{scopes: []map[string]value.Value{make(map[string]value.Value)}}
}

// PushScope pushes a new lexical scope onto the scope stack.
func (st *SymbolTable) PushScope() {
	st.scopes = append(st.scopes, make(map[string]value.Value))
}

// PopScope pops the innermost scope off of the scope stack, discarding its
// bindings.
func (st *SymbolTable) PopScope() {
	st.scopes = st.scopes[:len(st.scopes)-1]
}

// Bind inserts or overwrites the mapping for name in the innermost scope.
func (st *SymbolTable) Bind(name string, slot value.Value) {
	st.scopes[len(st.scopes)-1][name] = slot
}

// Lookup returns the storage location bound to name.  Scopes are searched
// innermost first to implement shadowing.
func (st *SymbolTable) Lookup(name string) (value.Value, bool) {
	for i := len(st.scopes) - 1; i >= 0; i-- {
		if slot, ok := st.scopes[i][name]; ok {
			return slot, true
		}
	}

	return nil, false
}
