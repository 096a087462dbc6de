package evaluator

import "github.com/atomicss/atomicss/internal/ast"

// Env holds variable-declaration bindings keyed by the stable identity of
// an identifier: a (symbol, syntactic-context) pair, so two different
// variables that happen to share a name in different scopes never
// collide. A nil *ast.Expr means "declared without an initializer"
// (`let x;`), which always deopts on lookup.
type Env struct {
	bindings map[ast.Ref]*ast.Expr
}

func NewEnv() *Env {
	return &Env{bindings: make(map[ast.Ref]*ast.Expr)}
}

func (e *Env) Bind(ref ast.Ref, init *ast.Expr) {
	e.bindings[ref] = init
}

func (e *Env) Lookup(ref ast.Ref) (*ast.Expr, bool) {
	init, ok := e.bindings[ref]
	if !ok || init == nil {
		return nil, false
	}
	return init, true
}
