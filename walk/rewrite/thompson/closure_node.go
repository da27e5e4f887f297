// Package thompson holds the Thompson-construction-specific rewrite
// passes: closure-node memoisation and the (currently stubbed) in-degree
// and infinite-ambiguity-removal passes.
package thompson

import (
	"github.com/bkmwatling/bru/ast"
	"github.com/bkmwatling/bru/walk"
)

// ClosureNode applies the CN(E) memoisation strategy: every STAR and PLUS
// subtree has its child replaced with CONCAT(MEMOISE, original-child), so
// a VM can consult/populate a memo table on loop re-entry. `F* -> (#F)*`
// and `F+ -> (#F)+`.
//
// Running ClosureNode on an already-rewritten tree is not idempotent: a
// second pass nests the memoisation node again (`a*` -> `(#a)*` ->
// `(##a)*`), since the pass has no way to recognise its own output. This
// mirrors the upstream C implementation exactly and is documented rather
// than "fixed".
func ClosureNode(r **ast.Node) {
	if r == nil || *r == nil {
		return
	}

	w := walk.New()
	w.RegisterWalk(ast.Star, closureWalk)
	w.RegisterWalk(ast.Plus, closureWalk)
	w.Walk(r)
}

func closureWalk(w *walk.Walker, curr **ast.Node) {
	n := *curr
	w.Recurse(&n.Left)
	n.Left = ast.NewConcat(ast.NewMemoise(), n.Left)
}
