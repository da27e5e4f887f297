// Package glushkov holds the Glushkov-construction-specific rewrite
// passes.
package glushkov

import "github.com/bkmwatling/bru/ast"

// InDegree is meant to memoise a regular expression according to IN(E)
// for the Glushkov construction. As with thompson.InDegree,
// original_source ships only glushkov/in_degree.h with no implementation
// to ground a body on; kept as a documented no-op rather than invented.
//
// TODO: implement IN(E) memoisation once a reference body exists to
// ground it on.
func InDegree(r **ast.Node) {
	if r == nil || *r == nil {
		return
	}
}
