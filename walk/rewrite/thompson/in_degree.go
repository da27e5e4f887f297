package thompson

import "github.com/bkmwatling/bru/ast"

// InDegree is meant to memoise a regular expression according to IN(E)
// for the Thompson construction (spec §2's "in-degree memoisation" rewrite
// pass). original_source only ships the header declaring this function
// (walkers/thompson/in_degree.h); no .c file implementing it was ever
// checked in upstream. Rather than invent semantics the source never
// specified, this is kept as a documented no-op, matching the treatment
// InfiniteAmbiguityRemoval already receives upstream.
//
// TODO: implement IN(E) memoisation once a reference body exists to
// ground it on.
func InDegree(r **ast.Node) {
	if r == nil || *r == nil {
		return
	}
}
