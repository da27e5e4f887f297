package thompson

import (
	"github.com/bkmwatling/bru/ast"
	"github.com/bkmwatling/bru/walk"
)

// InfiniteAmbiguityRemoval is meant to memoise a regular expression
// according to IAR(E). original_source/.../infinite_ambiguity_removal.c is
// itself a stub upstream (it constructs a Walker and releases it without
// registering any walk functions), so this is kept out of scope here too,
// per spec §9.
//
// TODO: implement IAR(E) once the upstream algorithm is specified.
func InfiniteAmbiguityRemoval(r **ast.Node) {
	if r == nil || *r == nil {
		return
	}

	w := walk.New()
	w.Walk(r)
}
