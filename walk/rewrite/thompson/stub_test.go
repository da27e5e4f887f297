package thompson

import (
	"testing"

	"github.com/bkmwatling/bru/ast"
)

func TestInDegree_StubLeavesTreeUnchanged(t *testing.T) {
	n := ast.NewStar(ast.NewLiteral('a'), true)
	before := *n
	InDegree(&n)
	if n.Kind != before.Kind || n.Left != before.Left {
		t.Fatalf("InDegree stub mutated the tree: %+v vs %+v", n, before)
	}
}

func TestInfiniteAmbiguityRemoval_StubLeavesTreeUnchanged(t *testing.T) {
	n := ast.NewStar(ast.NewLiteral('a'), true)
	before := *n
	InfiniteAmbiguityRemoval(&n)
	if n.Kind != before.Kind || n.Left != before.Left {
		t.Fatalf("InfiniteAmbiguityRemoval stub mutated the tree: %+v vs %+v", n, before)
	}
}

func TestStubs_NilIsNoOp(t *testing.T) {
	InDegree(nil)
	InfiniteAmbiguityRemoval(nil)
	var n *ast.Node
	InDegree(&n)
	InfiniteAmbiguityRemoval(&n)
}
