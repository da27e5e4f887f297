package glushkov

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

func TestInDegree_NilIsNoOp(t *testing.T) {
	InDegree(nil)
	var n *ast.Node
	InDegree(&n)
}
