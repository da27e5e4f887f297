// Package ast defines the regular-expression syntax tree consumed by the
// walk and serialize packages.
//
// Node is a single tagged struct rather than one Go type per kind: the
// walk package dispatches on Kind through an array indexed by Kind, and a
// uniform struct keeps that dispatch table simple to build and to
// override per kind. The parser that produces a Node tree, and the
// bytecode compiler that consumes one, are both out of scope here.
package ast

import "fmt"

// Kind tags the variant a Node represents.
type Kind int

const (
	Caret Kind = iota
	Dollar
	Memoise
	Literal
	CC
	Alt
	Concat
	Capture
	Star
	Plus
	Ques
	Counter
	Lookahead

	NumKinds
)

func (k Kind) String() string {
	switch k {
	case Caret:
		return "Caret"
	case Dollar:
		return "Dollar"
	case Memoise:
		return "Memoise"
	case Literal:
		return "Literal"
	case CC:
		return "CC"
	case Alt:
		return "Alt"
	case Concat:
		return "Concat"
	case Capture:
		return "Capture"
	case Star:
		return "Star"
	case Plus:
		return "Plus"
	case Ques:
		return "Ques"
	case Counter:
		return "Counter"
	case Lookahead:
		return "Lookahead"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// CharClass is an opaque payload for CC nodes. The parser that populates
// it is out of scope for this module; it exists so CC nodes round-trip
// through the tree even though serialize.ToString cannot render one yet.
type CharClass struct {
	// Raw holds a parser-defined representation (e.g. a source fragment
	// such as "[a-z]"). Nothing in this module interprets it.
	Raw string
}

// Node is a regular-expression syntax tree node. Only the fields relevant
// to Kind are meaningful; see the per-kind invariants on the constructors
// below.
type Node struct {
	Kind Kind

	// nullary payloads
	Ch    rune
	Class *CharClass

	// unary payloads (Left != nil, Right == nil)
	Idx      int  // Capture
	Greedy   bool // Star, Plus, Ques, Counter
	Positive bool // Lookahead
	Min, Max int  // Counter

	Left, Right *Node
}

// IsTerminal reports whether k has no children.
func IsTerminal(k Kind) bool {
	switch k {
	case Caret, Dollar, Memoise, Literal, CC:
		return true
	default:
		return false
	}
}

// IsUnary reports whether k has exactly one child (Left).
func IsUnary(k Kind) bool {
	switch k {
	case Capture, Star, Plus, Ques, Counter, Lookahead:
		return true
	default:
		return false
	}
}

// IsBinary reports whether k has two children (Left and Right).
func IsBinary(k Kind) bool {
	return k == Alt || k == Concat
}

// IsOperator reports whether k is neither terminal nor a parenthetical
// grouping already reconstructed by serialize (i.e. it is Star, Plus,
// Ques, Counter, Alt, or Concat) — used by serialize to decide whether an
// operand needs a non-capturing group wrapped around it to preserve
// precedence on re-parse.
func IsOperator(k Kind) bool {
	return !IsTerminal(k) && k != Capture && k != Lookahead
}

func arityPanic(k Kind, left, right *Node) {
	panic(fmt.Sprintf("ast: invalid arity for %s: left=%v right=%v", k, left != nil, right != nil))
}

// NewCaret constructs a CARET node.
func NewCaret() *Node { return &Node{Kind: Caret} }

// NewDollar constructs a DOLLAR node.
func NewDollar() *Node { return &Node{Kind: Dollar} }

// NewMemoise constructs a synthetic MEMOISE node, as inserted by rewrite
// passes (walk/rewrite/thompson.ClosureNode).
func NewMemoise() *Node { return &Node{Kind: Memoise} }

// NewLiteral constructs a LITERAL node matching a single character.
func NewLiteral(ch rune) *Node { return &Node{Kind: Literal, Ch: ch} }

// NewCC constructs a CC (character class) node.
func NewCC(class *CharClass) *Node { return &Node{Kind: CC, Class: class} }

// NewCapture constructs a CAPTURE node around left, tagged with group
// index idx. Panics if left is nil.
func NewCapture(idx int, left *Node) *Node {
	if left == nil {
		arityPanic(Capture, left, nil)
	}
	return &Node{Kind: Capture, Idx: idx, Left: left}
}

// NewStar constructs a STAR (zero-or-more) node around left. Panics if
// left is nil.
func NewStar(left *Node, greedy bool) *Node {
	if left == nil {
		arityPanic(Star, left, nil)
	}
	return &Node{Kind: Star, Left: left, Greedy: greedy}
}

// NewPlus constructs a PLUS (one-or-more) node around left. Panics if
// left is nil.
func NewPlus(left *Node, greedy bool) *Node {
	if left == nil {
		arityPanic(Plus, left, nil)
	}
	return &Node{Kind: Plus, Left: left, Greedy: greedy}
}

// NewQues constructs a QUES (zero-or-one) node around left. Panics if
// left is nil.
func NewQues(left *Node, greedy bool) *Node {
	if left == nil {
		arityPanic(Ques, left, nil)
	}
	return &Node{Kind: Ques, Left: left, Greedy: greedy}
}

// NewCounter constructs a COUNTER ({min,max}) node around left. Panics if
// left is nil or min > max.
func NewCounter(left *Node, min, max int, greedy bool) *Node {
	if left == nil {
		arityPanic(Counter, left, nil)
	}
	if min > max {
		panic(fmt.Sprintf("ast: invalid counter bounds: min=%d > max=%d", min, max))
	}
	return &Node{Kind: Counter, Left: left, Min: min, Max: max, Greedy: greedy}
}

// NewLookahead constructs a LOOKAHEAD node around left. Panics if left is
// nil. The body of a lookahead is opaque to the default Walker (spec
// treats it as childless for recursion purposes) even though Left is set.
func NewLookahead(left *Node, positive bool) *Node {
	if left == nil {
		arityPanic(Lookahead, left, nil)
	}
	return &Node{Kind: Lookahead, Left: left, Positive: positive}
}

// NewAlt constructs an ALT (alternation) node. Panics if either child is
// nil.
func NewAlt(left, right *Node) *Node {
	if left == nil || right == nil {
		arityPanic(Alt, left, right)
	}
	return &Node{Kind: Alt, Left: left, Right: right}
}

// NewConcat constructs a CONCAT (concatenation) node. Panics if either
// child is nil.
func NewConcat(left, right *Node) *Node {
	if left == nil || right == nil {
		arityPanic(Concat, left, right)
	}
	return &Node{Kind: Concat, Left: left, Right: right}
}
