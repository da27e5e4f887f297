// Package walk implements a generic, table-driven depth-first traversal
// engine over an ast.Node tree, along with an in-place subtree rewrite
// capability. It replaces a per-kind switch statement with a dispatch
// table indexed by ast.Kind, so individual kinds can be overridden
// (RegisterWalk) without touching the rest of the traversal.
//
// The default Walker returned by New walks every kind in-order while
// firing all three events (Preorder, Inorder, Postorder) at the
// appropriate points; see New for the exact emission policy per arity.
package walk

import "github.com/bkmwatling/bru/ast"

// Event identifies a traversal position at which listeners fire.
type Event int

const (
	Preorder Event = iota
	Inorder
	Postorder

	numEvents
)

// WalkFunc implements traversal (and optionally in-place rewrite) for one
// ast.Kind. It receives a pointer to the pointer currently being walked,
// so it may reassign *curr (replacing the current node) or the fields of
// *curr (replacing a child) before or after recursing into children.
type WalkFunc func(w *Walker, curr **ast.Node)

// ListenFunc observes a node at one traversal event. Listeners must not
// mutate tree structure; use a WalkFunc override for that.
type ListenFunc func(state any, curr *ast.Node)

// Walker holds the dispatch tables for one traversal. It is built fresh
// per traversal and owns no tree memory: Release returns the current root
// without freeing anything.
type Walker struct {
	regex **ast.Node

	walkFn       [ast.NumKinds]WalkFunc
	walkTerminal WalkFunc

	trigger        [numEvents][ast.NumKinds]ListenFunc
	listenTerminal ListenFunc

	// State is visible to every WalkFunc and ListenFunc registered on
	// this Walker.
	State any
}

// New constructs a Walker with the identity traversal installed for every
// ast.Kind: terminals fire all three events consecutively (after the
// terminal listener); unary kinds fire Preorder, recurse Left, fire
// Inorder, fire Postorder; binary kinds additionally recurse Right
// between Inorder and Postorder. Lookahead is treated as childless for
// recursion purposes even though it carries a Left child — its body is
// opaque to the default walker.
func New() *Walker {
	w := &Walker{}

	w.walkTerminal = func(w *Walker, curr **ast.Node) {
		w.triggerTerminal(*curr)
		w.fireEvent(Preorder, *curr)
		w.fireEvent(Inorder, *curr)
		w.fireEvent(Postorder, *curr)
	}

	for k := ast.Kind(0); k < ast.NumKinds; k++ {
		switch {
		case ast.IsTerminal(k):
			w.walkFn[k] = walkTerminalDispatch
		case k == ast.Lookahead:
			w.walkFn[k] = walkNoRecurse
		case ast.IsUnary(k):
			w.walkFn[k] = walkUnary
		case ast.IsBinary(k):
			w.walkFn[k] = walkBinary
		}
	}

	return w
}

func walkTerminalDispatch(w *Walker, curr **ast.Node) {
	w.walkTerminal(w, curr)
}

// walkNoRecurse fires all three events without recursing — used for
// Lookahead, whose body is opaque to the default traversal.
func walkNoRecurse(w *Walker, curr **ast.Node) {
	w.fireEvent(Preorder, *curr)
	w.fireEvent(Inorder, *curr)
	w.fireEvent(Postorder, *curr)
}

func walkUnary(w *Walker, curr **ast.Node) {
	w.fireEvent(Preorder, *curr)
	if (*curr).Left != nil {
		w.walk(&(*curr).Left)
	}
	w.fireEvent(Inorder, *curr)
	w.fireEvent(Postorder, *curr)
}

func walkBinary(w *Walker, curr **ast.Node) {
	w.fireEvent(Preorder, *curr)
	if (*curr).Left != nil {
		w.walk(&(*curr).Left)
	}
	w.fireEvent(Inorder, *curr)
	if (*curr).Right != nil {
		w.walk(&(*curr).Right)
	}
	w.fireEvent(Postorder, *curr)
}

func (w *Walker) walk(n **ast.Node) {
	w.walkFn[(*n).Kind](w, n)
}

// Recurse walks into *n using this Walker's current dispatch table, if
// *n is non-nil. Overriding WalkFuncs (registered via RegisterWalk) call
// this to recurse into a child before or after rewriting it — see
// walk/rewrite/thompson.ClosureNode for the canonical example of
// recurse-then-rewrite.
func (w *Walker) Recurse(n **ast.Node) {
	if *n != nil {
		w.walk(n)
	}
}

func (w *Walker) fireEvent(e Event, n *ast.Node) {
	if fn := w.trigger[e][n.Kind]; fn != nil {
		fn(w.State, n)
	}
}

func (w *Walker) triggerTerminal(n *ast.Node) {
	if w.listenTerminal != nil {
		w.listenTerminal(w.State, n)
	}
}

// RegisterWalk overrides the traversal function for kind. fn is
// responsible for firing whatever events it needs (via w's registered
// listeners being invoked indirectly isn't possible from outside the
// package; overriding WalkFuncs are expected to call back into the
// default behaviour they need, or reimplement it, as
// walk/rewrite/thompson.ClosureNode does).
func (w *Walker) RegisterWalk(kind ast.Kind, fn WalkFunc) {
	w.walkFn[kind] = fn
}

// RegisterTerminalWalk overrides the traversal function shared by every
// terminal (childless) kind.
func (w *Walker) RegisterTerminalWalk(fn WalkFunc) {
	w.walkTerminal = fn
}

// RegisterListener registers a listener for kind at event. Listeners
// receive the Walker's State and the current node; they must not mutate
// tree structure.
func (w *Walker) RegisterListener(event Event, kind ast.Kind, fn ListenFunc) {
	w.trigger[event][kind] = fn
}

// RegisterTerminalListener registers a listener fired for every terminal
// (childless) kind, before that kind's Preorder, Inorder and Postorder
// listeners.
func (w *Walker) RegisterTerminalListener(fn ListenFunc) {
	w.listenTerminal = fn
}

// Walk traverses the tree rooted at *r, invoking registered walk
// functions and listeners. It returns the root of the previous traversal
// performed by this Walker (nil on the first call). Walk(nil) and
// Walk(&nil) are no-ops returning nil, matching the "null inputs" error
// taxonomy: there is no error return, only a nil result.
func (w *Walker) Walk(r **ast.Node) *ast.Node {
	if r == nil || *r == nil {
		return nil
	}

	var prev *ast.Node
	if w.regex != nil {
		prev = *w.regex
	}

	w.regex = r
	w.walk(r)

	return prev
}

// Release returns the root of the most recent traversal without freeing
// any tree memory — the Walker never owns the tree it walks.
func (w *Walker) Release() *ast.Node {
	if w == nil || w.regex == nil {
		return nil
	}
	return *w.regex
}
