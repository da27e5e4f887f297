// Package serialize re-renders an ast.Node tree as regular-expression
// surface syntax. Because the tree is normalized (the parser that would
// have preserved source parentheses is out of scope), ToString must
// reintroduce non-capturing groups "(?:…)" wherever operator precedence
// or associativity would otherwise be lost on re-parse.
package serialize

import (
	"strings"

	"github.com/bkmwatling/bru/ast"
	"github.com/bkmwatling/bru/walk"
)

// ToString converts re to its regular-expression surface syntax. It
// returns "" for a nil tree.
func ToString(re *ast.Node) string {
	if re == nil {
		return ""
	}

	var sb strings.Builder

	w := walk.New()
	w.State = &sb

	w.RegisterTerminalListener(listenTerminal)

	w.RegisterListener(walk.Inorder, ast.Alt, listenAltInorder)
	w.RegisterListener(walk.Postorder, ast.Alt, listenAltPostorder)

	w.RegisterListener(walk.Preorder, ast.Concat, listenConcatPreorder)
	w.RegisterListener(walk.Inorder, ast.Concat, listenConcatInorder)
	w.RegisterListener(walk.Postorder, ast.Concat, listenConcatPostorder)

	w.RegisterListener(walk.Preorder, ast.Capture, listenCapturePreorder)
	w.RegisterListener(walk.Postorder, ast.Capture, listenCapturePostorder)

	w.RegisterListener(walk.Preorder, ast.Star, listenWrapOperandPreorder)
	w.RegisterListener(walk.Postorder, ast.Star, listenStarPostorder)

	w.RegisterListener(walk.Preorder, ast.Plus, listenWrapOperandPreorder)
	w.RegisterListener(walk.Postorder, ast.Plus, listenPlusPostorder)

	w.RegisterListener(walk.Preorder, ast.Ques, listenWrapOperandPreorder)
	w.RegisterListener(walk.Postorder, ast.Ques, listenQuesPostorder)

	w.RegisterListener(walk.Preorder, ast.Counter, listenWrapOperandPreorder)
	w.RegisterListener(walk.Postorder, ast.Counter, listenCounterPostorder)

	w.RegisterListener(walk.Preorder, ast.Lookahead, listenLookaheadPreorder)
	w.RegisterListener(walk.Postorder, ast.Lookahead, listenLookaheadPostorder)

	w.Walk(&re)

	return sb.String()
}

func state(s any) *strings.Builder { return s.(*strings.Builder) }

func listenTerminal(s any, n *ast.Node) {
	sb := state(s)
	switch n.Kind {
	case ast.Caret:
		sb.WriteByte('^')
	case ast.Dollar:
		sb.WriteByte('$')
	case ast.Memoise:
		sb.WriteByte('#')
	case ast.Literal:
		sb.WriteRune(n.Ch)
	case ast.CC:
		// TODO: character-class rendering is unimplemented upstream
		// (original_source's regex_to_string.c only prints a
		// placeholder); there is nothing meaningful to emit until the
		// out-of-scope parser defines CharClass's representation.
	}
}

func listenAltInorder(s any, n *ast.Node) {
	sb := state(s)
	sb.WriteByte('|')
	if n.Right.Kind == ast.Alt {
		// associativity was overridden: without a group the right ALT
		// would merge into this one on re-parse.
		sb.WriteString("(?:")
	}
}

func listenAltPostorder(s any, n *ast.Node) {
	if n.Right.Kind == ast.Alt {
		state(s).WriteByte(')')
	}
}

func listenConcatPreorder(s any, n *ast.Node) {
	if n.Left.Kind == ast.Alt {
		// lower-precedence operator as left operand needs a group.
		state(s).WriteString("(?:")
	}
}

func listenConcatInorder(s any, n *ast.Node) {
	sb := state(s)
	if n.Left.Kind == ast.Alt {
		sb.WriteByte(')')
	}
	if ast.IsBinary(n.Right.Kind) {
		// right is ALT (precedence) or CONCAT (associativity override).
		sb.WriteString("(?:")
	}
}

func listenConcatPostorder(s any, n *ast.Node) {
	if ast.IsBinary(n.Right.Kind) {
		state(s).WriteByte(')')
	}
}

func listenCapturePreorder(s any, _ *ast.Node) { state(s).WriteByte('(') }
func listenCapturePostorder(s any, _ *ast.Node) { state(s).WriteByte(')') }

// listenWrapOperandPreorder opens a non-capturing group around the
// operand of a postfix quantifier (STAR/PLUS/QUES/COUNTER) when that
// operand is itself an operator — a bare terminal or an already
// parenthesised group (CAPTURE/LOOKAHEAD) binds tightly enough to need no
// group.
func listenWrapOperandPreorder(s any, n *ast.Node) {
	if ast.IsOperator(n.Left.Kind) {
		state(s).WriteString("(?:")
	}
}

func closeOperandGroup(sb *strings.Builder, n *ast.Node) {
	if ast.IsOperator(n.Left.Kind) {
		sb.WriteByte(')')
	}
}

func listenStarPostorder(s any, n *ast.Node) {
	sb := state(s)
	closeOperandGroup(sb, n)
	sb.WriteByte('*')
	if !n.Greedy {
		sb.WriteByte('?')
	}
}

func listenPlusPostorder(s any, n *ast.Node) {
	sb := state(s)
	closeOperandGroup(sb, n)
	sb.WriteByte('+')
	if !n.Greedy {
		sb.WriteByte('?')
	}
}

func listenQuesPostorder(s any, n *ast.Node) {
	sb := state(s)
	closeOperandGroup(sb, n)
	sb.WriteByte('?')
	if !n.Greedy {
		sb.WriteByte('?')
	}
}

func listenCounterPostorder(s any, n *ast.Node) {
	sb := state(s)
	closeOperandGroup(sb, n)
	sb.WriteByte('{')
	writeInt(sb, n.Min)
	sb.WriteByte(',')
	writeInt(sb, n.Max)
	sb.WriteByte('}')
	if !n.Greedy {
		sb.WriteByte('?')
	}
}

func listenLookaheadPreorder(s any, n *ast.Node) {
	sb := state(s)
	sb.WriteString("(?")
	if n.Positive {
		sb.WriteByte('=')
	} else {
		sb.WriteByte('!')
	}
	// the default walker does not recurse into a lookahead body, so it is
	// rendered here.
	sb.WriteString(ToString(n.Left))
}

func listenLookaheadPostorder(s any, _ *ast.Node) { state(s).WriteByte(')') }

// writeInt avoids pulling in strconv for a single call site; min/max are
// always small, non-negative quantifier bounds.
func writeInt(sb *strings.Builder, v int) {
	if v == 0 {
		sb.WriteByte('0')
		return
	}
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	sb.Write(buf[i:])
}
