// Package dectree implements a small decision-tree rule engine: trees of
// decision and outcome nodes that classify a record of named attributes
// into a typed result. Business rules (loan approval, risk tiering) become
// data-like trees instead of nested conditionals, and any subtree can be
// dumped as structured text for inspection.
package dectree

import "strings"

// Condition decides which way a decision goes. Conditions must be pure
// reads of the context; they usually go through Get so that missing or
// mistyped attributes fall back to defaults instead of failing.
type Condition func(Context) bool

// Action is an optional side effect attached to an Outcome, invoked with
// the context when the outcome is reached. Whatever the action does (and
// whatever goes wrong inside it) is its own business; the outcome's value
// is returned regardless.
type Action func(Context)

// Node is one evaluable unit of a decision tree. Trees must be acyclic;
// the engine does not check and would recurse forever on a cycle. A node
// may be shared between multiple parents, which is fine because nodes
// carry no per-evaluation state.
type Node interface {
	// Evaluate walks this subtree for the given context and returns the
	// result of the terminal outcome it lands on.
	Evaluate(ctx Context) Result

	// Type returns a diagnostic label for the node.
	Type() string

	// Render returns the structural pseudo-JSON dump of this subtree,
	// indented by the given number of spaces. The format is stable and
	// part of the public contract; see Engine.PrintTree.
	Render(indent int) string
}

func pad(n int) string {
	return strings.Repeat(" ", n)
}
