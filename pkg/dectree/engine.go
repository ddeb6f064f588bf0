package dectree

import "fmt"

// Engine wraps a tree root and is the entry point for classifying records
// against it. Apart from the trace buffer an engine holds no per-record
// state, so a single engine can serve any number of sequential
// evaluations over the same (already built, acyclic) tree.
type Engine struct {
	root  Node
	trace []string
}

// New wraps a tree root. A nil root is allowed; evaluations then return
// the NoRoot sentinel.
func New(root Node) *Engine {
	return &Engine{root: root}
}

// Evaluate classifies one context against the tree.
func (e *Engine) Evaluate(ctx Context) Result {
	if e.root == nil {
		return NoRoot
	}
	return e.root.Evaluate(ctx)
}

// EvaluateWithTrace is Evaluate with a fresh trace buffer. Nothing
// populates the buffer yet; it is the hook where step-by-step evaluation
// logging will land.
func (e *Engine) EvaluateWithTrace(ctx Context) Result {
	e.trace = e.trace[:0]
	return e.Evaluate(ctx)
}

// Trace returns the trace collected by the last EvaluateWithTrace call.
func (e *Engine) Trace() []string {
	return e.trace
}

// RenderTree returns the structural dump of the whole tree.
func (e *Engine) RenderTree() string {
	if e.root == nil {
		return `{ "error": "No root node" }`
	}
	return e.root.Render(0)
}

// PrintTree writes the structural dump to stdout. Presentation only; it
// plays no part in evaluation.
func (e *Engine) PrintTree() {
	fmt.Println(e.RenderTree())
}
