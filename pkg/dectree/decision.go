package dectree

import "strings"

// Decision is a binary branch: the condition picks which child handles the
// context. Exactly one child is consulted per evaluation.
type Decision struct {
	name        string
	cond        Condition
	trueBranch  Node
	falseBranch Node
}

// NewDecision builds a binary decision. Either branch may be nil and
// attached later via SetTrueBranch / SetFalseBranch; evaluating with the
// selected branch missing yields NoResult.
func NewDecision(name string, cond Condition, trueBranch, falseBranch Node) *Decision {
	return &Decision{
		name:        name,
		cond:        cond,
		trueBranch:  trueBranch,
		falseBranch: falseBranch,
	}
}

// SetTrueBranch replaces the branch taken when the condition holds.
// Must not be called once the tree is being evaluated.
func (d *Decision) SetTrueBranch(n Node) {
	d.trueBranch = n
}

// SetFalseBranch replaces the branch taken when the condition fails.
func (d *Decision) SetFalseBranch(n Node) {
	d.falseBranch = n
}

func (d *Decision) Evaluate(ctx Context) Result {
	if d.cond(ctx) {
		if d.trueBranch != nil {
			return d.trueBranch.Evaluate(ctx)
		}
	} else if d.falseBranch != nil {
		return d.falseBranch.Evaluate(ctx)
	}
	return NoResult
}

func (d *Decision) Type() string {
	return "DecisionNode: " + d.name
}

func (d *Decision) Render(indent int) string {
	var b strings.Builder
	b.WriteString(pad(indent) + "{\n")
	b.WriteString(pad(indent+2) + "\"type\": \"decision\",\n")
	b.WriteString(pad(indent+2) + "\"name\": \"" + d.name + "\",\n")
	if d.trueBranch != nil {
		b.WriteString(pad(indent+2) + "\"trueBranch\": \n")
		b.WriteString(d.trueBranch.Render(indent + 2))
		b.WriteString(",\n")
	}
	if d.falseBranch != nil {
		b.WriteString(pad(indent+2) + "\"falseBranch\": \n")
		b.WriteString(d.falseBranch.Render(indent + 2))
		b.WriteString("\n")
	}
	b.WriteString(pad(indent) + "}")
	return b.String()
}
