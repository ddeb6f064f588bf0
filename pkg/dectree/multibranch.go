package dectree

import (
	"strconv"
	"strings"
)

// MultiBranch holds an ordered list of guarded branches. Branches are
// tried in insertion order and the first one whose condition holds wins;
// later conditions are not even evaluated. The order is part of the
// contract, never best-match.
type MultiBranch struct {
	name     string
	branches []guardedBranch
	fallback Node
}

type guardedBranch struct {
	cond Condition
	node Node
}

func NewMultiBranch(name string) *MultiBranch {
	return &MultiBranch{name: name}
}

// AddBranch appends a guarded branch. It returns the node itself so a tree
// can be assembled in one chain:
//
//	NewMultiBranch("risk").AddBranch(low, lowNode).SetDefault(criticalNode)
func (m *MultiBranch) AddBranch(cond Condition, node Node) *MultiBranch {
	m.branches = append(m.branches, guardedBranch{cond: cond, node: node})
	return m
}

// SetDefault sets the branch taken when no condition matched. Without a
// default, an unmatched evaluation yields NoMatch.
func (m *MultiBranch) SetDefault(node Node) *MultiBranch {
	m.fallback = node
	return m
}

func (m *MultiBranch) Evaluate(ctx Context) Result {
	for _, br := range m.branches {
		if br.cond(ctx) {
			return br.node.Evaluate(ctx)
		}
	}
	if m.fallback != nil {
		return m.fallback.Evaluate(ctx)
	}
	return NoMatch
}

func (m *MultiBranch) Type() string {
	return "MultiBranchNode: " + m.name
}

func (m *MultiBranch) Render(indent int) string {
	var b strings.Builder
	b.WriteString(pad(indent) + "{\n")
	b.WriteString(pad(indent+2) + "\"type\": \"multibranch\",\n")
	b.WriteString(pad(indent+2) + "\"name\": \"" + m.name + "\",\n")
	b.WriteString(pad(indent+2) + "\"branches\": [\n")

	for i, br := range m.branches {
		b.WriteString(pad(indent+4) + "{\n")
		b.WriteString(pad(indent+4) + "  \"condition\": \"branch_" + strconv.Itoa(i) + "\",\n")
		b.WriteString(pad(indent+4) + "  \"node\": \n")
		b.WriteString(br.node.Render(indent + 6))
		b.WriteString("\n" + pad(indent+4) + "}")
		if i < len(m.branches)-1 || m.fallback != nil {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	if m.fallback != nil {
		b.WriteString(pad(indent+4) + "{\n")
		b.WriteString(pad(indent+4) + "  \"condition\": \"default\",\n")
		b.WriteString(pad(indent+4) + "  \"node\": \n")
		b.WriteString(m.fallback.Render(indent + 6))
		b.WriteString("\n" + pad(indent+4) + "}\n")
	}

	b.WriteString(pad(indent+2) + "]\n")
	b.WriteString(pad(indent) + "}")
	return b.String()
}
