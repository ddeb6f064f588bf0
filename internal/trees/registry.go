// Package trees holds the built-in example trees. They are sample call
// sites for the engine, not part of its contract: each builder wires up
// outcome/decision/multi-branch nodes and hands back a ready engine.
package trees

import (
	"fmt"
	"sort"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

var ErrUnknownTree = fmt.Errorf("unknown tree")

// Tree is one named built-in tree. Build returns a fresh engine each call
// so callers can't step on each other's trace buffers.
type Tree struct {
	Name        string
	Description string
	Build       func() *dectree.Engine
}

var registry = map[string]Tree{
	"loan": {
		Name:        "loan",
		Description: "Loan approval: amount, income and credit score checks",
		Build:       Loan,
	},
	"risk": {
		Name:        "risk",
		Description: "Risk tiering: first-match credit/debt bands",
		Build:       Risk,
	},
	"fraud": {
		Name:        "fraud",
		Description: "Transaction screening with expression conditions",
		Build:       Fraud,
	},
}

// Get builds the named tree, wrapped in a fresh engine.
func Get(name string) (*dectree.Engine, error) {
	tree, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownTree, name, Names())
	}
	return tree.Build(), nil
}

// All lists the built-in trees, sorted by name.
func All() []Tree {
	all := make([]Tree, 0, len(registry))
	for _, tree := range registry {
		all = append(all, tree)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
