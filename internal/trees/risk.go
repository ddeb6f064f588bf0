package trees

import "github.com/capybara-brain346/decision-tree-engine/pkg/dectree"

// Risk builds the risk tiering as a single multi-branch. First match
// wins, so the bands are ordered strictest first; anything that falls
// through every band is critical.
func Risk() *dectree.Engine {
	low := dectree.NewOutcome(dectree.Text("LOW RISK"), nil)
	medium := dectree.NewOutcome(dectree.Text("MEDIUM RISK"), nil)
	high := dectree.NewOutcome(dectree.Text("HIGH RISK"), nil)
	critical := dectree.NewOutcome(dectree.Text("CRITICAL RISK"), nil)

	tiers := dectree.NewMultiBranch("Risk Level").
		AddBranch(func(ctx dectree.Context) bool {
			return dectree.Get(ctx, "credit_score", 0) >= 750 &&
				dectree.Get(ctx, "debt_ratio", 1.0) < 0.3
		}, low).
		AddBranch(func(ctx dectree.Context) bool {
			return dectree.Get(ctx, "credit_score", 0) >= 650 &&
				dectree.Get(ctx, "debt_ratio", 1.0) < 0.5
		}, medium).
		AddBranch(func(ctx dectree.Context) bool {
			return dectree.Get(ctx, "credit_score", 0) >= 550
		}, high).
		SetDefault(critical)

	return dectree.New(tiers)
}
