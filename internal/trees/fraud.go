package trees

import (
	"github.com/rs/zerolog/log"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

// Fraud builds a transaction screening tree whose conditions are
// expression strings instead of Go closures: a binary decision on the
// country feeding a multi-branch severity tier. Transactions from
// untrusted countries skip the tiers and go straight to review.
func Fraud() *dectree.Engine {
	cleared := dectree.NewOutcome(dectree.Text("CLEAR"), nil)
	review := dectree.NewOutcome(dectree.Text("REVIEW"), nil)
	blocked := dectree.NewOutcome(dectree.Text("BLOCKED"), func(ctx dectree.Context) {
		log.Warn().
			Str("country", dectree.Get(ctx, "country", "??")).
			Int("amount", dectree.Get(ctx, "amount", 0)).
			Msg("transaction blocked")
	})

	severity := dectree.NewMultiBranch("Fraud Severity").
		AddBranch(dectree.MustExprCondition(`velocity_24h > 10 || amount >= 50000`), blocked).
		AddBranch(dectree.MustExprCondition(`velocity_24h > 3 || amount >= 10000`), review).
		SetDefault(cleared)

	trustedCountry := dectree.NewDecision("Trusted Country",
		dectree.MustExprCondition(`country in ["US", "CA", "DE"]`),
		severity, review)

	return dectree.New(trustedCountry)
}
