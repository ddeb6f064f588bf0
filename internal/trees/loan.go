package trees

import (
	"github.com/rs/zerolog/log"

	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

// Loan builds the loan approval tree:
//
//	amount <= 100000?  no -> MANUAL REVIEW REQUIRED
//	  yes -> income >= 50000?  no -> DENIED - Insufficient Income
//	    yes -> credit_score >= 650?  no -> DENIED - Low Credit Score
//	      yes -> APPROVED
func Loan() *dectree.Engine {
	approved := dectree.NewOutcome(dectree.Text("APPROVED"), func(ctx dectree.Context) {
		log.Info().
			Int("amount", dectree.Get(ctx, "amount", 0)).
			Msg("loan approved")
	})
	deniedIncome := dectree.NewOutcome(dectree.Text("DENIED - Insufficient Income"), nil)
	deniedCredit := dectree.NewOutcome(dectree.Text("DENIED - Low Credit Score"), nil)
	manualReview := dectree.NewOutcome(dectree.Text("MANUAL REVIEW REQUIRED"), nil)

	creditCheck := dectree.NewDecision("Credit Score Check",
		func(ctx dectree.Context) bool {
			return dectree.Get(ctx, "credit_score", 0) >= 650
		},
		approved, deniedCredit)

	incomeCheck := dectree.NewDecision("Income Check",
		func(ctx dectree.Context) bool {
			return dectree.Get(ctx, "income", 0) >= 50000
		},
		creditCheck, deniedIncome)

	amountCheck := dectree.NewDecision("Loan Amount Check",
		func(ctx dectree.Context) bool {
			return dectree.Get(ctx, "amount", 0) <= 100000
		},
		incomeCheck, manualReview)

	return dectree.New(amountCheck)
}
