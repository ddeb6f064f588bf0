package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/capybara-brain346/decision-tree-engine/internal/trees"
	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a built-in example tree against its canonical records",
}

var demoLoanCmd = &cobra.Command{
	Use:   "loan",
	Short: "Loan approval decision tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(trees.Loan(), []dectree.Context{
			{"amount": 50000, "income": 75000, "credit_score": 700},
			{"amount": 50000, "income": 40000, "credit_score": 700},
			{"amount": 50000, "income": 75000, "credit_score": 600},
			{"amount": 150000, "income": 75000, "credit_score": 700},
		})
	},
}

var demoRiskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Risk tiering multi-branch tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(trees.Risk(), []dectree.Context{
			{"credit_score": 780, "debt_ratio": 0.25},
			{"credit_score": 680, "debt_ratio": 0.4},
			{"credit_score": 600, "debt_ratio": 0.6},
			{"credit_score": 500, "debt_ratio": 0.8},
		})
	},
}

var demoFraudCmd = &cobra.Command{
	Use:   "fraud",
	Short: "Fraud screening tree with expression conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(trees.Fraud(), []dectree.Context{
			{"country": "US", "amount": 500, "velocity_24h": 1},
			{"country": "US", "amount": 20000, "velocity_24h": 1},
			{"country": "CA", "amount": 60000, "velocity_24h": 2},
			{"country": "BR", "amount": 100, "velocity_24h": 0},
		})
	},
}

func runDemo(eng *dectree.Engine, cases []dectree.Context) error {
	fmt.Println("Tree structure:")
	eng.PrintTree()
	fmt.Println()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Record", "Result"})

	for i, ctx := range cases {
		res := eng.Evaluate(ctx)
		t.AppendRow(table.Row{i + 1, formatContext(ctx), colorResult(res)})
	}

	applyTableFormat(t)
	t.Render()
	return nil
}

func init() {
	demoCmd.AddCommand(demoLoanCmd)
	demoCmd.AddCommand(demoRiskCmd)
	demoCmd.AddCommand(demoFraudCmd)
	rootCmd.AddCommand(demoCmd)
}
