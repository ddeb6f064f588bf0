package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/capybara-brain346/decision-tree-engine/internal/record"
	"github.com/capybara-brain346/decision-tree-engine/internal/trees"
	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

var (
	evalInput    string
	evalTrace    bool
	evalShowTree bool
)

var evalCmd = &cobra.Command{
	Use:   "eval <tree> [key=value...]",
	Short: "Evaluate a record against a built-in tree",
	Example: `  # evaluate attributes given on the command line
  dectree eval loan amount=50000 income=75000 credit_score=700

  # or load the record from a YAML file, overriding single attributes
  dectree eval risk --input applicant.yaml credit_score=700`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := trees.Get(args[0])
		if err != nil {
			return err
		}

		ctx := dectree.Context{}
		if evalInput != "" {
			ctx, err = record.Load(evalInput)
			if err != nil {
				return err
			}
		}

		// key=value args override file attributes
		overrides, err := record.Parse(args[1:])
		if err != nil {
			return err
		}
		for k, v := range overrides {
			ctx[k] = v
		}

		evalID := xid.New().String()
		log.Debug().Str("eval_id", evalID).Str("tree", args[0]).Msg("evaluating record")
		log.Debug().Str("eval_id", evalID).Msg(spew.Sdump(ctx))

		if evalShowTree {
			eng.PrintTree()
			fmt.Println()
		}

		var res dectree.Result
		if evalTrace {
			res = eng.EvaluateWithTrace(ctx)
		} else {
			res = eng.Evaluate(ctx)
		}

		fmt.Printf("Result (%s): %s\n", res.Kind(), colorResult(res))

		if evalTrace {
			for _, line := range eng.Trace() {
				fmt.Println("  " + line)
			}
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVarP(&evalInput, "input", "i", "", "YAML file with the record to evaluate")
	evalCmd.Flags().BoolVar(&evalTrace, "trace", false, "Collect an evaluation trace (currently always empty)")
	evalCmd.Flags().BoolVar(&evalShowTree, "show-tree", false, "Print the tree structure before evaluating")
	rootCmd.AddCommand(evalCmd)
}
