package cmd

import (
	"github.com/spf13/cobra"

	"github.com/capybara-brain346/decision-tree-engine/internal/trees"
)

var showCmd = &cobra.Command{
	Use:       "show <tree>",
	Short:     "Print the structure of a built-in tree",
	Args:      cobra.ExactArgs(1),
	ValidArgs: trees.Names(),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := trees.Get(args[0])
		if err != nil {
			return err
		}
		eng.PrintTree()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
