package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/capybara-brain346/decision-tree-engine/internal/trees"
)

var treesCmd = &cobra.Command{
	Use:     "trees",
	Aliases: []string{"ls"},
	Short:   "List the built-in trees",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Name", "Description"})

		for _, tree := range trees.All() {
			t.AppendRow(table.Row{tree.Name, tree.Description})
		}

		applyTableFormat(t)
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(treesCmd)
}
