package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/capybara-brain346/decision-tree-engine/internal/buildinfo"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about this dectree build",
	Run: func(cmd *cobra.Command, args []string) {
		info := buildinfo.GetBuildInfo()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Service", info.Service})
		t.AppendRow(table.Row{"Version", info.Version})
		t.AppendRow(table.Row{"Commit", info.CommitHash})
		t.AppendRow(table.Row{"About", info.About})

		applyTableFormat(t)
		t.Render()
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
