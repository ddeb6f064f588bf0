package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/capybara-brain346/decision-tree-engine/internal/logging"
	"github.com/capybara-brain346/decision-tree-engine/pkg/dectree"
)

func bindLogFlags(fs *pflag.FlagSet) {
	fs.String("log-level", "info", "Log level (debug, info, warn, error)")
	_ = viper.BindPFlag(logging.LevelKey, fs.Lookup("log-level"))

	fs.String("log-format", "console", "Log format (console, json)")
	_ = viper.BindPFlag(logging.FormatKey, fs.Lookup("log-format"))

	fs.Bool("no-color", false, "Disable color output")
	_ = viper.BindPFlag(logging.NoColorKey, fs.Lookup("no-color"))
}

func applyTableFormat(t table.Writer) {
	if viper.GetBool(logging.NoColorKey) {
		t.SetStyle(table.StyleLight)
		return
	}
	t.SetStyle(table.StyleRounded)
}

// colorResult highlights well-known outcomes in demo and eval output.
func colorResult(res dectree.Result) string {
	s := res.String()
	switch {
	case s == "APPROVED", s == "LOW RISK", s == "CLEAR":
		return color.GreenString(s)
	case strings.HasPrefix(s, "DENIED"), s == "CRITICAL RISK", s == "BLOCKED":
		return color.RedString(s)
	case s == dectree.NoResult.String(), s == dectree.NoMatch.String(), s == dectree.NoRoot.String():
		return color.New(color.Faint).Sprint(s)
	default:
		return color.YellowString(s)
	}
}

// formatContext renders a context as sorted key=value pairs for table rows.
func formatContext(ctx dectree.Context) string {
	keys := make([]string, 0, len(ctx))
	for k := range ctx {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, ctx[k]))
	}
	return strings.Join(parts, " ")
}
