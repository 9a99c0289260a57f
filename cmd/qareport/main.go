// Package main provides the entry point for the qareport CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/qareport/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorFlag reads the --color persistent flag, reporting whether it was set.
func colorFlag(cmd *cobra.Command) (string, bool) {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "", false
	}
	return flag.Value.String(), flag.Changed
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the qareport CLI.
func newRootCmd() *cobra.Command {
	return newRootCmdInternal(time.Now)
}

// newRootCmdInternal creates the root command with an injected clock for the
// report timestamp.
func newRootCmdInternal(clock func() time.Time) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "qareport <input-path> [<output-path>]",
		Short: "Render question/answer JSONL results as a markdown report",
		Long: `qareport - Turn a JSONL file of question/answer results into a markdown report.

Each non-blank input line is one JSON record. The fields question, prediction,
termination and error are used; everything else is ignored. The report lists
every record in input order and ends with total, successful and failed counts.

If <output-path> is omitted the report is written next to the input as
<stem>_results.md (or .html with --format html).

Examples:
  qareport outputs/my_questions.jsonl/iter1.jsonl
  qareport outputs/my_questions.jsonl/iter1.jsonl my_results.md
  qareport run.jsonl --format html --title "Nightly eval"
  qareport serve                                   # MCP server over stdio`,
		Version:       buildVersion(),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args, flags, clock)
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, never or always")

	cmd.Flags().StringVar(&flags.title, "title", "", "Report title (default \""+defaultTitleHint+"\")")
	cmd.Flags().StringVar(&flags.format, "format", "", "Output format: md or html (default md)")
	cmd.Flags().BoolVar(&flags.frontmatter, "frontmatter", false, "Prepend YAML frontmatter with source and counts (md only)")

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newServeCmd())

	return cmd
}
