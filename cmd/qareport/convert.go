package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/qareport/internal/config"
	"github.com/gorewood/qareport/internal/output"
	"github.com/gorewood/qareport/internal/record"
	"github.com/gorewood/qareport/internal/report"
)

const defaultTitleHint = report.DefaultTitle

const usageLine = "usage: qareport <input-path> [<output-path>]"

// convertFlags holds the report flags of the root command.
type convertFlags struct {
	title       string
	format      string
	frontmatter bool
}

// convertResult is the JSON-mode result of a successful conversion.
type convertResult struct {
	Output     string `json:"output"`
	Format     string `json:"format"`
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
}

// runConvert loads the input records, renders the report and writes it.
func runConvert(cmd *cobra.Command, args []string, flags *convertFlags, clock func() time.Time) error {
	settings, settingsErr := config.Load(config.Dir())

	printer, err := newCommandPrinter(cmd, settings)
	if err != nil {
		return err
	}
	if settingsErr != nil {
		printer.Warn("ignoring config: %v", settingsErr)
	}

	if len(args) == 0 {
		err := output.NewUsageError(usageLine)
		printer.Error(err)
		printer.Stderr("\nExamples:\n")
		printer.Stderr("  qareport outputs/my_questions.jsonl/iter1.jsonl\n")
		printer.Stderr("  qareport outputs/my_questions.jsonl/iter1.jsonl my_results.md\n")
		return err
	}

	opts, err := resolveOptions(cmd, flags, settings)
	if err != nil {
		printer.Error(err)
		return err
	}

	inputPath := args[0]
	outputPath := report.DefaultOutputPath(inputPath, opts.Format)
	if len(args) > 1 {
		outputPath = args[1]
	}

	records, err := loadInput(inputPath)
	if err != nil {
		return fail(printer, err)
	}

	rep := report.Build(records, inputPath, clock(), opts)
	doc, err := rep.Document(opts)
	if err != nil {
		return fail(printer, output.NewInternalError("rendering report", err))
	}

	if err := report.WriteFile(outputPath, doc); err != nil {
		return fail(printer, output.NewWriteError("cannot write report to "+outputPath, err))
	}

	return printConvertResult(printer, outputPath, opts.Format, rep.Summary)
}

// newCommandPrinter builds the printer for cmd. An explicit --color flag
// wins over the configured color mode.
func newCommandPrinter(cmd *cobra.Command, settings config.Settings) (*output.Printer, error) {
	stdout := cmd.OutOrStdout()
	jsonMode := isJSONMode(cmd)

	mode := settings.Color
	if flagMode, changed := colorFlag(cmd); changed {
		mode = flagMode
	}
	if err := output.ValidateColorMode(mode); err != nil {
		usageErr := output.NewUsageError(err.Error())
		output.NewPrinter(stdout, jsonMode, false).WithStderr(cmd.ErrOrStderr()).Error(usageErr)
		return nil, usageErr
	}

	tty := output.ResolveColorMode(mode, output.IsTTY(stdout))
	return output.NewPrinter(stdout, jsonMode, tty).WithStderr(cmd.ErrOrStderr()), nil
}

// resolveOptions merges config settings with the flags that were set.
func resolveOptions(cmd *cobra.Command, flags *convertFlags, settings config.Settings) (report.Options, error) {
	title := settings.Title
	if cmd.Flags().Changed("title") {
		title = flags.title
	}

	formatName := settings.Format
	if cmd.Flags().Changed("format") {
		formatName = flags.format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return report.Options{}, output.NewUsageError(err.Error())
	}

	frontmatter := settings.Frontmatter
	if cmd.Flags().Changed("frontmatter") {
		frontmatter = flags.frontmatter
	}

	return report.Options{Title: title, Frontmatter: frontmatter, Format: format}, nil
}

// loadInput loads the records of path and classifies any failure.
func loadInput(path string) ([]record.Record, error) {
	records, err := record.LoadFile(path)
	if err == nil {
		return records, nil
	}

	if errors.Is(err, record.ErrInputNotFound) {
		return nil, output.NewInputNotFoundError(path, err)
	}

	var parseErr *record.ParseError
	if errors.As(err, &parseErr) {
		msg := fmt.Sprintf("cannot parse %s: line %d: %v: %s",
			path, parseErr.Line, parseErr.Err, parseErr.Content)
		return nil, output.NewParseError(msg, err)
	}

	return nil, output.NewInternalError("cannot read "+path, err)
}

// fail reports err with its diagnostic trace and returns it.
func fail(printer *output.Printer, err error) error {
	printer.Error(err)
	printer.Trace(err)
	return err
}

// printConvertResult reports where the report went and what it counted.
func printConvertResult(printer *output.Printer, path string, format report.Format, summary report.Summary) error {
	if printer.IsJSON() {
		return printer.WriteJSON(convertResult{
			Output:     path,
			Format:     string(format),
			Total:      summary.Total,
			Successful: summary.Successful,
			Failed:     summary.Failed,
		})
	}

	if err := printer.Success(map[string]any{"message": "Report written: " + path}); err != nil {
		return err
	}
	printer.KeyValue("Processed", fmt.Sprintf("%d questions (%d successful, %d failed)",
		summary.Total, summary.Successful, summary.Failed))
	return nil
}
