// Package output provides structured output handling for the qareport CLI.
//
// Every command writes through a Printer, which switches between
// human-readable and JSON output so the tool works equally well in a terminal
// and inside scripts or agent pipelines.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout())).
//		WithStderr(cmd.ErrOrStderr())
//
//	printer.Success(map[string]any{"message": "Report written"})
//	printer.Error(err) // one-line message
//	printer.Trace(err) // cause chain, human mode only
//
// # JSON Mode
//
//	// Success: {"output": "...", "total": N, ...}
//	// Error:   {"error": "message", "kind": "parse", "code": 1}
//
// # Styling
//
// Human output is styled with lipgloss. Styles collapse to plain text when
// the writer is not a terminal or when --color never is given.
//
// # Exit Codes and Kinds
//
//	output.ExitSuccess // 0
//	output.ExitFailure // 1: every failure kind
//
// Failures carry a Kind so callers can tell them apart without parsing
// messages:
//
//	output.NewUsageError("usage: qareport <input-path> [<output-path>]")
//	output.NewInputNotFoundError(path, err)
//	output.NewParseError(msg, err)
//	output.NewWriteError(msg, err)
//	output.NewInternalError(msg, err)
package output
