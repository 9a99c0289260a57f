package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/qareport/internal/record"
	"github.com/gorewood/qareport/internal/report"
)

// --- Shared helpers ---

// loadRecords loads path, translating a missing file into a short message.
func loadRecords(path string) ([]record.Record, error) {
	if path == "" {
		return nil, errors.New("path is required")
	}
	records, err := record.LoadFile(path)
	if err != nil {
		if errors.Is(err, record.ErrInputNotFound) {
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		return nil, err
	}
	return records, nil
}

// --- Summarize tool ---

// SummarizeInput is the input for the summarize tool.
type SummarizeInput struct {
	Path string `json:"path" jsonschema:"path to the JSONL results file"`
}

// SummarizeOutput is the output for the summarize tool.
type SummarizeOutput struct {
	Source     string `json:"source"     jsonschema:"the file that was read"`
	Total      int    `json:"total"      jsonschema:"number of records in the file"`
	Successful int    `json:"successful" jsonschema:"records without a truthy error field"`
	Failed     int    `json:"failed"     jsonschema:"records with a truthy error field"`
}

func handleSummarize() mcp.ToolHandlerFor[SummarizeInput, SummarizeOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SummarizeInput) (*mcp.CallToolResult, SummarizeOutput, error) {
		records, err := loadRecords(input.Path)
		if err != nil {
			return nil, SummarizeOutput{}, err
		}
		summary := report.Summarize(records)
		return nil, SummarizeOutput{
			Source:     input.Path,
			Total:      summary.Total,
			Successful: summary.Successful,
			Failed:     summary.Failed,
		}, nil
	}
}

// --- Render tool ---

// RenderInput is the input for the render_report tool.
type RenderInput struct {
	Path        string `json:"path"                  jsonschema:"path to the JSONL results file"`
	Title       string `json:"title,omitempty"       jsonschema:"report title (default: 🎯 DeepResearch Results)"`
	Frontmatter bool   `json:"frontmatter,omitempty" jsonschema:"prepend a YAML frontmatter block"`
}

// RenderOutput is the output for the render_report tool.
type RenderOutput struct {
	Markdown   string `json:"markdown"   jsonschema:"the rendered report"`
	Total      int    `json:"total"      jsonschema:"number of records in the file"`
	Successful int    `json:"successful" jsonschema:"records without a truthy error field"`
	Failed     int    `json:"failed"     jsonschema:"records with a truthy error field"`
}

func handleRender(clock Clock) mcp.ToolHandlerFor[RenderInput, RenderOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RenderInput) (*mcp.CallToolResult, RenderOutput, error) {
		records, err := loadRecords(input.Path)
		if err != nil {
			return nil, RenderOutput{}, err
		}

		opts := report.Options{Title: input.Title, Frontmatter: input.Frontmatter}
		rep := report.Build(records, input.Path, clock(), opts)
		doc, err := rep.Document(opts)
		if err != nil {
			return nil, RenderOutput{}, fmt.Errorf("rendering report: %w", err)
		}

		return nil, RenderOutput{
			Markdown:   string(doc),
			Total:      rep.Summary.Total,
			Successful: rep.Summary.Successful,
			Failed:     rep.Summary.Failed,
		}, nil
	}
}

// --- Write tool ---

// WriteInput is the input for the write_report tool.
type WriteInput struct {
	Path        string `json:"path"                  jsonschema:"path to the JSONL results file"`
	OutputPath  string `json:"output_path,omitempty" jsonschema:"destination (default: <dir>/<stem>_results.md)"`
	Title       string `json:"title,omitempty"       jsonschema:"report title"`
	Format      string `json:"format,omitempty"      jsonschema:"md (default) or html"`
	Frontmatter bool   `json:"frontmatter,omitempty" jsonschema:"prepend a YAML frontmatter block (md only)"`
}

// WriteOutput is the output for the write_report tool.
type WriteOutput struct {
	OutputPath string `json:"output_path" jsonschema:"where the report was written"`
	Total      int    `json:"total"       jsonschema:"number of records in the file"`
	Successful int    `json:"successful"  jsonschema:"records without a truthy error field"`
	Failed     int    `json:"failed"      jsonschema:"records with a truthy error field"`
}

func handleWrite(clock Clock) mcp.ToolHandlerFor[WriteInput, WriteOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input WriteInput) (*mcp.CallToolResult, WriteOutput, error) {
		format, err := report.ParseFormat(input.Format)
		if err != nil {
			return nil, WriteOutput{}, err
		}

		records, err := loadRecords(input.Path)
		if err != nil {
			return nil, WriteOutput{}, err
		}

		opts := report.Options{Title: input.Title, Frontmatter: input.Frontmatter, Format: format}
		rep := report.Build(records, input.Path, clock(), opts)
		doc, err := rep.Document(opts)
		if err != nil {
			return nil, WriteOutput{}, fmt.Errorf("rendering report: %w", err)
		}

		outputPath := input.OutputPath
		if outputPath == "" {
			outputPath = report.DefaultOutputPath(input.Path, format)
		}
		if err := report.WriteFile(outputPath, doc); err != nil {
			return nil, WriteOutput{}, err
		}

		return nil, WriteOutput{
			OutputPath: outputPath,
			Total:      rep.Summary.Total,
			Successful: rep.Summary.Successful,
			Failed:     rep.Summary.Failed,
		}, nil
	}
}
