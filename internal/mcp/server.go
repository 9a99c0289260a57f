// Package mcp provides a Model Context Protocol server for qareport.
// It exposes the load and render pipeline as MCP tools so agents can turn a
// results file into a report without shelling out.
package mcp

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Clock returns the time stamped into generated reports.
type Clock func() time.Time

// NewServer creates an MCP server with all qareport tools registered.
// A nil clock uses time.Now.
func NewServer(version string, clock Clock) *mcp.Server {
	if clock == nil {
		clock = time.Now
	}
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "qareport",
		Version: version,
	}, nil)
	registerTools(server, clock)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// writeAnnotations returns annotations for tools that write a report file.
// Rewriting the same report is idempotent apart from its timestamp.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds all qareport tools to the server.
func registerTools(server *mcp.Server, clock Clock) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize",
		Description: "Count the records in a JSONL results file: total, successful and failed (a record fails when its error field is set).",
		Annotations: readOnlyAnnotations(),
	}, handleSummarize())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_report",
		Description: "Render a JSONL results file as a markdown report and return the markdown with its counts. Writes nothing.",
		Annotations: readOnlyAnnotations(),
	}, handleRender(clock))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "write_report",
		Description: "Render a JSONL results file and write the report next to it (<stem>_results.md) or to output_path.",
		Annotations: writeAnnotations(),
	}, handleWrite(clock))
}
