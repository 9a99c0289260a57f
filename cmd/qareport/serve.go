package main

import (
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	qamcp "github.com/gorewood/qareport/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run qareport as a Model Context Protocol (MCP) server over stdio.

This exposes report generation as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "qareport": {
        "command": "qareport",
        "args": ["serve"]
      }
    }
  }

Available tools: summarize, render_report, write_report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := qamcp.NewServer(buildVersion(), time.Now)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
