// ABOUTME: CLI command starting the MCP server over stdio.
// ABOUTME: Exposes store operations to MCP-compatible AI assistants.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/lifedash/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server",
	Long: `Start the MCP server using stdio transport, for use with MCP
clients. Add to your client config:

  {
    "mcpServers": {
      "lifedash": { "command": "lifedash", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st)
		if err != nil {
			return fmt.Errorf("create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
