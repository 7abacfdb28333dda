package main

import (
	"github.com/spf13/cobra"

	"github.com/lvillar/cardsheet/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the card tools over MCP (JSON-RPC on stdio)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer()
		server.SetLogger(logger)
		mcp.RegisterDefaultTools(server, cfg.Options(logger)...)
		mcp.RegisterDefaultResources(server)
		return server.Run()
	},
}
