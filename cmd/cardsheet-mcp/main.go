// Command cardsheet-mcp is an MCP (Model Context Protocol) server that
// exposes card sheet generation to AI assistants.
//
// # Installation
//
//	go install github.com/lvillar/cardsheet/cmd/cardsheet-mcp@latest
//
// # Configuration for Claude Desktop
//
// Add to ~/.config/claude/claude_desktop_config.json:
//
//	{
//	  "mcpServers": {
//	    "cardsheet": {
//	      "command": "cardsheet-mcp"
//	    }
//	  }
//	}
//
// # Available Tools
//
//   - generate_cards: Render a duplex sheet of 10 cards from tabular text
//   - parse_cards: Show the records parsed from tabular text
//   - merge_sheets: Merge generated sheets into one print run
//
// # Available Resources
//
//   - cards://palette : Card colors and their text contrast
//   - cards://layout : Page grid and cell geometry
//
// Settings are read from $XDG_CONFIG_HOME/cardsheet/config.toml when present.
// Logs go to stderr; stdout carries the protocol.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/lvillar/cardsheet/config"
	"github.com/lvillar/cardsheet/mcp"
)

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cardsheet-mcp: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(config.Path())
	if err != nil {
		logger.Fatal("loading configuration", zap.Error(err))
	}

	server := mcp.NewServer()
	server.SetLogger(logger)

	mcp.RegisterDefaultTools(server, cfg.Options(logger)...)
	mcp.RegisterDefaultResources(server)

	if err := server.Run(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
