package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/api"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/setup"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/setup/logger"
)

func main() {
	// Load env
	_ = godotenv.Load()

	cfg := setup.LoadConfig()
	appLogger := logger.New(cfg.LogLevel, false)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}
	defer deps.Close()

	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			appLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		appLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "vvquest",
			Version: api.Version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_images",
		Description: "Search sticker and meme images by a text description. Returns image paths or URLs.",
	}, mcpadapter.NewSearchImagesHandler(deps.Search))

	return server
}
