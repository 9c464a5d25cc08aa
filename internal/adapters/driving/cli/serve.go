package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/autodata/internal/adapters/driving/httpapi"
	"github.com/custodia-labs/autodata/internal/adapters/driving/mcp"
	"github.com/custodia-labs/autodata/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the priced entrypoints",
	Long: `Serve the priced entrypoints to agents and HTTP clients.

By default the entrypoints are exposed as MCP tools over stdio, for use
with Claude Desktop and other MCP-compatible assistants.

Use --port to serve MCP over streamable HTTP instead, or --api to serve
the JSON HTTP API with MCP mounted at /mcp.

Use --watch to re-read prices whenever the config file changes.

Examples:
  # Stdio mode (default)
  autodata serve

  # MCP over HTTP
  autodata serve --port 8080

  # JSON API plus MCP at /mcp, on server.http_addr
  autodata serve --api --watch`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "MCP HTTP port (0 = use stdio)")
	serveCmd.Flags().Bool("api", false, "serve the JSON HTTP API with MCP mounted at /mcp")
	serveCmd.Flags().String("addr", "", "listen address for --api (default server.http_addr)")
	serveCmd.Flags().Bool("watch", false, "reload prices when the config file changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if entrypointRegistry == nil {
		return ErrServiceUnavailable
	}
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	api, _ := cmd.Flags().GetBool("api")
	addr, _ := cmd.Flags().GetString("addr")
	watch, _ := cmd.Flags().GetBool("watch")

	if api && port > 0 {
		return errors.New("--api and --port cannot be combined")
	}
	if addr != "" && !api {
		return errors.New("--addr requires --api")
	}

	ctx := cmd.Context()

	if watch {
		if watchConfig == nil {
			return fmt.Errorf("config watch: %w", ErrServiceUnavailable)
		}
		go func() {
			if err := watchConfig(ctx, reloadPrices); err != nil {
				logger.Error("config watch stopped: %v", err)
			}
		}()
	}

	server, err := mcp.NewServer(&mcp.Ports{Registry: entrypointRegistry})
	if err != nil {
		return err
	}

	switch {
	case api:
		if addr == "" {
			addr, err = defaultHTTPAddr()
			if err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "HTTP API listening on %s (MCP at /mcp)\n", addr)
		return httpapi.NewServer(entrypointRegistry, server.Handler()).Run(ctx, addr)
	case port > 0:
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	default:
		return server.Run(ctx)
	}
}

func defaultHTTPAddr() (string, error) {
	if settingsService == nil {
		return "", fmt.Errorf("listen address: %w", ErrServiceUnavailable)
	}
	s, err := settingsService.Get()
	if err != nil {
		return "", fmt.Errorf("read settings: %w", err)
	}
	return s.HTTPAddr, nil
}

// reloadPrices re-reads the config source and applies its price overrides.
// A failed read or invalid settings keep the current prices.
func reloadPrices() {
	if settingsService == nil || entrypointRegistry == nil {
		return
	}
	s, err := settingsService.Reload()
	if err != nil {
		logger.Error("reload settings, keeping current prices: %v", err)
		return
	}
	entrypointRegistry.SetPrices(s.Prices)
	logger.Info("prices reloaded from %s", settingsService.Path())
}
