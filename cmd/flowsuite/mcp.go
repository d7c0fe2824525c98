package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lime816/whatsappsuitetest-sub002/internal/cli"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/adapters/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes the compiler and validator as MCP tools so agents can build
and check flows.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, nil)
		if err != nil {
			return err
		}
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		srv := mcp.NewServer(e.suite, e.logger)

		switch transport {
		case "stdio":
			// Logs go to stderr so they never corrupt JSON-RPC on stdout.
			e.logger.Info("Starting MCP server", "transport", transport)
			return srv.ServeStdio()
		case "sse":
			e.logger.Info("Starting MCP server", "transport", transport, "port", port)
			ctx := cli.NewSignalContext(cmd.Context())
			defer ctx.Cancel()
			if err := srv.ServeSSE(ctx, port); err != nil {
				return err
			}
			e.logger.Info("MCP server stopped")
			return nil
		default:
			return fmt.Errorf("unknown transport %q, supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
