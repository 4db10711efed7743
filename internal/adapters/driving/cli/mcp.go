package cli

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alicerunsonfedora/mcmaps/internal/adapters/driving/mcp"
)

var (
	mcpPort int
	mcpHost string
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve a document to AI assistants",
	Long:  `Model Context Protocol (MCP) server commands.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve [location]",
	Short: "Start the MCP server for a document",
	Long: `Serve one map document over the Model Context Protocol.

Tools: search_map, list_pins, add_pin.
Resources: mcmaps://manifest and mcmaps://pins/{index}.

The server speaks JSON-RPC over stdio unless --port is given, in which case
it serves the streamable HTTP transport on --host:--port. Port 0 with
--host still means stdio; pick a port to use HTTP.

Examples:
  mcmaps mcp serve ./World.mcmap
  mcmaps mcp serve ./World.mcmap --port 8080

Client configuration (stdio):
  {
    "mcpServers": {
      "mcmaps": {
        "command": "/path/to/mcmaps",
        "args": ["mcp", "serve", "/path/to/World.mcmap"]
      }
    }
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = stdio)")
	mcpServeCmd.Flags().StringVar(&mcpHost, "host", "localhost", "HTTP bind address")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	documents, err := documentService()
	if err != nil {
		return err
	}
	location := args[0]

	server, err := mcp.NewServer(&mcp.Ports{
		Search:   deps.Search,
		Document: documents,
		Settings: deps.Settings,
	}, location, mcp.WithVersion(version))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if _, err := documents.Open(ctx, location); err != nil {
		return fmt.Errorf("failed to open document: %w", err)
	}

	if mcpPort <= 0 {
		return server.Run(ctx)
	}

	ln, err := net.Listen("tcp", net.JoinHostPort(mcpHost, strconv.Itoa(mcpPort)))
	if err != nil {
		return fmt.Errorf("listening: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", ln.Addr())
	return server.Serve(ctx, ln)
}
