package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/oasdocs/oasdocs/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdocs mcp\n\n")
		Writef(output, "Run the documentation MCP server over stdio.\n\n")
		Writef(output, "The server exposes spec_summary, list_endpoints, list_tags, schema_example,\n")
		Writef(output, "and request_snippet tools. It reads JSON-RPC requests from stdin and writes\n")
		Writef(output, "responses to stdout, so it is meant to be launched by an MCP client rather\n")
		Writef(output, "than used interactively.\n")
		Writef(output, "\nConfiguration (environment variables):\n")
		Writef(output, "  OASDOCS_CACHE_ENABLED      cache loaded documents (default true)\n")
		Writef(output, "  OASDOCS_CACHE_MAX_SIZE     cached document limit (default 10)\n")
		Writef(output, "  OASDOCS_LIST_LIMIT         default list page size (default 100)\n")
		Writef(output, "  OASDOCS_MAX_INLINE_SIZE    inline content byte limit\n")
		Writef(output, "  OASDOCS_ALLOW_PRIVATE_IPS  allow URL loads from private networks\n")
		Writef(output, "\nExample client configuration:\n")
		Writef(output, "  {\"mcpServers\": {\"oasdocs\": {\"command\": \"oasdocs\", \"args\": [\"mcp\"]}}}\n")
	}

	return fs
}

// HandleMCP executes the mcp command, blocking until the client disconnects.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	return mcpserver.Run(context.Background())
}
