package main

import (
	"fmt"
	"os"

	oasdocs "github.com/oasdocs/oasdocs"
	"github.com/oasdocs/oasdocs/cmd/oasdocs/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasdocs v%s\n", oasdocs.Version())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "info":
		err = commands.HandleInfo(args)
	case "endpoints":
		err = commands.HandleEndpoints(args)
	case "example":
		err = commands.HandleExample(args)
	case "snippet":
		err = commands.HandleSnippet(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// knownCommands lists the commands suggestCommand matches typos against.
var knownCommands = []string{"info", "endpoints", "example", "snippet", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough to suggest.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := editDistance(input, cmd); d < bestDist {
			best = cmd
			bestDist = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`oasdocs - OpenAPI Interactive Documentation Tools

Usage:
  oasdocs <command> [options]

Commands:
  info        Show document identity and statistics, and output the document
  endpoints   List endpoints, flat or grouped by tag
  example     Generate an example value for a schema or endpoint body
  snippet     Generate a ready-to-run request snippet for an endpoint
  mcp         Run the documentation MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  oasdocs info openapi.yaml
  oasdocs endpoints --by-tag https://example.com/api/openapi.yaml
  oasdocs example --schema Pet openapi.yaml
  oasdocs example --endpoint post-pets --kind request openapi.yaml
  oasdocs snippet --endpoint get-pets --target python openapi.yaml
  cat openapi.yaml | oasdocs endpoints -q -

Run 'oasdocs <command> --help' for more information on a command.`)
}
