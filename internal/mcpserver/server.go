// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasdocs documentation views as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oasdocs/oasdocs"
	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/outline"
)

const serverInstructions = `oasdocs MCP server — turns OpenAPI specs into interactive documentation data: summaries, endpoint listings, example payloads, and runnable request snippets.

Typical flow: spec_summary to orient, list_tags or list_endpoints to discover endpoint ids, then schema_example and request_snippet with those ids.

Configuration: All defaults are configurable via OASDOCS_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- OASDOCS_CACHE_FILE_TTL (default: 15m) — cache TTL for local file specs
- OASDOCS_CACHE_URL_TTL (default: 5m) — cache TTL for URL-fetched specs
- OASDOCS_CACHE_ENABLED (default: true) — disable spec caching entirely
- OASDOCS_LIST_LIMIT (default: 100) — default result limit for list_endpoints
- OASDOCS_LIST_DETAIL_LIMIT (default: 25) — default limit in detail mode
- OASDOCS_MAX_INLINE_SIZE (default: 10MiB) — inline content size cap
- OASDOCS_ALLOW_PRIVATE_IPS (default: false) — allow URL fetches to private addresses

Caching: Loaded specs are cached per session. File entries use path+mtime as key (auto-invalidated on change). URL entries are cached with a shorter TTL. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasdocs", Version: oasdocs.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "spec_summary",
		Description: "Summarize an OpenAPI Specification document. Returns title, version, OAS version, source format, path/operation/schema/tag counts, servers, and tag names. Use full=true only for small specs; for large specs use list_endpoints to explore specific sections.",
	}, handleSpecSummary)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List the endpoints of an OpenAPI Specification document in declaration order. Each endpoint has a stable id (e.g. get-pets-petId) used by schema_example and request_snippet. Filter by tag (most selective), method, or path pattern (* matches one segment). Returns summaries (id, method, path, summary, tags) by default or full operation objects with detail=true. Use offset/limit to paginate. Default limit is configurable via OASDOCS_LIST_LIMIT (default 100, 25 in detail mode).",
	}, handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_tags",
		Description: "List the tag groups of an OpenAPI Specification document in first-encounter order, with descriptions from the top-level tag declarations. Operations without tags are grouped under \"Untagged\". Endpoints carrying several tags appear in each group. Use include_endpoints=true to see each group's endpoint ids.",
	}, handleListTags)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "schema_example",
		Description: "Synthesize an example value from an OpenAPI Specification document. Set exactly one of: schema (a component schema name) or endpoint (an endpoint id from list_endpoints). For endpoints, kind selects the request or response body (default response) and status selects the response code (default 200, falling back to the default response). Explicit examples and defaults in the schema win over synthesized values; unresolvable references come back as null.",
	}, handleSchemaExample)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "request_snippet",
		Description: "Generate a runnable request snippet for one endpoint of an OpenAPI Specification document. Targets: curl, javascript (fetch), python (requests), go (net/http). Path parameters substitute their example or default values (or a <name> placeholder), query parameters with values are appended, and POST/PUT/PATCH requests include a JSON body example. Override the server URL with base_url, add a bearer token with auth_token, and extra headers with headers.",
	}, handleRequestSnippet)
}

// findEndpoint looks up an endpoint by its derived id.
func findEndpoint(doc *openapi.Document, id string) (outline.Endpoint, error) {
	if id == "" {
		return outline.Endpoint{}, fmt.Errorf("endpoint id is required (use list_endpoints to discover ids)")
	}
	for _, ep := range outline.Endpoints(doc) {
		if ep.ID == id {
			return ep, nil
		}
	}
	return outline.Endpoint{}, fmt.Errorf("no endpoint with id %q (use list_endpoints to discover ids)", id)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ListLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ListLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// detailLimit returns a lower default limit for detail mode output.
// When the user hasn't specified an explicit limit (limit <= 0),
// detail mode defaults to cfg.ListDetailLimit to keep output manageable.
func detailLimit(limit int) int {
	if limit <= 0 {
		return cfg.ListDetailLimit
	}
	return limit
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// maxDescriptionLen caps description text in summary output.
const maxDescriptionLen = 200

// truncateText shortens s to at most maxLen runes, appending "..." when
// anything was cut.
func truncateText(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
