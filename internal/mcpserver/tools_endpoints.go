package mcpserver

import (
	"context"
	"slices"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/outline"
)

type listEndpointsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OpenAPI document to list endpoints from"`
	Tag    string    `json:"tag,omitempty"    jsonschema:"Filter by tag name (exact match)"`
	Method string    `json:"method,omitempty" jsonschema:"Filter by HTTP method (get\\, post\\, put\\, patch\\, delete\\, options\\, head)"`
	Path   string    `json:"path,omitempty"   jsonschema:"Filter by path pattern; * matches exactly one segment (e.g. /pets/*)"`
	Detail bool      `json:"detail,omitempty" jsonschema:"Return full operation objects instead of summaries"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of results (default 100\\, 25 in detail mode)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Number of results to skip for pagination"`
}

// endpointSummary is the compact per-endpoint listing entry.
type endpointSummary struct {
	ID          string   `json:"id"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

// endpointDetail carries the full operation object for detail mode.
type endpointDetail struct {
	ID        string             `json:"id"`
	Method    string             `json:"method"`
	Path      string             `json:"path"`
	Operation *openapi.Operation `json:"operation"`
}

type listEndpointsOutput struct {
	Total     int               `json:"total"`
	Matched   int               `json:"matched"`
	Returned  int               `json:"returned"`
	Endpoints []endpointSummary `json:"endpoints,omitempty"`
	Details   []endpointDetail  `json:"details,omitempty"`
}

func handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, input listEndpointsInput) (*mcp.CallToolResult, listEndpointsOutput, error) {
	result, err := input.Spec.load()
	if err != nil {
		return errResult(err), listEndpointsOutput{}, nil
	}

	all := outline.Endpoints(result.Document)
	matched := filterEndpoints(all, input)

	limit := input.Limit
	if input.Detail {
		limit = detailLimit(limit)
	}
	page := paginate(matched, input.Offset, limit)

	output := listEndpointsOutput{
		Total:    len(all),
		Matched:  len(matched),
		Returned: len(page),
	}

	if input.Detail {
		output.Details = makeSlice[endpointDetail](len(page))
		for _, ep := range page {
			output.Details = append(output.Details, endpointDetail{
				ID:        ep.ID,
				Method:    strings.ToUpper(ep.Method),
				Path:      ep.Path,
				Operation: ep.Operation,
			})
		}
		return nil, output, nil
	}

	output.Endpoints = makeSlice[endpointSummary](len(page))
	for _, ep := range page {
		summary := endpointSummary{
			ID:     ep.ID,
			Method: strings.ToUpper(ep.Method),
			Path:   ep.Path,
		}
		if op := ep.Operation; op != nil {
			summary.OperationID = op.OperationID
			summary.Summary = truncateText(op.Summary, maxDescriptionLen)
			summary.Tags = op.Tags
			summary.Deprecated = op.Deprecated
		}
		output.Endpoints = append(output.Endpoints, summary)
	}
	return nil, output, nil
}

func filterEndpoints(endpoints []outline.Endpoint, input listEndpointsInput) []outline.Endpoint {
	var matched []outline.Endpoint
	for _, ep := range endpoints {
		if input.Method != "" && !strings.EqualFold(ep.Method, input.Method) {
			continue
		}
		if input.Path != "" && !matchPathPattern(ep.Path, input.Path) {
			continue
		}
		if input.Tag != "" && (ep.Operation == nil || !slices.Contains(ep.Operation.Tags, input.Tag)) {
			continue
		}
		matched = append(matched, ep)
	}
	return matched
}

// matchPathPattern checks if a path template matches a pattern.
// Supports simple glob matching where * matches exactly one path segment.
func matchPathPattern(pathTemplate, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.Contains(pattern, "*") {
		patternParts := strings.Split(pattern, "/")
		pathParts := strings.Split(pathTemplate, "/")
		if len(patternParts) != len(pathParts) {
			return false
		}
		for i, pp := range patternParts {
			if pp == "*" {
				continue
			}
			if pp != pathParts[i] {
				return false
			}
		}
		return true
	}
	return pathTemplate == pattern
}
