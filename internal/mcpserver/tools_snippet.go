package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasdocs/oasdocs/snippet"
)

type requestSnippetInput struct {
	Spec      specInput         `json:"spec"                 jsonschema:"The OpenAPI document the endpoint belongs to"`
	Endpoint  string            `json:"endpoint"             jsonschema:"Endpoint id (from list_endpoints)"`
	Target    string            `json:"target"               jsonschema:"Snippet target: curl\\, javascript\\, python\\, or go"`
	BaseURL   string            `json:"base_url,omitempty"   jsonschema:"Base URL overriding the document's first server"`
	AuthToken string            `json:"auth_token,omitempty" jsonschema:"Bearer token for the Authorization header"`
	Headers   map[string]string `json:"headers,omitempty"    jsonschema:"Additional request headers (name to value)"`
}

type requestSnippetOutput struct {
	Endpoint string `json:"endpoint"`
	Target   string `json:"target"`
	Snippet  string `json:"snippet"`
}

func handleRequestSnippet(_ context.Context, _ *mcp.CallToolRequest, input requestSnippetInput) (*mcp.CallToolResult, requestSnippetOutput, error) {
	result, err := input.Spec.load()
	if err != nil {
		return errResult(err), requestSnippetOutput{}, nil
	}

	ep, err := findEndpoint(result.Document, input.Endpoint)
	if err != nil {
		return errResult(err), requestSnippetOutput{}, nil
	}

	code, err := snippet.Generate(snippet.Target(input.Target), result.Document, ep, snippet.Options{
		BaseURL:   input.BaseURL,
		AuthToken: input.AuthToken,
		Headers:   input.Headers,
	})
	if err != nil {
		return errResult(err), requestSnippetOutput{}, nil
	}

	return nil, requestSnippetOutput{
		Endpoint: ep.ID,
		Target:   input.Target,
		Snippet:  code,
	}, nil
}
