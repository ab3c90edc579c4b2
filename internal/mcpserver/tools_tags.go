package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasdocs/oasdocs/outline"
)

type listTagsInput struct {
	Spec             specInput `json:"spec"                        jsonschema:"The OpenAPI document to list tag groups from"`
	IncludeEndpoints bool      `json:"include_endpoints,omitempty" jsonschema:"Include each group's endpoint ids"`
}

type tagSummary struct {
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	EndpointCount int      `json:"endpoint_count"`
	Endpoints     []string `json:"endpoints,omitempty"`
}

type listTagsOutput struct {
	Total int          `json:"total"`
	Tags  []tagSummary `json:"tags,omitempty"`
}

func handleListTags(_ context.Context, _ *mcp.CallToolRequest, input listTagsInput) (*mcp.CallToolResult, listTagsOutput, error) {
	result, err := input.Spec.load()
	if err != nil {
		return errResult(err), listTagsOutput{}, nil
	}

	groups := outline.ByTag(result.Document, outline.Endpoints(result.Document))

	output := listTagsOutput{
		Total: len(groups),
		Tags:  makeSlice[tagSummary](len(groups)),
	}
	for _, group := range groups {
		summary := tagSummary{
			Name:          group.Name,
			Description:   truncateText(group.Description, maxDescriptionLen),
			EndpointCount: len(group.Endpoints),
		}
		if input.IncludeEndpoints {
			summary.Endpoints = makeSlice[string](len(group.Endpoints))
			for _, ep := range group.Endpoints {
				summary.Endpoints = append(summary.Endpoints, ep.ID)
			}
		}
		output.Tags = append(output.Tags, summary)
	}
	return nil, output, nil
}
