package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.yaml.in/yaml/v4"

	"github.com/oasdocs/oasdocs/openapi"
)

type summaryInput struct {
	Spec specInput `json:"spec"           jsonschema:"The OpenAPI document to summarize"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the full document instead of just the summary"`
}

type summaryServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type summaryOutput struct {
	Version        string          `json:"version"`
	Title          string          `json:"title"`
	APIVersion     string          `json:"api_version,omitempty"`
	Description    string          `json:"description,omitempty"`
	PathCount      int             `json:"path_count"`
	OperationCount int             `json:"operation_count"`
	SchemaCount    int             `json:"schema_count"`
	TagCount       int             `json:"tag_count"`
	Servers        []summaryServer `json:"servers,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	Format         string          `json:"format"`
	FullDocument   string          `json:"full_document,omitempty"`
}

func handleSpecSummary(_ context.Context, _ *mcp.CallToolRequest, input summaryInput) (*mcp.CallToolResult, summaryOutput, error) {
	result, err := input.Spec.load()
	if err != nil {
		return errResult(err), summaryOutput{}, nil
	}
	doc := result.Document

	output := summaryOutput{
		Version:        result.Version,
		Format:         string(result.SourceFormat),
		PathCount:      result.Stats.PathCount,
		OperationCount: result.Stats.OperationCount,
		SchemaCount:    result.Stats.SchemaCount,
		TagCount:       result.Stats.TagCount,
	}

	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.APIVersion = doc.Info.Version
		output.Description = truncateText(doc.Info.Description, maxDescriptionLen)
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}
	for _, s := range doc.Servers {
		if s != nil {
			output.Servers = append(output.Servers, summaryServer{
				URL:         s.URL,
				Description: truncateText(s.Description, maxDescriptionLen),
			})
		}
	}

	if input.Full {
		var data []byte
		switch result.SourceFormat {
		case openapi.SourceFormatJSON:
			data, err = json.MarshalIndent(doc, "", "  ")
		default:
			data, err = yaml.Marshal(doc)
		}
		if err != nil {
			return errResult(err), summaryOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
