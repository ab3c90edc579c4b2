package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecSummaryTool(t *testing.T) {
	input := summaryInput{
		Spec: specInput{Content: testSpecYAML},
	}
	_, output, err := handleSpecSummary(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "3.0.0", output.Version)
	assert.Equal(t, "Pet Store", output.Title)
	assert.Equal(t, "1.0.0", output.APIVersion)
	assert.Equal(t, "A sample pet store API", output.Description)
	assert.Equal(t, "yaml", output.Format)
	assert.Equal(t, 4, output.PathCount)
	assert.Equal(t, 6, output.OperationCount)
	assert.Equal(t, 4, output.SchemaCount)
	assert.Equal(t, 2, output.TagCount)
	assert.Equal(t, []string{"pets", "store"}, output.Tags)
	assert.Empty(t, output.FullDocument)

	require.Len(t, output.Servers, 1)
	assert.Equal(t, "https://api.example.com/v1", output.Servers[0].URL)
	assert.Equal(t, "Production", output.Servers[0].Description)
}

func TestSpecSummaryTool_Full(t *testing.T) {
	input := summaryInput{
		Spec: specInput{Content: testSpecYAML},
		Full: true,
	}
	_, output, err := handleSpecSummary(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.NotEmpty(t, output.FullDocument)
	assert.Contains(t, output.FullDocument, "Pet Store")
	assert.Contains(t, output.FullDocument, "/pets/{petId}")
}

func TestSpecSummaryTool_FullJSONKeepsFormat(t *testing.T) {
	spec := `{"openapi":"3.1.0","info":{"title":"JSON API","version":"2.0"},"paths":{}}`
	input := summaryInput{
		Spec: specInput{Content: spec},
		Full: true,
	}
	_, output, err := handleSpecSummary(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, "json", output.Format)
	assert.True(t, strings.HasPrefix(output.FullDocument, "{"), "JSON input should marshal back as JSON")
	assert.Contains(t, output.FullDocument, `"title": "JSON API"`)
}

func TestSpecSummaryTool_InvalidSpec(t *testing.T) {
	input := summaryInput{
		Spec: specInput{Content: "not valid yaml: ["},
	}
	result, output, err := handleSpecSummary(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Empty(t, output.Version)
}

func TestSpecSummaryTool_TruncatesLongDescription(t *testing.T) {
	longDesc := strings.Repeat("A", 500)
	spec := `openapi: "3.0.0"
info:
  title: Long Desc Test
  description: "` + longDesc + `"
  version: "1.0.0"
servers:
  - url: https://api.example.com
    description: "` + longDesc + `"
paths: {}
`
	input := summaryInput{
		Spec: specInput{Content: spec},
	}
	_, output, err := handleSpecSummary(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	// Summary mode: description should be truncated.
	assert.LessOrEqual(t, len(output.Description), 203) // 200 + "..."
	assert.True(t, strings.HasSuffix(output.Description, "..."))
	// Server description should also be truncated.
	require.Len(t, output.Servers, 1)
	assert.LessOrEqual(t, len(output.Servers[0].Description), 203)
	assert.True(t, strings.HasSuffix(output.Servers[0].Description, "..."))
}
