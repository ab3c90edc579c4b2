package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listEndpoints(t *testing.T, input listEndpointsInput) listEndpointsOutput {
	t.Helper()
	result, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result, "expected no tool error")
	return output
}

func summaryIDs(output listEndpointsOutput) []string {
	ids := make([]string, 0, len(output.Endpoints))
	for _, ep := range output.Endpoints {
		ids = append(ids, ep.ID)
	}
	return ids
}

func TestListEndpointsTool(t *testing.T) {
	output := listEndpoints(t, listEndpointsInput{
		Spec: specInput{Content: testSpecYAML},
	})

	assert.Equal(t, 6, output.Total)
	assert.Equal(t, 6, output.Matched)
	assert.Equal(t, 6, output.Returned)
	assert.Equal(t, []string{
		"get-pets", "post-pets",
		"get-pets-petId", "delete-pets-petId",
		"post-store-orders", "get-healthz",
	}, summaryIDs(output))
	assert.Nil(t, output.Details)

	first := output.Endpoints[0]
	assert.Equal(t, "GET", first.Method)
	assert.Equal(t, "/pets", first.Path)
	assert.Equal(t, "listPets", first.OperationID)
	assert.Equal(t, "List pets", first.Summary)
	assert.Equal(t, []string{"pets"}, first.Tags)
	assert.False(t, first.Deprecated)
}

func TestListEndpointsTool_FilterByTag(t *testing.T) {
	output := listEndpoints(t, listEndpointsInput{
		Spec: specInput{Content: testSpecYAML},
		Tag:  "pets",
	})

	assert.Equal(t, 6, output.Total)
	assert.Equal(t, 4, output.Matched)
	assert.Equal(t, []string{
		"get-pets", "post-pets", "get-pets-petId", "delete-pets-petId",
	}, summaryIDs(output))
}

func TestListEndpointsTool_FilterByMethod(t *testing.T) {
	output := listEndpoints(t, listEndpointsInput{
		Spec:   specInput{Content: testSpecYAML},
		Method: "POST",
	})

	assert.Equal(t, 2, output.Matched)
	assert.Equal(t, []string{"post-pets", "post-store-orders"}, summaryIDs(output))
}

func TestListEndpointsTool_FilterByPath(t *testing.T) {
	output := listEndpoints(t, listEndpointsInput{
		Spec: specInput{Content: testSpecYAML},
		Path: "/pets/*",
	})

	assert.Equal(t, 2, output.Matched)
	assert.Equal(t, []string{"get-pets-petId", "delete-pets-petId"}, summaryIDs(output))
}

func TestListEndpointsTool_Pagination(t *testing.T) {
	output := listEndpoints(t, listEndpointsInput{
		Spec:   specInput{Content: testSpecYAML},
		Offset: 1,
		Limit:  2,
	})

	assert.Equal(t, 6, output.Matched)
	assert.Equal(t, 2, output.Returned)
	assert.Equal(t, []string{"post-pets", "get-pets-petId"}, summaryIDs(output))
}

func TestListEndpointsTool_Detail(t *testing.T) {
	output := listEndpoints(t, listEndpointsInput{
		Spec:   specInput{Content: testSpecYAML},
		Detail: true,
		Limit:  1,
	})

	assert.Nil(t, output.Endpoints)
	require.Len(t, output.Details, 1)
	detail := output.Details[0]
	assert.Equal(t, "get-pets", detail.ID)
	assert.Equal(t, "GET", detail.Method)
	require.NotNil(t, detail.Operation)
	assert.Equal(t, "listPets", detail.Operation.OperationID)
}

func TestListEndpointsTool_InvalidSpec(t *testing.T) {
	result, output, err := handleListEndpoints(context.Background(), &mcp.CallToolRequest{}, listEndpointsInput{
		Spec: specInput{Content: "not valid yaml: ["},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Zero(t, output.Total)
}

func TestMatchPathPattern(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{"/pets", "", true},
		{"/pets", "/pets", true},
		{"/pets", "/pet", false},
		{"/pets/{petId}", "/pets/*", true},
		{"/pets/{petId}/toys", "/pets/*", false},
		{"/pets/{petId}/toys", "/pets/*/toys", true},
		{"/pets/{petId}/toys", "/*/*/toys", true},
		{"/store/orders", "/pets/*", false},
	}
	for _, tt := range tests {
		t.Run(tt.path+" vs "+tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPathPattern(tt.path, tt.pattern))
		})
	}
}
