package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTagsTool(t *testing.T) {
	input := listTagsInput{
		Spec: specInput{Content: testSpecYAML},
	}
	result, output, err := handleListTags(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	assert.Equal(t, 3, output.Total)
	require.Len(t, output.Tags, 3)

	pets := output.Tags[0]
	assert.Equal(t, "pets", pets.Name)
	assert.Equal(t, "Everything about pets", pets.Description)
	assert.Equal(t, 4, pets.EndpointCount)
	assert.Nil(t, pets.Endpoints, "endpoint ids are opt-in")

	store := output.Tags[1]
	assert.Equal(t, "store", store.Name)
	assert.Equal(t, "Order management", store.Description)
	assert.Equal(t, 1, store.EndpointCount)

	untagged := output.Tags[2]
	assert.Equal(t, "Untagged", untagged.Name)
	assert.Empty(t, untagged.Description)
	assert.Equal(t, 1, untagged.EndpointCount)
}

func TestListTagsTool_IncludeEndpoints(t *testing.T) {
	input := listTagsInput{
		Spec:             specInput{Content: testSpecYAML},
		IncludeEndpoints: true,
	}
	_, output, err := handleListTags(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	require.Len(t, output.Tags, 3)
	assert.Equal(t, []string{
		"get-pets", "post-pets", "get-pets-petId", "delete-pets-petId",
	}, output.Tags[0].Endpoints)
	assert.Equal(t, []string{"post-store-orders"}, output.Tags[1].Endpoints)
	assert.Equal(t, []string{"get-healthz"}, output.Tags[2].Endpoints)
}

func TestListTagsTool_InvalidSpec(t *testing.T) {
	input := listTagsInput{
		Spec: specInput{Content: "not valid yaml: ["},
	}
	result, output, err := handleListTags(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Zero(t, output.Total)
}
