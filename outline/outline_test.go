package outline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/oasdocs/oasdocs/openapi"
)

const fixtureYAML = `openapi: 3.0.3
info:
  title: Outline fixture
  version: 1.0.0
tags:
  - name: pets
    description: Pet operations
  - name: store
    description: Store operations
paths:
  /a:
    get:
      tags: [pets]
      responses:
        "200":
          description: OK
    post:
      tags: [pets, store]
      responses:
        "201":
          description: Created
  /b:
    get:
      responses:
        "200":
          description: OK
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: integer
      - name: verbose
        in: query
        schema:
          type: boolean
    get:
      summary: Get a pet
      operationId: getPet
      parameters:
        - name: verbose
          in: query
          description: overrides the shared declaration
          schema:
            type: string
        - name: fields
          in: query
          schema:
            type: string
      responses:
        "200":
          description: OK
    delete:
      responses:
        "204":
          description: Deleted
`

func fixtureDoc(t *testing.T) *openapi.Document {
	t.Helper()
	var doc openapi.Document
	require.NoError(t, yaml.Unmarshal([]byte(fixtureYAML), &doc))
	return &doc
}

func ids(endpoints []Endpoint) []string {
	out := make([]string, len(endpoints))
	for i, ep := range endpoints {
		out[i] = ep.ID
	}
	return out
}

func endpointByID(t *testing.T, endpoints []Endpoint, id string) Endpoint {
	t.Helper()
	for _, ep := range endpoints {
		if ep.ID == id {
			return ep
		}
	}
	t.Fatalf("no endpoint %q in %v", id, ids(endpoints))
	return Endpoint{}
}

func TestEndpointsOrder(t *testing.T) {
	endpoints := Endpoints(fixtureDoc(t))

	assert.Equal(t, []string{
		"get-a",
		"post-a",
		"get-b",
		"get-pets-petId",
		"delete-pets-petId",
	}, ids(endpoints))

	first := endpoints[0]
	assert.Equal(t, "get", first.Method)
	assert.Equal(t, "/a", first.Path)
	require.NotNil(t, first.Operation)
	assert.Equal(t, []string{"pets"}, first.Operation.Tags)
}

func TestEndpointsNilDoc(t *testing.T) {
	assert.Nil(t, Endpoints(nil))
	assert.Empty(t, Endpoints(&openapi.Document{}))
}

func TestEndpointID(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/a", "get-a"},
		{"get", "/pets/{petId}", "get-pets-petId"},
		{"post", "/users/{id}/avatar.png", "post-users-id-avatar-png"},
		{"get", "/", "get"},
		{"get", "", "get"},
		{"delete", "/a-b_c", "delete-a-b-c"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EndpointID(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

func TestParametersMerge(t *testing.T) {
	endpoints := Endpoints(fixtureDoc(t))
	get := endpointByID(t, endpoints, "get-pets-petId")

	merged := get.Parameters()
	require.Len(t, merged, 3)

	assert.Equal(t, "petId", merged[0].Name)
	assert.Equal(t, openapi.ParamInPath, merged[0].In)

	// The operation's verbose declaration replaces the shared one in
	// place, keeping its position.
	assert.Equal(t, "verbose", merged[1].Name)
	assert.Equal(t, "overrides the shared declaration", merged[1].Description)
	assert.Equal(t, "string", merged[1].Schema.TypeName())

	assert.Equal(t, "fields", merged[2].Name)
}

func TestParametersPathItemOnly(t *testing.T) {
	endpoints := Endpoints(fixtureDoc(t))
	del := endpointByID(t, endpoints, "delete-pets-petId")

	merged := del.Parameters()
	require.Len(t, merged, 2)
	assert.Equal(t, "petId", merged[0].Name)
	assert.Equal(t, "verbose", merged[1].Name)
	assert.Equal(t, "boolean", merged[1].Schema.TypeName())
}

func TestParametersOperationOnly(t *testing.T) {
	endpoints := Endpoints(fixtureDoc(t))
	get := endpointByID(t, endpoints, "get-a")
	assert.Empty(t, get.Parameters())
}

func TestByTag(t *testing.T) {
	doc := fixtureDoc(t)
	groups := ByTag(doc, Endpoints(doc))
	require.Len(t, groups, 3)

	assert.Equal(t, "pets", groups[0].Name)
	assert.Equal(t, "Pet operations", groups[0].Description)
	assert.Equal(t, []string{"get-a", "post-a"}, ids(groups[0].Endpoints))

	// post-a carries two tags and appears in both groups.
	assert.Equal(t, "store", groups[1].Name)
	assert.Equal(t, "Store operations", groups[1].Description)
	assert.Equal(t, []string{"post-a"}, ids(groups[1].Endpoints))

	assert.Equal(t, UntaggedName, groups[2].Name)
	assert.Empty(t, groups[2].Description)
	assert.Equal(t, []string{"get-b", "get-pets-petId", "delete-pets-petId"}, ids(groups[2].Endpoints))
}

func TestByTagEmpty(t *testing.T) {
	assert.Empty(t, ByTag(nil, nil))
}

func TestDisplayName(t *testing.T) {
	endpoints := Endpoints(fixtureDoc(t))

	assert.Equal(t, "Get a pet", endpointByID(t, endpoints, "get-pets-petId").DisplayName())
	assert.Equal(t, "Pets PetId", endpointByID(t, endpoints, "delete-pets-petId").DisplayName())

	withID := Endpoint{Operation: &openapi.Operation{OperationID: "listPets"}, Path: "/pets"}
	assert.Equal(t, "listPets", withID.DisplayName())

	assert.Equal(t, "Store Order", Endpoint{Path: "/store/order"}.DisplayName())
	assert.Equal(t, "/", Endpoint{Path: "/"}.DisplayName())
}
