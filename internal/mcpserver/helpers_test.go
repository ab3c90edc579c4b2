package mcpserver

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/oasdocs/oasdocs/openapi"
)

// testSpecYAML is a small petstore document shared across tool tests.
// Endpoint ids, in declaration order: get-pets, post-pets, get-pets-petId,
// delete-pets-petId, post-store-orders, get-healthz.
const testSpecYAML = `openapi: "3.0.0"
info:
  title: Pet Store
  description: A sample pet store API
  version: "1.0.0"
servers:
  - url: https://api.example.com/v1
    description: Production
tags:
  - name: pets
    description: Everything about pets
  - name: store
    description: Order management
paths:
  /pets:
    get:
      summary: List pets
      operationId: listPets
      tags: [pets]
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
            default: 20
      responses:
        "200":
          description: A paged array of pets
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: "#/components/schemas/Pet"
        default:
          description: Unexpected error
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Error"
    post:
      summary: Create a pet
      operationId: createPet
      tags: [pets]
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/NewPet"
      responses:
        "201":
          description: Pet created
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
        schema:
          type: integer
        example: 123
    get:
      summary: Get a pet
      operationId: getPet
      tags: [pets]
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                $ref: "#/components/schemas/Pet"
    delete:
      summary: Delete a pet
      operationId: deletePet
      tags: [pets]
      responses:
        "204":
          description: Pet deleted
  /store/orders:
    post:
      summary: Place an order
      operationId: placeOrder
      tags: [store]
      requestBody:
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/Order"
      responses:
        "201":
          description: Order placed
  /healthz:
    get:
      summary: Health check
      operationId: healthCheck
      responses:
        "200":
          description: Service is healthy
components:
  schemas:
    Pet:
      type: object
      required: [id, name]
      properties:
        id:
          type: integer
        name:
          type: string
          example: Rex
        tag:
          type: string
          enum: [dog, cat]
        status:
          type: string
          default: available
    NewPet:
      type: object
      required: [name]
      properties:
        name:
          type: string
          example: Rex
        tag:
          type: string
          enum: [dog, cat]
    Order:
      type: object
      properties:
        petId:
          type: integer
        quantity:
          type: integer
          default: 1
        complete:
          type: boolean
    Error:
      type: object
      required: [code, message]
      properties:
        code:
          type: integer
        message:
          type: string
`

// loadTestDoc decodes testSpecYAML into a Document, bypassing the
// session cache.
func loadTestDoc(t *testing.T) *openapi.Document {
	t.Helper()
	result, err := openapi.LoadWithOptions(openapi.WithBytes([]byte(testSpecYAML)))
	require.NoError(t, err)
	return result.Document
}

// textContent returns the text of a result's first content item.
func textContent(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return text.Text
}
