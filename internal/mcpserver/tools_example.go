package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oasdocs/oasdocs/example"
	"github.com/oasdocs/oasdocs/internal/httputil"
	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/resolve"
)

type schemaExampleInput struct {
	Spec     specInput `json:"spec"               jsonschema:"The OpenAPI document to synthesize from"`
	Schema   string    `json:"schema,omitempty"   jsonschema:"Name of a component schema to synthesize"`
	Endpoint string    `json:"endpoint,omitempty" jsonschema:"Endpoint id (from list_endpoints) to synthesize a body for"`
	Kind     string    `json:"kind,omitempty"     jsonschema:"Which endpoint body: request or response (default response)"`
	Status   string    `json:"status,omitempty"   jsonschema:"Response status code (default 200\\, falling back to the default response)"`
}

type schemaExampleOutput struct {
	// Source names what the example was synthesized from,
	// e.g. "components.schemas.Pet" or "response 200 of get-pets-petId".
	Source string `json:"source"`
	// Example is the synthesized value. Null is a legitimate result:
	// unresolvable references and cyclic re-entries degrade to null.
	Example any `json:"example"`
}

func handleSchemaExample(_ context.Context, _ *mcp.CallToolRequest, input schemaExampleInput) (*mcp.CallToolResult, schemaExampleOutput, error) {
	if (input.Schema == "") == (input.Endpoint == "") {
		return errResult(fmt.Errorf("exactly one of schema or endpoint must be provided")), schemaExampleOutput{}, nil
	}

	result, err := input.Spec.load()
	if err != nil {
		return errResult(err), schemaExampleOutput{}, nil
	}
	doc := result.Document

	if input.Schema != "" {
		schema := doc.SchemaByName(input.Schema)
		if schema == nil {
			return errResult(fmt.Errorf("no component schema named %q", input.Schema)), schemaExampleOutput{}, nil
		}
		return nil, schemaExampleOutput{
			Source:  "components.schemas." + input.Schema,
			Example: example.Generate(doc, schema),
		}, nil
	}

	ep, err := findEndpoint(doc, input.Endpoint)
	if err != nil {
		return errResult(err), schemaExampleOutput{}, nil
	}

	kind := input.Kind
	if kind == "" {
		kind = "response"
	}
	switch kind {
	case "request":
		output, err := requestExample(doc, ep.ID, ep.Operation)
		if err != nil {
			return errResult(err), schemaExampleOutput{}, nil
		}
		return nil, output, nil
	case "response":
		output, err := responseExample(doc, ep.ID, ep.Operation, input.Status)
		if err != nil {
			return errResult(err), schemaExampleOutput{}, nil
		}
		return nil, output, nil
	default:
		return errResult(fmt.Errorf("invalid kind %q; valid values: request, response", input.Kind)), schemaExampleOutput{}, nil
	}
}

func requestExample(doc *openapi.Document, id string, op *openapi.Operation) (schemaExampleOutput, error) {
	if op == nil || op.RequestBody == nil {
		return schemaExampleOutput{}, fmt.Errorf("endpoint %q declares no request body", id)
	}
	rb := resolve.RequestBody(doc, op.RequestBody)
	if rb == nil {
		return schemaExampleOutput{}, fmt.Errorf("request body of %q references a missing component", id)
	}
	mt, ok := httputil.PickJSONContent(rb.Content)
	if !ok || mt == nil {
		return schemaExampleOutput{}, fmt.Errorf("request body of %q has no JSON content", id)
	}
	return schemaExampleOutput{
		Source:  "request body of " + id,
		Example: mediaTypeExample(doc, mt),
	}, nil
}

func responseExample(doc *openapi.Document, id string, op *openapi.Operation, status string) (schemaExampleOutput, error) {
	if op == nil || op.Responses == nil {
		return schemaExampleOutput{}, fmt.Errorf("endpoint %q declares no responses", id)
	}
	if status == "" {
		status = "200"
	}

	source := "response " + status + " of " + id
	resp, ok := op.Responses.Codes.Get(status)
	if !ok {
		resp = op.Responses.Default
		source = "default response of " + id
	}
	if resp == nil {
		return schemaExampleOutput{}, fmt.Errorf("endpoint %q declares no %s response and no default", id, status)
	}

	r := resolve.Response(doc, resp)
	if r == nil {
		return schemaExampleOutput{}, fmt.Errorf("%s references a missing component", source)
	}
	mt, ok := httputil.PickJSONContent(r.Content)
	if !ok || mt == nil {
		return schemaExampleOutput{}, fmt.Errorf("%s has no JSON content", source)
	}
	return schemaExampleOutput{
		Source:  source,
		Example: mediaTypeExample(doc, mt),
	}, nil
}

// mediaTypeExample prefers the media type's literal example and falls
// back to synthesizing one from its schema.
func mediaTypeExample(doc *openapi.Document, mt *openapi.MediaType) any {
	if mt.Example != nil {
		return mt.Example
	}
	return example.Generate(doc, mt.Schema)
}
