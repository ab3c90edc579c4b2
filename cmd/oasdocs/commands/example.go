package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/oasdocs/oasdocs/example"
	"github.com/oasdocs/oasdocs/internal/httputil"
	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/outline"
	"github.com/oasdocs/oasdocs/resolve"
)

// Endpoint body kinds selectable with --kind.
const (
	kindRequest  = "request"
	kindResponse = "response"
)

// ExampleFlags contains flags for the example command
type ExampleFlags struct {
	Schema   string
	Endpoint string
	Kind     string
	Status   string
	Format   string
	Quiet    bool
	Spec     SpecFlags
}

// SetupExampleFlags creates and configures a FlagSet for the example command.
// Returns the FlagSet and an ExampleFlags struct with bound flag variables.
func SetupExampleFlags() (*flag.FlagSet, *ExampleFlags) {
	fs := flag.NewFlagSet("example", flag.ContinueOnError)
	flags := &ExampleFlags{}

	fs.StringVar(&flags.Schema, "schema", "", "generate an example for the named component schema")
	fs.StringVar(&flags.Endpoint, "endpoint", "", "generate an example for an endpoint body (see 'oasdocs endpoints' for ids)")
	fs.StringVar(&flags.Kind, "kind", kindResponse, "endpoint body to use: request or response")
	fs.StringVar(&flags.Status, "status", "200", "response status code to use with --kind response")
	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the example value")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the example value")
	RegisterSpecFlags(fs, &flags.Spec)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdocs example [flags] <file|url|->\n\n")
		Writef(output, "Generate an example value for a component schema or an endpoint body.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdocs example --schema Pet openapi.yaml\n")
		Writef(output, "  oasdocs example --endpoint get-pets openapi.yaml\n")
		Writef(output, "  oasdocs example --endpoint post-pets --kind request openapi.yaml\n")
		Writef(output, "  oasdocs example --endpoint get-pets --status 404 openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | oasdocs example --schema Pet -q -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Exactly one of --schema or --endpoint must be given\n")
		Writef(output, "  - Endpoint bodies use the application/json media type; a literal\n")
		Writef(output, "    example on the media type wins over synthesis from its schema\n")
		Writef(output, "  - When the requested status has no response, the default response\n")
		Writef(output, "    is used instead\n")
		Writef(output, "  - Unresolvable references render as null\n")
	}

	return fs, flags
}

// HandleExample executes the example command
func HandleExample(args []string) error {
	fs, flags := SetupExampleFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Format != FormatJSON && flags.Format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", flags.Format, FormatJSON, FormatYAML)
	}

	if (flags.Schema == "") == (flags.Endpoint == "") {
		fs.Usage()
		return fmt.Errorf("exactly one of --schema or --endpoint is required")
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("example command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	result, err := LoadSpec(specPath, flags.Spec)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}
	doc := result.Document

	var source string
	var value any

	if flags.Schema != "" {
		schema := doc.SchemaByName(flags.Schema)
		if schema == nil {
			return fmt.Errorf("no component schema named %q", flags.Schema)
		}
		source = "components.schemas." + flags.Schema
		value = example.Generate(doc, schema)
	} else {
		ep, err := FindEndpoint(doc, flags.Endpoint)
		if err != nil {
			return err
		}
		switch flags.Kind {
		case kindRequest:
			source, value, err = requestBodyExample(doc, ep)
		case kindResponse:
			source, value, err = responseBodyExample(doc, ep, flags.Status)
		default:
			return fmt.Errorf("invalid kind %q; valid values: %s, %s", flags.Kind, kindRequest, kindResponse)
		}
		if err != nil {
			return err
		}
	}

	if !flags.Quiet {
		Writef(os.Stderr, "Source: %s\n", source)
	}
	return RenderDetail(os.Stdout, value, flags.Format)
}

// requestBodyExample produces an example for ep's JSON request body.
func requestBodyExample(doc *openapi.Document, ep outline.Endpoint) (string, any, error) {
	op := ep.Operation
	if op == nil || op.RequestBody == nil {
		return "", nil, fmt.Errorf("endpoint %q declares no request body", ep.ID)
	}
	rb := resolve.RequestBody(doc, op.RequestBody)
	if rb == nil {
		return "", nil, fmt.Errorf("request body of %q references a missing component", ep.ID)
	}
	mt, ok := httputil.PickJSONContent(rb.Content)
	if !ok || mt == nil {
		return "", nil, fmt.Errorf("request body of %q has no JSON content", ep.ID)
	}
	return "request body of " + ep.ID, bodyExampleValue(doc, mt), nil
}

// responseBodyExample produces an example for ep's JSON response body at
// the given status, falling back to the default response.
func responseBodyExample(doc *openapi.Document, ep outline.Endpoint, status string) (string, any, error) {
	op := ep.Operation
	if op == nil || op.Responses == nil {
		return "", nil, fmt.Errorf("endpoint %q declares no responses", ep.ID)
	}
	if status == "" {
		status = "200"
	}

	source := "response " + status + " of " + ep.ID
	resp, ok := op.Responses.Codes.Get(status)
	if !ok {
		resp = op.Responses.Default
		source = "default response of " + ep.ID
	}
	if resp == nil {
		return "", nil, fmt.Errorf("endpoint %q declares no %s response and no default", ep.ID, status)
	}

	r := resolve.Response(doc, resp)
	if r == nil {
		return "", nil, fmt.Errorf("%s references a missing component", source)
	}
	mt, ok := httputil.PickJSONContent(r.Content)
	if !ok || mt == nil {
		return "", nil, fmt.Errorf("%s has no JSON content", source)
	}
	return source, bodyExampleValue(doc, mt), nil
}

// bodyExampleValue prefers the media type's literal example and falls
// back to synthesizing one from its schema.
func bodyExampleValue(doc *openapi.Document, mt *openapi.MediaType) any {
	if mt.Example != nil {
		return mt.Example
	}
	return example.Generate(doc, mt.Schema)
}
