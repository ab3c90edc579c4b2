package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oasdocs/oasdocs/snippet"
)

// headerFlag is a custom flag type for collecting request header overrides.
// It allows the flag to be specified multiple times, each with "Name: value" format.
type headerFlag map[string]string

// String returns the string representation of the flag value
func (h headerFlag) String() string {
	if h == nil {
		return ""
	}
	pairs := make([]string, 0, len(h))
	for k, v := range h {
		pairs = append(pairs, k+": "+v)
	}
	return strings.Join(pairs, ", ")
}

// Set parses a "Name: value" header and adds it to the map
func (h headerFlag) Set(value string) error {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid header format: %q (expected 'Name: value')", value)
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return fmt.Errorf("header requires a non-empty name: %q", value)
	}
	h[name] = strings.TrimSpace(parts[1])
	return nil
}

// SnippetFlags contains flags for the snippet command
type SnippetFlags struct {
	Endpoint  string
	Target    string
	BaseURL   string
	AuthToken string
	Headers   headerFlag
	Spec      SpecFlags
}

// SetupSnippetFlags creates and configures a FlagSet for the snippet command.
// Returns the FlagSet and a SnippetFlags struct with bound flag variables.
func SetupSnippetFlags() (*flag.FlagSet, *SnippetFlags) {
	fs := flag.NewFlagSet("snippet", flag.ContinueOnError)
	flags := &SnippetFlags{
		Headers: make(headerFlag),
	}

	fs.StringVar(&flags.Endpoint, "endpoint", "", "endpoint id to generate the snippet for (required)")
	fs.StringVar(&flags.Target, "target", string(snippet.TargetCurl), "snippet language: "+targetsUsage())
	fs.StringVar(&flags.BaseURL, "base-url", "", "base URL overriding the document's first server")
	fs.StringVar(&flags.AuthToken, "auth-token", "", "bearer token for the Authorization header")
	fs.Var(flags.Headers, "header", "additional header (format: 'Name: value', can be repeated)")
	RegisterSpecFlags(fs, &flags.Spec)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdocs snippet [flags] <file|url|->\n\n")
		Writef(output, "Generate a ready-to-run request snippet for an endpoint.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nTargets:\n")
		Writef(output, "  curl          Shell command using curl\n")
		Writef(output, "  javascript    fetch call for browsers and Node\n")
		Writef(output, "  python        Script using the requests library\n")
		Writef(output, "  go            Program using net/http\n")
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdocs snippet --endpoint get-pets openapi.yaml\n")
		Writef(output, "  oasdocs snippet --endpoint get-pets --target python openapi.yaml\n")
		Writef(output, "  oasdocs snippet --endpoint post-pets --base-url http://localhost:8080 openapi.yaml\n")
		Writef(output, "  oasdocs snippet --endpoint get-pets --auth-token $TOKEN --header 'X-Request-Id: 42' openapi.yaml\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - Run 'oasdocs endpoints' to list endpoint ids\n")
		Writef(output, "  - Path parameters are filled with example values from the document\n")
		Writef(output, "  - Without --base-url the document's first server URL is used\n")
	}

	return fs, flags
}

// targetsUsage joins the supported snippet targets for flag help text.
func targetsUsage() string {
	targets := snippet.Targets()
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

// HandleSnippet executes the snippet command
func HandleSnippet(args []string) error {
	fs, flags := SetupSnippetFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Endpoint == "" {
		fs.Usage()
		return fmt.Errorf("endpoint id is required (use --endpoint; run 'oasdocs endpoints' to list ids)")
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("snippet command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	result, err := LoadSpec(specPath, flags.Spec)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	ep, err := FindEndpoint(result.Document, flags.Endpoint)
	if err != nil {
		return err
	}

	code, err := snippet.Generate(snippet.Target(flags.Target), result.Document, ep, snippet.Options{
		BaseURL:   flags.BaseURL,
		AuthToken: flags.AuthToken,
		Headers:   flags.Headers,
	})
	if err != nil {
		return err
	}

	Writef(os.Stdout, "%s\n", strings.TrimRight(code, "\n"))
	return nil
}
