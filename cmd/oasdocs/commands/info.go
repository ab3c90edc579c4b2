package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/oasdocs/oasdocs/openapi"
)

// InfoFlags contains flags for the info command
type InfoFlags struct {
	Format string
	Quiet  bool
	Spec   SpecFlags
}

// SetupInfoFlags creates and configures a FlagSet for the info command.
// Returns the FlagSet and an InfoFlags struct with bound flag variables.
func SetupInfoFlags() (*flag.FlagSet, *InfoFlags) {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	flags := &InfoFlags{}

	fs.StringVar(&flags.Format, "format", "", "output format for the document: json, yaml (default: source format)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	RegisterSpecFlags(fs, &flags.Spec)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdocs info [flags] <file|url|->\n\n")
		Writef(output, "Show document identity and statistics, then write the document to stdout.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdocs info openapi.yaml\n")
		Writef(output, "  oasdocs info --format json openapi.yaml > openapi.json\n")
		Writef(output, "  oasdocs info https://example.com/api/openapi.yaml\n")
		Writef(output, "  cat openapi.yaml | oasdocs info -q -\n")
		Writef(output, "\nPipelining:\n")
		Writef(output, "  - Diagnostics go to stderr and the document goes to stdout\n")
		Writef(output, "  - Use '-' as the file path to read from stdin\n")
		Writef(output, "  - Use --quiet/-q to suppress diagnostic output\n")
	}

	return fs, flags
}

// HandleInfo executes the info command
func HandleInfo(args []string) error {
	fs, flags := SetupInfoFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateDocumentFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("info command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	result, err := LoadSpec(specPath, flags.Spec)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	if !flags.Quiet {
		Writef(os.Stderr, "OpenAPI Document Info\n")
		Writef(os.Stderr, "=====================\n\n")
		OutputSpecHeader(specPath, result.Version)
		OutputSpecStats(result.SourceSize, result.Stats, result.LoadTime)
		Writef(os.Stderr, "\n")

		OutputWarnings(result.Warnings)
		outputDocumentIdentity(result.Document)
	}

	if flags.Format != "" {
		return RenderDetail(os.Stdout, result.Document, flags.Format)
	}
	data, err := MarshalDocument(result.Document, result.SourceFormat)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	Writef(os.Stdout, "%s\n", strings.TrimRight(string(data), "\n"))
	return nil
}

// outputDocumentIdentity outputs the document's info block and top-level
// inventory to stderr.
func outputDocumentIdentity(doc *openapi.Document) {
	if doc == nil {
		return
	}
	if doc.Info != nil {
		Writef(os.Stderr, "Title: %s\n", doc.Info.Title)
		if doc.Info.Summary != "" {
			Writef(os.Stderr, "Summary: %s\n", doc.Info.Summary)
		}
		if doc.Info.Description != "" {
			Writef(os.Stderr, "Description: %s\n", doc.Info.Description)
		}
		Writef(os.Stderr, "API Version: %s\n", doc.Info.Version)
	}
	Writef(os.Stderr, "Servers: %d\n", len(doc.Servers))
	if names := tagNames(doc); len(names) > 0 {
		Writef(os.Stderr, "Declared Tags: %s\n", strings.Join(names, ", "))
	}
	Writef(os.Stderr, "\n")
}

// tagNames returns the names from the document's top-level tag list.
func tagNames(doc *openapi.Document) []string {
	names := make([]string, 0, len(doc.Tags))
	for _, tag := range doc.Tags {
		if tag != nil && tag.Name != "" {
			names = append(names, tag.Name)
		}
	}
	return names
}
