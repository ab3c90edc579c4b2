// Package commands provides CLI command handlers for oasdocs.
package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.yaml.in/yaml/v4"

	oasdocs "github.com/oasdocs/oasdocs"
	"github.com/oasdocs/oasdocs/openapi"
	"github.com/oasdocs/oasdocs/outline"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateDocumentFormat validates a document output format. Unlike
// ValidateOutputFormat it accepts the empty string, which keeps the
// document's source format.
func ValidateDocumentFormat(format string) error {
	if format != "" && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// SpecFlags contains flags shared by every command that loads a document.
type SpecFlags struct {
	Insecure bool // Disable TLS certificate verification for HTTPS sources.
	Verbose  bool // Log loader diagnostics to stderr.
}

// RegisterSpecFlags binds the shared document-loading flags onto fs.
func RegisterSpecFlags(fs *flag.FlagSet, flags *SpecFlags) {
	fs.BoolVar(&flags.Insecure, "insecure", false, "disable TLS certificate verification for HTTPS sources")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log loader diagnostics to stderr")
}

// LoadSpec loads an OpenAPI document from a file path, URL, or stdin ("-").
func LoadSpec(specPath string, flags SpecFlags) (*openapi.LoadResult, error) {
	var opts []openapi.Option
	if specPath == StdinFilePath {
		opts = append(opts, openapi.WithReader(os.Stdin), openapi.WithSourceName("stdin"))
	} else {
		opts = append(opts, openapi.WithFilePath(specPath))
	}
	if flags.Insecure {
		opts = append(opts, openapi.WithInsecureSkipVerify(true))
	}
	if flags.Verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, openapi.WithLogger(openapi.NewSlogAdapter(slog.New(handler))))
	}
	return openapi.LoadWithOptions(opts...)
}

// FindEndpoint locates an endpoint by its stable id within doc.
func FindEndpoint(doc *openapi.Document, id string) (outline.Endpoint, error) {
	for _, ep := range outline.Endpoints(doc) {
		if ep.ID == id {
			return ep, nil
		}
	}
	return outline.Endpoint{}, fmt.Errorf("no endpoint with id %q (run 'oasdocs endpoints' to list ids)", id)
}

// MarshalDocument marshals a document to bytes in the specified source format.
func MarshalDocument(doc any, format openapi.SourceFormat) ([]byte, error) {
	if format == openapi.SourceFormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}

// FormatSpecPath returns a display-friendly path for the specification.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(specPath string) string {
	if specPath == StdinFilePath {
		return "<stdin>"
	}
	return specPath
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputSpecHeader outputs the common specification header to stderr.
// This includes oasdocs version, specification path, and OAS version.
func OutputSpecHeader(specPath, version string) {
	Writef(os.Stderr, "oasdocs version: %s\n", oasdocs.Version())
	Writef(os.Stderr, "Specification: %s\n", FormatSpecPath(specPath))
	Writef(os.Stderr, "OAS Version: %s\n", version)
}

// OutputSpecStats outputs the common specification statistics to stderr.
func OutputSpecStats(sourceSize int64, stats openapi.DocumentStats, loadTime any) {
	Writef(os.Stderr, "Source Size: %s\n", openapi.FormatBytes(sourceSize))
	Writef(os.Stderr, "Paths: %d\n", stats.PathCount)
	Writef(os.Stderr, "Operations: %d\n", stats.OperationCount)
	Writef(os.Stderr, "Schemas: %d\n", stats.SchemaCount)
	Writef(os.Stderr, "Tags: %d\n", stats.TagCount)
	Writef(os.Stderr, "Load Time: %v\n", loadTime)
}

// OutputWarnings outputs loader warnings to stderr.
func OutputWarnings(warnings []string) {
	if len(warnings) == 0 {
		return
	}
	Writef(os.Stderr, "Warnings:\n")
	for _, warning := range warnings {
		Writef(os.Stderr, "  - %s\n", warning)
	}
	Writef(os.Stderr, "\n")
}

// renderNoResults prints an informative message when no results match the filters.
func renderNoResults(nodeType string, quiet bool) {
	if !quiet {
		Writef(os.Stderr, "No %s matched the given filters.\n", nodeType)
	}
}
