package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/oasdocs/oasdocs/outline"
)

// endpointView is the serializable form of one endpoint row.
type endpointView struct {
	ID          string   `json:"id" yaml:"id"`
	Method      string   `json:"method" yaml:"method"`
	Path        string   `json:"path" yaml:"path"`
	OperationID string   `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
}

// tagGroupView is the serializable form of one tag group.
type tagGroupView struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Endpoints   []endpointView `json:"endpoints" yaml:"endpoints"`
}

// EndpointsFlags contains flags for the endpoints command
type EndpointsFlags struct {
	ByTag      bool
	Method     string
	Path       string
	Tag        string
	Deprecated bool
	Format     string
	Quiet      bool
	Spec       SpecFlags
}

// SetupEndpointsFlags creates and configures a FlagSet for the endpoints command.
// Returns the FlagSet and an EndpointsFlags struct with bound flag variables.
func SetupEndpointsFlags() (*flag.FlagSet, *EndpointsFlags) {
	fs := flag.NewFlagSet("endpoints", flag.ContinueOnError)
	flags := &EndpointsFlags{}

	fs.BoolVar(&flags.ByTag, "by-tag", false, "group endpoints by tag")
	fs.StringVar(&flags.Method, "method", "", "filter by HTTP method (e.g., get, post)")
	fs.StringVar(&flags.Path, "path", "", "filter by path pattern (supports glob with *)")
	fs.StringVar(&flags.Tag, "tag", "", "filter by tag")
	fs.BoolVar(&flags.Deprecated, "deprecated", false, "only show deprecated endpoints")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, yaml")
	fs.BoolVar(&flags.Quiet, "q", false, "suppress headers and decoration (shorthand)")
	fs.BoolVar(&flags.Quiet, "quiet", false, "suppress headers and decoration")
	RegisterSpecFlags(fs, &flags.Spec)

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oasdocs endpoints [flags] <file|url|->\n\n")
		Writef(output, "List the document's endpoints, flat or grouped by tag.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  oasdocs endpoints openapi.yaml\n")
		Writef(output, "  oasdocs endpoints --by-tag openapi.yaml\n")
		Writef(output, "  oasdocs endpoints --method get --path '/pets/*' openapi.yaml\n")
		Writef(output, "  oasdocs endpoints --tag pets --format json openapi.yaml | jq\n")
		Writef(output, "  cat openapi.yaml | oasdocs endpoints -q -\n")
		Writef(output, "\nNotes:\n")
		Writef(output, "  - The id column is the stable endpoint identifier used by the\n")
		Writef(output, "    example and snippet commands\n")
		Writef(output, "  - A path pattern's * matches exactly one path segment\n")
		Writef(output, "  - Operations without tags group under %q with --by-tag\n", outline.UntaggedName)
	}

	return fs, flags
}

// HandleEndpoints executes the endpoints command
func HandleEndpoints(args []string) error {
	fs, flags := SetupEndpointsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("endpoints command requires exactly one file path, URL, or '-' for stdin")
	}

	specPath := fs.Arg(0)

	result, err := LoadSpec(specPath, flags.Spec)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	endpoints := outline.Endpoints(result.Document)
	matched := filterEndpoints(endpoints, flags.Method, flags.Path, flags.Tag, flags.Deprecated)

	if len(matched) == 0 {
		renderNoResults("endpoints", flags.Quiet)
		return nil
	}

	if flags.ByTag {
		return renderEndpointsByTag(outline.ByTag(result.Document, matched), flags)
	}
	return renderEndpointsFlat(matched, flags)
}

// filterEndpoints applies all endpoint filters and returns the matching subset.
func filterEndpoints(endpoints []outline.Endpoint, method, path, tag string, deprecated bool) []outline.Endpoint {
	var matched []outline.Endpoint
	for _, ep := range endpoints {
		if method != "" && !strings.EqualFold(ep.Method, method) {
			continue
		}
		if !matchPath(ep.Path, path) {
			continue
		}
		if tag != "" && (ep.Operation == nil || !slices.Contains(ep.Operation.Tags, tag)) {
			continue
		}
		if deprecated && (ep.Operation == nil || !ep.Operation.Deprecated) {
			continue
		}
		matched = append(matched, ep)
	}
	return matched
}

// matchPath checks if a path template matches a pattern.
// Supports simple glob matching where * matches exactly one path segment
// (e.g., /pets/* matches /pets/123 but not /pets/123/details).
func matchPath(pathTemplate, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.Contains(pattern, "*") {
		patternParts := strings.Split(pattern, "/")
		pathParts := strings.Split(pathTemplate, "/")
		if len(patternParts) != len(pathParts) {
			return false
		}
		for i, pp := range patternParts {
			if pp == "*" {
				continue
			}
			if pp != pathParts[i] {
				return false
			}
		}
		return true
	}
	return pathTemplate == pattern
}

// endpointViews converts endpoints into their serializable form.
func endpointViews(endpoints []outline.Endpoint) []endpointView {
	views := make([]endpointView, 0, len(endpoints))
	for _, ep := range endpoints {
		view := endpointView{
			ID:     ep.ID,
			Method: strings.ToUpper(ep.Method),
			Path:   ep.Path,
		}
		if op := ep.Operation; op != nil {
			view.OperationID = op.OperationID
			view.Summary = op.Summary
			view.Tags = op.Tags
			view.Deprecated = op.Deprecated
		}
		views = append(views, view)
	}
	return views
}

// renderEndpointsFlat renders the ungrouped endpoint listing.
func renderEndpointsFlat(endpoints []outline.Endpoint, flags *EndpointsFlags) error {
	views := endpointViews(endpoints)
	if flags.Format != FormatText {
		return RenderDetail(os.Stdout, views, flags.Format)
	}

	headers := []string{"ID", "METHOD", "PATH", "SUMMARY", "TAGS"}
	rows := make([][]string, 0, len(views))
	for _, view := range views {
		rows = append(rows, []string{
			view.ID,
			view.Method,
			view.Path,
			view.Summary,
			strings.Join(view.Tags, ", "),
		})
	}
	RenderSummaryTable(os.Stdout, headers, rows, flags.Quiet)
	return nil
}

// renderEndpointsByTag renders the listing grouped by tag.
func renderEndpointsByTag(groups []outline.TagGroup, flags *EndpointsFlags) error {
	if flags.Format != FormatText {
		views := make([]tagGroupView, 0, len(groups))
		for _, group := range groups {
			views = append(views, tagGroupView{
				Name:        group.Name,
				Description: group.Description,
				Endpoints:   endpointViews(group.Endpoints),
			})
		}
		return RenderDetail(os.Stdout, views, flags.Format)
	}

	for i, group := range groups {
		if flags.Quiet {
			// Quiet: tab-separated rows with the tag as first column.
			for _, view := range endpointViews(group.Endpoints) {
				Writef(os.Stdout, "%s\t%s\t%s\t%s\n", group.Name, view.ID, view.Method, view.Path)
			}
			continue
		}

		if i > 0 {
			Writef(os.Stdout, "\n")
		}
		if group.Description != "" {
			Writef(os.Stdout, "%s (%d): %s\n", group.Name, len(group.Endpoints), group.Description)
		} else {
			Writef(os.Stdout, "%s (%d)\n", group.Name, len(group.Endpoints))
		}

		headers := []string{"ID", "METHOD", "PATH", "SUMMARY"}
		rows := make([][]string, 0, len(group.Endpoints))
		for _, view := range endpointViews(group.Endpoints) {
			rows = append(rows, []string{view.ID, view.Method, view.Path, view.Summary})
		}
		RenderSummaryTable(os.Stdout, headers, rows, false)
	}
	return nil
}
