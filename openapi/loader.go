// Package openapi loads OpenAPI 3.x documents into a typed,
// order-preserving model.
//
// Documents can arrive as files, URLs, readers, or raw bytes, in JSON
// or YAML. The loader tries strict JSON first and falls back to YAML,
// so JSON documents always report SourceFormatJSON even though JSON is
// a YAML subset. A document must carry a non-empty openapi version
// string and a paths object to load; anything else fails with a
// docerrors.ParseError.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/oasdocs/oasdocs/docerrors"
)

// DefaultMaxFileSize is the document size cap applied when the loader's
// MaxFileSize is zero (10 MiB).
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Loader reads OpenAPI documents and decodes them into the typed model.
// The zero value is ready to use; fields may be set before the first
// Load call to override defaults.
type Loader struct {
	// UserAgent is sent with HTTP requests when loading from a URL.
	// Empty means the oasdocs default.
	UserAgent string

	// HTTPClient is used for URL loads when set. When nil, a default
	// client with a 30 second timeout is used.
	HTTPClient *http.Client

	// InsecureSkipVerify disables TLS certificate verification for URL
	// loads. Ignored when HTTPClient is set.
	InsecureSkipVerify bool

	// Logger receives structured diagnostics. Nil disables logging.
	Logger Logger

	// MaxFileSize caps accepted document sizes in bytes. Zero means
	// DefaultMaxFileSize.
	MaxFileSize int64
}

// New creates a Loader with default settings
func New() *Loader {
	return &Loader{}
}

// log returns the configured logger, or a no-op logger when none is set
func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

func (l *Loader) maxFileSize() int64 {
	if l.MaxFileSize > 0 {
		return l.MaxFileSize
	}
	return DefaultMaxFileSize
}

// LoadResult contains the decoded document plus metadata about the load
type LoadResult struct {
	// Document is the decoded document
	Document *Document
	// Version is the value of the document's openapi field
	Version string
	// SourcePath is the file path, URL, or source name the document came from
	SourcePath string
	// SourceFormat is the format the document actually parsed as
	SourceFormat SourceFormat
	// LoadTime is how long reading and decoding took
	LoadTime time.Duration
	// SourceSize is the document size in bytes
	SourceSize int64
	// Stats summarizes the document's shape
	Stats DocumentStats
	// Warnings lists non-fatal issues found while loading
	Warnings []string
}

// Load reads and decodes the document at the given file path or URL.
func (l *Loader) Load(path string) (*LoadResult, error) {
	start := time.Now()

	if isURL(path) {
		l.log().Debug("fetching document", "url", path)
		data, contentType, err := l.fetchURL(path)
		if err != nil {
			return nil, err
		}
		if hint := detectFormatFromURL(path, contentType); hint != SourceFormatUnknown {
			l.log().Debug("format hint", "url", path, "format", hint)
		}
		return l.loadData(data, path, start)
	}

	l.log().Debug("reading document", "path", path, "format_hint", detectFormatFromPath(path))

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: failed to stat file: %w", err)
	}
	if info.Size() > l.maxFileSize() {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        l.maxFileSize(),
			Actual:       info.Size(),
			Message:      path + " exceeds the maximum document size",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: failed to read file: %w", err)
	}
	return l.loadData(data, path, start)
}

// LoadReader reads and decodes a document from r. The result's
// SourcePath is "LoadReader" unless overridden via WithSourceName.
func (l *Loader) LoadReader(r io.Reader) (*LoadResult, error) {
	start := time.Now()

	limit := l.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("openapi: failed to read input: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      "input exceeds the maximum document size",
		}
	}
	return l.loadData(data, "LoadReader", start)
}

// LoadBytes decodes a document from raw bytes. The result's SourcePath
// is "LoadBytes" unless overridden via WithSourceName.
func (l *Loader) LoadBytes(data []byte) (*LoadResult, error) {
	start := time.Now()

	if int64(len(data)) > l.maxFileSize() {
		return nil, &docerrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        l.maxFileSize(),
			Actual:       int64(len(data)),
			Message:      "input exceeds the maximum document size",
		}
	}
	return l.loadData(data, "LoadBytes", start)
}

// loadData decodes document bytes into the typed model.
//
// Decoding runs in two passes. The first pass parses into a plain map
// to settle the format (strict JSON, then YAML) and check the document
// markers, so a clear error surfaces before any model decoding starts.
// The second pass decodes the same bytes into the typed Document.
func (l *Loader) loadData(data []byte, sourcePath string, start time.Time) (*LoadResult, error) {
	logger := l.log().With("path", sourcePath)

	raw, format, err := decodeRaw(data)
	if err != nil {
		return nil, &docerrors.ParseError{
			Path:    sourcePath,
			Message: "unable to parse document as JSON or YAML",
			Cause:   err,
		}
	}

	version, err := checkMarkers(raw, sourcePath, format)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if !strings.HasPrefix(version, "3.") {
		warning := fmt.Sprintf("document declares openapi version %q; oasdocs targets 3.x", version)
		logger.Warn("unsupported version declared", "version", version)
		warnings = append(warnings, warning)
	}

	doc := &Document{}
	switch format {
	case SourceFormatJSON:
		err = json.Unmarshal(data, doc)
	default:
		err = yaml.Unmarshal(data, doc)
	}
	if err != nil {
		return nil, &docerrors.ParseError{
			Path:    sourcePath,
			Format:  string(format),
			Message: "failed to decode document",
			Cause:   err,
		}
	}

	result := &LoadResult{
		Document:     doc,
		Version:      version,
		SourcePath:   sourcePath,
		SourceFormat: format,
		LoadTime:     time.Since(start),
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
		Warnings:     warnings,
	}

	logger.Info("document loaded",
		"format", format,
		"size", FormatBytes(result.SourceSize),
		"paths", result.Stats.PathCount,
		"operations", result.Stats.OperationCount,
		"duration", result.LoadTime,
	)
	return result, nil
}

// decodeRaw parses document bytes into a plain map and reports which
// format accepted them. JSON is tried first so that JSON documents are
// never misreported as YAML.
func decodeRaw(data []byte) (map[string]any, SourceFormat, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err == nil {
		return raw, SourceFormatJSON, nil
	}
	raw = nil
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, SourceFormatUnknown, err
	}
	if raw == nil {
		return nil, SourceFormatUnknown, fmt.Errorf("document is empty")
	}
	return raw, SourceFormatYAML, nil
}

// checkMarkers verifies the top-level fields that mark a usable OpenAPI
// document: a non-empty openapi version string and a paths object. It
// returns the declared version.
func checkMarkers(raw map[string]any, sourcePath string, format SourceFormat) (string, error) {
	version, ok := raw["openapi"].(string)
	if !ok || version == "" {
		return "", &docerrors.ParseError{
			Path:    sourcePath,
			Format:  string(format),
			Message: "missing or invalid 'openapi' version field",
		}
	}

	paths, ok := raw["paths"]
	if !ok {
		return "", &docerrors.ParseError{
			Path:    sourcePath,
			Format:  string(format),
			Message: "missing required 'paths' object",
		}
	}
	switch paths.(type) {
	case map[string]any, map[any]any:
		// ok, an empty paths object is valid
	default:
		return "", &docerrors.ParseError{
			Path:    sourcePath,
			Format:  string(format),
			Message: "'paths' must be an object",
		}
	}

	return version, nil
}
