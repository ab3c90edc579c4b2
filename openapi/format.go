package openapi

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/oasdocs/oasdocs"
	"github.com/oasdocs/oasdocs/docerrors"
)

// SourceFormat identifies the serialization format a document was
// loaded from.
type SourceFormat string

const (
	// SourceFormatJSON indicates the document parsed as strict JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML indicates the document parsed as YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatUnknown indicates the format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// FormatBytes formats a byte count into a human-readable string using binary units (KiB, MiB, etc.)
func FormatBytes(size int64) string {
	if size < 0 {
		return fmt.Sprintf("%d B", size)
	}

	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}

	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 5; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}

// detectFormatFromPath guesses the source format from a file extension.
// The guess only feeds logging; the actual format is decided by which
// parser accepts the bytes.
func detectFormatFromPath(path string) SourceFormat {
	switch filepath.Ext(path) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent guesses the format from the content bytes.
// JSON documents start with '{' or '[' after whitespace.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL guesses the format from a URL path and the
// Content-Type header returned by the server.
func detectFormatFromURL(urlStr string, contentType string) SourceFormat {
	parsedURL, err := url.Parse(urlStr)
	if err == nil && parsedURL.Path != "" {
		format := detectFormatFromPath(parsedURL.Path)
		if format != SourceFormatUnknown {
			return format
		}
	}

	if contentType != "" {
		contentType = strings.ToLower(contentType)
		if idx := strings.Index(contentType, ";"); idx != -1 {
			contentType = contentType[:idx]
		}
		contentType = strings.TrimSpace(contentType)

		switch contentType {
		case "application/json":
			return SourceFormatJSON
		case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
			return SourceFormatYAML
		}
	}

	return SourceFormatUnknown
}

// isURL determines if the given path is a URL (http:// or https://)
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL fetches content from a URL and returns the bytes and Content-Type header
func (l *Loader) fetchURL(urlStr string) ([]byte, string, error) {
	var client *http.Client
	if l.HTTPClient != nil {
		client = l.HTTPClient
		if l.InsecureSkipVerify {
			l.log().Warn("InsecureSkipVerify ignored when HTTPClient provided; configure TLS on your client's transport")
		}
	} else if l.InsecureSkipVerify {
		transport := &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true, //nolint:gosec // User explicitly requested insecure mode
				MinVersion:         tls.VersionTLS12,
			},
		}
		client = &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		}
	} else {
		client = &http.Client{
			Timeout: 30 * time.Second,
		}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", fmt.Errorf("openapi: failed to create request: %w", err)
	}

	userAgent := l.UserAgent
	if userAgent == "" {
		userAgent = oasdocs.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req) //nolint:gosec // G704 - URL is user-provided input (CLI loader)
	if err != nil {
		return nil, "", fmt.Errorf("openapi: failed to fetch URL: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("openapi: HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	// Read at most one byte past the limit so oversized responses are
	// detected without buffering them whole.
	limit := l.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("openapi: failed to read response body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, "", &docerrors.ResourceLimitError{
			ResourceType: "response_size",
			Limit:        limit,
			Actual:       max(resp.ContentLength, 0),
			Message:      "response from " + urlStr + " exceeds the maximum document size",
		}
	}

	contentType := resp.Header.Get("Content-Type")
	return data, contentType, nil
}
