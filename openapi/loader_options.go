package openapi

import (
	"fmt"
	"io"
	"net/http"

	"github.com/oasdocs/oasdocs"
	"github.com/oasdocs/oasdocs/docerrors"
	"github.com/oasdocs/oasdocs/internal/options"
)

// Option is a function that configures a load operation
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Configuration options
	insecureSkipVerify bool
	userAgent          string
	httpClient         *http.Client
	logger             Logger

	// Resource limits (0 means use default)
	maxFileSize int64

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// LoadWithOptions loads an OpenAPI document using functional options.
// This combines input source selection and configuration in a single
// call.
//
// Example:
//
//	result, err := openapi.LoadWithOptions(
//	    openapi.WithFilePath("openapi.yaml"),
//	    openapi.WithMaxFileSize(1<<20),
//	)
func LoadWithOptions(opts ...Option) (*LoadResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, &docerrors.ConfigError{Message: "invalid load options", Cause: err}
	}

	l := &Loader{
		UserAgent:          cfg.userAgent,
		HTTPClient:         cfg.httpClient,
		InsecureSkipVerify: cfg.insecureSkipVerify,
		Logger:             cfg.logger,
		MaxFileSize:        cfg.maxFileSize,
	}

	// Route to the appropriate load method based on input source
	var result *LoadResult
	var loadErr error
	switch {
	case cfg.filePath != nil:
		result, loadErr = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		result, loadErr = l.LoadReader(cfg.reader)
	case cfg.bytes != nil:
		result, loadErr = l.LoadBytes(cfg.bytes)
	default:
		// Should never reach here due to validation in applyOptions
		return nil, fmt.Errorf("openapi: no input source specified")
	}

	if loadErr != nil {
		return result, loadErr
	}

	// Apply source name override if specified
	if result != nil && cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}

	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{
		userAgent: oasdocs.UserAgent(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// Validate exactly one input source is specified
	if err := options.ValidateSingleInputSource(
		"openapi: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"openapi: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithFilePath specifies a file path or URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("openapi: reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("openapi: bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests
// Default: "oasdocs/vX.Y.Z"
func WithUserAgent(ua string) Option {
	return func(cfg *loadConfig) error {
		cfg.userAgent = ua
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching URLs.
// When set, the client is used as-is for all HTTP requests and the
// InsecureSkipVerify option is ignored (configure TLS settings on your
// client's transport instead).
//
// If the client is nil, this option has no effect (default client is used).
//
// Example with custom timeout:
//
//	client := &http.Client{Timeout: 60 * time.Second}
//	result, err := openapi.LoadWithOptions(
//	    openapi.WithFilePath("https://example.com/api.yaml"),
//	    openapi.WithHTTPClient(client),
//	)
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *loadConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithInsecureSkipVerify disables TLS certificate verification for HTTPS loads
// Use with caution - only enable for testing or internal servers with self-signed certs
func WithInsecureSkipVerify(enabled bool) Option {
	return func(cfg *loadConfig) error {
		cfg.insecureSkipVerify = enabled
		return nil
	}
}

// WithLogger sets a structured logger for diagnostic output during loading.
// By default, no logging is performed (nil logger).
//
// The logger interface is compatible with log/slog, zap, and zerolog.
// Use NewSlogAdapter to wrap a *slog.Logger.
func WithLogger(l Logger) Option {
	return func(cfg *loadConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize sets the maximum document size in bytes.
// This prevents resource exhaustion from loading arbitrarily large files.
// A value of 0 means use the default (10MB).
// Returns an error if size is negative.
func WithMaxFileSize(size int64) Option {
	return func(cfg *loadConfig) error {
		if size < 0 {
			return fmt.Errorf("openapi: maxFileSize cannot be negative")
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithSourceName specifies a meaningful name for the source document,
// reported as the result's SourcePath. This is particularly useful when
// loading from bytes or a reader, where the default names ("LoadBytes",
// "LoadReader") are not descriptive.
//
// Example:
//
//	result, err := openapi.LoadWithOptions(
//	    openapi.WithBytes(data),
//	    openapi.WithSourceName("users-api"),
//	)
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		if name == "" {
			return fmt.Errorf("openapi: source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}
