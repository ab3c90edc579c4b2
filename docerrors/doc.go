// Package docerrors provides structured error types for the oasdocs library.
//
// Import path: github.com/oasdocs/oasdocs/docerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides three core error types:
//
//   - [ParseError]: JSON/YAML parsing failures and missing document markers
//   - [ResourceLimitError]: Resource exhaustion (size and depth limits)
//   - [ConfigError]: Invalid configuration, options, or snippet targets
//
// Unresolvable $ref pointers are deliberately NOT an error category: the
// resolve package reports them as nil results so that a dangling reference
// degrades a single feature instead of failing a whole document.
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	result, err := openapi.Load("api.yaml")
//	if errors.Is(err, docerrors.ErrParse) {
//	    // Handle parse error
//	}
//
// Extract error details with errors.As():
//
//	var parseErr *docerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    fmt.Printf("could not parse %s as %s\n", parseErr.Path, parseErr.Format)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method.
// This allows finding root causes through the standard error chain:
//
//	var parseErr *docerrors.ParseError
//	if errors.As(err, &parseErr) {
//	    if errors.Is(parseErr.Cause, os.ErrNotExist) {
//	        // The spec file doesn't exist
//	    }
//	}
package docerrors
