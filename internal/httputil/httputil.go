// Package httputil provides HTTP-related validation utilities and constants.
package httputil

import (
	"mime"
	"sort"
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength    = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode       = 100 // Minimum valid HTTP status code
	MaxStatusCode       = 599 // Maximum valid HTTP status code
	WildcardChar        = 'X' // Wildcard character used in status code patterns (e.g., "2XX")
	minWildcardBoundary = '1'
	maxWildcardBoundary = '5'
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// MediaTypeJSON is the canonical JSON media type.
const MediaTypeJSON = "application/json"

// CanonicalMethods lists the supported HTTP methods in the fixed order
// used when walking a path item's operations. Endpoint listings and
// endpoint identifiers depend on this order being stable.
var CanonicalMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodPatch,
	MethodDelete,
	MethodOptions,
	MethodHead,
}

// AllowsRequestBody reports whether the given method conventionally
// carries a request body. Methods are expected in lowercase.
func AllowsRequestBody(method string) bool {
	switch method {
	case MethodPost, MethodPut, MethodPatch:
		return true
	default:
		return false
	}
}

// ValidateStatusCode checks if a status code string is valid according to OpenAPI spec.
// Valid values are:
//   - "default" for default response
//   - Extension fields starting with "x-"
//   - Wildcard patterns: 1XX, 2XX, 3XX, 4XX, 5XX
//   - Numeric codes: 100-599
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}

	if strings.HasPrefix(code, "x-") {
		return true
	}

	if len(code) == StatusCodeLength {
		// Check for wildcard patterns (e.g., "2XX", "4XX")
		if code[1] == WildcardChar && code[2] == WildcardChar {
			firstChar := code[0]
			if firstChar >= minWildcardBoundary && firstChar <= maxWildcardBoundary {
				return true
			}
		}

		// Check for numeric codes
		if code[0] >= '0' && code[0] <= '9' &&
			code[1] >= '0' && code[1] <= '9' &&
			code[2] >= '0' && code[2] <= '9' {
			statusCode, err := strconv.Atoi(code)
			if err == nil && statusCode >= MinStatusCode && statusCode <= MaxStatusCode {
				return true
			}
		}
	}

	return false
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Handles wildcards (*/* and type/*) and prevents invalid combinations (*/subtype).
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}

	if strings.HasSuffix(mediaType, "/*") {
		// Check format: type/* (e.g., application/*)
		parts := strings.Split(mediaType, "/")
		if len(parts) == 2 && parts[0] != "" && parts[0] != "*" {
			return true
		}
		return false
	}

	// Use standard MIME type parser for regular types
	_, _, err := mime.ParseMediaType(mediaType)
	return err == nil
}

// IsJSONMediaType reports whether a media type carries a JSON payload.
// Matches application/json and any type with a +json structured suffix
// (e.g., application/vnd.api+json), ignoring parameters like charset.
func IsJSONMediaType(mediaType string) bool {
	parsed, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	return parsed == "application/json" || strings.HasSuffix(parsed, "+json")
}

// PickJSONContent returns the JSON entry of a content map keyed by media
// type: the exact application/json key when present, otherwise the first
// JSON-compatible key in sorted order. The boolean is false when the map
// holds no JSON entry.
func PickJSONContent[T any](content map[string]T) (T, bool) {
	if v, ok := content[MediaTypeJSON]; ok {
		return v, true
	}
	keys := make([]string, 0, len(content))
	for key := range content {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if IsJSONMediaType(key) {
			return content[key], true
		}
	}
	var zero T
	return zero, false
}
