// Package oasdocs turns OpenAPI specification documents into interactive
// API documentation data.
//
// oasdocs parses an OpenAPI 3.x document (JSON or YAML), resolves internal
// schema references, synthesizes example payloads, extracts an ordered
// endpoint outline grouped by tag, and generates runnable request snippets
// in several target languages. It produces plain data structures; rendering
// them is left to whatever surface sits on top (the bundled CLI, the bundled
// MCP server, or your own UI).
//
// # Overview
//
// The library consists of five engine packages:
//
//   - openapi: Load and model OpenAPI specification documents
//   - resolve: Resolve internal $ref pointers to their target nodes
//   - example: Synthesize example values from schema nodes
//   - outline: Extract endpoints and group them by tag
//   - snippet: Generate request code snippets (curl, JavaScript, Python, Go)
//
// Two presentation collaborators are included:
//
//   - cmd/oasdocs: A command-line interface over the engine
//   - internal/mcpserver: An MCP stdio server exposing the engine as tools
//
// The engine targets documents following the OAS 3.0.x and 3.1.x shape:
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/oasdocs/oasdocs
//
// # Quick Start
//
// Load a specification and walk its endpoints:
//
//	import (
//		"github.com/oasdocs/oasdocs/openapi"
//		"github.com/oasdocs/oasdocs/outline"
//	)
//
//	result, err := openapi.LoadWithOptions(openapi.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc := result.Document
//
//	for _, ep := range outline.Endpoints(doc) {
//		fmt.Printf("%s %s (%s)\n", ep.Method, ep.Path, ep.ID)
//	}
//
// Synthesize an example for a component schema:
//
//	import "github.com/oasdocs/oasdocs/example"
//
//	pet := doc.SchemaByName("Pet")
//	value := example.Generate(doc, pet)
//	data, _ := json.MarshalIndent(value, "", "  ")
//	fmt.Println(string(data))
//
// Generate a curl snippet for the first endpoint:
//
//	import "github.com/oasdocs/oasdocs/snippet"
//
//	eps := outline.Endpoints(doc)
//	code, err := snippet.Generate(snippet.TargetCurl, doc, eps[0], snippet.Options{
//		BaseURL: "https://api.example.com",
//	})
//
// # The openapi Package
//
// The openapi package loads specification documents from bytes, readers,
// files, or HTTP(S) URLs. Parsing tries strict JSON first and falls back to
// YAML, so both formats work from a single entry point. The loaded Document
// preserves path and schema property declaration order, which downstream
// packages rely on for deterministic output.
//
// Key features:
//   - Multi-format support (JSON fast path, YAML fallback)
//   - Declaration-order preservation for paths and schema properties
//   - Functional options (logger, HTTP client, size limits)
//   - Document statistics computed at load time
//
// Example:
//
//	result, err := openapi.LoadWithOptions(
//		openapi.WithFilePath("api.yaml"),
//		openapi.WithLogger(openapi.NewSlogAdapter(slog.Default())),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s %s: %d operations\n",
//		result.Document.Info.Title, result.Document.Info.Version,
//		result.Stats.OperationCount)
//
// # The resolve Package
//
// The resolve package follows internal "#/" references to the nodes they
// target. Resolution is pure and forgiving: a node without a reference
// resolves to itself, a reference that cannot be satisfied resolves to nil,
// and reference chains and cycles terminate rather than recurse forever.
// Nothing in this package returns an error; absence is a value.
//
// Example:
//
//	schema := resolve.Schema(doc, mediaType.Schema)
//	if schema == nil {
//		// dangling reference: skip this schema
//	}
//
// # The example Package
//
// The example package produces a representative value for a schema node:
// explicit examples win, then defaults, then a deterministic per-type rule.
// Objects come back as ordered maps so marshaled output lists properties in
// declaration order. Cyclic schemas yield nil at the point of re-entry
// instead of recursing.
//
// # The outline Package
//
// The outline package flattens the document's paths into endpoint records
// (one per operation, in path declaration order and a fixed verb order) and
// groups them by tag with first-encounter ordering. Operations without tags
// land in the "Untagged" group.
//
// # The snippet Package
//
// The snippet package renders an endpoint as a runnable request in one of
// four targets: curl, JavaScript (fetch), Python (requests), and Go
// (net/http). All targets share one request-building step, so path
// substitution, query encoding, headers, and example bodies are identical
// across languages.
//
// # Error Handling
//
// The packages follow consistent error handling patterns:
//
//   - Parse failures: *docerrors.ParseError (matches docerrors.ErrParse)
//   - Oversized input: *docerrors.ResourceLimitError
//   - Invalid options or snippet targets: *docerrors.ConfigError
//   - Unresolvable references: nil results, never errors
//
// Dangling references are a fact of life in real-world specifications, so
// the engine treats them as absent data rather than failures: at worst a
// feature renders as empty.
//
// # Concurrency
//
// A loaded Document is immutable and safe for concurrent readers. The
// engine packages are pure functions over a Document snapshot and hold no
// internal state. Reloading produces a new Document; derived views are
// recomputed from whichever snapshot the caller holds.
//
// # Command-Line Interface
//
// In addition to the library packages, oasdocs provides a command-line
// interface:
//
//	# Summarize a spec
//	oasdocs info openapi.yaml
//
//	# List endpoints grouped by tag
//	oasdocs endpoints --by-tag openapi.yaml
//
//	# Synthesize an example for a component schema
//	oasdocs example --schema Pet openapi.yaml
//
//	# Generate a Python snippet for an endpoint
//	oasdocs snippet --target python --endpoint get-pets-petId openapi.yaml
//
//	# Serve the engine over MCP stdio
//	oasdocs mcp
//
// Install the CLI:
//
//	go install github.com/oasdocs/oasdocs/cmd/oasdocs@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/oasdocs/oasdocs
//   - OpenAPI Specification: https://spec.openapis.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/oasdocs/oasdocs
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package oasdocs
