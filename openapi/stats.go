package openapi

import "github.com/oasdocs/oasdocs/internal/httputil"

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of component schemas
	TagCount       int // Number of top-level tag declarations
}

// GetDocumentStats returns statistics for a loaded document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = doc.Paths.Len()
	for _, item := range doc.Paths.All() {
		stats.OperationCount += countPathItemOperations(item)
	}
	if doc.Components != nil {
		stats.SchemaCount = doc.Components.Schemas.Len()
	}
	stats.TagCount = len(doc.Tags)

	return stats
}

// countPathItemOperations counts operations in a single PathItem
func countPathItemOperations(item *PathItem) int {
	count := 0
	for _, method := range httputil.CanonicalMethods {
		if item.Operation(method) != nil {
			count++
		}
	}
	return count
}
