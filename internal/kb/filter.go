package kb

import (
	"strings"

	"github.com/wrenlabs/knowhub/internal/api"
)

// Filter returns the ordered subsequence whose name or description contains
// the query, case-insensitively. An empty or whitespace-only query returns
// the input slice unchanged.
func Filter(items []api.KnowledgeBase, query string) []api.KnowledgeBase {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	filtered := make([]api.KnowledgeBase, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) {
			filtered = append(filtered, item)
			continue
		}
		if item.Description != "" && strings.Contains(strings.ToLower(item.Description), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
