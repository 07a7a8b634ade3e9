package views

import (
	"context"
	"fmt"
	"strings"

	"witnessconsole/internal/api"
	"witnessconsole/internal/notify"
)

type SearchPage struct {
	Query string          `json:"query"`
	Hits  []api.SearchHit `json:"hits"`
}

// Search runs a free-text or operator query (title:, tech:, header:)
func (s *Service) Search(ctx context.Context, n *notify.Notifier, query string) (*SearchPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		n.Warning("Enter a search query")
		return nil, &FormError{Field: "query", Message: "search query is required"}
	}

	hits, err := s.backend.Search(ctx, query)
	if err != nil {
		n.Error("Search failed")
		return nil, &ServiceError{Op: "search", Err: err}
	}
	if len(hits) == 0 {
		n.Info(fmt.Sprintf("No results for %q", query))
	}
	return &SearchPage{Query: query, Hits: hits}, nil
}
