package driving

import (
	"context"

	"github.com/alicerunsonfedora/mcmaps/internal/core/domain"
)

// SearchService answers free-text queries against an open document.
//
// Search returns coordinate, pin, structure and biome matches in one
// bundle. A blank query gives an empty bundle and no error.
type SearchService interface {
	Search(ctx context.Context, query string, doc *domain.Document, opts domain.SearchOptions) (domain.SearchResult, error)
}
