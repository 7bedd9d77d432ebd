package usecasecontract

import (
	"context"

	"github.com/habtesl/devblog/internal/domain/entity"
)

// CacheStats is a snapshot of the three content caches.
type CacheStats struct {
	PostsListSize int
	PostCacheSize int
	PostCacheMax  int
	SlugMapSize   int
	TTLSeconds    int
}

// IPostUseCase defines post-related read operations.
type IPostUseCase interface {
	// ListPosts returns one page of post summaries, sorted reverse
	// chronologically by raw date string, plus the pre-slice total.
	// Pagination bounds are validated by the caller.
	ListPosts(ctx context.Context, limit, offset int) ([]entity.PostSummary, int, error)

	// GetPost returns the full post for a slug. The slug is validated before
	// any storage access.
	GetPost(ctx context.Context, slug string) (entity.PostDetail, error)

	CacheStats() CacheStats
	ClearCaches()
}
