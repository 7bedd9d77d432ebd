package contract

import "context"

// IContentSource abstracts where raw Markdown posts come from. Implementations
// exist for a local directory (development) and an S3 bucket (production).
//
// Load returns entity.ErrPostNotFound for unknown slugs and *entity.StorageError
// for backend failures.
type IContentSource interface {
	ListSlugs(ctx context.Context) ([]string, error)
	Load(ctx context.Context, slug string) (string, error)
}
