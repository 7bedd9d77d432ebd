package entity

import (
	"fmt"
	"regexp"
)

// MaxSlugLength caps slug size before any storage lookup happens.
const MaxSlugLength = 200

// Slug validation pattern: alphanumeric, hyphens, underscores only.
var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// PostMeta holds the metadata of a blog post, extracted from its front matter.
type PostMeta struct {
	Slug        string
	Title       string
	Date        string
	Description *string
	Tags        []string
}

// PostSummary is the listing view of a post; it carries the same fields as PostMeta.
type PostSummary = PostMeta

// PostDetail is a full blog post: metadata plus the Markdown body.
type PostDetail struct {
	Meta    PostMeta
	Content string
}

// ValidateSlug checks slug format. Rejecting anything outside the allowed
// character set rules out path traversal structurally, so callers never need
// to sanitize storage paths.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("%w: slug cannot be empty", ErrInvalidSlug)
	}
	if len(slug) > MaxSlugLength {
		return fmt.Errorf("%w: slug too long (max %d characters)", ErrInvalidSlug, MaxSlugLength)
	}
	if !slugPattern.MatchString(slug) {
		return fmt.Errorf("%w: use only alphanumeric characters, hyphens, and underscores", ErrInvalidSlug)
	}
	return nil
}
