package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrPostNotFound is returned when a slug has no backing post.
	ErrPostNotFound = errors.New("post not found")

	// ErrInvalidSlug is returned for slugs failing format validation.
	ErrInvalidSlug = errors.New("invalid slug format")
)

// StorageError wraps a backend failure (filesystem or S3). Handlers map it to
// 503; it is never retried here.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ParseError reports malformed front matter in a post.
type ParseError struct {
	Slug string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid front matter in post %s: %v", e.Slug, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
