package storage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/habtesl/devblog/internal/domain/contract"
	"github.com/habtesl/devblog/internal/domain/entity"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// LocalSource serves posts from Markdown files in a local directory. Intended
// for development runs where an S3 bucket is not available.
type LocalSource struct {
	dir    string
	logger usecasecontract.IAppLogger
}

// NewLocalSource creates a content source reading from dir.
func NewLocalSource(dir string, logger usecasecontract.IAppLogger) *LocalSource {
	return &LocalSource{dir: dir, logger: logger}
}

var _ contract.IContentSource = (*LocalSource)(nil)

// ListSlugs returns the slugs of all .md files in the directory. A missing
// directory yields an empty list rather than an error, so a fresh checkout
// serves an empty blog.
func (s *LocalSource) ListSlugs(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.dir)
	if err != nil || !info.IsDir() {
		s.logger.Warningf("content directory does not exist: %s", s.dir)
		return []string{}, nil
	}

	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &entity.StorageError{Op: "list content directory", Err: err}
	}

	slugs := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || !strings.HasSuffix(strings.ToLower(name), ".md") {
			continue
		}
		slug := strings.TrimSuffix(name, filepath.Ext(name))
		if err := entity.ValidateSlug(slug); err != nil {
			s.logger.Warningf("skipping file with invalid slug format: %s", name)
			continue
		}
		slugs = append(slugs, slug)
	}

	s.logger.Debugf("found %d posts in local directory", len(slugs))
	return slugs, nil
}

// Load reads the raw Markdown for slug. The slug is validated before touching
// the filesystem, and the resolved path must stay inside the content
// directory.
func (s *LocalSource) Load(ctx context.Context, slug string) (string, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, slug+".md")
	absDir, err := filepath.Abs(s.dir)
	if err == nil {
		absPath, pathErr := filepath.Abs(path)
		if pathErr != nil || !strings.HasPrefix(absPath, absDir+string(os.PathSeparator)) {
			s.logger.Errorf("path traversal attempt detected: %s", slug)
			return "", entity.ErrInvalidSlug
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debugf("post not found locally: %s", slug)
			return "", entity.ErrPostNotFound
		}
		return "", &entity.StorageError{Op: "read post " + slug, Err: err}
	}

	s.logger.Debugf("loaded post from local file: %s", path)
	return string(data), nil
}
