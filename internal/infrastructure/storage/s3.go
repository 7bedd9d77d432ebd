package storage

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/habtesl/devblog/internal/domain/contract"
	"github.com/habtesl/devblog/internal/domain/entity"
	"github.com/habtesl/devblog/internal/infrastructure/cache"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

const slugMapKey = "slug_map"

// S3API is the subset of the S3 client used by S3Source. Narrowing the
// dependency keeps the source testable without AWS credentials.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source serves posts from Markdown objects in an S3 bucket. The
// slug-to-key mapping is cached in a single-entry TTL cache and rebuilt
// wholesale when it expires.
type S3Source struct {
	client  S3API
	bucket  string
	prefix  string
	slugMap *cache.Cache[string, map[string]string]
	logger  usecasecontract.IAppLogger
}

// NewS3Client builds an S3 client from the default AWS credential chain.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// NewS3Source creates a content source reading from bucket under prefix.
// slugMap is the shared single-entry cache for the slug-to-key mapping.
func NewS3Source(client S3API, bucket, prefix string, slugMap *cache.Cache[string, map[string]string], logger usecasecontract.IAppLogger) *S3Source {
	return &S3Source{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		slugMap: slugMap,
		logger:  logger,
	}
}

var _ contract.IContentSource = (*S3Source)(nil)

// ListSlugs returns the slugs of all Markdown objects under the prefix.
func (s *S3Source) ListSlugs(ctx context.Context) ([]string, error) {
	m, err := s.slugToKeyMap(ctx)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(m))
	for slug := range m {
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// Load fetches the raw Markdown for slug via the slug-to-key map.
func (s *S3Source) Load(ctx context.Context, slug string) (string, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return "", err
	}

	m, err := s.slugToKeyMap(ctx)
	if err != nil {
		return "", err
	}
	key, ok := m[slug]
	if !ok {
		s.logger.Debugf("post not found in S3: %s", slug)
		return "", entity.ErrPostNotFound
	}

	s.logger.Debugf("fetching S3 object: s3://%s/%s", s.bucket, key)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			s.logger.Warningf("S3 object not found: %s", key)
			return "", entity.ErrPostNotFound
		}
		return "", &entity.StorageError{Op: "fetch S3 object " + key, Err: err}
	}
	defer out.Body.Close()

	body, err := io.ReadAll(out.Body)
	if err != nil {
		return "", &entity.StorageError{Op: "read S3 object " + key, Err: err}
	}
	return string(body), nil
}

// slugToKeyMap returns the cached slug-to-key mapping, rebuilding it from a
// full bucket listing on expiry.
func (s *S3Source) slugToKeyMap(ctx context.Context) (map[string]string, error) {
	if m, ok := s.slugMap.Get(slugMapKey); ok {
		return m, nil
	}

	keys, err := s.listMarkdownKeys(ctx)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(keys))
	for _, key := range keys {
		// "posts/my-post.md" -> "my-post"
		filename := key[strings.LastIndex(key, "/")+1:]
		slug := filename[:strings.LastIndex(filename, ".")]
		if err := entity.ValidateSlug(slug); err != nil {
			s.logger.Warningf("skipping S3 key with invalid slug format: %s", key)
			continue
		}
		m[slug] = key
	}

	s.slugMap.Set(slugMapKey, m)
	s.logger.Debugf("built slug-to-key map with %d entries", len(m))
	return m, nil
}

func (s *S3Source) listMarkdownKeys(ctx context.Context) ([]string, error) {
	if s.bucket == "" {
		s.logger.Warningf("S3 bucket not configured")
		return []string{}, nil
	}

	s.logger.Debugf("listing S3 keys in bucket=%s, prefix=%s", s.bucket, s.prefix)
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, &entity.StorageError{Op: "list S3 objects", Err: err}
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(strings.ToLower(key), ".md") {
				keys = append(keys, key)
			}
		}
	}

	s.logger.Debugf("found %d Markdown files in S3", len(keys))
	return keys, nil
}
