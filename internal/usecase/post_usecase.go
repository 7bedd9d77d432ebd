package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/habtesl/devblog/internal/domain/contract"
	"github.com/habtesl/devblog/internal/domain/entity"
	"github.com/habtesl/devblog/internal/infrastructure/cache"
	"github.com/habtesl/devblog/internal/infrastructure/markdown"
	"github.com/habtesl/devblog/internal/infrastructure/metrics"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// Cache sizing. The listing and slug map are single artifacts; individual
// posts get a bounded cache of their own.
const (
	PostsListCacheSize     = 1
	SlugMapCacheSize       = 1
	MaxIndividualPostCache = 512
)

const postsListKey = "posts_list"

// PostUsecase resolves post content through the caches, falling back to the
// content source on miss. Population is not single-flight: concurrent misses
// for the same key may each load from storage and overwrite the cache with
// equivalent results, which is harmless for read-only content.
type PostUsecase struct {
	source    contract.IContentSource
	listCache *cache.Cache[string, []entity.PostSummary]
	postCache *cache.Cache[string, entity.PostDetail]
	slugMap   *cache.Cache[string, map[string]string]
	logger    usecasecontract.IAppLogger
}

// NewPostUsecase creates a new instance of PostUsecase. slugMap is only
// populated by the S3 source but is owned here so cache stats and clears
// cover it.
func NewPostUsecase(
	source contract.IContentSource,
	listCache *cache.Cache[string, []entity.PostSummary],
	postCache *cache.Cache[string, entity.PostDetail],
	slugMap *cache.Cache[string, map[string]string],
	logger usecasecontract.IAppLogger,
) *PostUsecase {
	return &PostUsecase{
		source:    source,
		listCache: listCache,
		postCache: postCache,
		slugMap:   slugMap,
		logger:    logger,
	}
}

var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// ListPosts returns one page of post summaries plus the pre-slice total.
// On cache miss the full listing is rebuilt: every slug is loaded and parsed,
// bad posts are skipped with a warning, and the result is sorted by raw date
// string descending before being cached.
func (uc *PostUsecase) ListPosts(ctx context.Context, limit, offset int) ([]entity.PostSummary, int, error) {
	all, ok := uc.listCache.Get(postsListKey)
	if ok {
		metrics.CacheHits.WithLabelValues("posts_list").Inc()
		uc.logger.Debugf("cache hit for posts list")
	} else {
		metrics.CacheMisses.WithLabelValues("posts_list").Inc()
		uc.logger.Debugf("cache miss for posts list, loading from storage")

		slugs, err := uc.source.ListSlugs(ctx)
		if err != nil {
			return nil, 0, err
		}

		all = make([]entity.PostSummary, 0, len(slugs))
		for _, slug := range slugs {
			summary, err := uc.loadSummary(ctx, slug)
			if err != nil {
				var storageErr *entity.StorageError
				if errors.As(err, &storageErr) {
					return nil, 0, err
				}
				// One bad post must not fail the whole listing.
				uc.logger.Warningf("skipping post %s due to error: %v", slug, err)
				continue
			}
			all = append(all, summary)
		}

		// Reverse chronological by raw date string. Dates are compared as
		// strings, not parsed: "2024-1-5" sorts differently from
		// "2024-01-05". Known limitation, inherited from the content format.
		sort.SliceStable(all, func(i, j int) bool { return all[i].Date > all[j].Date })

		uc.listCache.Set(postsListKey, all)
		uc.logger.Debugf("cached posts list with %d items", len(all))
	}

	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// GetPost returns the full post for slug, from cache or storage. The slug is
// validated before any storage access.
func (uc *PostUsecase) GetPost(ctx context.Context, slug string) (entity.PostDetail, error) {
	if err := entity.ValidateSlug(slug); err != nil {
		return entity.PostDetail{}, err
	}

	if detail, ok := uc.postCache.Get(slug); ok {
		metrics.CacheHits.WithLabelValues("post").Inc()
		uc.logger.Debugf("cache hit for post: %s", slug)
		return detail, nil
	}
	metrics.CacheMisses.WithLabelValues("post").Inc()

	raw, err := uc.source.Load(ctx, slug)
	if err != nil {
		return entity.PostDetail{}, err
	}

	fm, body, err := markdown.Parse(raw)
	if err != nil {
		return entity.PostDetail{}, &entity.ParseError{Slug: slug, Err: err}
	}

	detail := entity.PostDetail{Meta: buildMeta(slug, fm), Content: body}
	uc.postCache.Set(slug, detail)
	uc.logger.Debugf("cached post: %s", slug)
	return detail, nil
}

// CacheStats returns a snapshot of all three caches.
func (uc *PostUsecase) CacheStats() usecasecontract.CacheStats {
	return usecasecontract.CacheStats{
		PostsListSize: uc.listCache.Len(),
		PostCacheSize: uc.postCache.Len(),
		PostCacheMax:  uc.postCache.Capacity(),
		SlugMapSize:   uc.slugMap.Len(),
		TTLSeconds:    int(uc.postCache.TTL().Seconds()),
	}
}

// ClearCaches empties all three caches, forcing a storage reload on the next
// request.
func (uc *PostUsecase) ClearCaches() {
	uc.listCache.Clear()
	uc.postCache.Clear()
	uc.slugMap.Clear()
	uc.logger.Infof("all caches cleared")
}

func (uc *PostUsecase) loadSummary(ctx context.Context, slug string) (entity.PostSummary, error) {
	raw, err := uc.source.Load(ctx, slug)
	if err != nil {
		return entity.PostSummary{}, err
	}
	fm, _, err := markdown.Parse(raw)
	if err != nil {
		return entity.PostSummary{}, &entity.ParseError{Slug: slug, Err: err}
	}
	return buildMeta(slug, fm), nil
}

func buildMeta(slug string, fm markdown.Frontmatter) entity.PostMeta {
	title := fm.Title
	if title == "" {
		title = slug
	}
	tags := fm.Tags
	if tags == nil {
		tags = []string{}
	}
	return entity.PostMeta{
		Slug:        slug,
		Title:       title,
		Date:        fm.Date,
		Description: fm.Description,
		Tags:        tags,
	}
}
