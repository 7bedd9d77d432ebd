package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habtesl/devblog/internal/domain/entity"
	handler "github.com/habtesl/devblog/internal/handler/http"
	"github.com/habtesl/devblog/internal/handler/http/dto"
	"github.com/habtesl/devblog/internal/infrastructure/cache"
	"github.com/habtesl/devblog/internal/infrastructure/logger"
	"github.com/habtesl/devblog/internal/infrastructure/ratelimit"
	"github.com/habtesl/devblog/internal/infrastructure/storage"
	"github.com/habtesl/devblog/internal/usecase"
)

// e2eConfig enables rate limiting, unlike the stub used by handler tests.
type e2eConfig struct{ stubConfig }

func (e2eConfig) IsRateLimitEnabled() bool { return true }
func (e2eConfig) GetEnvironment() string   { return "dev" }

// setupApp wires the real router against Markdown fixtures on disk.
func setupApp(t *testing.T, perMinute int) *gin.Engine {
	t.Helper()

	dir := t.TempDir()
	first := "---\ntitle: First Post\ndate: \"2024-01-15\"\ntags:\n  - go\n---\n# First\n\nfirst body\n"
	second := "---\ntitle: Second Post\ndate: \"2024-01-10\"\n---\n# Second\n\nsecond body\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "first-post.md"), []byte(first), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "second-post.md"), []byte(second), 0o644))

	appLogger := logger.NewStdLogger("error")
	listCache, err := cache.New[string, []entity.PostSummary](usecase.PostsListCacheSize, time.Minute)
	require.NoError(t, err)
	postCache, err := cache.New[string, entity.PostDetail](usecase.MaxIndividualPostCache, time.Minute)
	require.NoError(t, err)
	slugMap, err := cache.New[string, map[string]string](usecase.SlugMapCacheSize, time.Minute)
	require.NoError(t, err)

	source := storage.NewLocalSource(dir, appLogger)
	postUsecase := usecase.NewPostUsecase(source, listCache, postCache, slugMap, appLogger)
	limiter := ratelimit.NewLimiter(perMinute, 1000)

	engine := gin.New()
	handler.NewRouter(postUsecase, limiter, e2eConfig{}, appLogger).SetupRoutes(engine)
	return engine
}

func e2eGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", target, nil)
	req.RemoteAddr = "192.0.2.50:40000"
	r.ServeHTTP(w, req)
	return w
}

func TestEndToEndScenario(t *testing.T) {
	r := setupApp(t, 3)

	// Listing comes back newest first with the pre-slice total.
	w := e2eGet(r, "/posts")
	require.Equal(t, http.StatusOK, w.Code)
	var listing dto.PostListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Equal(t, 2, listing.Total)
	require.Len(t, listing.Posts, 2)
	assert.Equal(t, "first-post", listing.Posts[0].Slug)
	assert.Equal(t, "second-post", listing.Posts[1].Slug)
	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit-Minute"))

	// Single post returns matching content.
	w = e2eGet(r, "/post/first-post")
	require.Equal(t, http.StatusOK, w.Code)
	var detail dto.PostDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, "First Post", detail.Meta.Title)
	assert.Contains(t, detail.Content, "first body")

	// Unknown slug is a 404.
	w = e2eGet(r, "/post/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// The 4th request within the minute is rate limited.
	w = e2eGet(r, "/posts")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
}

func TestEndToEndCacheLifecycle(t *testing.T) {
	r := setupApp(t, 100)

	w := e2eGet(r, "/posts")
	require.Equal(t, http.StatusOK, w.Code)
	w = e2eGet(r, "/post/first-post")
	require.Equal(t, http.StatusOK, w.Code)

	w = e2eGet(r, "/cache/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.CacheStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.PostsListSize)
	assert.Equal(t, 1, stats.PostCacheSize)

	req, _ := http.NewRequest("POST", "/cache/clear", nil)
	req.RemoteAddr = "192.0.2.50:40000"
	wc := httptest.NewRecorder()
	r.ServeHTTP(wc, req)
	require.Equal(t, http.StatusOK, wc.Code)

	w = e2eGet(r, "/cache/stats")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.PostsListSize)
	assert.Equal(t, 0, stats.PostCacheSize)
}

func TestEndToEndHealthNeverLimited(t *testing.T) {
	r := setupApp(t, 1)

	for i := 0; i < 5; i++ {
		w := e2eGet(r, "/health")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
