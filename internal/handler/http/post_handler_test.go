package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/habtesl/devblog/internal/handler/http"
	"github.com/habtesl/devblog/internal/handler/http/dto"
	"github.com/habtesl/devblog/internal/handler/http/mocks"
	"github.com/habtesl/devblog/internal/infrastructure/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubConfig struct{}

func (stubConfig) GetAppName() string             { return "devblog" }
func (stubConfig) GetEnvironment() string         { return "local" }
func (stubConfig) GetLogLevel() string            { return "error" }
func (stubConfig) GetPort() string                { return "8080" }
func (stubConfig) GetAWSRegion() string           { return "eu-west-1" }
func (stubConfig) GetS3Bucket() string            { return "" }
func (stubConfig) GetS3Prefix() string            { return "posts/" }
func (stubConfig) GetContentDir() string          { return "" }
func (stubConfig) IsUsingS3() bool                { return false }
func (stubConfig) GetCacheTTL() time.Duration     { return 300 * time.Second }
func (stubConfig) GetRateLimitPerMinute() int     { return 60 }
func (stubConfig) GetRateLimitPerHour() int       { return 1000 }
func (stubConfig) IsRateLimitEnabled() bool       { return false }
func (stubConfig) GetCORSOrigins() []string       { return []string{"*"} }

func setupRouter(mock *mocks.MockPostUsecase) *gin.Engine {
	r := gin.New()
	h := handler.NewPostHandler(mock, stubConfig{}, logger.NewStdLogger("error"))
	s := handler.NewSystemHandler(mock, stubConfig{})
	r.GET("/health", s.HealthHandler)
	r.GET("/posts", h.ListPostsHandler)
	r.GET("/post/:slug", h.GetPostHandler)
	r.GET("/cache/stats", s.CacheStatsHandler)
	r.POST("/cache/clear", s.CacheClearHandler)
	return r
}

func doRequest(r *gin.Engine, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())
	w := doRequest(r, "GET", "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.NotEmpty(t, body.Version)
}

func TestListPosts(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())
	w := doRequest(r, "GET", "/posts")

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.PostListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 20, body.Limit)
	assert.Equal(t, 0, body.Offset)
	require.Len(t, body.Posts, 2)
	assert.Equal(t, "newest-post", body.Posts[0].Slug)

	assert.Equal(t, "public, max-age=300", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("ETag"))
}

func TestListPostsPagination(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())
	w := doRequest(r, "GET", "/posts?limit=1&offset=1")

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.PostListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Posts, 1)
	assert.Equal(t, "older-post", body.Posts[0].Slug)
}

func TestListPostsInvalidPagination(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())

	for _, target := range []string{
		"/posts?limit=0",
		"/posts?limit=101",
		"/posts?limit=abc",
		"/posts?offset=-1",
		"/posts?offset=x",
	} {
		w := doRequest(r, "GET", target)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "target %s", target)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	}
}

func TestListPostsStorageFailure(t *testing.T) {
	mock := mocks.NewMockPostUsecase()
	mock.ShouldStorageFail = true
	r := setupRouter(mock)
	w := doRequest(r, "GET", "/posts")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "STORAGE_ERROR")
}

func TestListPostsUnclassifiedFailureIsOpaque500(t *testing.T) {
	mock := mocks.NewMockPostUsecase()
	mock.ShouldFailList = true
	r := setupRouter(mock)
	w := doRequest(r, "GET", "/posts")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
	assert.NotContains(t, w.Body.String(), "listing failed")
}

func TestGetPost(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())
	w := doRequest(r, "GET", "/post/newest-post")

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.PostDetailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "newest-post", body.Meta.Slug)
	assert.Contains(t, body.Content, "mock body")
	assert.NotEmpty(t, w.Header().Get("ETag"))
}

func TestGetPostNotFound(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())
	w := doRequest(r, "GET", "/post/does-not-exist")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "POST_NOT_FOUND")
}

func TestGetPostInvalidSlug(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())

	w := doRequest(r, "GET", "/post/bad%20slug")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")

	w = doRequest(r, "GET", "/post/"+strings.Repeat("a", 201))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCacheStats(t *testing.T) {
	r := setupRouter(mocks.NewMockPostUsecase())
	w := doRequest(r, "GET", "/cache/stats")

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.CacheStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 512, body.PostCacheMax)
	assert.Equal(t, 300, body.TTLSeconds)
}

func TestCacheClear(t *testing.T) {
	mock := mocks.NewMockPostUsecase()
	r := setupRouter(mock)
	w := doRequest(r, "POST", "/cache/clear")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All caches cleared")
	assert.Equal(t, 1, mock.ClearCalls)
}
