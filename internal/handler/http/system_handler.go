package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habtesl/devblog/internal/handler/http/dto"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

// SystemHandler serves the non-content endpoints: service info, health and
// cache introspection.
type SystemHandler struct {
	postUsecase usecasecontract.IPostUseCase
	config      usecasecontract.IConfigProvider
}

func NewSystemHandler(postUsecase usecasecontract.IPostUseCase, config usecasecontract.IConfigProvider) *SystemHandler {
	return &SystemHandler{
		postUsecase: postUsecase,
		config:      config,
	}
}

// RootHandler serves GET / with service metadata.
func (h *SystemHandler) RootHandler(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.ServiceInfoResponse{
		Service:   h.config.GetAppName(),
		Version:   Version,
		Endpoints: []string{"/health", "/posts", "/post/{slug}", "/cache/stats", "/metrics"},
	})
}

// HealthHandler serves GET /health.
func (h *SystemHandler) HealthHandler(c *gin.Context) {
	SuccessHandler(c, http.StatusOK, dto.HealthResponse{Status: "ok", Version: Version})
}

// CacheStatsHandler serves GET /cache/stats.
func (h *SystemHandler) CacheStatsHandler(c *gin.Context) {
	stats := h.postUsecase.CacheStats()
	SuccessHandler(c, http.StatusOK, dto.CacheStatsResponse{
		PostsListSize: stats.PostsListSize,
		PostCacheSize: stats.PostCacheSize,
		PostCacheMax:  stats.PostCacheMax,
		SlugMapSize:   stats.SlugMapSize,
		TTLSeconds:    stats.TTLSeconds,
	})
}

// CacheClearHandler serves POST /cache/clear, forcing a refresh from storage.
func (h *SystemHandler) CacheClearHandler(c *gin.Context) {
	h.postUsecase.ClearCaches()
	MessageHandler(c, http.StatusOK, "All caches cleared")
}
