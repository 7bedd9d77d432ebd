package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habtesl/devblog/internal/handler/http/middleware"
	"github.com/habtesl/devblog/internal/infrastructure/ratelimit"
	usecasecontract "github.com/habtesl/devblog/internal/usecase/contract"
)

type Router struct {
	postHandler   *PostHandler
	systemHandler *SystemHandler
	limiter       *ratelimit.Limiter
	config        usecasecontract.IConfigProvider
	logger        usecasecontract.IAppLogger
}

func NewRouter(postUsecase usecasecontract.IPostUseCase, limiter *ratelimit.Limiter, config usecasecontract.IConfigProvider, logger usecasecontract.IAppLogger) *Router {
	return &Router{
		postHandler:   NewPostHandler(postUsecase, config, logger),
		systemHandler: NewSystemHandler(postUsecase, config),
		limiter:       limiter,
		config:        config,
		logger:        logger,
	}
}

// SetupRoutes installs the middleware chain and routes. Order matters: rate
// limiting runs first so denied requests never reach compression or logging
// of response bodies, then gzip, then request logging, then CORS.
func (r *Router) SetupRoutes(router *gin.Engine) {
	if r.config.IsRateLimitEnabled() {
		router.Use(middleware.RateLimiter(r.limiter, r.logger))
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.RequestLogger(r.logger, r.config.GetEnvironment()))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.GetCORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "ETag", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", r.systemHandler.RootHandler)
	router.GET("/health", r.systemHandler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/posts", r.postHandler.ListPostsHandler)
	router.GET("/post/:slug", r.postHandler.GetPostHandler)

	router.GET("/cache/stats", r.systemHandler.CacheStatsHandler)
	router.POST("/cache/clear", r.systemHandler.CacheClearHandler)
}
