package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/habtesl/devblog/internal/domain/contract"
	"github.com/habtesl/devblog/internal/domain/entity"
	handlerHttp "github.com/habtesl/devblog/internal/handler/http"
	"github.com/habtesl/devblog/internal/infrastructure/cache"
	"github.com/habtesl/devblog/internal/infrastructure/config"
	"github.com/habtesl/devblog/internal/infrastructure/logger"
	"github.com/habtesl/devblog/internal/infrastructure/ratelimit"
	"github.com/habtesl/devblog/internal/infrastructure/storage"
	"github.com/habtesl/devblog/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger(appConfig.GetLogLevel())

	// Content caches: single-entry listing and slug map, bounded post cache.
	// All three share one TTL.
	ttl := appConfig.GetCacheTTL()
	listCache, err := cache.New[string, []entity.PostSummary](usecase.PostsListCacheSize, ttl)
	if err != nil {
		appLogger.Fatalf("failed to create listing cache: %v", err)
	}
	postCache, err := cache.New[string, entity.PostDetail](usecase.MaxIndividualPostCache, ttl)
	if err != nil {
		appLogger.Fatalf("failed to create post cache: %v", err)
	}
	slugMapCache, err := cache.New[string, map[string]string](usecase.SlugMapCacheSize, ttl)
	if err != nil {
		appLogger.Fatalf("failed to create slug map cache: %v", err)
	}

	// Dependency Injection: content source, selected once at startup.
	var source contract.IContentSource
	if appConfig.IsUsingS3() {
		s3Client, err := storage.NewS3Client(context.Background(), appConfig.GetAWSRegion())
		if err != nil {
			appLogger.Fatalf("failed to create S3 client: %v", err)
		}
		source = storage.NewS3Source(s3Client, appConfig.GetS3Bucket(), appConfig.GetS3Prefix(), slugMapCache, appLogger)
	} else {
		source = storage.NewLocalSource(appConfig.GetContentDir(), appLogger)
	}

	postUsecase := usecase.NewPostUsecase(source, listCache, postCache, slugMapCache, appLogger)
	limiter := ratelimit.NewLimiter(appConfig.GetRateLimitPerMinute(), appConfig.GetRateLimitPerHour())

	if appConfig.GetEnvironment() != "local" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	appRouter := handlerHttp.NewRouter(postUsecase, limiter, appConfig, appLogger)
	appRouter.SetupRoutes(router)

	appLogger.Infof("starting %s (env=%s, s3=%v, cache_ttl=%s)",
		appConfig.GetAppName(), appConfig.GetEnvironment(), appConfig.IsUsingS3(), ttl)
	if err := router.Run(":" + appConfig.GetPort()); err != nil {
		appLogger.Fatalf("failed to start server: %v", err)
	}
}
