package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/transcript-api/api/health"
	"github.com/killallgit/transcript-api/api/transcripts"
	"github.com/killallgit/transcript-api/api/types"
	"github.com/killallgit/transcript-api/api/version"
	"github.com/killallgit/transcript-api/api/videos"
	transcriptsService "github.com/killallgit/transcript-api/internal/services/transcripts"
	videosService "github.com/killallgit/transcript-api/internal/services/videos"
	"github.com/killallgit/transcript-api/internal/services/workers"
	"github.com/killallgit/transcript-api/internal/services/youtube"
	"github.com/killallgit/transcript-api/pkg/config"
	"github.com/killallgit/transcript-api/pkg/textclean"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize services if not already set
	if deps.TranscriptService == nil {
		initializeTranscriptService(deps, cfg)
	}
	if deps.VideoService == nil && deps.DB != nil && deps.DB.DB != nil {
		initializeVideoService(deps, cfg)
	}

	rps, burst := cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}

	// Register transcript routes with general rate limiting
	transcriptGroup := v1.Group("/transcripts")
	if cfg.RateLimiting.Enabled {
		transcriptGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}
	transcripts.RegisterRoutes(transcriptGroup, deps)

	// Register video routes when a database is available. Processing a video
	// does a full upstream fetch, so it gets a tighter limit.
	if deps.VideoService != nil {
		videoGroup := v1.Group("/videos")
		if cfg.RateLimiting.Enabled {
			videoGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, (rps+1)/2, (burst+1)/2))
		}
		videos.RegisterRoutes(videoGroup, deps)
	}

	return nil
}

// newYouTubeClient builds the caption provider client from configuration
func newYouTubeClient(cfg *config.Config) *youtube.Client {
	return youtube.NewClient(youtube.Config{
		BaseURL:   cfg.YouTube.BaseURL,
		OEmbedURL: cfg.YouTube.OEmbedURL,
		UserAgent: cfg.YouTube.UserAgent,
		Timeout:   cfg.YouTube.Timeout,
		Languages: cfg.YouTube.Languages,
	})
}

// initializeTranscriptService creates and configures the transcript service
func initializeTranscriptService(deps *types.Dependencies, cfg *config.Config) {
	cleaner := textclean.New(textclean.Options{
		StripEmoji:         cfg.Cleaning.StripEmoji,
		NormalizeUnicode:   cfg.Cleaning.NormalizeUnicode,
		CollapseWhitespace: cfg.Cleaning.CollapseWhitespace,
	})

	pool := workers.NewPool(cfg.Processing.Workers)

	deps.TranscriptService = transcriptsService.NewService(newYouTubeClient(cfg), cleaner, pool)
}

// initializeVideoService creates and configures the video service
func initializeVideoService(deps *types.Dependencies, cfg *config.Config) {
	repo := videosService.NewRepository(deps.DB.DB)

	language := "en"
	if len(cfg.YouTube.Languages) > 0 {
		language = cfg.YouTube.Languages[0]
	}

	deps.VideoService = videosService.NewService(repo, newYouTubeClient(cfg), deps.TranscriptService, language)
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
