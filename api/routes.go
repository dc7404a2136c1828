package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/ameen-roayan/stremio-cleanstream/api/addon"
	"github.com/ameen-roayan/stremio-cleanstream/api/health"
	"github.com/ameen-roayan/stremio-cleanstream/api/segments"
	"github.com/ameen-roayan/stremio-cleanstream/api/skips"
	"github.com/ameen-roayan/stremio-cleanstream/api/types"
	"github.com/ameen-roayan/stremio-cleanstream/api/version"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/cache"
	"github.com/ameen-roayan/stremio-cleanstream/internal/services/metadata"
	segmentssvc "github.com/ameen-roayan/stremio-cleanstream/internal/services/segments"
	"github.com/ameen-roayan/stremio-cleanstream/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Initialize the metadata client if not set
	if deps.MetadataClient == nil {
		deps.MetadataClient = metadata.NewClient(metadata.Config{
			BaseURL:   cfg.Metadata.BaseURL,
			Timeout:   cfg.Metadata.Timeout,
			UserAgent: cfg.Metadata.UserAgent,
		})
	}

	// Initialize the payload cache if not set
	if deps.SkipCache == nil {
		deps.SkipCache = cache.NewMemoryCache(
			cfg.Cache.DefaultTTL,
			cfg.Cache.CleanupInterval,
			cfg.Cache.MaxEntries,
		)
	}

	// Initialize the segment service when a database is available
	if deps.DB != nil && deps.DB.DB != nil && deps.SegmentService == nil {
		deps.SegmentService = segmentssvc.NewService(segmentssvc.NewRepository(deps.DB.DB))
	}

	// Addon routes live at the engine root where players expect them
	addon.RegisterRoutes(engine, deps)

	limiter := func(rps, burst int) gin.HandlerFunc {
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)
	}

	// API v1 routes
	v1 := engine.Group("/api/v1")

	if deps.SegmentService != nil {
		// Skip resolution is the hot path; players poll it while seeking
		skipsGroup := v1.Group("/skips")
		if cfg.RateLimiting.Enabled {
			skipsGroup.Use(limiter(cfg.RateLimiting.RequestsPerSecond*2, cfg.RateLimiting.Burst*2))
		}
		skips.RegisterRoutes(skipsGroup, deps)

		titlesGroup := v1.Group("/titles")
		segmentsGroup := v1.Group("/segments")
		if cfg.RateLimiting.Enabled {
			contribution := limiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.Burst)
			titlesGroup.Use(contribution)
			segmentsGroup.Use(contribution)
		}
		segments.RegisterTitleRoutes(titlesGroup, deps)
		segments.RegisterRoutes(segmentsGroup, deps)
	}

	return nil
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
