package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"propview-backend/config"
	"propview-backend/internal/catalog"
	"propview-backend/internal/favorites"
	"propview-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.ServerConfig, c *catalog.Store, f *favorites.Store, logger zerolog.Logger) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(c, f, logger)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Read-mostly catalog endpoints get response caching; favorites
		// stay uncached so saved status is always fresh.
		api.GET("/properties", handler.ListProperties)
		api.POST("/properties", handler.CreateProperty)
		api.GET("/properties/:id", handler.GetProperty)
		api.PUT("/properties/:id", handler.UpdateProperty)
		api.DELETE("/properties/:id", handler.DeleteProperty)
		api.GET("/properties/:id/similar", caching, handler.GetSimilarProperties)
		api.GET("/properties/:id/map", caching, handler.GetPropertyMapLink)

		// Property-keyed favorite operations live under the property
		// resource; the favorites group is keyed by internal favorite id.
		api.GET("/properties/:id/favorite", handler.GetSavedStatus)
		api.DELETE("/properties/:id/favorite", handler.RemoveFavoriteByProperty)

		api.GET("/favorites", handler.ListFavorites)
		api.POST("/favorites", handler.CreateFavorite)
		api.GET("/favorites/:id", handler.GetFavorite)
		api.PUT("/favorites/:id", handler.UpdateFavorite)
		api.DELETE("/favorites/:id", handler.DeleteFavorite)
	}

	return r
}
