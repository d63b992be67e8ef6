package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"propview-backend/internal/catalog"
	"propview-backend/internal/favorites"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	catalog   *catalog.Store
	favorites *favorites.Store
	logger    zerolog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(c *catalog.Store, f *favorites.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		catalog:   c,
		favorites: f,
		logger:    logger,
	}
}

// respondError maps store errors onto HTTP statuses: not-found conditions
// become 404, everything else is a 500 that also gets logged.
func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNotFound) || errors.Is(err, favorites.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
