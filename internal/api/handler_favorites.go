package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propview-backend/internal/favorites"
	"propview-backend/internal/model"
)

// savedPropertyResponse is a favorite joined with its property record.
type savedPropertyResponse struct {
	model.Favorite
	Property model.Property `json:"property"`
}

// ListFavorites handles GET /api/favorites. Each favorite is hydrated with
// its property; favorites whose property has since been deleted are
// silently dropped from the listing (the record itself survives and can
// still be removed by property id).
func (h *Handler) ListFavorites(c *gin.Context) {
	saved, err := h.favorites.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]savedPropertyResponse, 0, len(saved))
	for _, f := range saved {
		property, err := h.catalog.GetByID(c.Request.Context(), f.PropertyID)
		if err != nil {
			h.respondError(c, err)
			return
		}
		if property == nil {
			continue // dangling reference
		}
		response = append(response, savedPropertyResponse{Favorite: f, Property: *property})
	}
	c.JSON(http.StatusOK, response)
}

type createFavoriteRequest struct {
	PropertyID string     `json:"propertyId" binding:"required"`
	SavedDate  *time.Time `json:"savedDate"`
}

// CreateFavorite handles POST /api/favorites. Saving an already-saved
// property returns the existing record unchanged.
func (h *Handler) CreateFavorite(c *gin.Context) {
	var req createFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attrs := favorites.Attrs{PropertyID: req.PropertyID}
	if req.SavedDate != nil {
		attrs.SavedDate = *req.SavedDate
	}

	saved, err := h.favorites.Create(c.Request.Context(), attrs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// GetFavorite handles GET /api/favorites/:id.
func (h *Handler) GetFavorite(c *gin.Context) {
	saved, err := h.favorites.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if saved == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "saved property not found"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpdateFavorite handles PUT /api/favorites/:id with a partial body.
func (h *Handler) UpdateFavorite(c *gin.Context) {
	var patch favorites.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.favorites.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteFavorite handles DELETE /api/favorites/:id.
func (h *Handler) DeleteFavorite(c *gin.Context) {
	if err := h.favorites.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSavedStatus handles GET /api/properties/:id/favorite and reports
// whether the property is currently saved.
func (h *Handler) GetSavedStatus(c *gin.Context) {
	saved, err := h.favorites.GetByPropertyID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if saved == nil {
		c.JSON(http.StatusOK, gin.H{"saved": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true, "favorite": saved})
}

// RemoveFavoriteByProperty handles DELETE /api/properties/:id/favorite.
// The property itself does not need to exist; a dangling favorite is still
// removable this way.
func (h *Handler) RemoveFavoriteByProperty(c *gin.Context) {
	if err := h.favorites.RemoveByPropertyID(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
