package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"propview-backend/internal/catalog"
	"propview-backend/internal/filter"
	"propview-backend/internal/maps"
	"propview-backend/internal/model"
)

// similarLimit is how many properties the similar-properties lookup returns.
const similarLimit = 3

// ListProperties handles GET /api/properties. Search and filter criteria
// arrive as query parameters; unparseable numeric values act as no
// constraint.
func (h *Handler) ListProperties(c *gin.Context) {
	properties, err := h.catalog.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	criteria := filter.ParseCriteria(
		c.Query("min_price"),
		c.Query("max_price"),
		c.Query("property_type"),
		c.Query("min_bedrooms"),
		c.Query("location"),
	)
	result := filter.Apply(properties, c.Query("search"), criteria)

	c.JSON(http.StatusOK, result)
}

// GetProperty handles GET /api/properties/:id.
func (h *Handler) GetProperty(c *gin.Context) {
	property, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}
	c.JSON(http.StatusOK, property)
}

type createPropertyRequest struct {
	Title        string             `json:"title" binding:"required"`
	Address      string             `json:"address" binding:"required"`
	City         string             `json:"city" binding:"required"`
	State        string             `json:"state" binding:"required"`
	ZipCode      string             `json:"zipCode"`
	Price        int64              `json:"price" binding:"min=0"`
	PropertyType string             `json:"propertyType" binding:"required"`
	Bedrooms     int                `json:"bedrooms" binding:"min=0"`
	Bathrooms    float64            `json:"bathrooms" binding:"min=0"`
	SquareFeet   int                `json:"squareFeet"`
	YearBuilt    int                `json:"yearBuilt"`
	Images       []string           `json:"images"`
	Amenities    []string           `json:"amenities"`
	Coordinates  *model.Coordinates `json:"coordinates"`
	Description  string             `json:"description"`
}

// CreateProperty handles POST /api/properties.
func (h *Handler) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.catalog.Create(c.Request.Context(), model.Property{
		Title:        req.Title,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Price:        req.Price,
		PropertyType: req.PropertyType,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		YearBuilt:    req.YearBuilt,
		Images:       req.Images,
		Amenities:    req.Amenities,
		Coordinates:  req.Coordinates,
		Description:  req.Description,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProperty handles PUT /api/properties/:id with a partial body.
func (h *Handler) UpdateProperty(c *gin.Context) {
	var patch catalog.PropertyPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.catalog.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProperty handles DELETE /api/properties/:id.
func (h *Handler) DeleteProperty(c *gin.Context) {
	if err := h.catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSimilarProperties handles GET /api/properties/:id/similar. Similarity
// is catalog order with the property itself excluded, capped at three.
func (h *Handler) GetSimilarProperties(c *gin.Context) {
	id := c.Param("id")

	property, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	properties, err := h.catalog.GetAll(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	similar := make([]model.Property, 0, similarLimit)
	for _, p := range properties {
		if p.ID == id {
			continue
		}
		similar = append(similar, p)
		if len(similar) == similarLimit {
			break
		}
	}
	c.JSON(http.StatusOK, similar)
}

// GetPropertyMapLink handles GET /api/properties/:id/map. The response
// carries an outbound maps URL for the property's address; nothing is
// fetched from the provider.
func (h *Handler) GetPropertyMapLink(c *gin.Context) {
	property, err := h.catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if property == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":     maps.Link(*property),
		"address": property.Address,
		"city":    property.City,
		"state":   property.State,
		"zipCode": property.ZipCode,
	})
}
