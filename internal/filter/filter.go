// Package filter narrows a property list by free-text search and structured
// criteria. Apply is pure: same inputs, same output, no shared state.
package filter

import (
	"strconv"
	"strings"

	"propview-backend/internal/model"
)

// Criteria are the structured constraints. A nil numeric field or empty
// string means "no constraint". All set criteria must hold for a property
// to pass.
type Criteria struct {
	MinPrice     *int64
	MaxPrice     *int64
	PropertyType string
	MinBedrooms  *int
	Location     string
}

// ParseCriteria builds Criteria from raw text inputs, the form they arrive
// in at the HTTP boundary. Numeric text that does not parse is treated as
// unset rather than rejected.
func ParseCriteria(minPrice, maxPrice, propertyType, minBedrooms, location string) Criteria {
	c := Criteria{
		PropertyType: propertyType,
		Location:     location,
	}
	if v, err := strconv.ParseInt(minPrice, 10, 64); err == nil {
		c.MinPrice = &v
	}
	if v, err := strconv.ParseInt(maxPrice, 10, 64); err == nil {
		c.MaxPrice = &v
	}
	if v, err := strconv.Atoi(minBedrooms); err == nil {
		c.MinBedrooms = &v
	}
	return c
}

// Apply filters the properties, preserving relative order. The stages run
// conjunctively in a fixed order: text search, min price, max price,
// property type, min bedrooms, location.
func Apply(properties []model.Property, searchTerm string, criteria Criteria) []model.Property {
	result := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if matches(p, searchTerm, criteria) {
			result = append(result, p)
		}
	}
	return result
}

func matches(p model.Property, searchTerm string, c Criteria) bool {
	if searchTerm != "" {
		term := strings.ToLower(searchTerm)
		if !strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Address), term) &&
			!strings.Contains(strings.ToLower(p.City), term) {
			return false
		}
	}
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.PropertyType != "" && p.PropertyType != c.PropertyType {
		return false
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if c.Location != "" {
		loc := strings.ToLower(c.Location)
		if !strings.Contains(strings.ToLower(p.City), loc) &&
			!strings.Contains(strings.ToLower(p.State), loc) {
			return false
		}
	}
	return true
}
