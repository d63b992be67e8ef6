package catalog

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"propview-backend/internal/model"
)

// ErrNotFound is returned when an operation references a property id that is
// not in the catalog.
var ErrNotFound = errors.New("property not found")

// Store owns the canonical set of property records. The collection lives in
// memory, seeded once at construction; insertion order is preserved. All
// methods return independent copies so callers can never mutate internal
// state through a returned value.
type Store struct {
	mu         sync.RWMutex
	properties []model.Property
	latency    time.Duration
}

// NewStore creates a catalog seeded with the given properties. The seed
// slice is copied; the caller keeps ownership of its argument. A non-zero
// latency makes every operation pause, mimicking a remote data source.
func NewStore(seed []model.Property, latency time.Duration) *Store {
	s := &Store{
		properties: make([]model.Property, 0, len(seed)),
		latency:    latency,
	}
	for _, p := range seed {
		s.properties = append(s.properties, p.Clone())
	}
	return s
}

// GetAll returns a snapshot of every property in insertion order.
func (s *Store) GetAll(ctx context.Context) ([]model.Property, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Property, 0, len(s.properties))
	for _, p := range s.properties {
		result = append(result, p.Clone())
	}
	return result, nil
}

// GetByID returns a snapshot of the matching property, or nil if the id is
// unknown. Absence is a normal outcome, not an error.
func (s *Store) GetByID(ctx context.Context, id string) (*model.Property, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.properties {
		if p.ID == id {
			clone := p.Clone()
			return &clone, nil
		}
	}
	return nil, nil
}

// Create assigns a fresh id and listing date, appends the property, and
// returns a copy of the stored record. Any id or listing date supplied by
// the caller is overwritten.
func (s *Store) Create(ctx context.Context, attrs model.Property) (model.Property, error) {
	if err := s.wait(ctx); err != nil {
		return model.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := attrs.Clone()
	stored.ID = uuid.NewString()
	stored.ListingDate = time.Now().UTC()
	s.properties = append(s.properties, stored)
	return stored.Clone(), nil
}

// PropertyPatch is a partial update: nil fields are left unchanged. The id
// and listing date of a property are immutable and have no patch fields.
type PropertyPatch struct {
	Title        *string            `json:"title"`
	Address      *string            `json:"address"`
	City         *string            `json:"city"`
	State        *string            `json:"state"`
	ZipCode      *string            `json:"zipCode"`
	Price        *int64             `json:"price"`
	PropertyType *string            `json:"propertyType"`
	Bedrooms     *int               `json:"bedrooms"`
	Bathrooms    *float64           `json:"bathrooms"`
	SquareFeet   *int               `json:"squareFeet"`
	YearBuilt    *int               `json:"yearBuilt"`
	Images       []string           `json:"images"`
	Amenities    []string           `json:"amenities"`
	Coordinates  *model.Coordinates `json:"coordinates"`
	Description  *string            `json:"description"`
}

// Update merges the patch onto the existing record, preserving unspecified
// fields, and returns a copy of the result.
func (s *Store) Update(ctx context.Context, id string, patch PropertyPatch) (model.Property, error) {
	if err := s.wait(ctx); err != nil {
		return model.Property{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID != id {
			continue
		}
		applyPatch(&s.properties[i], patch)
		return s.properties[i].Clone(), nil
	}
	return model.Property{}, ErrNotFound
}

// Delete removes the property. Deleting an id that is already gone fails
// with ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.properties {
		if s.properties[i].ID == id {
			s.properties = append(s.properties[:i], s.properties[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func applyPatch(p *model.Property, patch PropertyPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.ZipCode != nil {
		p.ZipCode = *patch.ZipCode
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.PropertyType != nil {
		p.PropertyType = *patch.PropertyType
	}
	if patch.Bedrooms != nil {
		p.Bedrooms = *patch.Bedrooms
	}
	if patch.Bathrooms != nil {
		p.Bathrooms = *patch.Bathrooms
	}
	if patch.SquareFeet != nil {
		p.SquareFeet = *patch.SquareFeet
	}
	if patch.YearBuilt != nil {
		p.YearBuilt = *patch.YearBuilt
	}
	if patch.Images != nil {
		p.Images = make([]string, len(patch.Images))
		copy(p.Images, patch.Images)
	}
	if patch.Amenities != nil {
		p.Amenities = make([]string, len(patch.Amenities))
		copy(p.Amenities, patch.Amenities)
	}
	if patch.Coordinates != nil {
		c := *patch.Coordinates
		p.Coordinates = &c
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
}

func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
