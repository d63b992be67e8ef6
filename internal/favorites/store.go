// Package favorites owns the saved-property records. The whole collection
// is serialized to a durable slot on every mutation and loaded back once at
// construction.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"propview-backend/internal/model"
	"propview-backend/internal/slot"
)

// ErrNotFound is returned when an operation references a favorite that does
// not exist, either by internal id or by property id.
var ErrNotFound = errors.New("saved property not found")

// Store holds the favorites collection. Invariant: at most one favorite per
// distinct property id. Mutations persist synchronously; a mutation that
// fails to persist is not committed.
type Store struct {
	mu        sync.RWMutex
	favorites []model.Favorite
	slot      slot.Slot
	logger    zerolog.Logger
	latency   time.Duration
}

// NewStore loads the persisted collection from the slot. A missing slot
// value initializes an empty collection; an unreadable or corrupt value is
// logged and also falls back to empty rather than failing startup.
func NewStore(ctx context.Context, s slot.Slot, logger zerolog.Logger, latency time.Duration) (*Store, error) {
	store := &Store{
		slot:    s,
		logger:  logger,
		latency: latency,
	}

	data, err := s.Read(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not read persisted favorites, starting empty")
		return store, nil
	}
	if len(data) == 0 {
		return store, nil
	}

	var loaded []model.Favorite
	if err := json.Unmarshal(data, &loaded); err != nil {
		logger.Warn().Err(err).Msg("persisted favorites are corrupt, starting empty")
		return store, nil
	}
	store.favorites = loaded
	return store, nil
}

// GetAll returns a copy of every favorite in insertion order.
func (s *Store) GetAll(ctx context.Context) ([]model.Favorite, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Favorite, len(s.favorites))
	copy(result, s.favorites)
	return result, nil
}

// GetByID returns the favorite with the given internal id, or nil if there
// is none.
func (s *Store) GetByID(ctx context.Context, id string) (*model.Favorite, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.favorites {
		if f.ID == id {
			clone := f
			return &clone, nil
		}
	}
	return nil, nil
}

// GetByPropertyID returns the favorite referencing the given property, or
// nil if the property is not saved.
func (s *Store) GetByPropertyID(ctx context.Context, propertyID string) (*model.Favorite, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.favorites {
		if f.PropertyID == propertyID {
			clone := f
			return &clone, nil
		}
	}
	return nil, nil
}

// Attrs are the caller-supplied fields for a new favorite. A zero SavedDate
// defaults to the creation time.
type Attrs struct {
	PropertyID string
	SavedDate  time.Time
}

// Create saves a property. Creation is idempotent with respect to the
// property id: if a favorite already references it, that record is returned
// unchanged and nothing is written.
func (s *Store) Create(ctx context.Context, attrs Attrs) (model.Favorite, error) {
	if err := s.wait(ctx); err != nil {
		return model.Favorite{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.favorites {
		if f.PropertyID == attrs.PropertyID {
			return f, nil
		}
	}

	saved := model.Favorite{
		ID:         uuid.NewString(),
		PropertyID: attrs.PropertyID,
		SavedDate:  attrs.SavedDate,
	}
	if saved.SavedDate.IsZero() {
		saved.SavedDate = time.Now().UTC()
	}

	next := append(append([]model.Favorite{}, s.favorites...), saved)
	if err := s.persist(ctx, next); err != nil {
		return model.Favorite{}, err
	}
	s.favorites = next
	return saved, nil
}

// Patch is a partial update to a favorite; nil fields are left unchanged.
type Patch struct {
	PropertyID *string    `json:"propertyId"`
	SavedDate  *time.Time `json:"savedDate"`
}

// Update merges the patch onto the favorite with the given internal id.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (model.Favorite, error) {
	if err := s.wait(ctx); err != nil {
		return model.Favorite{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.favorites {
		if f.ID != id {
			continue
		}
		updated := f
		if patch.PropertyID != nil {
			updated.PropertyID = *patch.PropertyID
		}
		if patch.SavedDate != nil {
			updated.SavedDate = *patch.SavedDate
		}

		next := make([]model.Favorite, len(s.favorites))
		copy(next, s.favorites)
		next[i] = updated
		if err := s.persist(ctx, next); err != nil {
			return model.Favorite{}, err
		}
		s.favorites = next
		return updated, nil
	}
	return model.Favorite{}, ErrNotFound
}

// Delete removes the favorite with the given internal id. Repeating the
// delete fails with ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, func(f model.Favorite) bool { return f.ID == id })
}

// RemoveByPropertyID removes the favorite referencing the given property.
func (s *Store) RemoveByPropertyID(ctx context.Context, propertyID string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, func(f model.Favorite) bool { return f.PropertyID == propertyID })
}

func (s *Store) removeLocked(ctx context.Context, match func(model.Favorite) bool) error {
	for i, f := range s.favorites {
		if !match(f) {
			continue
		}
		next := append(append([]model.Favorite{}, s.favorites[:i]...), s.favorites[i+1:]...)
		if err := s.persist(ctx, next); err != nil {
			return err
		}
		s.favorites = next
		return nil
	}
	return ErrNotFound
}

func (s *Store) persist(ctx context.Context, favorites []model.Favorite) error {
	data, err := json.Marshal(favorites)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := s.slot.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
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
