package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propview-backend/internal/model"
)

func seedProperties() []model.Property {
	return []model.Property{
		{ID: "p1", Title: "First", City: "Portland", Price: 100000, Images: []string{"a.jpg"}, Amenities: []string{"Pool"}},
		{ID: "p2", Title: "Second", City: "Seattle", Price: 250000},
		{ID: "p3", Title: "Third", City: "Austin", Price: 400000, Coordinates: &model.Coordinates{Lat: 30.2, Lng: -97.7}},
	}
}

func TestStoreGetAll(t *testing.T) {
	store := NewStore(seedProperties(), 0)

	all, err := store.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"p1", "p2", "p3"}, []string{all[0].ID, all[1].ID, all[2].ID})
}

func TestStoreGetByID(t *testing.T) {
	store := NewStore(seedProperties(), 0)

	found, err := store.GetByID(context.Background(), "p2")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Second", found.Title)

	missing, err := store.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore(seedProperties(), 0)
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)

	// Mutating a returned snapshot must not leak into the store.
	all[0].Title = "Hacked"
	all[0].Images[0] = "hacked.jpg"
	all[0].Amenities[0] = "Hacked"

	fresh, err := store.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "First", fresh.Title)
	assert.Equal(t, "a.jpg", fresh.Images[0])
	assert.Equal(t, "Pool", fresh.Amenities[0])

	got, err := store.GetByID(ctx, "p3")
	require.NoError(t, err)
	require.NotNil(t, got)
	got.Coordinates.Lat = 0

	fresh, err = store.GetByID(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, 30.2, fresh.Coordinates.Lat)
}

func TestStoreSeedIsolation(t *testing.T) {
	seed := seedProperties()
	store := NewStore(seed, 0)

	seed[0].Title = "Mutated after construction"

	got, err := store.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
}

func TestStoreCreate(t *testing.T) {
	store := NewStore(nil, 0)
	ctx := context.Background()

	created, err := store.Create(ctx, model.Property{Title: "New Listing", Price: 300000, ID: "caller-supplied"})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "caller-supplied", created.ID)
	assert.False(t, created.ListingDate.IsZero())

	stored, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, created, *stored)

	second, err := store.Create(ctx, model.Property{Title: "Another"})
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID)
}

func TestStoreUpdate(t *testing.T) {
	store := NewStore(seedProperties(), 0)
	ctx := context.Background()

	title := "Renamed"
	price := int64(123456)
	updated, err := store.Update(ctx, "p1", PropertyPatch{Title: &title, Price: &price})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, int64(123456), updated.Price)
	// Unspecified fields are preserved.
	assert.Equal(t, "Portland", updated.City)
	assert.Equal(t, "p1", updated.ID)

	_, err = store.Update(ctx, "missing", PropertyPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(seedProperties(), 0)
	ctx := context.Background()

	require.NoError(t, store.Delete(ctx, "p2"))

	gone, err := store.GetByID(ctx, "p2")
	require.NoError(t, err)
	assert.Nil(t, gone)

	// Deleting an already-deleted id fails.
	assert.ErrorIs(t, store.Delete(ctx, "p2"), ErrNotFound)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestLoadSeedEmbedded(t *testing.T) {
	properties, err := LoadSeed("")
	require.NoError(t, err)
	assert.NotEmpty(t, properties)

	for _, p := range properties {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.GreaterOrEqual(t, p.Price, int64(0))
		assert.NotEmpty(t, p.Images)
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed("/does/not/exist.json")
	assert.Error(t, err)
}
