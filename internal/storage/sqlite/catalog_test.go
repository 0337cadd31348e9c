package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cityguide/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func testAttraction(id string) *storage.Attraction {
	return &storage.Attraction{
		ID:           id,
		Name:         "Museum " + id,
		Description:  "A museum",
		Category:     "museum",
		Address:      "Main St 1",
		ImageURL:     "https://example.com/img.jpg",
		Latitude:     52.52,
		Longitude:    13.405,
		Rating:       4.5,
		IsPublished:  true,
		UpdatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LastSyncedAt: time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
	}
}

func TestCatalog_SaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	want := testAttraction("a1")
	require.NoError(t, s.SaveAttraction(ctx, want))

	got, err := s.GetAttraction(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalog_GetMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetAttraction(context.Background(), "nope")
	assert.True(t, errors.Is(err, storage.ErrAttractionNotFound))
}

func TestCatalog_SaveUpsertsByID(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	a := testAttraction("a1")
	require.NoError(t, s.SaveAttraction(ctx, a))

	a.Name = "Renamed"
	a.IsFavorite = true
	require.NoError(t, s.SaveAttraction(ctx, a))

	got, err := s.GetAttraction(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.True(t, got.IsFavorite)

	count, err := s.CountAttractions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCatalog_ListOrderedByName(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	b := testAttraction("b")
	b.Name = "Zoo"
	a := testAttraction("a")
	a.Name = "Aquarium"
	require.NoError(t, s.SaveAttraction(ctx, b))
	require.NoError(t, s.SaveAttraction(ctx, a))

	list, err := s.ListAttractions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Aquarium", list[0].Name)
	assert.Equal(t, "Zoo", list[1].Name)
}

func TestCatalog_Favorites(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAttraction(ctx, testAttraction("a1")))
	require.NoError(t, s.SaveAttraction(ctx, testAttraction("a2")))

	require.NoError(t, s.SetFavorite(ctx, "a1", true))

	ids, err := s.ListFavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, ids)

	require.NoError(t, s.SetFavorite(ctx, "a1", false))
	ids, err = s.ListFavoriteIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	err = s.SetFavorite(ctx, "missing", true)
	assert.True(t, errors.Is(err, storage.ErrAttractionNotFound))
}

func TestCatalog_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAttraction(ctx, testAttraction("a1")))
	require.NoError(t, s.DeleteAttraction(ctx, "a1"))

	_, err := s.GetAttraction(ctx, "a1")
	assert.True(t, errors.Is(err, storage.ErrAttractionNotFound))

	err = s.DeleteAttraction(ctx, "a1")
	assert.True(t, errors.Is(err, storage.ErrAttractionNotFound))
}

func TestCatalog_ReplaceAll(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAttraction(ctx, testAttraction("old1")))
	require.NoError(t, s.SaveAttraction(ctx, testAttraction("old2")))

	fresh := testAttraction("new1")
	fresh.IsFavorite = true
	require.NoError(t, s.ReplaceAllAttractions(ctx, []*storage.Attraction{fresh}))

	count, err := s.CountAttractions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := s.GetAttraction(ctx, "new1")
	require.NoError(t, err)
	assert.True(t, got.IsFavorite)

	_, err = s.GetAttraction(ctx, "old1")
	assert.True(t, errors.Is(err, storage.ErrAttractionNotFound))
}

func TestCatalog_ReplaceAllEmpty(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveAttraction(ctx, testAttraction("a1")))
	require.NoError(t, s.ReplaceAllAttractions(ctx, nil))

	count, err := s.CountAttractions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
