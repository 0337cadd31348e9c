package boltdb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cityguide/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := New(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestSession_SaveGetDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	want := &storage.Session{
		UserID:       "user-1",
		Email:        "me@example.com",
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, s.SaveSession(ctx, want))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.DeleteSession(ctx))

	_, err = s.GetSession(ctx)
	assert.True(t, errors.Is(err, storage.ErrSessionNotFound))

	err = s.DeleteSession(ctx)
	assert.True(t, errors.Is(err, storage.ErrSessionNotFound))
}

func TestSession_SaveReplacesPrevious(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "old"}))
	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "new"}))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.UserID)
}

func TestCatalogWatermark_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetCatalogWatermark(ctx)
	assert.True(t, errors.Is(err, storage.ErrWatermarkNotFound))

	want := time.Date(2025, 6, 1, 12, 34, 56, 789000000, time.UTC)
	require.NoError(t, s.SaveCatalogWatermark(ctx, want))

	got, err := s.GetCatalogWatermark(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(want), "got %v", got)
}

func TestReviewWatermark_IndependentOfCatalog(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	catalog := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	review := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveCatalogWatermark(ctx, catalog))
	require.NoError(t, s.SaveReviewWatermark(ctx, review))

	got, err := s.GetReviewWatermark(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(review))

	got, err = s.GetCatalogWatermark(ctx)
	require.NoError(t, err)
	assert.True(t, got.Equal(catalog))
}

func TestParentSyncState_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetParentSyncState(ctx, "a1")
	assert.True(t, errors.Is(err, storage.ErrWatermarkNotFound))

	want := &storage.ParentSyncState{
		Watermark:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		LastSyncedAt: time.Now().Unix(),
	}
	require.NoError(t, s.SaveParentSyncState(ctx, "a1", want))

	got, err := s.GetParentSyncState(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, got.Watermark.Equal(want.Watermark))
	assert.Equal(t, want.LastSyncedAt, got.LastSyncedAt)

	// Each attraction keeps its own state.
	_, err = s.GetParentSyncState(ctx, "a2")
	assert.True(t, errors.Is(err, storage.ErrWatermarkNotFound))
}
