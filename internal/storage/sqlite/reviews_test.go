package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cityguide/internal/storage"
)

func testReview(id, attractionID string) *storage.Review {
	return &storage.Review{
		ID:           id,
		AttractionID: attractionID,
		UserID:       "u1",
		AuthorName:   "Traveler",
		Text:         "Great place",
		Status:       "approved",
		Rating:       5,
		LikeCount:    3,
		DislikeCount: 1,
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestReviews_SaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	want := testReview("r1", "a1")
	want.MyReaction = storage.ReactionLike
	want.IsMine = true
	want.RejectionReason = "too short"
	require.NoError(t, s.SaveReview(ctx, want))

	got, err := s.GetReview(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReviews_GetMissing(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetReview(context.Background(), "nope")
	assert.True(t, errors.Is(err, storage.ErrReviewNotFound))
}

func TestReviews_GetByIDsChunks(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// More ids than one chunk holds, to exercise the chunked IN query.
	total := idChunkSize + 50
	ids := make([]string, 0, total)
	for i := 0; i < total; i++ {
		id := fmt.Sprintf("r%04d", i)
		require.NoError(t, s.SaveReview(ctx, testReview(id, "a1")))
		ids = append(ids, id)
	}
	ids = append(ids, "missing-1", "missing-2")

	found, err := s.GetReviewsByIDs(ctx, ids)
	require.NoError(t, err)
	assert.Len(t, found, total)
	assert.Contains(t, found, "r0000")
	assert.NotContains(t, found, "missing-1")
}

func TestReviews_GetByIDsEmpty(t *testing.T) {
	s := newTestStorage(t)

	found, err := s.GetReviewsByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestReviews_ListByAttractionNewestFirst(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	older := testReview("r1", "a1")
	older.CreatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := testReview("r2", "a1")
	newer.CreatedAt = time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	other := testReview("r3", "a2")

	require.NoError(t, s.SaveReview(ctx, older))
	require.NoError(t, s.SaveReview(ctx, newer))
	require.NoError(t, s.SaveReview(ctx, other))

	list, err := s.ListReviewsByAttraction(ctx, "a1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "r2", list[0].ID)
	assert.Equal(t, "r1", list[1].ID)
}

func TestReviews_ListByAuthor(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	mine := testReview("r1", "a1")
	mine.UserID = "me"
	other := testReview("r2", "a1")

	require.NoError(t, s.SaveReview(ctx, mine))
	require.NoError(t, s.SaveReview(ctx, other))

	list, err := s.ListReviewsByAuthor(ctx, "me")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "r1", list[0].ID)
}

func TestReviews_SetReaction(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveReview(ctx, testReview("r1", "a1")))
	require.NoError(t, s.SetReaction(ctx, "r1", storage.ReactionDislike))

	got, err := s.GetReview(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, storage.ReactionDislike, got.MyReaction)

	err = s.SetReaction(ctx, "missing", storage.ReactionLike)
	assert.True(t, errors.Is(err, storage.ErrReviewNotFound))
}

func TestReviews_DeleteAndCount(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveReview(ctx, testReview("r1", "a1")))

	count, err := s.CountReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.DeleteReview(ctx, "r1"))

	count, err = s.CountReviews(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	err = s.DeleteReview(ctx, "r1")
	assert.True(t, errors.Is(err, storage.ErrReviewNotFound))
}

func TestReviews_ReplaceAll(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveReview(ctx, testReview("old", "a1")))
	require.NoError(t, s.ReplaceAllReviews(ctx, []*storage.Review{testReview("new", "a1")}))

	_, err := s.GetReview(ctx, "old")
	assert.True(t, errors.Is(err, storage.ErrReviewNotFound))

	_, err = s.GetReview(ctx, "new")
	assert.NoError(t, err)
}
