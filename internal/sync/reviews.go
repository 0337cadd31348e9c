package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/storage"
	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

// reviewStaleness is how long a per-attraction review set stays fresh
// before a detail-screen open triggers another delta call.
const reviewStaleness = 5 * time.Minute

// Identity reports the signed-in user, if any. Used to stamp the IsMine
// flag when merging server rows.
type Identity interface {
	UserID() string
}

// ReviewEngine keeps the review cache current. Bulk mode runs piggybacked
// on catalog sync; per-attraction mode runs on demand when a detail view
// opens, throttled by a staleness window.
type ReviewEngine struct {
	api      api.ClientAPI
	reviews  storage.ReviewStorage
	metadata storage.MetadataStorage
	identity Identity
	logger   *slog.Logger

	mu       sync.Mutex
	inflight map[string]struct{}
}

// NewReviewEngine creates the review sync engine.
// identity may be nil for an anonymous client.
func NewReviewEngine(client api.ClientAPI, reviews storage.ReviewStorage, metadata storage.MetadataStorage, identity Identity, logger *slog.Logger) *ReviewEngine {
	return &ReviewEngine{
		api:      client,
		reviews:  reviews,
		metadata: metadata,
		identity: identity,
		logger:   logger,
		inflight: make(map[string]struct{}),
	}
}

var _ ReviewBulkSyncer = (*ReviewEngine)(nil)

// BulkSync refreshes the whole review cache. An empty local cache gets a
// full fetch with a wholesale replace; otherwise a delta merge since the
// global review watermark. Returns the number of rows written.
func (e *ReviewEngine) BulkSync(ctx context.Context) (int, error) {
	count, err := e.reviews.CountReviews(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	if count == 0 {
		return e.bulkReplace(ctx)
	}

	watermark, err := e.metadata.GetReviewWatermark(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrWatermarkNotFound) {
			return 0, fmt.Errorf("failed to read review watermark: %w", err)
		}
		// Cache exists but no watermark (e.g. written by a per-attraction
		// sync). Full fetch with upserts so local-only fields survive.
		fetched, err := e.api.FetchReviews(ctx)
		if err != nil {
			return 0, err
		}
		return e.mergeAndAdvance(ctx, fetched)
	}

	fetched, err := e.api.FetchReviewsSince(ctx, watermark)
	if err != nil {
		return 0, err
	}
	return e.mergeAndAdvance(ctx, fetched)
}

// SyncForAttraction refreshes one attraction's reviews if its cached set is
// older than the staleness window. Returns true when a network call was
// actually made. Concurrent calls for the same attraction collapse: the
// second caller returns immediately and reads the cache as-is.
func (e *ReviewEngine) SyncForAttraction(ctx context.Context, attractionID string) (bool, error) {
	state, err := e.metadata.GetParentSyncState(ctx, attractionID)
	if err != nil && !errors.Is(err, storage.ErrWatermarkNotFound) {
		return false, fmt.Errorf("failed to read parent sync state: %w", err)
	}
	if state != nil && time.Now().Unix()-state.LastSyncedAt < int64(reviewStaleness.Seconds()) {
		return false, nil
	}

	if !e.tryAcquire(attractionID) {
		return false, nil
	}
	defer e.release(attractionID)

	if err := e.syncParent(ctx, attractionID, state); err != nil {
		return false, err
	}
	return true, nil
}

// ForceRefresh syncs one attraction's reviews ignoring the staleness
// window (pull-to-refresh).
func (e *ReviewEngine) ForceRefresh(ctx context.Context, attractionID string) error {
	if !e.tryAcquire(attractionID) {
		return nil
	}
	defer e.release(attractionID)

	state, err := e.metadata.GetParentSyncState(ctx, attractionID)
	if err != nil && !errors.Is(err, storage.ErrWatermarkNotFound) {
		return fmt.Errorf("failed to read parent sync state: %w", err)
	}
	return e.syncParent(ctx, attractionID, state)
}

// syncParent does one per-attraction pass: delta since the parent's own
// watermark when one exists, full fetch otherwise. An empty delta keeps the
// watermark but still advances the freshness stamp, so a quiet attraction
// does not get re-fetched on every open.
func (e *ReviewEngine) syncParent(ctx context.Context, attractionID string, state *storage.ParentSyncState) error {
	var (
		fetched []pkgapi.Review
		err     error
	)
	if state != nil && !state.Watermark.IsZero() {
		fetched, err = e.api.FetchAttractionReviewsSince(ctx, attractionID, state.Watermark)
	} else {
		fetched, err = e.api.FetchAttractionReviews(ctx, attractionID)
	}
	if err != nil {
		return err
	}

	if _, err := e.mergeReviews(ctx, fetched); err != nil {
		return err
	}

	next := storage.ParentSyncState{LastSyncedAt: time.Now().Unix()}
	if state != nil {
		next.Watermark = state.Watermark
	}
	if max := maxReviewUpdatedAt(fetched); !max.IsZero() && max.After(next.Watermark) {
		next.Watermark = max
	}
	if err := e.metadata.SaveParentSyncState(ctx, attractionID, &next); err != nil {
		return fmt.Errorf("failed to persist parent sync state: %w", err)
	}

	e.logger.Debug("attraction reviews synced",
		"attraction_id", attractionID, "fetched", len(fetched))
	return nil
}

// bulkReplace seeds an empty cache with a full fetch. With nothing local
// there is nothing to carry forward, so a wholesale replace is safe and
// saves one read per row.
func (e *ReviewEngine) bulkReplace(ctx context.Context) (int, error) {
	fetched, err := e.api.FetchReviews(ctx)
	if err != nil {
		return 0, err
	}

	userID := e.userID()
	rows := make([]*storage.Review, 0, len(fetched))
	for _, wire := range fetched {
		row := reviewFromWire(wire)
		row.IsMine = userID != "" && wire.UserID == userID
		rows = append(rows, row)
	}
	if err := e.reviews.ReplaceAllReviews(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to replace reviews: %w", err)
	}

	if err := e.advanceWatermark(ctx, fetched); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (e *ReviewEngine) mergeAndAdvance(ctx context.Context, fetched []pkgapi.Review) (int, error) {
	written, err := e.mergeReviews(ctx, fetched)
	if err != nil {
		return 0, err
	}
	if err := e.advanceWatermark(ctx, fetched); err != nil {
		return 0, err
	}
	return written, nil
}

func (e *ReviewEngine) advanceWatermark(ctx context.Context, fetched []pkgapi.Review) error {
	next := maxReviewUpdatedAt(fetched)
	if next.IsZero() {
		next = time.Now().UTC()
	}
	if current, err := e.metadata.GetReviewWatermark(ctx); err == nil && next.Before(current) {
		next = current
	}
	if err := e.metadata.SaveReviewWatermark(ctx, next); err != nil {
		return fmt.Errorf("failed to persist review watermark: %w", err)
	}
	return nil
}

// mergeReviews upserts server rows, carrying forward the viewer-local
// fields from any existing rows. Lookups are batched through
// GetReviewsByIDs instead of one read per row.
func (e *ReviewEngine) mergeReviews(ctx context.Context, fetched []pkgapi.Review) (int, error) {
	if len(fetched) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(fetched))
	for _, wire := range fetched {
		ids = append(ids, wire.ID)
	}
	existing, err := e.reviews.GetReviewsByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to look up reviews: %w", err)
	}

	userID := e.userID()
	written := 0
	for _, wire := range fetched {
		row := reviewFromWire(wire)
		if prev, ok := existing[wire.ID]; ok {
			row.MyReaction = prev.MyReaction
			row.RejectionReason = prev.RejectionReason
			row.IsMine = prev.IsMine
		}
		if userID != "" && wire.UserID == userID {
			row.IsMine = true
		}
		if err := e.reviews.SaveReview(ctx, row); err != nil {
			return written, fmt.Errorf("failed to save review %s: %w", wire.ID, err)
		}
		written++
	}
	return written, nil
}

func (e *ReviewEngine) tryAcquire(attractionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.inflight[attractionID]; busy {
		return false
	}
	e.inflight[attractionID] = struct{}{}
	return true
}

func (e *ReviewEngine) release(attractionID string) {
	e.mu.Lock()
	delete(e.inflight, attractionID)
	e.mu.Unlock()
}

func (e *ReviewEngine) userID() string {
	if e.identity == nil {
		return ""
	}
	return e.identity.UserID()
}

func reviewFromWire(wire pkgapi.Review) *storage.Review {
	return &storage.Review{
		ID:           wire.ID,
		AttractionID: wire.AttractionID,
		UserID:       wire.UserID,
		AuthorName:   wire.AuthorName,
		Text:         wire.Text,
		Status:       wire.Status,
		Rating:       wire.Rating,
		LikeCount:    wire.LikeCount,
		DislikeCount: wire.DislikeCount,
		CreatedAt:    wire.CreatedAt.Time,
		UpdatedAt:    wire.UpdatedAt.Time,
	}
}

func maxReviewUpdatedAt(fetched []pkgapi.Review) time.Time {
	var max time.Time
	for _, wire := range fetched {
		if wire.UpdatedAt.After(max) {
			max = wire.UpdatedAt.Time
		}
	}
	return max
}
