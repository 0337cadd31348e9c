package storage

import (
	"context"
	"time"
)

// ParentSyncState tracks per-attraction review sync progress: the delta
// watermark and the epoch time of the last attempt that reached the network.
// LastSyncedAt drives the staleness window; it advances even when the delta
// response is empty so repeated opens of a detail view stay off the network.
type ParentSyncState struct {
	Watermark    time.Time `json:"watermark"`
	LastSyncedAt int64     `json:"last_synced_at"` // epoch seconds
}

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines the key-value store for sync watermarks.
// Watermarks are monotonic: callers only ever advance them.
type MetadataStorage interface {
	// SaveCatalogWatermark persists the catalog sync watermark
	SaveCatalogWatermark(ctx context.Context, watermark time.Time) error

	// GetCatalogWatermark retrieves the catalog sync watermark
	// Returns ErrWatermarkNotFound before the first successful sync
	GetCatalogWatermark(ctx context.Context) (time.Time, error)

	// SaveReviewWatermark persists the global review sync watermark
	SaveReviewWatermark(ctx context.Context, watermark time.Time) error

	// GetReviewWatermark retrieves the global review sync watermark
	// Returns ErrWatermarkNotFound before the first successful bulk sync
	GetReviewWatermark(ctx context.Context) (time.Time, error)

	// SaveParentSyncState persists per-attraction review sync state
	SaveParentSyncState(ctx context.Context, attractionID string, state *ParentSyncState) error

	// GetParentSyncState retrieves per-attraction review sync state
	// Returns ErrWatermarkNotFound if the attraction was never review-synced
	GetParentSyncState(ctx context.Context, attractionID string) (*ParentSyncState, error)
}
