package boltdb

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.etcd.io/bbolt"

	"github.com/iudanet/cityguide/internal/storage"
)

const (
	keyCatalogWatermark  = "catalog_watermark"
	keyReviewWatermark   = "review_watermark"
	parentStateKeyPrefix = "review_parent_state:"
)

// Compile-time check that Storage implements MetadataStorage
var _ storage.MetadataStorage = (*Storage)(nil)

// SaveCatalogWatermark persists the catalog sync watermark.
func (s *Storage) SaveCatalogWatermark(ctx context.Context, watermark time.Time) error {
	return s.saveWatermark(keyCatalogWatermark, watermark)
}

// GetCatalogWatermark retrieves the catalog sync watermark.
func (s *Storage) GetCatalogWatermark(ctx context.Context) (time.Time, error) {
	return s.getWatermark(keyCatalogWatermark)
}

// SaveReviewWatermark persists the global review sync watermark.
func (s *Storage) SaveReviewWatermark(ctx context.Context, watermark time.Time) error {
	return s.saveWatermark(keyReviewWatermark, watermark)
}

// GetReviewWatermark retrieves the global review sync watermark.
func (s *Storage) GetReviewWatermark(ctx context.Context) (time.Time, error) {
	return s.getWatermark(keyReviewWatermark)
}

// SaveParentSyncState persists per-attraction review sync state.
func (s *Storage) SaveParentSyncState(ctx context.Context, attractionID string, state *storage.ParentSyncState) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data, err := json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal parent sync state: %w", err)
		}

		key := []byte(parentStateKeyPrefix + attractionID)
		if err := bucket.Put(key, data); err != nil {
			return fmt.Errorf("failed to save parent sync state: %w", err)
		}
		return nil
	})
}

// GetParentSyncState retrieves per-attraction review sync state.
func (s *Storage) GetParentSyncState(ctx context.Context, attractionID string) (*storage.ParentSyncState, error) {
	var state *storage.ParentSyncState

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(parentStateKeyPrefix + attractionID))
		if data == nil {
			return storage.ErrWatermarkNotFound
		}

		state = &storage.ParentSyncState{}
		if err := json.Unmarshal(data, state); err != nil {
			return fmt.Errorf("failed to unmarshal parent sync state: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Watermarks are stored as RFC3339 strings so the database stays
// inspectable with bbolt's CLI tooling.
func (s *Storage) saveWatermark(key string, watermark time.Time) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		value := watermark.UTC().Format(time.RFC3339Nano)
		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save watermark: %w", err)
		}
		return nil
	})
}

func (s *Storage) getWatermark(key string) (time.Time, error) {
	var watermark time.Time

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrWatermarkNotFound
		}

		parsed, err := time.Parse(time.RFC3339Nano, string(data))
		if err != nil {
			return fmt.Errorf("failed to parse watermark: %w", err)
		}
		watermark = parsed
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}

	return watermark, nil
}
