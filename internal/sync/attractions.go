package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/storage"
	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

// ReviewBulkSyncer is the secondary-engine hook invoked once per catalog
// sync pass. Best effort: its outcome never affects the primary result.
type ReviewBulkSyncer interface {
	BulkSync(ctx context.Context) (int, error)
}

// AttractionEngine reconciles the local catalog cache against the backend
// using a last-sync watermark and the tombstone feed.
//
// Crash consistency: the watermark is persisted only after every row
// mutation of the pass succeeded. A re-run after a partial failure redoes a
// superset of the work, and every step is an idempotent upsert or delete.
type AttractionEngine struct {
	api      api.ClientAPI
	catalog  storage.CatalogStorage
	metadata storage.MetadataStorage
	reviews  ReviewBulkSyncer
	logger   *slog.Logger
}

// NewAttractionEngine creates the primary delta sync engine.
// reviews may be nil when review syncing is disabled.
func NewAttractionEngine(client api.ClientAPI, catalog storage.CatalogStorage, metadata storage.MetadataStorage, reviews ReviewBulkSyncer, logger *slog.Logger) *AttractionEngine {
	return &AttractionEngine{
		api:      client,
		catalog:  catalog,
		metadata: metadata,
		reviews:  reviews,
		logger:   logger,
	}
}

// Sync performs a delta sync, or a full one if no watermark exists yet.
func (e *AttractionEngine) Sync(ctx context.Context) *Result {
	watermark, err := e.metadata.GetCatalogWatermark(ctx)
	firstSync := false
	if err != nil {
		if !errors.Is(err, storage.ErrWatermarkNotFound) {
			return failureResult(fmt.Errorf("failed to read watermark: %w", err))
		}
		firstSync = true
	}

	// Snapshot favorites before touching rows, so an insert that races a
	// favorite toggle still seeds the flag correctly.
	favorites, err := e.favoriteSet(ctx)
	if err != nil {
		return failureResult(err)
	}

	var (
		fetched    []pkgapi.Attraction
		tombstones []pkgapi.Tombstone
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if firstSync {
			all, err := e.api.FetchAttractions(gctx)
			if err != nil {
				return err
			}
			fetched = all
			return nil
		}

		delta, err := e.api.FetchAttractionsSince(gctx, watermark)
		if err != nil {
			if !api.IsTransient(err) {
				return err
			}
			// One fallback to a full fetch; the merge below is an upsert
			// either way, so a full batch is just more of the same work.
			e.logger.Warn("delta fetch failed, falling back to full fetch", "error", err)
			all, fullErr := e.api.FetchAttractions(gctx)
			if fullErr != nil {
				return fullErr
			}
			fetched = all
			return nil
		}
		fetched = delta
		return nil
	})
	if !firstSync {
		// On a first sync there is nothing local to delete yet.
		g.Go(func() error {
			rows, err := e.api.FetchTombstonesSince(gctx, pkgapi.EntityTypeAttraction, watermark)
			if err != nil {
				return err
			}
			tombstones = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return failureResult(err)
	}

	added, updated, err := e.mergeAttractions(ctx, fetched, favorites)
	if err != nil {
		return failureResult(err)
	}

	deleted := 0
	for _, tombstone := range tombstones {
		if err := e.catalog.DeleteAttraction(ctx, tombstone.EntityID); err != nil {
			if errors.Is(err, storage.ErrAttractionNotFound) {
				continue
			}
			return failureResult(fmt.Errorf("failed to apply tombstone: %w", err))
		}
		deleted++
	}

	next := nextWatermark(fetched, watermark)
	if err := e.metadata.SaveCatalogWatermark(ctx, next); err != nil {
		return failureResult(fmt.Errorf("failed to persist watermark: %w", err))
	}

	e.logger.Info("catalog sync completed",
		"added", added, "updated", updated, "deleted", deleted,
		"watermark", next)

	e.syncReviewsBestEffort(ctx)

	return successResult(added, updated, deleted)
}

// ForceFullSync discards the delta state: it fetches the entire catalog,
// replaces the local set wholesale (favorites preserved via the snapshot)
// and overwrites the watermark with the server's state.
func (e *AttractionEngine) ForceFullSync(ctx context.Context) *Result {
	favorites, err := e.favoriteSet(ctx)
	if err != nil {
		return failureResult(err)
	}

	fetched, err := e.api.FetchAttractions(ctx)
	if err != nil {
		return failureResult(err)
	}

	now := time.Now().UTC()
	rows := make([]*storage.Attraction, 0, len(fetched))
	for _, wire := range fetched {
		row := attractionFromWire(wire)
		row.IsFavorite = favorites[wire.ID]
		row.LastSyncedAt = now
		rows = append(rows, row)
	}

	if err := e.catalog.ReplaceAllAttractions(ctx, rows); err != nil {
		return failureResult(fmt.Errorf("failed to replace catalog: %w", err))
	}

	next := maxUpdatedAt(fetched)
	if next.IsZero() {
		next = now
	}
	if err := e.metadata.SaveCatalogWatermark(ctx, next); err != nil {
		return failureResult(fmt.Errorf("failed to persist watermark: %w", err))
	}

	e.logger.Info("catalog full sync completed", "rows", len(rows), "watermark", next)

	e.syncReviewsBestEffort(ctx)

	return successResult(len(rows), 0, 0)
}

// mergeAttractions upserts fetched records. Server-owned fields are
// replaced; local-only fields are carried forward from the existing row, or
// seeded from the pre-sync favorite snapshot for new rows.
func (e *AttractionEngine) mergeAttractions(ctx context.Context, fetched []pkgapi.Attraction, favorites map[string]bool) (added, updated int, err error) {
	now := time.Now().UTC()

	for _, wire := range fetched {
		row := attractionFromWire(wire)
		row.LastSyncedAt = now

		existing, err := e.catalog.GetAttraction(ctx, wire.ID)
		switch {
		case err == nil:
			row.IsFavorite = existing.IsFavorite
			if err := e.catalog.SaveAttraction(ctx, row); err != nil {
				return added, updated, fmt.Errorf("failed to update attraction %s: %w", wire.ID, err)
			}
			updated++
		case errors.Is(err, storage.ErrAttractionNotFound):
			row.IsFavorite = favorites[wire.ID]
			if err := e.catalog.SaveAttraction(ctx, row); err != nil {
				return added, updated, fmt.Errorf("failed to insert attraction %s: %w", wire.ID, err)
			}
			added++
		default:
			return added, updated, fmt.Errorf("failed to look up attraction %s: %w", wire.ID, err)
		}
	}

	return added, updated, nil
}

func (e *AttractionEngine) favoriteSet(ctx context.Context) (map[string]bool, error) {
	ids, err := e.catalog.ListFavoriteIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot favorites: %w", err)
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func (e *AttractionEngine) syncReviewsBestEffort(ctx context.Context) {
	if e.reviews == nil {
		return
	}
	if count, err := e.reviews.BulkSync(ctx); err != nil {
		e.logger.Warn("review bulk sync failed", "error", err)
	} else {
		e.logger.Debug("review bulk sync completed", "changed", count)
	}
}

func attractionFromWire(wire pkgapi.Attraction) *storage.Attraction {
	return &storage.Attraction{
		ID:          wire.ID,
		Name:        wire.Name,
		Description: wire.Description,
		Category:    wire.Category,
		Address:     wire.Address,
		ImageURL:    wire.ImageURL,
		Latitude:    wire.Latitude,
		Longitude:   wire.Longitude,
		Rating:      wire.Rating,
		IsPublished: wire.IsPublished,
		UpdatedAt:   wire.UpdatedAt.Time,
	}
}

// nextWatermark advances to the maximum updatedAt of the batch, or to the
// current wall clock when the batch is empty so the next delta call has a
// valid starting point. It never regresses below the current value.
func nextWatermark(fetched []pkgapi.Attraction, current time.Time) time.Time {
	next := maxUpdatedAt(fetched)
	if next.IsZero() {
		next = time.Now().UTC()
	}
	if next.Before(current) {
		return current
	}
	return next
}

func maxUpdatedAt(fetched []pkgapi.Attraction) time.Time {
	var max time.Time
	for _, wire := range fetched {
		if wire.UpdatedAt.After(max) {
			max = wire.UpdatedAt.Time
		}
	}
	return max
}
