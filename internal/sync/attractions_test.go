package sync

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/storage"
	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

// catalogFixture wires a CatalogStorageMock around an in-memory map.
type catalogFixture struct {
	mock *storage.CatalogStorageMock
	rows map[string]*storage.Attraction
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{rows: make(map[string]*storage.Attraction)}
	f.mock = &storage.CatalogStorageMock{
		SaveAttractionFunc: func(ctx context.Context, attraction *storage.Attraction) error {
			clone := *attraction
			f.rows[attraction.ID] = &clone
			return nil
		},
		GetAttractionFunc: func(ctx context.Context, id string) (*storage.Attraction, error) {
			row, ok := f.rows[id]
			if !ok {
				return nil, storage.ErrAttractionNotFound
			}
			clone := *row
			return &clone, nil
		},
		ListFavoriteIDsFunc: func(ctx context.Context) ([]string, error) {
			var ids []string
			for id, row := range f.rows {
				if row.IsFavorite {
					ids = append(ids, id)
				}
			}
			sort.Strings(ids)
			return ids, nil
		},
		DeleteAttractionFunc: func(ctx context.Context, id string) error {
			if _, ok := f.rows[id]; !ok {
				return storage.ErrAttractionNotFound
			}
			delete(f.rows, id)
			return nil
		},
		ReplaceAllAttractionsFunc: func(ctx context.Context, attractions []*storage.Attraction) error {
			f.rows = make(map[string]*storage.Attraction, len(attractions))
			for _, a := range attractions {
				clone := *a
				f.rows[a.ID] = &clone
			}
			return nil
		},
		CountAttractionsFunc: func(ctx context.Context) (int, error) {
			return len(f.rows), nil
		},
	}
	return f
}

// metadataFixture wires a MetadataStorageMock around in-memory watermarks.
type metadataFixture struct {
	mock       *storage.MetadataStorageMock
	catalog    time.Time
	hasCatalog bool
}

func newMetadataFixture() *metadataFixture {
	f := &metadataFixture{}
	f.mock = &storage.MetadataStorageMock{
		GetCatalogWatermarkFunc: func(ctx context.Context) (time.Time, error) {
			if !f.hasCatalog {
				return time.Time{}, storage.ErrWatermarkNotFound
			}
			return f.catalog, nil
		},
		SaveCatalogWatermarkFunc: func(ctx context.Context, watermark time.Time) error {
			f.catalog = watermark
			f.hasCatalog = true
			return nil
		},
	}
	return f
}

func wireAttraction(id, name string, updatedAt time.Time) pkgapi.Attraction {
	return pkgapi.Attraction{
		ID:          id,
		Name:        name,
		Category:    "museum",
		IsPublished: true,
		UpdatedAt:   pkgapi.Timestamp{Time: updatedAt},
	}
}

func TestAttractionEngine_FirstSyncFetchesEverything(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsFunc: func(ctx context.Context) ([]pkgapi.Attraction, error) {
			return []pkgapi.Attraction{
				wireAttraction("a1", "Museum", base),
				wireAttraction("a2", "Park", base.Add(time.Minute)),
				wireAttraction("a3", "Bridge", base.Add(2*time.Minute)),
			}, nil
		},
	}
	catalog := newCatalogFixture()
	metadata := newMetadataFixture()

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, 3, result.Added)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Deleted)

	// No tombstone call on the first sync.
	assert.Empty(t, mockAPI.FetchTombstonesSinceCalls())

	// Watermark lands on the newest fetched row.
	require.True(t, metadata.hasCatalog)
	assert.Equal(t, base.Add(2*time.Minute), metadata.catalog)
}

func TestAttractionEngine_DeltaSyncPreservesFavorites(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	catalog.rows["a1"] = &storage.Attraction{ID: "a1", Name: "Old Name", IsFavorite: true}

	metadata := newMetadataFixture()
	metadata.catalog = base
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			assert.Equal(t, base, since)
			return []pkgapi.Attraction{wireAttraction("a1", "New Name", base.Add(time.Hour))}, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			assert.Equal(t, pkgapi.EntityTypeAttraction, entityType)
			return nil, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, 0, result.Added)
	assert.Equal(t, 1, result.Updated)

	row := catalog.rows["a1"]
	require.NotNil(t, row)
	assert.Equal(t, "New Name", row.Name)
	assert.True(t, row.IsFavorite, "favorite flag must survive server updates")
	assert.False(t, row.LastSyncedAt.IsZero())
}

func TestAttractionEngine_TombstoneWinsOverUpdate(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	catalog.rows["a1"] = &storage.Attraction{ID: "a1", Name: "Doomed"}

	metadata := newMetadataFixture()
	metadata.catalog = base
	metadata.hasCatalog = true

	// The same id shows up both as an update and as a tombstone in one
	// pass. The row must be gone afterwards.
	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return []pkgapi.Attraction{wireAttraction("a1", "Updated", base.Add(time.Minute))}, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return []pkgapi.Tombstone{{
				EntityType: pkgapi.EntityTypeAttraction,
				EntityID:   "a1",
				Action:     pkgapi.TombstoneActionDeleted,
				DeletedAt:  pkgapi.Timestamp{Time: base.Add(2 * time.Minute)},
			}}, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Deleted)
	assert.NotContains(t, catalog.rows, "a1")
}

func TestAttractionEngine_TombstoneForMissingRowIsIgnored(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()
	metadata.catalog = base
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return nil, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return []pkgapi.Tombstone{{
				EntityType: pkgapi.EntityTypeAttraction,
				EntityID:   "never-cached",
				Action:     pkgapi.TombstoneActionDeleted,
				DeletedAt:  pkgapi.Timestamp{Time: base.Add(time.Minute)},
			}}, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, 0, result.Deleted)
}

func TestAttractionEngine_EmptyDeltaAdvancesWatermark(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()
	metadata.catalog = base
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return nil, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return nil, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	before := time.Now().UTC()
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.False(t, metadata.catalog.Before(before), "empty batch must advance the watermark to now")
}

func TestAttractionEngine_WatermarkNeverRegresses(t *testing.T) {
	future := time.Now().UTC().Add(24 * time.Hour)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()
	metadata.catalog = future
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return nil, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return nil, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, future, metadata.catalog, "a skewed clock must not pull the watermark back")
}

func TestAttractionEngine_DeltaFallsBackToFullFetch(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()
	metadata.catalog = base
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return nil, &api.Error{Message: "boom", StatusCode: http.StatusBadGateway}
		},
		FetchAttractionsFunc: func(ctx context.Context) ([]pkgapi.Attraction, error) {
			return []pkgapi.Attraction{wireAttraction("a1", "Museum", base.Add(time.Minute))}, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return nil, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success)
	assert.Equal(t, 1, result.Added)
	assert.Len(t, mockAPI.FetchAttractionsCalls(), 1)
}

func TestAttractionEngine_NonTransientDeltaFailureIsFatal(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()
	metadata.catalog = base
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return nil, &api.Error{Message: "bad request", StatusCode: http.StatusBadRequest}
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return nil, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.Sync(context.Background())

	require.False(t, result.Success)
	assert.Equal(t, FailureClient, result.Category)
	assert.Empty(t, mockAPI.FetchAttractionsCalls(), "4xx must not trigger the full-fetch fallback")
	assert.Equal(t, base, metadata.catalog, "failed pass must not move the watermark")
}

func TestAttractionEngine_SyncIsIdempotent(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()

	batch := []pkgapi.Attraction{wireAttraction("a1", "Museum", base)}
	mockAPI := &api.ClientAPIMock{
		FetchAttractionsFunc: func(ctx context.Context) ([]pkgapi.Attraction, error) {
			return batch, nil
		},
		FetchAttractionsSinceFunc: func(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
			return batch, nil
		},
		FetchTombstonesSinceFunc: func(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
			return nil, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())

	first := engine.Sync(context.Background())
	require.True(t, first.Success)
	assert.Equal(t, 1, first.Added)

	// Same batch again: applied as an update, same end state.
	second := engine.Sync(context.Background())
	require.True(t, second.Success)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 1, second.Updated)
	assert.Len(t, catalog.rows, 1)
}

func TestAttractionEngine_ForceFullSyncReplacesAndKeepsFavorites(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	catalog.rows["a1"] = &storage.Attraction{ID: "a1", Name: "Stale", IsFavorite: true}
	catalog.rows["gone"] = &storage.Attraction{ID: "gone", Name: "Removed server-side"}

	metadata := newMetadataFixture()
	metadata.catalog = base.Add(time.Hour)
	metadata.hasCatalog = true

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsFunc: func(ctx context.Context) ([]pkgapi.Attraction, error) {
			return []pkgapi.Attraction{wireAttraction("a1", "Fresh", base)}, nil
		},
	}

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, nil, testLogger())
	result := engine.ForceFullSync(context.Background())

	require.True(t, result.Success)
	assert.Len(t, catalog.rows, 1)
	assert.NotContains(t, catalog.rows, "gone")
	assert.True(t, catalog.rows["a1"].IsFavorite)

	// Force full sync replaces the watermark with server state even when
	// that moves it backwards.
	assert.Equal(t, base, metadata.catalog)
}

func TestAttractionEngine_ReviewSyncIsBestEffort(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	catalog := newCatalogFixture()
	metadata := newMetadataFixture()

	mockAPI := &api.ClientAPIMock{
		FetchAttractionsFunc: func(ctx context.Context) ([]pkgapi.Attraction, error) {
			return []pkgapi.Attraction{wireAttraction("a1", "Museum", base)}, nil
		},
	}

	bulkCalls := 0
	failing := bulkSyncFunc(func(ctx context.Context) (int, error) {
		bulkCalls++
		return 0, errors.New("reviews are down")
	})

	engine := NewAttractionEngine(mockAPI, catalog.mock, metadata.mock, failing, testLogger())
	result := engine.Sync(context.Background())

	require.True(t, result.Success, "review failure must not fail the catalog sync")
	assert.Equal(t, 1, bulkCalls)
}

type bulkSyncFunc func(ctx context.Context) (int, error)

func (f bulkSyncFunc) BulkSync(ctx context.Context) (int, error) { return f(ctx) }
