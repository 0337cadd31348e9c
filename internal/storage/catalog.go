package storage

import (
	"context"
	"time"
)

// Attraction is the locally cached catalog record.
// IsFavorite and LastSyncedAt are local-only: they are never sent to the
// server and must never be overwritten by server data. Every merge from the
// server carries them forward from the existing local row.
type Attraction struct {
	UpdatedAt    time.Time
	LastSyncedAt time.Time
	ID           string
	Name         string
	Description  string
	Category     string
	Address      string
	ImageURL     string
	Latitude     float64
	Longitude    float64
	Rating       float64
	IsPublished  bool
	IsFavorite   bool
}

//go:generate moq -out catalog_mock.go . CatalogStorage

// CatalogStorage defines the local cache interface for catalog records.
type CatalogStorage interface {
	// SaveAttraction inserts or replaces an attraction row by id
	SaveAttraction(ctx context.Context, attraction *Attraction) error

	// GetAttraction retrieves an attraction by id
	// Returns ErrAttractionNotFound if the row doesn't exist
	GetAttraction(ctx context.Context, id string) (*Attraction, error)

	// ListAttractions returns all cached attractions
	ListAttractions(ctx context.Context) ([]*Attraction, error)

	// ListFavoriteIDs returns ids of all attractions marked as favorite
	// Used to snapshot favorites before a sync pass
	ListFavoriteIDs(ctx context.Context) ([]string, error)

	// SetFavorite flips the local-only favorite flag
	// Returns ErrAttractionNotFound if the row doesn't exist
	SetFavorite(ctx context.Context, id string, favorite bool) error

	// DeleteAttraction removes a row (tombstone application)
	// Returns ErrAttractionNotFound if the row doesn't exist
	DeleteAttraction(ctx context.Context, id string) error

	// ReplaceAllAttractions purges the table and inserts the given rows in a
	// single transaction. Used by force full sync.
	ReplaceAllAttractions(ctx context.Context, attractions []*Attraction) error

	// CountAttractions returns the number of cached attractions
	CountAttractions(ctx context.Context) (int, error)
}
