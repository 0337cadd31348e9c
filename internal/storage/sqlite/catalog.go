package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/cityguide/internal/storage"
)

// Compile-time check that Storage implements CatalogStorage
var _ storage.CatalogStorage = (*Storage)(nil)

const attractionColumns = `id, name, description, category, address, image_url,
       latitude, longitude, rating, is_published, updated_at,
       is_favorite, last_synced_at`

// SaveAttraction inserts or replaces an attraction row by id.
// Callers merge local-only fields before saving; this layer writes the row
// exactly as given.
func (s *Storage) SaveAttraction(ctx context.Context, attraction *storage.Attraction) error {
	query := `
		INSERT INTO attractions (` + attractionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			category = excluded.category,
			address = excluded.address,
			image_url = excluded.image_url,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			rating = excluded.rating,
			is_published = excluded.is_published,
			updated_at = excluded.updated_at,
			is_favorite = excluded.is_favorite,
			last_synced_at = excluded.last_synced_at
	`

	_, err := s.db.ExecContext(ctx, query,
		attraction.ID,
		attraction.Name,
		attraction.Description,
		attraction.Category,
		attraction.Address,
		attraction.ImageURL,
		attraction.Latitude,
		attraction.Longitude,
		attraction.Rating,
		boolToInt(attraction.IsPublished),
		attraction.UpdatedAt.Unix(),
		boolToInt(attraction.IsFavorite),
		attraction.LastSyncedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to save attraction: %w", err)
	}
	return nil
}

// GetAttraction retrieves an attraction by id.
func (s *Storage) GetAttraction(ctx context.Context, id string) (*storage.Attraction, error) {
	query := `SELECT ` + attractionColumns + ` FROM attractions WHERE id = ?`

	attraction, err := scanAttraction(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrAttractionNotFound
		}
		return nil, fmt.Errorf("failed to get attraction: %w", err)
	}
	return attraction, nil
}

// ListAttractions returns all cached attractions ordered by name.
func (s *Storage) ListAttractions(ctx context.Context) ([]*storage.Attraction, error) {
	query := `SELECT ` + attractionColumns + ` FROM attractions ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list attractions: %w", err)
	}
	defer rows.Close()

	var attractions []*storage.Attraction
	for rows.Next() {
		attraction, err := scanAttraction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attraction: %w", err)
		}
		attractions = append(attractions, attraction)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attractions: %w", err)
	}
	return attractions, nil
}

// ListFavoriteIDs returns ids of all favorite attractions.
func (s *Storage) ListFavoriteIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM attractions WHERE is_favorite = 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan favorite id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate favorites: %w", err)
	}
	return ids, nil
}

// SetFavorite flips the local-only favorite flag.
func (s *Storage) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE attractions SET is_favorite = ? WHERE id = ?`, boolToInt(favorite), id)
	if err != nil {
		return fmt.Errorf("failed to set favorite: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrAttractionNotFound
	}
	return nil
}

// DeleteAttraction removes a row.
func (s *Storage) DeleteAttraction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM attractions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attraction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrAttractionNotFound
	}
	return nil
}

// ReplaceAllAttractions purges the table and inserts the given rows in one
// transaction.
func (s *Storage) ReplaceAllAttractions(ctx context.Context, attractions []*storage.Attraction) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM attractions`); err != nil {
		return fmt.Errorf("failed to purge attractions: %w", err)
	}

	insert := `
		INSERT INTO attractions (` + attractionColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, attraction := range attractions {
		if _, err := tx.ExecContext(ctx, insert,
			attraction.ID,
			attraction.Name,
			attraction.Description,
			attraction.Category,
			attraction.Address,
			attraction.ImageURL,
			attraction.Latitude,
			attraction.Longitude,
			attraction.Rating,
			boolToInt(attraction.IsPublished),
			attraction.UpdatedAt.Unix(),
			boolToInt(attraction.IsFavorite),
			attraction.LastSyncedAt.Unix(),
		); err != nil {
			return fmt.Errorf("failed to insert attraction %s: %w", attraction.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// CountAttractions returns the number of cached attractions.
func (s *Storage) CountAttractions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM attractions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count attractions: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttraction(row rowScanner) (*storage.Attraction, error) {
	attraction := &storage.Attraction{}
	var isPublished, isFavorite int
	var updatedAt, lastSyncedAt int64

	err := row.Scan(
		&attraction.ID,
		&attraction.Name,
		&attraction.Description,
		&attraction.Category,
		&attraction.Address,
		&attraction.ImageURL,
		&attraction.Latitude,
		&attraction.Longitude,
		&attraction.Rating,
		&isPublished,
		&updatedAt,
		&isFavorite,
		&lastSyncedAt,
	)
	if err != nil {
		return nil, err
	}

	attraction.IsPublished = isPublished != 0
	attraction.IsFavorite = isFavorite != 0
	attraction.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	attraction.LastSyncedAt = time.Unix(lastSyncedAt, 0).UTC()
	return attraction, nil
}
