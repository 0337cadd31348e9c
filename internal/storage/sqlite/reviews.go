package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/cityguide/internal/storage"
)

// Compile-time check that Storage implements ReviewStorage
var _ storage.ReviewStorage = (*Storage)(nil)

// idChunkSize bounds the number of bind parameters per IN (...) query.
// SQLite's default variable limit is 999; 500 leaves headroom.
const idChunkSize = 500

const reviewColumns = `id, attraction_id, user_id, author_name, text, status,
       rating, like_count, dislike_count, created_at, updated_at,
       my_reaction, rejection_reason, is_mine`

// SaveReview inserts or replaces a review row by id.
func (s *Storage) SaveReview(ctx context.Context, review *storage.Review) error {
	query := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			attraction_id = excluded.attraction_id,
			user_id = excluded.user_id,
			author_name = excluded.author_name,
			text = excluded.text,
			status = excluded.status,
			rating = excluded.rating,
			like_count = excluded.like_count,
			dislike_count = excluded.dislike_count,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			my_reaction = excluded.my_reaction,
			rejection_reason = excluded.rejection_reason,
			is_mine = excluded.is_mine
	`

	if _, err := s.db.ExecContext(ctx, query, reviewArgs(review)...); err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	return nil
}

// GetReview retrieves a review by id.
func (s *Storage) GetReview(ctx context.Context, id string) (*storage.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = ?`

	review, err := scanReview(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return review, nil
}

// GetReviewsByIDs returns the subset of ids present locally, keyed by id.
// The lookup is chunked so one call never exceeds the bind-parameter limit,
// regardless of how many ids a sync batch carries.
func (s *Storage) GetReviewsByIDs(ctx context.Context, ids []string) (map[string]*storage.Review, error) {
	result := make(map[string]*storage.Review, len(ids))

	for start := 0; start < len(ids); start += idChunkSize {
		end := start + idChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")
		query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id IN (` + placeholders + `)`

		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}

		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to query reviews by ids: %w", err)
		}

		for rows.Next() {
			review, err := scanReview(rows)
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan review: %w", err)
			}
			result[review.ID] = review
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to iterate reviews: %w", err)
		}
		rows.Close()
	}

	return result, nil
}

// ListReviewsByAttraction returns all cached reviews for one attraction,
// newest first.
func (s *Storage) ListReviewsByAttraction(ctx context.Context, attractionID string) ([]*storage.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE attraction_id = ? ORDER BY created_at DESC`
	return s.queryReviews(ctx, query, attractionID)
}

// ListReviewsByAuthor returns all cached reviews owned by the given user.
func (s *Storage) ListReviewsByAuthor(ctx context.Context, userID string) ([]*storage.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = ? ORDER BY created_at DESC`
	return s.queryReviews(ctx, query, userID)
}

// DeleteReview removes a row.
func (s *Storage) DeleteReview(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrReviewNotFound
	}
	return nil
}

// ReplaceAllReviews purges the table and inserts the given rows in one
// transaction.
func (s *Storage) ReplaceAllReviews(ctx context.Context, reviews []*storage.Review) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reviews`); err != nil {
		return fmt.Errorf("failed to purge reviews: %w", err)
	}

	insert := `
		INSERT INTO reviews (` + reviewColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	for _, review := range reviews {
		if _, err := tx.ExecContext(ctx, insert, reviewArgs(review)...); err != nil {
			return fmt.Errorf("failed to insert review %s: %w", review.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// SetReaction stores the viewer's reaction for a review.
func (s *Storage) SetReaction(ctx context.Context, id string, reaction string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE reviews SET my_reaction = ? WHERE id = ?`, reaction, id)
	if err != nil {
		return fmt.Errorf("failed to set reaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return storage.ErrReviewNotFound
	}
	return nil
}

// CountReviews returns the number of cached reviews.
func (s *Storage) CountReviews(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

func (s *Storage) queryReviews(ctx context.Context, query string, args ...any) ([]*storage.Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*storage.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return reviews, nil
}

func reviewArgs(review *storage.Review) []any {
	return []any{
		review.ID,
		review.AttractionID,
		review.UserID,
		review.AuthorName,
		review.Text,
		review.Status,
		review.Rating,
		review.LikeCount,
		review.DislikeCount,
		review.CreatedAt.Unix(),
		review.UpdatedAt.Unix(),
		review.MyReaction,
		review.RejectionReason,
		boolToInt(review.IsMine),
	}
}

func scanReview(row rowScanner) (*storage.Review, error) {
	review := &storage.Review{}
	var isMine int
	var createdAt, updatedAt int64

	err := row.Scan(
		&review.ID,
		&review.AttractionID,
		&review.UserID,
		&review.AuthorName,
		&review.Text,
		&review.Status,
		&review.Rating,
		&review.LikeCount,
		&review.DislikeCount,
		&createdAt,
		&updatedAt,
		&review.MyReaction,
		&review.RejectionReason,
		&isMine,
	)
	if err != nil {
		return nil, err
	}

	review.IsMine = isMine != 0
	review.CreatedAt = time.Unix(createdAt, 0).UTC()
	review.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return review, nil
}
