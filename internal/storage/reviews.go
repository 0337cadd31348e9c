package storage

import (
	"context"
	"time"
)

// Reaction values for the viewer's own reaction to a review.
const (
	ReactionNone    = ""
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Review is the locally cached review row.
// MyReaction, IsMine and RejectionReason are local-only: the public read
// payload does not carry per-viewer state, so these fields must survive any
// bulk overwrite from server data.
type Review struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ID              string
	AttractionID    string
	UserID          string
	AuthorName      string
	Text            string
	Status          string
	RejectionReason string
	MyReaction      string
	Rating          int
	LikeCount       int
	DislikeCount    int
	IsMine          bool
}

//go:generate moq -out reviews_mock.go . ReviewStorage

// ReviewStorage defines the local cache interface for reviews.
type ReviewStorage interface {
	// SaveReview inserts or replaces a review row by id
	SaveReview(ctx context.Context, review *Review) error

	// GetReview retrieves a review by id
	// Returns ErrReviewNotFound if the row doesn't exist
	GetReview(ctx context.Context, id string) (*Review, error)

	// GetReviewsByIDs returns the subset of the given ids that exist locally,
	// keyed by id. Implementations chunk the lookup to respect bind-parameter
	// limits of the embedded database.
	GetReviewsByIDs(ctx context.Context, ids []string) (map[string]*Review, error)

	// ListReviewsByAttraction returns all cached reviews for one attraction
	ListReviewsByAttraction(ctx context.Context, attractionID string) ([]*Review, error)

	// ListReviewsByAuthor returns all cached reviews owned by the given user
	ListReviewsByAuthor(ctx context.Context, userID string) ([]*Review, error)

	// DeleteReview removes a row (tombstone application)
	// Returns ErrReviewNotFound if the row doesn't exist
	DeleteReview(ctx context.Context, id string) error

	// ReplaceAllReviews purges the table and inserts the given rows in a
	// single transaction. Used only when the table is empty or on force full
	// sync; the delta path upserts without truncating.
	ReplaceAllReviews(ctx context.Context, reviews []*Review) error

	// SetReaction stores the viewer's reaction for a review
	// Returns ErrReviewNotFound if the row doesn't exist
	SetReaction(ctx context.Context, id string, reaction string) error

	// CountReviews returns the number of cached reviews
	CountReviews(ctx context.Context) (int, error)
}
