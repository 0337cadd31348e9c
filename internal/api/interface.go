package api

import (
	"context"
	"time"

	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI defines the backend surface the rest of the client depends on.
// The sync engines and the token manager work against this interface so
// tests can substitute a mock.
type ClientAPI interface {
	// Catalog
	FetchAttractions(ctx context.Context) ([]pkgapi.Attraction, error)
	FetchAttractionsSince(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error)
	FetchTombstonesSince(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error)

	// Reviews
	FetchReviews(ctx context.Context) ([]pkgapi.Review, error)
	FetchReviewsSince(ctx context.Context, since time.Time) ([]pkgapi.Review, error)
	FetchAttractionReviews(ctx context.Context, attractionID string) ([]pkgapi.Review, error)
	FetchAttractionReviewsSince(ctx context.Context, attractionID string, since time.Time) ([]pkgapi.Review, error)
	SubmitReview(ctx context.Context, req pkgapi.SubmitReviewRequest) (*pkgapi.Review, error)
	SubmitReaction(ctx context.Context, reviewID, reaction string) error

	// Auth (API key only, never bearer-authenticated)
	SignIn(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	SignUp(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*pkgapi.TokenResponse, error)
	RecoverPassword(ctx context.Context, email string) error

	// Health probe for the reachability monitor
	Health(ctx context.Context) error
}

// Compile-time check that Client implements ClientAPI
var _ ClientAPI = (*Client)(nil)
