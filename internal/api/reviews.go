package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

const (
	reviewsPath   = "/rest/v1/reviews"
	reactionsPath = "/rest/v1/review_reactions"
)

// FetchReviews retrieves the full review set visible to this client.
func (c *Client) FetchReviews(ctx context.Context) ([]pkgapi.Review, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "updated_at.asc")

	var reviews []pkgapi.Review
	if err := c.doRequest(ctx, http.MethodGet, reviewsPath, params, nil, &reviews, false); err != nil {
		return nil, fmt.Errorf("fetch reviews failed: %w", err)
	}
	return reviews, nil
}

// FetchReviewsSince retrieves reviews modified after the given watermark,
// across all attractions.
func (c *Client) FetchReviewsSince(ctx context.Context, since time.Time) ([]pkgapi.Review, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("updated_at", "gt."+pkgapi.FormatTimestamp(since))
	params.Set("order", "updated_at.asc")

	var reviews []pkgapi.Review
	if err := c.doRequest(ctx, http.MethodGet, reviewsPath, params, nil, &reviews, false); err != nil {
		return nil, fmt.Errorf("fetch reviews delta failed: %w", err)
	}
	return reviews, nil
}

// FetchAttractionReviews retrieves all reviews of one attraction.
func (c *Client) FetchAttractionReviews(ctx context.Context, attractionID string) ([]pkgapi.Review, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("attraction_id", "eq."+attractionID)
	params.Set("order", "updated_at.asc")

	var reviews []pkgapi.Review
	if err := c.doRequest(ctx, http.MethodGet, reviewsPath, params, nil, &reviews, false); err != nil {
		return nil, fmt.Errorf("fetch attraction reviews failed: %w", err)
	}
	return reviews, nil
}

// FetchAttractionReviewsSince retrieves reviews of one attraction modified
// after the given watermark.
func (c *Client) FetchAttractionReviewsSince(ctx context.Context, attractionID string, since time.Time) ([]pkgapi.Review, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("attraction_id", "eq."+attractionID)
	params.Set("updated_at", "gt."+pkgapi.FormatTimestamp(since))
	params.Set("order", "updated_at.asc")

	var reviews []pkgapi.Review
	if err := c.doRequest(ctx, http.MethodGet, reviewsPath, params, nil, &reviews, false); err != nil {
		return nil, fmt.Errorf("fetch attraction reviews delta failed: %w", err)
	}
	return reviews, nil
}

// SubmitReview creates a review on behalf of the signed-in user and returns
// the stored row. Authenticated.
func (c *Client) SubmitReview(ctx context.Context, req pkgapi.SubmitReviewRequest) (*pkgapi.Review, error) {
	var rows []pkgapi.Review
	if err := c.doRequest(ctx, http.MethodPost, reviewsPath, nil, req, &rows, true); err != nil {
		return nil, fmt.Errorf("submit review failed: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("submit review: empty response")
	}
	return &rows[0], nil
}

// reactionRequest is the upsert payload for the viewer's reaction.
type reactionRequest struct {
	ReviewID string `json:"review_id"`
	Reaction string `json:"reaction"`
}

// SubmitReaction stores the signed-in user's reaction to a review.
// Authenticated; the server keys the row on (review_id, user_id).
func (c *Client) SubmitReaction(ctx context.Context, reviewID, reaction string) error {
	params := url.Values{}
	params.Set("on_conflict", "review_id,user_id")

	req := reactionRequest{ReviewID: reviewID, Reaction: reaction}
	if err := c.doRequest(ctx, http.MethodPost, reactionsPath, params, req, nil, true); err != nil {
		return fmt.Errorf("submit reaction failed: %w", err)
	}
	return nil
}
