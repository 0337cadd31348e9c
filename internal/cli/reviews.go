package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/cityguide/internal/storage"
	pkgapi "github.com/iudanet/cityguide/pkg/api"
)

func (c *Cli) runReviews(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cityguide reviews <attraction-id>")
	}
	id := args[0]

	if _, err := c.reviewEngine.SyncForAttraction(ctx, id); err != nil {
		fmt.Printf("(review refresh failed: %v)\n", err)
	}
	return c.printReviews(ctx, id)
}

func (c *Cli) runRefreshReviews(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cityguide refresh-reviews <attraction-id>")
	}
	id := args[0]

	if err := c.reviewEngine.ForceRefresh(ctx, id); err != nil {
		return fmt.Errorf("failed to refresh reviews: %w", err)
	}
	fmt.Println("✓ Reviews refreshed.")
	return c.printReviews(ctx, id)
}

func (c *Cli) runMyReviews(ctx context.Context) error {
	userID := c.authManager.UserID()
	if userID == "" {
		return errors.New("not authenticated, run 'cityguide login' first")
	}

	reviews, err := c.reviews.ListReviewsByAuthor(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list reviews: %w", err)
	}
	if len(reviews) == 0 {
		fmt.Println("You have no cached reviews.")
		return nil
	}

	fmt.Printf("Your reviews (%d):\n", len(reviews))
	fmt.Println()
	for _, r := range reviews {
		fmt.Printf("%s  [%s]  %d/5  attraction %s\n", r.ID, r.Status, r.Rating, r.AttractionID)
		fmt.Printf("    %s\n", r.Text)
		if r.Status == pkgapi.ReviewStatusRejected && r.RejectionReason != "" {
			fmt.Printf("    rejected: %s\n", r.RejectionReason)
		}
	}
	return nil
}

func (c *Cli) runReviewAdd(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cityguide review-add <attraction-id>")
	}
	attractionID := args[0]

	if !c.authManager.IsAuthenticated() {
		return errors.New("not authenticated, run 'cityguide login' first")
	}
	if _, err := c.catalog.GetAttraction(ctx, attractionID); err != nil {
		if errors.Is(err, storage.ErrAttractionNotFound) {
			return fmt.Errorf("attraction %s is not cached, run 'cityguide sync'", attractionID)
		}
		return err
	}

	text, err := readInput("Review text: ")
	if err != nil {
		return fmt.Errorf("failed to read review text: %w", err)
	}
	if text == "" {
		return errors.New("review text cannot be empty")
	}

	ratingInput, err := readInput("Rating (1-5): ")
	if err != nil {
		return fmt.Errorf("failed to read rating: %w", err)
	}
	rating, err := strconv.Atoi(ratingInput)
	if err != nil || rating < 1 || rating > 5 {
		return errors.New("rating must be an integer between 1 and 5")
	}

	// The id is generated here so a retried submit can't create duplicates.
	req := pkgapi.SubmitReviewRequest{
		ID:           uuid.NewString(),
		AttractionID: attractionID,
		Text:         text,
		Rating:       rating,
	}

	fmt.Println()
	fmt.Println("Submitting review...")

	created, err := c.apiClient.SubmitReview(ctx, req)
	if err != nil {
		return err
	}

	row := &storage.Review{
		ID:           created.ID,
		AttractionID: created.AttractionID,
		UserID:       created.UserID,
		AuthorName:   created.AuthorName,
		Text:         created.Text,
		Status:       created.Status,
		Rating:       created.Rating,
		CreatedAt:    created.CreatedAt.Time,
		UpdatedAt:    created.UpdatedAt.Time,
		IsMine:       true,
	}
	if err := c.reviews.SaveReview(ctx, row); err != nil {
		return fmt.Errorf("failed to cache review: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Review submitted, awaiting moderation.")
	return nil
}

func (c *Cli) runReact(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: cityguide react <review-id> <like|dislike|none>")
	}
	reviewID, reaction := args[0], args[1]

	switch reaction {
	case storage.ReactionLike, storage.ReactionDislike:
	case "none":
		reaction = storage.ReactionNone
	default:
		return errors.New("reaction must be like, dislike or none")
	}

	if !c.authManager.IsAuthenticated() {
		return errors.New("not authenticated, run 'cityguide login' first")
	}

	if err := c.apiClient.SubmitReaction(ctx, reviewID, reaction); err != nil {
		return err
	}
	if err := c.reviews.SetReaction(ctx, reviewID, reaction); err != nil {
		if errors.Is(err, storage.ErrReviewNotFound) {
			// Reaction landed on the server; the local row will pick it up
			// on the next review sync.
			fmt.Println("✓ Reaction saved.")
			return nil
		}
		return fmt.Errorf("failed to cache reaction: %w", err)
	}

	fmt.Println("✓ Reaction saved.")
	return nil
}

func (c *Cli) printReviews(ctx context.Context, attractionID string) error {
	reviews, err := c.reviews.ListReviewsByAttraction(ctx, attractionID)
	if err != nil {
		return fmt.Errorf("failed to list reviews: %w", err)
	}

	fmt.Println()
	if len(reviews) == 0 {
		fmt.Println("No cached reviews.")
		return nil
	}

	fmt.Printf("Reviews (%d):\n", len(reviews))
	for _, r := range reviews {
		marker := " "
		switch r.MyReaction {
		case storage.ReactionLike:
			marker = "▲"
		case storage.ReactionDislike:
			marker = "▼"
		}
		owner := ""
		if r.IsMine {
			owner = " (yours)"
		}
		fmt.Printf("%s %s  %d/5  +%d/-%d  %s%s\n",
			marker, r.CreatedAt.Format(time.DateOnly), r.Rating,
			r.LikeCount, r.DislikeCount, r.AuthorName, owner)
		fmt.Printf("    %s\n", r.Text)
	}
	return nil
}
