package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/cityguide/internal/storage"
)

func (c *Cli) runList(ctx context.Context) error {
	attractions, err := c.catalog.ListAttractions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list attractions: %w", err)
	}

	if len(attractions) == 0 {
		fmt.Println("No cached attractions. Run 'cityguide sync' first.")
		return nil
	}

	fmt.Printf("Cached attractions (%d):\n", len(attractions))
	fmt.Println()
	for _, a := range attractions {
		marker := " "
		if a.IsFavorite {
			marker = "★"
		}
		fmt.Printf("%s %-38s %-20s %.1f  %s\n", marker, a.ID, a.Category, a.Rating, a.Name)
	}
	return nil
}

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: cityguide show <attraction-id>")
	}
	id := args[0]

	a, err := c.catalog.GetAttraction(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrAttractionNotFound) {
			return fmt.Errorf("attraction %s is not cached, run 'cityguide sync'", id)
		}
		return err
	}

	fmt.Printf("=== %s ===\n", a.Name)
	fmt.Println()
	fmt.Printf("ID:          %s\n", a.ID)
	fmt.Printf("Category:    %s\n", a.Category)
	fmt.Printf("Address:     %s\n", a.Address)
	fmt.Printf("Location:    %.6f, %.6f\n", a.Latitude, a.Longitude)
	fmt.Printf("Rating:      %.1f\n", a.Rating)
	fmt.Printf("Favorite:    %v\n", a.IsFavorite)
	fmt.Printf("Last synced: %s\n", a.LastSyncedAt.Format(time.RFC3339))
	if a.Description != "" {
		fmt.Println()
		fmt.Println(a.Description)
	}

	// Opening a detail view refreshes its reviews, throttled by the
	// staleness window. Offline or failing is fine, the cache still shows.
	if synced, err := c.reviewEngine.SyncForAttraction(ctx, id); err != nil {
		fmt.Println()
		fmt.Printf("(review refresh failed: %v)\n", err)
	} else if synced {
		fmt.Println()
		fmt.Println("(reviews refreshed)")
	}

	return c.printReviews(ctx, id)
}

func (c *Cli) runSetFavorite(ctx context.Context, args []string, favorite bool) error {
	if len(args) < 1 {
		return errors.New("usage: cityguide favorite|unfavorite <attraction-id>")
	}
	id := args[0]

	if err := c.catalog.SetFavorite(ctx, id, favorite); err != nil {
		if errors.Is(err, storage.ErrAttractionNotFound) {
			return fmt.Errorf("attraction %s is not cached, run 'cityguide sync'", id)
		}
		return err
	}

	if favorite {
		fmt.Println("✓ Marked as favorite.")
	} else {
		fmt.Println("✓ Favorite mark removed.")
	}
	return nil
}
