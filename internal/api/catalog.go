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
	attractionsPath = "/rest/v1/attractions"
	tombstonesPath  = "/rest/v1/deleted_records"
)

// FetchAttractions retrieves the full published catalog.
func (c *Client) FetchAttractions(ctx context.Context) ([]pkgapi.Attraction, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("is_published", "eq.true")
	params.Set("order", "updated_at.asc")

	var attractions []pkgapi.Attraction
	if err := c.doRequest(ctx, http.MethodGet, attractionsPath, params, nil, &attractions, false); err != nil {
		return nil, fmt.Errorf("fetch attractions failed: %w", err)
	}
	return attractions, nil
}

// FetchAttractionsSince retrieves published catalog records modified after
// the given watermark.
func (c *Client) FetchAttractionsSince(ctx context.Context, since time.Time) ([]pkgapi.Attraction, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("is_published", "eq.true")
	params.Set("updated_at", "gt."+pkgapi.FormatTimestamp(since))
	params.Set("order", "updated_at.asc")

	var attractions []pkgapi.Attraction
	if err := c.doRequest(ctx, http.MethodGet, attractionsPath, params, nil, &attractions, false); err != nil {
		return nil, fmt.Errorf("fetch attractions delta failed: %w", err)
	}
	return attractions, nil
}

// FetchTombstonesSince retrieves deleted-record markers for one entity type
// created after the given watermark.
func (c *Client) FetchTombstonesSince(ctx context.Context, entityType string, since time.Time) ([]pkgapi.Tombstone, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("entity_type", "eq."+entityType)
	params.Set("deleted_at", "gt."+pkgapi.FormatTimestamp(since))
	params.Set("order", "deleted_at.asc")

	var tombstones []pkgapi.Tombstone
	if err := c.doRequest(ctx, http.MethodGet, tombstonesPath, params, nil, &tombstones, false); err != nil {
		return nil, fmt.Errorf("fetch tombstones failed: %w", err)
	}
	return tombstones, nil
}
