package sync

import (
	"errors"

	"github.com/iudanet/cityguide/internal/api"
	"github.com/iudanet/cityguide/internal/auth"
)

// FailureCategory is the user-facing classification of a failed operation.
// Callers translate categories into display messages; the raw error is kept
// for logs only.
type FailureCategory string

const (
	FailureNone    FailureCategory = ""
	FailureOffline FailureCategory = "offline" // no connectivity, distinct message
	FailureNetwork FailureCategory = "network" // transient transport, retries exhausted
	FailureAuth    FailureCategory = "auth"    // session expired, re-authentication needed
	FailureClient  FailureCategory = "client"  // 4xx, not retried, surfaced verbatim
)

// Categorize maps an error to its failure category.
func Categorize(err error) FailureCategory {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, api.ErrOffline):
		return FailureOffline
	case errors.Is(err, api.ErrSessionExpired),
		errors.Is(err, auth.ErrNotAuthenticated),
		api.IsUnauthorized(err):
		return FailureAuth
	case api.IsTransient(err):
		return FailureNetwork
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
		return FailureClient
	}
	return FailureNetwork
}

// Result is the outcome of one catalog sync pass. Engines never let an
// error escape their boundary: failures come back inside the result with a
// category the caller can show.
type Result struct {
	Err      error
	Category FailureCategory
	Added    int
	Updated  int
	Deleted  int
	Success  bool
}

func successResult(added, updated, deleted int) *Result {
	return &Result{Added: added, Updated: updated, Deleted: deleted, Success: true}
}

func failureResult(err error) *Result {
	return &Result{Err: err, Category: Categorize(err)}
}
