package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker/v2"
)

// ErrOffline indicates the device has no network connectivity. Callers show
// a dedicated offline message instead of a generic failure.
var ErrOffline = errors.New("no network connectivity")

// ErrSessionExpired indicates the refresh credential is definitively invalid
// and the user must re-authenticate.
var ErrSessionExpired = errors.New("session expired, please sign in again")

// Error is a non-2xx response from the backend.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is an auth rejection (401/403) eligible
// for the reactive refresh-and-retry path.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
	}
	return false
}

// IsTransient reports whether err belongs to the idempotent-safe failure
// classes eligible for retry: transport failures (timeout, DNS, TLS,
// connection errors) and 5xx responses. Context cancellation, circuit
// breaker rejections and 4xx responses are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	// Anything the transport itself failed on (DNS, TLS handshake, timeouts,
	// refused connections) surfaces as a wrapped url.Error.
	var transportErr *transportError
	return errors.As(err, &transportErr)
}

// transportError wraps errors returned by http.Client.Do so that the
// classification above can tell them apart from decode errors.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }
