package storage

import "errors"

// Common client storage errors
var (
	// ErrAttractionNotFound indicates the catalog record does not exist locally
	ErrAttractionNotFound = errors.New("attraction not found")

	// ErrReviewNotFound indicates the review does not exist locally
	ErrReviewNotFound = errors.New("review not found")

	// ErrSessionNotFound indicates that no session is stored on this device
	ErrSessionNotFound = errors.New("session not found")

	// ErrWatermarkNotFound indicates that no sync watermark has been persisted yet
	ErrWatermarkNotFound = errors.New("sync watermark not found")
)
