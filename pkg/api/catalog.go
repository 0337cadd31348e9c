package api

// Attraction represents one catalog record as served by the backend.
// Local-only fields (favorite flag, last synced time) never appear on the
// wire; they live in internal/storage.
type Attraction struct {
	ID          string    `json:"id"`           // UUID of the attraction
	Name        string    `json:"name"`         // display name
	Description string    `json:"description"`  // long description
	Category    string    `json:"category"`     // museum, park, monument, ...
	Address     string    `json:"address"`      // street address
	ImageURL    string    `json:"image_url"`    // primary photo URL
	Latitude    float64   `json:"latitude"`     // WGS84
	Longitude   float64   `json:"longitude"`    // WGS84
	Rating      float64   `json:"rating"`       // aggregate rating, 0 if unrated
	IsPublished bool      `json:"is_published"` // unpublished rows are filtered server-side
	UpdatedAt   Timestamp `json:"updated_at"`   // server-assigned modification time
}

// Review moderation statuses as stored by the backend.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// Review represents one review row as served by the backend.
// The public read payload carries aggregate counters only; per-viewer
// reaction state is local-only and preserved on the client.
type Review struct {
	ID           string    `json:"id"`            // UUID of the review
	AttractionID string    `json:"attraction_id"` // parent catalog record
	UserID       string    `json:"user_id"`       // author UUID
	AuthorName   string    `json:"author_name"`   // denormalized display name
	Text         string    `json:"text"`          // review body
	Status       string    `json:"status"`        // pending/approved/rejected
	Rating       int       `json:"rating"`        // 1..5
	LikeCount    int       `json:"like_count"`    // aggregate likes
	DislikeCount int       `json:"dislike_count"` // aggregate dislikes
	CreatedAt    Timestamp `json:"created_at"`
	UpdatedAt    Timestamp `json:"updated_at"`
}

// SubmitReviewRequest is the payload for creating a review.
// The id is generated client-side so a retried submit stays idempotent.
type SubmitReviewRequest struct {
	ID           string `json:"id"`
	AttractionID string `json:"attraction_id"`
	Text         string `json:"text"`
	Rating       int    `json:"rating"`
}

// Tombstone entity types and actions used by the deleted-records feed.
const (
	EntityTypeAttraction = "attraction"
	EntityTypeReview     = "review"

	TombstoneActionDeleted     = "deleted"
	TombstoneActionUnpublished = "unpublished"
)

// Tombstone represents one row of the deleted-records feed. Presence of a
// row means the entity with that id must be purged from the local cache.
type Tombstone struct {
	EntityType string    `json:"entity_type"` // attraction / review
	EntityID   string    `json:"entity_id"`   // UUID of the deleted entity
	Action     string    `json:"action"`      // deleted / unpublished
	DeletedAt  Timestamp `json:"deleted_at"`
}
