package preferences

import (
	"context"
	"time"

	"github.com/killallgit/recipe-search/internal/models"
)

// Store is a durable string key-value store scoped to one visitor
type Store interface {
	// Get returns the raw value for key. ok is false when nothing is stored.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key, value string) error
}

// Repository defines the interface for preference data access
type Repository interface {
	// Get retrieves a preference by session and key
	Get(ctx context.Context, sessionID, key string) (*models.Preference, error)

	// Upsert creates or replaces the preference for session and key
	Upsert(ctx context.Context, sessionID, key, value string) error

	// Touch marks every preference of the session as seen at the given time
	Touch(ctx context.Context, sessionID string, at time.Time) error

	// DeleteBefore removes preferences whose session was last seen before
	// cutoff and returns how many were removed
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
