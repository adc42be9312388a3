package models

import (
	"time"

	"gorm.io/gorm"
)

// HideRecipesWithoutImageKey is the preference key for the image visibility toggle
const HideRecipesWithoutImageKey = "hideRecipesWithoutImage"

// Preference is one persisted visitor preference. Value holds JSON text.
// LastSeenAt is the last time the owning session read or wrote it.
type Preference struct {
	gorm.Model
	SessionID  string    `json:"session_id" gorm:"not null;uniqueIndex:idx_preference_session_key"`
	Key        string    `json:"key" gorm:"not null;uniqueIndex:idx_preference_session_key"`
	Value      string    `json:"value" gorm:"type:text"`
	LastSeenAt time.Time `json:"last_seen_at" gorm:"index"`
}

// TableName returns the table name for Preference
func (Preference) TableName() string {
	return "preferences"
}

// AllModels lists every model managed by migrations
func AllModels() []any {
	return []any{&Preference{}}
}
