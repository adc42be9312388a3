package preferences

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/recipe-search/internal/models"
)

// repository implements Repository on top of gorm
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new preference repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Get retrieves a preference by session and key
func (r *repository) Get(ctx context.Context, sessionID, key string) (*models.Preference, error) {
	var pref models.Preference
	err := r.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", sessionID, key).
		First(&pref).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferenceNotFound
		}
		return nil, err
	}

	return &pref, nil
}

// Upsert creates or replaces the preference for session and key
func (r *repository) Upsert(ctx context.Context, sessionID, key, value string) error {
	pref := &models.Preference{SessionID: sessionID, Key: key, Value: value, LastSeenAt: time.Now().UTC()}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at", "last_seen_at"}),
		}).
		Create(pref).Error
}

// Touch sets last_seen_at on every preference of the session
func (r *repository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.Preference{}).
		Where("session_id = ?", sessionID).
		Update("last_seen_at", at.UTC()).Error
}

// DeleteBefore permanently removes preferences whose session was last seen before cutoff
func (r *repository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Unscoped().
		Where("last_seen_at < ?", cutoff.UTC()).
		Delete(&models.Preference{})
	return result.RowsAffected, result.Error
}
