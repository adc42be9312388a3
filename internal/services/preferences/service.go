package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/killallgit/recipe-search/pkg/logger"
)

// touchAfter bounds how often a read refreshes a session's last-seen time
const touchAfter = time.Hour

// Service hands out visitor-scoped preference stores
type Service struct {
	repo Repository
	log  *zap.Logger
	now  func() time.Time
}

// NewService creates a new preference service
func NewService(repo Repository, log *zap.Logger) *Service {
	log = logger.OrNop(log)
	return &Service{repo: repo, log: log.Named("preferences"), now: time.Now}
}

// ForSession returns a Store bound to one visitor session
func (s *Service) ForSession(sessionID string) Store {
	return &sessionStore{repo: s.repo, sessionID: sessionID, log: s.log, now: s.now}
}

// DeleteBefore removes the preferences of sessions last seen before cutoff
func (s *Service) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return s.repo.DeleteBefore(ctx, cutoff)
}

// sessionStore implements Store for a single session
type sessionStore struct {
	repo      Repository
	sessionID string
	log       *zap.Logger
	now       func() time.Time
}

func (s *sessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.sessionID == "" {
		return "", false, ErrInvalidSession
	}

	pref, err := s.repo.Get(ctx, s.sessionID, key)
	if err != nil {
		if errors.Is(err, ErrPreferenceNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	if now := s.now(); now.Sub(pref.LastSeenAt) >= touchAfter {
		if err := s.repo.Touch(ctx, s.sessionID, now); err != nil {
			s.log.Warn("failed to refresh preference last-seen time", zap.Error(err))
		}
	}
	return pref.Value, true, nil
}

func (s *sessionStore) Set(ctx context.Context, key, value string) error {
	if s.sessionID == "" {
		return ErrInvalidSession
	}

	if err := s.repo.Upsert(ctx, s.sessionID, key, value); err != nil {
		return err
	}
	s.log.Debug("preference stored", zap.String("key", key), zap.String("value", value))
	return nil
}

// ReadBool reads a JSON boolean. ok is false when the key is absent or its
// value is not a JSON boolean.
func ReadBool(ctx context.Context, store Store, key string) (value bool, ok bool, err error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil || !found {
		return false, false, err
	}
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return false, false, nil
	}
	value, ok = decoded.(bool)
	return value, ok, nil
}

// WriteBool stores value as a JSON boolean
func WriteBool(ctx context.Context, store Store, key string, value bool) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Set(ctx, key, string(raw))
}
