package preferences

import (
	"context"
	"sync"
	"time"

	"github.com/killallgit/recipe-search/internal/models"
)

type memoryEntry struct {
	value    string
	lastSeen time.Time
}

// MemoryRepository keeps preferences in process memory.
// Used when no database is configured; values do not survive a restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]memoryEntry
	now   func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items: make(map[string]map[string]memoryEntry),
		now:   time.Now,
	}
}

// Get retrieves a preference by session and key
func (m *MemoryRepository) Get(ctx context.Context, sessionID, key string) (*models.Preference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.items[sessionID][key]
	if !ok {
		return nil, ErrPreferenceNotFound
	}
	pref := &models.Preference{SessionID: sessionID, Key: key, Value: entry.value}
	pref.LastSeenAt = entry.lastSeen
	return pref, nil
}

// Upsert creates or replaces the preference for session and key
func (m *MemoryRepository) Upsert(ctx context.Context, sessionID, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.items[sessionID]
	if !ok {
		session = make(map[string]memoryEntry)
		m.items[sessionID] = session
	}
	session[key] = memoryEntry{value: value, lastSeen: m.now()}
	return nil
}

// Touch marks every preference of the session as seen at the given time
func (m *MemoryRepository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.items[sessionID] {
		entry.lastSeen = at
		m.items[sessionID][key] = entry
	}
	return nil
}

// DeleteBefore removes preferences whose session was last seen before cutoff
func (m *MemoryRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var removed int64
	for sessionID, session := range m.items {
		for key, entry := range session {
			if entry.lastSeen.Before(cutoff) {
				delete(session, key)
				removed++
			}
		}
		if len(session) == 0 {
			delete(m.items, sessionID)
		}
	}
	return removed, nil
}
