package preferences

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/recipe-search/internal/models"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Get(ctx context.Context, sessionID, key string) (*models.Preference, error) {
	args := m.Called(ctx, sessionID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Preference), args.Error(1)
}

func (m *MockRepository) Upsert(ctx context.Context, sessionID, key, value string) error {
	args := m.Called(ctx, sessionID, key, value)
	return args.Error(0)
}

func (m *MockRepository) Touch(ctx context.Context, sessionID string, at time.Time) error {
	args := m.Called(ctx, sessionID, at)
	return args.Error(0)
}

func (m *MockRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_ForSession(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)
	ctx := context.Background()

	a := svc.ForSession("a")
	b := svc.ForSession("b")

	require.NoError(t, a.Set(ctx, "k", "1"))

	v, ok, err := a.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	_, ok, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_EmptySession(t *testing.T) {
	store := NewService(NewMemoryRepository(), nil).ForSession("")

	_, _, err := store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.ErrorIs(t, store.Set(context.Background(), "k", "v"), ErrInvalidSession)
}

func TestService_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	boom := errors.New("disk full")
	repo.On("Get", mock.Anything, "s", "k").Return(nil, boom)
	repo.On("Upsert", mock.Anything, "s", "k", "v").Return(boom)

	store := NewService(repo, nil).ForSession("s")

	_, ok, err := store.Get(context.Background(), "k")
	assert.ErrorIs(t, err, boom)
	assert.False(t, ok)
	assert.ErrorIs(t, store.Set(context.Background(), "k", "v"), boom)
	repo.AssertExpectations(t)
}

func TestService_ReadsKeepSessionAlive(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return clock }

	repo := NewMemoryRepository()
	repo.now = now
	svc := NewService(repo, nil)
	svc.now = now
	store := svc.ForSession("s")

	require.NoError(t, WriteBool(ctx, store, models.HideRecipesWithoutImageKey, false))

	maxAge := 365 * 24 * time.Hour
	for day := 0; day < 366; day++ {
		clock = clock.Add(24 * time.Hour)
		_, _, err := ReadBool(ctx, store, models.HideRecipesWithoutImageKey)
		require.NoError(t, err)
	}

	removed, err := svc.DeleteBefore(ctx, clock.Add(-maxAge))
	require.NoError(t, err)
	assert.Equal(t, int64(0), removed)

	value, ok, err := ReadBool(ctx, store, models.HideRecipesWithoutImageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, value)

	// a session that stops coming back is pruned
	clock = clock.Add(maxAge + time.Hour)
	removed, err = svc.DeleteBefore(ctx, clock.Add(-maxAge))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestService_TouchFailureIsNotFatal(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Get", mock.Anything, "s", "k").Return(&models.Preference{SessionID: "s", Key: "k", Value: "true"}, nil)
	repo.On("Touch", mock.Anything, "s", mock.Anything).Return(errors.New("locked"))

	value, ok, err := NewService(repo, nil).ForSession("s").Get(context.Background(), "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", value)
	repo.AssertExpectations(t)
}

func TestReadBool(t *testing.T) {
	tests := []struct {
		name      string
		stored    *string
		wantValue bool
		wantOK    bool
	}{
		{name: "absent", stored: nil},
		{name: "true", stored: strPtr("true"), wantValue: true, wantOK: true},
		{name: "false", stored: strPtr("false"), wantValue: false, wantOK: true},
		{name: "malformed", stored: strPtr("{not json")},
		{name: "json string", stored: strPtr(`"true"`)},
		{name: "json null", stored: strPtr("null")},
		{name: "json number", stored: strPtr("0")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewService(NewMemoryRepository(), nil).ForSession("s")
			if tt.stored != nil {
				require.NoError(t, store.Set(ctx, "k", *tt.stored))
			}

			value, ok, err := ReadBool(ctx, store, "k")
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestWriteBool(t *testing.T) {
	ctx := context.Background()
	store := NewService(NewMemoryRepository(), nil).ForSession("s")

	require.NoError(t, WriteBool(ctx, store, models.HideRecipesWithoutImageKey, false))

	raw, ok, err := store.Get(ctx, models.HideRecipesWithoutImageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "false", raw)

	value, ok, err := ReadBool(ctx, store, models.HideRecipesWithoutImageKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, value)
}

func strPtr(s string) *string { return &s }
