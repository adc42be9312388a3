package results

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/recipe-search/internal/models"
	"github.com/killallgit/recipe-search/internal/services/spoonacular"
)

// MockRecipeClient is a mock implementation of spoonacular.RecipeClient
type MockRecipeClient struct {
	mock.Mock
}

func (m *MockRecipeClient) Search(ctx context.Context, params models.SearchParameters) (*models.SearchResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SearchResponse), args.Error(1)
}

func (m *MockRecipeClient) GetRecipeByID(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeDetail), args.Error(1)
}

func TestRender_EmptyQueryNeverSearches(t *testing.T) {
	client := new(MockRecipeClient)
	r := NewRenderer(client, nil)

	v := r.Render(context.Background(), models.SearchParameters{Cuisine: "Thai", Number: 12})

	assert.Equal(t, StatePrompt, v.State)
	client.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}

func TestRender_Results(t *testing.T) {
	client := new(MockRecipeClient)
	params := models.SearchParameters{Query: "pasta", Number: 12}
	client.On("Search", mock.Anything, params).Return(&models.SearchResponse{
		Results:      []models.RecipeSummary{{ID: 1, Title: "Pasta"}},
		TotalResults: 86,
	}, nil)

	v := NewRenderer(client, nil).Render(context.Background(), params)

	assert.Equal(t, StateResults, v.State)
	assert.Equal(t, 86, v.TotalResults)
	require.Len(t, v.Recipes, 1)
	client.AssertExpectations(t)
}

func TestRender_UpstreamFailureBecomesErrorState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := spoonacular.NewClient(spoonacular.Config{APIKey: "k", BaseURL: server.URL}, nil)
	r := NewRenderer(client, nil)

	var v View
	assert.NotPanics(t, func() {
		v = r.Render(context.Background(), models.SearchParameters{Query: "pasta"})
	})
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, ErrorMessage, v.Message)
	assert.Empty(t, v.Recipes)
}

func TestRender_MissingKeyBecomesErrorState(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	r := NewRenderer(spoonacular.NewClient(spoonacular.Config{BaseURL: server.URL}, nil), nil)

	v := r.Render(context.Background(), models.SearchParameters{Query: "pasta"})
	assert.Equal(t, StateError, v.State)
	assert.Zero(t, calls.Load())
}
