package spoonacular

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/recipe-search/internal/models"
	apperrors "github.com/killallgit/recipe-search/pkg/errors"
)

const searchBody = `{
	"results": [
		{"id": 716429, "title": "Pasta with Garlic", "image": "https://img.spoonacular.com/recipes/716429-312x231.jpg", "imageType": "jpg", "readyInMinutes": 45, "dishTypes": ["lunch", "main course"], "vegetarian": true},
		{"id": 715538, "title": "Bruschetta", "image": ""}
	],
	"offset": 0,
	"number": 2,
	"totalResults": 86
}`

const detailBody = `{
	"id": 716429,
	"title": "Pasta with Garlic",
	"image": "https://img.spoonacular.com/recipes/716429-556x370.jpg",
	"servings": 2,
	"readyInMinutes": 45,
	"healthScore": 19,
	"pricePerServing": 163.15,
	"summary": "<b>Pasta</b> is tasty.",
	"instructions": "<ol><li>Boil.</li></ol>",
	"creditsText": "Full Belly Sisters",
	"sourceUrl": "https://fullbellysisters.blogspot.com/2012/06/pasta.html",
	"diets": ["lacto ovo vegetarian"],
	"vegetarian": true,
	"glutenFree": false
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{APIKey: "test-key", BaseURL: server.URL}, nil)
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/complexSearch", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apiKey"))
		assert.Equal(t, "pasta", q.Get("query"))
		assert.Equal(t, "Italian", q.Get("cuisine"))
		assert.Equal(t, "12", q.Get("number"))
		_, hasDiet := q["diet"]
		assert.False(t, hasDiet, "empty parameters must not be sent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	resp, err := client.Search(context.Background(), models.SearchParameters{
		Query:   "pasta",
		Cuisine: "Italian",
		Number:  12,
	})
	require.NoError(t, err)

	assert.Equal(t, 86, resp.TotalResults)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, int64(716429), resp.Results[0].ID)
	require.NotNil(t, resp.Results[0].ReadyInMinutes)
	assert.Equal(t, 45, *resp.Results[0].ReadyInMinutes)
	assert.True(t, resp.Results[0].Vegetarian)
	assert.Nil(t, resp.Results[1].ReadyInMinutes)
	assert.False(t, resp.Results[1].HasImage())
}

func TestClient_SearchEmptyResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"offset":0,"number":12,"totalResults":0}`))
	})

	resp, err := client.Search(context.Background(), models.SearchParameters{Query: "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestClient_GetRecipeByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes/716429/information", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		_, _ = w.Write([]byte(detailBody))
	})

	detail, err := client.GetRecipeByID(context.Background(), 716429)
	require.NoError(t, err)

	assert.Equal(t, "Pasta with Garlic", detail.Title)
	assert.Equal(t, 2, detail.Servings)
	assert.Equal(t, "$1.63", detail.PriceLabel())
	assert.Equal(t, []string{"lacto ovo vegetarian"}, detail.Diets)
	assert.True(t, detail.Vegetarian)
}

func TestClient_GetRecipeByIDRejectsNonPositive(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.GetRecipeByID(context.Background(), 0)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	assert.Zero(t, calls.Load())
}

func TestClient_MissingAPIKey(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	_, err := client.Search(context.Background(), models.SearchParameters{Query: "pasta"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigRequired))

	_, err = client.GetRecipeByID(context.Background(), 1)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfigRequired))

	assert.Zero(t, calls.Load(), "no request may be made without a key")
}

func TestClient_Non200(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		notFound    bool
		rateLimited bool
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "not found", status: http.StatusNotFound, notFound: true},
		{name: "quota exhausted", status: http.StatusPaymentRequired, rateLimited: true},
		{name: "too many requests", status: http.StatusTooManyRequests, rateLimited: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Search(context.Background(), models.SearchParameters{Query: "pasta"})
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.notFound, IsNotFound(err))
			assert.Equal(t, tt.rateLimited, IsRateLimited(err))
			assert.NotContains(t, err.Error(), "test-key")
		})
	}
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	})

	_, err := client.GetRecipeByID(context.Background(), 1)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMalformedResponse))
}

func TestClient_TransportErrorDoesNotLeakKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(Config{APIKey: "super-secret", BaseURL: baseURL}, nil)

	_, err := client.Search(context.Background(), models.SearchParameters{Query: "pasta"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeExternalService))
	assert.False(t, strings.Contains(err.Error(), "super-secret"))
}

func TestClient_CancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchBody))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Search(ctx, models.SearchParameters{Query: "pasta"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilterOptions(t *testing.T) {
	opts := FilterOptions()
	assert.Len(t, opts.Cuisines, 26)
	assert.Len(t, opts.Diets, 11)
	assert.Len(t, opts.Intolerances, 12)
	assert.Len(t, opts.MealTypes, 14)
	assert.Contains(t, opts.Cuisines, "Italian")
	assert.Contains(t, opts.MealTypes, "Main course")
}

func TestClient_RequestsPerMinuteThrottles(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(searchBody))
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL, RequestsPerMinute: 1}, nil)

	_, err := client.Search(context.Background(), models.SearchParameters{Query: "pasta"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Search(ctx, models.SearchParameters{Query: "pasta"})
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
