// Package spoonacular is the client for the Spoonacular recipe API
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/killallgit/recipe-search/internal/models"
	apperrors "github.com/killallgit/recipe-search/pkg/errors"
	"github.com/killallgit/recipe-search/pkg/logger"
)

const (
	// DefaultBaseURL is the public Spoonacular endpoint
	DefaultBaseURL = "https://api.spoonacular.com"

	endpointSearch = "complexSearch"
	endpointRecipe = "information"
)

// Config holds configuration for the Spoonacular client
type Config struct {
	APIKey    string
	BaseURL   string        // Default: https://api.spoonacular.com
	UserAgent string        // Default: RecipeSearch/1.0
	Timeout   time.Duration // 0 means no client-side timeout

	// RequestsPerMinute throttles outgoing calls. 0 disables throttling.
	RequestsPerMinute int

	// HTTPClient overrides the transport (for testing)
	HTTPClient *http.Client
}

// Client handles communication with the Spoonacular API
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	config      Config
	log         *zap.Logger
}

// NewClient creates a new Spoonacular API client
func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = "RecipeSearch/1.0"
	}
	log = logger.OrNop(log)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}

	return &Client{
		httpClient:  httpClient,
		rateLimiter: limiter,
		config:      cfg,
		log:         log.Named("spoonacular"),
	}
}

// Search runs a recipe search against /recipes/complexSearch
func (c *Client) Search(ctx context.Context, params models.SearchParameters) (*models.SearchResponse, error) {
	query := params.Values()

	var resp models.SearchResponse
	if err := c.get(ctx, endpointSearch, "/recipes/complexSearch", query, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []models.RecipeSummary{}
	}
	return &resp, nil
}

// GetRecipeByID fetches /recipes/{id}/information
func (c *Client) GetRecipeByID(ctx context.Context, id int64) (*models.RecipeDetail, error) {
	if id <= 0 {
		return nil, apperrors.ValidationError("id", "must be a positive integer")
	}

	path := "/recipes/" + strconv.FormatInt(id, 10) + "/information"

	var detail models.RecipeDetail
	if err := c.get(ctx, endpointRecipe, path, url.Values{}, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// get performs one GET and decodes a JSON body into out.
// The API key travels as a query parameter and must never appear in errors or logs.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	if c.config.APIKey == "" {
		upstreamRequests.WithLabelValues(endpoint, "config_error").Inc()
		return apperrors.ConfigRequired("spoonacular.api_key")
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	query.Set("apiKey", c.config.APIKey)
	reqURL := c.config.BaseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", redact(err))
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return apperrors.ExternalServiceError(ServiceName, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		upstreamRequests.WithLabelValues(endpoint, "status_"+strconv.Itoa(resp.StatusCode)).Inc()
		c.log.Warn("recipe API returned non-200",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
		)
		return &APIError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		upstreamRequests.WithLabelValues(endpoint, "malformed").Inc()
		return apperrors.MalformedResponseError(ServiceName, err)
	}

	upstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}

// redact drops the request URL, which carries the API key, from transport errors
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
