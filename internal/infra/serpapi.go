package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"huakai/internal/models/response_models"

	"go.uber.org/zap"
)

const serpAPIEndpoint = "https://serpapi.com/search.json"

// SearchClient fetches raw web-search results for a single query.
type SearchClient interface {
	Search(ctx context.Context, query, location string) (response_models.SearchResult, error)
	Configured() bool
}

// SerpAPIClient calls SerpAPI's Google engine. Failed requests are retried
// with a fixed pause before the client gives up.
type SerpAPIClient struct {
	HTTP       *http.Client
	APIKey     string
	BaseURL    string
	MaxRetries int
	RetryDelay time.Duration

	logger *zap.Logger
}

func NewSerpAPIClient(apiKey string, logger *zap.Logger) *SerpAPIClient {
	return &SerpAPIClient{
		HTTP:       &http.Client{Timeout: 15 * time.Second},
		APIKey:     apiKey,
		BaseURL:    serpAPIEndpoint,
		MaxRetries: 3,
		RetryDelay: 2 * time.Second,
		logger:     logger,
	}
}

func (c *SerpAPIClient) Configured() bool {
	return c.APIKey != ""
}

func (c *SerpAPIClient) Search(ctx context.Context, query, location string) (response_models.SearchResult, error) {
	var lastErr error
	for attempt := 1; attempt <= c.MaxRetries; attempt++ {
		result, err := c.fetch(ctx, query, location)
		if err == nil {
			return result, nil
		}
		lastErr = err
		c.logger.Warn("search request failed",
			zap.Int("attempt", attempt),
			zap.String("query", query),
			zap.Error(err))
		if attempt < c.MaxRetries {
			time.Sleep(c.RetryDelay)
		}
	}
	return response_models.SearchResult{}, fmt.Errorf("search failed after %d attempts: %w", c.MaxRetries, lastErr)
}

func (c *SerpAPIClient) fetch(ctx context.Context, query, location string) (response_models.SearchResult, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return response_models.SearchResult{}, fmt.Errorf("parse search endpoint: %w", err)
	}

	q := u.Query()
	q.Set("engine", "google")
	q.Set("q", query)
	q.Set("location", location)
	q.Set("hl", "en")
	q.Set("gl", "us")
	q.Set("api_key", c.APIKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return response_models.SearchResult{}, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return response_models.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return response_models.SearchResult{}, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var result response_models.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return response_models.SearchResult{}, fmt.Errorf("decode search response: %w", err)
	}
	return result, nil
}
