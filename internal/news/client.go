// Package news retrieves ranked-ready articles for a category/region/query
// from a NewsAPI-compatible provider, with a time-bucketed cache and a
// deterministic mock fallback. Fetch never returns an error: any live-side
// failure degrades to the mock dataset and is reported via the source label.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/hoanghai1803/newsgenie/internal/config"
	"github.com/hoanghai1803/newsgenie/internal/models"
)

const (
	defaultBaseURL = "https://newsapi.org/v2"
	httpTimeout    = 10 * time.Second
	pageSize       = 20
	cacheSize      = 128
	defaultTTL     = 15 * time.Minute

	// Trusted outlets used for the "Top Global" category instead of a
	// country filter.
	topGlobalSources = "reuters,associated-press,bbc-news,al-jazeera-english"
)

// staleAge is assigned to articles with a missing or unparseable publish
// timestamp so they rank low instead of erroring.
const staleAge = 365 * 24 * time.Hour

// queryStopWords are stripped from free-text query hints before they are sent
// to the provider, which noticeably improves recall.
var queryStopWords = map[string]bool{
	"latest":    true,
	"headlines": true,
	"news":      true,
	"today":     true,
}

// Client fetches articles from the live provider with caching, falling back
// to the mock dataset whenever the live side is unavailable.
type Client struct {
	apiKey   string
	region   string
	ttl      time.Duration
	mockMode bool

	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache[string, []models.Article]
	group      singleflight.Group
	now        func() time.Time
}

// NewClient creates a Client from news provider configuration.
func NewClient(cfg config.NewsConfig) *Client {
	// Cache size is fixed; an LRU bound keeps stale buckets from
	// accumulating over a long-lived session.
	cache, _ := lru.New[string, []models.Article](cacheSize)

	// A non-positive TTL would make the bucket division divide by zero.
	// Config validation normally catches this, but the constructor must
	// hold the invariant on its own.
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl < time.Second {
		ttl = defaultTTL
	}

	return &Client{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		region:     cfg.Region,
		ttl:        ttl,
		mockMode:   cfg.MockMode,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: httpTimeout},
		cache:      cache,
		now:        time.Now,
	}
}

// WithBaseURL overrides the provider base URL. Tests point this at an
// httptest server.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

// WithClock overrides the client's clock.
func (c *Client) WithClock(now func() time.Time) *Client {
	c.now = now
	return c
}

// Fetch returns articles for the given category, plus a label describing
// where they came from. Region falls back to the configured default when
// empty. The returned articles always carry a timezone-aware publish
// timestamp.
//
// Degradation policy: if no API key is configured, mock mode is on, or the
// live call fails for any reason (network, HTTP status, provider status,
// malformed body), Fetch returns the deterministic mock subset for the
// category labelled SourceMock. It never returns an error to the caller.
func (c *Client) Fetch(ctx context.Context, category, region, queryHint string) ([]models.Article, models.SourceLabel) {
	if region == "" {
		region = c.region
	}

	if c.mockMode || c.apiKey == "" {
		slog.Debug("news provider unavailable, serving mock dataset",
			"category", category, "mock_mode", c.mockMode)
		return c.mockArticles(category), models.SourceMock
	}

	key := cacheKey(category, region, queryHint, c.bucket())
	if cached, ok := c.cache.Get(key); ok {
		return cached, models.SourceLive
	}

	// singleflight collapses concurrent fetches for the same bucket so at
	// most one live call is in flight per cache key.
	v, err, _ := c.group.Do(key, func() (any, error) {
		articles, err := c.fetchLive(ctx, category, region, queryHint)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, articles)
		return articles, nil
	})
	if err != nil {
		slog.Warn("live fetch failed, serving mock dataset",
			"category", category, "error", err)
		return c.mockArticles(category), models.SourceMock
	}

	return v.([]models.Article), models.SourceLive
}

// bucket returns the current TTL bucket. Two calls inside the same bucket
// share a cache entry, which bounds the live-provider call rate.
func (c *Client) bucket() int64 {
	return c.now().Unix() / int64(c.ttl/time.Second)
}

func cacheKey(category, region, query string, bucket int64) string {
	return strings.ToLower(category) + "|" + region + "|" + strings.ToLower(query) + "|" + strconv.FormatInt(bucket, 10)
}

// fetchLive runs the provider fallback chain: category-scoped headlines
// first, then (when a query hint is present and headlines came back empty)
// the broader everything search.
func (c *Client) fetchLive(ctx context.Context, category, region, queryHint string) ([]models.Article, error) {
	if queryHint == "" {
		return c.topHeadlines(ctx, category, region, "")
	}

	cleaned := cleanQuery(queryHint)
	articles, err := c.topHeadlines(ctx, category, region, cleaned)
	if err != nil {
		return nil, err
	}
	if len(articles) > 0 {
		return articles, nil
	}
	return c.everything(ctx, cleaned)
}

// cleanQuery strips stop words from a free-text hint. If stripping leaves
// nothing, the original query is used unchanged.
func cleanQuery(q string) string {
	var kept []string
	for _, tok := range strings.Fields(q) {
		if !queryStopWords[strings.ToLower(tok)] {
			kept = append(kept, tok)
		}
	}
	if len(kept) == 0 {
		return q
	}
	return strings.Join(kept, " ")
}

// topHeadlines queries the provider's top-headlines endpoint with the
// category mapped onto provider parameters.
func (c *Client) topHeadlines(ctx context.Context, category, region, query string) ([]models.Article, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(pageSize))
	applyCategoryParams(params, category, region)
	if query != "" {
		params.Set("q", query)
	}

	return c.getArticles(ctx, c.baseURL+"/top-headlines?"+params.Encode())
}

// everything queries the provider's full-text search across all categories.
func (c *Client) everything(ctx context.Context, query string) ([]models.Article, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(pageSize))

	return c.getArticles(ctx, c.baseURL+"/everything?"+params.Encode())
}

// applyCategoryParams maps a UI category onto provider query parameters.
// "Top US" pins the country filter, "Top Global" uses the trusted-source
// allow-list, "Finance" maps to the provider's "business" category, and
// unmapped categories pass through with the region country only.
func applyCategoryParams(params url.Values, category, region string) {
	switch c := strings.ToLower(category); c {
	case "top us":
		params.Set("country", "us")
	case "top global":
		params.Set("sources", topGlobalSources)
	default:
		params.Set("country", region)
		switch c {
		case "technology", "business", "sports":
			params.Set("category", c)
		case "finance":
			params.Set("category", "business")
		}
	}
}

// apiResponse is the provider's JSON envelope.
type apiResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (c *Client) getArticles(ctx context.Context, rawURL string) ([]models.Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("provider status %q: %s", body.Status, body.Message)
	}

	articles := make([]models.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		if a.URL == "" {
			continue
		}
		articles = append(articles, models.Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: c.parsePublishedAt(a.PublishedAt),
		})
	}
	return articles, nil
}

// parsePublishedAt parses a provider timestamp into a timezone-aware UTC
// value. Missing or unparseable timestamps default to one year old so the
// article ranks low rather than erroring.
func (c *Client) parsePublishedAt(s string) time.Time {
	if s == "" {
		return c.now().Add(-staleAge).UTC()
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return c.now().Add(-staleAge).UTC()
	}
	return t.UTC()
}
