package corroborate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed/rss"

	"github.com/hoanghai1803/newsgenie/internal/credibility"
)

const (
	defaultGoogleNewsURL = "https://news.google.com/rss/search"
	googleNewsTimeout    = 8 * time.Second
)

// googleNewsSearcher corroborates against the keyless Google News RSS search
// feed. Items link through news.google.com, so the publisher domain comes
// from each item's <source url="..."> element; we use the RSS-level parser
// because the generic feed model does not surface that element.
type googleNewsSearcher struct {
	baseURL string
	client  *http.Client
	parser  *rss.Parser
}

func newGoogleNewsSearcher() *googleNewsSearcher {
	return &googleNewsSearcher{
		baseURL: defaultGoogleNewsURL,
		client:  &http.Client{Timeout: googleNewsTimeout},
		parser:  &rss.Parser{},
	}
}

func (g *googleNewsSearcher) Domains(ctx context.Context, query string, topK int) ([]string, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=en-US&gl=US&ceid=US:en", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/xml;q=0.9, */*;q=0.1")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	feed, err := g.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing google news feed: %w", err)
	}

	domains := make([]string, 0, topK)
	for _, item := range feed.Items {
		if len(domains) >= topK {
			break
		}
		raw := item.Link
		if item.Source != nil && item.Source.URL != "" {
			raw = item.Source.URL
		}
		if d := credibility.Domain(raw); d != "" && d != "google.com" {
			domains = append(domains, d)
		}
	}
	return domains, nil
}
