package corroborate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hoanghai1803/newsgenie/internal/credibility"
)

const (
	defaultBingURL = "https://api.bing.microsoft.com/v7.0/search"
	bingTimeout    = 8 * time.Second
)

// bingSearcher queries the Bing Web Search v7 API.
type bingSearcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func newBingSearcher(apiKey string) *bingSearcher {
	return &bingSearcher{
		apiKey:  apiKey,
		baseURL: defaultBingURL,
		client:  &http.Client{Timeout: bingTimeout},
	}
}

// bingResponse is the subset of the Bing envelope we read.
type bingResponse struct {
	WebPages struct {
		Value []struct {
			URL string `json:"url"`
		} `json:"value"`
	} `json:"webPages"`
}

func (b *bingSearcher) Domains(ctx context.Context, query string, topK int) ([]string, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(topK))
	params.Set("responseFilter", "Webpages")
	params.Set("textDecorations", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Ocp-Apim-Subscription-Key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body bingResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	domains := make([]string, 0, len(body.WebPages.Value))
	for _, page := range body.WebPages.Value {
		if len(domains) >= topK {
			break
		}
		if d := credibility.Domain(page.URL); d != "" {
			domains = append(domains, d)
		}
	}
	return domains, nil
}
