// Package corroborate cross-checks a story against a secondary web-search
// provider and counts the independent domains reporting it. The signal is
// deliberately loose and optional: every failure degrades to "no signal",
// and ranking proceeds without it.
package corroborate

import (
	"context"
	"log/slog"

	"github.com/hoanghai1803/newsgenie/internal/config"
	"github.com/hoanghai1803/newsgenie/internal/credibility"
	"github.com/hoanghai1803/newsgenie/internal/models"
)

// Searcher returns the registrable domains of web results for a query,
// ordered by result rank, at most topK entries.
type Searcher interface {
	Domains(ctx context.Context, query string, topK int) ([]string, error)
}

// minIndependentDomains is how many distinct domains besides the article's
// own source must mention the story before it counts as corroborated.
const minIndependentDomains = 2

// New builds a Searcher from config. An unset provider, or a keyed provider
// without a key, yields the no-op searcher so corroboration silently
// disables itself.
func New(cfg config.SearchConfig) Searcher {
	switch cfg.Provider {
	case "bing":
		if cfg.APIKey == "" {
			slog.Info("no search api key configured, corroboration disabled")
			return noopSearcher{}
		}
		return newBingSearcher(cfg.APIKey)
	case "googlenews":
		return newGoogleNewsSearcher()
	default:
		return noopSearcher{}
	}
}

// Lookup runs a search and degrades every failure to an empty result.
func Lookup(ctx context.Context, s Searcher, query string, topK int) []string {
	if s == nil || query == "" {
		return nil
	}
	domains, err := s.Domains(ctx, query, topK)
	if err != nil {
		slog.Warn("corroboration lookup failed", "query", query, "error", err)
		return nil
	}
	return domains
}

// Mark sets the Corroborated flag on each article that at least two distinct
// domains besides its own source report on. All articles of a turn share one
// lookup for the turn's query, keeping the provider call count flat.
func Mark(ctx context.Context, s Searcher, query string, topK int, articles []models.Article) {
	domains := Lookup(ctx, s, query, topK)
	if len(domains) == 0 {
		return
	}

	for i := range articles {
		own := articles[i].Domain
		if own == "" {
			own = credibility.Domain(articles[i].URL)
		}

		seen := make(map[string]bool)
		for _, d := range domains {
			if d != "" && d != own {
				seen[d] = true
			}
		}
		articles[i].Corroborated = len(seen) >= minIndependentDomains
	}
}

// noopSearcher is used when no provider is configured.
type noopSearcher struct{}

func (noopSearcher) Domains(context.Context, string, int) ([]string, error) {
	return nil, nil
}
