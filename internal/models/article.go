package models

import "time"

// SourceLabel identifies where a batch of articles came from.
type SourceLabel string

const (
	// SourceLive means the articles came from the live news provider.
	SourceLive SourceLabel = "live"
	// SourceMock means the deterministic mock dataset was substituted,
	// either because no credential is configured or the live call failed.
	SourceMock SourceLabel = "mock"
)

// Article is a single news item as returned by the fetcher, plus the
// credibility fields derived during ranking. Articles are built fresh per
// fetch and discarded once the turn's report is rendered; nothing here is
// persisted.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`

	// Derived during scoring. Domain may be empty only when URL parsing
	// failed; Score is always within [0,1].
	Domain       string  `json:"domain,omitempty"`
	Trust        float64 `json:"trust,omitempty"`
	Bias         string  `json:"bias,omitempty"`
	Score        float64 `json:"score,omitempty"`
	Corroborated bool    `json:"corroborated,omitempty"`
}
