// Package credibility scores news sources. It combines a static per-domain
// trust table with article recency into a single ranking score, and assigns
// a coarse political-leaning label per domain.
package credibility

import (
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

const (
	// defaultTrust is assigned to every domain not in the reputation table.
	defaultTrust = 0.65

	// Combined score weights. Fixed design constants; the blend is monotonic
	// in both trust and freshness.
	weightTrust     = 0.6
	weightFreshness = 0.4

	freshHours = 6.0  // age at or below which freshness is 1.0
	staleHours = 48.0 // age at or beyond which freshness is 0.5
)

// Model scores domains and articles against an immutable reputation table.
// The zero value is not usable; construct with NewModel.
type Model struct {
	reputation Reputation
	now        func() time.Time
}

// NewModel creates a Model over the given reputation table. A nil table is
// treated as empty, so every domain gets the default trust score.
func NewModel(rep Reputation) *Model {
	return &Model{reputation: rep, now: time.Now}
}

// WithClock overrides the model's clock. Tests use this to pin "now".
func (m *Model) WithClock(now func() time.Time) *Model {
	m.now = now
	return m
}

// Domain extracts the registrable domain (second-level label plus public
// suffix) from a raw URL. It returns "" for anything it cannot parse and
// never panics; callers treat an empty domain as an unknown source.
func Domain(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Hostname() == "" {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	d, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return d
}

// TrustScore returns the trust score in [0,1] for a domain, or 0.65 when the
// domain has no rated entry in the table.
func (m *Model) TrustScore(domain string) float64 {
	if rep, ok := m.reputation[domain]; ok && rep.Trust > 0 {
		return rep.Trust
	}
	return defaultTrust
}

// FreshnessScore maps article age onto [0.5, 1.0]: 1.0 at six hours or less,
// 0.5 at 48 hours or more, linear in between. Future timestamps are clamped
// to age zero.
func (m *Model) FreshnessScore(publishedAt time.Time) float64 {
	ageHours := m.now().Sub(publishedAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	switch {
	case ageHours <= freshHours:
		return 1.0
	case ageHours >= staleHours:
		return 0.5
	default:
		return 1.0 - (ageHours-freshHours)*(0.5/(staleHours-freshHours))
	}
}

// CombinedScore blends trust and freshness into one ranking score in [0,1].
func (m *Model) CombinedScore(domain string, publishedAt time.Time) float64 {
	return weightTrust*m.TrustScore(domain) + weightFreshness*m.FreshnessScore(publishedAt)
}

// BiasLabel returns the political-leaning label for a domain. Domains absent
// from the table fall back to a trust-based estimate: highly trusted sources
// are assumed Center. That fallback is a heuristic, not a measured
// classification, which is why the mid band is labelled "Center (est.)".
func (m *Model) BiasLabel(domain string) Leaning {
	if rep, ok := m.reputation[domain]; ok && rep.Leaning != "" {
		return rep.Leaning
	}
	switch ts := m.TrustScore(domain); {
	case ts >= 0.90:
		return LeaningCenter
	case ts >= 0.80:
		return LeaningCenterEst
	default:
		return LeaningUnknown
	}
}
