package credibility

import (
	"math"
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{name: "plain article url", url: "https://www.reuters.com/technology/some-story", want: "reuters.com"},
		{name: "no www", url: "https://apnews.com/article/x", want: "apnews.com"},
		{name: "deep subdomain", url: "https://edition.cnn.com/2024/story", want: "cnn.com"},
		{name: "uppercase host", url: "https://WWW.BBC.COM/news", want: "bbc.com"},
		{name: "query and fragment", url: "https://www.espn.com/nfl/story?id=1#top", want: "espn.com"},
		{name: "not a url", url: "not a url at all", want: ""},
		{name: "empty", url: "", want: ""},
		{name: "scheme only", url: "https://", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Domain(tt.url); got != tt.want {
				t.Errorf("Domain(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestTrustScore(t *testing.T) {
	m := NewModel(DefaultReputation())

	if got := m.TrustScore("reuters.com"); got != 0.95 {
		t.Errorf("TrustScore(reuters.com) = %v, want 0.95", got)
	}
	if got := m.TrustScore("foxnews.com"); got != 0.75 {
		t.Errorf("TrustScore(foxnews.com) = %v, want 0.75", got)
	}

	// Every unlisted domain gets exactly the default.
	for _, d := range []string{"example.com", "some-blog.net", "", "nytimes.com"} {
		if got := m.TrustScore(d); got != 0.65 {
			t.Errorf("TrustScore(%q) = %v, want default 0.65", d, got)
		}
	}
}

func TestFreshnessScore(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewModel(nil).WithClock(fixedClock(now))

	tests := []struct {
		name string
		age  time.Duration
		want float64
	}{
		{name: "just published", age: 0, want: 1.0},
		{name: "future timestamp clamps to zero age", age: -3 * time.Hour, want: 1.0},
		{name: "at six hours", age: 6 * time.Hour, want: 1.0},
		{name: "midpoint 27h", age: 27 * time.Hour, want: 0.75},
		{name: "at 48 hours", age: 48 * time.Hour, want: 0.5},
		{name: "a week old", age: 7 * 24 * time.Hour, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.FreshnessScore(now.Add(-tt.age))
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("FreshnessScore(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

func TestFreshnessScore_Monotonic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewModel(nil).WithClock(fixedClock(now))

	prev := math.Inf(1)
	for age := time.Duration(0); age <= 72*time.Hour; age += 30 * time.Minute {
		got := m.FreshnessScore(now.Add(-age))
		if got > prev {
			t.Fatalf("freshness increased with age: %v at age %v (prev %v)", got, age, prev)
		}
		if got < 0.5 || got > 1.0 {
			t.Fatalf("freshness %v at age %v outside [0.5, 1.0]", got, age)
		}
		prev = got
	}
}

func TestCombinedScore_Range(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewModel(DefaultReputation()).WithClock(fixedClock(now))

	domains := []string{"reuters.com", "foxnews.com", "unknown.example", ""}
	ages := []time.Duration{0, 3 * time.Hour, 24 * time.Hour, 100 * time.Hour}

	for _, d := range domains {
		for _, age := range ages {
			got := m.CombinedScore(d, now.Add(-age))
			if got < 0 || got > 1 {
				t.Errorf("CombinedScore(%q, age=%v) = %v, outside [0,1]", d, age, got)
			}
		}
	}

	// Fresher article from the same source never scores lower.
	fresh := m.CombinedScore("bbc.com", now.Add(-1*time.Hour))
	stale := m.CombinedScore("bbc.com", now.Add(-50*time.Hour))
	if fresh < stale {
		t.Errorf("fresh score %v < stale score %v for same domain", fresh, stale)
	}
}

func TestBiasLabel(t *testing.T) {
	m := NewModel(DefaultReputation())

	tests := []struct {
		domain string
		want   Leaning
	}{
		{domain: "theguardian.com", want: LeaningLeft},
		{domain: "wsj.com", want: LeaningRight},
		{domain: "reuters.com", want: LeaningCenter},
		{domain: "nytimes.com", want: LeaningLeft}, // leaning-only entry
		{domain: "unknown.example", want: LeaningUnknown},
		{domain: "", want: LeaningUnknown},
	}

	for _, tt := range tests {
		if got := m.BiasLabel(tt.domain); got != tt.want {
			t.Errorf("BiasLabel(%q) = %q, want %q", tt.domain, got, tt.want)
		}
	}
}

func TestBiasLabel_TrustHeuristic(t *testing.T) {
	// Unlisted leanings fall back to trust thresholds.
	rep := Reputation{
		"hightrust.example": {Trust: 0.93},
		"midtrust.example":  {Trust: 0.82},
		"lowtrust.example":  {Trust: 0.60},
	}
	m := NewModel(rep)

	if got := m.BiasLabel("hightrust.example"); got != LeaningCenter {
		t.Errorf("BiasLabel(hightrust) = %q, want %q", got, LeaningCenter)
	}
	if got := m.BiasLabel("midtrust.example"); got != LeaningCenterEst {
		t.Errorf("BiasLabel(midtrust) = %q, want %q", got, LeaningCenterEst)
	}
	if got := m.BiasLabel("lowtrust.example"); got != LeaningUnknown {
		t.Errorf("BiasLabel(lowtrust) = %q, want %q", got, LeaningUnknown)
	}
}
