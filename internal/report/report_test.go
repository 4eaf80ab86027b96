package report

import (
	"strings"
	"testing"
	"time"

	"github.com/hoanghai1803/newsgenie/internal/models"
)

func TestRender(t *testing.T) {
	r := Report{
		Category:    "Finance",
		Region:      "us",
		Query:       "Tesla earnings",
		Degraded:    true,
		GeneratedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Articles: []models.Article{
			{
				Title:        "Markets slip as yields rise",
				Description:  "Energy up on crude strength.",
				URL:          "https://www.wsj.com/markets/daily-recap",
				Source:       "WSJ",
				PublishedAt:  time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
				Domain:       "wsj.com",
				Bias:         "Right",
				Score:        0.88,
				Corroborated: true,
			},
		},
	}

	out := Render(r)

	for _, want := range []string{
		"Finance",
		"Region: US",
		"Degraded mode",
		"Query used: Tesla earnings",
		"1) Markets slip as yields rise",
		"Cred 0.88",
		"Bias: Right",
		"corroborated",
		"https://www.wsj.com/markets/daily-recap",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q:\n%s", want, out)
		}
	}
}

func TestRender_NoArticles(t *testing.T) {
	out := Render(Report{
		Category:    "Technology",
		Region:      "us",
		GeneratedAt: time.Now(),
	})

	if !strings.Contains(out, "No credible updates right now.") {
		t.Errorf("empty report missing fallback line:\n%s", out)
	}
	if strings.Contains(out, "Degraded mode") {
		t.Errorf("non-degraded report should not mention degraded mode:\n%s", out)
	}
}

func TestRender_UntitledAndUnknownSource(t *testing.T) {
	out := Render(Report{
		Category:    "Top US",
		Region:      "us",
		GeneratedAt: time.Now(),
		Articles: []models.Article{
			{URL: "https://example.com/x", PublishedAt: time.Now(), Score: 0.5, Bias: "Unknown"},
		},
	})

	if !strings.Contains(out, "(untitled)") {
		t.Errorf("missing untitled placeholder:\n%s", out)
	}
	if !strings.Contains(out, "Source: Unknown") {
		t.Errorf("missing unknown source placeholder:\n%s", out)
	}
}
