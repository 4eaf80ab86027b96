// Package report renders a ranked news result into the plain-text answer the
// presentation layer displays. Styling (cards, colors, logos) belongs to the
// collaborator; this package only decides the words.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/hoanghai1803/newsgenie/internal/models"
)

// Report is one category's ranked result, ready to render.
type Report struct {
	Category    string
	Region      string
	Query       string
	Degraded    bool
	GeneratedAt time.Time
	Articles    []models.Article
}

// Render formats the report as human-readable text. Degraded mode is always
// disclosed, never hidden.
func Render(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s — Updated: %s · Region: %s\n",
		r.Category,
		r.GeneratedAt.Format("2006-01-02 15:04 MST"),
		strings.ToUpper(r.Region),
	)

	if r.Degraded {
		b.WriteString("⚠️ Degraded mode: cached/mock results while the live feed recovers.\n")
	}

	if r.Query != "" {
		fmt.Fprintf(&b, "Query used: %s\n", r.Query)
	}

	if len(r.Articles) == 0 {
		b.WriteString("\nNo credible updates right now.\n")
		return b.String()
	}

	for i, a := range r.Articles {
		title := a.Title
		if title == "" {
			title = "(untitled)"
		}
		source := a.Source
		if source == "" {
			source = a.Domain
		}
		if source == "" {
			source = "Unknown"
		}

		fmt.Fprintf(&b, "\n%d) %s\n", i+1, title)
		if a.Description != "" {
			fmt.Fprintf(&b, "   %s\n", a.Description)
		}
		if a.URL != "" {
			fmt.Fprintf(&b, "   %s\n", a.URL)
		}

		fmt.Fprintf(&b, "   Source: %s · Published: %s · Cred %.2f · Bias: %s",
			source,
			a.PublishedAt.Format("Jan 02, 15:04"),
			a.Score,
			a.Bias,
		)
		if a.Corroborated {
			b.WriteString(" · ✅ corroborated")
		}
		b.WriteString("\n")
	}

	return b.String()
}
