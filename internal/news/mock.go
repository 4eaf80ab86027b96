package news

import (
	"strings"
	"time"

	"github.com/hoanghai1803/newsgenie/internal/models"
)

// mockArticles returns the deterministic demo dataset filtered by category.
// Publish times are expressed relative to the clock so freshness scoring
// behaves the same as with live data.
func (c *Client) mockArticles(category string) []models.Article {
	now := c.now().UTC()

	demo := []models.Article{
		{
			Title:       "Nvidia unveils energy-efficient inference GPU",
			Description: "Lower cost per token for LLM serving.",
			URL:         "https://www.reuters.com/technology/ai-nvidia-inference-gpu",
			Source:      "Reuters",
			PublishedAt: now.Add(-2 * time.Hour),
		},
		{
			Title:       "TSMC expands advanced packaging",
			Description: "CoWoS easing GPU bottlenecks.",
			URL:         "https://www.bloomberg.com/tsmc-packaging",
			Source:      "Bloomberg",
			PublishedAt: now.Add(-5 * time.Hour),
		},
		{
			Title:       "Markets slip as yields rise",
			Description: "Energy up on crude strength.",
			URL:         "https://www.wsj.com/markets/daily-recap",
			Source:      "WSJ",
			PublishedAt: now.Add(-3 * time.Hour),
		},
		{
			Title:       "Injury watch reshapes NFL outlook",
			Description: "Star WR questionable.",
			URL:         "https://www.espn.com/nfl/story",
			Source:      "ESPN",
			PublishedAt: now.Add(-7 * time.Hour),
		},
	}

	switch strings.ToLower(category) {
	case "technology":
		return demo[:2]
	case "finance":
		return demo[2:3]
	case "sports":
		return demo[3:4]
	default:
		return demo
	}
}
