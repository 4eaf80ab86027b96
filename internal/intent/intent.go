// Package intent classifies a free-text chat message as a news request or a
// general-knowledge question. Classification is pure keyword matching:
// stateless, deterministic, no I/O.
package intent

import "strings"

// Intent is the routing decision for one chat turn.
type Intent string

const (
	// News routes the turn through fetch -> score -> rank -> format.
	News Intent = "News.Fetch"
	// General routes the turn straight to the answer service.
	General Intent = "General.Fact"
)

// newsTokens are substrings whose presence marks a message as a news
// request. The set covers general news phrasing plus finance and tech topics
// the product cares about.
var newsTokens = []string{
	"news", "latest", "today", "headlines", "breaking",
	"earnings", "market", "stock", "fed", "gdp",
	"nfl", "nba", "mlb", "soccer", "premier", "game", "score",
	"ai", "chip", "iphone", "tesla", "nvidia",
	"cloud", "kubernetes", "microsoft", "google",
}

// sportsTokens force the Sports category for the turn, overriding whatever
// categories the user had selected.
var sportsTokens = []string{
	"nfl", "nba", "mlb", "nhl", "soccer", "premier", "la liga", "bundesliga",
	"bears", "cowboys", "packers", "chiefs", "eagles", "vikings", "patriots",
}

// Classify returns News if the lower-cased text contains any news token,
// else General. Sports terms count as news.
func Classify(text string) Intent {
	t := strings.ToLower(text)
	if IsSports(text) {
		return News
	}
	for _, tok := range newsTokens {
		if strings.Contains(t, tok) {
			return News
		}
	}
	return General
}

// IsSports reports whether the text mentions a known league or team.
func IsSports(text string) bool {
	t := strings.ToLower(text)
	for _, tok := range sportsTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	return false
}
