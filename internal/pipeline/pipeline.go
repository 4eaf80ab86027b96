// Package pipeline orchestrates one chat turn: it routes the message to the
// news path (fetch, score, rank, format) or the general path (direct LLM
// answer), walking an explicit workflow graph so the control flow stays
// inspectable and testable in isolation.
package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/hoanghai1803/newsgenie/internal/answer"
	"github.com/hoanghai1803/newsgenie/internal/corroborate"
	"github.com/hoanghai1803/newsgenie/internal/credibility"
	"github.com/hoanghai1803/newsgenie/internal/intent"
	"github.com/hoanghai1803/newsgenie/internal/models"
	"github.com/hoanghai1803/newsgenie/internal/report"
)

// maxArticles caps each category's leaderboard.
const maxArticles = 4

// apologyMessage is surfaced when the answer service is missing or fails.
// The turn never crashes over it.
const apologyMessage = "Sorry, I can't answer that right now. Please try again in a moment."

// DefaultCategories is the fan-out used when the caller selects none.
var DefaultCategories = []string{"Technology", "Finance", "Sports"}

// AllCategories is the full category list the sidebar offers.
var AllCategories = []string{"Top US", "Top Global", "Technology", "Finance", "Sports"}

// Fetcher is the article source the news path pulls from.
type Fetcher interface {
	Fetch(ctx context.Context, category, region, queryHint string) ([]models.Article, models.SourceLabel)
}

// State carries one turn through the workflow graph.
type State struct {
	UserText  string        `json:"user_text"`
	Category  string        `json:"category,omitempty"`
	QueryHint string        `json:"query_hint,omitempty"`
	Intent    intent.Intent `json:"intent"`

	Articles    []models.Article `json:"articles,omitempty"`
	Degraded    bool             `json:"degraded"`
	Answer      string           `json:"answer"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// Pipeline wires the turn workflow's collaborators together.
type Pipeline struct {
	fetcher  Fetcher
	model    *credibility.Model
	searcher corroborate.Searcher
	answerer answer.Provider // nil when no AI key is configured
	region   string
	topK     int
	now      func() time.Time
}

// New creates a Pipeline. The answer provider may be nil; the general path
// then surfaces the apology message instead of an LLM answer.
func New(fetcher Fetcher, model *credibility.Model, searcher corroborate.Searcher, answerer answer.Provider, region string, topK int) *Pipeline {
	return &Pipeline{
		fetcher:  fetcher,
		model:    model,
		searcher: searcher,
		answerer: answerer,
		region:   region,
		topK:     topK,
		now:      time.Now,
	}
}

// WithClock overrides the pipeline's clock.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// RunTurn executes one chat turn. News turns fan out to one Result per
// active category (a deliberate product choice: per-category leaderboards,
// never one merged ranking), with sports questions collapsing the fan-out to
// the single Sports category. General turns produce a single result.
func (p *Pipeline) RunTurn(ctx context.Context, text string, categories []string, queryHint string) []State {
	turnIntent := intent.Classify(text)

	if turnIntent == intent.General {
		return []State{p.Run(ctx, State{UserText: text, Intent: turnIntent})}
	}

	// For newsy asks, the chat text itself is the search hint unless the
	// caller supplied a dedicated one.
	hint := queryHint
	if hint == "" {
		hint = text
	}

	runCats := categories
	if intent.IsSports(text) {
		runCats = []string{"Sports"}
	} else if len(runCats) == 0 {
		runCats = DefaultCategories
	}

	results := make([]State, 0, len(runCats))
	for _, cat := range runCats {
		results = append(results, p.Run(ctx, State{
			UserText:  text,
			Category:  cat,
			QueryHint: hint,
			Intent:    turnIntent,
		}))
	}
	return results
}

// Run walks the workflow graph from the router until the end node. Each node
// returns the next node; transitions are checked against the static edge
// table so a wiring mistake fails loudly in tests rather than looping.
func (p *Pipeline) Run(ctx context.Context, s State) State {
	node := NodeRouter
	for node != NodeEnd {
		next := NodeEnd
		switch node {
		case NodeRouter:
			s, next = p.routerNode(s)
		case NodeNews:
			s, next = p.newsNode(ctx, s)
		case NodeFormat:
			s, next = p.formatNode(s)
		case NodeGeneral:
			s, next = p.generalNode(ctx, s)
		}

		if !validTransition(node, next) {
			slog.Error("invalid workflow transition", "from", node, "to", next)
			next = NodeEnd
		}
		node = next
	}
	return s
}

// routerNode classifies the turn when the caller has not already done so.
func (p *Pipeline) routerNode(s State) (State, Node) {
	if s.Intent == "" {
		s.Intent = intent.Classify(s.UserText)
	}
	if s.Intent == intent.News {
		return s, NodeNews
	}
	return s, NodeGeneral
}

// newsNode fetches, scores, and ranks articles for the turn's category.
// Scoring failures are contained per article inside rank; a turn where every
// article fails renders as "no credible updates" instead of crashing.
func (p *Pipeline) newsNode(ctx context.Context, s State) (State, Node) {
	category := s.Category
	if category == "" {
		category = "Technology"
	}
	s.Category = category

	query := s.QueryHint
	if query == "" {
		query = s.UserText
	}

	raw, label := p.fetcher.Fetch(ctx, category, p.region, query)
	s.Degraded = label == models.SourceMock

	s.Articles = p.rank(raw)
	corroborate.Mark(ctx, p.searcher, query, p.topK, s.Articles)

	return s, NodeFormat
}

// rank scores every article and returns the top ones, best first. The sort
// is stable: equal scores keep the provider's original order. Articles that
// fail to score are skipped; the rest of the batch still ranks.
func (p *Pipeline) rank(raw []models.Article) []models.Article {
	scored := make([]models.Article, 0, len(raw))
	for _, a := range raw {
		if sa, ok := p.score(a); ok {
			scored = append(scored, sa)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxArticles {
		scored = scored[:maxArticles]
	}
	return scored
}

// score fills in the derived credibility fields for one article. A panic
// while scoring is contained to this article alone and reported as ok=false,
// so one bad article never drops the rest of the batch.
func (p *Pipeline) score(a models.Article) (scored models.Article, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("scoring article failed, skipping it", "url", a.URL, "panic", rec)
			ok = false
		}
	}()

	a.Domain = credibility.Domain(a.URL)
	a.Trust = p.model.TrustScore(a.Domain)
	a.Bias = string(p.model.BiasLabel(a.Domain))
	a.Score = p.model.CombinedScore(a.Domain, a.PublishedAt)
	return a, true
}

// formatNode renders the ranked result into the turn's textual answer.
func (p *Pipeline) formatNode(s State) (State, Node) {
	s.GeneratedAt = p.now()
	s.Answer = report.Render(report.Report{
		Category:    s.Category,
		Region:      p.region,
		Query:       s.QueryHint,
		Degraded:    s.Degraded,
		GeneratedAt: s.GeneratedAt,
		Articles:    s.Articles,
	})
	return s, NodeEnd
}

// generalNode answers the question directly. Answer-service failures are
// caught here and surfaced as a short apology rather than an error.
func (p *Pipeline) generalNode(ctx context.Context, s State) (State, Node) {
	s.GeneratedAt = p.now()

	if p.answerer == nil {
		slog.Info("answer service not configured, surfacing apology")
		s.Answer = apologyMessage
		return s, NodeEnd
	}

	text, err := p.answerer.Answer(ctx, s.UserText)
	if err != nil {
		slog.Warn("answer service failed", "error", err)
		s.Answer = apologyMessage
		return s, NodeEnd
	}

	s.Answer = text
	return s, NodeEnd
}
