package credibility

// Leaning is a coarse political-leaning label for a news domain.
type Leaning string

const (
	LeaningLeft    Leaning = "Left"
	LeaningCenter  Leaning = "Center"
	LeaningRight   Leaning = "Right"
	LeaningUnknown Leaning = "Unknown"

	// LeaningCenterEst is the heuristic fallback for unlisted domains with
	// high trust. It is an estimate derived from trust thresholds, not a
	// measured political classification.
	LeaningCenterEst Leaning = "Center (est.)"
)

// SourceReputation holds the static reference data for one domain.
type SourceReputation struct {
	Trust   float64 // in [0,1]
	Leaning Leaning
}

// Reputation maps registrable domains to their reference reputation.
// It is read-only once handed to a Model.
type Reputation map[string]SourceReputation

// DefaultReputation returns the built-in reputation table. Trust scores are
// editorial reference values; leanings for tech/finance/sports outlets are
// recorded as Center since they are usually non-partisan.
func DefaultReputation() Reputation {
	return Reputation{
		"reuters.com":         {Trust: 0.95, Leaning: LeaningCenter},
		"apnews.com":          {Trust: 0.93, Leaning: LeaningCenter},
		"bbc.com":             {Trust: 0.90, Leaning: LeaningCenter},
		"bloomberg.com":       {Trust: 0.92, Leaning: LeaningCenter},
		"wsj.com":             {Trust: 0.88, Leaning: LeaningRight},
		"cnbc.com":            {Trust: 0.85, Leaning: LeaningCenter},
		"theguardian.com":     {Trust: 0.84, Leaning: LeaningLeft},
		"foxnews.com":         {Trust: 0.75, Leaning: LeaningRight},
		"npr.org":             {Trust: 0.90, Leaning: LeaningCenter},
		"theverge.com":        {Trust: 0.80, Leaning: LeaningCenter},
		"techcrunch.com":      {Trust: 0.80, Leaning: LeaningCenter},
		"espn.com":            {Trust: 0.88, Leaning: LeaningCenter},
		"theathletic.com":     {Trust: 0.90, Leaning: LeaningCenter},
		"nfl.com":             {Trust: 0.85, Leaning: LeaningCenter},
		"associatedpress.com": {Leaning: LeaningCenter},
		"nytimes.com":         {Leaning: LeaningLeft},
		"huffpost.com":        {Leaning: LeaningLeft},
		"vox.com":             {Leaning: LeaningLeft},
		"washingtontimes.com": {Leaning: LeaningRight},
		"nationalreview.com":  {Leaning: LeaningRight},
	}
}
