// Package sentiment scores entry text on a [-1, 1] polarity scale.
package sentiment

import (
	"math"
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer maps free text to a polarity score using the VADER lexicon model.
// Scoring is deterministic and side-effect free.
type Scorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewScorer builds a Scorer with the default VADER lexicon.
func NewScorer() *Scorer {
	return &Scorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the polarity of text in [-1, 1]: positive values indicate
// net-positive affect, negative values net-negative. Empty or unscoreable
// text (pure punctuation, scripts absent from the lexicon) scores 0.
func (s *Scorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	compound := s.analyzer.PolarityScores(text).Compound
	if math.IsNaN(compound) {
		return 0
	}
	return math.Max(-1, math.Min(1, compound))
}
