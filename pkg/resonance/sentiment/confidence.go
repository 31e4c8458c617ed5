package sentiment

import (
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

// ConfidenceEstimator derives a bounded sentiment confidence from polarity
// magnitude, text length and intensity-word density.
type ConfidenceEstimator struct {
	intensity []string
}

// NewConfidenceEstimator creates an estimator using the lexicon's
// intensity markers.
func NewConfidenceEstimator(lex *lexicon.Set) *ConfidenceEstimator {
	return &ConfidenceEstimator{intensity: lex.Intensity}
}

// Estimate computes confidence = clamp(|polarity| + length_factor +
// intensity_factor, 0, 1) rounded to 3 decimals. Intensity markers are
// matched case-insensitively as substrings of the whole text, each
// counting at most once. Empty text yields 0.
func (e *ConfidenceEstimator) Estimate(text string, polarity float64) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	words := float64(len(strings.Fields(text)))
	lengthFactor := min(words/50, 1) * 0.2

	lower := strings.ToLower(text)
	hits := 0.0
	for _, marker := range e.intensity {
		if strings.Contains(lower, marker) {
			hits++
		}
	}
	intensityFactor := min(hits/10, 0.3)

	pol := polarity
	if pol < 0 {
		pol = -pol
	}
	return round3(clamp(pol+lengthFactor+intensityFactor, 0, 1))
}
