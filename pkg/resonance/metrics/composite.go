package metrics

import (
	"math"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
)

// Composite holds the three synthesized scalar metrics, each in [0, 1].
type Composite struct {
	SymbolicResonance float64 `json:"symbolic_resonance"`
	Complexity        float64 `json:"complexity"`
	Readability       float64 `json:"readability"`
}

// Synthesize computes the composite metrics from document statistics and
// the sentiment pair. Pure; an empty document yields exactly zero for all
// three.
func Synthesize(stats DocStats, polarity, confidence float64) Composite {
	if stats.WordCount == 0 {
		return Composite{}
	}
	return Composite{
		SymbolicResonance: symbolicResonance(stats, polarity, confidence),
		Complexity:        complexity(stats),
		Readability:       readability(stats),
	}
}

// symbolicResonance blends sentiment strength with lexical and referential
// richness: |polarity|·confidence + POS variety + entity density + lemma
// uniqueness, capped at 1.
func symbolicResonance(stats DocStats, polarity, confidence float64) float64 {
	score := math.Abs(polarity) * confidence
	score += math.Min(float64(stats.DistinctNonStopPOS)/10, 0.3)
	score += math.Min(float64(stats.EntityTokenCount)/20, 0.2)
	score += math.Min(stats.UniqueLemmaRatio, 0.3)
	return round3(math.Min(score, 1))
}

// complexity averages sentence length, vocabulary diversity and POS tag
// variety over the universal tag inventory.
func complexity(stats DocStats) float64 {
	score := (stats.AvgSentenceLength/20 +
		stats.VocabularyDiversity +
		float64(stats.POSTagCount)/float64(annotate.UniversalTagCount)) / 3
	return round3(math.Min(score, 1))
}

// readability normalizes a Flesch-style reading ease score to [0, 1],
// using the vowel-count syllable approximation.
func readability(stats DocStats) float64 {
	if stats.SentenceCount == 0 {
		return 0
	}
	flesch := 206.835 - 1.015*stats.AvgSentenceLength - 84.6*stats.AvgSyllables
	if flesch < 0 {
		flesch = 0
	}
	if flesch > 100 {
		flesch = 100
	}
	return round3(flesch / 100)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
