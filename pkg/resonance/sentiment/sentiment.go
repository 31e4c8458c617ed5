// Package sentiment provides the rule-based polarity/subjectivity scorer
// and the confidence estimator layered on top of it.
package sentiment

import (
	"math"
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

// Sentiment is a raw polarity/subjectivity pair.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`     // -1..1
	Subjectivity float64 `json:"subjectivity"` // 0..1
}

// negationWindow is how many tokens back a negation still flips a
// sentiment word.
const negationWindow = 3

// intensifierBoost scales a sentiment word directly preceded by an
// intensity marker.
const intensifierBoost = 1.3

// Scorer derives sentiment from polarity and subjectivity lexicons with
// negation flipping and intensifier boosting. Deterministic; no trained
// state.
type Scorer struct {
	polarity     map[string]float64
	subjectivity map[string]float64
	negations    map[string]struct{}
	intensity    map[string]struct{}
}

// NewScorer creates a scorer backed by the given lexicon set.
func NewScorer(lex *lexicon.Set) *Scorer {
	neg := make(map[string]struct{}, len(lex.Negations))
	for _, w := range lex.Negations {
		neg[w] = struct{}{}
	}
	intens := make(map[string]struct{}, len(lex.Intensity))
	for _, w := range lex.Intensity {
		intens[w] = struct{}{}
	}
	return &Scorer{
		polarity:     lex.Polarity,
		subjectivity: lex.Subjectivity,
		negations:    neg,
		intensity:    intens,
	}
}

// Score computes document sentiment from lexicon hits over the token
// stream. Documents without any lexicon hit score neutral (0, 0).
func (s *Scorer) Score(doc annotate.Doc) Sentiment {
	var polaritySum float64
	var polarityHits int
	var subjSum float64
	var subjHits int

	for i, tok := range doc.Tokens {
		if tok.IsPunct || tok.IsSpace {
			continue
		}

		if subj, ok := s.subjectivity[tok.Lemma]; ok {
			subjSum += subj
			subjHits++
		}

		pol, ok := s.polarity[tok.Lemma]
		if !ok {
			continue
		}
		if s.negated(doc.Tokens, i) {
			pol *= -0.5
		}
		if i > 0 {
			if _, boost := s.intensity[strings.ToLower(doc.Tokens[i-1].Text)]; boost {
				pol *= intensifierBoost
			}
		}
		polaritySum += pol
		polarityHits++
	}

	var out Sentiment
	if polarityHits > 0 {
		out.Polarity = round3(clamp(polaritySum/float64(polarityHits), -1, 1))
	}
	if subjHits > 0 {
		out.Subjectivity = round3(clamp(subjSum/float64(subjHits), 0, 1))
	}
	return out
}

// negated reports whether a negation token occurs within the preceding
// window.
func (s *Scorer) negated(tokens []annotate.Token, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		if _, ok := s.negations[strings.ToLower(tokens[j].Text)]; ok {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
