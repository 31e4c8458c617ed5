// Package pattern extracts semantic, emotional and narrative patterns from
// an annotated document: key phrases, semantic clusters, emotion lexicon
// scores and narrative elements. The four sub-extractors are independent,
// pure and order-preserving over the token stream.
package pattern

import (
	"math"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

// Bundle is the combined output of the four sub-extractors.
type Bundle struct {
	KeyPhrases []KeyPhrase `json:"key_phrases"`
	Clusters   []Cluster   `json:"semantic_clusters"`
	Emotions   []Emotion   `json:"emotional_patterns"`
	Narrative  Narrative   `json:"narrative_elements"`
}

// Extractor runs the four sub-extractors over a document.
type Extractor struct {
	lex *lexicon.Set
}

// NewExtractor creates a pattern extractor backed by the given lexicon set.
func NewExtractor(lex *lexicon.Set) *Extractor {
	return &Extractor{lex: lex}
}

// Extract runs all four sub-extractors.
func (e *Extractor) Extract(doc annotate.Doc) Bundle {
	return Bundle{
		KeyPhrases: extractKeyPhrases(doc),
		Clusters:   e.extractClusters(doc),
		Emotions:   e.extractEmotions(doc.Text),
		Narrative:  e.extractNarrative(doc),
	}
}

// posWeights rank part-of-speech classes by informativeness; shared by the
// key-phrase and cluster extractors.
var posWeights = map[string]float64{
	annotate.TagPropn: 0.9,
	annotate.TagNoun:  0.8,
	annotate.TagVerb:  0.7,
	annotate.TagAdj:   0.6,
	annotate.TagAdv:   0.5,
}

const defaultPOSWeight = 0.4

func posWeight(pos string) float64 {
	if w, ok := posWeights[pos]; ok {
		return w
	}
	return defaultPOSWeight
}

// contentTokens filters the token stream down to content words, keeping
// document order. The returned indices point into doc.Tokens.
func contentTokens(doc annotate.Doc) []int {
	var idx []int
	for i, tok := range doc.Tokens {
		if tok.IsContent() {
			idx = append(idx, i)
		}
	}
	return idx
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
