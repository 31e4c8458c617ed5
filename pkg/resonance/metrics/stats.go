// Package metrics aggregates raw token statistics and synthesizes the
// three composite scalar metrics: symbolic resonance, complexity and
// readability.
package metrics

import (
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
)

// DocStats aggregates the raw token statistics the composite metrics are
// computed from.
type DocStats struct {
	WordCount           int     // non-space tokens
	SentenceCount       int     // sentence boundaries
	ContentTokenCount   int     // non-stop, non-punct, non-space tokens
	DistinctNonStopPOS  int     // distinct POS tags over non-stopword tokens
	POSTagCount         int     // distinct POS tags over all non-space tokens
	EntityTokenCount    int     // tokens covered by an entity span
	UniqueLemmaRatio    float64 // distinct lemmas / non-space tokens
	VocabularyDiversity float64 // distinct content lemmas / content tokens
	AvgSentenceLength   float64 // non-space tokens per sentence
	AvgSyllables        float64 // vowel-count syllable approximation per word
}

// ComputeStats runs one pass over the document. All divisions guard
// zero-length denominators; an empty document yields the zero value.
func ComputeStats(doc annotate.Doc) DocStats {
	var stats DocStats
	stats.SentenceCount = len(doc.Sentences)

	lemmas := make(map[string]struct{})
	contentLemmas := make(map[string]struct{})
	nonStopPOS := make(map[string]struct{})
	allPOS := make(map[string]struct{})

	syllableSum := 0
	wordTokens := 0

	for _, tok := range doc.Tokens {
		if tok.IsSpace {
			continue
		}
		stats.WordCount++
		lemmas[tok.Lemma] = struct{}{}
		allPOS[tok.POS] = struct{}{}
		if !tok.IsStop {
			nonStopPOS[tok.POS] = struct{}{}
		}
		if tok.IsContent() {
			stats.ContentTokenCount++
			contentLemmas[tok.Lemma] = struct{}{}
		}
		if !tok.IsPunct {
			syllableSum += syllables(tok.Text)
			wordTokens++
		}
	}

	for _, span := range doc.Entities {
		stats.EntityTokenCount += span.LastToken - span.FirstToken
	}

	stats.DistinctNonStopPOS = len(nonStopPOS)
	stats.POSTagCount = len(allPOS)
	if stats.WordCount > 0 {
		stats.UniqueLemmaRatio = float64(len(lemmas)) / float64(stats.WordCount)
	}
	if stats.ContentTokenCount > 0 {
		stats.VocabularyDiversity = float64(len(contentLemmas)) / float64(stats.ContentTokenCount)
	}
	if stats.SentenceCount > 0 {
		stats.AvgSentenceLength = float64(stats.WordCount) / float64(stats.SentenceCount)
	}
	if wordTokens > 0 {
		stats.AvgSyllables = float64(syllableSum) / float64(wordTokens)
	}

	return stats
}

// syllables approximates the syllable count of a word as its vowel
// characters, floored at 1.
func syllables(word string) int {
	count := 0
	for _, r := range strings.ToLower(word) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}
