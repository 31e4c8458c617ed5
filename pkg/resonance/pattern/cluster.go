package pattern

import (
	"sort"
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
)

// MaxClusterEntries caps each category's ranked word list.
const MaxClusterEntries = 5

// Cluster groups the content words matching one semantic category.
type Cluster struct {
	Category string         `json:"category"`
	Entries  []ClusterEntry `json:"entries"`
}

// ClusterEntry is one matched word with its POS-based weight.
type ClusterEntry struct {
	Word   string  `json:"word"`
	POS    string  `json:"pos"`
	Weight float64 `json:"weight"`
}

// extractClusters matches content-token lemmas against the category
// lexicons (exact match or lexicon word contained in the lemma), ranks
// each group by POS weight descending, caps groups at MaxClusterEntries
// and drops empty categories. Category order is fixed by the lexicon.
func (e *Extractor) extractClusters(doc annotate.Doc) []Cluster {
	matched := make(map[string][]ClusterEntry, len(e.lex.Categories))
	seen := make(map[string]map[string]struct{}, len(e.lex.Categories))

	for _, i := range contentTokens(doc) {
		tok := doc.Tokens[i]
		for _, category := range e.lex.CategoryOrder {
			if !matchesCategory(e.lex.Categories[category], tok.Lemma) {
				continue
			}
			if seen[category] == nil {
				seen[category] = make(map[string]struct{})
			}
			if _, dup := seen[category][tok.Lemma]; dup {
				continue
			}
			seen[category][tok.Lemma] = struct{}{}
			matched[category] = append(matched[category], ClusterEntry{
				Word:   tok.Lemma,
				POS:    tok.POS,
				Weight: posWeight(tok.POS),
			})
		}
	}

	var clusters []Cluster
	for _, category := range e.lex.CategoryOrder {
		entries := matched[category]
		if len(entries) == 0 {
			continue
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Weight > entries[j].Weight
		})
		if len(entries) > MaxClusterEntries {
			entries = entries[:MaxClusterEntries]
		}
		clusters = append(clusters, Cluster{Category: category, Entries: entries})
	}
	return clusters
}

// matchesCategory reports whether the lemma matches any lexicon word
// exactly or contains one as a substring ("excited" matches "excite").
func matchesCategory(words []string, lemma string) bool {
	for _, w := range words {
		if lemma == w || strings.Contains(lemma, w) {
			return true
		}
	}
	return false
}
