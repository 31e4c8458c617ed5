// Package entity scores, sorts and truncates the named entities of one
// analysis, attaching importance, document frequency and a local
// sentiment-context tag to each span.
package entity

import (
	"math"
	"sort"
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

// MaxEntities bounds the ranked output.
const MaxEntities = 20

// Sentiment context tags.
const (
	ContextPositive = "positive"
	ContextNegative = "negative"
	ContextNeutral  = "neutral"
)

// contextWindow is the symmetric token window voted over for the local
// sentiment context.
const contextWindow = 3

// Entity is one ranked entity occurrence.
type Entity struct {
	Text             string  `json:"text"`
	Label            string  `json:"label"`
	Description      string  `json:"description"`
	Start            int     `json:"start"`
	End              int     `json:"end"`
	Importance       float64 `json:"importance"`
	Frequency        int     `json:"frequency"`
	SentimentContext string  `json:"sentiment_context"`
}

// labelWeights are the base importance weights per entity label; unlisted
// labels fall back to defaultLabelWeight.
var labelWeights = map[string]float64{
	annotate.LabelPerson:  0.9,
	annotate.LabelOrg:     0.8,
	annotate.LabelGPE:     0.7,
	annotate.LabelLoc:     0.7,
	annotate.LabelEvent:   0.7,
	annotate.LabelMoney:   0.6,
	annotate.LabelProduct: 0.6,
	annotate.LabelDate:    0.4,
	annotate.LabelTime:    0.4,
}

const defaultLabelWeight = 0.5

// Ranker ranks entity spans.
type Ranker struct {
	positive map[string]struct{}
	negative map[string]struct{}
}

// NewRanker creates a ranker using the lexicon's context word lists.
func NewRanker(lex *lexicon.Set) *Ranker {
	pos := make(map[string]struct{}, len(lex.ContextPositive))
	for _, w := range lex.ContextPositive {
		pos[w] = struct{}{}
	}
	neg := make(map[string]struct{}, len(lex.ContextNegative))
	for _, w := range lex.ContextNegative {
		neg[w] = struct{}{}
	}
	return &Ranker{positive: pos, negative: neg}
}

// Rank derives importance, frequency and sentiment context for every
// entity span, sorts by importance descending (stable on document order)
// and truncates to MaxEntities.
//
// Frequency is counted per distinct lowercased surface string; spans that
// share text but differ in label deliberately share one count.
func (r *Ranker) Rank(doc annotate.Doc) []Entity {
	if len(doc.Entities) == 0 {
		return nil
	}

	freq := make(map[string]int, len(doc.Entities))
	for _, span := range doc.Entities {
		freq[strings.ToLower(span.Text)]++
	}

	entities := make([]Entity, 0, len(doc.Entities))
	for _, span := range doc.Entities {
		count := freq[strings.ToLower(span.Text)]
		entities = append(entities, Entity{
			Text:             span.Text,
			Label:            span.Label,
			Description:      annotate.DescribeEntity(span.Label),
			Start:            span.Start,
			End:              span.End,
			Importance:       importance(span, count),
			Frequency:        count,
			SentimentContext: r.context(doc.Tokens, span),
		})
	}

	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Importance > entities[j].Importance
	})
	if len(entities) > MaxEntities {
		entities = entities[:MaxEntities]
	}
	return entities
}

// importance = label base weight + frequency boost + length boost.
func importance(span annotate.EntitySpan, frequency int) float64 {
	base, ok := labelWeights[span.Label]
	if !ok {
		base = defaultLabelWeight
	}
	freqBoost := math.Min(float64(frequency)/5, 1) * 0.3
	lenBoost := math.Min(float64(len(span.Text))/20, 0.3)
	return round3(base + freqBoost + lenBoost)
}

// context majority-votes the positive/negative lists over a symmetric
// window of tokens around the span.
func (r *Ranker) context(tokens []annotate.Token, span annotate.EntitySpan) string {
	first := span.FirstToken - contextWindow
	if first < 0 {
		first = 0
	}
	last := span.LastToken + contextWindow
	if last > len(tokens) {
		last = len(tokens)
	}

	positives, negatives := 0, 0
	for i := first; i < last; i++ {
		if i >= span.FirstToken && i < span.LastToken {
			continue
		}
		lemma := tokens[i].Lemma
		if _, ok := r.positive[lemma]; ok {
			positives++
		}
		if _, ok := r.negative[lemma]; ok {
			negatives++
		}
	}

	switch {
	case positives > negatives:
		return ContextPositive
	case negatives > positives:
		return ContextNegative
	default:
		return ContextNeutral
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
