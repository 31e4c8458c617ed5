package pattern

import (
	"sort"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
)

// MaxKeyPhrases bounds the ranked key-phrase list.
const MaxKeyPhrases = 10

// minPhraseImportance is the exclusive lower bound a phrase must clear.
const minPhraseImportance = 0.3

// KeyPhrase is a two-word phrase matching one of the POS bigram patterns.
type KeyPhrase struct {
	Text       string  `json:"text"`
	Importance float64 `json:"importance"`
	Pattern    string  `json:"pattern"`
	Start      int     `json:"start"`
	End        int     `json:"end"`
}

// phrasePatterns are the qualifying (POS, POS) bigrams.
var phrasePatterns = map[[2]string]string{
	{annotate.TagAdj, annotate.TagNoun}:  "ADJ+NOUN",
	{annotate.TagNoun, annotate.TagNoun}: "NOUN+NOUN",
	{annotate.TagVerb, annotate.TagAdv}:  "VERB+ADV",
	{annotate.TagAdv, annotate.TagAdj}:   "ADV+ADJ",
}

// extractKeyPhrases slides a window of two over the content-word stream,
// keeps pairs whose POS bigram matches a pattern and whose importance
// clears the threshold, sorts descending and truncates.
func extractKeyPhrases(doc annotate.Doc) []KeyPhrase {
	content := contentTokens(doc)

	var phrases []KeyPhrase
	for w := 0; w+1 < len(content); w++ {
		first := doc.Tokens[content[w]]
		second := doc.Tokens[content[w+1]]

		tag, ok := phrasePatterns[[2]string{first.POS, second.POS}]
		if !ok {
			continue
		}

		importance := (posWeight(first.POS) + posWeight(second.POS)) / 2
		importance += float64(len(first.Text)+len(second.Text)) / 20
		if first.IsStop || second.IsStop {
			importance -= 0.3
		}
		if importance < 0 {
			importance = 0
		}
		if importance <= minPhraseImportance {
			continue
		}

		phrases = append(phrases, KeyPhrase{
			Text:       doc.Text[first.Start:second.End()],
			Importance: round3(importance),
			Pattern:    tag,
			Start:      first.Start,
			End:        second.End(),
		})
	}

	sort.SliceStable(phrases, func(i, j int) bool {
		return phrases[i].Importance > phrases[j].Importance
	})
	if len(phrases) > MaxKeyPhrases {
		phrases = phrases[:MaxKeyPhrases]
	}
	return phrases
}
