package annotate

import (
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

// Annotator turns raw text into a fully annotated Doc:
// text → tokenization → sentence splitting → lemmatization → POS tagging
// → entity recognition → dependency labeling.
//
// All stages are rule-based and deterministic.
type Annotator struct {
	stopwords  map[string]struct{}
	recognizer recognizer
	firstNames map[string]struct{}
}

// New creates an annotator backed by the given lexicon set.
func New(lex *lexicon.Set) *Annotator {
	stops := make(map[string]struct{}, len(lex.Stopwords))
	for _, w := range lex.Stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	names := make(map[string]struct{}, len(lex.FirstNames))
	for _, n := range lex.FirstNames {
		names[strings.ToLower(n)] = struct{}{}
	}
	gaz := make(map[string]string, len(lex.Gazetteer))
	for phrase, label := range lex.Gazetteer {
		gaz[strings.ToLower(phrase)] = label
	}

	return &Annotator{
		stopwords:  stops,
		firstNames: names,
		recognizer: recognizer{gazetteer: gaz, firstNames: names},
	}
}

// Annotate runs the full annotation pipeline. It never fails for
// well-formed UTF-8 input; the error return exists for external annotator
// implementations behind the same interface.
func (a *Annotator) Annotate(text string) (Doc, error) {
	tokens := tokenize(text)
	sentences := splitSentences(tokens)

	for i := range tokens {
		tokens[i].Lemma = lemmatize(tokens[i].Text)
		if _, ok := a.stopwords[strings.ToLower(tokens[i].Text)]; ok {
			tokens[i].IsStop = true
		}
	}

	tagPOS(tokens, sentences, a.firstNames)
	entities := a.recognizer.recognize(text, tokens)

	// Entity membership upgrades word tokens to proper nouns so the
	// dependency pass and downstream extractors see them as nominals.
	for _, span := range entities {
		if span.Label != LabelPerson && span.Label != LabelOrg &&
			span.Label != LabelGPE && span.Label != LabelLoc {
			continue
		}
		for i := span.FirstToken; i < span.LastToken && i < len(tokens); i++ {
			if !tokens[i].IsPunct && tokens[i].POS != TagNum {
				tokens[i].POS = TagPropn
			}
		}
	}

	labelDependencies(tokens, sentences)

	return Doc{
		Text:      text,
		Tokens:    tokens,
		Sentences: sentences,
		Entities:  entities,
	}, nil
}
