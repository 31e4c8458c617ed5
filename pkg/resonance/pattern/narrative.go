package pattern

import (
	"github.com/cognicore/resonance/pkg/resonance/annotate"
)

// MaxNarrativeEntries caps each narrative bucket.
const MaxNarrativeEntries = 5

// Narrative holds the de-duplicated, size-capped narrative buckets. The
// buckets are unranked sets; entry order follows document order.
type Narrative struct {
	Characters      []string `json:"characters,omitempty"`
	Actions         []string `json:"actions,omitempty"`
	Settings        []string `json:"settings,omitempty"`
	TemporalMarkers []string `json:"temporal_markers,omitempty"`
}

// Empty reports whether no bucket has entries.
func (n Narrative) Empty() bool {
	return len(n.Characters) == 0 && len(n.Actions) == 0 &&
		len(n.Settings) == 0 && len(n.TemporalMarkers) == 0
}

// extractNarrative classifies each token into at most one bucket in a
// single pass: characters (person entities or proper nouns), actions
// (non-stopword verb lemmas), settings (location and organization
// entities), temporal markers (date/time entities or temporal lemmas).
func (e *Extractor) extractNarrative(doc annotate.Doc) Narrative {
	temporal := make(map[string]struct{}, len(e.lex.Temporal))
	for _, w := range e.lex.Temporal {
		temporal[w] = struct{}{}
	}

	// Token index → covering entity span.
	covering := make(map[int]annotate.EntitySpan)
	for _, span := range doc.Entities {
		for i := span.FirstToken; i < span.LastToken; i++ {
			covering[i] = span
		}
	}

	var out Narrative
	characters := newBucket(&out.Characters)
	actions := newBucket(&out.Actions)
	settings := newBucket(&out.Settings)
	markers := newBucket(&out.TemporalMarkers)

	for i, tok := range doc.Tokens {
		if tok.IsPunct || tok.IsSpace {
			continue
		}

		if span, ok := covering[i]; ok {
			switch span.Label {
			case annotate.LabelPerson:
				characters.add(span.Text)
				continue
			case annotate.LabelGPE, annotate.LabelLoc, annotate.LabelOrg:
				settings.add(span.Text)
				continue
			case annotate.LabelDate, annotate.LabelTime:
				markers.add(span.Text)
				continue
			}
		}

		switch {
		case tok.POS == annotate.TagPropn:
			characters.add(tok.Text)
		case tok.POS == annotate.TagVerb && !tok.IsStop:
			actions.add(tok.Lemma)
		default:
			if _, ok := temporal[tok.Lemma]; ok {
				markers.add(tok.Lemma)
			}
		}
	}

	return out
}

// bucket appends de-duplicated entries to a capped list.
type bucket struct {
	dst  *[]string
	seen map[string]struct{}
}

func newBucket(dst *[]string) *bucket {
	return &bucket{dst: dst, seen: make(map[string]struct{})}
}

func (b *bucket) add(entry string) {
	if len(*b.dst) >= MaxNarrativeEntries {
		return
	}
	if _, ok := b.seen[entry]; ok {
		return
	}
	b.seen[entry] = struct{}{}
	*b.dst = append(*b.dst, entry)
}
