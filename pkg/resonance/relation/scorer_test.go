package relation

import (
	"fmt"
	"math"
	"testing"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

func annotated(t *testing.T, text string) annotate.Doc {
	t.Helper()
	doc, err := annotate.New(lexicon.Default()).Annotate(text)
	if err != nil {
		t.Fatalf("Annotate failed: %v", err)
	}
	return doc
}

func TestScoreRanking(t *testing.T) {
	scorer := NewScorer()
	doc := annotated(t, "I absolutely love this brilliant new project!")

	rels := scorer.Score(doc)
	if len(rels) != 4 {
		t.Fatalf("Expected 4 relationships, got %d: %+v", len(rels), rels)
	}

	// dobj 0.8 + content source 0.2 + content head 0.1.
	top := rels[0]
	if top.Source != "project" || top.Target != "love" || top.Relation != "dobj" {
		t.Errorf("Expected project -dobj-> love on top, got %+v", top)
	}
	if math.Abs(top.Strength-1.1) > 1e-9 {
		t.Errorf("Expected strength 1.1, got %v", top.Strength)
	}
	if top.Role != RoleObject {
		t.Errorf("Expected object role, got %s", top.Role)
	}

	for i := 1; i < len(rels); i++ {
		if rels[i].Strength > rels[i-1].Strength {
			t.Errorf("Relationships not sorted at %d", i)
		}
	}
	for _, rel := range rels {
		if rel.Strength <= 0.3 {
			t.Errorf("Relationship below threshold survived: %+v", rel)
		}
	}
}

func TestScoreSkipsStopwordSources(t *testing.T) {
	scorer := NewScorer()
	doc := annotated(t, "I absolutely love this brilliant new project!")

	// "I" is nsubj but a stopword; it must not appear as a source.
	for _, rel := range scorer.Score(doc) {
		if rel.Source == "I" {
			t.Errorf("Stopword source should be skipped: %+v", rel)
		}
	}
}

func TestScoreThreshold(t *testing.T) {
	scorer := NewScorer()

	// ccomp base 0.5 with a stopword head and no content POS lands exactly
	// on 0.3, which must be excluded.
	doc := annotate.Doc{
		Text: "synthetic",
		Tokens: []annotate.Token{
			{Text: "that", POS: annotate.TagDet, IsStop: true},
			{Text: "odd", POS: annotate.TagAdj, Dep: "ccomp", Head: 0},
		},
	}
	if rels := scorer.Score(doc); len(rels) != 0 {
		t.Errorf("Expected boundary strength 0.3 to be excluded, got %+v", rels)
	}
}

func TestScoreTruncates(t *testing.T) {
	scorer := NewScorer()

	doc := annotate.Doc{Text: "synthetic"}
	doc.Tokens = append(doc.Tokens, annotate.Token{Text: "verb", POS: annotate.TagVerb, Dep: "ROOT"})
	for i := 0; i < MaxRelationships+10; i++ {
		doc.Tokens = append(doc.Tokens, annotate.Token{
			Text: fmt.Sprintf("noun%d", i),
			POS:  annotate.TagNoun,
			Dep:  annotate.DepDobj,
			Head: 0,
		})
	}

	rels := scorer.Score(doc)
	if len(rels) != MaxRelationships {
		t.Errorf("Expected %d relationships, got %d", MaxRelationships, len(rels))
	}
}

func TestClassifyRoles(t *testing.T) {
	cases := []struct{ dep, role string }{
		{annotate.DepNsubj, RoleActor},
		{annotate.DepDobj, RoleObject},
		{annotate.DepPobj, RoleObject},
		{annotate.DepAmod, RoleDescriptor},
		{annotate.DepAdvmod, RoleModifier},
		{"ccomp", RoleOther},
	}
	for _, c := range cases {
		if got := classify(c.dep); got != c.role {
			t.Errorf("classify(%s) = %s, expected %s", c.dep, got, c.role)
		}
	}
}
