package entity

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

func TestRankOrderingAndScores(t *testing.T) {
	ranker := NewRanker(lexicon.Default())
	doc := annotated(t, "Sarah Johnson founded Acme Corporation in London. London is great.")

	entities := ranker.Rank(doc)
	if len(entities) != 4 {
		t.Fatalf("Expected 4 entities, got %d: %+v", len(entities), entities)
	}

	// PERSON base 0.9 + freq boost 0.06 + capped length boost 0.3.
	if math.Abs(entities[0].Importance-1.26) > 1e-9 {
		t.Errorf("Expected top importance 1.26, got %v", entities[0].Importance)
	}
	if entities[0].Text != "Sarah Johnson" || entities[0].Label != "PERSON" {
		t.Errorf("Expected Sarah Johnson/PERSON on top, got %+v", entities[0])
	}

	for i := 1; i < len(entities); i++ {
		if entities[i].Importance > entities[i-1].Importance {
			t.Errorf("Entities not sorted by importance at %d", i)
		}
	}

	// Both London mentions share one frequency count.
	for _, ent := range entities {
		if ent.Text == "London" && ent.Frequency != 2 {
			t.Errorf("Expected London frequency 2, got %d", ent.Frequency)
		}
	}
}

func TestRankSentimentContext(t *testing.T) {
	ranker := NewRanker(lexicon.Default())

	doc := annotated(t, "London is great.")
	entities := ranker.Rank(doc)
	if len(entities) != 1 {
		t.Fatalf("Expected 1 entity, got %d", len(entities))
	}
	if entities[0].SentimentContext != ContextPositive {
		t.Errorf("Expected positive context, got %s", entities[0].SentimentContext)
	}

	doc = annotated(t, "London is terrible.")
	entities = ranker.Rank(doc)
	if entities[0].SentimentContext != ContextNegative {
		t.Errorf("Expected negative context, got %s", entities[0].SentimentContext)
	}

	doc = annotated(t, "London has seven stations.")
	entities = ranker.Rank(doc)
	if entities[0].SentimentContext != ContextNeutral {
		t.Errorf("Expected neutral context, got %s", entities[0].SentimentContext)
	}
}

func TestRankTruncates(t *testing.T) {
	ranker := NewRanker(lexicon.Default())

	doc := annotate.Doc{Text: "synthetic"}
	for i := 0; i < MaxEntities+7; i++ {
		doc.Entities = append(doc.Entities, annotate.EntitySpan{
			Text:  fmt.Sprintf("entity-%d", i),
			Label: "PERSON",
		})
	}

	entities := ranker.Rank(doc)
	if len(entities) != MaxEntities {
		t.Errorf("Expected %d entities after truncation, got %d", MaxEntities, len(entities))
	}
}

func TestRankEmptyDoc(t *testing.T) {
	ranker := NewRanker(lexicon.Default())
	if got := ranker.Rank(annotate.Doc{}); len(got) != 0 {
		t.Errorf("Expected no entities, got %d", len(got))
	}
}

func TestImportanceUnknownLabelFallsBack(t *testing.T) {
	ranker := NewRanker(lexicon.Default())
	doc := annotate.Doc{
		Text:     "x",
		Entities: []annotate.EntitySpan{{Text: "x", Label: "LANGUAGE"}},
	}
	entities := ranker.Rank(doc)
	// Default base 0.5 + freq boost 0.06 + length boost 0.05.
	if math.Abs(entities[0].Importance-0.61) > 1e-9 {
		t.Errorf("Expected fallback importance 0.61, got %v", entities[0].Importance)
	}
}
