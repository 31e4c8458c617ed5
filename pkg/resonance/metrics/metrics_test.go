package metrics

import (
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

func TestComputeStatsCounts(t *testing.T) {
	doc := annotated(t, "The cat sat. The dog ran.")
	stats := ComputeStats(doc)

	if stats.WordCount != 8 {
		t.Errorf("Expected word count 8, got %d", stats.WordCount)
	}
	if stats.SentenceCount != 2 {
		t.Errorf("Expected 2 sentences, got %d", stats.SentenceCount)
	}
	if math.Abs(stats.AvgSentenceLength-4) > 1e-9 {
		t.Errorf("Expected average sentence length 4, got %v", stats.AvgSentenceLength)
	}
	if stats.ContentTokenCount != 4 {
		t.Errorf("Expected 4 content tokens, got %d", stats.ContentTokenCount)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(annotate.Doc{})
	if stats.WordCount != 0 || stats.SentenceCount != 0 {
		t.Errorf("Expected zero counts, got %+v", stats)
	}
	if stats.UniqueLemmaRatio != 0 || stats.AvgSentenceLength != 0 || stats.AvgSyllables != 0 {
		t.Errorf("Expected zero ratios on empty doc, got %+v", stats)
	}
}

func TestComputeStatsEntityTokens(t *testing.T) {
	doc := annotated(t, "Sarah Johnson visited London.")
	stats := ComputeStats(doc)

	// Sarah Johnson covers two tokens, London one.
	if stats.EntityTokenCount != 3 {
		t.Errorf("Expected 3 entity tokens, got %d", stats.EntityTokenCount)
	}
}

func TestSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"beautiful", 5},
		{"rhythm", 1}, // no vowels, floored at 1
		{"idea", 3},
	}
	for _, c := range cases {
		if got := syllables(c.word); got != c.want {
			t.Errorf("syllables(%q) = %d, expected %d", c.word, got, c.want)
		}
	}
}

func TestSynthesizeEmptyDocIsZero(t *testing.T) {
	got := Synthesize(DocStats{}, 0.9, 0.9)
	if got.SymbolicResonance != 0 || got.Complexity != 0 || got.Readability != 0 {
		t.Errorf("Empty document must score exactly zero, got %+v", got)
	}
}

func TestSynthesizeBounds(t *testing.T) {
	doc := annotated(t, "Sarah Johnson founded Acme Corporation in London. London is great. Everyone celebrates today!")
	stats := ComputeStats(doc)

	got := Synthesize(stats, 1.0, 1.0)
	for name, v := range map[string]float64{
		"symbolic_resonance": got.SymbolicResonance,
		"complexity":         got.Complexity,
		"readability":        got.Readability,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s out of [0,1]: %v", name, v)
		}
	}
	if got.SymbolicResonance == 0 {
		t.Error("Expected non-zero symbolic resonance for a rich document")
	}
}

func TestReadabilityClamps(t *testing.T) {
	// Very long sentences with many vowels push the Flesch score negative;
	// the normalized value must floor at 0.
	stats := DocStats{
		WordCount:         100,
		SentenceCount:     1,
		AvgSentenceLength: 100,
		AvgSyllables:      4,
	}
	got := Synthesize(stats, 0, 0)
	if got.Readability != 0 {
		t.Errorf("Expected readability floored at 0, got %v", got.Readability)
	}

	// Short simple sentences max out at 1.
	stats = DocStats{
		WordCount:         2,
		SentenceCount:     1,
		AvgSentenceLength: 2,
		AvgSyllables:      1,
	}
	got = Synthesize(stats, 0, 0)
	if got.Readability != 1 {
		t.Errorf("Expected readability capped at 1, got %v", got.Readability)
	}
}
