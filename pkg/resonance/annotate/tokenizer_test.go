package annotate

import "testing"

func TestTokenizeOffsets(t *testing.T) {
	tokens := tokenize("Hello, world!")

	want := []struct {
		text  string
		start int
		punct bool
	}{
		{"Hello", 0, false},
		{",", 5, true},
		{"world", 7, false},
		{"!", 12, true},
	}

	if len(tokens) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, w := range want {
		if tokens[i].Text != w.text {
			t.Errorf("Token %d: expected %q, got %q", i, w.text, tokens[i].Text)
		}
		if tokens[i].Start != w.start {
			t.Errorf("Token %d: expected start %d, got %d", i, w.start, tokens[i].Start)
		}
		if tokens[i].IsPunct != w.punct {
			t.Errorf("Token %d: expected punct=%v", i, w.punct)
		}
	}
}

func TestTokenizeJoiners(t *testing.T) {
	tokens := tokenize("Don't under-estimate")

	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].Text != "Don't" {
		t.Errorf("Apostrophe should stay in-word, got %q", tokens[0].Text)
	}
	if tokens[1].Text != "under-estimate" {
		t.Errorf("Hyphen should stay in-word, got %q", tokens[1].Text)
	}
}

func TestTokenizeByteOffsetsUnicode(t *testing.T) {
	// "é" is two bytes; offsets must stay byte-based so slicing Doc.Text
	// reproduces the surface form.
	tokens := tokenize("café now")

	if len(tokens) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(tokens))
	}
	if tokens[0].End() != 5 {
		t.Errorf("Expected café to end at byte 5, got %d", tokens[0].End())
	}
	if tokens[1].Start != 6 {
		t.Errorf("Expected now to start at byte 6, got %d", tokens[1].Start)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := tokenize(""); len(tokens) != 0 {
		t.Errorf("Expected no tokens for empty input, got %d", len(tokens))
	}
	if tokens := tokenize("   \n\t "); len(tokens) != 0 {
		t.Errorf("Expected no tokens for whitespace input, got %d", len(tokens))
	}
}

func TestSplitSentences(t *testing.T) {
	tokens := tokenize("One here. Two now! Three")
	sentences := splitSentences(tokens)

	if len(sentences) != 3 {
		t.Fatalf("Expected 3 sentences, got %d", len(sentences))
	}
	// "One here ." is three tokens.
	if sentences[0].First != 0 || sentences[0].Last != 3 {
		t.Errorf("Sentence 0: expected [0,3), got [%d,%d)", sentences[0].First, sentences[0].Last)
	}
	// The trailing fragment without terminal punctuation still counts.
	if sentences[2].Last != len(tokens) {
		t.Errorf("Last sentence should extend to the stream end")
	}
}

func TestSplitSentencesTrailingCloser(t *testing.T) {
	tokens := tokenize(`He said "go." Then left.`)
	sentences := splitSentences(tokens)

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d", len(sentences))
	}
	// The closing quote after the period belongs to the first sentence.
	last := tokens[sentences[0].Last-1].Text
	if last != `"` {
		t.Errorf("Expected closing quote in first sentence, boundary token %q", last)
	}
}

func TestLemmatize(t *testing.T) {
	cases := []struct{ word, lemma string }{
		{"running", "run"},
		{"loved", "love"},
		{"cities", "city"},
		{"boxes", "box"},
		{"says", "say"},
		{"was", "be"},
		{"children", "child"},
		{"morning", "morning"}, // -ing noun, not a progressive
		{"cats", "cat"},
		{"analysis", "analysis"}, // -is plural guard
	}
	for _, c := range cases {
		if got := lemmatize(c.word); got != c.lemma {
			t.Errorf("lemmatize(%q) = %q, expected %q", c.word, got, c.lemma)
		}
	}
}
