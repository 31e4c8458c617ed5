package annotate

// splitSentences derives sentence boundaries from terminal punctuation.
// A sentence ends at '.', '!' or '?' (consuming any directly following
// closing quotes or brackets) or at the end of the token stream.
func splitSentences(tokens []Token) []Sentence {
	var sentences []Sentence

	first := 0
	for i := 0; i < len(tokens); i++ {
		if !isTerminal(tokens[i].Text) {
			continue
		}
		// Consume trailing closers so they stay in the same sentence.
		last := i + 1
		for last < len(tokens) && isCloser(tokens[last].Text) {
			last++
		}
		sentences = append(sentences, Sentence{First: first, Last: last})
		first = last
		i = last - 1
	}

	if first < len(tokens) {
		sentences = append(sentences, Sentence{First: first, Last: len(tokens)})
	}

	return sentences
}

func isTerminal(text string) bool {
	return text == "." || text == "!" || text == "?"
}

func isCloser(text string) bool {
	switch text {
	case ")", "]", "}", "\"", "'", "”", "’":
		return true
	}
	return false
}
