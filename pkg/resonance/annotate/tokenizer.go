package annotate

import "unicode"

// tokenize splits text into word and punctuation tokens with byte offsets.
// Whitespace is consumed silently; apostrophes and in-word hyphens keep a
// word together ("don't", "state-of-the-art" stay single tokens).
func tokenize(text string) []Token {
	var tokens []Token

	runes := []rune(text)
	offset := 0 // byte offset of runes[i]
	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			offset += len(string(r))
			i++

		case isWordRune(r):
			start := offset
			j := i
			for j < len(runes) && (isWordRune(runes[j]) || isWordJoiner(runes, j)) {
				offset += len(string(runes[j]))
				j++
			}
			tokens = append(tokens, Token{
				Text:  string(runes[i:j]),
				Start: start,
			})
			i = j

		default:
			// Punctuation and symbols become single-rune tokens.
			tokens = append(tokens, Token{
				Text:    string(r),
				Start:   offset,
				IsPunct: isPunctRune(r),
			})
			offset += len(string(r))
			i++
		}
	}

	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isWordJoiner reports whether the rune at position i joins two word runes,
// such as the apostrophe in "don't" or the hyphen in "well-known".
func isWordJoiner(runes []rune, i int) bool {
	r := runes[i]
	if r != '\'' && r != '’' && r != '-' {
		return false
	}
	return i > 0 && isWordRune(runes[i-1]) &&
		i+1 < len(runes) && isWordRune(runes[i+1])
}

func isPunctRune(r rune) bool {
	return unicode.IsPunct(r)
}
