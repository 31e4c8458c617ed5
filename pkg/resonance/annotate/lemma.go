package annotate

import "strings"

// Irregular forms resolved before any suffix rule.
var irregularLemmas = map[string]string{
	"was": "be", "is": "be", "are": "be", "am": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"went": "go", "gone": "go", "goes": "go",
	"made": "make", "said": "say", "took": "take", "taken": "take",
	"saw": "see", "seen": "see", "came": "come", "got": "get",
	"gotten": "get", "knew": "know", "known": "know", "thought": "think",
	"found": "find", "gave": "give", "given": "give", "told": "tell",
	"felt": "feel", "kept": "keep", "left": "leave", "meant": "mean",
	"met": "meet", "paid": "pay", "ran": "run", "sat": "sit",
	"spoke": "speak", "stood": "stand", "understood": "understand",
	"won": "win", "wrote": "write", "written": "write",
	"children": "child", "men": "man", "women": "woman",
	"people": "person", "feet": "foot", "teeth": "tooth", "mice": "mouse",
	"better": "good", "best": "good", "worse": "bad", "worst": "bad",
}

// Nouns ending in -ing that must not be stemmed like progressive verbs.
var ingNouns = wordSet("morning", "evening", "thing", "king", "ring",
	"spring", "string", "wing", "building", "wedding", "feeling",
	"meeting", "ceiling", "nothing", "something", "anything", "everything")

// lemmatize derives a lowercased base form using an exception table and a
// small set of suffix rules. It is a deterministic approximation, not a
// full morphological analyzer.
func lemmatize(text string) string {
	word := strings.ToLower(text)
	if lemma, ok := irregularLemmas[word]; ok {
		return lemma
	}
	if len(word) <= 3 {
		return word
	}

	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 4:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "shes") || strings.HasSuffix(word, "ches") ||
		strings.HasSuffix(word, "xes") || strings.HasSuffix(word, "zes") ||
		strings.HasSuffix(word, "oes"):
		return word[:len(word)-2]
	case strings.HasSuffix(word, "ing") && len(word) > 5 && !inSet(ingNouns, word):
		return undouble(word[:len(word)-3])
	case strings.HasSuffix(word, "ed") && len(word) > 4:
		return undouble(word[:len(word)-2])
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") &&
		!strings.HasSuffix(word, "us") && !strings.HasSuffix(word, "is"):
		return word[:len(word)-1]
	}

	return word
}

// undouble repairs stems left by stripping -ing/-ed: "runn" -> "run",
// "lov" -> "love".
func undouble(stem string) string {
	n := len(stem)
	if n >= 2 && stem[n-1] == stem[n-2] && isConsonant(stem[n-1]) {
		return stem[:n-1]
	}
	// CVC stems usually lost a silent e (mak -> make, lov -> love).
	if n >= 3 && isConsonant(stem[n-1]) && isVowelByte(stem[n-2]) && isConsonant(stem[n-3]) {
		switch stem[n-1] {
		case 'w', 'x', 'y':
			return stem
		}
		return stem + "e"
	}
	return stem
}

func isVowelByte(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonant(b byte) bool {
	return b >= 'a' && b <= 'z' && !isVowelByte(b)
}
