package annotate

import (
	"strings"
	"unicode"
)

// Universal POS tag values used by the tagger. The set matches the 17
// universal categories the complexity metric normalizes against.
const (
	TagAdj   = "ADJ"
	TagAdp   = "ADP"
	TagAdv   = "ADV"
	TagAux   = "AUX"
	TagCconj = "CCONJ"
	TagDet   = "DET"
	TagIntj  = "INTJ"
	TagNoun  = "NOUN"
	TagNum   = "NUM"
	TagPart  = "PART"
	TagPron  = "PRON"
	TagPropn = "PROPN"
	TagPunct = "PUNCT"
	TagSconj = "SCONJ"
	TagSym   = "SYM"
	TagVerb  = "VERB"
	TagX     = "X"
)

// UniversalTagCount is the number of universal POS categories.
const UniversalTagCount = 17

var (
	determiners = wordSet("the", "a", "an", "this", "that", "these", "those",
		"each", "every", "either", "neither", "some", "any", "no", "all",
		"both", "few", "many", "much", "most", "other", "another", "such")

	pronouns = wordSet("i", "me", "my", "mine", "you", "your", "yours",
		"he", "him", "his", "she", "her", "hers", "it", "its", "we", "us",
		"our", "ours", "they", "them", "their", "theirs", "myself",
		"yourself", "himself", "herself", "itself", "ourselves",
		"themselves", "who", "whom", "whose", "what", "which", "someone",
		"anyone", "everyone", "nobody", "something", "anything",
		"everything", "nothing")

	adpositions = wordSet("in", "on", "at", "by", "for", "with", "about",
		"against", "between", "into", "through", "during", "before",
		"after", "above", "below", "to", "from", "up", "down", "over",
		"under", "of", "off", "near", "across", "behind", "beyond",
		"within", "without")

	auxiliaries = wordSet("is", "am", "are", "was", "were", "be", "been",
		"being", "have", "has", "had", "do", "does", "did", "will",
		"would", "can", "could", "shall", "should", "may", "might", "must",
		"don't", "doesn't", "didn't", "isn't", "aren't", "wasn't",
		"weren't", "can't", "couldn't", "won't", "wouldn't", "shouldn't")

	coordConj = wordSet("and", "or", "but", "nor", "yet")

	subordConj = wordSet("because", "although", "though", "if", "while",
		"since", "unless", "until", "whereas", "whether", "as", "when")

	particles = wordSet("not", "n't")

	interjections = wordSet("oh", "wow", "hey", "hi", "hello", "ouch",
		"oops", "yeah", "hmm", "ah")

	adverbs = wordSet("very", "really", "quite", "too", "also", "just",
		"now", "then", "here", "there", "always", "never", "often", "soon",
		"already", "still", "almost", "enough", "again", "maybe",
		"perhaps", "extremely", "absolutely", "completely", "totally",
		"deeply", "incredibly", "utterly", "highly", "well", "away",
		"together", "quickly", "slowly")

	adjectives = wordSet("good", "great", "bad", "new", "old", "big",
		"small", "high", "low", "long", "short", "strong", "weak",
		"bright", "dark", "fast", "slow", "happy", "sad", "beautiful",
		"brilliant", "terrible", "awful", "wonderful", "amazing",
		"excellent", "horrible", "poor", "nice", "perfect", "interesting",
		"important", "different", "large", "little", "young", "early",
		"late", "hard", "easy", "quick", "lazy", "angry", "afraid",
		"red", "blue", "green", "black", "white", "brown")

	// Base-form verbs checked against the lemma.
	verbs = wordSet("be", "have", "do", "go", "get", "make", "know",
		"think", "take", "see", "come", "want", "look", "use", "find",
		"give", "tell", "work", "call", "try", "ask", "need", "feel",
		"become", "leave", "put", "mean", "keep", "let", "begin", "seem",
		"help", "talk", "turn", "start", "show", "hear", "play", "run",
		"move", "like", "live", "believe", "hold", "bring", "happen",
		"write", "provide", "sit", "stand", "lose", "pay", "meet",
		"include", "continue", "set", "learn", "change", "lead",
		"understand", "watch", "follow", "stop", "create", "speak",
		"read", "allow", "add", "spend", "grow", "open", "walk", "win",
		"offer", "remember", "love", "hate", "consider", "appear", "buy",
		"wait", "serve", "die", "send", "expect", "build", "stay", "fall",
		"cut", "reach", "visit", "jump", "destroy", "fight", "celebrate",
		"announce", "launch", "analyze", "process", "enjoy", "say")

	adjSuffixes  = []string{"ous", "ful", "ive", "able", "ible", "ish", "less", "ant", "ent"}
	nounSuffixes = []string{"tion", "sion", "ment", "ness", "ity", "ance", "ence", "ship", "hood", "ism"}
)

// tagPOS assigns a universal POS tag to every token. Tags are decided from
// closed-class lookups first, then capitalization, then suffix heuristics.
// Tokens must already carry lemmas.
func tagPOS(tokens []Token, sentences []Sentence, firstNames map[string]struct{}) {
	initials := make(map[int]struct{}, len(sentences))
	for _, s := range sentences {
		if s.First < len(tokens) {
			initials[s.First] = struct{}{}
		}
	}

	for i := range tokens {
		tokens[i].POS = tagOne(tokens[i], isSentenceInitial(initials, i), firstNames)
	}
}

func isSentenceInitial(initials map[int]struct{}, i int) bool {
	_, ok := initials[i]
	return ok
}

func tagOne(tok Token, sentenceInitial bool, firstNames map[string]struct{}) string {
	if tok.IsPunct {
		return TagPunct
	}

	first, _ := firstRune(tok.Text)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return TagSym
	}
	if unicode.IsDigit(first) {
		return TagNum
	}

	lower := strings.ToLower(tok.Text)
	switch {
	case inSet(determiners, lower):
		return TagDet
	case inSet(pronouns, lower):
		return TagPron
	case inSet(auxiliaries, lower):
		return TagAux
	case inSet(adpositions, lower):
		return TagAdp
	case inSet(coordConj, lower):
		return TagCconj
	case inSet(subordConj, lower):
		return TagSconj
	case inSet(particles, lower):
		return TagPart
	case inSet(interjections, lower):
		return TagIntj
	case inSet(adverbs, lower):
		return TagAdv
	case inSet(adjectives, lower):
		return TagAdj
	}

	// Capitalized mid-sentence words are proper nouns. Sentence-initial
	// words need corroboration from the first-name list.
	if unicode.IsUpper(first) {
		if !sentenceInitial {
			return TagPropn
		}
		if _, ok := firstNames[lower]; ok {
			return TagPropn
		}
	}

	if inSet(verbs, tok.Lemma) {
		return TagVerb
	}
	if strings.HasSuffix(lower, "ly") {
		return TagAdv
	}
	for _, suf := range adjSuffixes {
		if strings.HasSuffix(lower, suf) {
			return TagAdj
		}
	}
	for _, suf := range nounSuffixes {
		if strings.HasSuffix(lower, suf) {
			return TagNoun
		}
	}
	if len(lower) > 4 && (strings.HasSuffix(lower, "ing") || strings.HasSuffix(lower, "ed")) &&
		!inSet(ingNouns, lower) {
		return TagVerb
	}

	return TagNoun
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func inSet(set map[string]struct{}, word string) bool {
	_, ok := set[word]
	return ok
}
