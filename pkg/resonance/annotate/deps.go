package annotate

import "strings"

// Dependency labels emitted by the labeler. External annotators may emit a
// richer set; downstream components treat labels as open vocabulary.
const (
	DepRoot     = "ROOT"
	DepNsubj    = "nsubj"
	DepDobj     = "dobj"
	DepPobj     = "pobj"
	DepAmod     = "amod"
	DepAdvmod   = "advmod"
	DepCompound = "compound"
	DepPoss     = "poss"
	DepAttr     = "attr"
	DepAcomp    = "acomp"
	DepDet      = "det"
	DepPrep     = "prep"
	DepAux      = "aux"
	DepPunct    = "punct"
	DepDep      = "dep"
)

var possessivePronouns = wordSet("my", "your", "his", "her", "its", "our", "their")

// labelDependencies assigns a dependency label and head reference to every
// token, one sentence at a time. The labeler is positional: it anchors each
// sentence on its first verb and relates surrounding nominals, modifiers
// and adpositions to it.
func labelDependencies(tokens []Token, sentences []Sentence) {
	for _, sent := range sentences {
		labelSentence(tokens, sent.First, sent.Last)
	}
}

func labelSentence(tokens []Token, first, last int) {
	if first >= last {
		return
	}

	root := findRoot(tokens, first, last)
	tokens[root].Dep = DepRoot
	tokens[root].Head = root

	subjectSeen := false
	for i := first; i < last; i++ {
		if i == root {
			continue
		}
		tok := &tokens[i]
		tok.Head = root // default attachment

		switch tok.POS {
		case TagPunct:
			tok.Dep = DepPunct

		case TagDet:
			tok.Dep = DepDet
			if n := nextNominal(tokens, i+1, last); n >= 0 {
				tok.Head = n
			}

		case TagAdj:
			if n := nextNominal(tokens, i+1, last); n >= 0 && n <= i+2 {
				tok.Dep = DepAmod
				tok.Head = n
			} else if i > first && tokens[i-1].POS == TagAux {
				tok.Dep = DepAcomp
			} else {
				tok.Dep = DepDep
			}

		case TagAdv:
			tok.Dep = DepAdvmod

		case TagAdp:
			tok.Dep = DepPrep

		case TagAux:
			tok.Dep = DepAux

		case TagNoun, TagPropn, TagPron:
			labelNominal(tokens, i, first, last, root, &subjectSeen)

		default:
			tok.Dep = DepDep
		}
	}
}

// labelNominal relates a noun, proper noun or pronoun to its neighborhood.
func labelNominal(tokens []Token, i, first, last, root int, subjectSeen *bool) {
	tok := &tokens[i]

	// Possessives attach forward: "their project".
	if tok.POS == TagPron && inSet(possessivePronouns, strings.ToLower(tok.Text)) {
		if n := nextNominal(tokens, i+1, last); n >= 0 {
			tok.Dep = DepPoss
			tok.Head = n
			return
		}
	}

	// Adjacent nominal pairs form compounds: "project manager".
	if i+1 < last && isNominal(tokens[i+1].POS) {
		tok.Dep = DepCompound
		tok.Head = i + 1
		return
	}

	// Objects of a preposition attach to it: "in Paris".
	if p := precedingAdposition(tokens, i, first); p >= 0 {
		tok.Dep = DepPobj
		tok.Head = p
		return
	}

	if i < root && !*subjectSeen {
		tok.Dep = DepNsubj
		tok.Head = root
		*subjectSeen = true
		return
	}

	if i > root {
		if tokens[root].POS == TagAux {
			tok.Dep = DepAttr
		} else {
			tok.Dep = DepDobj
		}
		tok.Head = root
		return
	}

	tok.Dep = DepDep
	tok.Head = root
}

// findRoot picks the sentence anchor: the first verb, else the first
// auxiliary, else the first content token, else the first token.
func findRoot(tokens []Token, first, last int) int {
	for i := first; i < last; i++ {
		if tokens[i].POS == TagVerb {
			return i
		}
	}
	for i := first; i < last; i++ {
		if tokens[i].POS == TagAux {
			return i
		}
	}
	for i := first; i < last; i++ {
		if tokens[i].IsContent() {
			return i
		}
	}
	return first
}

// nextNominal returns the index of the next noun-like token within reach,
// skipping adjectives and adverbs, or -1.
func nextNominal(tokens []Token, from, last int) int {
	for i := from; i < last; i++ {
		if isNominal(tokens[i].POS) {
			return i
		}
		if tokens[i].POS != TagAdj && tokens[i].POS != TagAdv {
			return -1
		}
	}
	return -1
}

// precedingAdposition looks back over determiners and adjectives for a
// governing preposition.
func precedingAdposition(tokens []Token, i, first int) int {
	for j := i - 1; j >= first && j >= i-3; j-- {
		switch tokens[j].POS {
		case TagAdp:
			return j
		case TagDet, TagAdj, TagAdv:
			continue
		default:
			return -1
		}
	}
	return -1
}

func isNominal(pos string) bool {
	return pos == TagNoun || pos == TagPropn
}
