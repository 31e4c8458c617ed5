package annotate

// Doc is the annotated-text contract consumed by the analysis pipeline:
// tokens with POS/dependency/lemma annotations, sentence boundaries and
// entity spans. A Doc is immutable once produced.
type Doc struct {
	Text      string
	Tokens    []Token
	Sentences []Sentence
	Entities  []EntitySpan
}

// Token is the smallest annotated unit of text.
type Token struct {
	Text    string
	Lemma   string // lowercased base form
	POS     string // universal POS tag (NOUN, VERB, ADJ, ...)
	Dep     string // dependency label (nsubj, dobj, amod, ...)
	Head    int    // index of the syntactic head token; self for the root
	Start   int    // byte offset in Doc.Text
	IsStop  bool
	IsPunct bool
	IsSpace bool
}

// End returns the byte offset just past the token.
func (t Token) End() int {
	return t.Start + len(t.Text)
}

// Sentence is a half-open token index range [First, Last).
type Sentence struct {
	First int
	Last  int
}

// EntitySpan is a contiguous text span tagged with a semantic category.
type EntitySpan struct {
	Text       string
	Label      string // PERSON, ORG, GPE, DATE, ...
	Start      int    // byte offsets in Doc.Text
	End        int
	FirstToken int // token index range [FirstToken, LastToken)
	LastToken  int
}

// WordCount returns the number of non-space tokens.
func (d Doc) WordCount() int {
	count := 0
	for _, tok := range d.Tokens {
		if !tok.IsSpace {
			count++
		}
	}
	return count
}

// IsContent reports whether the token carries lexical content, i.e. it is
// not a stopword, punctuation or whitespace.
func (t Token) IsContent() bool {
	return !t.IsStop && !t.IsPunct && !t.IsSpace
}
