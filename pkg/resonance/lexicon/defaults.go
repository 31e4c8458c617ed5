package lexicon

// Default returns the built-in lexicon set. Callers may mutate the
// returned value freely; every call builds a fresh copy.
func Default() *Set {
	return &Set{
		Intensity: []string{
			"very", "extremely", "absolutely", "completely", "totally",
			"really", "quite", "deeply", "incredibly", "utterly", "highly",
		},

		Polarity: map[string]float64{
			"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.9,
			"wonderful": 0.9, "brilliant": 0.9, "fantastic": 0.9,
			"love": 0.6, "like": 0.4, "enjoy": 0.5, "happy": 0.8,
			"beautiful": 0.85, "best": 1.0, "better": 0.5, "nice": 0.6,
			"perfect": 1.0, "positive": 0.5, "success": 0.6, "win": 0.6,
			"new": 0.1, "interesting": 0.5, "impressive": 0.7,
			"delightful": 0.9, "superb": 0.95, "awesome": 0.9,
			"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0,
			"hate": -0.8, "dislike": -0.4, "sad": -0.5, "angry": -0.6,
			"worst": -1.0, "worse": -0.5, "poor": -0.4, "ugly": -0.7,
			"negative": -0.5, "failure": -0.6, "lose": -0.4, "wrong": -0.5,
			"broken": -0.4, "disappointing": -0.6, "dreadful": -0.9,
			"boring": -0.5, "annoying": -0.6, "disgusting": -0.9,
		},

		Subjectivity: map[string]float64{
			"good": 0.6, "great": 0.75, "excellent": 1.0, "amazing": 0.9,
			"wonderful": 1.0, "brilliant": 0.9, "fantastic": 0.9,
			"love": 0.6, "like": 0.5, "enjoy": 0.6, "happy": 1.0,
			"beautiful": 1.0, "best": 0.3, "better": 0.5, "nice": 1.0,
			"perfect": 1.0, "positive": 0.6, "success": 0.4, "win": 0.4,
			"new": 0.4, "interesting": 0.7, "impressive": 0.9,
			"delightful": 1.0, "superb": 1.0, "awesome": 1.0,
			"bad": 0.65, "terrible": 1.0, "awful": 1.0, "horrible": 1.0,
			"hate": 0.9, "dislike": 0.6, "sad": 1.0, "angry": 1.0,
			"worst": 1.0, "worse": 0.6, "poor": 0.6, "ugly": 1.0,
			"negative": 0.6, "failure": 0.5, "lose": 0.4, "wrong": 0.5,
			"broken": 0.4, "disappointing": 0.8, "dreadful": 1.0,
			"boring": 1.0, "annoying": 1.0, "disgusting": 1.0,
		},

		Negations: []string{
			"not", "no", "never", "neither", "nobody", "none", "cannot",
			"n't", "without", "hardly",
		},

		ContextPositive: []string{
			"good", "great", "excellent", "positive", "love", "wonderful", "amazing",
		},
		ContextNegative: []string{
			"bad", "terrible", "awful", "negative", "hate", "horrible", "poor",
		},

		Emotions: map[string][]string{
			"joy": {
				"happy", "joy", "delight", "cheer", "smile", "laugh",
				"love", "wonderful", "celebrate", "excite",
			},
			"sadness": {
				"sad", "cry", "tear", "grief", "sorrow", "mourn",
				"lonely", "miserable", "despair", "gloom",
			},
			"anger": {
				"angry", "rage", "fury", "mad", "hate", "outrage",
				"furious", "irritate", "resent", "hostile",
			},
			"fear": {
				"fear", "afraid", "scare", "terror", "dread", "panic",
				"anxious", "worry", "nervous", "horror",
			},
			"surprise": {
				"surprise", "astonish", "amaze", "shock", "stun",
				"unexpected", "sudden", "startle", "wonder", "marvel",
			},
			"disgust": {
				"disgust", "revolt", "repulse", "sicken", "gross",
				"nausea", "loathe", "vile", "foul", "nasty",
			},
		},
		EmotionOrder: []string{"joy", "sadness", "anger", "fear", "surprise", "disgust"},

		Categories: map[string][]string{
			"emotions": {
				"happy", "sad", "angry", "fear", "joy", "love", "hate",
				"excite", "worry", "calm",
			},
			"actions": {
				"run", "walk", "jump", "create", "build", "destroy",
				"move", "change", "grow", "fight",
			},
			"descriptors": {
				"big", "small", "bright", "dark", "fast", "slow",
				"strong", "weak", "beautiful", "new",
			},
			"temporal": {
				"now", "then", "today", "tomorrow", "yesterday",
				"future", "past", "soon", "never", "always",
			},
		},
		CategoryOrder: []string{"emotions", "actions", "descriptors", "temporal"},

		Temporal: []string{
			"today", "tomorrow", "yesterday", "now", "soon", "later",
			"morning", "evening", "night", "week", "month", "year",
			"spring", "summer", "autumn", "winter", "ago",
		},

		Stopwords: []string{
			"a", "an", "the", "and", "or", "but", "if", "then", "else",
			"of", "at", "by", "for", "with", "about", "against", "between",
			"into", "through", "during", "before", "after", "above", "below",
			"to", "from", "up", "down", "in", "out", "on", "off", "over",
			"under", "again", "further", "once", "here", "there", "all",
			"any", "both", "each", "few", "more", "most", "other", "some",
			"such", "only", "own", "same", "so", "than", "too", "i", "me",
			"my", "we", "our", "you", "your", "he", "him", "his", "she",
			"her", "it", "its", "they", "them", "their", "this", "that",
			"these", "those", "is", "am", "are", "was", "were", "be",
			"been", "being", "have", "has", "had", "do", "does", "did",
			"will", "would", "can", "could", "shall", "should", "may",
			"might", "must", "as", "not", "no", "what", "which", "who",
			"whom", "when", "where", "why", "how",
		},

		Gazetteer: map[string]string{
			"new york":       "GPE",
			"new york city":  "GPE",
			"london":         "GPE",
			"paris":          "GPE",
			"berlin":         "GPE",
			"tokyo":          "GPE",
			"united states":  "GPE",
			"united kingdom": "GPE",
			"germany":        "GPE",
			"france":         "GPE",
			"japan":          "GPE",
			"china":          "GPE",
			"europe":         "LOC",
			"asia":           "LOC",
			"africa":         "LOC",
			"pacific ocean":  "LOC",
			"mount everest":  "LOC",
			"google":         "ORG",
			"microsoft":      "ORG",
			"apple":          "ORG",
			"amazon":         "ORG",
			"nasa":           "ORG",
			"united nations": "ORG",
			"world cup":      "EVENT",
			"olympics":       "EVENT",
			"christmas":      "EVENT",
			"iphone":         "PRODUCT",
			"android":        "PRODUCT",
		},

		FirstNames: []string{
			"james", "john", "robert", "michael", "william", "david",
			"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara",
			"alice", "bob", "carol", "daniel", "emma", "frank", "grace",
			"henry", "anna", "peter", "sarah", "thomas", "barack", "angela",
		},
	}
}
