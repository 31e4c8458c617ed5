package annotate

import (
	"strings"
	"unicode"
)

// Entity labels produced by the recognizer.
const (
	LabelPerson  = "PERSON"
	LabelOrg     = "ORG"
	LabelGPE     = "GPE"
	LabelLoc     = "LOC"
	LabelDate    = "DATE"
	LabelTime    = "TIME"
	LabelMoney   = "MONEY"
	LabelPercent = "PERCENT"
	LabelEvent   = "EVENT"
	LabelProduct = "PRODUCT"
)

// maxGazetteerSpan bounds the greedy longest-match window.
const maxGazetteerSpan = 3

var months = wordSet("january", "february", "march", "april", "may",
	"june", "july", "august", "september", "october", "november",
	"december")

var weekdays = wordSet("monday", "tuesday", "wednesday", "thursday",
	"friday", "saturday", "sunday")

var relativeDays = wordSet("today", "tomorrow", "yesterday")

var orgSuffixes = wordSet("inc", "corp", "corporation", "incorporated",
	"ltd", "llc", "company", "university", "institute", "agency", "group",
	"bank", "foundation")

// recognizer finds entity spans with a gazetteer pass (greedy longest
// match), a numeric pass (dates, times, money, percentages) and a proper
// noun pass, in that priority order.
type recognizer struct {
	gazetteer  map[string]string
	firstNames map[string]struct{}
}

func (r *recognizer) recognize(text string, tokens []Token) []EntitySpan {
	claimed := make([]bool, len(tokens))
	var spans []EntitySpan

	add := func(first, last int, label string) {
		for i := first; i < last; i++ {
			claimed[i] = true
		}
		start := tokens[first].Start
		end := tokens[last-1].End()
		spans = append(spans, EntitySpan{
			Text:       text[start:end],
			Label:      label,
			Start:      start,
			End:        end,
			FirstToken: first,
			LastToken:  last,
		})
	}

	// 1. Gazetteer, longest match first.
	for i := 0; i < len(tokens); i++ {
		if claimed[i] || tokens[i].IsPunct {
			continue
		}
		for span := min(maxGazetteerSpan, len(tokens)-i); span >= 1; span-- {
			if anyClaimedOrPunct(tokens, claimed, i, i+span) {
				continue
			}
			phrase := joinLower(tokens[i : i+span])
			if label, ok := r.gazetteer[phrase]; ok {
				add(i, i+span, label)
				i += span - 1
				break
			}
		}
	}

	// 2. Numeric and calendar patterns.
	for i := 0; i < len(tokens); i++ {
		if claimed[i] {
			continue
		}
		lower := strings.ToLower(tokens[i].Text)

		switch {
		case tokens[i].Text == "$" && i+1 < len(tokens) && !claimed[i+1] && isNumeric(tokens[i+1].Text):
			add(i, i+2, LabelMoney)
			i++

		case isNumeric(lower) && i+1 < len(tokens) && !claimed[i+1] && tokens[i+1].Text == "%":
			add(i, i+2, LabelPercent)
			i++

		case inSet(months, lower):
			// Attach trailing day/year numbers: "July 2010", "March 5".
			last := i + 1
			for last < len(tokens) && !claimed[last] &&
				(isNumeric(tokens[last].Text) || tokens[last].Text == ",") {
				last++
			}
			for last > i+1 && tokens[last-1].Text == "," {
				last--
			}
			add(i, last, LabelDate)
			i = last - 1

		case inSet(weekdays, lower) || inSet(relativeDays, lower):
			add(i, i+1, LabelDate)

		case isClockTime(lower):
			add(i, i+1, LabelTime)

		case isYear(lower):
			add(i, i+1, LabelDate)
		}
	}

	// 3. Proper noun runs.
	for i := 0; i < len(tokens); i++ {
		if claimed[i] || tokens[i].POS != TagPropn {
			continue
		}
		last := i + 1
		for last < len(tokens) && !claimed[last] && tokens[last].POS == TagPropn {
			last++
		}
		add(i, last, r.properLabel(tokens[i:last]))
		i = last - 1
	}

	sortSpans(spans)
	return spans
}

// properLabel decides the label of an unrecognized proper noun run.
func (r *recognizer) properLabel(run []Token) string {
	for _, tok := range run {
		if _, ok := r.firstNames[strings.ToLower(tok.Text)]; ok {
			return LabelPerson
		}
	}
	lastWord := strings.ToLower(strings.TrimSuffix(run[len(run)-1].Text, "."))
	if inSet(orgSuffixes, lastWord) {
		return LabelOrg
	}
	return LabelPerson
}

func anyClaimedOrPunct(tokens []Token, claimed []bool, first, last int) bool {
	for i := first; i < last; i++ {
		if claimed[i] || tokens[i].IsPunct {
			return true
		}
	}
	return false
}

func joinLower(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = strings.ToLower(tok.Text)
	}
	return strings.Join(parts, " ")
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isYear(s string) bool {
	return len(s) == 4 && isNumeric(s)
}

// isClockTime matches compact clock forms such as "3pm" or "12am".
func isClockTime(s string) bool {
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		digits := s[:len(s)-2]
		return digits != "" && isNumeric(digits)
	}
	return false
}

// sortSpans orders spans by document position. Insertion sort keeps the
// pass dependency-free; span counts are small.
func sortSpans(spans []EntitySpan) {
	for i := 1; i < len(spans); i++ {
		for j := i; j > 0 && spans[j].Start < spans[j-1].Start; j-- {
			spans[j], spans[j-1] = spans[j-1], spans[j]
		}
	}
}
