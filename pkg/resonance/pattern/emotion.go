package pattern

import "strings"

// Emotion is one triggered emotion category.
type Emotion struct {
	Emotion   string   `json:"emotion"`
	Score     int      `json:"score"`     // total substring occurrences
	Intensity float64  `json:"intensity"` // normalized to [0, 1]
	Words     []string `json:"words"`     // lexicon words that matched
}

// extractEmotions counts case-insensitive substring occurrences of each
// emotion lexicon word in the raw text. A category is reported only when
// at least one word matched; intensity = min(count/len(list), 1).
// Categories are reported in the lexicon's fixed order.
func (e *Extractor) extractEmotions(text string) []Emotion {
	lower := strings.ToLower(text)

	var emotions []Emotion
	for _, name := range e.lex.EmotionOrder {
		words := e.lex.Emotions[name]
		total := 0
		var matched []string
		for _, w := range words {
			count := strings.Count(lower, w)
			if count > 0 {
				total += count
				matched = append(matched, w)
			}
		}
		if total == 0 {
			continue
		}
		intensity := float64(total) / float64(len(words))
		if intensity > 1 {
			intensity = 1
		}
		emotions = append(emotions, Emotion{
			Emotion:   name,
			Score:     total,
			Intensity: round3(intensity),
			Words:     matched,
		})
	}
	return emotions
}
