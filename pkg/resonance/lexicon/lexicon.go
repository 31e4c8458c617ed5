package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set holds every fixed vocabulary the analysis pipeline draws on:
// sentiment polarity/subjectivity weights, intensity markers, the small
// positive/negative context lists used for entity sentiment, emotion
// category word lists, semantic cluster categories, temporal markers,
// stopwords, and the named-entity gazetteer.
//
// Design principles:
// - Deterministic: plain word lists and weight maps, no learned state
// - Overridable: a YAML file can replace any individual list while the
//   built-in defaults cover the rest
// - Case-insensitive: everything is stored lowercase
type Set struct {
	// Intensity markers that boost sentiment confidence.
	Intensity []string

	// Polarity maps a lemma to its base polarity in [-1, 1].
	Polarity map[string]float64

	// Subjectivity maps a lemma to its subjectivity in [0, 1].
	Subjectivity map[string]float64

	// Negations flip the polarity of a following sentiment word.
	Negations []string

	// ContextPositive/ContextNegative are the small lists voted over a
	// token window to derive an entity's local sentiment context.
	ContextPositive []string
	ContextNegative []string

	// Emotions maps an emotion category to its word list.
	// EmotionOrder fixes the reporting order.
	Emotions     map[string][]string
	EmotionOrder []string

	// Categories maps a semantic cluster category to its word list.
	// CategoryOrder fixes the reporting order.
	Categories    map[string][]string
	CategoryOrder []string

	// Temporal markers recognized by the narrative classifier.
	Temporal []string

	// Stopwords for the annotator.
	Stopwords []string

	// Gazetteer maps a lowercase phrase to its entity label.
	Gazetteer map[string]string

	// FirstNames helps the annotator label capitalized runs as persons.
	FirstNames []string
}

// override is the YAML shape for a lexicon file. Every field is optional;
// absent fields keep their built-in defaults.
type override struct {
	Intensity       []string            `yaml:"intensity"`
	Polarity        map[string]float64  `yaml:"polarity"`
	Subjectivity    map[string]float64  `yaml:"subjectivity"`
	Negations       []string            `yaml:"negations"`
	ContextPositive []string            `yaml:"context_positive"`
	ContextNegative []string            `yaml:"context_negative"`
	Emotions        map[string][]string `yaml:"emotions"`
	Categories      map[string][]string `yaml:"categories"`
	Temporal        []string            `yaml:"temporal"`
	Stopwords       []string            `yaml:"stopwords"`
	Gazetteer       map[string]string   `yaml:"gazetteer"`
	FirstNames      []string            `yaml:"first_names"`
}

// LoadFromYAML loads a lexicon file and applies it on top of the defaults.
func LoadFromYAML(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var ov override
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	set := Default()
	if len(ov.Intensity) > 0 {
		set.Intensity = lowerAll(ov.Intensity)
	}
	if len(ov.Polarity) > 0 {
		set.Polarity = lowerKeys(ov.Polarity)
	}
	if len(ov.Subjectivity) > 0 {
		set.Subjectivity = lowerKeys(ov.Subjectivity)
	}
	if len(ov.Negations) > 0 {
		set.Negations = lowerAll(ov.Negations)
	}
	if len(ov.ContextPositive) > 0 {
		set.ContextPositive = lowerAll(ov.ContextPositive)
	}
	if len(ov.ContextNegative) > 0 {
		set.ContextNegative = lowerAll(ov.ContextNegative)
	}
	if len(ov.Emotions) > 0 {
		set.Emotions = make(map[string][]string, len(ov.Emotions))
		set.EmotionOrder = sortedKeys(ov.Emotions)
		for name, words := range ov.Emotions {
			set.Emotions[strings.ToLower(name)] = lowerAll(words)
		}
	}
	if len(ov.Categories) > 0 {
		set.Categories = make(map[string][]string, len(ov.Categories))
		set.CategoryOrder = sortedKeys(ov.Categories)
		for name, words := range ov.Categories {
			set.Categories[strings.ToLower(name)] = lowerAll(words)
		}
	}
	if len(ov.Temporal) > 0 {
		set.Temporal = lowerAll(ov.Temporal)
	}
	if len(ov.Stopwords) > 0 {
		set.Stopwords = lowerAll(ov.Stopwords)
	}
	if len(ov.Gazetteer) > 0 {
		set.Gazetteer = make(map[string]string, len(ov.Gazetteer))
		for phrase, label := range ov.Gazetteer {
			set.Gazetteer[strings.ToLower(phrase)] = strings.ToUpper(label)
		}
	}
	if len(ov.FirstNames) > 0 {
		set.FirstNames = lowerAll(ov.FirstNames)
	}

	return set, nil
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func lowerKeys(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[strings.ToLower(k)] = v
	}
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Insertion order of YAML maps is not preserved by yaml.v3, so a
	// sorted order keeps reporting deterministic.
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] < keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	return keys
}
