package config

import (
	"fmt"

	"github.com/cognicore/resonance/pkg/resonance/lexicon"
)

// Lexicons returns the lexicon set for this configuration: the YAML
// override file when LexiconPath is set, the built-in defaults otherwise.
func (c Config) Lexicons() (*lexicon.Set, error) {
	if c.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	set, err := lexicon.LoadFromYAML(c.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("load lexicons: %w", err)
	}
	return set, nil
}
