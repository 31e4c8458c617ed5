// Package relation filters, scores, sorts and truncates syntactic
// relationships and classifies each into a semantic role.
package relation

import (
	"math"
	"sort"

	"github.com/cognicore/resonance/pkg/resonance/annotate"
)

// MaxRelationships bounds the ranked output.
const MaxRelationships = 15

// minStrength is the exclusive lower bound a relationship must clear.
const minStrength = 0.3

// Semantic role tags.
const (
	RoleActor      = "actor"
	RoleObject     = "object"
	RoleDescriptor = "descriptor"
	RoleModifier   = "modifier"
	RoleOther      = "other"
)

// Relationship is one scored source→target dependency.
type Relationship struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Relation    string  `json:"relation"`
	Description string  `json:"description"`
	Strength    float64 `json:"strength"`
	SourcePOS   string  `json:"source_pos"`
	TargetPOS   string  `json:"target_pos"`
	Role        string  `json:"semantic_role"`
}

// labelWeights are the base strengths of the syntactically informative
// dependency labels. Labels outside this allow-list are discarded.
var labelWeights = map[string]float64{
	annotate.DepNsubj:    0.9,
	annotate.DepDobj:     0.8,
	annotate.DepAmod:     0.7,
	annotate.DepCompound: 0.7,
	annotate.DepAttr:     0.7,
	annotate.DepAcomp:    0.7,
	annotate.DepPobj:     0.6,
	annotate.DepPoss:     0.6,
	annotate.DepAdvmod:   0.6,
	"ccomp":              0.5,
	"xcomp":              0.5,
}

// roles maps a dependency label to its semantic role.
var roles = map[string]string{
	annotate.DepNsubj:    RoleActor,
	annotate.DepDobj:     RoleObject,
	annotate.DepPobj:     RoleObject,
	annotate.DepAmod:     RoleDescriptor,
	annotate.DepAcomp:    RoleDescriptor,
	annotate.DepAttr:     RoleDescriptor,
	annotate.DepAdvmod:   RoleModifier,
	annotate.DepCompound: RoleModifier,
	annotate.DepPoss:     RoleModifier,
}

// Scorer scores dependency relationships. It is stateless; the type exists
// so the pipeline wires components uniformly.
type Scorer struct{}

// NewScorer creates a relationship scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score keeps allow-listed, non-stopword dependencies, scores each,
// discards strength <= 0.3, sorts descending (stable on document order)
// and truncates to MaxRelationships.
func (s *Scorer) Score(doc annotate.Doc) []Relationship {
	var rels []Relationship

	for _, tok := range doc.Tokens {
		base, ok := labelWeights[tok.Dep]
		if !ok || tok.IsStop {
			continue
		}
		if tok.Head < 0 || tok.Head >= len(doc.Tokens) {
			continue
		}
		head := doc.Tokens[tok.Head]

		strength := base
		if isContentPOS(tok.POS) {
			strength += 0.2
		}
		if isContentPOS(head.POS) {
			strength += 0.1
		}
		if tok.IsStop || head.IsStop {
			strength -= 0.2
		}
		if strength < 0 {
			strength = 0
		}
		if strength <= minStrength {
			continue
		}

		rels = append(rels, Relationship{
			Source:      tok.Text,
			Target:      head.Text,
			Relation:    tok.Dep,
			Description: annotate.DescribeDep(tok.Dep),
			Strength:    round3(strength),
			SourcePOS:   tok.POS,
			TargetPOS:   head.POS,
			Role:        classify(tok.Dep),
		})
	}

	sort.SliceStable(rels, func(i, j int) bool {
		return rels[i].Strength > rels[j].Strength
	})
	if len(rels) > MaxRelationships {
		rels = rels[:MaxRelationships]
	}
	return rels
}

// classify maps a dependency label to its semantic role tag.
func classify(dep string) string {
	if role, ok := roles[dep]; ok {
		return role
	}
	return RoleOther
}

func isContentPOS(pos string) bool {
	return pos == annotate.TagNoun || pos == annotate.TagPropn || pos == annotate.TagVerb
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
