package tree

import (
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/resonance/pkg/resonance/entity"
	"github.com/cognicore/resonance/pkg/resonance/pattern"
	"github.com/cognicore/resonance/pkg/resonance/relation"
)

// Per-branch child caps.
const (
	maxEntityChildren  = 5
	maxRelateChildren  = 4
	maxPhraseChildren  = 6
	maxClusterChildren = 4
)

// Input bundles everything the builder renders.
type Input struct {
	Polarity          float64
	SymbolicResonance float64
	Sentiment         any // full sentiment record attached to the root
	Entities          []entity.Entity
	Relationships     []relation.Relationship
	Patterns          pattern.Bundle
}

// Build assembles the visualization tree with a fixed branch order:
// entity groups, relationship role groups, key phrases, emotions, semantic
// clusters, narrative elements. A branch is emitted only when its source
// collection is non-empty; a tree with no branches gets a single
// placeholder child.
func Build(in Input) *Node {
	root := &Node{
		Name:  fmt.Sprintf("%s Resonance (%.2f)", polarityBucket(in.Polarity), in.SymbolicResonance),
		Type:  TypeRoot,
		Value: in.SymbolicResonance,
		Data:  in.Sentiment,
	}

	addEntityGroups(root, in.Entities)
	addRelationshipGroups(root, in.Relationships)
	addKeyPhrases(root, in.Patterns.KeyPhrases)
	addEmotions(root, in.Patterns.Emotions)
	addClusters(root, in.Patterns.Clusters)
	addNarrative(root, in.Patterns.Narrative)

	if len(root.Children) == 0 {
		root.addChild(&Node{Name: "No Content", Type: TypePlaceholder})
	}
	return root
}

// polarityBucket maps polarity to its display bucket.
func polarityBucket(polarity float64) string {
	switch {
	case polarity > 0.1:
		return "Positive"
	case polarity < -0.1:
		return "Negative"
	default:
		return "Neutral"
	}
}

// addEntityGroups emits one branch per distinct entity label, in order of
// first appearance in the ranked list. Children stay importance-ordered.
func addEntityGroups(root *Node, entities []entity.Entity) {
	groups := make(map[string][]entity.Entity)
	var order []string
	for _, ent := range entities {
		if _, ok := groups[ent.Label]; !ok {
			order = append(order, ent.Label)
		}
		groups[ent.Label] = append(groups[ent.Label], ent)
	}

	for _, label := range order {
		members := groups[label]
		group := &Node{
			Name:        fmt.Sprintf("%s (%d)", label, len(members)),
			Type:        TypeEntityGroup,
			Value:       float64(len(members)),
			Description: members[0].Description,
		}
		for _, ent := range capEntities(members, maxEntityChildren) {
			group.addChild(&Node{
				Name:  ent.Text,
				Type:  TypeEntity,
				Value: math.Min(ent.Importance/2, 1),
				Data:  ent,
			})
		}
		root.addChild(group)
	}
}

// addRelationshipGroups emits one branch per distinct semantic role, in
// order of first appearance in the ranked list.
func addRelationshipGroups(root *Node, rels []relation.Relationship) {
	groups := make(map[string][]relation.Relationship)
	var order []string
	for _, rel := range rels {
		if _, ok := groups[rel.Role]; !ok {
			order = append(order, rel.Role)
		}
		groups[rel.Role] = append(groups[rel.Role], rel)
	}

	for _, role := range order {
		members := groups[role]
		group := &Node{
			Name:        fmt.Sprintf("%s (%d)", strings.ToUpper(role), len(members)),
			Type:        TypeRelationshipGroup,
			Value:       float64(len(members)),
			Description: members[0].Description,
		}
		limit := min(len(members), maxRelateChildren)
		for _, rel := range members[:limit] {
			group.addChild(&Node{
				Name:  fmt.Sprintf("%s → %s", rel.Source, rel.Target),
				Type:  TypeRelationship,
				Value: math.Min(rel.Strength, 1),
				Data:  rel,
			})
		}
		root.addChild(group)
	}
}

func addKeyPhrases(root *Node, phrases []pattern.KeyPhrase) {
	if len(phrases) == 0 {
		return
	}
	group := &Node{
		Name:  fmt.Sprintf("Key Phrases (%d)", len(phrases)),
		Type:  TypePhraseGroup,
		Value: float64(len(phrases)),
	}
	limit := min(len(phrases), maxPhraseChildren)
	for _, phrase := range phrases[:limit] {
		group.addChild(&Node{
			Name:        phrase.Text,
			Type:        TypePhrase,
			Value:       math.Min(phrase.Importance, 1),
			Description: phrase.Pattern,
			Data:        phrase,
		})
	}
	root.addChild(group)
}

func addEmotions(root *Node, emotions []pattern.Emotion) {
	if len(emotions) == 0 {
		return
	}
	group := &Node{
		Name:  fmt.Sprintf("Emotional Patterns (%d)", len(emotions)),
		Type:  TypeEmotionGroup,
		Value: float64(len(emotions)),
	}
	for _, emo := range emotions {
		group.addChild(&Node{
			Name:        fmt.Sprintf("%s (%d)", emo.Emotion, emo.Score),
			Type:        TypeEmotion,
			Value:       emo.Intensity,
			Description: strings.Join(emo.Words, ", "),
			Data:        emo,
		})
	}
	root.addChild(group)
}

func addClusters(root *Node, clusters []pattern.Cluster) {
	for _, cluster := range clusters {
		group := &Node{
			Name:  fmt.Sprintf("%s (%d)", cluster.Category, len(cluster.Entries)),
			Type:  TypeClusterGroup,
			Value: float64(len(cluster.Entries)),
		}
		limit := min(len(cluster.Entries), maxClusterChildren)
		for _, entry := range cluster.Entries[:limit] {
			group.addChild(&Node{
				Name:        entry.Word,
				Type:        TypeClusterWord,
				Value:       entry.Weight,
				Description: entry.POS,
			})
		}
		root.addChild(group)
	}
}

func addNarrative(root *Node, narrative pattern.Narrative) {
	if narrative.Empty() {
		return
	}
	group := &Node{
		Name: "Narrative Elements",
		Type: TypeNarrativeGroup,
	}
	buckets := []struct {
		name    string
		entries []string
	}{
		{"characters", narrative.Characters},
		{"actions", narrative.Actions},
		{"settings", narrative.Settings},
		{"temporal_markers", narrative.TemporalMarkers},
	}
	for _, b := range buckets {
		if len(b.entries) == 0 {
			continue
		}
		group.addChild(&Node{
			Name:        fmt.Sprintf("%s (%d)", b.name, len(b.entries)),
			Type:        TypeNarrativeBucket,
			Value:       float64(len(b.entries)),
			Description: strings.Join(b.entries, ", "),
		})
	}
	group.Value = float64(len(group.Children))
	root.addChild(group)
}

func capEntities(entities []entity.Entity, limit int) []entity.Entity {
	if len(entities) > limit {
		return entities[:limit]
	}
	return entities
}
