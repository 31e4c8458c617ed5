// Package tree assembles the bounded hierarchical visualization structure
// summarizing one analysis result.
package tree

// Node types. Each node carries a role tag plus an optional reference to
// the domain record it was built from.
const (
	TypeRoot              = "root"
	TypeEntityGroup       = "entity_group"
	TypeEntity            = "entity"
	TypeRelationshipGroup = "relationship_group"
	TypeRelationship      = "relationship"
	TypePhraseGroup       = "phrase_group"
	TypePhrase            = "phrase"
	TypeEmotionGroup      = "emotion_group"
	TypeEmotion           = "emotion"
	TypeClusterGroup      = "cluster_group"
	TypeClusterWord       = "cluster_word"
	TypeNarrativeGroup    = "narrative_group"
	TypeNarrativeBucket   = "narrative_bucket"
	TypePlaceholder       = "placeholder"
)

// Node is one element of the visualization tree. Value is a bounded scalar
// used purely for relative visual weighting (0..1 except raw counts);
// Children preserve deterministic insertion order and are never re-sorted
// by a renderer.
type Node struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
	Data        any     `json:"data,omitempty"`
	Children    []*Node `json:"children"`
}

// addChild appends a child, preserving insertion order.
func (n *Node) addChild(child *Node) {
	n.Children = append(n.Children, child)
}
