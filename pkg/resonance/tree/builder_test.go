package tree

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cognicore/resonance/pkg/resonance/entity"
	"github.com/cognicore/resonance/pkg/resonance/pattern"
	"github.com/cognicore/resonance/pkg/resonance/relation"
)

func TestBuildEmptyInput(t *testing.T) {
	root := Build(Input{})

	if root.Type != TypeRoot {
		t.Errorf("Expected root type, got %s", root.Type)
	}
	if root.Name != "Neutral Resonance (0.00)" {
		t.Errorf("Expected neutral zero root name, got %q", root.Name)
	}
	if len(root.Children) != 1 {
		t.Fatalf("Expected a single placeholder child, got %d", len(root.Children))
	}
	child := root.Children[0]
	if child.Name != "No Content" || child.Type != TypePlaceholder {
		t.Errorf("Expected No Content placeholder, got %+v", child)
	}
}

func TestBuildRootNameBuckets(t *testing.T) {
	cases := []struct {
		polarity float64
		prefix   string
	}{
		{0.5, "Positive"},
		{-0.5, "Negative"},
		{0.05, "Neutral"},
		{-0.1, "Neutral"},
	}
	for _, c := range cases {
		root := Build(Input{Polarity: c.polarity, SymbolicResonance: 0.42})
		if !strings.HasPrefix(root.Name, c.prefix) {
			t.Errorf("Polarity %v: expected prefix %s, got %q", c.polarity, c.prefix, root.Name)
		}
		if !strings.Contains(root.Name, "0.42") {
			t.Errorf("Root name should embed the resonance value, got %q", root.Name)
		}
	}
}

func TestBuildEntityGroups(t *testing.T) {
	var entities []entity.Entity
	for i := 0; i < 7; i++ {
		entities = append(entities, entity.Entity{
			Text:       fmt.Sprintf("person-%d", i),
			Label:      "PERSON",
			Importance: 1.5,
		})
	}
	entities = append(entities, entity.Entity{Text: "London", Label: "GPE", Importance: 1.0})

	root := Build(Input{Entities: entities})

	if len(root.Children) != 2 {
		t.Fatalf("Expected 2 entity groups, got %d", len(root.Children))
	}

	person := root.Children[0]
	if person.Name != "PERSON (7)" {
		t.Errorf("Expected group name with full count, got %q", person.Name)
	}
	if len(person.Children) != 5 {
		t.Errorf("Expected 5 children after cap, got %d", len(person.Children))
	}
	// Importance 1.5 halves to 0.75.
	if person.Children[0].Value != 0.75 {
		t.Errorf("Expected child value 0.75, got %v", person.Children[0].Value)
	}

	gpe := root.Children[1]
	if gpe.Name != "GPE (1)" || len(gpe.Children) != 1 {
		t.Errorf("Expected GPE group with one child, got %+v", gpe)
	}
}

func TestBuildRelationshipGroups(t *testing.T) {
	var rels []relation.Relationship
	for i := 0; i < 6; i++ {
		rels = append(rels, relation.Relationship{
			Source:   fmt.Sprintf("s%d", i),
			Target:   "t",
			Role:     relation.RoleObject,
			Strength: 1.1,
		})
	}
	rels = append(rels, relation.Relationship{
		Source: "x", Target: "y", Role: relation.RoleActor, Strength: 0.9,
	})

	root := Build(Input{Relationships: rels})

	if len(root.Children) != 2 {
		t.Fatalf("Expected 2 role groups, got %d", len(root.Children))
	}
	object := root.Children[0]
	if object.Name != "OBJECT (6)" {
		t.Errorf("Expected OBJECT (6), got %q", object.Name)
	}
	if len(object.Children) != 4 {
		t.Errorf("Expected 4 children after cap, got %d", len(object.Children))
	}
	// Strength above 1 is capped for display.
	if object.Children[0].Value != 1 {
		t.Errorf("Expected capped child value 1, got %v", object.Children[0].Value)
	}
	if object.Children[0].Name != "s0 → t" {
		t.Errorf("Expected arrow name, got %q", object.Children[0].Name)
	}
}

func TestBuildPatternBranches(t *testing.T) {
	patterns := pattern.Bundle{
		KeyPhrases: []pattern.KeyPhrase{
			{Text: "new project", Importance: 1.2, Pattern: "ADJ+NOUN"},
		},
		Emotions: []pattern.Emotion{
			{Emotion: "joy", Score: 3, Intensity: 0.3, Words: []string{"love", "smile"}},
		},
		Clusters: []pattern.Cluster{
			{Category: "actions", Entries: []pattern.ClusterEntry{
				{Word: "build", POS: "VERB", Weight: 0.7},
			}},
		},
		Narrative: pattern.Narrative{
			Characters: []string{"Sarah"},
			Actions:    []string{"walk"},
		},
	}

	root := Build(Input{Patterns: patterns})

	var names []string
	for _, child := range root.Children {
		names = append(names, child.Type)
	}
	want := []string{TypePhraseGroup, TypeEmotionGroup, TypeClusterGroup, TypeNarrativeGroup}
	if len(names) != len(want) {
		t.Fatalf("Expected branches %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Expected branch order %v, got %v", want, names)
		}
	}

	phrase := root.Children[0].Children[0]
	if phrase.Value != 1 {
		t.Errorf("Phrase importance above 1 must cap at 1, got %v", phrase.Value)
	}

	emotion := root.Children[1].Children[0]
	if emotion.Name != "joy (3)" || emotion.Description != "love, smile" {
		t.Errorf("Unexpected emotion node %+v", emotion)
	}

	narrative := root.Children[3]
	if len(narrative.Children) != 2 {
		t.Fatalf("Expected 2 narrative buckets, got %d", len(narrative.Children))
	}
	if narrative.Children[0].Name != "characters (1)" || narrative.Children[0].Description != "Sarah" {
		t.Errorf("Unexpected narrative bucket %+v", narrative.Children[0])
	}
}

func TestBuildDeterministicGroupOrder(t *testing.T) {
	entities := []entity.Entity{
		{Text: "a", Label: "GPE", Importance: 1},
		{Text: "b", Label: "PERSON", Importance: 0.9},
		{Text: "c", Label: "GPE", Importance: 0.8},
	}
	for i := 0; i < 10; i++ {
		root := Build(Input{Entities: entities})
		if root.Children[0].Name != "GPE (2)" || root.Children[1].Name != "PERSON (1)" {
			t.Fatalf("Group order must follow first appearance: %q, %q",
				root.Children[0].Name, root.Children[1].Name)
		}
	}
}
