package models

import "fmt"

// Side is the face of a flashcard currently shown.
type Side int

const (
	SideWord Side = iota
	SideDefinition
)

func ParseSide(s string) (Side, error) {
	switch s {
	case "word":
		return SideWord, nil
	case "definition":
		return SideDefinition, nil
	default:
		return 0, fmt.Errorf("unknown card side %q, want word or definition", s)
	}
}

func (s Side) String() string {
	if s == SideDefinition {
		return "definition"
	}
	return "word"
}

// Card is a single flashcard. Flip cycles between the two display states;
// nothing else mutates it.
type Card struct {
	Word       string
	Definition Definition
	Side       Side
	Displayed  string
}

// NewCard builds a card showing its word side.
func NewCard(entry WordEntry) *Card {
	return &Card{
		Word:       entry.Word,
		Definition: entry.Definition,
		Side:       SideWord,
		Displayed:  entry.Word,
	}
}

// Flip turns the card over, swapping the displayed side and text.
func (c *Card) Flip() {
	if c.Side == SideWord {
		c.Side = SideDefinition
		c.Displayed = c.Definition.String()
		return
	}
	c.Side = SideWord
	c.Displayed = c.Word
}
