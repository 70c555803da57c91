package models

import (
	"fmt"
	"strconv"
)

// Direction selects what the quiz prompts with: the word (asking for the
// definition) or the definition (asking for the word).
type Direction int

const (
	WordToDefinition Direction = iota
	DefinitionToWord
)

func ParseDirection(s string) (Direction, error) {
	switch s {
	case "word":
		return WordToDefinition, nil
	case "definition":
		return DefinitionToWord, nil
	default:
		return 0, fmt.Errorf("unknown quiz direction %q, want word or definition", s)
	}
}

func (d Direction) String() string {
	if d == DefinitionToWord {
		return "definition"
	}
	return "word"
}

// Toggle flips the quiz direction.
func (d Direction) Toggle() Direction {
	if d == WordToDefinition {
		return DefinitionToWord
	}
	return WordToDefinition
}

// WordQuiz is a single multiple-choice question. The true choice appears
// exactly once in Choices, at index Correct. Built once and never mutated.
type WordQuiz struct {
	Word       string
	Definition Definition
	Direction  Direction
	Choices    []string
	Correct    int
}

// Prompt returns the text shown to the user: the word itself when quizzing
// word-to-definition, otherwise the rendered true definition.
func (q WordQuiz) Prompt() string {
	if q.Direction == DefinitionToWord {
		return q.Definition.String()
	}
	return q.Word
}

// Answer reports whether the submission picks the correct choice. A
// submission is either a zero-based index ("0", "1", ...) or a single
// letter ("a" for 0, "b" for 1, ...). Anything unrecognized or out of
// range is simply wrong, never an error.
func (q WordQuiz) Answer(submitted string) bool {
	ind, ok := ChoiceIndex(submitted)
	return ok && ind == q.Correct
}

// ChoiceIndex maps a submission to a choice index. The second return is
// false when the submission is not a letter or a non-negative integer.
func ChoiceIndex(submitted string) (int, bool) {
	if len(submitted) == 1 && submitted[0] >= 'a' && submitted[0] <= 'z' {
		return int(submitted[0] - 'a'), true
	}
	n, err := strconv.Atoi(submitted)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// ChoiceLabel is the inverse of ChoiceIndex for display: 0 -> "a".
func ChoiceLabel(ind int) string {
	return string(rune('a' + ind))
}
