package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		submitted string
		want      int
		wantOK    bool
	}{
		{name: "letter a", submitted: "a", want: 0, wantOK: true},
		{name: "letter d", submitted: "d", want: 3, wantOK: true},
		{name: "letter z", submitted: "z", want: 25, wantOK: true},
		{name: "digit zero", submitted: "0", want: 0, wantOK: true},
		{name: "digit three", submitted: "3", want: 3, wantOK: true},
		{name: "negative", submitted: "-1", wantOK: false},
		{name: "uppercase not accepted", submitted: "A", wantOK: false},
		{name: "word", submitted: "abc", wantOK: false},
		{name: "empty", submitted: "", wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ChoiceIndex(tt.submitted)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestWordQuiz_Answer(t *testing.T) {
	t.Parallel()

	quiz := WordQuiz{
		Word:       "cat",
		Definition: Definition{"noun": {"a small domesticated feline"}},
		Direction:  WordToDefinition,
		Choices:    []string{"a domesticated canine", "a small domesticated feline", "a flying mammal"},
		Correct:    1,
	}

	assert.True(t, quiz.Answer("1"))
	assert.True(t, quiz.Answer("b"))

	assert.False(t, quiz.Answer("0"))
	assert.False(t, quiz.Answer("a"))
	assert.False(t, quiz.Answer("c"))
	assert.False(t, quiz.Answer("2"))

	// out of range and garbage are wrong, never a panic
	assert.False(t, quiz.Answer("9"))
	assert.False(t, quiz.Answer("z"))
	assert.False(t, quiz.Answer("?"))
	assert.False(t, quiz.Answer(""))
}

func TestWordQuiz_Prompt(t *testing.T) {
	t.Parallel()

	def := Definition{"noun": {"a wild canine"}}
	quiz := WordQuiz{Word: "fox", Definition: def, Direction: WordToDefinition}
	assert.Equal(t, "fox", quiz.Prompt())

	quiz.Direction = DefinitionToWord
	assert.Equal(t, "noun: a wild canine", quiz.Prompt())
}

func TestDirection(t *testing.T) {
	t.Parallel()

	dir, err := ParseDirection("word")
	require.NoError(t, err)
	assert.Equal(t, WordToDefinition, dir)

	dir, err = ParseDirection("definition")
	require.NoError(t, err)
	assert.Equal(t, DefinitionToWord, dir)

	_, err = ParseDirection("sideways")
	require.Error(t, err)

	assert.Equal(t, DefinitionToWord, WordToDefinition.Toggle())
	assert.Equal(t, WordToDefinition, WordToDefinition.Toggle().Toggle())
}

func TestChoiceLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", ChoiceLabel(0))
	assert.Equal(t, "c", ChoiceLabel(2))
}
