package models

// DictionaryEntry mirrors one entry of the dictionaryapi.dev response.
type DictionaryEntry struct {
	Word     string    `json:"word"`
	Phonetic string    `json:"phonetic"`
	Meanings []Meaning `json:"meanings"`
}

type Meaning struct {
	PartOfSpeech string         `json:"partOfSpeech"`
	Definitions  []MeaningSense `json:"definitions"`
}

type MeaningSense struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example"`
	Synonyms   []string `json:"synonyms"`
}

// SpellSuggestion is one row of the Datamuse /sug response.
type SpellSuggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}
