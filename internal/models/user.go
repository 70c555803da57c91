package models

// UserRecord identifies a quiz user. Counters and discards hang off the
// name in the user store.
type UserRecord struct {
	Name string `db:"name"`
}

// WordScore is the per-(user, word) right/wrong counter pair.
type WordScore struct {
	Word  string `db:"word"`
	Right int    `db:"right_count"`
	Wrong int    `db:"wrong_count"`
}

// Outcome is the result of a single answered question.
type Outcome string

const (
	OutcomeRight Outcome = "right"
	OutcomeWrong Outcome = "wrong"
)

// Valid reports whether the outcome is one of the two known values.
func (o Outcome) Valid() bool {
	return o == OutcomeRight || o == OutcomeWrong
}
