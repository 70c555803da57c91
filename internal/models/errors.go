package models

import "errors"

var (
	// ErrWordNotFound is returned when a word is absent from the word store.
	ErrWordNotFound = errors.New("word not found")

	// ErrEmptyStore is returned when an operation needs at least one word.
	ErrEmptyStore = errors.New("word store is empty")

	// ErrSessionDone is returned when submitting to a finished session.
	ErrSessionDone = errors.New("session is finished")
)
