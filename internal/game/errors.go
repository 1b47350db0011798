package game

import (
	"errors"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// User-facing conditions. None of them change session state.
var (
	ErrIncompleteRow = errors.New("game: row is incomplete")
	ErrInvalidWord   = errors.New("game: not in word list")

	ErrEmptyDictionary    = words.ErrEmptyDictionary
	ErrDictionaryNotReady = words.ErrDictionaryNotReady
)

// Guards for input that arrives out of turn or out of range.
var (
	ErrNotInProgress = errors.New("game: not in progress")
	ErrGameFinished  = errors.New("game: game finished")
	ErrInactiveRow   = errors.New("game: row is not active")
	ErrOutOfBounds   = errors.New("game: column out of range")
	ErrInvalidLetter = errors.New("game: not a letter")
)
