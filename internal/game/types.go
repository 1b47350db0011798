// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - LetterStatus: per-cell result of a guess (correct/present/absent/empty).
//   - Status: lifecycle of a session (not_started/in_progress/won/lost).
//   - Grid, Cell, Cursor: the fixed 6x5 board and input position.
//   - Snapshot: immutable view of a session handed to renderers.

package game

import "github.com/robalobadob/wordle-engine/internal/words"

const (
	// MaxRows is the number of attempts per game.
	MaxRows = 6
	// WordLen is the number of letters per guess.
	WordLen = words.WordLen
)

// LetterStatus represents the evaluation result for a single letter.
//   - "correct": right letter, right position.
//   - "present": letter occurs elsewhere in the secret (count-capped).
//   - "absent":  letter does not occur, or all occurrences are used up.
//   - "empty":   cell not evaluated yet.
type LetterStatus string

const (
	StatusEmpty   LetterStatus = "empty"
	StatusAbsent  LetterStatus = "absent"
	StatusPresent LetterStatus = "present"
	StatusCorrect LetterStatus = "correct"
)

// rank orders statuses for keyboard hint precedence.
func (s LetterStatus) rank() int {
	switch s {
	case StatusCorrect:
		return 3
	case StatusPresent:
		return 2
	case StatusAbsent:
		return 1
	}
	return 0
}

// Status is the lifecycle state of a Session.
type Status string

const (
	NotStarted Status = "not_started"
	InProgress Status = "in_progress"
	Won        Status = "won"
	Lost       Status = "lost"
)

// Terminal reports whether s is Won or Lost.
func (s Status) Terminal() bool { return s == Won || s == Lost }

// Cell is one square on the board. Letter is "" when nothing was entered.
type Cell struct {
	Letter string       `json:"letter"`
	Status LetterStatus `json:"status"`
}

// Row is one attempt.
type Row [WordLen]Cell

// Grid is the whole board. It is an array so copies are independent.
type Grid [MaxRows]Row

// Cursor is the input position; only Row accepts input.
type Cursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Word joins the letters of a row. Empty cells are skipped.
func (r Row) Word() string {
	b := make([]byte, 0, WordLen)
	for _, c := range r {
		b = append(b, c.Letter...)
	}
	return string(b)
}

// Filled reports whether every cell of the row holds a letter.
func (r Row) Filled() bool {
	for _, c := range r {
		if c.Letter == "" {
			return false
		}
	}
	return true
}

func emptyGrid() Grid {
	var g Grid
	for i := range g {
		for j := range g[i] {
			g[i][j].Status = StatusEmpty
		}
	}
	return g
}

// Snapshot is a read-only copy of a session's observable state.
// Secret is only populated once Status is terminal.
type Snapshot struct {
	ID       string   `json:"id"`
	Status   Status   `json:"status"`
	Grid     Grid     `json:"grid"`
	Cursor   Cursor   `json:"cursor"`
	Hints    KeyHints `json:"hints"`
	Attempts int      `json:"attempts"`
	Secret   string   `json:"secret,omitempty"`
}

// SubmitResult describes one evaluated guess.
type SubmitResult struct {
	Row      int            `json:"row"`
	Guess    string         `json:"guess"`
	Statuses []LetterStatus `json:"statuses"`
	Status   Status         `json:"status"`
}
