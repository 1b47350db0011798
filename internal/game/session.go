// internal/game/session.go
//
// Turn state machine for a single game.
// Responsibilities:
//   - Start/Reset: draw a secret and clear the board.
//   - Letter entry and cursor movement on the active row.
//   - Submit: validate, evaluate, finalize the row, fold keyboard hints.
//   - State transitions: not_started → in_progress → won/lost.
//   - Publish an immutable Snapshot to subscribers after every change.
//
// A Session is not safe for concurrent use. Callers that share one across
// goroutines (the HTTP store) serialize access themselves.
package game

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// Session owns the secret, board, cursor and hints of one game.
type Session struct {
	id     string
	dict   *words.Dictionary
	picker SecretPicker
	log    zerolog.Logger

	secret   string
	grid     Grid
	cur      Cursor
	status   Status
	hints    KeyHints
	attempts int

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Option configures a Session.
type Option func(*Session)

// WithDictionary installs the dictionary used for validation and secrets.
func WithDictionary(d *words.Dictionary) Option { return func(s *Session) { s.dict = d } }

// WithPicker overrides how the secret is chosen. Default is RandomPicker.
func WithPicker(p SecretPicker) Option { return func(s *Session) { s.picker = p } }

// WithLogger sets the session logger. Default is the global zerolog logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Session) { s.log = l } }

// WithID sets the session identifier. Default is a random UUID.
func WithID(id string) Option { return func(s *Session) { s.id = id } }

// NewSession creates a session in the NotStarted state.
func NewSession(opts ...Option) *Session {
	s := &Session{
		picker: RandomPicker,
		log:    log.Logger,
		status: NotStarted,
		grid:   emptyGrid(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	s.log = s.log.With().Str("session", s.id).Logger()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// LoadDictionary parses text and installs it as the dictionary. It takes
// effect for validation immediately and for secrets at the next Start.
func (s *Session) LoadDictionary(text string) {
	s.SetDictionary(words.Load(text))
}

// SetDictionary installs an already loaded dictionary.
func (s *Session) SetDictionary(d *words.Dictionary) {
	s.dict = d
	s.log.Debug().Int("words", d.Len()).Msg("dictionary installed")
}

// Start draws a fresh secret and clears the board, from any state.
// If no secret can be drawn the session is left untouched.
func (s *Session) Start() error {
	secret, err := s.picker.Pick(s.dict)
	if err != nil {
		s.log.Warn().Err(err).Msg("cannot start game")
		return err
	}
	s.secret = strings.ToLower(secret)
	s.grid = emptyGrid()
	s.cur = Cursor{}
	s.hints = KeyHints{}
	s.attempts = 0
	s.status = InProgress
	s.log.Debug().Msg("game started")
	s.publish()
	return nil
}

// Reset behaves exactly like Start.
func (s *Session) Reset() error { return s.Start() }

// EnterLetter writes ch into (row, col) of the active row and moves the
// cursor to the next cell, stopping at the last one.
func (s *Session) EnterLetter(row, col int, ch rune) error {
	if err := s.editable(row, col); err != nil {
		return err
	}
	ch = unicode.ToLower(ch)
	if ch < 'a' || ch > 'z' {
		return ErrInvalidLetter
	}
	s.grid[row][col].Letter = string(ch)
	s.cur.Col = min(col+1, WordLen-1)
	s.publish()
	return nil
}

// Backspace clears the cell at (row, col) if it holds a letter. On an
// empty cell it steps the cursor back one column and clears that instead.
func (s *Session) Backspace(row, col int) error {
	if err := s.editable(row, col); err != nil {
		return err
	}
	switch {
	case s.grid[row][col].Letter != "":
		s.grid[row][col].Letter = ""
		s.cur.Col = col
	case col > 0:
		s.grid[row][col-1].Letter = ""
		s.cur.Col = col - 1
	default:
		s.cur.Col = 0
	}
	s.publish()
	return nil
}

// MoveLeft moves the cursor one column left, stopping at the first column.
func (s *Session) MoveLeft() error { return s.move(-1) }

// MoveRight moves the cursor one column right, stopping at the last column.
func (s *Session) MoveRight() error { return s.move(1) }

func (s *Session) move(delta int) error {
	if err := s.inProgress(); err != nil {
		return err
	}
	col := s.cur.Col + delta
	if col < 0 || col >= WordLen {
		return nil
	}
	s.cur.Col = col
	s.publish()
	return nil
}

// Submit evaluates the active row.
//
// Fails without changing anything when the game is not in progress, when
// the row has blank cells (ErrIncompleteRow) or when the word is not in
// the dictionary (ErrInvalidWord).
func (s *Session) Submit() (SubmitResult, error) {
	if err := s.inProgress(); err != nil {
		return SubmitResult{}, err
	}
	row := s.grid[s.cur.Row]
	if !row.Filled() {
		return SubmitResult{}, ErrIncompleteRow
	}
	guess := row.Word()
	if !s.dict.Contains(guess) {
		s.log.Debug().Str("guess", guess).Msg("rejected guess")
		return SubmitResult{}, ErrInvalidWord
	}
	return s.apply(guess), nil
}

// Guess fills the active row with word and submits it. The word is fully
// validated first, so a rejected guess leaves the row as it was.
func (s *Session) Guess(word string) (SubmitResult, error) {
	if err := s.inProgress(); err != nil {
		return SubmitResult{}, err
	}
	w := strings.ToLower(strings.TrimSpace(word))
	if len(w) < WordLen {
		return SubmitResult{}, ErrIncompleteRow
	}
	if len(w) != WordLen || !isAlpha(w) || !s.dict.Contains(w) {
		s.log.Debug().Str("guess", w).Msg("rejected guess")
		return SubmitResult{}, ErrInvalidWord
	}
	for i := 0; i < WordLen; i++ {
		s.grid[s.cur.Row][i].Letter = w[i : i+1]
	}
	return s.apply(w), nil
}

// apply finalizes the active row with the evaluation of guess and moves
// the state machine forward.
func (s *Session) apply(guess string) SubmitResult {
	r := s.cur.Row
	statuses := Evaluate(guess, s.secret)
	for i, st := range statuses {
		s.grid[r][i].Status = st
	}
	s.hints = s.hints.Update(guess, statuses)
	s.attempts++

	switch {
	case allCorrect(statuses):
		s.status = Won
		s.log.Info().Int("attempts", s.attempts).Msg("game won")
	case r == MaxRows-1:
		s.status = Lost
		s.log.Info().Str("secret", s.secret).Msg("game lost")
	default:
		s.cur = Cursor{Row: r + 1}
		s.log.Debug().Int("row", r).Str("guess", guess).Msg("guess evaluated")
	}
	s.publish()

	return SubmitResult{
		Row:      r,
		Guess:    guess,
		Statuses: statuses,
		Status:   s.status,
	}
}

// Snapshot returns a copy of the observable state. The secret is only
// included once the game is over.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:       s.id,
		Status:   s.status,
		Grid:     s.grid,
		Cursor:   s.cur,
		Hints:    s.hints,
		Attempts: s.attempts,
	}
	if s.status.Terminal() {
		snap.Secret = s.secret
	}
	return snap
}

// Subscribe registers fn to receive a Snapshot after every successful
// mutation. Calls happen synchronously, in subscription order. The
// returned func removes the subscription.
func (s *Session) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) publish() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, sub := range s.subs {
		sub.fn(snap)
	}
}

func (s *Session) inProgress() error {
	switch {
	case s.status == InProgress:
		return nil
	case s.status.Terminal():
		return ErrGameFinished
	default:
		return ErrNotInProgress
	}
}

func (s *Session) editable(row, col int) error {
	if err := s.inProgress(); err != nil {
		return err
	}
	if row != s.cur.Row {
		return ErrInactiveRow
	}
	if col < 0 || col >= WordLen {
		return ErrOutOfBounds
	}
	return nil
}
