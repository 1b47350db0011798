// internal/tui/model.go
//
// Terminal player. A bubbletea model over one game.Session:
//   - letters, backspace and arrows edit the active row at the cursor;
//   - enter submits, ctrl+r draws a new word, esc quits;
//   - the dictionary loads in the background, and until it arrives the
//     board shows that it is not ready.
//
// All engine calls happen on the bubbletea update loop.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/words"
)

// dictMsg carries the result of the background dictionary load.
type dictMsg words.Loaded

// Model implements tea.Model.
type Model struct {
	ctx     context.Context
	session *game.Session
	loader  words.LoaderFunc
	snap    game.Snapshot

	keys   keyMap
	help   help.Model
	notice string
	err    error
}

// New builds a model that plays with picker once loader delivers a
// dictionary.
func New(ctx context.Context, loader words.LoaderFunc, picker game.SecretPicker) *Model {
	m := &Model{
		ctx:    ctx,
		loader: loader,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	m.session = game.NewSession(
		game.WithPicker(picker),
		game.WithLogger(log.Logger.With().Str("component", "tui").Logger()),
	)
	m.session.Subscribe(func(s game.Snapshot) { m.snap = s })
	m.snap = m.session.Snapshot()
	// No dictionary yet, so this reports ErrDictionaryNotReady.
	m.err = m.session.Start()
	return m
}

// Snapshot returns the state currently on screen.
func (m *Model) Snapshot() game.Snapshot { return m.snap }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		return dictMsg(<-words.LoadAsync(ctx, loader))
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case dictMsg:
		if msg.Err != nil {
			m.err = fmt.Errorf("load dictionary: %w", msg.Err)
			return m, nil
		}
		m.session.SetDictionary(msg.Dict)
		m.setErr(m.session.Start())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cur := m.snap.Cursor
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Reset):
		m.setErr(m.session.Reset())
	case key.Matches(msg, m.keys.Submit):
		res, err := m.session.Submit()
		m.setErr(err)
		if err == nil {
			m.notice = resultNotice(res, m.snap)
		}
	case key.Matches(msg, m.keys.Backspace):
		m.setErr(m.session.Backspace(cur.Row, cur.Col))
	case key.Matches(msg, m.keys.Left):
		m.setErr(m.session.MoveLeft())
	case key.Matches(msg, m.keys.Right):
		m.setErr(m.session.MoveRight())
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		err := m.session.EnterLetter(cur.Row, cur.Col, msg.Runes[0])
		if errors.Is(err, game.ErrInvalidLetter) {
			return m, nil
		}
		m.setErr(err)
	}
	return m, nil
}

// setErr records the outcome of the last action. A nil error clears the
// previous message.
func (m *Model) setErr(err error) {
	m.err = err
	m.notice = ""
}

func resultNotice(res game.SubmitResult, snap game.Snapshot) string {
	switch res.Status {
	case game.Won:
		return fmt.Sprintf("Solved in %d!", snap.Attempts)
	case game.Lost:
		return fmt.Sprintf("The word was %s.", snap.Secret)
	}
	return ""
}

// errText turns engine errors into the line shown under the board.
func errText(err error) string {
	switch {
	case errors.Is(err, game.ErrDictionaryNotReady):
		return "Loading dictionary..."
	case errors.Is(err, game.ErrEmptyDictionary):
		return "The word list is empty."
	case errors.Is(err, game.ErrIncompleteRow):
		return "Not enough letters."
	case errors.Is(err, game.ErrInvalidWord):
		return "Not in word list."
	case errors.Is(err, game.ErrGameFinished):
		return "Game over. Press ctrl+r for a new word."
	case errors.Is(err, game.ErrNotInProgress):
		return "No game yet."
	}
	return err.Error()
}
