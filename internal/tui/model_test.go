package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-engine/internal/game"
	"github.com/robalobadob/wordle-engine/internal/words"
)

const testWords = "crane\nslate\nallot\nwhelp\nbrick\nplumb\nfight"

func staticLoader(text string) words.LoaderFunc {
	return func(context.Context) (*words.Dictionary, error) {
		return words.Load(text), nil
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeWord(m *Model, w string) {
	for _, ch := range w {
		m.Update(runes(string(ch)))
	}
}

// loaded returns a model whose dictionary has arrived.
func loaded(t *testing.T) *Model {
	t.Helper()
	log.Logger = zerolog.Nop()
	m := New(context.Background(), staticLoader(testWords), game.FixedPicker("crane"))
	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	require.NoError(t, m.err)
	require.Equal(t, game.InProgress, m.Snapshot().Status)
	return m
}

func TestModel_NotReadyUntilLoaded(t *testing.T) {
	log.Logger = zerolog.Nop()
	m := New(context.Background(), staticLoader(testWords), game.FixedPicker("crane"))

	assert.ErrorIs(t, m.err, game.ErrDictionaryNotReady)
	assert.Equal(t, game.NotStarted, m.Snapshot().Status)
	assert.Contains(t, m.View(), "Loading dictionary")

	m.Update(runes("c"))
	assert.ErrorIs(t, m.err, game.ErrNotInProgress)
	assert.Equal(t, "", m.Snapshot().Grid[0].Word())
}

func TestModel_LoadFailure(t *testing.T) {
	log.Logger = zerolog.Nop()
	boom := errors.New("boom")
	m := New(context.Background(), func(context.Context) (*words.Dictionary, error) { return nil, boom }, game.RandomPicker)
	m.Update(m.Init()())
	assert.ErrorIs(t, m.err, boom)
	assert.Contains(t, m.View(), "boom")
}

func TestModel_EmptyDictionary(t *testing.T) {
	log.Logger = zerolog.Nop()
	m := New(context.Background(), staticLoader("\n"), game.RandomPicker)
	m.Update(m.Init()())
	assert.ErrorIs(t, m.err, game.ErrEmptyDictionary)
	assert.Contains(t, m.View(), "word list is empty")
}

func TestModel_TypingAndEditing(t *testing.T) {
	m := loaded(t)

	typeWord(m, "SLA")
	snap := m.Snapshot()
	assert.Equal(t, "sla", snap.Grid[0].Word())
	assert.Equal(t, game.Cursor{Row: 0, Col: 3}, snap.Cursor)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "sl", m.Snapshot().Grid[0].Word())
	assert.Equal(t, 2, m.Snapshot().Cursor.Col)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Snapshot().Cursor.Col)
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.Snapshot().Cursor.Col)

	// digits are ignored without a message
	m.Update(runes("7"))
	assert.NoError(t, m.err)
	assert.Equal(t, "sl", m.Snapshot().Grid[0].Word())
}

func TestModel_SubmitErrors(t *testing.T) {
	m := loaded(t)

	typeWord(m, "cran")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.err, game.ErrIncompleteRow)
	assert.Contains(t, m.View(), "Not enough letters")

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	typeWord(m, "zzz")
	assert.Equal(t, "crazz", m.Snapshot().Grid[0].Word())
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.ErrorIs(t, m.err, game.ErrInvalidWord)
	assert.Equal(t, 0, m.Snapshot().Cursor.Row)
}

func TestModel_Win(t *testing.T) {
	m := loaded(t)

	typeWord(m, "slate")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NoError(t, m.err)
	assert.Equal(t, 1, m.Snapshot().Cursor.Row)
	assert.Equal(t, game.StatusCorrect, m.Snapshot().Hints.Get('a'))

	typeWord(m, "crane")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, game.Won, m.Snapshot().Status)
	assert.Contains(t, m.View(), "Solved in 2!")

	m.Update(runes("x"))
	assert.ErrorIs(t, m.err, game.ErrGameFinished)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NoError(t, m.err)
	assert.Equal(t, game.InProgress, m.Snapshot().Status)
	assert.Zero(t, m.Snapshot().Attempts)
}

func TestModel_Lose(t *testing.T) {
	m := loaded(t)
	for _, w := range []string{"slate", "allot", "whelp", "brick", "plumb", "fight"} {
		typeWord(m, w)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	}
	assert.Equal(t, game.Lost, m.Snapshot().Status)
	assert.Contains(t, m.View(), "The word was crane.")
}

func TestModel_Quit(t *testing.T) {
	m := loaded(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_HelpToggle(t *testing.T) {
	m := loaded(t)
	assert.False(t, m.help.ShowAll)
	m.Update(runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Equal(t, "", m.Snapshot().Grid[0].Word())
}
