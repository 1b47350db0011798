package game

import (
	"strings"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// SecretPicker chooses the secret for a new game.
type SecretPicker interface {
	Pick(d *words.Dictionary) (string, error)
}

// PickerFunc adapts a function to SecretPicker.
type PickerFunc func(d *words.Dictionary) (string, error)

func (f PickerFunc) Pick(d *words.Dictionary) (string, error) { return f(d) }

// RandomPicker draws a uniformly random word. It is the default.
var RandomPicker SecretPicker = PickerFunc(func(d *words.Dictionary) (string, error) {
	return d.RandomWord()
})

// FixedPicker always returns word, provided the dictionary is usable.
// Mostly useful in tests and for replaying a known puzzle.
func FixedPicker(word string) SecretPicker {
	word = strings.ToLower(strings.TrimSpace(word))
	return PickerFunc(func(d *words.Dictionary) (string, error) {
		if len(word) != WordLen || !isAlpha(word) {
			return "", ErrInvalidWord
		}
		if d == nil {
			return "", ErrDictionaryNotReady
		}
		if d.Len() == 0 {
			return "", ErrEmptyDictionary
		}
		return word, nil
	})
}
