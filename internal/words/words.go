// internal/words/words.go
//
// Dictionary of valid guessable words.
//
// Responsibilities:
//   - Parse a raw newline-separated word list into an immutable Dictionary.
//   - Membership checks for guesses (case-insensitive).
//   - Random and indexed secret selection.
//
// Constraints:
//   • Words are exactly 5 ASCII letters, normalized to lowercase.
//   • Lines that do not qualify are dropped silently; they are not errors.
//   • A Dictionary with no words is valid to hold but cannot produce a secret.
//   • A nil *Dictionary means the list has not been loaded yet.
package words

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

// WordLen is the length of every dictionary word.
const WordLen = 5

var (
	// ErrEmptyDictionary is returned when a secret is requested from a
	// dictionary that loaded no usable words.
	ErrEmptyDictionary = errors.New("words: dictionary is empty")

	// ErrDictionaryNotReady is returned when the dictionary is queried
	// before loading has completed.
	ErrDictionaryNotReady = errors.New("words: dictionary not ready")
)

// Dictionary is an immutable set of lowercase five-letter words.
// It is safe for concurrent use once constructed.
type Dictionary struct {
	list []string            // load order, deduplicated
	set  map[string]struct{} // lookup set over list
}

// Load parses raw text into a Dictionary. Each line is trimmed and
// lowercased; only 5-letter alphabetic entries are kept. The first
// occurrence of a duplicate keeps its position.
func Load(raw string) *Dictionary {
	d := &Dictionary{set: make(map[string]struct{})}
	for _, line := range strings.Split(raw, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if !Valid(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	return d
}

// Valid reports whether w is WordLen lowercase ASCII letters.
func Valid(w string) bool { return len(w) == WordLen && isAlpha(w) }

// FromList builds a Dictionary from already split words, applying the
// same normalization as Load.
func FromList(list []string) *Dictionary {
	return Load(strings.Join(list, "\n"))
}

// Contains reports whether word is in the dictionary. The check is
// case-insensitive and returns false for anything that is not exactly
// WordLen characters after trimming.
func (d *Dictionary) Contains(word string) bool {
	if d == nil {
		return false
	}
	w := strings.TrimSpace(strings.ToLower(word))
	if len(w) != WordLen {
		return false
	}
	_, ok := d.set[w]
	return ok
}

// RandomWord returns a uniformly chosen word using crypto/rand.
func (d *Dictionary) RandomWord() (string, error) {
	if err := d.ready(); err != nil {
		return "", err
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(d.list))))
	if err != nil {
		return "", err
	}
	return d.list[nBig.Int64()], nil
}

// WordAt returns the word at index i (mod Len), for deterministic selection.
func (d *Dictionary) WordAt(i int) (string, error) {
	if err := d.ready(); err != nil {
		return "", err
	}
	n := len(d.list)
	i %= n
	if i < 0 {
		i += n
	}
	return d.list[i], nil
}

// Len returns the number of loaded words. A nil Dictionary has length 0.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.list)
}

// Words returns a copy of the words in load order.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.list...)
}

func (d *Dictionary) ready() error {
	if d == nil {
		return ErrDictionaryNotReady
	}
	if len(d.list) == 0 {
		return ErrEmptyDictionary
	}
	return nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
