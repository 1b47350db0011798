package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	C = StatusCorrect
	P = StatusPresent
	A = StatusAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		guess  string
		want   []LetterStatus
	}{
		{"exact match", "crane", "crane", []LetterStatus{C, C, C, C, C}},
		{"no overlap", "crane", "pious", []LetterStatus{A, A, A, A, A}},
		{"repeated l against double l", "allot", "llama", []LetterStatus{P, C, P, A, A}},
		{"correct consumes before present", "those", "geese", []LetterStatus{A, A, A, C, C}},
		{"single e already matched", "crane", "eerie", []LetterStatus{A, A, P, A, C}},
		{"left-most repeat wins present", "plant", "array", []LetterStatus{P, A, A, A, A}},
		{"mixed duplicates", "abbey", "kebab", []LetterStatus{A, P, C, P, P}},
		{"anagram with one fixed letter", "stale", "least", []LetterStatus{P, P, C, P, P}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.guess, tt.secret))
		})
	}
}

// Every pair over a three-letter alphabet keeps correct+present per letter
// within the secret's count of that letter.
func TestEvaluate_NeverOvercountsLetters(t *testing.T) {
	all := wordsOver("abc", WordLen)
	for _, secret := range all {
		for _, guess := range all {
			got := Evaluate(guess, secret)
			for _, l := range "abc" {
				marked := 0
				for i := range got {
					if rune(guess[i]) == l && got[i] != StatusAbsent {
						marked++
					}
				}
				if limit := strings.Count(secret, string(l)); marked > limit {
					t.Fatalf("Evaluate(%q, %q) marks %c %d times, secret has %d", guess, secret, l, marked, limit)
				}
			}
			if guess == secret && !allCorrect(got) {
				t.Fatalf("Evaluate(%q, %q) = %v, want all correct", guess, secret, got)
			}
		}
	}
}

func wordsOver(alphabet string, n int) []string {
	if n == 0 {
		return []string{""}
	}
	var out []string
	for _, tail := range wordsOver(alphabet, n-1) {
		for _, c := range alphabet {
			out = append(out, string(c)+tail)
		}
	}
	return out
}

func TestKeyHints_Precedence(t *testing.T) {
	var h KeyHints
	assert.True(t, h.Empty())
	assert.Equal(t, StatusEmpty, h.Get('e'))

	h = h.Update("slate", []LetterStatus{A, A, P, A, C})
	assert.Equal(t, StatusCorrect, h.Get('e'))
	assert.Equal(t, StatusPresent, h.Get('a'))
	assert.Equal(t, StatusAbsent, h.Get('s'))

	// e absent elsewhere, a now correct, s present.
	h = h.Update("easel", []LetterStatus{A, C, P, A, A})
	assert.Equal(t, StatusCorrect, h.Get('e'), "correct must never be downgraded")
	assert.Equal(t, StatusCorrect, h.Get('a'), "present upgrades to correct")
	assert.Equal(t, StatusPresent, h.Get('s'), "absent upgrades to present")
	assert.Equal(t, StatusAbsent, h.Get('l'))

	h = h.Update("asses", []LetterStatus{A, A, A, A, A})
	assert.Equal(t, StatusCorrect, h.Get('a'))
	assert.Equal(t, StatusPresent, h.Get('S'), "lookup folds case")
}

func TestKeyHints_ValueSemantics(t *testing.T) {
	var h KeyHints
	next := h.Update("crane", []LetterStatus{C, A, A, A, A})
	assert.True(t, h.Empty(), "Update must not mutate the receiver")
	assert.Equal(t, map[string]LetterStatus{
		"c": StatusCorrect, "r": StatusAbsent, "a": StatusAbsent, "n": StatusAbsent, "e": StatusAbsent,
	}, next.Map())
}

func TestKeyHints_JSON(t *testing.T) {
	h := KeyHints{}.Update("crane", []LetterStatus{C, P, A, A, A})
	b, err := h.MarshalJSON()
	assert.NoError(t, err)

	var back KeyHints
	assert.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, h, back)
}
