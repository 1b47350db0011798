// internal/game/engine.go
//
// Guess evaluation for the Wordle engine.
// Responsibilities:
//   - Score a guess against the secret using the two-pass algorithm.
//   - Small letter helpers shared by the session.
//
// Notes:
//   - Inputs are assumed to be validated (WordLen lowercase a–z). Passing
//     anything else is a caller bug; Evaluate does not check.
package game

// Evaluate scores guess against secret, one status per position.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count the secret letters that were not matched exactly.
//
// Pass 2 (left to right):
//   - For each remaining guess letter: if an unmatched occurrence is left,
//     mark present and consume it; otherwise mark absent.
//
// For any letter L, correct+present never exceeds the count of L in secret,
// and when the guess repeats L more often than secret has spare copies,
// the left-most positions win.
func Evaluate(guess, secret string) []LetterStatus {
	n := len(guess)
	res := make([]LetterStatus, n)

	// Unmatched secret letters, a–z.
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = StatusCorrect
		} else {
			counts[idx(secret[i])]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			res[i] = StatusPresent
			counts[j]--
		} else {
			res[i] = StatusAbsent
		}
	}
	return res
}

// idx maps a lowercase ASCII letter to 0..25.
func idx(b byte) int { return int(b - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// allCorrect returns true if every status is correct.
func allCorrect(s []LetterStatus) bool {
	for _, x := range s {
		if x != StatusCorrect {
			return false
		}
	}
	return true
}
