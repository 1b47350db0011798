package game

import "encoding/json"

// KeyHints records the best known status of each letter a–z across all
// evaluated guesses. Precedence is correct > present > absent > unset, and
// a hint is never weakened by a later guess.
//
// KeyHints is a value type; Update returns a new value.
type KeyHints struct {
	s [26]LetterStatus
}

// Update folds one evaluated guess into the hints.
func (h KeyHints) Update(guess string, statuses []LetterStatus) KeyHints {
	for i := 0; i < len(guess) && i < len(statuses); i++ {
		c := guess[i]
		if c < 'a' || c > 'z' {
			continue
		}
		j := idx(c)
		if statuses[i].rank() > h.s[j].rank() {
			h.s[j] = statuses[i]
		}
	}
	return h
}

// Get returns the hint for letter, or StatusEmpty when nothing is known.
// Upper-case letters are folded.
func (h KeyHints) Get(letter rune) LetterStatus {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if letter < 'a' || letter > 'z' {
		return StatusEmpty
	}
	if s := h.s[letter-'a']; s != "" {
		return s
	}
	return StatusEmpty
}

// Map returns the known hints keyed by lowercase letter. Unset letters are
// omitted.
func (h KeyHints) Map() map[string]LetterStatus {
	m := make(map[string]LetterStatus)
	for i, s := range h.s {
		if s != "" {
			m[string(rune('a'+i))] = s
		}
	}
	return m
}

// Empty reports whether no letter has a hint yet.
func (h KeyHints) Empty() bool { return h == KeyHints{} }

func (h KeyHints) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Map())
}

func (h *KeyHints) UnmarshalJSON(b []byte) error {
	var m map[string]LetterStatus
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*h = KeyHints{}
	for k, v := range m {
		if len(k) == 1 && k[0] >= 'a' && k[0] <= 'z' {
			h.s[k[0]-'a'] = v
		}
	}
	return nil
}
