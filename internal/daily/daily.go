// internal/daily/daily.go
//
// Daily puzzle selection. Everyone playing on the same UTC day with the
// same salt gets the same secret:
//
//   index = HMAC-SHA256(salt, "YYYY-MM-DD")[:8] mod len(dictionary)
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-engine/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % n.
func WordIndex(date time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// first 8 bytes as uint64 for the modulus
	v := binary.BigEndian.Uint64(sum[:8])
	return int(v % uint64(n))
}

// Picker selects the day's secret from a dictionary. It satisfies
// game.SecretPicker.
type Picker struct {
	Salt string
	Now  func() time.Time // defaults to time.Now
}

// NewPicker returns a Picker using the wall clock.
func NewPicker(salt string) *Picker {
	return &Picker{Salt: salt, Now: time.Now}
}

// Pick returns the word for today.
func (p *Picker) Pick(d *words.Dictionary) (string, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	return d.WordAt(WordIndex(now(), p.Salt, d.Len()))
}
