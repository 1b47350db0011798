// internal/words/source.go
//
// Where dictionaries come from.
//
//   1. If a path is configured (WORDS_FILE / --words), read that file.
//   2. Otherwise fall back to the embedded default list in assets.
//
// LoadAsync wraps any loader for callers that must stay responsive while
// the list is read; they hold a nil *Dictionary until the result arrives.
package words

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-engine/assets"
)

// LoaderFunc produces a Dictionary, typically by reading a file.
type LoaderFunc func(ctx context.Context) (*Dictionary, error)

// Loaded is delivered once by LoadAsync.
type Loaded struct {
	Dict *Dictionary
	Err  error
}

// Open loads the dictionary at path, or the embedded default if path is empty.
func Open(path string) (*Dictionary, error) {
	if path == "" {
		return Embedded()
	}
	return LoadFile(path)
}

// LoadFile reads a newline-separated word list from disk.
func LoadFile(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	d := Load(string(b))
	log.Debug().Str("path", path).Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// Embedded returns the dictionary built from the embedded default list.
func Embedded() (*Dictionary, error) {
	raw, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	d := Load(raw)
	log.Debug().Str("source", "embedded").Int("words", d.Len()).Msg("dictionary loaded")
	return d, nil
}

// OpenFunc adapts Open to a LoaderFunc.
func OpenFunc(path string) LoaderFunc {
	return func(context.Context) (*Dictionary, error) { return Open(path) }
}

// LoadAsync runs fn in its own goroutine. The returned channel receives
// exactly one value and is then closed. If ctx ends first, the value
// carries ctx.Err().
func LoadAsync(ctx context.Context, fn LoaderFunc) <-chan Loaded {
	out := make(chan Loaded, 1)
	go func() {
		defer close(out)
		done := make(chan Loaded, 1)
		go func() {
			d, err := fn(ctx)
			done <- Loaded{Dict: d, Err: err}
		}()
		select {
		case res := <-done:
			out <- res
		case <-ctx.Done():
			out <- Loaded{Err: ctx.Err()}
		}
	}()
	return out
}
