// assets/embed.go
//
// Embedded default dictionary. Used whenever no WORDS_FILE is configured,
// so the server and terminal player always have something to play with.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed words.txt
var FS embed.FS

// WordsFile is the name of the embedded word list inside FS.
const WordsFile = "words.txt"

// WordList returns the raw newline-separated default word list.
func WordList() (string, error) {
	b, err := fs.ReadFile(FS, WordsFile)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
