package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FiltersAndNormalizes(t *testing.T) {
	raw := "Crane\n  slate \r\n\nabc\ntoolong\nfl4me\n# comment\nCRANE\nallot"
	d := Load(raw)

	assert.Equal(t, []string{"crane", "slate", "allot"}, d.Words())
	assert.Equal(t, 3, d.Len())
}

func TestContains(t *testing.T) {
	d := Load("crane\nslate")

	assert.True(t, d.Contains("crane"))
	assert.True(t, d.Contains("CrAnE"))
	assert.True(t, d.Contains(" slate "))
	assert.False(t, d.Contains("cranes"))
	assert.False(t, d.Contains("cran"))
	assert.False(t, d.Contains("brick"))
}

func TestContains_NilDictionary(t *testing.T) {
	var d *Dictionary
	assert.False(t, d.Contains("crane"))
}

func TestRandomWord_Empty(t *testing.T) {
	d := Load("abc\n\n12345\n")
	_, err := d.RandomWord()
	assert.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = d.WordAt(0)
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestRandomWord_NotReady(t *testing.T) {
	var d *Dictionary
	_, err := d.RandomWord()
	assert.ErrorIs(t, err, ErrDictionaryNotReady)
	assert.Equal(t, 0, d.Len())
	assert.Nil(t, d.Words())
}

func TestRandomWord_ReturnsMember(t *testing.T) {
	d := Load("crane\nslate\nallot")
	for i := 0; i < 50; i++ {
		w, err := d.RandomWord()
		require.NoError(t, err)
		assert.True(t, d.Contains(w), "random word %q not in dictionary", w)
	}
}

func TestRandomWord_SingleEntry(t *testing.T) {
	d := Load("only1\nonlya")
	w, err := d.RandomWord()
	require.NoError(t, err)
	assert.Equal(t, "onlya", w)
}

func TestWordAt_Wraps(t *testing.T) {
	d := Load("crane\nslate\nallot")

	w, err := d.WordAt(4)
	require.NoError(t, err)
	assert.Equal(t, "slate", w)

	w, err = d.WordAt(-1)
	require.NoError(t, err)
	assert.Equal(t, "allot", w)
}

func TestWords_ReturnsCopy(t *testing.T) {
	d := Load("crane")
	list := d.Words()
	list[0] = "xxxxx"
	assert.True(t, d.Contains("crane"))
	assert.Equal(t, []string{"crane"}, d.Words())
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))

	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpen_Embedded(t *testing.T) {
	d, err := Open("")
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 100)
	assert.True(t, d.Contains("crane"))
}

func TestLoadAsync_Delivers(t *testing.T) {
	ch := LoadAsync(context.Background(), func(context.Context) (*Dictionary, error) {
		return Load("crane"), nil
	})
	res, ok := <-ch
	require.True(t, ok)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, res.Dict.Len())

	_, ok = <-ch
	assert.False(t, ok, "channel should be closed after one value")
}

func TestLoadAsync_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)

	ch := LoadAsync(ctx, func(context.Context) (*Dictionary, error) {
		<-release
		return Load("crane"), nil
	})
	cancel()

	select {
	case res := <-ch:
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.Nil(t, res.Dict)
	case <-time.After(2 * time.Second):
		t.Fatal("LoadAsync did not honor cancellation")
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("crane"))
	assert.False(t, Valid("Crane"))
	assert.False(t, Valid("cran"))
	assert.False(t, Valid("cranes"))
	assert.False(t, Valid("cr4ne"))
}
