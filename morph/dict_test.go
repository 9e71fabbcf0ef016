package morph

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lemmas.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDictionary(t *testing.T) {
	path := writeDict(t, "# surface\tlemma\tpos\n"+
		"кошки\tкошка\tNOUN\n"+
		"бежал\tбежать\tVERB\n"+
		"\n"+
		"стол\tстол\n")

	d, err := LoadDictionary(path)
	require.NoError(t, err)
	assert.Equal(t, 3, d.Size())

	lemma, err := d.Lemma("кошки")
	require.NoError(t, err)
	assert.Equal(t, "кошка", lemma)

	pos, err := d.PartOfSpeech("бежал")
	require.NoError(t, err)
	assert.Equal(t, "VERB", pos)

	pos, err = d.PartOfSpeech("стол")
	require.NoError(t, err)
	assert.Equal(t, "", pos)
}

func TestLoadDictionary_Malformed(t *testing.T) {
	path := writeDict(t, "кошки кошка\n") // space, not tab

	_, err := LoadDictionary(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadDictionary)
}

func TestLoadDictionary_MissingFile(t *testing.T) {
	_, err := LoadDictionary(filepath.Join(t.TempDir(), "nope.tsv"))
	require.Error(t, err)

	var morphErr *Error
	require.ErrorAs(t, err, &morphErr)
	assert.Equal(t, "dict", morphErr.Provider)
	assert.Equal(t, "load", morphErr.Op)
}

func TestDictionary_UnknownWordMapsToItself(t *testing.T) {
	d := NewDictionary()
	d.Add("dogs", "dog", "NOUN")

	lemma, err := d.Lemma("Neologism")
	require.NoError(t, err)
	assert.Equal(t, "neologism", lemma)
}

func TestDictionary_FirstEntryWins(t *testing.T) {
	d := NewDictionary()
	d.Add("стекла", "стекло", "NOUN")
	d.Add("стекла", "стечь", "VERB")

	// Ambiguous form: the first candidate must win, deterministically.
	lemma, err := d.Lemma("стекла")
	require.NoError(t, err)
	assert.Equal(t, "стекло", lemma)

	pos, err := d.PartOfSpeech("стекла")
	require.NoError(t, err)
	assert.Equal(t, "NOUN", pos)
}

func TestDictionary_CaseInsensitive(t *testing.T) {
	d := NewDictionary()
	d.Add("Кошки", "Кошка", "NOUN")

	lemma, err := d.Lemma("КОШКИ")
	require.NoError(t, err)
	assert.Equal(t, "кошка", lemma)
}

func TestRegistry(t *testing.T) {
	assert.True(t, IsRegistered("dict"), "dict provider should be registered")
	assert.Contains(t, Available(), "dict")

	_, err := New("nonexistent", "")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestRegistry_NewDict(t *testing.T) {
	path := writeDict(t, "кошки\tкошка\tNOUN\n")

	p, err := New("dict", path)
	require.NoError(t, err)

	lemma, err := p.Lemma("кошки")
	require.NoError(t, err)
	assert.Equal(t, "кошка", lemma)
}

func TestRegistry_RegisterAndUnregister(t *testing.T) {
	fake := NewDictionary()
	Register("fake", func(string) (Provider, error) { return fake, nil })
	defer Unregister("fake")

	assert.True(t, IsRegistered("fake"))

	p, err := New("fake", "")
	require.NoError(t, err)
	assert.Same(t, Provider(fake), p)
}
