package normalize

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordcover/morph"
)

// failingProvider simulates an unavailable morphology engine.
type failingProvider struct{}

func (failingProvider) Lemma(string) (string, error) {
	return "", errors.New("engine unavailable")
}

func (failingProvider) PartOfSpeech(string) (string, error) {
	return "", errors.New("engine unavailable")
}

func testDict() *morph.Dictionary {
	d := morph.NewDictionary()
	d.Add("кошки", "кошка", "NOUN")
	d.Add("бежал", "бежать", "VERB")
	return d
}

func TestNormalize_LowercaseOnly(t *testing.T) {
	n := New(nil, nil)

	key, ok, err := n.Normalize("Кошки")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "кошки", key)
}

func TestNormalize_Lemmatizes(t *testing.T) {
	n := New(testDict(), nil)

	key, ok, err := n.Normalize("Кошки")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "кошка", key)
}

func TestNormalize_StopwordDropped(t *testing.T) {
	n := New(nil, NewSet("и", "в"))

	key, ok, err := n.Normalize("И")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", key)
}

func TestNormalize_StopwordAppliesToLemma(t *testing.T) {
	// The surface form is not a stopword, but its lemma is.
	n := New(testDict(), NewSet("кошка"))

	_, ok, err := n.Normalize("кошки")
	require.NoError(t, err)
	assert.False(t, ok, "lemmatized stopword should be dropped")
}

func TestNormalize_ProviderFailureAborts(t *testing.T) {
	n := New(failingProvider{}, nil)

	_, _, err := n.Normalize("кошки")
	require.Error(t, err, "provider failure must abort, not degrade to surface forms")
	assert.Contains(t, err.Error(), "кошки")
}

func TestAll(t *testing.T) {
	n := New(testDict(), NewSet("и"))

	keys, err := n.All([]string{"Кошки", "и", "бежал", "мимо"})
	require.NoError(t, err)
	assert.Equal(t, []string{"кошка", "бежать", "мимо"}, keys)
}

func TestAll_PropagatesProviderError(t *testing.T) {
	n := New(failingProvider{}, nil)

	_, err := n.All([]string{"один", "два"})
	require.Error(t, err)
}

func TestSet(t *testing.T) {
	s := NewSet("The", "And")

	assert.True(t, s.Contains("the"))
	assert.True(t, s.Contains("and"))
	assert.False(t, s.Contains("cat"))

	s.Add("Or")
	assert.True(t, s.Contains("or"))
}

func TestLoadSet_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.txt")
	require.NoError(t, os.WriteFile(path, []byte("# common words\nи\nв\n\nНе\n"), 0o644))

	s, err := LoadSet(path)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	assert.True(t, s.Contains("не"))
	assert.False(t, s.Contains("# common words"))
}

func TestLoadSet_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- и\n- в\n- Не\n"), 0o644))

	s, err := LoadSet(path)
	require.NoError(t, err)
	assert.Len(t, s, 3)
	assert.True(t, s.Contains("и"))
	assert.True(t, s.Contains("не"))
}

func TestLoadSet_YAMLMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stop.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: a: list:\n"), 0o644))

	_, err := LoadSet(path)
	assert.Error(t, err)
}

func TestLoadSet_MissingFile(t *testing.T) {
	_, err := LoadSet(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
