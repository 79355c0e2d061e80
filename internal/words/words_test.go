package words

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizesAndDeduplicates(t *testing.T) {
	v, err := New([]string{" APPLE ", "angle", "apple", "Angle", "anger"}, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"apple", "angle", "anger"}, v.Words(), "first occurrence wins, order preserved")
	assert.Equal(t, 3, v.Len())
	assert.True(t, v.Contains("APPLE"))
	assert.False(t, v.Contains("grape"))
}

func TestNewRejectsMalformedEntries(t *testing.T) {
	v, err := New([]string{"apple", "too-long-word", "ab1de", "cat", "", "crane"}, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "crane"}, v.Words())
}

func TestNewEmpty(t *testing.T) {
	_, err := New([]string{"cat", ""}, 5)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestReadSkipsCommentsAndBlanks(t *testing.T) {
	in := strings.NewReader("# header\napple\n\nangle\n# trailing\n")
	v, err := Read(in, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "angle"}, v.Words())
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("WORDS_FILE", "")
	v, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultWordLen, v.WordLen())
	assert.Greater(t, v.Len(), 100)
	for _, w := range []string{"apple", "anger", "angle", "angst", "saree", "crane"} {
		assert.True(t, v.Contains(w), "embedded list must contain %q", w)
	}
}

func TestRandomReturnsMember(t *testing.T) {
	v, err := New([]string{"apple", "angle", "anger"}, 5)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		assert.True(t, v.Contains(v.Random()))
	}
}
