package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle-solver/internal/words"
)

func testVocab(t *testing.T) *words.Vocabulary {
	t.Helper()
	v, err := words.New([]string{
		"apple", "anger", "angle", "angst", "crane", "speed", "erase", "olden",
	}, 5)
	require.NoError(t, err)
	return v
}

func TestNewWithFixedSecret(t *testing.T) {
	v := testVocab(t)
	g, err := New(v, " ANGLE ")
	require.NoError(t, err)
	assert.Equal(t, "angle", g.Secret)
	assert.Equal(t, 6, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.NotEmpty(t, g.ID)
}

func TestNewRejectsUnknownSecret(t *testing.T) {
	v := testVocab(t)
	_, err := New(v, "zzzzz")
	assert.ErrorIs(t, err, ErrBadSecret)
}

func TestNewRandomSecretIsFromVocabulary(t *testing.T) {
	v := testVocab(t)
	for i := 0; i < 10; i++ {
		g, err := New(v, "")
		require.NoError(t, err)
		assert.True(t, v.Contains(g.Secret))
	}
}

func TestApplyGuessValidation(t *testing.T) {
	v := testVocab(t)
	g, err := New(v, "angle")
	require.NoError(t, err)

	_, _, err = g.ApplyGuess(v, "cat")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, _, err = g.ApplyGuess(v, "ab1de")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	_, _, err = g.ApplyGuess(v, "zzzzz")
	assert.ErrorIs(t, err, ErrNotInWordList)
	assert.Empty(t, g.History, "rejected guesses are not recorded")
}

func TestApplyGuessWin(t *testing.T) {
	v := testVocab(t)
	g, err := New(v, "angle")
	require.NoError(t, err)

	p, state, err := g.ApplyGuess(v, "APPLE")
	require.NoError(t, err)
	assert.Equal(t, "gxxgg", p.String())
	assert.Equal(t, "playing", state)

	p, state, err = g.ApplyGuess(v, "angle")
	require.NoError(t, err)
	assert.True(t, p.AllHit())
	assert.Equal(t, "won", state)
	assert.True(t, g.Finished)
	assert.True(t, g.Won)

	_, _, err = g.ApplyGuess(v, "crane")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuessLossAfterMaxRows(t *testing.T) {
	v := testVocab(t)
	g, err := New(v, "angle")
	require.NoError(t, err)

	wrong := []string{"apple", "anger", "angst", "crane", "speed", "erase"}
	var state string
	for _, w := range wrong {
		_, state, err = g.ApplyGuess(v, w)
		require.NoError(t, err)
	}
	assert.Equal(t, "lost", state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
	assert.Len(t, g.History, 6)
}

func TestNewDailyIsDeterministic(t *testing.T) {
	v := testVocab(t)
	day := time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

	a := NewDaily(v, "salt", day)
	b := NewDaily(v, "salt", day.Add(3*time.Hour))
	assert.Equal(t, a.Secret, b.Secret, "same date and salt pick the same word")
	assert.True(t, v.Contains(a.Secret))
}
