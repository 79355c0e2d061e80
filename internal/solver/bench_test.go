package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkSolvesSmallVocabulary(t *testing.T) {
	vocab := testVocab(t, "apple", "anger", "angle", "angst", "crane", "speed", "erase")

	report, err := Benchmark(context.Background(), vocab, "entropy",
		Options{}, BenchOptions{Workers: 3})
	require.NoError(t, err)

	assert.Equal(t, "entropy", report.Strategy)
	assert.Equal(t, vocab.Len(), report.VocabSize)
	assert.Len(t, report.Episodes, vocab.Len())
	assert.Zero(t, report.NotWon)
	assert.Greater(t, report.Average, 0.0)

	// Episodes are indexed by vocabulary order.
	total := 0
	for i, ep := range report.Episodes {
		assert.Equal(t, vocab.At(i), ep.Secret)
		assert.Equal(t, StatusWon, ep.Status)
	}
	for _, n := range report.Histogram {
		total += n
	}
	assert.Equal(t, vocab.Len(), total, "histogram covers every episode")
}

func TestBenchmarkIsDeterministic(t *testing.T) {
	vocab := testVocab(t, "apple", "anger", "angle", "angst", "crane", "speed", "erase")

	run := func() *BenchmarkReport {
		r, err := Benchmark(context.Background(), vocab, "minimax",
			Options{}, BenchOptions{Workers: 4})
		require.NoError(t, err)
		return r
	}
	a, b := run(), run()
	assert.Equal(t, a.Episodes, b.Episodes, "parallel runs must aggregate identically")
	assert.Equal(t, a.Average, b.Average)
	assert.Equal(t, a.Histogram, b.Histogram)
	assert.Equal(t, a.FirstGuess, b.FirstGuess)
}

func TestBenchmarkSeededRandomIsReproducible(t *testing.T) {
	vocab := testVocab(t, "apple", "anger", "angle", "angst", "crane", "speed", "erase")

	run := func() *BenchmarkReport {
		r, err := Benchmark(context.Background(), vocab, "random",
			Options{Seed: 99}, BenchOptions{Workers: 4})
		require.NoError(t, err)
		return r
	}
	assert.Equal(t, run().Episodes, run().Episodes)
}

func TestBenchmarkSharesOpeningGuess(t *testing.T) {
	vocab := testVocab(t, "apple", "anger", "angle", "angst")

	report, err := Benchmark(context.Background(), vocab, "entropy",
		Options{}, BenchOptions{})
	require.NoError(t, err)

	require.NotEmpty(t, report.FirstGuess)
	// Every episode that needed more than one round opened with it; the
	// one-round episode is the secret equal to the opener itself.
	for _, ep := range report.Episodes {
		if ep.Secret != report.FirstGuess {
			assert.GreaterOrEqual(t, ep.Rounds, 2)
		} else {
			assert.Equal(t, 1, ep.Rounds)
		}
	}
}

func TestBenchmarkRoundCapRecordsFailures(t *testing.T) {
	vocab := testVocab(t, "apple", "anger", "angle", "angst", "crane", "speed", "erase")

	report, err := Benchmark(context.Background(), vocab, "random",
		Options{Seed: 3}, BenchOptions{Workers: 2, MaxRounds: 1})
	require.NoError(t, err)

	// With a one-round cap only the episode whose secret matches the
	// shared opener can win; everything else is exhausted, and the run
	// still completes.
	for _, ep := range report.Episodes {
		if ep.Secret == report.FirstGuess {
			assert.Equal(t, StatusWon, ep.Status)
		} else {
			assert.Equal(t, StatusExhausted, ep.Status)
		}
	}
	assert.Equal(t, vocab.Len()-1, report.NotWon)
}

func TestBenchmarkUnknownStrategy(t *testing.T) {
	vocab := testVocab(t, "apple", "anger")
	_, err := Benchmark(context.Background(), vocab, "psychic", Options{}, BenchOptions{})
	assert.Error(t, err)
}
