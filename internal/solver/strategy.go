// internal/solver/strategy.go
//
// Guess-selection strategies.
//
// A Strategy maps (candidates, vocabulary, history) to the next guess. All
// variants share two shortcuts: a single remaining candidate is returned
// immediately, and an empty candidate set is an error (the feedback seen so
// far matches no vocabulary word).
//
// Variants:
//   - minimax:   minimize the largest feedback partition a guess can leave.
//   - entropy:   maximize the Shannon entropy of the partition distribution.
//   - frequency: positional letter-frequency prior over the candidates;
//                cheap, ignores partition structure.
//   - random:    seeded uniform pick from the candidates.
//
// Tie-break for scored strategies: prefer a guess that is itself a
// remaining candidate (it can win this turn), then the lexicographically
// smaller word. Deterministic by construction, so benchmark results are
// reproducible.
package solver

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Pool selects where scored strategies draw their guesses from.
type Pool string

const (
	// PoolCandidates restricts guesses to the remaining candidates.
	// Every guess is then a possible answer.
	PoolCandidates Pool = "candidates"

	// PoolVocabulary allows any vocabulary word as a probe, which can
	// split the candidates harder at the cost of never winning early.
	PoolVocabulary Pool = "vocabulary"
)

// ErrNoCandidates is returned when the candidate set is empty: the feedback
// received is inconsistent with every vocabulary word.
var ErrNoCandidates = errors.New("solver: no candidates remain")

// Strategy chooses the next guess for an episode.
type Strategy interface {
	// Name is the stable identifier used in configuration and reports.
	Name() string

	// Select returns the next guess given the remaining candidates, the
	// full vocabulary, and the episode history so far.
	Select(candidates []string, vocab *words.Vocabulary, history []Round) (string, error)
}

// Options configures strategy construction.
type Options struct {
	Pool Pool  // guess pool for minimax/entropy; default PoolCandidates
	Seed int64 // seed for the random strategy
}

// StrategyNames lists the registered strategies in report order.
var StrategyNames = []string{"minimax", "entropy", "frequency", "random"}

// ForName constructs a strategy by name.
func ForName(name string, opts Options) (Strategy, error) {
	pool := opts.Pool
	if pool == "" {
		pool = PoolCandidates
	}
	if pool != PoolCandidates && pool != PoolVocabulary {
		return nil, fmt.Errorf("solver: unknown pool %q", pool)
	}
	switch name {
	case "minimax":
		return &minimaxStrategy{pool: pool}, nil
	case "entropy":
		return &entropyStrategy{pool: pool}, nil
	case "frequency":
		return frequencyStrategy{}, nil
	case "random":
		return &randomStrategy{rng: rand.New(rand.NewSource(opts.Seed))}, nil
	default:
		return nil, fmt.Errorf("solver: unknown strategy %q", name)
	}
}

// ---------------------------- shared helpers --------------------------------

// guessPool resolves the slice of words a scored strategy considers.
func guessPool(pool Pool, candidates []string, vocab *words.Vocabulary) []string {
	if pool == PoolVocabulary && vocab != nil {
		return vocab.Words()
	}
	return candidates
}

// partitionSizes groups candidates by the feedback pattern guess would
// produce against each of them and returns the partition sizes keyed by
// the pattern's base-3 key.
func partitionSizes(guess string, candidates []string) map[int]int {
	sizes := make(map[int]int)
	for _, w := range candidates {
		p, err := feedback.Score(guess, w)
		if err != nil {
			continue // equal lengths are a vocabulary invariant
		}
		sizes[p.Key()]++
	}
	return sizes
}

// better reports whether (guess, inCand) beats the current best under the
// shared tie-break: candidate membership first, then lexicographic order.
func better(guess string, inCand bool, best string, bestInCand bool) bool {
	if best == "" {
		return true
	}
	if inCand != bestInCand {
		return inCand
	}
	return guess < best
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// ------------------------------- minimax ------------------------------------

type minimaxStrategy struct {
	pool Pool
}

func (s *minimaxStrategy) Name() string { return "minimax" }

// Select picks the guess whose worst-case remaining partition is smallest.
func (s *minimaxStrategy) Select(candidates []string, vocab *words.Vocabulary, history []Round) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	candSet := toSet(candidates)
	best, bestWorst, bestInCand := "", math.MaxInt, false

	for _, g := range guessPool(s.pool, candidates, vocab) {
		worst := 0
		for _, size := range partitionSizes(g, candidates) {
			if size > worst {
				worst = size
			}
		}
		_, inCand := candSet[g]
		if worst < bestWorst || (worst == bestWorst && better(g, inCand, best, bestInCand)) {
			best, bestWorst, bestInCand = g, worst, inCand
		}
	}
	return best, nil
}

// ------------------------------- entropy ------------------------------------

type entropyStrategy struct {
	pool Pool
}

func (s *entropyStrategy) Name() string { return "entropy" }

// Select picks the guess maximizing the expected information of its
// feedback: H = -Σ p·log2(p) over the partition-size distribution.
func (s *entropyStrategy) Select(candidates []string, vocab *words.Vocabulary, history []Round) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	candSet := toSet(candidates)
	n := float64(len(candidates))
	best, bestH, bestInCand := "", -1.0, false

	for _, g := range guessPool(s.pool, candidates, vocab) {
		h := 0.0
		for _, size := range partitionSizes(g, candidates) {
			p := float64(size) / n
			h -= p * math.Log2(p)
		}
		_, inCand := candSet[g]
		if h > bestH || (h == bestH && better(g, inCand, best, bestInCand)) {
			best, bestH, bestInCand = g, h, inCand
		}
	}
	return best, nil
}

// ------------------------------ frequency -----------------------------------

type frequencyStrategy struct{}

func (frequencyStrategy) Name() string { return "frequency" }

// Select scores each candidate by the positional letter frequencies across
// the remaining candidates and picks the highest scorer. No partitioning,
// so it is linear in the candidate count.
func (frequencyStrategy) Select(candidates []string, vocab *words.Vocabulary, history []Round) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	wordLen := len(candidates[0])
	counts := make([][26]int, wordLen)
	for _, w := range candidates {
		for i := 0; i < wordLen; i++ {
			counts[i][w[i]-'a']++
		}
	}

	best, bestScore := "", -1
	for _, w := range candidates {
		score := 0
		for i := 0; i < wordLen; i++ {
			score += counts[i][w[i]-'a']
		}
		if score > bestScore || (score == bestScore && w < best) {
			best, bestScore = w, score
		}
	}
	return best, nil
}

// ------------------------------- random --------------------------------------

type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) Name() string { return "random" }

// Select picks a uniformly random candidate. The generator is seeded at
// construction, so a fixed seed reproduces a run exactly.
func (s *randomStrategy) Select(candidates []string, vocab *words.Vocabulary, history []Round) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}
	return candidates[s.rng.Intn(len(candidates))], nil
}
