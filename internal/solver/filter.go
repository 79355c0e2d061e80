// internal/solver/filter.go
//
// Candidate filtering: narrowing the remaining words by an observed
// feedback pattern.
//
// The single correctness property: a word survives iff scoring the guess
// against that word as the answer reproduces the observed pattern exactly.
// Reusing feedback.Score keeps the filter and the scorer from ever
// disagreeing on duplicate-letter cases, which a green/yellow/gray letter
// bookkeeping approach gets wrong.
package solver

import (
	"github.com/robalobadob/wordle-solver/internal/feedback"
)

// Round is one (guess, pattern) entry of an episode's history.
type Round struct {
	Guess   string
	Pattern feedback.Pattern
}

// Narrow returns the subset of candidates consistent with the guess
// producing the given pattern. The result is a fresh slice; candidates is
// never mutated.
//
// An empty result is a valid return value: it means the feedback seen so
// far matches no vocabulary word. Callers decide how to surface that (the
// solver ends the episode as inconsistent).
func Narrow(candidates []string, guess string, p feedback.Pattern) ([]string, error) {
	if len(p) != len(guess) {
		return nil, feedback.ErrBadPattern
	}
	key := p.Key()
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		got, err := feedback.Score(guess, w)
		if err != nil {
			return nil, err
		}
		if got.Key() == key {
			out = append(out, w)
		}
	}
	return out, nil
}
