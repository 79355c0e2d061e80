// internal/solver/solver.go
//
// Episode state machine for solving one game.
//
// Lifecycle:
//   playing → won | exhausted | inconsistent
//
// Two ways to drive it:
//   - Step API (NextGuess / ApplyFeedback) for interactive solving, where
//     the feedback comes from a human relaying an external game.
//   - Run(secret) for self-play and benchmarking, where the feedback comes
//     from the feedback engine against a known secret.
//
// The solver owns its candidate set and history; a fresh Solver is created
// per episode, so parallel episodes share nothing mutable beyond the
// read-only vocabulary.
package solver

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Status is an episode's coarse state.
type Status string

const (
	StatusPlaying      Status = "playing"
	StatusWon          Status = "won"
	StatusExhausted    Status = "exhausted"    // round cap reached
	StatusInconsistent Status = "inconsistent" // no candidate matches the feedback
)

var (
	// ErrFinished is returned when stepping a terminal episode.
	ErrFinished = errors.New("solver: episode already finished")

	// ErrNoPendingGuess is returned when feedback arrives before a guess.
	ErrNoPendingGuess = errors.New("solver: no guess awaiting feedback")

	// ErrGuessPending is returned when a new guess is requested while the
	// previous one still awaits feedback.
	ErrGuessPending = errors.New("solver: previous guess still awaiting feedback")
)

// Config tunes a Solver.
type Config struct {
	// FirstGuess, when set, is played as the opening guess instead of
	// asking the strategy. The opener is independent of any feedback, so
	// benchmark runs precompute it once per strategy.
	FirstGuess string

	// MaxRounds caps the number of guesses; 0 means uncapped.
	MaxRounds int
}

// Solver runs one episode.
type Solver struct {
	vocab      *words.Vocabulary
	strategy   Strategy
	cfg        Config
	candidates []string
	history    []Round
	pending    string // guess awaiting feedback, "" if none
	status     Status
}

// Outcome is the terminal report of one episode.
type Outcome struct {
	Secret  string  // known secret in self-play mode, "" otherwise
	Status  Status  // won / exhausted / inconsistent
	Rounds  int     // guesses played
	History []Round // full (guess, pattern) sequence
}

// Solved reports whether the episode ended in a win.
func (o Outcome) Solved() bool { return o.Status == StatusWon }

// New creates a solver for one episode over the full vocabulary.
func New(vocab *words.Vocabulary, strategy Strategy, cfg Config) *Solver {
	cands := make([]string, vocab.Len())
	copy(cands, vocab.Words())
	return &Solver{
		vocab:      vocab,
		strategy:   strategy,
		cfg:        cfg,
		candidates: cands,
		status:     StatusPlaying,
	}
}

// Status returns the episode state.
func (s *Solver) Status() Status { return s.status }

// Rounds returns the number of guesses played so far.
func (s *Solver) Rounds() int { return len(s.history) }

// History returns the (guess, pattern) sequence so far. Read-only.
func (s *Solver) History() []Round { return s.history }

// Candidates returns the words still consistent with all feedback. Read-only.
func (s *Solver) Candidates() []string { return s.candidates }

// NextGuess produces the next guess and appends it to the history.
// The episode then awaits feedback for it.
func (s *Solver) NextGuess() (string, error) {
	if s.status != StatusPlaying {
		return "", ErrFinished
	}
	if s.pending != "" {
		return "", ErrGuessPending
	}

	var guess string
	if len(s.history) == 0 && s.cfg.FirstGuess != "" {
		guess = s.cfg.FirstGuess
	} else {
		g, err := s.strategy.Select(s.candidates, s.vocab, s.history)
		if err != nil {
			if errors.Is(err, ErrNoCandidates) {
				s.status = StatusInconsistent
			}
			return "", err
		}
		guess = g
	}
	if len(guess) != s.vocab.WordLen() {
		return "", fmt.Errorf("solver: guess %q has wrong length: %w", guess, feedback.ErrLengthMismatch)
	}

	s.pending = guess
	s.history = append(s.history, Round{Guess: guess})
	return guess, nil
}

// ApplyFeedback consumes the pattern for the pending guess and advances the
// state machine: win on all-hit, otherwise narrow the candidates; an empty
// result ends the episode as inconsistent, and reaching the round cap ends
// it as exhausted.
func (s *Solver) ApplyFeedback(p feedback.Pattern) error {
	if s.status != StatusPlaying {
		return ErrFinished
	}
	if s.pending == "" {
		return ErrNoPendingGuess
	}
	if len(p) != s.vocab.WordLen() {
		return feedback.ErrBadPattern
	}

	guess := s.pending
	s.pending = ""
	s.history[len(s.history)-1].Pattern = p

	if p.AllHit() {
		s.status = StatusWon
		return nil
	}

	narrowed, err := Narrow(s.candidates, guess, p)
	if err != nil {
		return err
	}
	s.candidates = narrowed

	if len(s.candidates) == 0 {
		s.status = StatusInconsistent
		return nil
	}
	if s.cfg.MaxRounds > 0 && len(s.history) >= s.cfg.MaxRounds {
		s.status = StatusExhausted
	}
	return nil
}

// Outcome snapshots the episode result.
func (s *Solver) Outcome(secret string) Outcome {
	return Outcome{
		Secret:  secret,
		Status:  s.status,
		Rounds:  len(s.history),
		History: s.history,
	}
}

// Run self-plays one episode against a known secret, scoring each guess
// with the feedback engine. Episode failures (inconsistent feedback,
// round cap) are reported in the Outcome, not as errors; the error return
// is for precondition violations only.
func Run(vocab *words.Vocabulary, strategy Strategy, cfg Config, secret string) (Outcome, error) {
	if len(secret) != vocab.WordLen() {
		return Outcome{}, feedback.ErrLengthMismatch
	}
	s := New(vocab, strategy, cfg)
	for s.status == StatusPlaying {
		guess, err := s.NextGuess()
		if err != nil {
			if errors.Is(err, ErrNoCandidates) {
				break // terminal status already set
			}
			return Outcome{}, err
		}
		p, err := feedback.Score(guess, secret)
		if err != nil {
			return Outcome{}, err
		}
		if err := s.ApplyFeedback(p); err != nil {
			return Outcome{}, err
		}
	}
	return s.Outcome(secret), nil
}
