// internal/game/engine.go
//
// Player-mode game engine for a single session: the engine holds a hidden
// secret, accepts guesses from an external actor, and answers each with the
// feedback pattern plus a won/continue signal.
//
// Responsibilities:
//   - Create new games with deterministic dimensions (6 rows, vocabulary
//     word length).
//   - Validate guesses (length, alphabetic, in the vocabulary).
//   - Score guesses through the feedback engine.
//   - Track state transitions: playing → won/lost.
//
// The engine never filters candidates; that is the solver's job.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/robalobadob/wordle-solver/internal/daily"
	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/words"
)

const defaultRows = 6

var (
	ErrFinished      = errors.New("game: already finished")
	ErrInvalidGuess  = errors.New("game: invalid guess")
	ErrNotInWordList = errors.New("game: not in word list")
	ErrBadSecret     = errors.New("game: secret not in vocabulary")
)

// New constructs a new game instance over the given vocabulary.
// If withSecret is empty, a random vocabulary word is chosen.
func New(vocab *words.Vocabulary, withSecret string) (*Game, error) {
	secret := strings.ToLower(strings.TrimSpace(withSecret))
	if secret == "" {
		secret = vocab.Random()
	} else if !vocab.Contains(secret) {
		return nil, ErrBadSecret
	}
	return &Game{
		ID:     randomID(),
		Secret: secret,
		Rows:   defaultRows,
		Cols:   vocab.WordLen(),
	}, nil
}

// NewDaily constructs the deterministic daily game for t: every process
// with the same salt picks the same secret for the same date.
func NewDaily(vocab *words.Vocabulary, salt string, t time.Time) *Game {
	idx := daily.WordIndex(t, salt, vocab.Len())
	return &Game{
		ID:     randomID(),
		Secret: vocab.At(idx),
		Rows:   defaultRows,
		Cols:   vocab.WordLen(),
	}
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns the feedback pattern, the new state string
// ("playing"/"won"/"lost"), or an error.
//
// Validation rules:
//   - Game must not be finished.
//   - Guess must be exactly g.Cols letters, alphabetic a–z, and present in
//     the vocabulary.
//
// State transitions:
//   - All-hit pattern → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(vocab *words.Vocabulary, guess string) (feedback.Pattern, string, error) {
	if g.Finished {
		return nil, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, g.State(), ErrInvalidGuess
	}
	if !vocab.Contains(guess) {
		return nil, g.State(), ErrNotInWordList
	}

	p, err := feedback.Score(guess, g.Secret)
	if err != nil {
		return nil, g.State(), err
	}
	g.History = append(g.History, GuessRecord{Guess: guess, Pattern: p})

	if p.AllHit() {
		g.Finished, g.Won = true, true
	} else if len(g.History) >= g.Rows {
		g.Finished = true
	}
	return p, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
