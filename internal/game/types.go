// internal/game/types.go
//
// Core type definitions for the player-mode game engine.
// Defines:
//   - GuessRecord: a played guess with its feedback pattern (display only).
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/robalobadob/wordle-solver/internal/feedback"

// GuessRecord pairs a played guess with the pattern it earned.
// Kept for display purposes; the game never filters candidates.
type GuessRecord struct {
	Guess   string           `json:"guess"`
	Pattern feedback.Pattern `json:"pattern"`
}

// Game holds the state of a single game session.
type Game struct {
	ID       string        // Unique game identifier (random hex string).
	Secret   string        // The hidden answer word (always lowercase).
	Rows     int           // Maximum number of guesses allowed (typically 6).
	Cols     int           // Number of letters per word (typically 5).
	History  []GuessRecord // Guesses made so far with their patterns.
	Finished bool          // True once the game is over (won or lost).
	Won      bool          // True if the game finished with a win.
}
