// cmd_play.go
//
// Interactive play mode: the program holds a hidden secret and answers each
// typed guess with its gyx pattern until the player wins or runs out of
// rows. Finished games are recorded when a results DB is configured.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/results"
)

var (
	playDaily  bool
	playSecret string
	playDB     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against a hidden word",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playDaily, "daily", false,
		"play today's deterministic daily word instead of a random one")
	playCmd.Flags().StringVar(&playSecret, "secret", "",
		"fixed secret word (testing)")
	playCmd.Flags().StringVar(&playDB, "db", "",
		"SQLite path to record finished games (default: RESULTS_DB env, empty disables)")
	rootCmd.AddCommand(playCmd)
}

const playBanner = `Try to find the word I chose. After each guess you get:
    g - right letter, right place (green)
    y - right letter, wrong place (yellow)
    x - wrong letter (gray)
`

func runPlay(cmd *cobra.Command, args []string) error {
	var g *game.Game
	var err error
	if playDaily {
		g = game.NewDaily(vocab, getEnv("DAILY_SALT", "wordle-solver"), time.Now())
	} else {
		g, err = game.New(vocab, playSecret)
		if err != nil {
			return err
		}
	}

	fmt.Print(playBanner)
	in := bufio.NewReader(os.Stdin)

	for !g.Finished {
		fmt.Printf("\n== Try #%d of %d ==\n", len(g.History)+1, g.Rows)
		fmt.Print("Type your guess: ")
		line, rerr := in.ReadString('\n')
		if rerr != nil {
			return rerr
		}
		guess := strings.TrimSpace(line)

		p, state, gerr := g.ApplyGuess(vocab, guess)
		if gerr != nil {
			switch {
			case errors.Is(gerr, game.ErrNotInWordList):
				fmt.Printf("%s is not a word I know, sorry. Try again, please.\n", strings.ToUpper(guess))
			case errors.Is(gerr, game.ErrInvalidGuess):
				fmt.Printf("Guesses are %d letters a-z. Try again, please.\n", g.Cols)
			default:
				return gerr
			}
			continue
		}

		fmt.Printf("Result:          %s\n", p)
		if state == "won" {
			fmt.Printf("\nDone in %d tries!\n", len(g.History))
		} else if state == "lost" {
			fmt.Printf("\nOut of tries. The word was %s.\n", strings.ToUpper(g.Secret))
		}
	}

	recordPlayedGame(g)
	return nil
}

// recordPlayedGame persists the finished game if a DB is configured.
// Best effort: a persistence problem never fails the game itself.
func recordPlayedGame(g *game.Game) {
	dsn := playDB
	if dsn == "" {
		dsn = os.Getenv("RESULTS_DB")
	}
	if dsn == "" {
		return
	}
	db, err := results.Open(dsn)
	if err != nil {
		log.Warn().Err(err).Msg("open results db")
		return
	}
	defer db.Close()
	if err := results.RecordGame(context.Background(), db, g, "play"); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record game")
	}
}
