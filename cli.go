// cli.go
//
// Command surface for the Wordle solver toolkit.
// Responsibilities:
//   - Root cobra command and shared flags.
//   - Vocabulary bootstrap (flag → env → embedded default), done once in
//     the persistent pre-run so every subcommand gets the same read-only
//     handle.
//
// Subcommands live in cmd_*.go: solve, play, benchmark, serve.

package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/words"
)

var (
	// vocab is the process-wide read-only vocabulary, loaded once before
	// any subcommand runs.
	vocab *words.Vocabulary

	flagWordsFile string
)

var rootCmd = &cobra.Command{
	Use:   "wordle-solver",
	Short: "Solve, play, and benchmark Wordle",
	Long: `wordle-solver is a Wordle toolkit:

  solve      suggest guesses for an external game you relay feedback from
  play       play against a hidden word picked by the program
  benchmark  run every vocabulary word as the secret and compare strategies
  serve      expose play mode and solver suggestions over HTTP`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if flagWordsFile != "" {
			vocab, err = words.LoadFile(flagWordsFile, words.DefaultWordLen)
		} else {
			vocab, err = words.Load()
		}
		if err != nil {
			return err
		}
		log.Debug().Int("words", vocab.Len()).Int("wordLen", vocab.WordLen()).Msg("vocabulary loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagWordsFile, "words", "",
		"word list file, one word per line (default: WORDS_FILE env or the embedded list)")
}

// Execute runs the CLI. Errors are logged here so main stays tiny.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		return err
	}
	return nil
}
