// cmd_solve.go
//
// Interactive solve mode: the program suggests guesses, a human plays them
// in an external game and types the response back in gyx notation. The
// console prompt/parse cycle lives here, at the boundary; the solver core
// below it is a plain synchronous step API.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

var (
	solveStrategy string
	solvePool     string
	solveFirst    string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Suggest guesses for an external game",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "entropy",
		"guess strategy: minimax, entropy, frequency, random")
	solveCmd.Flags().StringVar(&solvePool, "pool", string(solver.PoolCandidates),
		"guess pool for minimax/entropy: candidates or vocabulary")
	solveCmd.Flags().StringVar(&solveFirst, "first", "",
		"opening guess (skips the slow first-round scan)")
	rootCmd.AddCommand(solveCmd)
}

const solveBanner = `Solving with the %q strategy.

Play each suggested word in your game and type the response back:
    g - right letter, right place (green)
    y - right letter, wrong place (yellow)
    x - wrong letter (gray)

Example: if the solution is DRINK and the suggestion is FROND,
the response is xgxgy.
`

func runSolve(cmd *cobra.Command, args []string) error {
	strat, err := solver.ForName(solveStrategy, solver.Options{Pool: solver.Pool(solvePool)})
	if err != nil {
		return err
	}
	if solveFirst != "" && !vocab.Contains(solveFirst) {
		return fmt.Errorf("opening guess %q is not in the vocabulary", solveFirst)
	}

	fmt.Printf(solveBanner, solveStrategy)

	s := solver.New(vocab, strat, solver.Config{FirstGuess: strings.ToLower(solveFirst)})
	in := bufio.NewReader(os.Stdin)

	for round := 1; ; round++ {
		guess, err := s.NextGuess()
		if err != nil {
			if errors.Is(err, solver.ErrNoCandidates) {
				fmt.Println("\nNo vocabulary word matches that feedback. Can't solve it, sorry!")
				return nil
			}
			return err
		}
		fmt.Printf("\nTry #%d: %s   (%d candidates)\n", round, strings.ToUpper(guess), len(s.Candidates()))

		p, err := promptPattern(in, vocab.WordLen())
		if err != nil {
			return err
		}
		if err := s.ApplyFeedback(p); err != nil {
			return err
		}

		switch s.Status() {
		case solver.StatusWon:
			fmt.Printf("\nDone in %d tries!\n", s.Rounds())
			return nil
		case solver.StatusInconsistent:
			fmt.Println("\nNo vocabulary word matches that feedback. Can't solve it, sorry!")
			return nil
		}
	}
}

// promptPattern reads a gyx response code, retrying until it parses.
func promptPattern(in *bufio.Reader, n int) (feedback.Pattern, error) {
	for {
		fmt.Print("Response: ")
		line, err := in.ReadString('\n')
		if err != nil {
			return nil, err
		}
		p, perr := feedback.Parse(line, n)
		if perr != nil {
			fmt.Printf("Please type exactly %d of g/y/x.\n", n)
			continue
		}
		return p, nil
	}
}
