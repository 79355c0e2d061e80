// cmd_benchmark.go
//
// Benchmark mode: every vocabulary word is played as the secret, once per
// strategy, and the round counts are aggregated into a comparison report
// (histogram, average, failures beyond the solve limit, worst word).
// Reports can be persisted to SQLite for comparison across runs.

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/results"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

var (
	benchStrategy string
	benchPool     string
	benchWorkers  int
	benchCap      int
	benchSeed     int64
	benchDB       string
	benchHistory  int
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Compare strategies across the whole vocabulary",
	RunE:  runBenchmark,
}

func init() {
	benchmarkCmd.Flags().StringVar(&benchStrategy, "strategy", "all",
		"strategy to benchmark, or \"all\"")
	benchmarkCmd.Flags().StringVar(&benchPool, "pool", string(solver.PoolCandidates),
		"guess pool for minimax/entropy: candidates or vocabulary")
	benchmarkCmd.Flags().IntVar(&benchWorkers, "workers", 4,
		"parallel episodes")
	benchmarkCmd.Flags().IntVar(&benchCap, "cap", 0,
		"hard round cap per episode (0 = uncapped)")
	benchmarkCmd.Flags().Int64Var(&benchSeed, "seed", 1,
		"base seed for the random strategy")
	benchmarkCmd.Flags().StringVar(&benchDB, "db", "",
		"SQLite path to persist reports (default: RESULTS_DB env, empty disables)")
	benchmarkCmd.Flags().IntVar(&benchHistory, "history", 0,
		"instead of running, list the N most recent persisted reports")
	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(cmd *cobra.Command, args []string) error {
	dsn := benchDB
	if dsn == "" {
		dsn = getEnv("RESULTS_DB", "")
	}

	if benchHistory > 0 {
		return printRunHistory(cmd.Context(), dsn, benchHistory)
	}

	names := solver.StrategyNames
	if benchStrategy != "all" {
		names = []string{benchStrategy}
	}

	fmt.Printf("Benchmarking %d strategies over %d words.\n", len(names), vocab.Len())

	for _, name := range names {
		fmt.Printf("\n%s\nStrategy: %s\n%s\n", strings.Repeat("-", 60), name, strings.Repeat("-", 60))

		report, err := solver.Benchmark(cmd.Context(), vocab, name,
			solver.Options{Pool: solver.Pool(benchPool), Seed: benchSeed},
			solver.BenchOptions{Workers: benchWorkers, MaxRounds: benchCap, Progress: true},
		)
		if err != nil {
			return err
		}
		printReport(report)

		if dsn != "" {
			if err := persistReport(cmd.Context(), dsn, report); err != nil {
				log.Warn().Err(err).Str("strategy", name).Msg("persist report")
			}
		}
	}
	return nil
}

// printReport renders the histogram and summary the way the interactive
// report reads best: one bar row per round count.
func printReport(r *solver.BenchmarkReport) {
	fmt.Printf("Opening guess: %s\n", strings.ToUpper(r.FirstGuess))
	fmt.Println("Count of words solved in # tries:")

	rounds := make([]int, 0, len(r.Histogram))
	for k := range r.Histogram {
		rounds = append(rounds, k)
	}
	sort.Ints(rounds)
	for _, k := range rounds {
		n := r.Histogram[k]
		fmt.Printf("%2d: %s %d\n", k, strings.Repeat("=", n/40+1), n)
	}

	fmt.Printf("\nAverage number of tries:       %6.3f\n", r.Average)
	failed := r.Failures + r.NotWon
	fmt.Printf("Puzzles not solved in %d tries: %d (%5.1f%%)\n",
		solver.DefaultSolveLimit, failed, float64(failed)/float64(r.VocabSize)*100)
	if r.WorstSecret != "" {
		fmt.Printf("The most difficult word %q required %d tries.\n", strings.ToUpper(r.WorstSecret), r.WorstRounds)
	}
	if r.NotWon > 0 {
		fmt.Printf("Episodes ending without a win: %d\n", r.NotWon)
	}
}

func persistReport(ctx context.Context, dsn string, r *solver.BenchmarkReport) error {
	db, err := results.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	id, err := results.SaveBenchmark(ctx, db, r)
	if err != nil {
		return err
	}
	log.Info().Int64("runId", id).Str("strategy", r.Strategy).Msg("report persisted")
	return nil
}

func printRunHistory(ctx context.Context, dsn string, limit int) error {
	if dsn == "" {
		return fmt.Errorf("no results database configured (--db or RESULTS_DB)")
	}
	db, err := results.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := results.RecentRuns(ctx, db, limit)
	if err != nil {
		return err
	}
	fmt.Printf("%-4s %-10s %-12s %-6s %-8s %-8s %s\n",
		"id", "strategy", "pool", "avg", "failed", "worst", "when")
	for _, r := range runs {
		fmt.Printf("%-4d %-10s %-12s %-6.3f %-8d %-8s %s\n",
			r.ID, r.Strategy, r.Pool, r.Average, r.Failures+r.NotWon, r.WorstSecret, r.CreatedAt)
	}
	return nil
}
