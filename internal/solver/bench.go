// internal/solver/bench.go
//
// Benchmark runner: one self-play episode per vocabulary word, aggregated
// into a per-strategy report.
//
// Episodes are independent (each owns its candidate set and history, the
// vocabulary is read-only), so they fan out across a bounded worker group.
// Results land in a slice indexed by the secret's vocabulary position,
// which makes the aggregation deterministic regardless of completion order.
//
// The opening guess is computed once per run and shared by every episode:
// it depends only on the full vocabulary, never on feedback.
package solver

import (
	"context"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// DefaultSolveLimit is the row count of the standard game; episodes that
// need more guesses count as failures in the report.
const DefaultSolveLimit = 6

// BenchOptions tunes a benchmark run.
type BenchOptions struct {
	Workers    int  // parallel episodes; <=0 means 1
	SolveLimit int  // rounds allowed before an episode counts as failed; <=0 means DefaultSolveLimit
	MaxRounds  int  // hard per-episode round cap; 0 means uncapped
	Progress   bool // render a terminal progress bar
}

// EpisodeResult is the outcome of one benchmark episode.
type EpisodeResult struct {
	Secret string `json:"secret"`
	Rounds int    `json:"rounds"`
	Status Status `json:"status"`
}

// BenchmarkReport aggregates a full run of one strategy.
type BenchmarkReport struct {
	Strategy   string          `json:"strategy"`
	Pool       Pool            `json:"pool"`
	VocabSize  int             `json:"vocabSize"`
	FirstGuess string          `json:"firstGuess"`
	Episodes   []EpisodeResult `json:"episodes"`

	Histogram   map[int]int `json:"histogram"` // rounds → number of secrets (won episodes)
	Average     float64     `json:"average"`   // mean rounds over won episodes
	Failures    int         `json:"failures"`  // won episodes needing more than SolveLimit rounds
	NotWon      int         `json:"notWon"`    // exhausted or inconsistent episodes
	WorstSecret string      `json:"worstSecret"`
	WorstRounds int         `json:"worstRounds"`
}

// Benchmark self-plays every vocabulary word as the secret with the named
// strategy and aggregates the outcomes. Failed episodes are recorded and
// the run continues; only setup problems (unknown strategy, cancellation)
// abort the run.
func Benchmark(ctx context.Context, vocab *words.Vocabulary, name string, sopts Options, bopts BenchOptions) (*BenchmarkReport, error) {
	workers := bopts.Workers
	if workers <= 0 {
		workers = 1
	}
	limit := bopts.SolveLimit
	if limit <= 0 {
		limit = DefaultSolveLimit
	}

	// Validate the strategy and precompute the shared opener.
	opener, err := ForName(name, sopts)
	if err != nil {
		return nil, err
	}
	first, err := opener.Select(vocab.Words(), vocab, nil)
	if err != nil {
		return nil, err
	}

	pool := sopts.Pool
	if pool == "" {
		pool = PoolCandidates
	}

	report := &BenchmarkReport{
		Strategy:   name,
		Pool:       pool,
		VocabSize:  vocab.Len(),
		FirstGuess: first,
		Episodes:   make([]EpisodeResult, vocab.Len()),
		Histogram:  make(map[int]int),
	}

	var bar *progressbar.ProgressBar
	if bopts.Progress {
		bar = progressbar.Default(int64(vocab.Len()), name)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < vocab.Len(); i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Fresh strategy per episode: the random variant carries its
			// own generator, derived from the base seed and the secret
			// index so runs stay reproducible.
			strat, err := ForName(name, Options{Pool: sopts.Pool, Seed: sopts.Seed + int64(i)})
			if err != nil {
				return err
			}
			secret := vocab.At(i)
			out, err := Run(vocab, strat, Config{FirstGuess: first, MaxRounds: bopts.MaxRounds}, secret)
			if err != nil {
				return err
			}
			report.Episodes[i] = EpisodeResult{Secret: secret, Rounds: out.Rounds, Status: out.Status}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}

	report.aggregate(limit)
	return report, nil
}

// aggregate computes the histogram, average, failure counts, and the worst
// secret from the per-episode results.
func (r *BenchmarkReport) aggregate(solveLimit int) {
	totalRounds, won := 0, 0
	r.WorstRounds = 0
	for _, ep := range r.Episodes {
		if ep.Status != StatusWon {
			r.NotWon++
			continue
		}
		won++
		totalRounds += ep.Rounds
		r.Histogram[ep.Rounds]++
		if ep.Rounds > solveLimit {
			r.Failures++
		}
		if ep.Rounds > r.WorstRounds {
			r.WorstRounds = ep.Rounds
			r.WorstSecret = ep.Secret
		}
	}
	if won > 0 {
		r.Average = float64(totalRounds) / float64(won)
	}
}
