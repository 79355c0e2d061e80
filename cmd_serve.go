// cmd_serve.go
//
// Serve mode: play mode and solver suggestions over HTTP. Sessions live in
// the in-memory store; finished games are recorded when a results DB is
// configured.

package main

import (
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle-solver/internal/httpserver"
	"github.com/robalobadob/wordle-solver/internal/results"
	"github.com/robalobadob/wordle-solver/internal/store"
)

var (
	serveAddr string
	serveDB   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose play mode and solver suggestions over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"listen address (default: :PORT env or :5175)")
	serveCmd.Flags().StringVar(&serveDB, "db", "",
		"SQLite path to record finished games (default: RESULTS_DB env, empty disables)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := serveAddr
	if addr == "" {
		addr = ":" + getEnv("PORT", "5175")
	}

	var db *sql.DB
	dsn := serveDB
	if dsn == "" {
		dsn = getEnv("RESULTS_DB", "")
	}
	if dsn != "" {
		var err error
		db, err = results.Open(dsn)
		if err != nil {
			return err
		}
		defer db.Close()
	}

	srv := httpserver.New(store.NewMemoryStore(), vocab, db)
	log.Info().Str("addr", addr).Int("words", vocab.Len()).Msg("starting server")
	return srv.Start(addr)
}
