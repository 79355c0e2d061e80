// internal/httpserver/server.go
//
// HTTP wiring for serve mode.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/suggest.
//   - Signed game-session tokens (HS256 JWT carrying the game ID), so a
//     client cannot guess against another session or forge one.
//   - Best-effort persistence of finished games when a DB is configured.
//
// Notes:
//   - There are no user accounts: the token is a session handle, nothing more.
//   - /game/suggest replays the session history through the candidate
//     filter and asks a strategy for the next guess — the solver as a service.

package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle-solver/internal/feedback"
	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/results"
	"github.com/robalobadob/wordle-solver/internal/solver"
	"github.com/robalobadob/wordle-solver/internal/store"
	"github.com/robalobadob/wordle-solver/internal/words"
)

// Server bundles router, session store, vocabulary, and optional DB handle.
type Server struct {
	r     *chi.Mux
	store store.Store
	vocab *words.Vocabulary
	db    *sql.DB // nil disables result recording
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, vocab *words.Vocabulary, db *sql.DB) *Server {
	s := &Server{r: chi.NewRouter(), store: st, vocab: vocab, db: db}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-solver","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/suggest"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{
			"words":   s.vocab.Len(),
			"wordLen": s.vocab.WordLen(),
		})
	})

	// --- game endpoints ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
	s.r.Post("/game/suggest", s.handleSuggest)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Daily  bool   `json:"daily"`  // deterministic daily secret instead of a random one
	Secret string `json:"secret"` // optional fixed secret (testing)
}
type newGameRes struct {
	GameID string `json:"gameId"`
	Token  string `json:"token"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
}

// handleNewGame creates a new in-memory game session and returns its
// signed token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var g *game.Game
	if req.Daily {
		g = game.NewDaily(s.vocab, getEnv("DAILY_SALT", "wordle-solver"), time.Now())
	} else {
		var err error
		g, err = game.New(s.vocab, req.Secret)
		if err != nil {
			http.Error(w, `{"error":"bad_secret"}`, http.StatusBadRequest)
			return
		}
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	tok, err := signGameToken(g.ID)
	if err != nil {
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{GameID: g.ID, Token: tok, Rows: g.Rows, Cols: g.Cols})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	Token string `json:"token"`
	Guess string `json:"guess"`
}
type guessRes struct {
	Marks feedback.Pattern `json:"marks"` // gyx code, e.g. "gxxyg"
	State string           `json:"state"` // "playing" | "won" | "lost"
}

// handleGuess applies a guess to the session named by the token and, once
// the game finishes, records it (best effort, non-fatal).
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, ok := s.sessionFor(w, r, req.Token)
	if !ok {
		return
	}

	p, state, err := g.ApplyGuess(s.vocab, req.Guess)
	if err != nil {
		http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}

	if g.Finished && s.db != nil {
		if err := results.RecordGame(r.Context(), s.db, g, "serve"); err != nil {
			log.Warn().Err(err).Str("gameId", g.ID).Msg("record game")
		}
	}
	_ = json.NewEncoder(w).Encode(guessRes{Marks: p, State: state})
}

// suggestReq/Res payloads for POST /game/suggest.
type suggestReq struct {
	Token    string `json:"token"`
	Strategy string `json:"strategy"` // defaults to "entropy"
}
type suggestRes struct {
	Guess      string `json:"guess"`
	Candidates int    `json:"candidates"` // words still consistent with the session history
}

// handleSuggest replays the session history through the candidate filter
// and returns the strategy's next guess for it.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	g, ok := s.sessionFor(w, r, req.Token)
	if !ok {
		return
	}
	if g.Finished {
		http.Error(w, `{"error":"game finished"}`, http.StatusConflict)
		return
	}

	name := req.Strategy
	if name == "" {
		name = "entropy"
	}
	strat, err := solver.ForName(name, solver.Options{})
	if err != nil {
		http.Error(w, `{"error":"unknown_strategy"}`, http.StatusBadRequest)
		return
	}

	candidates := s.vocab.Words()
	history := make([]solver.Round, 0, len(g.History))
	for _, rec := range g.History {
		candidates, err = solver.Narrow(candidates, rec.Guess, rec.Pattern)
		if err != nil {
			http.Error(w, `{"error":"narrow_failed"}`, http.StatusInternalServerError)
			return
		}
		history = append(history, solver.Round{Guess: rec.Guess, Pattern: rec.Pattern})
	}

	guess, err := strat.Select(candidates, s.vocab, history)
	if err != nil {
		if errors.Is(err, solver.ErrNoCandidates) {
			http.Error(w, `{"error":"inconsistent_history"}`, http.StatusConflict)
			return
		}
		http.Error(w, `{"error":"select_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(suggestRes{Guess: guess, Candidates: len(candidates)})
}

// sessionFor resolves the game session from a request token (body field or
// Authorization header), writing the error response itself on failure.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request, bodyToken string) (*game.Game, bool) {
	tok := bodyToken
	if tok == "" {
		tok = bearerToken(r)
	}
	gid, err := parseGameToken(tok)
	if err != nil {
		http.Error(w, `{"error":"invalid_token"}`, http.StatusUnauthorized)
		return nil, false
	}
	g, err := s.store.Get(r.Context(), gid)
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return g, true
}

// ------------------------------ game tokens --------------------------------

// signGameToken creates an HS256 JWT binding the game ID, valid for a day.
func signGameToken(gameID string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"gid": gameID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	return t.SignedString([]byte(tokenSecret()))
}

// parseGameToken verifies the token and extracts the game ID.
func parseGameToken(tok string) (string, error) {
	if tok == "" {
		return "", errors.New("empty token")
	}
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(tokenSecret()), nil
	})
	if err != nil || !t.Valid {
		return "", errors.New("invalid token")
	}
	gid, _ := claims["gid"].(string)
	if gid == "" {
		return "", errors.New("invalid token")
	}
	return gid, nil
}

// bearerToken extracts a token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

func tokenSecret() string {
	return getEnv("JWT_SECRET", "dev_secret_change_me")
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
