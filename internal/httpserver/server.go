// internal/httpserver/server.go
//
// HTTP server wiring for the Lexigon backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/wordlists".
//   - Game endpoints (optional auth): mounted under /game.
//   - Daily puzzle endpoints (optional auth): mounted under /daily.
//   - Auth + profile/stat endpoints: /auth/*, /stats/me, /games/mine.
//
// Notes:
//   - Each session holds exactly one game.State; every action runs one core
//     transition inside store.Update and replaces the stored state wholesale.
//   - CORS is origin-aware and credentials-enabled (so cookies work).

package httpserver

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/jonkhler/lexigon/internal/daily"
	"github.com/jonkhler/lexigon/internal/game"
	"github.com/jonkhler/lexigon/internal/store"
	"github.com/jonkhler/lexigon/internal/words"
)

// Config carries the server settings resolved by the command layer.
type Config struct {
	DefaultWordlist string
	DailySalt       string
	JWTSecret       string
	JWTExpiresDays  int
	ClientOrigin    string
	CookieName      string
	Production      bool
	ExactDuplicates bool
	// NewRand supplies the random source of each new session.
	NewRand func() game.Rand
}

func (c *Config) defaults() {
	if c.DailySalt == "" {
		c.DailySalt = "local_dev_salt"
	}
	if c.JWTSecret == "" {
		c.JWTSecret = "dev_secret_change_me"
	}
	if c.JWTExpiresDays <= 0 {
		c.JWTExpiresDays = 14
	}
	if c.ClientOrigin == "" {
		c.ClientOrigin = "http://localhost:5173"
	}
	if c.CookieName == "" {
		c.CookieName = "lexigon_token"
	}
	if c.NewRand == nil {
		c.NewRand = func() game.Rand { return game.NewCryptoRand() }
	}
}

// Server bundles router, session store, word lists and DB handle.
type Server struct {
	r       *chi.Mux
	store   store.Store
	db      *sql.DB
	catalog *words.Catalog
	daily   *daily.Store
	cfg     Config
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, db *sql.DB, catalog *words.Catalog, cfg Config) *Server {
	cfg.defaults()
	s := &Server{
		r:       chi.NewRouter(),
		store:   st,
		db:      db,
		catalog: catalog,
		daily:   daily.NewStore(db),
		cfg:     cfg,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service":   "lexigon",
			"rules":     game.Rules,
			"endpoints": []string{"/health", "/wordlists", "POST /game/new", "/daily/*", "/auth/*"},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/wordlists", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.catalog.Stats())
	})

	// Game endpoints: optional auth (guests can play)
	s.mountGame(s.r.With(s.withOptionalAuth()))

	// Daily puzzle: optional auth
	s.mountDaily(s.r.With(s.withOptionalAuth()))

	// Auth + profile/stats
	s.mountAuthRoutes()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", r.URL.Path)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, s.r)
}

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

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- small util --------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// errorRes is the body of every failed request.
type errorRes struct {
	Error   string    `json:"error"`
	Message string    `json:"message,omitempty"`
	Game    *gameView `json:"game,omitempty"`
}

// writeError writes an errorRes without game state.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, errorRes{Error: code, Message: msg})
}
