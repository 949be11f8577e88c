// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily puzzle, mounted under /daily:
//   - POST /daily/new         → start (or resume) today's puzzle
//   - GET  /daily/leaderboard → top results for today (or ?date=YYYY-MM-DD)
//
// The daily puzzle is an ordinary session whose letters are derived from the
// date and a salt, so every player sees the same puzzle. It is played through
// the /game/{id} routes; solving it records a daily result. Each player gets
// one attempt per day: the DB holds results, and a per-day session map
// remembers started puzzles, so a reset daily cannot be started again.

package httpserver

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jonkhler/lexigon/internal/daily"
	"github.com/jonkhler/lexigon/internal/game"
	"github.com/jonkhler/lexigon/internal/store"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv      *Server
	sessions map[string]string // game session IDs keyed by owner|date
	mu       sync.Mutex        // guards sessions
	now      func() time.Time
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	dd := &dailyServer{
		srv:      s,
		sessions: make(map[string]string),
		now:      time.Now,
	}
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", dd.handleNew)
		r.Get("/leaderboard", dd.handleLeaderboard)
	})
}

// dailyRes is returned by /daily/new.
type dailyRes struct {
	Date   string    `json:"date"`
	Played bool      `json:"played"`
	Game   *gameView `json:"game,omitempty"`
}

// handleNew creates or resumes today's daily session.
//   - If the player already has a result for today → Played=true, no game.
//   - Otherwise reuse the player's open daily session or create one.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	s := d.srv
	ctx := r.Context()
	owner := s.ownerID(w, r)
	now := d.now()
	date := daily.DateKey(now)

	if played, err := s.daily.AlreadyPlayed(ctx, owner, date); err != nil {
		log.Warn().Err(err).Msg("daily lookup")
	} else if played {
		writeJSON(w, http.StatusOK, dailyRes{Date: date, Played: true})
		return
	}

	key := owner + "|" + date
	d.mu.Lock()
	defer d.mu.Unlock()

	if id, ok := d.sessions[key]; ok {
		sess, err := s.store.Get(ctx, id)
		if err == nil && sess.Daily == date {
			v := newView(sess)
			writeJSON(w, http.StatusOK, dailyRes{Date: date, Game: &v})
			return
		}
		// reset, switched away or solved: today's attempt is used up
		writeJSON(w, http.StatusOK, dailyRes{Date: date, Played: true})
		return
	}

	name, wl := s.catalog.Default(s.cfg.DefaultWordlist)
	lx, rng := daily.Puzzle(now, s.cfg.DailySalt, wl)
	sess, err := s.store.Create(ctx, store.Session{
		PuzzleID: genID(),
		Wordlist: name,
		Owner:    owner,
		Daily:    date,
		State:    game.NewFromLexigon(lx, rng, s.gameOptions()...),
	})
	if err != nil {
		log.Error().Err(err).Msg("create daily session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	d.sessions = lo.PickBy(d.sessions, func(k, _ string) bool {
		return strings.HasSuffix(k, "|"+date)
	})
	d.sessions[key] = sess.ID
	s.startPuzzle(r, sess)

	v := newView(sess)
	writeJSON(w, http.StatusOK, dailyRes{Date: date, Game: &v})
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (d *dailyServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(d.now())
	}
	rows, err := d.srv.daily.Leaderboard(r.Context(), date, 20)
	if err != nil {
		log.Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "db_error", "")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
