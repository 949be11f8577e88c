// internal/httpserver/routes_game.go
//
// HTTP routes for free play, mounted under /game:
//   - POST /game/new           → start a session on a word list
//   - GET  /game/{id}          → current view
//   - POST /game/{id}/letter   → append one letter to the candidate
//   - POST /game/{id}/clear    → drop the candidate
//   - POST /game/{id}/submit   → submit the candidate
//   - POST /game/{id}/hint     → reveal one more hint letter
//   - POST /game/{id}/reset    → new puzzle from the same word list
//   - POST /game/{id}/wordlist → new puzzle from another word list
//
// A failed submission clears the candidate; a failed hint leaves everything
// as it was. A completed puzzle is recorded, reported once as "won", and the
// session moves on to a fresh puzzle.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/jonkhler/lexigon/internal/daily"
	"github.com/jonkhler/lexigon/internal/game"
	"github.com/jonkhler/lexigon/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Get("/{id}", s.handleGetGame)
		r.Post("/{id}/letter", s.handleLetter)
		r.Post("/{id}/clear", s.handleClear)
		r.Post("/{id}/submit", s.handleSubmit)
		r.Post("/{id}/hint", s.handleHint)
		r.Post("/{id}/reset", s.handleReset)
		r.Post("/{id}/wordlist", s.handleSwitchWordlist)
	})
}

// ------------------------------- views -------------------------------------

// gameView is the JSON rendering of a session.
type gameView struct {
	GameID        string      `json:"gameId"`
	Wordlist      string      `json:"wordlist"`
	Daily         string      `json:"daily,omitempty"`
	Letters       string      `json:"letters"`
	Mandatory     string      `json:"mandatory"`
	Optional      []string    `json:"optional"`
	Candidate     string      `json:"candidate"`
	Moves         []game.Move `json:"moves"`
	Hint          []string    `json:"hint"`
	HintCost      int         `json:"hintCost"`
	Penalties     []int       `json:"penalties"`
	CurrentPoints int         `json:"currentPoints"`
	TotalPenalty  int         `json:"totalPenalty"`
	Score         int         `json:"score"`
	MaxPoints     int         `json:"maxPoints"`
	Completed     bool        `json:"completed"`
}

func newView(sess store.Session) gameView {
	st := sess.State
	lx := st.Lexigon()
	return gameView{
		GameID:        sess.ID,
		Wordlist:      sess.Wordlist,
		Daily:         sess.Daily,
		Letters:       lx.String(),
		Mandatory:     string(lx.Mandatory()),
		Optional:      lo.Map(lx.Optional(), func(r rune, _ int) string { return string(r) }),
		Candidate:     st.Candidate(),
		Moves:         st.Moves().Slice(),
		Hint:          st.Hint().Letters(),
		HintCost:      st.NextHintCost(),
		Penalties:     st.Penalties(),
		CurrentPoints: st.CurrentPoints(),
		TotalPenalty:  st.TotalPenalty(),
		Score:         st.Score(),
		MaxPoints:     st.MaxPoints(),
		Completed:     st.Completed(),
	}
}

// wonRes reports a puzzle completed by the last submission.
type wonRes struct {
	Moves   int    `json:"moves"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// gameRes is the body of every successful /game call.
type gameRes struct {
	Game gameView `json:"game"`
	Won  *wonRes  `json:"won,omitempty"`
}

// --------------------------- error mapping ---------------------------------

// classify maps core errors to an HTTP status and a stable error code.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "unknown_game"
	case errors.Is(err, game.ErrMissingMandatory):
		return http.StatusBadRequest, "missing_mandatory"
	case errors.Is(err, game.ErrDisallowedLetter):
		return http.StatusBadRequest, "disallowed_letter"
	case errors.Is(err, game.ErrNotInWordlist):
		return http.StatusBadRequest, "not_in_wordlist"
	case errors.Is(err, game.ErrTooShort):
		return http.StatusBadRequest, "too_short"
	case errors.Is(err, game.ErrNotSingleLetter):
		return http.StatusBadRequest, "not_single_letter"
	case errors.Is(err, game.ErrValidation):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, game.ErrDuplicateMove):
		return http.StatusConflict, "duplicate_move"
	case errors.Is(err, game.ErrNoLeftoverWords):
		return http.StatusConflict, "no_leftover_words"
	case errors.Is(err, game.ErrInsufficientPoints):
		return http.StatusPaymentRequired, "insufficient_points"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// writeGameError writes err together with the session view when there is one.
func writeGameError(w http.ResponseWriter, sess store.Session, err error) {
	status, code := classify(err)
	res := errorRes{Error: code, Message: err.Error()}
	if sess.ID != "" {
		v := newView(sess)
		res.Game = &v
	}
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("gameId", sess.ID).Msg("game action")
	}
	writeJSON(w, status, res)
}

// ------------------------------ handlers -----------------------------------

// wordlistReq is the body of /game/new and /game/{id}/wordlist.
type wordlistReq struct {
	Wordlist string `json:"wordlist"`
}

// letterReq is the body of /game/{id}/letter.
type letterReq struct {
	Letter string `json:"letter"`
}

// handleNewGame creates a session on the requested (or default) word list.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req wordlistReq
	// an empty body means the default list
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}

	name, wl := s.catalog.Default(s.cfg.DefaultWordlist)
	if req.Wordlist != "" {
		var ok bool
		if wl, ok = s.catalog.Get(req.Wordlist); !ok {
			writeError(w, http.StatusNotFound, "unknown_wordlist", req.Wordlist)
			return
		}
		name = req.Wordlist
	}

	sess, err := s.store.Create(r.Context(), store.Session{
		PuzzleID: genID(),
		Wordlist: name,
		Owner:    s.ownerID(w, r),
		State:    game.NewFromWordlist(wl, s.cfg.NewRand(), s.gameOptions()...),
	})
	if err != nil {
		log.Error().Err(err).Msg("create session")
		writeError(w, http.StatusInternalServerError, "save_failed", "")
		return
	}
	s.startPuzzle(r, sess)
	writeJSON(w, http.StatusOK, gameRes{Game: newView(sess)})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeGameError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{Game: newView(sess)})
}

func (s *Server) handleLetter(w http.ResponseWriter, r *http.Request) {
	var req letterReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	letter := strings.ToLower(req.Letter)
	s.update(w, r, func(sess *store.Session) error {
		next, err := sess.State.AddLetter(letter)
		if err != nil {
			return err
		}
		// the engine checks letters only on submit
		if l, _ := utf8.DecodeRuneInString(letter); !sess.State.Lexigon().Allows(l) {
			return fmt.Errorf("%w: %q is not on the board", game.ErrDisallowedLetter, letter)
		}
		sess.State = next
		return nil
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(sess *store.Session) error {
		sess.State = sess.State.ClearCandidate()
		return nil
	})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, func(sess *store.Session) error {
		next, err := sess.State.RequestHint()
		if err != nil {
			return err
		}
		sess.State = next
		return nil
	})
}

// handleSubmit submits the candidate. Rejections clear the candidate and are
// reported with the updated view; completion records the puzzle and restarts.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var (
		rejected error
		finished *store.Session
	)
	sess, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *store.Session) error {
		next, err := sess.State.AddMove()
		if err != nil {
			rejected = err
			sess.State = sess.State.ClearCandidate()
			return nil
		}
		if !next.Completed() {
			sess.State = next
			return nil
		}
		done := *sess
		done.State = next
		finished = &done
		restart(sess, next.Reset())
		return nil
	})
	if err != nil {
		writeGameError(w, sess, err)
		return
	}
	if rejected != nil {
		writeGameError(w, sess, rejected)
		return
	}

	res := gameRes{Game: newView(sess)}
	if finished != nil {
		st := finished.State
		log.Info().Str("gameId", sess.ID).Int("moves", st.Moves().Len()).Int("score", st.Score()).Msg("puzzle solved")
		s.finishPuzzle(r, *finished, "solved")
		s.startPuzzle(r, sess)
		res.Won = &wonRes{
			Moves:   st.Moves().Len(),
			Score:   st.Score(),
			Message: fmt.Sprintf("You won with %d moves!", st.Moves().Len()),
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// handleReset abandons the current puzzle and starts a new one from the
// same word list.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var prev store.Session
	sess, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *store.Session) error {
		prev = *sess
		restart(sess, sess.State.Reset())
		return nil
	})
	if err != nil {
		writeGameError(w, sess, err)
		return
	}
	s.finishPuzzle(r, prev, "abandoned")
	s.startPuzzle(r, sess)
	writeJSON(w, http.StatusOK, gameRes{Game: newView(sess)})
}

// handleSwitchWordlist abandons the current puzzle and starts one from
// another word list.
func (s *Server) handleSwitchWordlist(w http.ResponseWriter, r *http.Request) {
	var req wordlistReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", err.Error())
		return
	}
	wl, ok := s.catalog.Get(req.Wordlist)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown_wordlist", req.Wordlist)
		return
	}

	var prev store.Session
	sess, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), func(sess *store.Session) error {
		prev = *sess
		sess.Wordlist = req.Wordlist
		restart(sess, game.NewFromWordlist(wl, s.cfg.NewRand(), s.gameOptions()...))
		return nil
	})
	if err != nil {
		writeGameError(w, sess, err)
		return
	}
	s.finishPuzzle(r, prev, "abandoned")
	s.startPuzzle(r, sess)
	writeJSON(w, http.StatusOK, gameRes{Game: newView(sess)})
}

// update runs one transition on the session named in the URL and writes the
// resulting view.
func (s *Server) update(w http.ResponseWriter, r *http.Request, fn func(*store.Session) error) {
	sess, err := s.store.Update(r.Context(), chi.URLParam(r, "id"), fn)
	if err != nil {
		writeGameError(w, sess, err)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{Game: newView(sess)})
}

// restart puts a fresh puzzle into sess. A restarted daily session is free play.
func restart(sess *store.Session, st game.State) {
	sess.State = st
	sess.PuzzleID = genID()
	sess.StartedAt = time.Now().UTC()
	sess.Daily = ""
}

func (s *Server) gameOptions() []game.Option {
	return []game.Option{game.WithExactDuplicates(s.cfg.ExactDuplicates)}
}

// ----------------------------- persistence ---------------------------------

// startPuzzle inserts the history row of the session's current puzzle
// (best effort).
func (s *Server) startPuzzle(r *http.Request, sess store.Session) {
	var userID, anonID any
	if me := currentUser(r); me != nil {
		userID = me.ID
	} else {
		anonID = sess.Owner
	}
	_, err := s.db.ExecContext(r.Context(),
		`INSERT INTO games (id, user_id, anonymous_id, wordlist, letters, started_at, status)
		 VALUES (?,?,?,?,?,?, 'playing')`,
		sess.PuzzleID, userID, anonID, sess.Wordlist, sess.State.Lexigon().String(),
		sess.StartedAt.UTC().Format(time.RFC3339))
	if err != nil {
		log.Warn().Err(err).Str("puzzleId", sess.PuzzleID).Msg("insert game row")
	}
}

// finishPuzzle closes the history row of sess with status, updates user
// stats and, for a solved daily puzzle, records the daily result.
func (s *Server) finishPuzzle(r *http.Request, sess store.Session, status string) {
	ctx := r.Context()
	st := sess.State
	solved := status == "solved"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Warn().Err(err).Msg("begin finish tx")
		return
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE games SET status=?, finished_at=?, moves=?, points=?, penalty=? WHERE id=?`,
		status, time.Now().UTC().Format(time.RFC3339),
		st.Moves().Len(), st.CurrentPoints(), st.TotalPenalty(), sess.PuzzleID); err != nil {
		log.Warn().Err(err).Str("puzzleId", sess.PuzzleID).Msg("finish game row")
	}
	if me := currentUser(r); me != nil {
		if err := bumpStats(ctx, tx, me.ID, solved, st.Score()); err != nil {
			log.Warn().Err(err).Str("user", me.ID).Msg("bump stats")
		}
	}
	if err := tx.Commit(); err != nil {
		log.Warn().Err(err).Msg("commit finish tx")
	}

	if solved && sess.Daily != "" {
		s.recordDaily(ctx, sess)
	}
}

// recordDaily stores the daily result of a solved daily puzzle.
func (s *Server) recordDaily(ctx context.Context, sess store.Session) {
	st := sess.State
	err := s.daily.InsertResult(ctx, daily.Result{
		UserID:  sess.Owner,
		Date:    sess.Daily,
		Letters: st.Lexigon().String(),
		Moves:   st.Moves().Len(),
		Points:  st.CurrentPoints(),
		Penalty: st.TotalPenalty(),
		Hints:   len(st.Penalties()),
	})
	if err != nil {
		log.Warn().Err(err).Str("date", sess.Daily).Msg("insert daily result")
	}
}
