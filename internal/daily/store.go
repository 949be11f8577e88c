package daily

import (
	"context"
	"database/sql"
)

// Result is one player's finished daily puzzle.
type Result struct {
	UserID  string `json:"userId"`
	Date    string `json:"date"`
	Letters string `json:"letters"`
	Moves   int    `json:"moves"`
	Points  int    `json:"points"`
	Penalty int    `json:"penalty"`
	Hints   int    `json:"hints"`
}

// Store persists daily results in the daily_results table.
type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) AlreadyPlayed(ctx context.Context, userID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE user_id=? AND date=?",
		userID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records r; a second result for the same user and date is ignored.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(user_id, date, letters, moves, points, penalty, hints)
		VALUES(?,?,?,?,?,?,?)`, r.UserID, r.Date, r.Letters, r.Moves, r.Points, r.Penalty, r.Hints,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	UserID string `json:"userId"`
	Score  int    `json:"score"`
	Moves  int    `json:"moves"`
	Hints  int    `json:"hints"`
}

// Leaderboard returns the best results for date: highest score first,
// then fewest hints, then earliest finish.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, points - penalty AS score, moves, hints
		FROM daily_results
		WHERE date=?
		ORDER BY score DESC, hints ASC, created_at ASC
		LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]LBRow, 0, limit)
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.UserID, &r.Score, &r.Moves, &r.Hints); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
