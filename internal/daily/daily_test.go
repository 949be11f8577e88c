package daily

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonkhler/lexigon/internal/database"
	"github.com/jonkhler/lexigon/internal/game"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2026, 10, 19, 23, 30, 0, 0, time.FixedZone("X", -2*3600))
	assert.Equal(t, "2026-10-20", DateKey(ts))
}

func TestSeedIsStablePerDay(t *testing.T) {
	morning := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 10, 19, 22, 0, 0, 0, time.UTC)
	tomorrow := morning.Add(24 * time.Hour)

	assert.Equal(t, Seed(morning, "salt"), Seed(evening, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(tomorrow, "salt"))
	assert.NotEqual(t, Seed(morning, "salt"), Seed(morning, "pepper"))
}

func TestPuzzleIsShared(t *testing.T) {
	wl, err := game.NewWordlist([]string{"trading", "pointed", "planets", "stormed", "clothes"})
	require.NoError(t, err)
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	a, _ := Puzzle(day, "salt", wl)
	b, _ := Puzzle(day, "salt", wl)
	assert.Equal(t, a.String(), b.String())
}

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(database.MemoryDSN)
	require.NoError(t, err)
	defer db.Close()
	st := NewStore(db)

	date := "2026-10-19"
	played, err := st.AlreadyPlayed(ctx, "ann", date)
	require.NoError(t, err)
	assert.False(t, played)

	require.NoError(t, st.InsertResult(ctx, Result{UserID: "ann", Date: date, Letters: "g[tradin]", Moves: 3, Points: 20, Penalty: 3, Hints: 2}))
	require.NoError(t, st.InsertResult(ctx, Result{UserID: "bob", Date: date, Letters: "g[tradin]", Moves: 4, Points: 17, Penalty: 0, Hints: 0}))
	require.NoError(t, st.InsertResult(ctx, Result{UserID: "cat", Date: date, Letters: "g[tradin]", Moves: 2, Points: 22, Penalty: 0, Hints: 0}))
	// a second result for the same day is ignored
	require.NoError(t, st.InsertResult(ctx, Result{UserID: "ann", Date: date, Letters: "g[tradin]", Moves: 9, Points: 50}))

	played, err = st.AlreadyPlayed(ctx, "ann", date)
	require.NoError(t, err)
	assert.True(t, played)

	rows, err := st.Leaderboard(ctx, date, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "cat", rows[0].UserID)
	assert.Equal(t, 22, rows[0].Score)
	assert.Equal(t, "bob", rows[1].UserID, "ties break on fewer hints")
	assert.Equal(t, "ann", rows[2].UserID)
	assert.Equal(t, 17, rows[2].Score)
}
