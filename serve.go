package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonkhler/lexigon/internal/database"
	"github.com/jonkhler/lexigon/internal/game"
	"github.com/jonkhler/lexigon/internal/httpserver"
	"github.com/jonkhler/lexigon/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON API",
	Long: `Run the Lexigon JSON API.

Sessions live in memory. Finished puzzles, accounts and the daily
leaderboard go to SQLite; the default database is in-memory, so nothing
survives a restart unless --db names a file.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("port", "5175", "listen port")
	f.String("db", database.MemoryDSN, "SQLite DSN or file path")
	f.String("daily-salt", "local_dev_salt", "secret mixed into the daily puzzle seed")
	f.String("jwt-secret", "dev_secret_change_me", "HMAC secret for auth tokens")
	f.Int("jwt-expires-days", 14, "auth token lifetime in days")
	f.String("client-origin", "http://localhost:5173", "allowed CORS origin")
	f.Bool("production", false, "secure cookies for cross-site clients")

	bindFlags(serveCmd, map[string]string{
		"port":             "port",
		"db":               "db",
		"daily_salt":       "daily-salt",
		"jwt_secret":       "jwt-secret",
		"jwt_expires_days": "jwt-expires-days",
		"client_origin":    "client-origin",
		"production":       "production",
	}, false)
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	db, err := database.Open(viper.GetString("db"))
	if err != nil {
		return err
	}
	defer db.Close()

	srv := httpserver.New(store.NewMemoryStore(), db, catalog, httpserver.Config{
		DefaultWordlist: viper.GetString("wordlist"),
		DailySalt:       viper.GetString("daily_salt"),
		JWTSecret:       viper.GetString("jwt_secret"),
		JWTExpiresDays:  viper.GetInt("jwt_expires_days"),
		ClientOrigin:    viper.GetString("client_origin"),
		Production:      viper.GetBool("production"),
		ExactDuplicates: viper.GetBool("exact_duplicates"),
		NewRand:         func() game.Rand { return newRand() },
	})
	port := viper.GetString("port")
	log.Info().Str("port", port).Strs("wordlists", catalog.Names()).Msg("starting lexigon server")
	return srv.Start(":" + port)
}
