// main.go
//
// Entry point for the lexigon command.
// Responsibilities:
//   - Load .env and bind LEXIGON_* environment variables and flags via viper.
//   - Configure the global zerolog level.
//   - Dispatch to the subcommands: serve, play, solve, survey.

package main

import (
	"os"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonkhler/lexigon/internal/game"
	"github.com/jonkhler/lexigon/internal/words"
)

var rootCmd = &cobra.Command{
	Use:   "lexigon",
	Short: "A seven-letter word puzzle",
	Long: `Lexigon is a word puzzle built from seven letters.

` + game.Rules + `

Run 'lexigon play' for the terminal game or 'lexigon serve' for the JSON API.
Every flag can also be set as LEXIGON_<FLAG> in the environment or a .env file.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("wordlists", "", "directory of <name>.txt word lists (default: embedded lists)")
	pf.String("wordlist", "english", "word list to start with")
	pf.String("log-level", "info", "debug | info | warn | error")
	pf.Bool("exact-duplicates", false, "count only whole words as found, not their prefixes")
	pf.Uint64("seed", 0, "random seed for puzzles and hints (0 = random)")

	bindFlags(rootCmd, map[string]string{
		"wordlists":        "wordlists",
		"wordlist":         "wordlist",
		"log_level":        "log-level",
		"exact_duplicates": "exact-duplicates",
		"seed":             "seed",
	}, true)
}

// bindFlags binds viper keys to the named flags of cmd.
func bindFlags(cmd *cobra.Command, keys map[string]string, persistent bool) {
	flags := cmd.Flags()
	if persistent {
		flags = cmd.PersistentFlags()
	}
	for key, flag := range keys {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func main() {
	_ = godotenv.Load()
	configureEnv()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configureEnv binds LEXIGON_* variables. The log level also honours the
// plain LOG_LEVEL used by other services.
func configureEnv() {
	viper.SetEnvPrefix("LEXIGON")
	viper.AutomaticEnv()
	if err := viper.BindEnv("log_level", "LEXIGON_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		panic(err)
	}
}

// setup applies settings shared by every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	lvl, err := zerolog.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		log.Warn().Err(err).Msg("unknown log level, using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// loadCatalog loads the configured word lists.
func loadCatalog() (*words.Catalog, error) {
	return words.Load(viper.GetString("wordlists"))
}

var seedCounter atomic.Uint64

// newRand returns a fresh random source. With a fixed seed, successive
// sources are seeded seed, seed+1, ... so runs are reproducible.
func newRand() game.Rand {
	seed := viper.GetUint64("seed")
	if seed == 0 {
		return game.NewCryptoRand()
	}
	return game.NewRand(seed + seedCounter.Add(1) - 1)
}

func wordlistFlag() string { return viper.GetString("wordlist") }

func gameOptions() []game.Option {
	return []game.Option{game.WithExactDuplicates(viper.GetBool("exact_duplicates"))}
}
