package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonkhler/lexigon/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Lexigon in the terminal.

Type letters to build a word, enter submits, ? buys a hint, tab switches the
word list, ctrl+r starts a new puzzle, backspace clears the word, esc quits.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// keep the screen clean: only warnings, and never on stdout
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if zerolog.GlobalLevel() < zerolog.WarnLevel {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		tui.New(catalog, viper.GetString("wordlist"), newRand(), gameOptions()...),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
