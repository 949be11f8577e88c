package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jonkhler/lexigon/internal/analysis"
	"github.com/jonkhler/lexigon/internal/game"
)

var surveyCmd = &cobra.Command{
	Use:   "survey",
	Short: "Max-points distribution of a word list",
	Long: `Evaluate every puzzle a word list can produce (each isogram with each
of its letters as the mandatory one) and summarize their max points.`,
	Args: cobra.NoArgs,
	RunE: runSurvey,
}

func init() {
	surveyCmd.Flags().String("format", "text", "text | yaml")
	surveyCmd.Flags().Bool("progress", true, "show a progress bar on stderr")
	rootCmd.AddCommand(surveyCmd)
}

func runSurvey(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	showProgress, _ := cmd.Flags().GetBool("progress")

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	name, wl := catalog.Default(wordlistFlag())

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(analysis.Puzzles(wl)), "surveying "+name)
	} else {
		bar = progressbar.DefaultSilent(int64(analysis.Puzzles(wl)))
	}
	summary, err := analysis.Survey(wl, func() { _ = bar.Add(1) })
	if err != nil {
		return err
	}
	_ = bar.Finish()

	out := cmd.OutOrStdout()
	switch format {
	case "yaml":
		return writeYAML(out, summary)
	case "text":
		fmt.Fprintf(out, "%s: %d puzzles from %d isograms\n", name, summary.Puzzles, len(wl.Isograms()))
		fmt.Fprintf(out, "max points  min %d  median %d  max %d\n", summary.Min, summary.Median, summary.Max)
		fmt.Fprintf(out, "capped at %d: %d\n\n", game.MaxPoints, summary.Capped)
		for _, b := range summary.Buckets {
			fmt.Fprintf(out, "  %3d-%-3d %6d\n", b.From, b.To, b.Count)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
