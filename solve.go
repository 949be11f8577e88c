package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonkhler/lexigon/internal/analysis"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "List every word of a puzzle",
	Long: `List every possible word of a puzzle with its points.

The letters are given mandatory letter first:
  lexigon solve --letters gtradin
  lexigon solve --letters gtradin --format yaml`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().String("letters", "", "mandatory letter followed by the six optional ones")
	solveCmd.Flags().String("format", "text", "text | yaml")
	_ = solveCmd.MarkFlagRequired("letters")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	letters, _ := cmd.Flags().GetString("letters")
	format, _ := cmd.Flags().GetString("format")

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	_, wl := catalog.Default(wordlistFlag())
	lx, err := analysis.ParseLetters(letters, wl)
	if err != nil {
		return err
	}
	report := analysis.Solve(lx)
	out := cmd.OutOrStdout()

	switch format {
	case "yaml":
		return writeYAML(out, report)
	case "text":
		fmt.Fprintf(out, "%s\n\n", report.Letters)
		for _, w := range report.Words {
			fmt.Fprintf(out, "  %-16s %3d\n", w.Word, w.Points)
		}
		fmt.Fprintf(out, "\n%d words, %d points (target %d)\n", len(report.Words), report.MaxPoints, report.Target)
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
