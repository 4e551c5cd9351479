package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scolor/internal/config"
)

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Show the round duration for each score",
	Long: `Prints how long a round lasts at each score, from a new game
down to the score where rounds stop getting shorter.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		writeCurve(cmd.OutOrStdout(), cfg.Curve())
		return nil
	},
}

// writeCurve prints one row per score up to the curve's floor.
func writeCurve(w io.Writer, curve config.Curve) {
	fmt.Fprintf(w, "  %5s  %s\n", "Score", "Round")
	fmt.Fprintf(w, "  %5s  %s\n", "-----", "-----")

	floor := curve.FloorScore()
	for score := 0; score <= floor; score++ {
		suffix := ""
		if score == floor {
			suffix = " (fastest)"
		}
		fmt.Fprintf(w, "  %5d  %d ms%s\n", score, curve.RoundMillis(score), suffix)
	}
}
