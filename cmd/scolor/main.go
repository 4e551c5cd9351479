// scolor is a reaction-time game for the terminal: pick the color of the
// bar before it reaches the bottom of the screen.
//
// Usage:
//
//	scolor           - Play
//	scolor curve     - Show the round duration for each score
//	scolor about     - Show credits
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible color sequences
//	--log-file <path>  - Write logs to a file (default: no logging)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scolor",
	Short: "Scølor - match the color before time runs out",
	Long: `Scølor is a reaction-time game played in the terminal.

A bar of one color grows over a background of another. Pick the bar's
color before it fills the screen. Every correct pick scores a point and
shortens the next round.

Controls:
  Left/H    - Yellow
  Down/J    - Magenta
  Right/L   - Green
  Mouse     - Click Play on the title screen, click to leave Game Over
  Q/Esc     - Quit

Examples:
  scolor
  scolor --seed 42
  scolor --log-file /tmp/scolor.log --debug
  scolor curve`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(curveCmd)
}
