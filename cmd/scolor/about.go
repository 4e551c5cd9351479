package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show credits",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprint(cmd.OutOrStdout(), aboutText(info))
	},
}

const teaModule = "github.com/charmbracelet/bubbletea"

// aboutText builds the credits banner. info may be nil.
func aboutText(info *debug.BuildInfo) string {
	teaVersion := "(unknown)"
	if info != nil {
		for _, dep := range info.Deps {
			if dep.Path == teaModule {
				teaVersion = dep.Version
				break
			}
		}
	}
	return fmt.Sprintf("Scølor game by Valentin Debon - 2018, terminal edition written with Bubble Tea %s\n"+
		"Built with %s\n", teaVersion, runtime.Version())
}
