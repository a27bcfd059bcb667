// Slidecraft is a terminal builder for slideshow video configurations.
//
// It provides an interactive form for assembling a render configuration,
// a live preview of the generated document, remote folder browsing
// through the generation backend, and one-key dispatch of render jobs.
// Rendering itself is performed by a separate backend server; see the
// 'slidecraft-server' binary.
//
// Usage:
//
//	slidecraft [command] [flags]
//
// Running without arguments launches the interactive builder.
// See 'slidecraft --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidecraft [file]",
	Short: "Slideshow Video Configuration Builder",
	Long: `A terminal builder for slideshow video configurations.

Provides an interactive form with live document preview, remote folder
browsing through the generation backend, and render job dispatch.

If no command is specified, the interactive builder will launch
automatically. Passing an existing configuration document pre-fills
the form with its settings.`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the builder when no subcommand provided
		return runBuilder(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slidecraft %s (commit: %s)\n", version.Version, version.Commit)
	},
}
