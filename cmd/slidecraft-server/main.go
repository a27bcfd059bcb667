// Slidecraft-server is the generation backend for the slidecraft builder.
//
// It exposes an HTTP API for filesystem browsing, document validation, and
// render job dispatch, plus a WebSocket endpoint that streams renderer
// output to connected builders. The server runs on the machine that holds
// the photos and the renderer; the builder connects to it over the network.
//
// Usage:
//
//	slidecraft-server serve [flags]
//
// See 'slidecraft-server serve --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/server"
	"github.com/slidecraft/slidecraft/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slidecraft-server",
	Short: "Slidecraft Generation Backend",
	Long: `The generation backend for the slidecraft builder.

Runs on the machine that holds the photos and the renderer. The builder
connects over HTTP to browse folders, validate documents, and dispatch
render jobs, and over WebSocket to stream renderer output.

Note: For building configurations, use the separate 'slidecraft' utility.`,
	Version: version.Version,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// Serve command and flags
var (
	listenAddr   string
	generatorCmd string
	workDir      string
	announce     bool
	announceName string
	logLevel     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the generation backend",
	Long: `Start the slidecraft generation backend.

The server accepts one render job at a time; a second generate request is
rejected while a render is running. With --announce the server registers
itself via mDNS so builders on the network can find it without
configuration.`,
	Example: `  # Start on the default address
  slidecraft-server serve

  # Listen on all interfaces and announce via mDNS
  slidecraft-server serve --listen 0.0.0.0:5000 --announce

  # Use a custom renderer and work directory
  slidecraft-server serve --generator /opt/render/slideshow --workdir /tmp/slidecraft`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", config.DefaultListenAddr, "Address to listen on")
	serveCmd.Flags().StringVar(&generatorCmd, "generator", config.DefaultGeneratorCommand, "Renderer command invoked for generate requests")
	serveCmd.Flags().StringVar(&workDir, "workdir", "", "Directory for config files when a request has no output dir (defaults to the system temp dir)")
	serveCmd.Flags().BoolVar(&announce, "announce", false, "Announce the server via mDNS")
	serveCmd.Flags().StringVar(&announceName, "announce-name", "", "mDNS instance name (defaults to the hostname)")
	serveCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if workDir != "" {
		info, err := os.Stat(workDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("work directory does not exist: %s", workDir)
		}
		if err != nil {
			return fmt.Errorf("cannot access work directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("work path is not a directory: %s", workDir)
		}
	}

	cfg := &server.Config{
		ListenAddr:       listenAddr,
		GeneratorCommand: generatorCmd,
		WorkDir:          workDir,
		Announce:         announce,
		AnnounceName:     announceName,
		LogLevel:         logLevel,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// Version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slidecraft-server %s (commit: %s)\n", version.Version, version.Commit)
	},
}
