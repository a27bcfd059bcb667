package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/discovery"
	"github.com/slidecraft/slidecraft/internal/logging"
	"github.com/slidecraft/slidecraft/internal/project"
	"github.com/slidecraft/slidecraft/internal/tui"
)

// Backend selection flags (persistent on root)
var (
	backendURL   string
	autoDiscover bool
	scanTimeout  int
)

// Render command flags
var (
	renderOutputDir string
	renderFilename  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL (e.g. http://192.168.1.20:5000)")
	rootCmd.PersistentFlags().BoolVar(&autoDiscover, "discover", false, "Locate the backend via mDNS instead of the configured URL")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(logsCmd)
}

// resolveClient builds a backend client from the --backend flag, mDNS
// discovery, or the saved settings, in that order of preference.
func resolveClient(ctx context.Context, settings *config.Settings) (*backend.Client, error) {
	if backendURL != "" {
		return backend.NewClient(backendURL), nil
	}

	if autoDiscover {
		scanner := discovery.NewScanner()
		if scanTimeout > 0 {
			scanner.Timeout = time.Duration(scanTimeout) * time.Second
		}
		found, err := scanner.First(ctx)
		if err != nil {
			return nil, fmt.Errorf("backend discovery failed: %w", err)
		}
		fmt.Printf("Found backend: %s (%s)\n", found.Name, found.URL())
		return backend.NewClient(found.URL()), nil
	}

	return backend.NewClient(settings.BackendURL()), nil
}

func runBuilder(cmd *cobra.Command, args []string) error {
	if err := logging.InitializeFromEnv(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logging.Sync()

	if !tui.IsInteractive() {
		return fmt.Errorf("the builder requires an interactive terminal; see 'slidecraft --help' for non-interactive commands")
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client, err := resolveClient(cmd.Context(), settings)
	if err != nil {
		return err
	}

	// An optional document argument pre-fills the form
	var initial *project.ParseResult
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		parsed, err := project.ParseDocument(data)
		if err != nil {
			return fmt.Errorf("document is not valid YAML: %w", err)
		}
		initial = &parsed
	}

	return tui.Run(client, settings, initial)
}

// scanCmd discovers generation backends on the network
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan for generation backends on the network",
	Long: `Scan for slidecraft backends using mDNS/DNS-SD discovery.

This command listens for mDNS broadcasts from backend servers started with
--announce and displays all discovered backends with their addresses.`,
	Example: `  # Scan for 5 seconds (default)
  slidecraft scan

  # Longer scan for slower networks
  slidecraft scan --timeout 15`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 5, "Scan timeout in seconds")
}

func runScan(cmd *cobra.Command, args []string) error {
	fmt.Printf("Scanning for generation backends (timeout: %ds)...\n\n", scanTimeout)

	scanner := discovery.NewScanner()
	scanner.Timeout = time.Duration(scanTimeout) * time.Second

	backends, err := scanner.Scan(cmd.Context())
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if len(backends) == 0 {
		fmt.Println("No backends found.")
		fmt.Println("\nTroubleshooting:")
		fmt.Println("  - Ensure the backend was started with --announce")
		fmt.Println("  - Check that both machines are on the same network")
		fmt.Println("  - Try increasing --timeout for slower networks")
		fmt.Println("  - Use --backend to specify the URL manually if discovery fails")
		return nil
	}

	fmt.Printf("Found %d backend(s):\n\n", len(backends))
	for i, b := range backends {
		fmt.Printf("%d. %s\n", i+1, b.Name)
		fmt.Printf("   URL: %s\n", b.URL())
		fmt.Println()
	}

	fmt.Println("Use 'slidecraft --backend <url>' to build against a specific backend")

	return nil
}

// validateCmd validates a configuration document
var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a configuration document",
	Long: `Validate a slideshow configuration document.

The document is parsed locally for structural problems, then submitted to
the backend so the referenced folders and files can be verified on the
machine that will render the video. When no backend is reachable, only the
local checks run.`,
	Example: `  # Validate against the configured backend
  slidecraft validate slideshow.yaml

  # Validate against a specific backend
  slidecraft validate slideshow.yaml --backend http://192.168.1.20:5000`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	parsed, err := project.ParseDocument(data)
	if err != nil {
		return fmt.Errorf("document is not valid YAML: %w", err)
	}

	for _, key := range parsed.Unrecognized {
		fmt.Printf("Warning: unrecognized setting %q\n", key)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client, err := resolveClient(cmd.Context(), settings)
	if err != nil {
		return err
	}

	resp, err := client.Validate(cmd.Context(), string(data))
	if err != nil {
		if backend.IsUnreachable(err) {
			fmt.Println("Backend unreachable; referenced paths were not verified.")
			fmt.Println("Document structure is valid.")
			return nil
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	for _, w := range resp.Warnings {
		fmt.Printf("Warning: %s\n", w)
	}
	if !resp.Valid {
		for _, e := range resp.Errors {
			fmt.Printf("Error: %s\n", e)
		}
		return fmt.Errorf("document has %d problem(s)", len(resp.Errors))
	}

	fmt.Println("✓ Document is valid")
	return nil
}

// renderCmd submits an existing document for generation
var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a slideshow from an existing document",
	Long: `Submit an existing configuration document to the backend for rendering.

Renderer output is streamed to the terminal while the job runs. When the
backend cannot be reached, the command prints the renderer invocation to
run manually on the backend machine.`,
	Example: `  # Render with the configured backend
  slidecraft render slideshow.yaml

  # Render and place the config in a specific directory on the backend
  slidecraft render slideshow.yaml --output-dir D:/Videos/Summer`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderOutputDir, "output-dir", "", "Directory on the backend where the config file is written")
	renderCmd.Flags().StringVar(&renderFilename, "filename", "", "Config filename on the backend (defaults to the local name)")
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client, err := resolveClient(cmd.Context(), settings)
	if err != nil {
		return err
	}

	filename := renderFilename
	if filename == "" {
		filename = filepath.Base(strings.ReplaceAll(args[0], "\\", "/"))
	}

	req := api.GenerateRequest{
		DocumentContent: string(data),
		Filename:        filename,
		OutputDir:       renderOutputDir,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// Stream renderer output while the blocking generate call runs.
	streamCtx, cancelStream := context.WithCancel(ctx)
	defer cancelStream()

	lines := make(chan api.StreamLine, 64)
	streamErr := client.StreamLogs(streamCtx, lines)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for line := range lines {
			fmt.Println(line.Line)
		}
	}()

	fmt.Printf("Rendering %s...\n\n", filename)
	resp, err := client.Generate(ctx, req)

	cancelStream()
	<-done
	<-streamErr

	if err != nil {
		if backend.IsUnreachable(err) {
			fmt.Println("Backend unreachable. Run the renderer manually on the backend machine:")
			fmt.Printf("\n  %s\n", backend.FallbackCommand(settings.GeneratorCommand(), args[0]))
			return fmt.Errorf("generation could not be dispatched: %w", err)
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Println("\n✓ Slideshow rendered successfully")
	if resp.OutputFile != "" {
		fmt.Printf("  Video: %s\n", resp.OutputFile)
	}
	if resp.LogFile != "" {
		fmt.Printf("  Log:   %s\n", resp.LogFile)
	}
	if resp.ConfigPath != "" {
		fmt.Printf("  Config: %s\n", resp.ConfigPath)
	}

	return nil
}

// logsCmd tails the backend's renderer output stream
var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Tail the backend's renderer output",
	Long: `Stream renderer output lines from the backend over WebSocket.

Useful for watching a render that was dispatched from another terminal
or from the builder. The stream ends when the backend closes it; press
Ctrl+C to stop earlier.`,
	Example: `  # Tail the configured backend
  slidecraft logs

  # Tail a specific backend
  slidecraft logs --backend http://192.168.1.20:5000`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

func runLogs(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	client, err := resolveClient(cmd.Context(), settings)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	lines := make(chan api.StreamLine, 64)
	streamErr := client.StreamLogs(ctx, lines)
	for line := range lines {
		fmt.Println(line.Line)
	}
	if err := <-streamErr; err != nil && ctx.Err() == nil {
		return fmt.Errorf("log stream failed: %w", err)
	}
	return nil
}
