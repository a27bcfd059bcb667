package server

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/logging"
	"go.uber.org/zap"
)

// GenerateTimeout bounds one renderer run. Long slideshows with many
// transitions can take most of an hour on slow machines.
const GenerateTimeout = time.Hour

// Output markers the renderer prints; the lines after the colon carry
// the produced file paths.
const (
	outputFileMarker = "Output file:"
	logFileMarker    = "Log file:"
)

// Runner invokes the external renderer and relays its output lines to
// stream subscribers.
type Runner struct {
	// Command is the renderer executable name or path
	Command string

	mu          sync.Mutex
	subscribers map[chan api.StreamLine]struct{}
	running     bool
}

// NewRunner creates a runner for the given renderer command
func NewRunner(command string) *Runner {
	return &Runner{
		Command:     command,
		subscribers: make(map[chan api.StreamLine]struct{}),
	}
}

// Subscribe registers a channel to receive renderer output lines.
// The channel is never closed by the runner; call Unsubscribe when done.
func (r *Runner) Subscribe() chan api.StreamLine {
	ch := make(chan api.StreamLine, 64)
	r.mu.Lock()
	r.subscribers[ch] = struct{}{}
	r.mu.Unlock()
	return ch
}

// Unsubscribe removes a previously subscribed channel
func (r *Runner) Unsubscribe(ch chan api.StreamLine) {
	r.mu.Lock()
	delete(r.subscribers, ch)
	r.mu.Unlock()
}

// Busy reports whether a render is currently in progress
func (r *Runner) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) setRunning(v bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v && r.running {
		return false
	}
	r.running = v
	return true
}

// publish fans one output line out to all subscribers. Slow subscribers
// drop lines rather than stall the renderer pipe.
func (r *Runner) publish(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for ch := range r.subscribers {
		select {
		case ch <- api.StreamLine{Line: line}:
		default:
		}
	}
}

// RunResult carries the file paths scraped from the renderer's output
type RunResult struct {
	OutputFile string
	LogFile    string
}

// Run executes the renderer for the given config file and blocks until
// it exits. Only one render runs at a time; a second call while one is
// in progress fails immediately.
func (r *Runner) Run(ctx context.Context, configPath string) (*RunResult, error) {
	if !r.setRunning(true) {
		return nil, fmt.Errorf("a generation is already in progress")
	}
	defer r.setRunning(false)

	ctx, cancel := context.WithTimeout(ctx, GenerateTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.Command, "--config", configPath)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open renderer stdout: %w", err)
	}
	cmd.Stderr = cmd.Stdout

	logging.Info("starting renderer",
		zap.String("command", r.Command),
		zap.String("config", configPath),
	)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start renderer %q: %w", r.Command, err)
	}

	result := &RunResult{}
	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		r.publish(line)

		if v, ok := markerValue(line, outputFileMarker); ok {
			result.OutputFile = v
		}
		if v, ok := markerValue(line, logFileMarker); ok {
			result.LogFile = v
		}
	}

	if err := cmd.Wait(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("renderer timed out after %s", GenerateTimeout)
		}
		return nil, fmt.Errorf("renderer failed: %w", err)
	}
	return result, nil
}

func markerValue(line, marker string) (string, bool) {
	i := strings.Index(line, marker)
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(line[i+len(marker):]), true
}
