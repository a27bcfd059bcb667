package server

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// fakeRenderer writes a shell script that prints renderer-style output.
func fakeRenderer(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-render")
	script := "#!/bin/sh\n" + body
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunnerScrapesMarkers(t *testing.T) {
	cmd := fakeRenderer(t, `
echo "Rendering 42 images"
echo "Output file: /out/Wedding.mp4"
echo "Log file: /out/wedding.log"
`)
	r := NewRunner(cmd)

	result, err := r.Run(context.Background(), "/tmp/wedding.yaml")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.OutputFile != "/out/Wedding.mp4" {
		t.Errorf("output file = %q", result.OutputFile)
	}
	if result.LogFile != "/out/wedding.log" {
		t.Errorf("log file = %q", result.LogFile)
	}
}

func TestRunnerPublishesLines(t *testing.T) {
	cmd := fakeRenderer(t, `
echo "line one"
echo "line two"
`)
	r := NewRunner(cmd)
	sub := r.Subscribe()
	defer r.Unsubscribe(sub)

	if _, err := r.Run(context.Background(), "/tmp/x.yaml"); err != nil {
		t.Fatalf("Run: %v", err)
	}

	var lines []string
	for len(lines) < 2 {
		select {
		case l := <-sub:
			lines = append(lines, l.Line)
		case <-time.After(time.Second):
			t.Fatalf("timed out, got %v", lines)
		}
	}
	if lines[0] != "line one" || lines[1] != "line two" {
		t.Errorf("lines = %v", lines)
	}
}

func TestRunnerFailure(t *testing.T) {
	cmd := fakeRenderer(t, `
echo "something broke"
exit 3
`)
	r := NewRunner(cmd)

	if _, err := r.Run(context.Background(), "/tmp/x.yaml"); err == nil {
		t.Fatal("expected error for failing renderer")
	}
}

func TestRunnerRejectsConcurrentRuns(t *testing.T) {
	r := NewRunner("slidecraft-render")
	if !r.setRunning(true) {
		t.Fatal("first run should acquire the slot")
	}
	if r.setRunning(true) {
		t.Error("second concurrent run should be rejected")
	}
	r.setRunning(false)
	if !r.setRunning(true) {
		t.Error("slot should be free again after release")
	}
}

func TestMarkerValue(t *testing.T) {
	tests := []struct {
		line   string
		marker string
		want   string
		ok     bool
	}{
		{"Output file: /out/a.mp4", "Output file:", "/out/a.mp4", true},
		{"  Output file:   /out/a.mp4  ", "Output file:", "/out/a.mp4", true},
		{"no marker here", "Output file:", "", false},
	}
	for _, tt := range tests {
		got, ok := markerValue(tt.line, tt.marker)
		if got != tt.want || ok != tt.ok {
			t.Errorf("markerValue(%q) = %q, %v", tt.line, got, ok)
		}
	}
}
