package preview

import (
	"strings"
	"testing"
)

const sampleDoc = `# Slideshow video configuration

project:
  name: "Wedding"
  description: ""

video_settings:
  preset: "slow"

style:
  color_grading:
    preset: "warm"`

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want LineClass
	}{
		{"# a comment", LineComment},
		{"  # indented comment", LineComment},
		{"project:", LineKeyValue},
		{`  name: "Wedding"`, LineKeyValue},
		{"", LinePlain},
		{"plain text", LinePlain},
	}
	for _, tt := range tests {
		if got := Classify(tt.line); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestFirstMatch(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"simple key", "name:", 3},
		{"shared token finds first", "preset:", 7},
		{"missing token", "nonexistent:", -1},
		{"empty token", "", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstMatch(sampleDoc, tt.token); got != tt.want {
				t.Errorf("FirstMatch(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestRenderHighlightsAllOccurrences(t *testing.T) {
	out := Render(sampleDoc, "preset:")
	highlighted := 0
	for _, line := range strings.Split(out, "\n") {
		if line != "" && strings.Contains(line, "preset:") {
			highlighted++
		}
	}
	if highlighted != 2 {
		t.Errorf("highlighted %d preset lines, want 2", highlighted)
	}
}

func TestRenderKeepsLineCount(t *testing.T) {
	in := strings.Count(sampleDoc, "\n")
	out := strings.Count(Render(sampleDoc, "name:"), "\n")
	if in != out {
		t.Errorf("line count changed: %d -> %d", in, out)
	}
}

func TestScrollOffset(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		if i == 60 {
			b.WriteString("target: 1\n")
			continue
		}
		b.WriteString("filler: 0\n")
	}
	doc := strings.TrimRight(b.String(), "\n")

	tests := []struct {
		name   string
		token  string
		height int
		want   int
	}{
		{"centered", "target:", 20, 50},
		{"match near top clamps to zero", "filler:", 20, 0},
		{"no match", "absent:", 20, 0},
		{"zero height", "target:", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ScrollOffset(doc, tt.token, tt.height); got != tt.want {
				t.Errorf("ScrollOffset(%q, %d) = %d, want %d", tt.token, tt.height, got, tt.want)
			}
		})
	}
}
