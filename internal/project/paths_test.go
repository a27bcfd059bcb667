package project

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows backslashes", `C:\Photos\Trip`, "C:/Photos/Trip"},
		{"already forward", "/home/user/photos", "/home/user/photos"},
		{"surrounding quotes", `"C:\Photos\Trip"`, "C:/Photos/Trip"},
		{"single quotes", `'/home/user/music'`, "/home/user/music"},
		{"whitespace", "  C:\\Out  ", "C:/Out"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.in); got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeProjectName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Summer Trip", "Summer_Trip"},
		{"Wedding", "Wedding"},
		{"a b\tc", "a_b_c"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeProjectName(tt.in); got != tt.want {
			t.Errorf("SanitizeProjectName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOutputFiles(t *testing.T) {
	out, preview := OutputFiles(`C:\Out\`, "Summer Trip")
	if out != "C:/Out/Summer_Trip.mp4" {
		t.Errorf("output file = %q", out)
	}
	if preview != "C:/Out/Summer_Trip_preview.mp4" {
		t.Errorf("preview file = %q", preview)
	}
}
