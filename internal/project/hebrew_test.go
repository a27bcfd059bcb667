package project

import "testing"

func TestRequiresTextShaping(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"pure hebrew", "שלום עולם", true},
		{"pure latin", "Hello World", false},
		{"mostly hebrew with digits", "מזל טוב 2026", true},
		{"token of hebrew in latin", "Party at בית tonight with everyone", false},
		{"empty", "", false},
		{"whitespace only", "   \t ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RequiresTextShaping(tt.text); got != tt.want {
				t.Errorf("RequiresTextShaping(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
