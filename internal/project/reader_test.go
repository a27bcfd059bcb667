package project

import "testing"

func TestReadConfigDefaults(t *testing.T) {
	cfg := ReadConfig(NewFormState())

	if cfg.Project.Name != "My Slideshow" {
		t.Errorf("default name = %q", cfg.Project.Name)
	}
	if cfg.VideoSettings.Resolution != [2]int{1920, 1080} {
		t.Errorf("resolution = %v", cfg.VideoSettings.Resolution)
	}
	if cfg.Style.Transitions.Weights != [3]float64{0.7, 0.2, 0.1} {
		t.Errorf("weights = %v", cfg.Style.Transitions.Weights)
	}
	if cfg.Style.KenBurns.ApplicationRate != 0.65 {
		t.Errorf("ken burns rate = %v", cfg.Style.KenBurns.ApplicationRate)
	}
	if !cfg.TextOverlays.Opening.Enabled {
		t.Error("opening text should default to enabled")
	}
	if cfg.TextOverlays.Opening.Main.Text != "Welcome" {
		t.Errorf("opening text = %q", cfg.TextOverlays.Opening.Main.Text)
	}
	if cfg.TextOverlays.Closing.Main.Text != "Thank You" {
		t.Errorf("closing text = %q", cfg.TextOverlays.Closing.Main.Text)
	}
	if len(cfg.TextOverlays.Closing.Subtitles) != 0 {
		t.Errorf("empty subtitles should be omitted, got %d", len(cfg.TextOverlays.Closing.Subtitles))
	}
}

func TestReadConfigPaths(t *testing.T) {
	s := NewFormState()
	s.ProjectName = "Summer Trip"
	s.ImagesDir = `C:\Photos\Trip`
	s.AudioDir = `C:\Music`
	s.OutputDir = `C:\Out`
	s.SpecialPhoto = "hero.jpg"

	cfg := ReadConfig(s)
	if cfg.Paths.ImagesDir != "C:/Photos/Trip" {
		t.Errorf("images dir = %q", cfg.Paths.ImagesDir)
	}
	if cfg.Paths.OutputFile != "C:/Out/Summer_Trip.mp4" {
		t.Errorf("output file = %q", cfg.Paths.OutputFile)
	}
	if cfg.Paths.PreviewFile != "C:/Out/Summer_Trip_preview.mp4" {
		t.Errorf("preview file = %q", cfg.Paths.PreviewFile)
	}
}

func TestReadConfigDisabledOverlays(t *testing.T) {
	s := NewFormState()
	s.OpeningTextEnabled = false
	s.ClosingTextEnabled = false

	cfg := ReadConfig(s)
	if cfg.TextOverlays.Opening.Enabled || cfg.TextOverlays.Opening.Main != nil {
		t.Error("disabled opening overlay should carry no text block")
	}
	if cfg.TextOverlays.Closing.Enabled || cfg.TextOverlays.Closing.Main != nil {
		t.Error("disabled closing overlay should carry no text block")
	}
}

func TestReadConfigSubtitles(t *testing.T) {
	s := NewFormState()
	s.ClosingSubtitle2 = "See you soon"

	cfg := ReadConfig(s)
	subs := cfg.TextOverlays.Closing.Subtitles
	if len(subs) != 1 {
		t.Fatalf("subtitles = %d, want 1", len(subs))
	}
	// slot 2 keeps its own size and offset even when slot 1 is empty
	if subs[0].FontSize != 48 || subs[0].Position.YOffset != 110 {
		t.Errorf("subtitle slot 2 styling = size %d offset %d", subs[0].FontSize, subs[0].Position.YOffset)
	}
	if subs[0].Text != "See you soon" {
		t.Errorf("subtitle text = %q", subs[0].Text)
	}
}

func TestReadConfigTextShapingAlwaysOn(t *testing.T) {
	s := NewFormState()
	s.OpeningText = "Welcome everyone"
	s.ClosingText = "תודה רבה"

	cfg := ReadConfig(s)
	if cfg.TextOverlays.Opening.Main.TextShaping != TextShapingOn {
		t.Error("latin opening text should still emit shaping on")
	}
	if cfg.TextOverlays.Closing.Main.TextShaping != TextShapingOn {
		t.Error("hebrew closing text should emit shaping on")
	}
}

func TestReadConfigIsPure(t *testing.T) {
	s := NewFormState()
	s.ProjectName = "Wedding"
	s.ImagesDir = `C:\Photos`

	a := ReadConfig(s)
	b := ReadConfig(s)
	if Serialize(a) != Serialize(b) {
		t.Error("same form state should produce identical configs")
	}
}
