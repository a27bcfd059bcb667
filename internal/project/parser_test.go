package project

import (
	"strings"
	"testing"
)

func fullFormState() FormState {
	s := NewFormState()
	s.ProjectName = "Wedding"
	s.ProjectDescription = "Our big day"
	s.ImagesDir = `C:\Photos`
	s.AudioDir = `C:\Music`
	s.OutputDir = `C:\Out`
	s.SpecialPhoto = "hero.jpg"
	s.ParticlesEnabled = true
	s.ClosingSubtitle1 = "June 2026"
	s.ClosingSubtitle2 = "See you soon"
	return s
}

func TestParseDocumentRoundTrip(t *testing.T) {
	s := fullFormState()
	doc := Serialize(ReadConfig(s))

	res, err := ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if len(res.Unrecognized) != 0 {
		t.Errorf("unexpected unrecognized keys: %v", res.Unrecognized)
	}

	restored := NewFormState()
	ApplyToForm(&restored, res)

	if restored.ProjectName != "Wedding" {
		t.Errorf("name = %q", restored.ProjectName)
	}
	if restored.ImagesDir != "C:/Photos" {
		t.Errorf("images dir = %q", restored.ImagesDir)
	}
	if restored.OutputDir != "C:/Out" {
		t.Errorf("output dir = %q", restored.OutputDir)
	}
	if restored.SpecialPhoto != "hero.jpg" {
		t.Errorf("special photo = %q", restored.SpecialPhoto)
	}
	if restored.ResolutionWidth != 1920 || restored.ResolutionHeight != 1080 {
		t.Errorf("resolution = %dx%d", restored.ResolutionWidth, restored.ResolutionHeight)
	}
	if restored.GentleWeight != 70 || restored.DynamicWeight != 20 || restored.ArtisticWeight != 10 {
		t.Errorf("weights = %d/%d/%d", restored.GentleWeight, restored.DynamicWeight, restored.ArtisticWeight)
	}
	if restored.KenBurnsRate != 65 {
		t.Errorf("ken burns rate = %d", restored.KenBurnsRate)
	}
	if !restored.ParticlesEnabled {
		t.Error("particles should be enabled")
	}
	if restored.ClosingSubtitle1 != "June 2026" || restored.ClosingSubtitle2 != "See you soon" {
		t.Errorf("subtitles = %q / %q", restored.ClosingSubtitle1, restored.ClosingSubtitle2)
	}
}

func TestParseDocumentUnrecognizedKeys(t *testing.T) {
	doc := Serialize(ReadConfig(fullFormState()))
	doc += "\ncustom_section:\n  knob: 3\n"

	res, err := ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	found := false
	for _, k := range res.Unrecognized {
		if strings.HasPrefix(k, "custom_section") {
			found = true
		}
	}
	if !found {
		t.Errorf("custom key not reported, unrecognized = %v", res.Unrecognized)
	}
}

func TestParseDocumentInvalidYAML(t *testing.T) {
	if _, err := ParseDocument([]byte("project:\n\tname: bad tab indent")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestParseDocumentPartial(t *testing.T) {
	doc := "project:\n  name: \"Minimal\"\npaths:\n  images_dir: \"/pics\"\n"
	res, err := ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	s := NewFormState()
	ApplyToForm(&s, res)
	if s.ProjectName != "Minimal" {
		t.Errorf("name = %q", s.ProjectName)
	}
	if s.ImagesDir != "/pics" {
		t.Errorf("images dir = %q", s.ImagesDir)
	}
	// untouched controls keep their defaults
	if s.FPS != 30 {
		t.Errorf("fps = %d", s.FPS)
	}
}

func TestParseDocumentBadValuesLeaveDefaults(t *testing.T) {
	doc := "video_settings:\n  fps: fast\n  resolution: [wide, tall]\n"
	res, err := ParseDocument([]byte(doc))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	s := NewFormState()
	ApplyToForm(&s, res)
	if s.FPS != 30 {
		t.Errorf("unparseable fps should keep default, got %d", s.FPS)
	}
	if s.ResolutionWidth != 1920 {
		t.Errorf("unparseable resolution should keep default, got %d", s.ResolutionWidth)
	}
}
