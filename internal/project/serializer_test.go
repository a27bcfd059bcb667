package project

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestSerializeSectionOrder(t *testing.T) {
	doc := Serialize(ReadConfig(NewFormState()))

	sections := []string{
		"project:", "paths:", "special_images:", "video_settings:",
		"sequences:", "style:", "text_overlays:",
	}
	last := -1
	for _, sec := range sections {
		i := strings.Index(doc, "\n"+sec)
		if i < 0 {
			t.Fatalf("section %q missing", sec)
		}
		if i < last {
			t.Errorf("section %q out of order", sec)
		}
		last = i
	}
}

func TestSerializeFullForm(t *testing.T) {
	s := NewFormState()
	s.ProjectName = "Wedding"
	s.ImagesDir = `C:\Photos`
	s.AudioDir = `C:\Music`
	s.OutputDir = `C:\Out`
	s.SpecialPhoto = "hero.jpg"

	doc := Serialize(ReadConfig(s))

	want := []string{
		`  name: "Wedding"`,
		`  images_dir: "C:/Photos"`,
		`  audio_dir: "C:/Music"`,
		`  output_file: "C:/Out/Wedding.mp4"`,
		`  preview_file: "C:/Out/Wedding_preview.mp4"`,
		`  opening_closing: "hero.jpg"`,
		`  resolution: [1920, 1080]`,
		`  fps: 30`,
		`  crf: 18`,
		`  preset: "slow"`,
		`    weights: [0.7, 0.2, 0.1]`,
		`    categories: ["gentle", "dynamic", "artistic"]`,
		`    application_rate: 0.65`,
		`      text: "Welcome"`,
		`      fontsize: 80`,
		`      fontcolor: "white"`,
		`      text: "Thank You"`,
		`      fontsize: 90`,
		`      fontcolor: "gold"`,
		`      y: 0.75`,
	}
	for _, line := range want {
		if !strings.Contains(doc, line+"\n") {
			t.Errorf("document missing line %q", line)
		}
	}
}

func TestSerializeDisabledParticles(t *testing.T) {
	doc := Serialize(ReadConfig(NewFormState()))
	if !strings.Contains(doc, "  particle_overlays:\n    enabled: false\n") {
		t.Error("disabled particles should emit only the enabled flag")
	}
	if strings.Contains(doc, "density:") {
		t.Error("disabled particles should not emit density")
	}
}

func TestSerializeEnabledParticles(t *testing.T) {
	s := NewFormState()
	s.ParticlesEnabled = true
	doc := Serialize(ReadConfig(s))

	for _, line := range []string{
		`    type: "random"`,
		`    size: "medium"`,
		`    density: 0.5`,
		`    application_rate: 0.7`,
		`    apply_to_opening: true`,
		`    apply_to_closing: true`,
	} {
		if !strings.Contains(doc, line+"\n") {
			t.Errorf("document missing line %q", line)
		}
	}
}

func TestSerializeDisabledOverlay(t *testing.T) {
	s := NewFormState()
	s.OpeningTextEnabled = false
	doc := Serialize(ReadConfig(s))

	i := strings.Index(doc, "  opening:\n    enabled: false\n")
	if i < 0 {
		t.Fatal("disabled opening overlay not emitted")
	}
	rest := doc[i:]
	j := strings.Index(rest, "  closing:")
	if j < 0 {
		t.Fatal("closing overlay missing")
	}
	if strings.Contains(rest[:j], "main:") {
		t.Error("disabled overlay should carry nothing but the enabled flag")
	}
}

func TestSerializeSubtitles(t *testing.T) {
	s := NewFormState()
	s.ClosingSubtitle1 = "June 2026"
	doc := Serialize(ReadConfig(s))

	if !strings.Contains(doc, `      - text: "June 2026"`+"\n") {
		t.Error("subtitle entry missing")
	}
	if !strings.Contains(doc, "        fontsize: 52\n") {
		t.Error("subtitle slot 1 size missing")
	}
	if !strings.Contains(doc, "          y_offset: 50\n") {
		t.Error("subtitle slot 1 offset missing")
	}
}

func TestSerializeIsValidYAML(t *testing.T) {
	s := NewFormState()
	s.ProjectName = "Wedding"
	s.ImagesDir = `C:\Photos`
	s.AudioDir = `C:\Music`
	s.OutputDir = `C:\Out`
	s.SpecialPhoto = "hero.jpg"
	s.ParticlesEnabled = true
	s.ClosingSubtitle1 = "June 2026"
	s.ClosingSubtitle2 = "See you soon"

	var m map[string]any
	if err := yaml.Unmarshal([]byte(Serialize(ReadConfig(s))), &m); err != nil {
		t.Fatalf("document is not valid YAML: %v", err)
	}
	for _, sec := range []string{"project", "paths", "special_images", "video_settings", "sequences", "style", "text_overlays"} {
		if _, ok := m[sec]; !ok {
			t.Errorf("section %q missing after parse", sec)
		}
	}
}

func TestSerializeDeterministic(t *testing.T) {
	s := NewFormState()
	s.ProjectName = "Trip"
	a := Serialize(ReadConfig(s))
	b := Serialize(ReadConfig(s))
	if a != b {
		t.Error("serialization is not deterministic")
	}
}
