package project

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders the config as the renderer's YAML document. Section
// and key order is fixed so the preview is stable and diffs between two
// documents reflect real changes. Strings are double-quoted without
// escaping, which matches what the renderer accepts; values containing
// double quotes would produce a broken document, and the form never
// offers such inputs.
func Serialize(cfg Config) string {
	var b strings.Builder

	b.WriteString("# Slideshow video configuration\n")
	b.WriteString("# Generated by slidecraft\n\n")

	b.WriteString("project:\n")
	fmt.Fprintf(&b, "  name: %s\n", quote(cfg.Project.Name))
	fmt.Fprintf(&b, "  description: %s\n", quote(cfg.Project.Description))
	b.WriteString("  version: \"1.0\"\n\n")

	b.WriteString("paths:\n")
	fmt.Fprintf(&b, "  images_dir: %s\n", quote(cfg.Paths.ImagesDir))
	fmt.Fprintf(&b, "  audio_dir: %s\n", quote(cfg.Paths.AudioDir))
	fmt.Fprintf(&b, "  output_file: %s\n", quote(cfg.Paths.OutputFile))
	fmt.Fprintf(&b, "  preview_file: %s\n\n", quote(cfg.Paths.PreviewFile))

	b.WriteString("special_images:\n")
	fmt.Fprintf(&b, "  opening_closing: %s\n\n", quote(cfg.SpecialImage.Path))

	b.WriteString("video_settings:\n")
	fmt.Fprintf(&b, "  resolution: [%d, %d]\n", cfg.VideoSettings.Resolution[0], cfg.VideoSettings.Resolution[1])
	fmt.Fprintf(&b, "  fps: %d\n", cfg.VideoSettings.FPS)
	fmt.Fprintf(&b, "  crf: %d\n", cfg.VideoSettings.CRF)
	fmt.Fprintf(&b, "  preset: %s\n\n", quote(cfg.VideoSettings.Preset))

	b.WriteString("sequences:\n")
	b.WriteString("  opening:\n")
	fmt.Fprintf(&b, "    part1_duration: %s\n", num(cfg.Sequences.Opening.Part1Duration))
	fmt.Fprintf(&b, "    part2_duration: %s\n", num(cfg.Sequences.Opening.Part2Duration))
	b.WriteString("  images:\n")
	fmt.Fprintf(&b, "    duration_per_image: %s\n", num(cfg.Sequences.Images.DurationPerImage))
	b.WriteString("  closing:\n")
	fmt.Fprintf(&b, "    min_duration: %s\n\n", num(cfg.Sequences.Closing.MinDuration))

	b.WriteString("style:\n")
	b.WriteString("  transitions:\n")
	fmt.Fprintf(&b, "    duration: %s\n", num(cfg.Style.Transitions.Duration))
	fmt.Fprintf(&b, "    categories: [%s, %s, %s]\n",
		quote(cfg.Style.Transitions.Categories[0]),
		quote(cfg.Style.Transitions.Categories[1]),
		quote(cfg.Style.Transitions.Categories[2]))
	fmt.Fprintf(&b, "    weights: [%s, %s, %s]\n",
		num(cfg.Style.Transitions.Weights[0]),
		num(cfg.Style.Transitions.Weights[1]),
		num(cfg.Style.Transitions.Weights[2]))
	b.WriteString("  ken_burns:\n")
	fmt.Fprintf(&b, "    application_rate: %s\n", num(cfg.Style.KenBurns.ApplicationRate))
	b.WriteString("  color_grading:\n")
	fmt.Fprintf(&b, "    preset: %s\n", quote(cfg.Style.ColorGrading.Preset))
	b.WriteString("  audio:\n")
	fmt.Fprintf(&b, "    fade_in: %s\n", num(cfg.Style.Audio.FadeIn))
	fmt.Fprintf(&b, "    fade_out: %s\n", num(cfg.Style.Audio.FadeOut))
	b.WriteString("  particle_overlays:\n")
	p := cfg.Style.ParticleOverlays
	fmt.Fprintf(&b, "    enabled: %t\n", p.Enabled)
	if p.Enabled {
		fmt.Fprintf(&b, "    type: %s\n", quote(p.Type))
		fmt.Fprintf(&b, "    size: %s\n", quote(p.Size))
		fmt.Fprintf(&b, "    density: %s\n", num(p.Density))
		fmt.Fprintf(&b, "    application_rate: %s\n", num(p.ApplicationRate))
		fmt.Fprintf(&b, "    apply_to_opening: %t\n", p.ApplyToOpening)
		fmt.Fprintf(&b, "    apply_to_closing: %t\n", p.ApplyToClosing)
	}
	b.WriteString("\n")

	b.WriteString("text_overlays:\n")
	b.WriteString("  opening:\n")
	writeOverlay(&b, cfg.TextOverlays.Opening)
	b.WriteString("  closing:\n")
	writeOverlay(&b, cfg.TextOverlays.Closing)

	return b.String()
}

func writeOverlay(b *strings.Builder, ov OverlayBlock) {
	fmt.Fprintf(b, "    enabled: %t\n", ov.Enabled)
	if !ov.Enabled {
		return
	}
	if ov.Main != nil {
		b.WriteString("    main:\n")
		writeTextBlock(b, "      ", *ov.Main)
	}
	if len(ov.Subtitles) > 0 {
		b.WriteString("    subtitles:\n")
		for _, sub := range ov.Subtitles {
			writeListTextBlock(b, sub)
		}
	}
	if ov.BasePositionY != 0 {
		b.WriteString("    base_position:\n")
		fmt.Fprintf(b, "      y: %s\n", num(ov.BasePositionY))
	}
}

func writeTextBlock(b *strings.Builder, indent string, t TextBlock) {
	fmt.Fprintf(b, "%stext: %s\n", indent, quote(t.Text))
	fmt.Fprintf(b, "%sfont: %s\n", indent, quote(t.Font))
	fmt.Fprintf(b, "%sfontsize: %d\n", indent, t.FontSize)
	fmt.Fprintf(b, "%sfontcolor: %s\n", indent, quote(t.Color))
	b.WriteString(indent + "position:\n")
	fmt.Fprintf(b, "%s  x: %s\n", indent, quote(t.Position.X))
	if t.Position.Y != "" {
		fmt.Fprintf(b, "%s  y: %s\n", indent, quote(t.Position.Y))
	} else {
		fmt.Fprintf(b, "%s  y_offset: %d\n", indent, t.Position.YOffset)
	}
	b.WriteString(indent + "shadow:\n")
	fmt.Fprintf(b, "%s  color: %s\n", indent, quote(t.Shadow.Color))
	fmt.Fprintf(b, "%s  x: %d\n", indent, t.Shadow.X)
	fmt.Fprintf(b, "%s  y: %d\n", indent, t.Shadow.Y)
	b.WriteString(indent + "effects:\n")
	fmt.Fprintf(b, "%s  fade_in: %s\n", indent, num(t.Effects.FadeIn))
	fmt.Fprintf(b, "%s  fade_out: %s\n", indent, num(t.Effects.FadeOut))
	fmt.Fprintf(b, "%stext_shaping: %d\n", indent, t.TextShaping)
}

func writeListTextBlock(b *strings.Builder, t TextBlock) {
	fmt.Fprintf(b, "      - text: %s\n", quote(t.Text))
	fmt.Fprintf(b, "        font: %s\n", quote(t.Font))
	fmt.Fprintf(b, "        fontsize: %d\n", t.FontSize)
	fmt.Fprintf(b, "        fontcolor: %s\n", quote(t.Color))
	b.WriteString("        position:\n")
	fmt.Fprintf(b, "          x: %s\n", quote(t.Position.X))
	fmt.Fprintf(b, "          y_offset: %d\n", t.Position.YOffset)
	b.WriteString("        shadow:\n")
	fmt.Fprintf(b, "          color: %s\n", quote(t.Shadow.Color))
	fmt.Fprintf(b, "          x: %d\n", t.Shadow.X)
	fmt.Fprintf(b, "          y: %d\n", t.Shadow.Y)
	b.WriteString("        effects:\n")
	fmt.Fprintf(b, "          fade_in: %s\n", num(t.Effects.FadeIn))
	fmt.Fprintf(b, "          fade_out: %s\n", num(t.Effects.FadeOut))
	fmt.Fprintf(b, "        text_shaping: %d\n", t.TextShaping)
}

func quote(s string) string {
	return `"` + s + `"`
}

// num renders a float the shortest way that round-trips, so 0.7 prints
// as "0.7" and 3 prints as "3".
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
