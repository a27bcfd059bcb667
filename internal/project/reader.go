package project

import "strings"

// Default overlay texts used when the corresponding input is blank.
const (
	defaultProjectName = "My Slideshow"
	defaultOpeningText = "Welcome"
	defaultClosingText = "Thank You"
)

// Fixed typography shared by all overlay blocks. The renderer reads the
// font path verbatim, so it stays in the source platform's notation.
const (
	overlayFont        = "C:/Windows/Fonts/arial.ttf"
	overlayShadowColor = "black@0.7"
)

// ReadConfig converts a form snapshot into a Config. It is pure: it
// touches no filesystem, network or clock, and the same FormState always
// produces the same Config.
func ReadConfig(s FormState) Config {
	name := strings.TrimSpace(s.ProjectName)
	if name == "" {
		name = defaultProjectName
	}
	outputFile, previewFile := OutputFiles(s.OutputDir, name)

	cfg := Config{
		Project: ProjectInfo{
			Name:        name,
			Description: strings.TrimSpace(s.ProjectDescription),
		},
		Paths: Paths{
			ImagesDir:   NormalizePath(s.ImagesDir),
			AudioDir:    NormalizePath(s.AudioDir),
			OutputFile:  outputFile,
			PreviewFile: previewFile,
		},
		SpecialImage: SpecialImage{
			Path: NormalizePath(s.SpecialPhoto),
		},
		VideoSettings: VideoSettings{
			Resolution: [2]int{s.ResolutionWidth, s.ResolutionHeight},
			FPS:        s.FPS,
			CRF:        s.CRF,
			Preset:     s.Preset,
		},
		Sequences: Sequences{
			Opening: OpeningTiming{
				Part1Duration: s.OpeningPart1Duration,
				Part2Duration: s.OpeningPart2Duration,
			},
			Images:  ImageTiming{DurationPerImage: s.DurationPerImage},
			Closing: ClosingTiming{MinDuration: s.ClosingMinDuration},
		},
		Style: Style{
			Transitions: Transitions{
				Duration:   s.TransitionDuration,
				Categories: [3]string{"gentle", "dynamic", "artistic"},
				Weights: [3]float64{
					float64(s.GentleWeight) / 100,
					float64(s.DynamicWeight) / 100,
					float64(s.ArtisticWeight) / 100,
				},
			},
			KenBurns:     KenBurns{ApplicationRate: float64(s.KenBurnsRate) / 100},
			ColorGrading: ColorGrading{Preset: s.ColorGradingPreset},
			Audio:        AudioFades{FadeIn: s.AudioFadeIn, FadeOut: s.AudioFadeOut},
			ParticleOverlays: ParticleOverlays{
				Enabled:         s.ParticlesEnabled,
				Type:            s.ParticleType,
				Size:            s.ParticleSize,
				Density:         float64(s.ParticleDensity) / 100,
				ApplicationRate: float64(s.ParticleRate) / 100,
				ApplyToOpening:  s.ParticlesOnOpening,
				ApplyToClosing:  s.ParticlesOnClosing,
			},
		},
		TextOverlays: TextOverlays{
			Opening: readOpeningOverlay(s),
			Closing: readClosingOverlay(s),
		},
	}
	return cfg
}

func readOpeningOverlay(s FormState) OverlayBlock {
	if !s.OpeningTextEnabled {
		return OverlayBlock{Enabled: false}
	}
	text := strings.TrimSpace(s.OpeningText)
	if text == "" {
		text = defaultOpeningText
	}
	return OverlayBlock{
		Enabled: true,
		Main: &TextBlock{
			Text:     text,
			Font:     overlayFont,
			FontSize: 80,
			Color:    "white",
			Position: Position{
				X: "(w-text_w)/2",
				Y: "810-text_h/2",
			},
			Shadow:      Shadow{Color: overlayShadowColor, X: 4, Y: 4},
			Effects:     Fades{FadeIn: 0.8, FadeOut: 0.8},
			TextShaping: textShapingFlag(text),
		},
	}
}

func readClosingOverlay(s FormState) OverlayBlock {
	if !s.ClosingTextEnabled {
		return OverlayBlock{Enabled: false}
	}
	text := strings.TrimSpace(s.ClosingText)
	if text == "" {
		text = defaultClosingText
	}
	block := OverlayBlock{
		Enabled: true,
		Main: &TextBlock{
			Text:     text,
			Font:     overlayFont,
			FontSize: 90,
			Color:    "gold",
			Position: Position{
				X:       "(w-text_w)/2",
				YOffset: -70,
			},
			Shadow:      Shadow{Color: overlayShadowColor, X: 4, Y: 4},
			Effects:     Fades{FadeIn: 1.2, FadeOut: 2.0},
			TextShaping: textShapingFlag(text),
		},
		BasePositionY: 0.75,
	}
	block.Subtitles = readClosingSubtitles(s)
	return block
}

func readClosingSubtitles(s FormState) []TextBlock {
	type slot struct {
		text    string
		size    int
		yOffset int
	}
	slots := []slot{
		{strings.TrimSpace(s.ClosingSubtitle1), 52, 50},
		{strings.TrimSpace(s.ClosingSubtitle2), 48, 110},
	}
	var subs []TextBlock
	for _, sl := range slots {
		if sl.text == "" {
			continue
		}
		subs = append(subs, TextBlock{
			Text:     sl.text,
			Font:     overlayFont,
			FontSize: sl.size,
			Color:    "white",
			Position: Position{
				X:       "(w-text_w)/2",
				YOffset: sl.yOffset,
			},
			Shadow:      Shadow{Color: overlayShadowColor, X: 4, Y: 4},
			Effects:     Fades{FadeIn: 1.2, FadeOut: 2.0},
			TextShaping: textShapingFlag(sl.text),
		})
	}
	return subs
}

// textShapingFlag runs Hebrew detection but always reports shaping on.
// The renderer accepts the flag for any script, so it stays pinned.
func textShapingFlag(text string) int {
	_ = RequiresTextShaping(text)
	return TextShapingOn
}
