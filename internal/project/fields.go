package project

import "strings"

// FieldID identifies one editable form control.
type FieldID int

const (
	FieldProjectName FieldID = iota
	FieldProjectDescription
	FieldImagesDir
	FieldAudioDir
	FieldOutputDir
	FieldSpecialPhoto
	FieldResolution
	FieldFPS
	FieldCRF
	FieldPreset
	FieldOpeningPart1
	FieldOpeningPart2
	FieldDurationPerImage
	FieldClosingMinDuration
	FieldTransitionDuration
	FieldGentleWeight
	FieldDynamicWeight
	FieldArtisticWeight
	FieldKenBurnsRate
	FieldColorGrading
	FieldAudioFadeIn
	FieldAudioFadeOut
	FieldParticlesEnabled
	FieldParticleType
	FieldParticleSize
	FieldParticleDensity
	FieldParticleRate
	FieldParticlesOnOpening
	FieldParticlesOnClosing
	FieldOpeningTextEnabled
	FieldOpeningText
	FieldClosingTextEnabled
	FieldClosingText
	FieldClosingSubtitle1
	FieldClosingSubtitle2

	fieldCount // sentinel, keep last
)

// FieldSpec describes a form control: where it lives in the form, the
// document key path it maps to, and whether it must be filled before
// submission.
type FieldSpec struct {
	ID       FieldID
	Label    string
	KeyPath  string
	Tab      Tab
	Required bool
}

// Token returns the highlight token for the field: the last segment of
// its key path followed by a colon. Several fields share a token
// ("preset:", "enabled:", "fade_in:"); the highlighter lights every
// occurrence, which keeps the mapping simple at the cost of occasional
// extra highlights.
func (f FieldSpec) Token() string {
	path := f.KeyPath
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	return path + ":"
}

var fieldSpecs = []FieldSpec{
	{FieldProjectName, "Project name", "project.name", TabProject, false},
	{FieldProjectDescription, "Description", "project.description", TabProject, false},

	{FieldImagesDir, "Images folder", "paths.images_dir", TabPaths, true},
	{FieldAudioDir, "Audio folder", "paths.audio_dir", TabPaths, true},
	{FieldOutputDir, "Output folder", "paths.output_file", TabPaths, true},
	{FieldSpecialPhoto, "Opening/closing photo", "special_images.opening_closing", TabPaths, true},

	{FieldResolution, "Resolution", "video_settings.resolution", TabVideo, false},
	{FieldFPS, "Frame rate", "video_settings.fps", TabVideo, false},
	{FieldCRF, "Quality (CRF)", "video_settings.crf", TabVideo, false},
	{FieldPreset, "Encoder preset", "video_settings.preset", TabVideo, false},

	{FieldOpeningPart1, "Opening part 1", "sequences.opening.part1_duration", TabSequences, false},
	{FieldOpeningPart2, "Opening part 2", "sequences.opening.part2_duration", TabSequences, false},
	{FieldDurationPerImage, "Seconds per image", "sequences.images.duration_per_image", TabSequences, false},
	{FieldClosingMinDuration, "Closing minimum", "sequences.closing.min_duration", TabSequences, false},

	{FieldTransitionDuration, "Transition length", "style.transitions.duration", TabStyle, false},
	{FieldGentleWeight, "Gentle %", "style.transitions.weights", TabStyle, false},
	{FieldDynamicWeight, "Dynamic %", "style.transitions.weights", TabStyle, false},
	{FieldArtisticWeight, "Artistic %", "style.transitions.weights", TabStyle, false},
	{FieldKenBurnsRate, "Ken Burns rate", "style.ken_burns.application_rate", TabStyle, false},
	{FieldColorGrading, "Color grading", "style.color_grading.preset", TabStyle, false},
	{FieldAudioFadeIn, "Audio fade in", "style.audio.fade_in", TabStyle, false},
	{FieldAudioFadeOut, "Audio fade out", "style.audio.fade_out", TabStyle, false},
	{FieldParticlesEnabled, "Particles", "style.particle_overlays.enabled", TabStyle, false},
	{FieldParticleType, "Particle type", "style.particle_overlays.type", TabStyle, false},
	{FieldParticleSize, "Particle size", "style.particle_overlays.size", TabStyle, false},
	{FieldParticleDensity, "Particle density", "style.particle_overlays.density", TabStyle, false},
	{FieldParticleRate, "Particle rate", "style.particle_overlays.application_rate", TabStyle, false},
	{FieldParticlesOnOpening, "Particles on opening", "style.particle_overlays.apply_to_opening", TabStyle, false},
	{FieldParticlesOnClosing, "Particles on closing", "style.particle_overlays.apply_to_closing", TabStyle, false},

	{FieldOpeningTextEnabled, "Opening text", "text_overlays.opening.enabled", TabText, false},
	{FieldOpeningText, "Opening message", "text_overlays.opening.main.text", TabText, false},
	{FieldClosingTextEnabled, "Closing text", "text_overlays.closing.enabled", TabText, false},
	{FieldClosingText, "Closing message", "text_overlays.closing.main.text", TabText, false},
	{FieldClosingSubtitle1, "Closing subtitle 1", "text_overlays.closing.subtitles", TabText, false},
	{FieldClosingSubtitle2, "Closing subtitle 2", "text_overlays.closing.subtitles", TabText, false},
}

// Fields returns the full field registry in form order.
func Fields() []FieldSpec {
	return fieldSpecs
}

// FieldByID looks up a field spec. It panics on an unknown ID since the
// registry is static and complete.
func FieldByID(id FieldID) FieldSpec {
	for _, f := range fieldSpecs {
		if f.ID == id {
			return f
		}
	}
	panic("project: unknown field id")
}

// RequiredFields returns the fields that must be non-empty before a
// document can be generated.
func RequiredFields() []FieldSpec {
	var req []FieldSpec
	for _, f := range fieldSpecs {
		if f.Required {
			req = append(req, f)
		}
	}
	return req
}

// FieldsForTab returns the fields shown on the given tab, in order.
func FieldsForTab(tab Tab) []FieldSpec {
	var out []FieldSpec
	for _, f := range fieldSpecs {
		if f.Tab == tab {
			out = append(out, f)
		}
	}
	return out
}

// FieldValue extracts the raw string value of a field from the form
// state. Numeric and boolean controls render through their form widgets;
// the validator only needs the text-backed fields, which are the ones
// returned non-empty here.
func FieldValue(s FormState, id FieldID) string {
	switch id {
	case FieldProjectName:
		return s.ProjectName
	case FieldProjectDescription:
		return s.ProjectDescription
	case FieldImagesDir:
		return s.ImagesDir
	case FieldAudioDir:
		return s.AudioDir
	case FieldOutputDir:
		return s.OutputDir
	case FieldSpecialPhoto:
		return s.SpecialPhoto
	case FieldOpeningText:
		return s.OpeningText
	case FieldClosingText:
		return s.ClosingText
	case FieldClosingSubtitle1:
		return s.ClosingSubtitle1
	case FieldClosingSubtitle2:
		return s.ClosingSubtitle2
	default:
		return ""
	}
}
