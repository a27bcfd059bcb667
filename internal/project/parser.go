package project

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseResult carries whatever could be recovered from a loaded document.
// Fields holds the recognized editable values keyed by form field;
// Unrecognized lists key paths the form has no control for, so the user
// can be warned that saving will drop them.
type ParseResult struct {
	Fields       map[FieldID]string
	Unrecognized []string
}

// fixedKeyPaths are document keys the serializer always emits with
// constant or derived values. They are recognized but carry nothing the
// form edits, so the parser skips them silently.
var fixedKeyPaths = map[string]bool{
	"project.version":    true,
	"paths.preview_file": true,

	"style.transitions.categories": true,

	"text_overlays.opening.main.font":      true,
	"text_overlays.opening.main.fontsize":  true,
	"text_overlays.opening.main.fontcolor": true,
	"text_overlays.closing.main.font":      true,
	"text_overlays.closing.main.fontsize":  true,
	"text_overlays.closing.main.fontcolor": true,

	"text_overlays.opening.base_position": true,
	"text_overlays.closing.base_position": true,
}

// fixedSubtreePrefixes cover nested blocks that are entirely fixed.
var fixedSubtreePrefixes = []string{
	"text_overlays.opening.main.position",
	"text_overlays.opening.main.shadow",
	"text_overlays.opening.main.effects",
	"text_overlays.opening.main.text_shaping",
	"text_overlays.closing.main.position",
	"text_overlays.closing.main.shadow",
	"text_overlays.closing.main.effects",
	"text_overlays.closing.main.text_shaping",
	"text_overlays.opening.base_position",
	"text_overlays.closing.base_position",
}

// ParseDocument reads a previously generated document back into form
// values. Parsing is best-effort: recognized keys are extracted,
// unknown keys are reported, and fixed keys emitted by the serializer
// are accepted without note. A document that is not valid YAML is the
// only hard error.
func ParseDocument(data []byte) (ParseResult, error) {
	res := ParseResult{Fields: make(map[FieldID]string)}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return res, fmt.Errorf("parse document: %w", err)
	}
	if len(root.Content) == 0 {
		return res, nil
	}
	walkMapping(root.Content[0], "", &res)
	sort.Strings(res.Unrecognized)
	return res, nil
}

func walkMapping(node *yaml.Node, prefix string, res *ParseResult) {
	if node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		handleNode(path, val, res)
	}
}

func handleNode(path string, val *yaml.Node, res *ParseResult) {
	if fixedKeyPaths[path] || underFixedSubtree(path) {
		return
	}
	switch path {
	case "video_settings.resolution":
		if w, h, ok := intPair(val); ok {
			res.Fields[FieldResolution] = fmt.Sprintf("%dx%d", w, h)
		}
		return
	case "style.transitions.weights":
		applyWeights(val, res)
		return
	case "text_overlays.closing.subtitles":
		applySubtitles(val, res)
		return
	case "paths.output_file":
		res.Fields[FieldOutputDir] = parentDir(val.Value)
		return
	}

	if val.Kind == yaml.MappingNode {
		walkMapping(val, path, res)
		return
	}

	if id, ok := scalarFieldByPath[path]; ok {
		res.Fields[id] = val.Value
		return
	}
	res.Unrecognized = append(res.Unrecognized, path)
}

func underFixedSubtree(path string) bool {
	for _, p := range fixedSubtreePrefixes {
		if path == p || strings.HasPrefix(path, p+".") {
			return true
		}
	}
	return false
}

// scalarFieldByPath maps document keys with a one-to-one form control to
// their field. Multi-value keys (resolution, weights, subtitles,
// output_file) are handled explicitly in handleNode.
var scalarFieldByPath = map[string]FieldID{
	"project.name":        FieldProjectName,
	"project.description": FieldProjectDescription,

	"paths.images_dir": FieldImagesDir,
	"paths.audio_dir":  FieldAudioDir,

	"special_images.opening_closing": FieldSpecialPhoto,

	"video_settings.fps":    FieldFPS,
	"video_settings.crf":    FieldCRF,
	"video_settings.preset": FieldPreset,

	"sequences.opening.part1_duration":    FieldOpeningPart1,
	"sequences.opening.part2_duration":    FieldOpeningPart2,
	"sequences.images.duration_per_image": FieldDurationPerImage,
	"sequences.closing.min_duration":      FieldClosingMinDuration,

	"style.transitions.duration":                FieldTransitionDuration,
	"style.ken_burns.application_rate":          FieldKenBurnsRate,
	"style.color_grading.preset":                FieldColorGrading,
	"style.audio.fade_in":                       FieldAudioFadeIn,
	"style.audio.fade_out":                      FieldAudioFadeOut,
	"style.particle_overlays.enabled":           FieldParticlesEnabled,
	"style.particle_overlays.type":              FieldParticleType,
	"style.particle_overlays.size":              FieldParticleSize,
	"style.particle_overlays.density":           FieldParticleDensity,
	"style.particle_overlays.application_rate":  FieldParticleRate,
	"style.particle_overlays.apply_to_opening":  FieldParticlesOnOpening,
	"style.particle_overlays.apply_to_closing":  FieldParticlesOnClosing,

	"text_overlays.opening.enabled":   FieldOpeningTextEnabled,
	"text_overlays.opening.main.text": FieldOpeningText,
	"text_overlays.closing.enabled":   FieldClosingTextEnabled,
	"text_overlays.closing.main.text": FieldClosingText,
}

func intPair(node *yaml.Node) (int, int, bool) {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(node.Content[0].Value)
	h, err2 := strconv.Atoi(node.Content[1].Value)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return w, h, true
}

func applyWeights(node *yaml.Node, res *ParseResult) {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		return
	}
	ids := []FieldID{FieldGentleWeight, FieldDynamicWeight, FieldArtisticWeight}
	for i, id := range ids {
		f, err := strconv.ParseFloat(node.Content[i].Value, 64)
		if err != nil {
			continue
		}
		res.Fields[id] = strconv.Itoa(int(f*100 + 0.5))
	}
}

func applySubtitles(node *yaml.Node, res *ParseResult) {
	if node.Kind != yaml.SequenceNode {
		return
	}
	ids := []FieldID{FieldClosingSubtitle1, FieldClosingSubtitle2}
	for i, entry := range node.Content {
		if i >= len(ids) || entry.Kind != yaml.MappingNode {
			break
		}
		for j := 0; j+1 < len(entry.Content); j += 2 {
			if entry.Content[j].Value == "text" {
				res.Fields[ids[i]] = entry.Content[j+1].Value
			}
		}
	}
}

func parentDir(outputFile string) string {
	p := NormalizePath(outputFile)
	if i := strings.LastIndexByte(p, '/'); i > 0 {
		return p[:i]
	}
	return p
}

// ApplyToForm copies the recognized values onto a form state, parsing
// numbers and booleans leniently. Values that fail to parse leave the
// existing control value alone.
func ApplyToForm(s *FormState, res ParseResult) {
	for id, raw := range res.Fields {
		applyField(s, id, raw)
	}
}

func applyField(s *FormState, id FieldID, raw string) {
	switch id {
	case FieldProjectName:
		s.ProjectName = raw
	case FieldProjectDescription:
		s.ProjectDescription = raw
	case FieldImagesDir:
		s.ImagesDir = raw
	case FieldAudioDir:
		s.AudioDir = raw
	case FieldOutputDir:
		s.OutputDir = raw
	case FieldSpecialPhoto:
		s.SpecialPhoto = raw
	case FieldResolution:
		if w, h, ok := splitResolution(raw); ok {
			s.ResolutionWidth, s.ResolutionHeight = w, h
		}
	case FieldFPS:
		setInt(&s.FPS, raw)
	case FieldCRF:
		setInt(&s.CRF, raw)
	case FieldPreset:
		s.Preset = raw
	case FieldOpeningPart1:
		setFloat(&s.OpeningPart1Duration, raw)
	case FieldOpeningPart2:
		setFloat(&s.OpeningPart2Duration, raw)
	case FieldDurationPerImage:
		setFloat(&s.DurationPerImage, raw)
	case FieldClosingMinDuration:
		setFloat(&s.ClosingMinDuration, raw)
	case FieldTransitionDuration:
		setFloat(&s.TransitionDuration, raw)
	case FieldGentleWeight:
		setInt(&s.GentleWeight, raw)
	case FieldDynamicWeight:
		setInt(&s.DynamicWeight, raw)
	case FieldArtisticWeight:
		setInt(&s.ArtisticWeight, raw)
	case FieldKenBurnsRate:
		setPercent(&s.KenBurnsRate, raw)
	case FieldColorGrading:
		s.ColorGradingPreset = raw
	case FieldAudioFadeIn:
		setFloat(&s.AudioFadeIn, raw)
	case FieldAudioFadeOut:
		setFloat(&s.AudioFadeOut, raw)
	case FieldParticlesEnabled:
		setBool(&s.ParticlesEnabled, raw)
	case FieldParticleType:
		s.ParticleType = raw
	case FieldParticleSize:
		s.ParticleSize = raw
	case FieldParticleDensity:
		setPercent(&s.ParticleDensity, raw)
	case FieldParticleRate:
		setPercent(&s.ParticleRate, raw)
	case FieldParticlesOnOpening:
		setBool(&s.ParticlesOnOpening, raw)
	case FieldParticlesOnClosing:
		setBool(&s.ParticlesOnClosing, raw)
	case FieldOpeningTextEnabled:
		setBool(&s.OpeningTextEnabled, raw)
	case FieldOpeningText:
		s.OpeningText = raw
	case FieldClosingTextEnabled:
		setBool(&s.ClosingTextEnabled, raw)
	case FieldClosingText:
		s.ClosingText = raw
	case FieldClosingSubtitle1:
		s.ClosingSubtitle1 = raw
	case FieldClosingSubtitle2:
		s.ClosingSubtitle2 = raw
	}
}

func splitResolution(raw string) (int, int, bool) {
	parts := strings.SplitN(raw, "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return w, h, true
}

func setInt(dst *int, raw string) {
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		*dst = v
	}
}

// setPercent accepts either a fraction ("0.65") or a whole percent
// ("65") and stores the percent form.
func setPercent(dst *int, raw string) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return
	}
	if f <= 1.0 {
		f *= 100
	}
	*dst = int(f + 0.5)
}

func setFloat(dst *float64, raw string) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		*dst = v
	}
}

func setBool(dst *bool, raw string) {
	if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
		*dst = v
	}
}
