package project

// Config is the structured, in-memory representation of all slideshow
// settings. It is rebuilt fresh from the form state on every read.
type Config struct {
	Project       ProjectInfo
	Paths         Paths
	SpecialImage  SpecialImage
	VideoSettings VideoSettings
	Sequences     Sequences
	Style         Style
	TextOverlays  TextOverlays
}

// ProjectInfo identifies the project.
type ProjectInfo struct {
	Name        string
	Description string
}

// Paths holds all filesystem locations. Directories are always
// forward-slash normalized; OutputFile and PreviewFile are derived from
// the output directory and the sanitized project name.
type Paths struct {
	ImagesDir   string
	AudioDir    string
	OutputFile  string
	PreviewFile string
}

// SpecialImage designates the one photo used at opening and closing.
type SpecialImage struct {
	Path string
}

// VideoSettings holds encoder parameters.
type VideoSettings struct {
	Resolution [2]int // width, height
	FPS        int
	CRF        int
	Preset     string
}

// Sequences holds per-section timing.
type Sequences struct {
	Opening OpeningTiming
	Images  ImageTiming
	Closing ClosingTiming
}

// OpeningTiming splits the opening into the photo-only part and the
// photo-plus-text part.
type OpeningTiming struct {
	Part1Duration float64
	Part2Duration float64
}

// ImageTiming holds the display duration of each regular image.
type ImageTiming struct {
	DurationPerImage float64
}

// ClosingTiming holds the minimum closing sequence duration.
type ClosingTiming struct {
	MinDuration float64
}

// Style groups all visual styling settings.
type Style struct {
	Transitions      Transitions
	KenBurns         KenBurns
	ColorGrading     ColorGrading
	Audio            AudioFades
	ParticleOverlays ParticleOverlays
}

// Transitions describes the transition mix between images.
// Weights are fractions in [0,1] and must sum to 1.0 when validated.
type Transitions struct {
	Duration   float64
	Categories [3]string
	Weights    [3]float64
}

// KenBurns describes the zoom/pan effect application.
type KenBurns struct {
	ApplicationRate float64 // fraction of images receiving the effect
}

// ColorGrading selects a grading preset by name.
type ColorGrading struct {
	Preset string
}

// AudioFades holds audio fade durations in seconds.
type AudioFades struct {
	FadeIn  float64
	FadeOut float64
}

// ParticleOverlays describes the decorative particle layer composited
// during transitions.
type ParticleOverlays struct {
	Enabled         bool
	Type            string
	Size            string
	Density         float64 // fraction in [0,1]
	ApplicationRate float64 // fraction of transitions receiving particles
	ApplyToOpening  bool
	ApplyToClosing  bool
}

// TextOverlays holds the opening and closing overlay blocks.
type TextOverlays struct {
	Opening OverlayBlock
	Closing OverlayBlock
}

// OverlayBlock is either disabled (carrying nothing else in the serialized
// output) or enabled with a main text block, optional subtitles (closing
// only, up to two) and an optional base Y position.
type OverlayBlock struct {
	Enabled       bool
	Main          *TextBlock
	Subtitles     []TextBlock
	BasePositionY float64 // 0 when unset
}

// TextBlock is one rendered text element.
type TextBlock struct {
	Text        string
	Font        string
	FontSize    int
	Color       string
	Position    Position
	Shadow      Shadow
	Effects     Fades
	TextShaping int
}

// Position places a text block. Y is an expression; when Y is empty the
// block is placed by YOffset relative to the section's base position.
type Position struct {
	X       string
	Y       string
	YOffset int
}

// Shadow describes the drop shadow behind a text block.
type Shadow struct {
	Color string
	X     int
	Y     int
}

// Fades holds fade-in/fade-out durations in seconds.
type Fades struct {
	FadeIn  float64
	FadeOut float64
}

// Tab identifies one tab of the builder form.
type Tab int

const (
	TabProject Tab = iota
	TabPaths
	TabVideo
	TabSequences
	TabStyle
	TabText
)

// String returns the display name of the tab.
func (t Tab) String() string {
	switch t {
	case TabProject:
		return "Project"
	case TabPaths:
		return "Paths"
	case TabVideo:
		return "Video"
	case TabSequences:
		return "Sequences"
	case TabStyle:
		return "Style"
	case TabText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Tabs lists all form tabs in display order.
func Tabs() []Tab {
	return []Tab{TabProject, TabPaths, TabVideo, TabSequences, TabStyle, TabText}
}

// FormState is the raw snapshot of the builder's control values.
// Text inputs are strings, percent sliders are ints in [0,100], and
// numeric inputs are already parsed by the owning control.
type FormState struct {
	// Project tab
	ProjectName        string
	ProjectDescription string

	// Paths tab
	ImagesDir    string
	AudioDir     string
	OutputDir    string
	SpecialPhoto string

	// Video tab
	ResolutionWidth  int
	ResolutionHeight int
	FPS              int
	CRF              int
	Preset           string

	// Sequences tab
	OpeningPart1Duration float64
	OpeningPart2Duration float64
	DurationPerImage     float64
	ClosingMinDuration   float64

	// Style tab (percent controls are sliders in percent units)
	TransitionDuration float64
	GentleWeight       int
	DynamicWeight      int
	ArtisticWeight     int
	KenBurnsRate       int
	ColorGradingPreset string
	AudioFadeIn        float64
	AudioFadeOut       float64
	ParticlesEnabled   bool
	ParticleType       string
	ParticleSize       string
	ParticleDensity    int
	ParticleRate       int
	ParticlesOnOpening bool
	ParticlesOnClosing bool

	// Text tab
	OpeningTextEnabled bool
	OpeningText        string
	ClosingTextEnabled bool
	ClosingText        string
	ClosingSubtitle1   string
	ClosingSubtitle2   string
}

// NewFormState returns a FormState pre-filled with the builder defaults.
func NewFormState() FormState {
	return FormState{
		ResolutionWidth:  1920,
		ResolutionHeight: 1080,
		FPS:              30,
		CRF:              18,
		Preset:           "slow",

		OpeningPart1Duration: 3.0,
		OpeningPart2Duration: 6.0,
		DurationPerImage:     6.0,
		ClosingMinDuration:   8.0,

		TransitionDuration: 0.9,
		GentleWeight:       70,
		DynamicWeight:      20,
		ArtisticWeight:     10,
		KenBurnsRate:       65,
		ColorGradingPreset: "warm",
		AudioFadeIn:        0.5,
		AudioFadeOut:       1.5,
		ParticleType:       "random",
		ParticleSize:       "medium",
		ParticleDensity:    50,
		ParticleRate:       70,
		ParticlesOnOpening: true,
		ParticlesOnClosing: true,

		OpeningTextEnabled: true,
		ClosingTextEnabled: true,
	}
}
