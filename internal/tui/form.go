package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/browse"
	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/preview"
	"github.com/slidecraft/slidecraft/internal/project"
)

// previewDebounce is how long typing must pause before the preview and
// validation refresh. Regenerating on every keystroke makes fast typing
// feel sluggish on large documents.
const previewDebounce = 300 * time.Millisecond

// previewTickMsg fires after the debounce window; stale sequence numbers
// are ignored so only the latest edit triggers a refresh
type previewTickMsg struct {
	seq int
}

// inventoryMsg carries the remote listings of the media folders
type inventoryMsg struct {
	images []string
	audio  []string
	err    error
}

// browseRequest asks the app to open the folder browser for a field.
// FieldValue and ImagesDir give the browser its starting folder.
type browseRequest struct {
	Field      project.FieldID
	Mode       browse.Mode
	FieldValue string
	ImagesDir  string
}

// controlKind describes how a form field is edited
type controlKind int

const (
	controlText controlKind = iota
	controlToggle
	controlPercent
)

// controlKindFor maps each field to its widget type
func controlKindFor(id project.FieldID) controlKind {
	switch id {
	case project.FieldParticlesEnabled,
		project.FieldParticlesOnOpening,
		project.FieldParticlesOnClosing,
		project.FieldOpeningTextEnabled,
		project.FieldClosingTextEnabled:
		return controlToggle
	case project.FieldGentleWeight,
		project.FieldDynamicWeight,
		project.FieldArtisticWeight,
		project.FieldKenBurnsRate,
		project.FieldParticleDensity,
		project.FieldParticleRate:
		return controlPercent
	default:
		return controlText
	}
}

// browsableField returns the browse mode for fields that can be filled
// from the remote folder browser
func browsableField(id project.FieldID) (browse.Mode, bool) {
	switch id {
	case project.FieldImagesDir, project.FieldAudioDir, project.FieldOutputDir:
		return browse.PickFolder, true
	case project.FieldSpecialPhoto:
		return browse.PickImage, true
	}
	return 0, false
}

// formKeyMap defines key bindings for the form screen
type formKeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Browse   key.Binding
	Refresh  key.Binding
	Generate key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k formKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Browse, k.Generate, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k formKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Up, k.Down},
		{k.Browse, k.Refresh, k.Generate, k.Quit},
	}
}

// FormModel is the tabbed builder form with the live document preview
type FormModel struct {
	Client   *backend.Client
	Settings *config.Settings

	// Form state
	State     project.FormState
	Inventory project.FileInventory

	// Navigation
	ActiveTab int // index into project.Tabs()
	Cursor    int // field index within the active tab

	// Widgets
	inputs  map[project.FieldID]textinput.Model
	preview viewport.Model

	// Derived state, refreshed after the debounce window
	Doc        string
	Validation project.Validation

	// Transient notice shown in the status bar (submit refusals etc.)
	Notice string

	seq int

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys formKeyMap
}

// NewFormModel creates the form pre-filled with builder defaults
func NewFormModel(client *backend.Client, settings *config.Settings) FormModel {
	m := FormModel{
		Client:   client,
		Settings: settings,
		State:    project.NewFormState(),
		inputs:   make(map[project.FieldID]textinput.Model),
		Help:     help.New(),
		Keys: formKeyMap{
			NextTab: key.NewBinding(
				key.WithKeys("tab"),
				key.WithHelp("tab", "next tab"),
			),
			PrevTab: key.NewBinding(
				key.WithKeys("shift+tab"),
				key.WithHelp("shift+tab", "previous tab"),
			),
			Up: key.NewBinding(
				key.WithKeys("up"),
				key.WithHelp("↑", "previous field"),
			),
			Down: key.NewBinding(
				key.WithKeys("down"),
				key.WithHelp("↓", "next field"),
			),
			Browse: key.NewBinding(
				key.WithKeys("ctrl+b"),
				key.WithHelp("ctrl+b", "browse"),
			),
			Refresh: key.NewBinding(
				key.WithKeys("ctrl+r"),
				key.WithHelp("ctrl+r", "refresh file lists"),
			),
			Generate: key.NewBinding(
				key.WithKeys("ctrl+g"),
				key.WithHelp("ctrl+g", "generate"),
			),
			Quit: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "quit"),
			),
		},
	}

	for _, f := range project.Fields() {
		if controlKindFor(f.ID) != controlText {
			continue
		}
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.SetValue(m.textValue(f.ID))
		m.inputs[f.ID] = ti
	}

	m.preview = viewport.New(60, 20)
	m.refreshDerived()
	m.focusField()
	return m
}

// Init starts the form screen
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form screen
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case previewTickMsg:
		if msg.seq == m.seq {
			m.refreshDerived()
		}
		return m, nil

	case inventoryMsg:
		if msg.err != nil {
			m.Notice = fmt.Sprintf("file listing failed: %v", msg.err)
			return m, nil
		}
		m.Inventory = project.NewFileInventory(msg.images, msg.audio)
		m.Notice = ""
		m.refreshDerived()
		return m, nil
	}

	// Forward everything else (blink ticks etc.) to the focused input
	return m.updateFocusedInput(msg)
}

func (m FormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.Keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, func() tea.Msg { return goBackMsg{} }

	case key.Matches(msg, keys.NextTab):
		m.blurField()
		m.ActiveTab = (m.ActiveTab + 1) % len(project.Tabs())
		m.Cursor = 0
		m.focusField()
		m.highlightFocused()
		return m, nil

	case key.Matches(msg, keys.PrevTab):
		m.blurField()
		m.ActiveTab = (m.ActiveTab - 1 + len(project.Tabs())) % len(project.Tabs())
		m.Cursor = 0
		m.focusField()
		m.highlightFocused()
		return m, nil

	case key.Matches(msg, keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, keys.Browse):
		if mode, ok := browsableField(m.focusedField().ID); ok {
			req := browseRequest{
				Field:      m.focusedField().ID,
				Mode:       mode,
				FieldValue: project.FieldValue(m.State, m.focusedField().ID),
				ImagesDir:  m.State.ImagesDir,
			}
			return m, func() tea.Msg { return screenTransitionMsg{screen: ScreenBrowser, data: req} }
		}
		return m, nil

	case key.Matches(msg, keys.Refresh):
		return m, m.fetchInventoryCmd()

	case key.Matches(msg, keys.Generate):
		return m.submit()
	}

	// Widget-specific keys
	field := m.focusedField()
	switch controlKindFor(field.ID) {
	case controlToggle:
		if msg.String() == " " || msg.String() == "enter" {
			m.toggleField(field.ID)
			return m, m.bumpPreview()
		}
		return m, nil

	case controlPercent:
		switch msg.String() {
		case "left":
			m.adjustPercent(field.ID, -5)
			return m, m.bumpPreview()
		case "right":
			m.adjustPercent(field.ID, +5)
			return m, m.bumpPreview()
		}
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput forwards a message to the focused text input and
// syncs its value back into the form state
func (m FormModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	field := m.focusedField()
	input, ok := m.inputs[field.ID]
	if !ok {
		return m, nil
	}

	before := input.Value()
	input, cmd := input.Update(msg)
	m.inputs[field.ID] = input

	if input.Value() != before {
		m.applyTextValue(field.ID, input.Value())
		return m, tea.Batch(cmd, m.bumpPreview())
	}
	return m, cmd
}

// bumpPreview schedules a debounced preview refresh
func (m *FormModel) bumpPreview() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(previewDebounce, func(time.Time) tea.Msg {
		return previewTickMsg{seq: seq}
	})
}

// refreshDerived rebuilds the document, validation and preview from the
// current form state
func (m *FormModel) refreshDerived() {
	cfg := project.ReadConfig(m.State)
	m.Doc = project.Serialize(cfg)
	m.Validation = project.Validate(m.State, m.Inventory)
	m.highlightFocused()
}

// highlightFocused re-renders the preview with the focused field's lines
// highlighted and scrolls the first match into view
func (m *FormModel) highlightFocused() {
	token := m.focusedField().Token()
	m.preview.SetContent(preview.Render(m.Doc, token))
	m.preview.SetYOffset(preview.ScrollOffset(m.Doc, token, m.preview.Height))
}

// resizePreview fits the preview viewport to the terminal
func (m *FormModel) resizePreview() {
	w := m.Width
	if w > MaxContentWidth {
		w = MaxContentWidth
	}
	pw := int(float64(w) * PreviewPaneRatio)
	if pw < 30 {
		pw = 30
	}
	ph := m.Height - 12
	if ph < 5 {
		ph = 5
	}
	m.preview.Width = pw
	m.preview.Height = ph
	m.highlightFocused()
}

func (m FormModel) activeTab() project.Tab {
	return project.Tabs()[m.ActiveTab]
}

func (m FormModel) focusedField() project.FieldSpec {
	fields := project.FieldsForTab(m.activeTab())
	if m.Cursor >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[m.Cursor]
}

func (m *FormModel) moveCursor(delta int) {
	fields := project.FieldsForTab(m.activeTab())
	m.blurField()
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(fields) {
		m.Cursor = len(fields) - 1
	}
	m.focusField()
	m.highlightFocused()
}

func (m *FormModel) focusField() {
	if input, ok := m.inputs[m.focusedField().ID]; ok {
		input.Focus()
		m.inputs[m.focusedField().ID] = input
	}
}

func (m *FormModel) blurField() {
	if input, ok := m.inputs[m.focusedField().ID]; ok {
		input.Blur()
		m.inputs[m.focusedField().ID] = input
	}
}

// SetFieldValue writes a browser selection into the form, updating both
// the state and the visible input
func (m *FormModel) SetFieldValue(id project.FieldID, value string) {
	m.applyTextValue(id, value)
	if input, ok := m.inputs[id]; ok {
		input.SetValue(value)
		m.inputs[id] = input
	}
	m.refreshDerived()
}

// LoadParsed applies a parsed document to the form, reseeding the
// visible inputs. Unrecognized settings are reported in the status bar;
// the recognized ones are applied regardless.
func (m *FormModel) LoadParsed(res project.ParseResult) {
	project.ApplyToForm(&m.State, res)
	for id, input := range m.inputs {
		input.SetValue(m.textValue(id))
		m.inputs[id] = input
	}
	if n := len(res.Unrecognized); n > 0 {
		m.Notice = fmt.Sprintf("document loaded, %d unrecognized setting(s) ignored", n)
	}
	m.refreshDerived()
}

// submit validates the form and dispatches generation
func (m FormModel) submit() (tea.Model, tea.Cmd) {
	m.refreshDerived()
	if !m.Validation.OK() {
		m.Notice = m.Validation.Problems[0]
		// Jump to the first failing tab
		for i, tab := range project.Tabs() {
			if m.Validation.InvalidTabs()[tab] {
				m.blurField()
				m.ActiveTab = i
				m.Cursor = 0
				m.focusField()
				break
			}
		}
		return m, nil
	}

	cfg := project.ReadConfig(m.State)
	req := generateRequest{
		DocumentContent: m.Doc,
		Filename:        project.SanitizeProjectName(cfg.Project.Name) + ".yaml",
		OutputDir:       project.NormalizePath(m.State.OutputDir),
	}
	return m, func() tea.Msg { return screenTransitionMsg{screen: ScreenGenerating, data: req} }
}

// fetchInventoryCmd lists the images and audio folders on the backend
func (m FormModel) fetchInventoryCmd() tea.Cmd {
	imagesDir := project.NormalizePath(m.State.ImagesDir)
	audioDir := project.NormalizePath(m.State.AudioDir)
	client := m.Client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backend.DefaultTimeout)
		defer cancel()

		var msg inventoryMsg
		if imagesDir != "" {
			resp, err := client.BrowseFolder(ctx, api.BrowseRequest{Path: imagesDir, IncludeImages: true})
			if err != nil {
				return inventoryMsg{err: err}
			}
			msg.images = entryNames(resp.Files)
		}
		if audioDir != "" {
			resp, err := client.BrowseFolder(ctx, api.BrowseRequest{Path: audioDir, IncludeAudio: true})
			if err != nil {
				return inventoryMsg{err: err}
			}
			msg.audio = entryNames(resp.Files)
		}
		return msg
	}
}

func entryNames(entries []api.Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// textValue renders the state value of a text-backed field
func (m FormModel) textValue(id project.FieldID) string {
	s := m.State
	switch id {
	case project.FieldResolution:
		return fmt.Sprintf("%dx%d", s.ResolutionWidth, s.ResolutionHeight)
	case project.FieldFPS:
		return strconv.Itoa(s.FPS)
	case project.FieldCRF:
		return strconv.Itoa(s.CRF)
	case project.FieldPreset:
		return s.Preset
	case project.FieldOpeningPart1:
		return formatSeconds(s.OpeningPart1Duration)
	case project.FieldOpeningPart2:
		return formatSeconds(s.OpeningPart2Duration)
	case project.FieldDurationPerImage:
		return formatSeconds(s.DurationPerImage)
	case project.FieldClosingMinDuration:
		return formatSeconds(s.ClosingMinDuration)
	case project.FieldTransitionDuration:
		return formatSeconds(s.TransitionDuration)
	case project.FieldColorGrading:
		return s.ColorGradingPreset
	case project.FieldAudioFadeIn:
		return formatSeconds(s.AudioFadeIn)
	case project.FieldAudioFadeOut:
		return formatSeconds(s.AudioFadeOut)
	case project.FieldParticleType:
		return s.ParticleType
	case project.FieldParticleSize:
		return s.ParticleSize
	default:
		return project.FieldValue(s, id)
	}
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// applyTextValue parses a text widget's value into the form state.
// Unparseable numbers leave the previous value in place; the input still
// shows what the user typed so they can finish or fix it.
func (m *FormModel) applyTextValue(id project.FieldID, raw string) {
	s := &m.State
	switch id {
	case project.FieldProjectName:
		s.ProjectName = raw
	case project.FieldProjectDescription:
		s.ProjectDescription = raw
	case project.FieldImagesDir:
		s.ImagesDir = raw
	case project.FieldAudioDir:
		s.AudioDir = raw
	case project.FieldOutputDir:
		s.OutputDir = raw
	case project.FieldSpecialPhoto:
		s.SpecialPhoto = raw
	case project.FieldResolution:
		if w, h, ok := parseResolution(raw); ok {
			s.ResolutionWidth, s.ResolutionHeight = w, h
		}
	case project.FieldFPS:
		setIntValue(&s.FPS, raw)
	case project.FieldCRF:
		setIntValue(&s.CRF, raw)
	case project.FieldPreset:
		s.Preset = raw
	case project.FieldOpeningPart1:
		setFloatValue(&s.OpeningPart1Duration, raw)
	case project.FieldOpeningPart2:
		setFloatValue(&s.OpeningPart2Duration, raw)
	case project.FieldDurationPerImage:
		setFloatValue(&s.DurationPerImage, raw)
	case project.FieldClosingMinDuration:
		setFloatValue(&s.ClosingMinDuration, raw)
	case project.FieldTransitionDuration:
		setFloatValue(&s.TransitionDuration, raw)
	case project.FieldColorGrading:
		s.ColorGradingPreset = raw
	case project.FieldAudioFadeIn:
		setFloatValue(&s.AudioFadeIn, raw)
	case project.FieldAudioFadeOut:
		setFloatValue(&s.AudioFadeOut, raw)
	case project.FieldParticleType:
		s.ParticleType = raw
	case project.FieldParticleSize:
		s.ParticleSize = raw
	case project.FieldOpeningText:
		s.OpeningText = raw
	case project.FieldClosingText:
		s.ClosingText = raw
	case project.FieldClosingSubtitle1:
		s.ClosingSubtitle1 = raw
	case project.FieldClosingSubtitle2:
		s.ClosingSubtitle2 = raw
	}
}

func parseResolution(raw string) (int, int, bool) {
	parts := strings.SplitN(strings.ToLower(raw), "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

func setIntValue(dst *int, raw string) {
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v > 0 {
		*dst = v
	}
}

func setFloatValue(dst *float64, raw string) {
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && v >= 0 {
		*dst = v
	}
}

func (m *FormModel) toggleField(id project.FieldID) {
	s := &m.State
	switch id {
	case project.FieldParticlesEnabled:
		s.ParticlesEnabled = !s.ParticlesEnabled
	case project.FieldParticlesOnOpening:
		s.ParticlesOnOpening = !s.ParticlesOnOpening
	case project.FieldParticlesOnClosing:
		s.ParticlesOnClosing = !s.ParticlesOnClosing
	case project.FieldOpeningTextEnabled:
		s.OpeningTextEnabled = !s.OpeningTextEnabled
	case project.FieldClosingTextEnabled:
		s.ClosingTextEnabled = !s.ClosingTextEnabled
	}
}

func (m *FormModel) adjustPercent(id project.FieldID, delta int) {
	clamp := func(v int) int {
		if v < 0 {
			return 0
		}
		if v > 100 {
			return 100
		}
		return v
	}
	s := &m.State
	switch id {
	case project.FieldGentleWeight:
		s.GentleWeight = clamp(s.GentleWeight + delta)
	case project.FieldDynamicWeight:
		s.DynamicWeight = clamp(s.DynamicWeight + delta)
	case project.FieldArtisticWeight:
		s.ArtisticWeight = clamp(s.ArtisticWeight + delta)
	case project.FieldKenBurnsRate:
		s.KenBurnsRate = clamp(s.KenBurnsRate + delta)
	case project.FieldParticleDensity:
		s.ParticleDensity = clamp(s.ParticleDensity + delta)
	case project.FieldParticleRate:
		s.ParticleRate = clamp(s.ParticleRate + delta)
	}
}

func (m FormModel) percentValue(id project.FieldID) int {
	s := m.State
	switch id {
	case project.FieldGentleWeight:
		return s.GentleWeight
	case project.FieldDynamicWeight:
		return s.DynamicWeight
	case project.FieldArtisticWeight:
		return s.ArtisticWeight
	case project.FieldKenBurnsRate:
		return s.KenBurnsRate
	case project.FieldParticleDensity:
		return s.ParticleDensity
	case project.FieldParticleRate:
		return s.ParticleRate
	}
	return 0
}

func (m FormModel) toggleValue(id project.FieldID) bool {
	s := m.State
	switch id {
	case project.FieldParticlesEnabled:
		return s.ParticlesEnabled
	case project.FieldParticlesOnOpening:
		return s.ParticlesOnOpening
	case project.FieldParticlesOnClosing:
		return s.ParticlesOnClosing
	case project.FieldOpeningTextEnabled:
		return s.OpeningTextEnabled
	case project.FieldClosingTextEnabled:
		return s.ClosingTextEnabled
	}
	return false
}

// View renders the form screen
func (m FormModel) View() string {
	left := m.renderForm()
	right := PreviewPaneStyle.Render(m.preview.View())
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	status := m.renderStatusBar()
	body := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), content, status)

	helpText := m.Help.View(m.Keys)
	return RenderApplicationContainer(body, helpText, m.Width, m.Height)
}

// renderTabs renders the tab header row with validation badges
func (m FormModel) renderTabs() string {
	invalid := m.Validation.InvalidTabs()
	var tabs []string
	for i, tab := range project.Tabs() {
		label := tab.String()
		switch {
		case i == m.ActiveTab:
			tabs = append(tabs, ActiveTabStyle.Render(label))
		case invalid[tab]:
			tabs = append(tabs, InvalidTabStyle.Render(label+" !"))
		default:
			tabs = append(tabs, TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderForm renders the active tab's fields
func (m FormModel) renderForm() string {
	var b strings.Builder
	fields := project.FieldsForTab(m.activeTab())

	for i, f := range fields {
		focused := i == m.Cursor
		b.WriteString(m.renderField(f, focused))
		b.WriteString("\n")
	}
	return b.String()
}

func (m FormModel) renderField(f project.FieldSpec, focused bool) string {
	label := f.Label
	if f.Required {
		label += RequiredMarkStyle.Render(" *")
	}
	if focused {
		label = FocusedFieldLabelStyle.Render("→ " + label)
	} else {
		label = FieldLabelStyle.Render(label)
	}

	var widget string
	switch controlKindFor(f.ID) {
	case controlToggle:
		if m.toggleValue(f.ID) {
			widget = FieldOKStyle.Render("[x] enabled")
		} else {
			widget = SubtitleStyle.Render("[ ] disabled")
		}
	case controlPercent:
		widget = renderPercentBar(m.percentValue(f.ID))
	default:
		input := m.inputs[f.ID]
		widget = input.View()
	}

	line := fmt.Sprintf("%s  %s", label, widget)
	if note := m.fieldNote(f); note != "" {
		line += "\n    " + note
	}
	return line
}

// fieldNote renders inline validation feedback under a field
func (m FormModel) fieldNote(f project.FieldSpec) string {
	if f.ID == project.FieldSpecialPhoto && project.ValidateField(m.State.SpecialPhoto) {
		switch m.Validation.PhotoStatus {
		case project.PhotoNeedsImagesDir:
			return FieldInfoStyle.Render("set the images folder to check this photo")
		case project.PhotoFound:
			return FieldOKStyle.Render("✓ found in images folder")
		case project.PhotoBadExtension:
			return FieldErrorStyle.Render("✗ not an image file")
		case project.PhotoNotFound:
			return FieldErrorStyle.Render("✗ not found in images folder")
		}
	}
	if f.Required && !project.ValidateField(project.FieldValue(m.State, f.ID)) {
		return FieldErrorStyle.Render("required")
	}
	if f.ID == project.FieldArtisticWeight && !m.Validation.WeightsOK {
		sum := m.State.GentleWeight + m.State.DynamicWeight + m.State.ArtisticWeight
		return FieldErrorStyle.Render(fmt.Sprintf("weights total %d%%, must be 100%%", sum))
	}
	return ""
}

func renderPercentBar(v int) string {
	filled := v / 5
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 20-filled)
	return fmt.Sprintf("%s %3d%%", bar, v)
}

// renderStatusBar summarizes the remote file inventory and validation
func (m FormModel) renderStatusBar() string {
	var parts []string

	if m.Inventory.Images != nil {
		parts = append(parts, fmt.Sprintf("%d images", m.Inventory.ImageCount()))
		est := m.Inventory.EstimatedDuration(m.State)
		parts = append(parts, fmt.Sprintf("~%s video", formatDuration(est)))
	} else {
		parts = append(parts, "file lists not loaded (ctrl+r)")
	}
	if audio := m.Inventory.FirstAudio(); audio != "" {
		parts = append(parts, "♪ "+audio)
	}

	if m.Notice != "" {
		parts = append(parts, FieldErrorStyle.Render(m.Notice))
	} else if !m.Validation.OK() {
		parts = append(parts, FieldErrorStyle.Render(fmt.Sprintf("%d problem(s)", len(m.Validation.Problems))))
	} else {
		parts = append(parts, FieldOKStyle.Render("ready to generate"))
	}

	return StatusBarStyle.Render(strings.Join(parts, "  ·  "))
}

func formatDuration(seconds float64) string {
	total := int(seconds)
	if total < 60 {
		return fmt.Sprintf("%ds", total)
	}
	return fmt.Sprintf("%dm%02ds", total/60, total%60)
}
