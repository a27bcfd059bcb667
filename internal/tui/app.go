package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/project"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenForm       Screen = "form"
	ScreenBrowser    Screen = "browser"
	ScreenGenerating Screen = "generating"
	ScreenSuccess    Screen = "success"
	ScreenFailure    Screen = "failure"
)

// Messages for screen transitions
type screenTransitionMsg struct {
	screen Screen
	data   interface{}
}

type goBackMsg struct{}

// successKeyMap defines key bindings for the success screen
type successKeyMap struct {
	Edit key.Binding
	New  key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k successKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.New, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k successKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.New, k.Quit},
	}
}

// failureKeyMap defines key bindings for the failure screen
type failureKeyMap struct {
	Retry key.Binding
	Edit  key.Binding
	Save  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k failureKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Retry, k.Edit, k.Save, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k failureKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Retry, k.Edit, k.Save, k.Quit},
	}
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	// Current screen state
	CurrentScreen  Screen
	PreviousScreen Screen

	// Screen models
	FormModel     FormModel
	BrowserModel  BrowserModel
	GenerateModel GenerateModel

	// Shared application state
	Client   *backend.Client
	Settings *config.Settings

	// Result state
	LastResult *generateResult
	LastError  error
	SavedPath  string // local copy written from the failure screen

	// UI state
	Width  int
	Height int

	// Help
	Help        help.Model
	SuccessKeys successKeyMap
	FailureKeys failureKeyMap
}

// NewAppModel creates a new application model starting at the form screen
func NewAppModel(client *backend.Client, settings *config.Settings) AppModel {
	h := help.New()

	successKeys := successKeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new project"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	failureKeys := failureKeyMap{
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save document locally"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}

	model := AppModel{
		CurrentScreen: ScreenForm,
		Client:        client,
		Settings:      settings,
		Help:          h,
		SuccessKeys:   successKeys,
		FailureKeys:   failureKeys,
	}
	model.FormModel = NewFormModel(client, settings)
	return model
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return m.FormModel.Init()
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.FormModel.Width = msg.Width
		m.FormModel.Height = msg.Height
		m.FormModel.resizePreview()
		m.BrowserModel.Width = msg.Width
		m.BrowserModel.Height = msg.Height
		m.GenerateModel.Width = msg.Width
		m.GenerateModel.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Global quit handler
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screenTransitionMsg:
		return m.transitionTo(msg.screen, msg.data)

	case goBackMsg:
		return m.goBack()
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenForm:
		updated, c := m.FormModel.Update(msg)
		m.FormModel = updated.(FormModel)
		cmd = c

	case ScreenBrowser:
		updated, c := m.BrowserModel.Update(msg)
		m.BrowserModel = updated.(BrowserModel)
		cmd = c

		if m.BrowserModel.Done {
			var refresh tea.Cmd
			if m.BrowserModel.Accepted {
				field := m.BrowserModel.TargetField()
				m.FormModel.SetFieldValue(field, m.BrowserModel.Selection)
				// A new media folder invalidates the file inventory
				switch field {
				case project.FieldImagesDir, project.FieldAudioDir, project.FieldSpecialPhoto:
					refresh = m.FormModel.fetchInventoryCmd()
				}
			}
			model, transCmd := m.transitionTo(ScreenForm, nil)
			return model, tea.Batch(transCmd, refresh)
		}

	case ScreenGenerating:
		updated, c := m.GenerateModel.Update(msg)
		m.GenerateModel = updated.(GenerateModel)
		cmd = c

		if m.GenerateModel.Finished() {
			if m.GenerateModel.Err != nil {
				m.LastError = m.GenerateModel.Err
				m.LastResult = nil
				m.SavedPath = ""
				return m.transitionTo(ScreenFailure, nil)
			}
			m.LastResult = m.GenerateModel.Result
			m.LastError = nil
			return m.transitionTo(ScreenSuccess, nil)
		}

	case ScreenSuccess:
		return m.handleSuccessScreen(msg)

	case ScreenFailure:
		return m.handleFailureScreen(msg)
	}

	return m, cmd
}

// handleSuccessScreen handles user input on the success screen
func (m AppModel) handleSuccessScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "e", "enter":
			return m.transitionTo(ScreenForm, nil)

		case "n":
			m.FormModel = NewFormModel(m.Client, m.Settings)
			m.FormModel.Width = m.Width
			m.FormModel.Height = m.Height
			m.FormModel.resizePreview()
			return m.transitionTo(ScreenForm, nil)

		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// handleFailureScreen handles user input on the failure screen
func (m AppModel) handleFailureScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "r":
			return m.transitionTo(ScreenGenerating, m.GenerateModel.Request)

		case "e", "esc":
			return m.transitionTo(ScreenForm, nil)

		case "s":
			path, err := m.saveDocumentLocally()
			if err != nil {
				m.LastError = err
			} else {
				m.SavedPath = path
			}
			return m, nil

		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// saveDocumentLocally writes the failed submission's document to the
// working directory so the user can render it by hand.
func (m *AppModel) saveDocumentLocally() (string, error) {
	req := m.GenerateModel.Request
	name := req.Filename
	if name == "" {
		name = "slideshow.yaml"
	}
	if err := os.WriteFile(name, []byte(req.DocumentContent), 0o644); err != nil {
		return "", fmt.Errorf("cannot save document: %w", err)
	}
	return name, nil
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen, data interface{}) (tea.Model, tea.Cmd) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen

	var cmd tea.Cmd

	switch screen {
	case ScreenForm:
		// The form keeps its state across round trips to other screens
		cmd = nil

	case ScreenBrowser:
		if req, ok := data.(browseRequest); ok {
			m.BrowserModel = NewBrowserModel(m.Client, m.Settings, req)
			m.BrowserModel.Width = m.Width
			m.BrowserModel.Height = m.Height
			cmd = m.BrowserModel.Init()
		}

	case ScreenGenerating:
		if req, ok := data.(generateRequest); ok {
			m.GenerateModel = NewGenerateModel(m.Client, req)
			m.GenerateModel.Width = m.Width
			m.GenerateModel.Height = m.Height
			cmd = m.GenerateModel.Init()
		}

	case ScreenSuccess, ScreenFailure:
		cmd = nil
	}

	return m, cmd
}

// goBack returns to the previous screen
func (m AppModel) goBack() (tea.Model, tea.Cmd) {
	switch m.CurrentScreen {
	case ScreenForm:
		return m, tea.Quit

	case ScreenBrowser, ScreenGenerating, ScreenSuccess, ScreenFailure:
		return m.transitionTo(ScreenForm, nil)

	default:
		return m, tea.Quit
	}
}

// View renders the current screen
func (m AppModel) View() string {
	switch m.CurrentScreen {
	case ScreenForm:
		return m.FormModel.View()
	case ScreenBrowser:
		return m.BrowserModel.View()
	case ScreenGenerating:
		return m.GenerateModel.View()
	case ScreenSuccess:
		return m.renderSuccessScreen()
	case ScreenFailure:
		return m.renderFailureScreen()
	default:
		return "Unknown screen"
	}
}

// renderSuccessScreen renders the success result screen
func (m AppModel) renderSuccessScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✓ Slideshow Generated Successfully!"))
	b.WriteString("\n\n")

	if m.LastResult != nil {
		b.WriteString(SuccessBoxStyle.Render("The backend finished rendering:"))
		b.WriteString("\n\n")
		if m.LastResult.OutputFile != "" {
			b.WriteString(fmt.Sprintf("  Video:  %s\n", m.LastResult.OutputFile))
		}
		if m.LastResult.LogFile != "" {
			b.WriteString(fmt.Sprintf("  Log:    %s\n", m.LastResult.LogFile))
		}
		if m.LastResult.ConfigPath != "" {
			b.WriteString(fmt.Sprintf("  Config: %s\n", m.LastResult.ConfigPath))
		}
		b.WriteString("\n")
	}

	b.WriteString("What would you like to do next?\n\n")
	b.WriteString(MenuItemStyle.Render("  e - Edit this project"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  n - Start a new project"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  q - Exit application"))
	b.WriteString("\n")

	helpText := m.Help.View(m.SuccessKeys)
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}

// renderFailureScreen renders the failure result screen
func (m AppModel) renderFailureScreen() string {
	var b strings.Builder

	b.WriteString(RenderTitle("✗ Generation Failed"))
	b.WriteString("\n\n")

	if m.LastError != nil {
		b.WriteString(ErrorBoxStyle.Render(fmt.Sprintf("Error: %v", m.LastError)))
		b.WriteString("\n\n")
	}

	if backend.IsUnreachable(m.LastError) {
		b.WriteString("The backend could not be reached. You can save the document\n")
		b.WriteString("and run the renderer yourself on the backend machine:\n\n")
	} else {
		b.WriteString("You can save the document and run the renderer by hand\n")
		b.WriteString("on the backend machine:\n\n")
	}
	b.WriteString("  " + CommandStyle.Render(backend.FallbackCommand(
		m.Settings.GeneratorCommand(),
		m.GenerateModel.Request.Filename,
	)))
	b.WriteString("\n\n")
	if m.SavedPath != "" {
		b.WriteString(SuccessBoxStyle.Render(fmt.Sprintf("Document saved to %s", m.SavedPath)))
		b.WriteString("\n\n")
	}

	b.WriteString("What would you like to do?\n\n")
	b.WriteString(MenuItemStyle.Render("  r - Retry generation"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  e - Edit the project"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  s - Save the document locally"))
	b.WriteString("\n")
	b.WriteString(MenuItemStyle.Render("  q - Exit application"))
	b.WriteString("\n")

	helpText := m.Help.View(m.FailureKeys)
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}
