package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidecraft/slidecraft/internal/backend"
	"github.com/slidecraft/slidecraft/internal/browse"
	"github.com/slidecraft/slidecraft/internal/config"
	"github.com/slidecraft/slidecraft/internal/project"
)

// bannerTimeout is how long a browse error stays on screen
const bannerTimeout = 5 * time.Second

// sessionMsg delivers the initial browsing session
type sessionMsg struct {
	session *browse.Session
	err     error
}

// listingMsg delivers the result of entering a folder
type listingMsg struct {
	err error
}

// bannerExpiredMsg clears a transient error banner
type bannerExpiredMsg struct {
	id int
}

// browserKeyMap defines key bindings for the browser screen
type browserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Parent key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k browserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Parent, k.Accept, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k browserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Enter},
		{k.Parent, k.Accept, k.Cancel},
	}
}

// browserEntry is one selectable row in the listing
type browserEntry struct {
	label  string
	path   string // folder path to enter, or "" for files
	isFile bool
	quick  bool
}

// BrowserModel is the remote folder picker screen
type BrowserModel struct {
	Client   *backend.Client
	Settings *config.Settings

	request browseRequest
	session *browse.Session

	// Navigation
	Cursor  int
	loading bool
	spinner spinner.Model

	// Error banner
	Banner   string
	bannerID int

	// Outcome
	Done      bool
	Accepted  bool
	Selection string

	// UI state
	Width  int
	Height int

	Keys browserKeyMap
}

// NewBrowserModel creates a browser for one field
func NewBrowserModel(client *backend.Client, settings *config.Settings, req browseRequest) BrowserModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return BrowserModel{
		Client:   client,
		Settings: settings,
		request:  req,
		loading:  true,
		spinner:  sp,
		Keys: browserKeyMap{
			Up: key.NewBinding(
				key.WithKeys("up", "k"),
				key.WithHelp("↑/k", "up"),
			),
			Down: key.NewBinding(
				key.WithKeys("down", "j"),
				key.WithHelp("↓/j", "down"),
			),
			Enter: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "open / select"),
			),
			Parent: key.NewBinding(
				key.WithKeys("backspace", "h"),
				key.WithHelp("backspace", "parent folder"),
			),
			Accept: key.NewBinding(
				key.WithKeys("ctrl+s"),
				key.WithHelp("ctrl+s", "use this folder"),
			),
			Cancel: key.NewBinding(
				key.WithKeys("esc"),
				key.WithHelp("esc", "cancel"),
			),
		},
	}
}

// TargetField returns the form field this browser fills
func (m BrowserModel) TargetField() project.FieldID {
	return m.request.Field
}

// Init opens the browsing session
func (m BrowserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.openSessionCmd())
}

// openSessionCmd creates the session starting at the right folder
func (m BrowserModel) openSessionCmd() tea.Cmd {
	client := m.Client
	req := m.request
	fallback := m.Settings.FallbackBrowsePath()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backend.DefaultTimeout)
		defer cancel()

		start := browse.StartPath(req.FieldValue, req.ImagesDir, fallback, req.Mode)
		session, err := browse.NewSession(ctx, client, req.Field, req.Mode, start)
		if err != nil && start != fallback {
			// A stale field value should not strand the user; retry from
			// the fallback folder
			session, err = browse.NewSession(ctx, client, req.Field, req.Mode, fallback)
		}
		return sessionMsg{session: session, err: err}
	}
}

// Update handles messages for the browser screen
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionMsg:
		m.loading = false
		if msg.err != nil {
			// Without a session there is nothing to browse; report and close
			m.Done = true
			m.Accepted = false
			return m, m.showBanner(fmt.Sprintf("cannot open browser: %v", msg.err))
		}
		m.session = msg.session
		return m, nil

	case listingMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.showBanner(fmt.Sprintf("cannot open folder: %v", msg.err))
		}
		m.Cursor = 0
		return m, nil

	case bannerExpiredMsg:
		if msg.id == m.bannerID {
			m.Banner = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil || m.loading {
		if key.Matches(msg, m.Keys.Cancel) {
			m.Done = true
			return m, nil
		}
		return m, nil
	}

	entries := m.entries()
	switch {
	case key.Matches(msg, m.Keys.Cancel):
		m.Done = true
		m.Accepted = false
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(entries)-1 {
			m.Cursor++
		}
		return m, nil

	case key.Matches(msg, m.Keys.Parent):
		if m.session.AtRoot() {
			return m, nil
		}
		return m.enterFolder(*m.session.ParentPath)

	case key.Matches(msg, m.Keys.Accept):
		if m.request.Mode == browse.PickFolder {
			m.Done = true
			m.Accepted = true
			m.Selection = m.session.Accept("")
		}
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		if len(entries) == 0 {
			return m, nil
		}
		entry := entries[m.Cursor]
		if entry.isFile {
			m.Done = true
			m.Accepted = true
			m.Selection = m.session.Accept(entry.label)
			return m, nil
		}
		return m.enterFolder(entry.path)
	}

	return m, nil
}

// enterFolder lists a folder asynchronously
func (m BrowserModel) enterFolder(path string) (tea.Model, tea.Cmd) {
	m.loading = true
	session := m.session
	cmd := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backend.DefaultTimeout)
		defer cancel()
		return listingMsg{err: session.Enter(ctx, path)}
	}
	return m, tea.Batch(m.spinner.Tick, cmd)
}

// showBanner displays a transient error banner
func (m *BrowserModel) showBanner(text string) tea.Cmd {
	m.Banner = text
	m.bannerID++
	id := m.bannerID
	return tea.Tick(bannerTimeout, func(time.Time) tea.Msg {
		return bannerExpiredMsg{id: id}
	})
}

// entries flattens quick paths, parent, folders and files into rows
func (m BrowserModel) entries() []browserEntry {
	if m.session == nil {
		return nil
	}
	var out []browserEntry
	for _, qp := range m.session.QuickPaths {
		out = append(out, browserEntry{
			label: "★ " + qp.Name,
			path:  qp.Path,
			quick: true,
		})
	}
	for _, folder := range m.session.Folders {
		out = append(out, browserEntry{
			label: folder.Name + "/",
			path:  folder.Path,
		})
	}
	for _, file := range m.session.Files {
		out = append(out, browserEntry{
			label:  file.Name,
			path:   file.Path,
			isFile: true,
		})
	}
	return out
}

// View renders the browser screen
func (m BrowserModel) View() string {
	var b strings.Builder

	title := "Choose Folder"
	if m.request.Mode == browse.PickImage {
		title = "Choose Photo"
	}
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")

	if m.Banner != "" {
		b.WriteString(BannerStyle.Render(m.Banner))
		b.WriteString("\n\n")
	}

	if m.loading || m.session == nil {
		b.WriteString(fmt.Sprintf("%s loading...\n", m.spinner.View()))
		helpText := "esc cancel"
		return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
	}

	b.WriteString(SubtitleStyle.Render("  " + m.session.CurrentPath))
	b.WriteString("\n\n")

	entries := m.entries()
	if len(entries) == 0 {
		b.WriteString(SubtitleStyle.Render("  (empty folder)"))
		b.WriteString("\n")
	}

	// Window the listing around the cursor
	maxVisible := m.Height - 12
	if maxVisible < 5 {
		maxVisible = 5
	}
	start := 0
	if m.Cursor >= maxVisible {
		start = m.Cursor - maxVisible + 1
	}
	end := start + maxVisible
	if end > len(entries) {
		end = len(entries)
	}

	for i := start; i < end; i++ {
		b.WriteString(RenderMenuItem(entries[i].label, i == m.Cursor))
		b.WriteString("\n")
	}
	if end < len(entries) {
		b.WriteString(SubtitleStyle.Render(fmt.Sprintf("  ... %d more", len(entries)-end)))
		b.WriteString("\n")
	}

	// The parent hint disappears at a filesystem root
	parts := []string{"enter open/select"}
	if !m.session.AtRoot() {
		parts = append(parts, "backspace parent")
	}
	if m.request.Mode == browse.PickFolder {
		parts = append(parts, "ctrl+s use this folder")
	}
	parts = append(parts, "esc cancel")
	helpText := strings.Join(parts, " · ")
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}
