package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidecraft/slidecraft/internal/api"
	"github.com/slidecraft/slidecraft/internal/backend"
)

// generateRequest is the payload handed to the generating screen
type generateRequest = api.GenerateRequest

// generateResult is what a finished run reports back to the app
type generateResult = api.GenerateResponse

// generateDoneMsg carries the backend's final answer
type generateDoneMsg struct {
	resp *api.GenerateResponse
	err  error
}

// streamLineMsg carries one renderer progress line
type streamLineMsg struct {
	line string
	ok   bool // false when the stream has ended
}

// maxLogLines bounds the scrollback kept on the generating screen
const maxLogLines = 200

// GenerateModel runs one generation and shows the renderer's progress
type GenerateModel struct {
	Client  *backend.Client
	Request generateRequest

	// Progress
	Lines   []string
	spinner spinner.Model

	// Outcome
	Result *generateResult
	Err    error
	done   bool

	// Stream plumbing
	stream chan api.StreamLine
	cancel context.CancelFunc

	// UI state
	Width  int
	Height int
}

// NewGenerateModel creates the generating screen for one request
func NewGenerateModel(client *backend.Client, req generateRequest) GenerateModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	return GenerateModel{
		Client:  client,
		Request: req,
		spinner: sp,
	}
}

// Init dispatches the generation and opens the progress stream
func (m GenerateModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.startCmd(),
	)
}

// startCmd launches the blocking generate call and the log stream
func (m GenerateModel) startCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		resp, err := m.Client.Generate(ctx, m.Request)
		return generateDoneMsg{resp: resp, err: err}
	}
}

// openStream subscribes to the renderer's progress lines
func (m *GenerateModel) openStream() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.stream = make(chan api.StreamLine, 64)
	m.Client.StreamLogs(ctx, m.stream)
	return m.waitForLine()
}

// waitForLine pumps one line from the stream channel into the update loop
func (m GenerateModel) waitForLine() tea.Cmd {
	stream := m.stream
	return func() tea.Msg {
		line, ok := <-stream
		return streamLineMsg{line: line.Line, ok: ok}
	}
}

// Finished reports whether the run has completed, either way
func (m GenerateModel) Finished() bool {
	return m.done
}

// Update handles messages for the generating screen
func (m GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		// Open the stream on the first tick so the subscription starts
		// after the screen is mounted
		if m.stream == nil {
			return m, tea.Batch(cmd, m.openStream())
		}
		return m, cmd

	case streamLineMsg:
		if !msg.ok {
			return m, nil
		}
		m.Lines = append(m.Lines, msg.line)
		if len(m.Lines) > maxLogLines {
			m.Lines = m.Lines[len(m.Lines)-maxLogLines:]
		}
		return m, m.waitForLine()

	case generateDoneMsg:
		if m.cancel != nil {
			m.cancel()
		}
		m.done = true
		m.Result = msg.resp
		m.Err = msg.err
		return m, nil
	}

	return m, nil
}

// View renders the generating screen
func (m GenerateModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Generating Slideshow"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s Rendering %s on the backend...\n\n", m.spinner.View(), m.Request.Filename))

	// Tail of the renderer output
	visible := m.Lines
	maxVisible := m.Height - 12
	if maxVisible < 3 {
		maxVisible = 3
	}
	if len(visible) > maxVisible {
		visible = visible[len(visible)-maxVisible:]
	}
	for _, line := range visible {
		b.WriteString(SubtitleStyle.Render("  " + line))
		b.WriteString("\n")
	}
	if len(m.Lines) == 0 {
		b.WriteString(SubtitleStyle.Render("  waiting for renderer output..."))
		b.WriteString("\n")
	}

	helpText := "rendering can take a while · ctrl+c quit"
	return RenderApplicationContainer(b.String(), helpText, m.Width, m.Height)
}
