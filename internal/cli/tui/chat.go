package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/panel"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/session"
	"github.com/johnnywang-byte/aura-quiet-living/internal/cli/types"
)

// UI configuration constants
const (
	inputCharLimit       = 4000
	panelChromeHeight    = 4 // border, header, input line
	cornerHitTolerance   = 1
	sessionDisplayLength = 8

	// Terminal cells mapped to pseudo-pixels so the panel geometry keeps
	// its pixel-unit bounds
	cellPixelWidth  = 8
	cellPixelHeight = 16
)

// Style definitions
var (
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// ChatProgram encapsulates the chat TUI program
type ChatProgram struct {
	model chatModel
}

// NewChatProgram creates a new chat program around a session controller
func NewChatProgram(ctrl *session.Controller) *ChatProgram {
	return &ChatProgram{model: initialModel(ctrl)}
}

// Run starts the chat TUI program. Mouse reporting is enabled for the
// panel resize gesture.
func (p *ChatProgram) Run() error {
	program := tea.NewProgram(p.model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := program.Run()
	return err
}

// windowSize is shared between model copies so the panel controller's
// injected viewport accessor always sees the current terminal size.
type windowSize struct {
	width  int
	height int
}

// chatModel is the Bubble Tea model containing all chat interface state
type chatModel struct {
	ctrl  *session.Controller
	panel *panel.Controller
	win   *windowSize

	input   textinput.Model
	logView viewport.Model
	spin    spinner.Model

	sending bool
}

// initialModel creates the initial chat model
func initialModel(ctrl *session.Controller) chatModel {
	input := textinput.New()
	input.Placeholder = "Ask anything..."
	input.Focus()
	input.CharLimit = inputCharLimit
	input.Prompt = ""

	spin := spinner.New()
	spin.Spinner = spinner.MiniDot
	spin.Style = dimStyle

	win := &windowSize{width: 80, height: 24}

	m := chatModel{
		ctrl:    ctrl,
		win:     win,
		input:   input,
		logView: viewport.New(60, 20),
		spin:    spin,
	}
	m.panel = panel.NewController(func() (int, int) {
		return win.width * cellPixelWidth, win.height * cellPixelHeight
	})
	m.layout()
	m.refreshContent()
	return m
}

// Init initializes the model (Bubble Tea interface)
func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

// chatRepliedMsg signals that a submit round trip finished
type chatRepliedMsg struct{}

// Update processes messages and updates the model (Bubble Tea interface)
func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKeyPress(msg)...)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.win.width = msg.Width
		m.win.height = msg.Height
		m.layout()
		m.refreshContent()

	case chatRepliedMsg:
		m.sending = false
		m.refreshContent()

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	// Input is frozen while a send is in flight
	if !m.sending {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m *chatModel) handleKeyPress(msg tea.KeyMsg) []tea.Cmd {
	var cmds []tea.Cmd

	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		cmds = append(cmds, tea.Quit)

	case tea.KeyEnter:
		// Alt+Enter is reserved for multi-line input and never submits
		if msg.Alt {
			break
		}
		if !m.sending {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.input.Reset()
				m.sending = true
				cmds = append(cmds, m.submit(text), m.spin.Tick)
				m.refreshContent()
			}
		}

	case tea.KeyUp:
		m.logView.LineUp(1)

	case tea.KeyDown:
		m.logView.LineDown(1)

	case tea.KeyPgUp:
		m.logView.ViewUp()

	case tea.KeyPgDown:
		m.logView.ViewDown()
	}

	return cmds
}

// submit runs the session controller's round trip off the update loop.
// The controller appends the user message optimistically and reconciles
// the reply or a fallback; this command just reports completion.
func (m *chatModel) submit(text string) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Submit(context.Background(), text)
		return chatRepliedMsg{}
	}
}

// handleMouse drives the corner-drag resize gesture. Listeners exist only
// in the sense of this handler: the drag state is created on press over a
// corner, consumed on motion, and discarded on release anywhere.
func (m *chatModel) handleMouse(msg tea.MouseMsg) {
	px := msg.X * cellPixelWidth
	py := msg.Y * cellPixelHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if corner, ok := m.cornerAt(msg.X, msg.Y); ok {
			m.panel.BeginDrag(corner, px, py)
		}

	case tea.MouseActionMotion:
		if m.panel.Dragging() {
			m.panel.Move(px, py)
			m.layout()
			m.refreshContent()
		}

	case tea.MouseActionRelease:
		m.panel.EndDrag()
	}
}

// cornerAt reports which panel corner, if any, the given cell hits
func (m *chatModel) cornerAt(x, y int) (panel.Corner, bool) {
	w, h := m.panelCells()
	near := func(a, b int) bool {
		d := a - b
		return d >= -cornerHitTolerance && d <= cornerHitTolerance
	}

	switch {
	case near(x, 0) && near(y, 0):
		return panel.TopLeft, true
	case near(x, w-1) && near(y, 0):
		return panel.TopRight, true
	case near(x, 0) && near(y, h-1):
		return panel.BottomLeft, true
	case near(x, w-1) && near(y, h-1):
		return panel.BottomRight, true
	}
	return 0, false
}

// panelCells converts the committed geometry into terminal cells
func (m *chatModel) panelCells() (int, int) {
	g := m.panel.Size()
	w := g.Width / cellPixelWidth
	h := g.Height / cellPixelHeight
	if w > m.win.width {
		w = m.win.width
	}
	if h > m.win.height-1 {
		h = m.win.height - 1
	}
	return w, h
}

// layout resizes the inner components to the current panel geometry
func (m *chatModel) layout() {
	w, h := m.panelCells()

	m.logView.Width = w - 2
	m.logView.Height = h - panelChromeHeight
	if m.logView.Height < 3 {
		m.logView.Height = 3
	}
	m.input.Width = w - 4
}

// refreshContent rebuilds the log view and scrolls to the latest message
func (m *chatModel) refreshContent() {
	var b strings.Builder

	for _, msg := range m.ctrl.Messages() {
		if msg.Role == types.RoleUser {
			b.WriteString(boldStyle.Render("You"))
		} else {
			b.WriteString(accentStyle.Render("Concierge"))
		}
		b.WriteString("\n")
		b.WriteString(msg.Text)
		b.WriteString("\n\n")
	}

	if suggestions := m.ctrl.Suggestions(); len(suggestions) > 0 {
		b.WriteString(dimStyle.Render("Suggested: " + strings.Join(suggestions, ", ")))
		b.WriteString("\n")
	}

	display := b.String()
	if m.logView.Width > 0 {
		display = wrapText(display, m.logView.Width)
	}

	m.logView.SetContent(display)
	m.logView.GotoBottom()
}

// View renders the UI (Bubble Tea interface)
func (m chatModel) View() string {
	w, _ := m.panelCells()

	header := accentStyle.Render("● Concierge")
	if id := m.ctrl.SessionID(); id != "" {
		short := id
		if len(short) > sessionDisplayLength {
			short = short[:sessionDisplayLength]
		}
		header += dimStyle.Render("  session " + short)
	}
	if m.sending {
		header += "  " + m.spin.View() + dimStyle.Render(" thinking...")
	}

	var inputView string
	if m.sending {
		inputView = dimStyle.Render("> waiting for reply...")
	} else {
		inputView = promptStyle.Render("> ") + m.input.View()
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.logView.View(),
		inputView,
	)

	box := panelStyle.Width(w - 2).Render(body)

	help := dimStyle.Render("Enter send • ↑↓ scroll • drag corners to resize • Esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, box, help)
}

// wrapText applies width-aware wrapping to the chat log
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 10 {
		return text
	}

	lines := strings.Split(text, "\n")
	var result strings.Builder

	for i, line := range lines {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(line, maxWidth))
	}

	return result.String()
}

// wrapLine wraps a single line, handling wide runes correctly
func wrapLine(line string, maxWidth int) string {
	if runewidth.StringWidth(line) <= maxWidth {
		return line
	}

	var result strings.Builder
	var currentLine strings.Builder
	currentWidth := 0

	for _, r := range line {
		runeW := runewidth.RuneWidth(r)

		if currentWidth+runeW > maxWidth && currentWidth > 0 {
			result.WriteString(currentLine.String())
			result.WriteString("\n")
			currentLine.Reset()
			currentWidth = 0
		}

		currentLine.WriteRune(r)
		currentWidth += runeW
	}

	if currentLine.Len() > 0 {
		result.WriteString(currentLine.String())
	}

	return result.String()
}
