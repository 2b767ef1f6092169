package tui

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chatbot/internal/domain"
)

// ChatPort is the TUI-facing subset of the query engine.
type ChatPort interface {
	ProcessQuery(ctx context.Context, query string) string
	Locale() domain.Locale
}

type message struct {
	fromUser bool
	text     string
}

// Model is the Bubble Tea model for the chat window.
type Model struct {
	engine   ChatPort
	input    textinput.Model
	viewport viewport.Model
	messages []message
	status   string
	ready    bool
}

var uiText = map[domain.Locale]struct{ placeholder, greeting, status string }{
	domain.LocaleES: {"Escribe tu mensaje...", "¡Hola! ¿En qué puedo ayudarte?", "Enter envía, Ctrl+C sale."},
	domain.LocaleEN: {"Type your message...", "Hi! How can I help you?", "Enter sends, Ctrl+C quits."},
}

// New creates a chat model bound to an initialized engine.
func New(engine ChatPort) Model {
	texts, ok := uiText[engine.Locale()]
	if !ok {
		texts = uiText[domain.LocaleEN]
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = texts.placeholder
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{
		engine:   engine,
		input:    ti,
		viewport: vp,
		messages: []message{{fromUser: false, text: texts.greeting}},
		status:   texts.status,
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 1 + 1 + qh + 1 // header, status, input frame, spacer
		vh := msg.Height - reserved - th
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if msg.String() == "enter" {
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.messages = append(m.messages, message{fromUser: true, text: q})
				reply := m.engine.ProcessQuery(context.Background(), q)
				m.messages = append(m.messages, message{fromUser: false, text: PlainText(reply)})
				m.input.SetValue("")
				m.viewport.SetContent(m.renderTranscript())
				m.viewport.GotoBottom()
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Marian Bot")
	transcript := transcriptStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.status)
	return header + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	var lines []string
	for _, msg := range m.messages {
		if msg.fromUser {
			lines = append(lines, userStyle.Render("You: "+msg.text))
		} else {
			lines = append(lines, botStyle.Render("Bot: ")+msg.text)
		}
	}
	return strings.Join(lines, "\n\n")
}

var (
	transcriptStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

	brRe     = regexp.MustCompile(`(?i)<br\s*/?>`)
	anchorRe = regexp.MustCompile(`(?is)<a[^>]*href=['"]([^'"]*)['"][^>]*>(.*?)</a>`)
	tagRe    = regexp.MustCompile(`<[^>]*>`)
)

// PlainText flattens the rich-text responses for terminal display:
// line breaks survive, anchors keep their target, every other tag is
// stripped.
func PlainText(s string) string {
	s = brRe.ReplaceAllString(s, "\n")
	s = anchorRe.ReplaceAllString(s, "$2 ($1)")
	s = tagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
