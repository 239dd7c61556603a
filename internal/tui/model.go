package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lexsim/internal/domain"
	"lexsim/internal/service"
	"lexsim/internal/similarity"
)

// ExplorerPort is the TUI-facing subset of the explorer service.
type ExplorerPort interface {
	SimilarDocuments(name string, space service.Space, metric domain.Metric, k int) ([]domain.Neighbor, error)
	SimilarWords(word string, space service.Space, metric domain.Metric, k int) ([]domain.Neighbor, error)
}

type mode int

const (
	wordMode mode = iota
	docMode
)

var spacesByMode = map[mode][]service.Space{
	wordMode: {service.Counts, service.PPMI},
	docMode:  {service.Counts, service.TFIDF},
}

// Model is the Bubble Tea model for the similarity explorer.
type Model struct {
	service  ExplorerPort
	input    textinput.Model
	viewport viewport.Model

	mode      mode
	metricIdx int
	spaceIdx  int
	topK      int

	results   []domain.Neighbor
	status    string
	lastQuery string
	ready     bool
}

// New creates a new TUI model instance.
func New(svc ExplorerPort, topK int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a word and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	if topK <= 0 {
		topK = 10
	}
	return Model{
		service:  svc,
		input:    ti,
		viewport: vp,
		topK:     topK,
		status:   "Loaded. Tab switches word/document mode, ctrl+t the metric, ctrl+w the space.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + mode line, status, query box, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderResults())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			if q := strings.TrimSpace(m.input.Value()); q != "" {
				m.runQuery(q)
				m.viewport.SetContent(m.renderResults())
				return m, nil
			}
		case "tab":
			if m.mode == wordMode {
				m.mode = docMode
				m.input.Placeholder = "Type a document name and press Enter"
			} else {
				m.mode = wordMode
				m.input.Placeholder = "Type a word and press Enter"
			}
			m.spaceIdx = 0
			// A word query has no meaning against the document axis (and
			// vice versa), so drop the old ranking instead of rerunning it.
			m.lastQuery = ""
			m.results = nil
			m.status = fmt.Sprintf("Switched to %s mode.", m.modeName())
			m.viewport.SetContent(m.renderResults())
			return m, nil
		case "ctrl+t":
			m.metricIdx = (m.metricIdx + 1) % len(similarity.All())
			m.rerun()
			return m, nil
		case "ctrl+w":
			m.spaceIdx = (m.spaceIdx + 1) % len(spacesByMode[m.mode])
			m.rerun()
			return m, nil
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current ranking.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("lexsim")
	settings := settingsStyle.Render(fmt.Sprintf("mode=%s  metric=%s  space=%s  top=%d",
		m.modeName(), m.metric().Name(), m.space(), m.topK))
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	results := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + settings + "\n" + results + "\n" + input + "\n" + status
}

func (m *Model) runQuery(q string) {
	var (
		res []domain.Neighbor
		err error
	)
	if m.mode == wordMode {
		res, err = m.service.SimilarWords(q, m.space(), m.metric(), m.topK)
	} else {
		res, err = m.service.SimilarDocuments(q, m.space(), m.metric(), m.topK)
	}
	if err != nil {
		m.status = "Error: " + err.Error()
		m.results = nil
		return
	}
	m.status = fmt.Sprintf("Top %d %ss similar to %q (%s, %s)",
		len(res), m.modeName(), q, m.metric().Name(), m.space())
	m.results = res
	m.lastQuery = q
}

// rerun refreshes the current ranking after a mode, metric, or space change.
func (m *Model) rerun() {
	if m.lastQuery != "" {
		m.runQuery(m.lastQuery)
	}
	m.viewport.SetContent(m.renderResults())
}

func (m Model) renderResults() string {
	if len(m.results) == 0 {
		return "No results yet."
	}
	var b strings.Builder
	for i, n := range m.results {
		fmt.Fprintf(&b, "%2d. %-28s %.4f\n", i+1, n.Name, n.Score)
	}
	return b.String()
}

func (m Model) metric() domain.Metric {
	return similarity.All()[m.metricIdx]
}

func (m Model) space() service.Space {
	return spacesByMode[m.mode][m.spaceIdx]
}

func (m Model) modeName() string {
	if m.mode == wordMode {
		return "word"
	}
	return "document"
}

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	settingsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
