package setup

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bankdto "scidrill/internal/modules/bank/dto"
	"scidrill/internal/ui/components"
	"scidrill/internal/ui/theme"
)

const allTopicsLabel = "All Topics"

// ─── port ────────────────────────────────────────────────────────────────────

type BankPort interface {
	ListTopics(ctx context.Context, event string) ([]bankdto.TopicOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TopicsLoadedMsg struct {
	Topics []bankdto.TopicOutput
	Err    error
}

// StartRequestedMsg bubbles up when the learner hits Start Drill.
type StartRequestedMsg struct {
	Event  string
	Mode   string
	Topics []string
	Count  int
}

// BackRequestedMsg returns the app to event selection.
type BackRequestedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type focusArea int

const (
	focusMode focusArea = iota
	focusTopics
	focusCount
)

type Model struct {
	port  BankPort
	event string

	mode      string // "study" or "timed"
	topics    components.MultiSelect
	count     textinput.Model
	focus     focusArea
	poolSize  int
	loading   bool
	loadError string
	width     int
	height    int
}

func New(port BankPort, event string) Model {
	count := textinput.New()
	count.Placeholder = "10"
	count.CharLimit = 3
	count.Width = 6

	return Model{
		port:    port,
		event:   event,
		mode:    "study",
		count:   count,
		loading: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadTopicsCmd()
}

func (m Model) loadTopicsCmd() tea.Cmd {
	return func() tea.Msg {
		topics, err := m.port.ListTopics(context.Background(), m.event)
		return TopicsLoadedMsg{Topics: topics, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TopicsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadError = msg.Err.Error()
			return m, nil
		}
		items := []components.MultiSelectItem{{Label: allTopicsLabel, Checked: true}}
		m.poolSize = 0
		for _, topic := range msg.Topics {
			items = append(items, components.MultiSelectItem{
				Label:  topic.Name,
				Detail: fmt.Sprintf("%d questions", topic.Questions),
			})
			m.poolSize += topic.Questions
		}
		m.topics = components.NewMultiSelect(items)

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackRequestedMsg{} }
		case "tab":
			m.cycleFocus()
			return m, nil
		case "enter":
			return m, m.startCmd()
		}
		switch m.focus {
		case focusMode:
			switch msg.String() {
			case "left", "right", "h", "l", " ":
				if m.mode == "study" {
					m.mode = "timed"
				} else {
					m.mode = "study"
				}
			}
		case focusTopics:
			var cmd tea.Cmd
			m.topics, cmd = m.topics.Update(msg)
			return m, cmd
		case focusCount:
			var cmd tea.Cmd
			m.count, cmd = m.count.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m *Model) cycleFocus() {
	m.topics.Blur()
	m.count.Blur()
	switch m.focus {
	case focusMode:
		m.focus = focusTopics
		m.topics.Focus()
	case focusTopics:
		m.focus = focusCount
		m.count.Focus()
	default:
		m.focus = focusMode
	}
}

func (m Model) startCmd() tea.Cmd {
	selected := m.topics.Selected()
	count := 0
	if raw := strings.TrimSpace(m.count.Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil
		}
		count = parsed
		if m.poolSize > 0 && count > m.poolSize {
			count = m.poolSize
		}
	}
	return func() tea.Msg {
		return StartRequestedMsg{Event: m.event, Mode: m.mode, Topics: selected, Count: count}
	}
}

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render("loading topics…")
	}
	if m.loadError != "" {
		return theme.Pane.Render(theme.Danger.Render("topics: " + m.loadError))
	}

	modeLabel := "Study Mode"
	if m.mode == "timed" {
		modeLabel = "Timed Drill"
	}
	modeLine := "Mode: " + modeLabel + theme.Muted.Render("  (←/→ to switch)")
	if m.focus == focusMode {
		modeLine = lipgloss.NewStyle().Foreground(theme.Lavender).Render("> ") + modeLine
	} else {
		modeLine = "  " + modeLine
	}

	countLine := "  Questions: " + m.count.View() + theme.Muted.Render(fmt.Sprintf("  (max %d)", m.poolSize))

	sections := []string{
		theme.Title.Render("Select Mode and Topics for " + m.event),
		"",
		modeLine,
		"",
		"  Topics:",
		m.topics.View(),
		"",
		countLine,
		"",
		theme.Muted.Render("tab switch field · space toggle topic · enter start drill · esc back to events"),
	}
	return theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
