package summary

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	drilldto "scidrill/internal/modules/drill/dto"
	exportdto "scidrill/internal/modules/export/dto"
	"scidrill/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type DrillPort interface {
	Summary(ctx context.Context) (drilldto.SummaryOutput, error)
	ConfirmExit(ctx context.Context) error
	Reset(ctx context.Context) error
}

type ExportPort interface {
	ExportCheatSheet(ctx context.Context, format string) (exportdto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Summary drilldto.SummaryOutput
	Err     error
}

type ExportedMsg struct {
	Out exportdto.ExportOutput
	Err error
}

// NewDrillMsg bubbles up when the learner wants another round. ToEvents
// distinguishes picking a new event from re-running the same one.
type NewDrillMsg struct {
	ToEvents bool
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	drill  DrillPort
	export ExportPort

	summary drilldto.SummaryOutput
	loading bool
	err     error
	status  string
	width   int
	height  int
}

func New(drill DrillPort, export ExportPort) Model {
	return Model{drill: drill, export: export, loading: true}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		summary, err := m.drill.Summary(context.Background())
		return LoadedMsg{Summary: summary, Err: err}
	}
}

func (m Model) exportCmd(format string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.export.ExportCheatSheet(context.Background(), format)
		return ExportedMsg{Out: out, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.summary = msg.Summary
		m.err = msg.Err

	case ExportedMsg:
		if msg.Err != nil {
			m.status = "export: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("saved %d entries to %s", msg.Out.Entries, msg.Out.Path)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "t":
			if m.summary.Missed > 0 {
				return m, m.exportCmd("txt")
			}
		case "m":
			if m.summary.Missed > 0 {
				return m, m.exportCmd("md")
			}
		case "r":
			return m, m.discardCmd(false)
		case "n", "enter":
			return m, m.discardCmd(true)
		}
	}
	return m, nil
}

func (m Model) discardCmd(toEvents bool) tea.Cmd {
	return func() tea.Msg {
		var err error
		if toEvents {
			err = m.drill.ConfirmExit(context.Background())
		} else {
			err = m.drill.Reset(context.Background())
		}
		if err != nil {
			return LoadedMsg{Summary: m.summary, Err: err}
		}
		return NewDrillMsg{ToEvents: toEvents}
	}
}

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render("tallying results…")
	}
	if m.err != nil {
		return theme.Pane.Render(theme.Danger.Render("summary: " + m.err.Error()))
	}

	s := m.summary
	lines := []string{
		theme.Title.Render("Drill Complete — " + s.Event),
		"",
		fmt.Sprintf("Score: %d / %d", s.Score, s.Attempted),
	}
	if s.Attempted > 0 {
		lines = append(lines, fmt.Sprintf("Accuracy: %.2f%%", s.AccuracyPct))
	}
	lines = append(lines, fmt.Sprintf("Hints used: %d", s.HintsUsed))

	if len(s.Topics) > 0 {
		lines = append(lines, "", theme.Title.Render("By topic"))
		for _, topic := range s.Topics {
			lines = append(lines, fmt.Sprintf("  %-30s %d/%d  %.0f%%", topic.Topic, topic.Correct, topic.Attempted, topic.AccuracyPct))
		}
	}

	lines = append(lines, "", s.Advice)

	if s.Missed > 0 {
		lines = append(lines, "",
			fmt.Sprintf("Cheat sheet: %d entries ready to save.", s.Missed),
			theme.Muted.Render("t save .txt · m save .md"))
	}
	if m.status != "" {
		lines = append(lines, "", theme.Muted.Render(m.status))
	}
	lines = append(lines, "", theme.Muted.Render("r same event again · n pick another event · q quit"))

	return theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
