package drill

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	drilldto "scidrill/internal/modules/drill/dto"
	exportdto "scidrill/internal/modules/export/dto"
	"scidrill/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type DrillPort interface {
	View(ctx context.Context) (drilldto.SessionView, error)
	Submit(ctx context.Context, answer string) (drilldto.SessionView, error)
	ShowHint(ctx context.Context) (drilldto.SessionView, error)
	Reveal(ctx context.Context) (drilldto.SessionView, error)
	ExtraMinute(ctx context.Context) (drilldto.SessionView, error)
	MarkForReview(ctx context.Context) (drilldto.SessionView, error)
	Advance(ctx context.Context) (drilldto.SessionView, error)
	Tick(ctx context.Context) (drilldto.TickOutput, error)
	OpenCheatSheet(ctx context.Context) (drilldto.SessionView, error)
	CloseCheatSheet(ctx context.Context) (drilldto.SessionView, error)
	CheatSheet(ctx context.Context) (drilldto.CheatSheetOutput, error)
	RequestExit(ctx context.Context) (drilldto.ExitOutput, error)
	ConfirmExit(ctx context.Context) error
	CancelExit(ctx context.Context) (drilldto.SessionView, error)
	Reset(ctx context.Context) error
}

type ExportPort interface {
	ExportCheatSheet(ctx context.Context, format string) (exportdto.ExportOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type StateMsg struct {
	View drilldto.SessionView
	Err  error
}

type SheetLoadedMsg struct {
	Sheet drilldto.CheatSheetOutput
	Err   error
}

type ExportedMsg struct {
	Out exportdto.ExportOutput
	Err error
}

// ExitedMsg bubbles up when the drill is abandoned. ToEvents distinguishes a
// full exit from a reset back to topic selection.
type ExitedMsg struct {
	ToEvents bool
}

// CompletedMsg bubbles up when the last question is consumed.
type CompletedMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   DrillPort
	export ExportPort

	view   drilldto.SessionView
	cursor int
	input  textinput.Model
	sheet  viewport.Model
	status string
	width  int
	height int
}

func New(port DrillPort, export ExportPort, initial drilldto.SessionView) Model {
	input := textinput.New()
	input.Placeholder = "your answer"
	input.CharLimit = 200
	input.Width = 40
	input.Focus()

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	return Model{port: port, export: export, view: initial, input: input, sheet: vp}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) call(fn func(context.Context) (drilldto.SessionView, error)) tea.Cmd {
	return func() tea.Msg {
		view, err := fn(context.Background())
		return StateMsg{View: view, Err: err}
	}
}

func (m Model) loadSheetCmd() tea.Cmd {
	return func() tea.Msg {
		sheet, err := m.port.CheatSheet(context.Background())
		return SheetLoadedMsg{Sheet: sheet, Err: err}
	}
}

func (m Model) exportCmd(format string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.export.ExportCheatSheet(context.Background(), format)
		return ExportedMsg{Out: out, Err: err}
	}
}

// TickCmd evaluates the countdown once; the app schedules it at 1 Hz while a
// timed question is pending.
func (m Model) TickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Tick(context.Background())
		return StateMsg{View: out.View, Err: err}
	}
}

// TimedPending reports whether the countdown needs polling: timed mode, a
// live question, and no pending action.
func (m Model) TimedPending() bool {
	return m.view.Mode == "timed" && m.view.Phase == "in_progress" && !m.view.CheatSheetOpen && !m.view.ExitPending
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sheet.Width = max(m.width-8, 20)
		m.sheet.Height = max(m.height-10, 5)

	case StateMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		prevPhase := m.view.Phase
		m.view = msg.View
		if m.view.Phase != prevPhase {
			m.cursor = 0
			m.input.Reset()
		}
		if m.view.Phase == "complete" {
			return m, func() tea.Msg { return CompletedMsg{} }
		}

	case SheetLoadedMsg:
		if msg.Err != nil {
			m.status = msg.Err.Error()
			return m, nil
		}
		m.sheet.SetContent(renderSheet(msg.Sheet))

	case ExportedMsg:
		if msg.Err != nil {
			m.status = "export: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("saved %d entries to %s", msg.Out.Entries, msg.Out.Path)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if m.view.ExitPending {
		switch key {
		case "y", "enter":
			return m, func() tea.Msg {
				if err := m.port.ConfirmExit(context.Background()); err != nil {
					return StateMsg{Err: err}
				}
				return ExitedMsg{ToEvents: true}
			}
		case "n", "esc":
			return m, m.call(m.port.CancelExit)
		}
		return m, nil
	}

	if m.view.CheatSheetOpen {
		switch key {
		case "esc", "q":
			return m, m.call(m.port.CloseCheatSheet)
		case "t":
			return m, m.exportCmd("txt")
		case "m":
			return m, m.exportCmd("md")
		}
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Update(msg)
		return m, cmd
	}

	// global drill actions on control keys, so typing stays free
	switch key {
	case "ctrl+o":
		return m, tea.Batch(m.call(m.port.OpenCheatSheet), m.loadSheetCmd())
	case "ctrl+r":
		return m, func() tea.Msg {
			if err := m.port.Reset(context.Background()); err != nil {
				return StateMsg{Err: err}
			}
			return ExitedMsg{ToEvents: false}
		}
	case "ctrl+x":
		return m, func() tea.Msg {
			out, err := m.port.RequestExit(context.Background())
			if err != nil {
				return StateMsg{Err: err}
			}
			if out.ConfirmationRequired {
				view, err := m.port.View(context.Background())
				return StateMsg{View: view, Err: err}
			}
			return ExitedMsg{ToEvents: true}
		}
	}

	switch m.view.Phase {
	case "in_progress":
		return m.handleAnswerKey(msg)
	case "incorrect_pending":
		switch key {
		case "h":
			if m.view.Mode == "study" {
				return m, m.call(m.port.ShowHint)
			}
		case "r":
			return m, m.call(m.port.Reveal)
		case "e":
			if m.view.Mode == "timed" && !m.view.ExtraMinuteUsed {
				return m, m.call(m.port.ExtraMinute)
			}
		case "a":
			return m, m.call(m.port.MarkForReview)
		}
	case "correct", "revealed":
		if key == "enter" || key == "n" {
			return m, m.call(m.port.Advance)
		}
	}
	return m, nil
}

func (m Model) handleAnswerKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	options := m.answerOptions()

	if len(options) > 0 {
		switch key {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(options)-1 {
				m.cursor++
			}
		case "enter", " ":
			return m, m.submitCmd(options[m.cursor])
		}
		return m, nil
	}

	if key == "enter" {
		answer := strings.TrimSpace(m.input.Value())
		if answer == "" {
			return m, nil
		}
		return m, m.submitCmd(answer)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitCmd(answer string) tea.Cmd {
	return m.call(func(ctx context.Context) (drilldto.SessionView, error) {
		return m.port.Submit(ctx, answer)
	})
}

// answerOptions returns the choice list for the current question, or nil for
// short-answer questions.
func (m Model) answerOptions() []string {
	switch m.view.Question.Type {
	case "true_false":
		return []string{"True", "False"}
	case "multiple_choice":
		return m.view.Question.Options
	default:
		return nil
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.view.ExitPending {
		body := lipgloss.JoinVertical(lipgloss.Left,
			theme.Danger.Render("Are you sure you want to exit? Your current progress will be lost."),
			"",
			theme.Muted.Render("y exit · n stay"),
		)
		return theme.PaneActive.Render(body)
	}
	if m.view.CheatSheetOpen {
		header := theme.Title.Render("Current Cheat Sheet")
		footer := theme.Muted.Render("t save .txt · m save .md · esc return to drill")
		if m.status != "" {
			footer = m.status + "\n" + footer
		}
		return lipgloss.JoinVertical(lipgloss.Left, header, m.sheet.View(), footer)
	}
	if m.view.Question.Total == 0 {
		body := lipgloss.JoinVertical(lipgloss.Left,
			theme.Muted.Render("Nothing to practice: no questions match the chosen topics."),
			"",
			theme.Muted.Render("ctrl+r pick different topics · ctrl+x back to events"),
		)
		return theme.Pane.Render(body)
	}

	main := theme.Pane.Render(m.renderQuestion())
	side := theme.Pane.Render(m.renderSidebar())
	return lipgloss.JoinHorizontal(lipgloss.Top, main, side)
}

func (m Model) renderQuestion() string {
	q := m.view.Question
	lines := []string{
		theme.Title.Render(fmt.Sprintf("Question %d of %d", q.Index, q.Total)),
		theme.Muted.Render("Topic: " + q.Topic),
		"",
	}
	if m.view.Mode == "timed" && m.view.Phase == "in_progress" {
		lines = append(lines, theme.Timer.Render(fmt.Sprintf("Time remaining: %02d:%02d", m.view.RemainingSeconds/60, m.view.RemainingSeconds%60)), "")
	}
	lines = append(lines, q.Prompt, "")

	if m.view.HintRevealed && q.Hint != "" {
		lines = append(lines, theme.Hint.Render("Hint: "+q.Hint), "")
	}

	switch m.view.Phase {
	case "in_progress":
		lines = append(lines, m.renderAnswerWidget()...)
	case "correct":
		lines = append(lines, theme.Correct.Render("Correct!"))
		if q.Explanation != "" {
			lines = append(lines, "", "Explanation: "+q.Explanation)
		}
		lines = append(lines, "", theme.Muted.Render("enter next question"))
	case "incorrect_pending":
		lines = append(lines, m.renderPendingActions()...)
	case "revealed":
		lines = append(lines, theme.Incorrect.Render("Incorrect. The correct answer is: "+q.Answer))
		if m.view.Mode == "timed" {
			lines = append(lines, theme.Muted.Render("Question has been added to your cheat sheet for review."))
		}
		if q.Explanation != "" {
			lines = append(lines, "", "Explanation: "+q.Explanation)
		}
		lines = append(lines, "", theme.Muted.Render("enter next question"))
	}

	if m.status != "" {
		lines = append(lines, "", theme.Muted.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderAnswerWidget() []string {
	options := m.answerOptions()
	if len(options) == 0 {
		return []string{m.input.View(), "", theme.Muted.Render("enter check answer")}
	}
	lines := make([]string, 0, len(options)+2)
	for i, opt := range options {
		if i == m.cursor {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Lavender).Render("> "+opt))
		} else {
			lines = append(lines, "  "+opt)
		}
	}
	lines = append(lines, "", theme.Muted.Render("↑/↓ choose · enter check answer"))
	return lines
}

func (m Model) renderPendingActions() []string {
	if m.view.TimedOut {
		lines := []string{theme.Incorrect.Render("Time's up!")}
		return append(lines, m.pendingChoices()...)
	}
	lines := []string{theme.Incorrect.Render("Incorrect.")}
	return append(lines, m.pendingChoices()...)
}

func (m Model) pendingChoices() []string {
	if m.view.Mode == "timed" {
		choices := "r reveal answer"
		if !m.view.ExtraMinuteUsed {
			choices = "e one more minute · " + choices
		}
		return []string{"", theme.Muted.Render(choices)}
	}
	return []string{"", theme.Muted.Render("h show hint · r reveal answer · a add to cheat sheet")}
}

func (m Model) renderSidebar() string {
	lines := []string{
		theme.Title.Render("Progress"),
		fmt.Sprintf("Score: %d", m.view.Score),
		fmt.Sprintf("Attempted: %d", m.view.Attempted),
	}
	if m.view.Attempted > 0 {
		lines = append(lines, fmt.Sprintf("Accuracy: %.2f%%", m.view.AccuracyPct))
	}
	lines = append(lines,
		fmt.Sprintf("Hints used: %d", m.view.HintsUsed),
		fmt.Sprintf("Cheat sheet: %d", m.view.MissedCount),
		"",
		theme.Muted.Render("ctrl+o cheat sheet"),
		theme.Muted.Render("ctrl+r reset drill"),
		theme.Muted.Render("ctrl+x exit drill"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderSheet(sheet drilldto.CheatSheetOutput) string {
	if len(sheet.Entries) == 0 {
		return "Your cheat sheet is empty. Keep going!"
	}
	parts := make([]string, 0, len(sheet.Entries))
	for _, entry := range sheet.Entries {
		phrase := entry.Explanation
		if strings.TrimSpace(phrase) == "" {
			phrase = fmt.Sprintf("Q: %s\nA: %s", entry.Prompt, entry.Answer)
		}
		parts = append(parts, "- "+phrase)
	}
	return strings.Join(parts, "\n\n")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
