package events

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bankdto "scidrill/internal/modules/bank/dto"
	"scidrill/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type BankPort interface {
	ListEvents(ctx context.Context) ([]bankdto.EventOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Events []bankdto.EventOutput
	Err    error
}

// PickedMsg bubbles up to the app when the learner chooses an event.
type PickedMsg struct {
	Event string
}

// ─── list item ───────────────────────────────────────────────────────────────

type eventItem struct {
	event bankdto.EventOutput
}

func (i eventItem) Title() string { return i.event.Name }
func (i eventItem) Description() string {
	return fmt.Sprintf("%d topics  %d questions", i.event.Topics, i.event.Questions)
}
func (i eventItem) FilterValue() string { return i.event.Name }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port    BankPort
	list    list.Model
	spinner spinner.Model
	loading bool
	empty   bool
	width   int
	height  int
}

func New(port BankPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Select an Event"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{port: port, list: l, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		events, err := m.port.ListEvents(context.Background())
		return LoadedMsg{Events: events, Err: err}
	}
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width-4, m.height-4)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Select an Event — " + msg.Err.Error()
			m.empty = true
			return m, nil
		}
		m.empty = len(msg.Events) == 0
		items := make([]list.Item, len(msg.Events))
		for i, e := range msg.Events {
			items[i] = eventItem{event: e}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if msg.String() == "enter" && !m.Filtering() {
			if item, ok := m.list.SelectedItem().(eventItem); ok {
				return m, func() tea.Msg { return PickedMsg{Event: item.event.Name} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render(m.spinner.View() + " loading question data…")
	}
	if m.empty {
		return theme.Pane.Render(theme.Muted.Render("No question data found. Point --data at a directory containing questions_full.csv."))
	}
	return m.list.View()
}
