package app

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bankdto "scidrill/internal/modules/bank/dto"
	drilldto "scidrill/internal/modules/drill/dto"
	exportdto "scidrill/internal/modules/export/dto"
	"scidrill/internal/ui/theme"
	drillview "scidrill/internal/ui/views/drill"
	eventsview "scidrill/internal/ui/views/events"
	setupview "scidrill/internal/ui/views/setup"
	summaryview "scidrill/internal/ui/views/summary"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type bankPort interface {
	ListEvents(ctx context.Context) ([]bankdto.EventOutput, error)
	ListTopics(ctx context.Context, event string) ([]bankdto.TopicOutput, error)
}

type drillPort interface {
	Start(ctx context.Context, event, mode string, topics []string, count int) (drilldto.SessionView, error)
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
	Summary(ctx context.Context) (drilldto.SummaryOutput, error)
	RequestExit(ctx context.Context) (drilldto.ExitOutput, error)
	ConfirmExit(ctx context.Context) error
	CancelExit(ctx context.Context) (drilldto.SessionView, error)
	Reset(ctx context.Context) error
}

type exportPort interface {
	ExportCheatSheet(ctx context.Context, format string) (exportdto.ExportOutput, error)
}

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenEvents screenID = iota
	screenSetup
	screenDrill
	screenSummary
)

// ─── async messages ───────────────────────────────────────────────────────────

type drillStartedMsg struct {
	view drilldto.SessionView
	err  error
}

// timerTickMsg fires once a second for the whole app lifetime; it only turns
// into a countdown evaluation while a timed question is live.
type timerTickMsg struct{}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes between the event picker, the
// drill setup form, the live drill, and the results screen. All business logic
// is delegated to port interfaces; all rendering to sub-views.
type Model struct {
	bank   bankPort
	drill  drillPort
	export exportPort

	screen      screenID
	eventsView  eventsview.Model
	setupView   setupview.Model
	drillView   drillview.Model
	summaryView summaryview.Model

	event  string
	status string
	width  int
	height int
}

func NewModel(bank bankPort, drill drillPort, export exportPort) Model {
	return Model{
		bank:       bank,
		drill:      drill,
		export:     export,
		screen:     screenEvents,
		eventsView: eventsview.New(bank),
		status:     "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.eventsView.Init(), scheduleTick())
}

func scheduleTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{}
	})
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()

	case timerTickMsg:
		cmds = append(cmds, scheduleTick())
		if m.screen == screenDrill && m.drillView.TimedPending() {
			cmds = append(cmds, m.drillView.TickCmd())
		}
		return m, tea.Batch(cmds...)

	case eventsview.PickedMsg:
		m.event = msg.Event
		m.setupView = setupview.New(m.bank, m.event)
		m.screen = screenSetup
		m.propagateSize()
		return m, m.setupView.Init()

	case setupview.StartRequestedMsg:
		return m, m.startDrillCmd(msg)

	case setupview.BackRequestedMsg:
		return m.gotoEvents()

	case drillStartedMsg:
		if msg.err != nil {
			m.status = "start: " + msg.err.Error()
			return m, nil
		}
		m.drillView = drillview.New(m.drill, m.export, msg.view)
		m.screen = screenDrill
		m.status = "drill started: " + m.event
		m.propagateSize()
		return m, m.drillView.Init()

	case drillview.CompletedMsg:
		m.summaryView = summaryview.New(m.drill, m.export)
		m.screen = screenSummary
		m.propagateSize()
		return m, m.summaryView.Init()

	case drillview.ExitedMsg:
		if msg.ToEvents {
			return m.gotoEvents()
		}
		return m.gotoSetup()

	case summaryview.NewDrillMsg:
		if msg.ToEvents {
			return m.gotoEvents()
		}
		return m.gotoSetup()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// free typing happens on the drill and setup screens
			if m.screen == screenEvents && !m.eventsView.Filtering() {
				return m, tea.Quit
			}
			if m.screen == screenSummary {
				return m, tea.Quit
			}
		}
	}

	// Propagate the message to the active screen's sub-view.
	var cmd tea.Cmd
	switch m.screen {
	case screenEvents:
		m.eventsView, cmd = m.eventsView.Update(msg)
	case screenSetup:
		m.setupView, cmd = m.setupView.Update(msg)
	case screenDrill:
		m.drillView, cmd = m.drillView.Update(msg)
	case screenSummary:
		m.summaryView, cmd = m.summaryView.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) gotoEvents() (tea.Model, tea.Cmd) {
	m.event = ""
	m.screen = screenEvents
	m.eventsView = eventsview.New(m.bank)
	m.status = "ready"
	m.propagateSize()
	return m, m.eventsView.Init()
}

func (m Model) gotoSetup() (tea.Model, tea.Cmd) {
	m.screen = screenSetup
	m.setupView = setupview.New(m.bank, m.event)
	m.propagateSize()
	return m, m.setupView.Init()
}

func (m Model) startDrillCmd(msg setupview.StartRequestedMsg) tea.Cmd {
	return func() tea.Msg {
		view, err := m.drill.Start(context.Background(), msg.Event, msg.Mode, msg.Topics, msg.Count)
		return drillStartedMsg{view: view, err: err}
	}
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 2}
	m.eventsView, _ = m.eventsView.Update(sz)
	m.setupView, _ = m.setupView.Update(sz)
	m.drillView, _ = m.drillView.Update(sz)
	m.summaryView, _ = m.summaryView.Update(sz)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch m.screen {
	case screenEvents:
		content = m.eventsView.View()
	case screenSetup:
		content = m.setupView.View()
	case screenDrill:
		content = m.drillView.View()
	case screenSummary:
		content = m.summaryView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.event != "" {
		left = theme.Title.Render("● "+m.event) + "  " + left
	}
	right := theme.Muted.Render("ctrl+c quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
