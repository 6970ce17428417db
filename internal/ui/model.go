package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"PoliceDigest/internal/dashboard"
	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/usecase"
)

const pollInterval = 100 * time.Millisecond

// Backend is the part of the session the dashboard drives.
type Backend interface {
	Process(ctx context.Context, day time.Time) (domain.Snapshot, error)
	Status() usecase.Status
	Clusters(filter dashboard.Filter, search string) ([]domain.TopicCluster, error)
	Alerts() ([]domain.Alert, error)
	Dismiss(id string) error
	Overview() (dashboard.Overview, error)
	Export(ctx context.Context) (usecase.ExportResult, error)
}

type pane int

const (
	paneClusters pane = iota
	paneAlerts
)

type processedMsg struct {
	day  time.Time
	snap domain.Snapshot
	err  error
}

// pollMsg carries the poll chain it belongs to; only the newest chain re-arms.
type pollMsg struct{ seq int }

type exportedMsg struct {
	result usecase.ExportResult
	err    error
}

// Model is the bubbletea model of the terminal dashboard.
type Model struct {
	ctx     context.Context
	backend Backend
	now     func() time.Time
	styles  Styles

	day        time.Time
	processing bool
	pollSeq    int
	status     *domain.ProcessingStatus
	loaded     bool

	filter    dashboard.Filter
	view      dashboard.ViewMode
	search    textinput.Model
	searching bool

	overview    dashboard.Overview
	clusters    []domain.TopicCluster
	alerts      []domain.Alert
	focus       pane
	cursor      int
	alertCursor int
	detail      *domain.TopicCluster

	progress progress.Model
	spinner  spinner.Model

	notice string
	err    error
	width  int
}

// New builds the dashboard; processing of today starts on Init.
func New(ctx context.Context, backend Backend, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.Placeholder = "Search clusters..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultStyles().Header

	return Model{
		ctx:        ctx,
		backend:    backend,
		now:        now,
		styles:     DefaultStyles(),
		day:        dashboard.Midnight(now()),
		processing: true,
		pollSeq:    1,
		filter:     dashboard.FilterAll,
		view:       dashboard.ViewGrid,
		search:     ti,
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		spinner:    sp,
	}
}

// Run starts the dashboard program and blocks until the user quits.
func Run(ctx context.Context, backend Backend, now func() time.Time) error {
	p := tea.NewProgram(New(ctx, backend, now), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.processCmd(m.day), m.poll(), m.spinner.Tick)
}

func (m Model) processCmd(day time.Time) tea.Cmd {
	return func() tea.Msg {
		snap, err := m.backend.Process(m.ctx, day)
		return processedMsg{day: day, snap: snap, err: err}
	}
}

func (m Model) exportCmd() tea.Cmd {
	return func() tea.Msg {
		result, err := m.backend.Export(m.ctx)
		return exportedMsg{result: result, err: err}
	}
}

func (m Model) poll() tea.Cmd {
	seq := m.pollSeq
	return tea.Tick(pollInterval, func(time.Time) tea.Msg { return pollMsg{seq: seq} })
}

// start begins processing day. A run already in flight is superseded.
func (m Model) start(day time.Time) (Model, tea.Cmd) {
	m.day = day
	m.processing = true
	m.status = nil
	m.err = nil
	m.notice = ""
	m.detail = nil
	m.pollSeq++
	return m, tea.Batch(m.processCmd(day), m.poll(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = max(msg.Width-20, 10)
		m.search.Width = max(msg.Width-10, 10)
		return m, nil

	case processedMsg:
		if errors.Is(msg.err, domain.ErrSuperseded) || !msg.day.Equal(m.day) {
			return m, nil
		}
		m.processing = false
		m.status = nil
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.loaded = true
		m.cursor, m.alertCursor = 0, 0
		m.refresh()
		return m, nil

	case pollMsg:
		if msg.seq != m.pollSeq || !m.processing {
			return m, nil
		}
		m.status = m.backend.Status().Current
		return m, m.poll()

	case spinner.TickMsg:
		if !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case exportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.notice = fmt.Sprintf("Saved %s (%d pages)", msg.result.Path, msg.result.Pages)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.detail != nil {
		switch msg.String() {
		case "esc", "enter", "backspace", "q":
			m.detail = nil
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "[", "left", "h":
		day, ok := dashboard.Step(m.day, m.now(), -1)
		if !ok {
			m.notice = fmt.Sprintf("Only the last %d days are available", dashboard.MaxDaysBack)
			return m, nil
		}
		return m.start(day)
	case "]", "right", "l":
		day, ok := dashboard.Step(m.day, m.now(), 1)
		if !ok {
			m.notice = "Already showing today"
			return m, nil
		}
		return m.start(day)
	case "r":
		return m.start(m.day)
	}

	if !m.loaded || m.processing {
		return m, nil
	}

	switch msg.String() {
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "f":
		m.filter = m.filter.Next()
		m.cursor = 0
		m.refresh()
	case "v":
		m.view = m.view.Toggle()
	case "tab":
		if m.focus == paneClusters {
			m.focus = paneAlerts
		} else {
			m.focus = paneClusters
		}
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "enter":
		if m.focus == paneClusters && m.cursor < len(m.clusters) {
			c := m.clusters[m.cursor]
			m.detail = &c
		}
	case "d", "x":
		if m.focus == paneAlerts && m.alertCursor < len(m.alerts) {
			if err := m.backend.Dismiss(m.alerts[m.alertCursor].ID); err != nil {
				m.err = err
				return m, nil
			}
			m.refresh()
		}
	case "e":
		m.notice = "Exporting report..."
		return m, m.exportCmd()
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.cursor = 0
	m.refresh()
	return m, cmd
}

func (m *Model) move(delta int) {
	if m.focus == paneAlerts {
		m.alertCursor = clamp(m.alertCursor+delta, len(m.alerts))
		return
	}
	m.cursor = clamp(m.cursor+delta, len(m.clusters))
}

// refresh reloads the lists from the backend after a state change.
func (m *Model) refresh() {
	clusters, err := m.backend.Clusters(m.filter, m.search.Value())
	if err != nil {
		m.err = err
		return
	}
	alerts, err := m.backend.Alerts()
	if err != nil {
		m.err = err
		return
	}
	overview, err := m.backend.Overview()
	if err != nil {
		m.err = err
		return
	}
	m.clusters, m.alerts, m.overview = clusters, alerts, overview
	m.cursor = clamp(m.cursor, len(clusters))
	m.alertCursor = clamp(m.alertCursor, len(alerts))
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	return min(i, n-1)
}
