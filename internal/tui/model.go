package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/trknhr/personview/internal/logger"
	"github.com/trknhr/personview/internal/model/entity"
	"github.com/trknhr/personview/internal/view"
	"github.com/trknhr/personview/internal/viewmodel"
)

var (
	iconStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Width(5).
			Align(lipgloss.Center)
	captionStyle = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	boxStyle     = lipgloss.NewStyle().Padding(1, 2)
)

// tuiModel owns the view-model for the lifetime of the program. View never
// constructs one; it only reads through PersonView.
type tuiModel struct {
	vm      *viewmodel.PersonViewModel
	view    *view.PersonView
	sched   *Scheduler
	spinner spinner.Model

	renders  int
	width    int
	height   int
	quitting bool
}

var _ tea.Model = (*tuiModel)(nil)

// NewTuiModel wires a view to vm. sched must be the scheduler vm was built
// with, so that its pending work reaches the program.
func NewTuiModel(vm *viewmodel.PersonViewModel, sched *Scheduler) *tuiModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := &tuiModel{
		vm:      vm,
		sched:   sched,
		spinner: s,
	}
	m.view = view.New(vm, view.OnChange(func() { m.renders++ }))
	return m
}

func (m *tuiModel) Init() tea.Cmd {
	return tea.Batch(m.sched.Drain(), m.spinner.Tick)
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.teardown()
			return m, tea.Quit
		}

	case firedMsg:
		msg.task.Run(msg.fn)

	case spinner.TickMsg:
		if m.vm.Status().Get() == entity.StatusLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.sched.Drain())
	return m, tea.Batch(cmds...)
}

func (m *tuiModel) View() string {
	if m.quitting {
		return ""
	}
	body := m.view.Body()

	var content string
	switch {
	case body.Status == entity.StatusLoading:
		content = m.spinner.View() + " " + body.Text
	case body.Status == entity.StatusError:
		content = errorStyle.Render(body.Text)
	case body.Icon:
		content = lipgloss.JoinVertical(lipgloss.Center,
			iconStyle.Render(view.PersonIcon),
			captionStyle.Render(body.Text),
		)
	default:
		content = body.Text
	}

	s := boxStyle.Render(content) + "\n"
	s += captionStyle.Render("(q = quit)")
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
	}
	return s
}

func (m *tuiModel) teardown() {
	if m.quitting {
		return
	}
	m.quitting = true
	m.view.Close()
	m.vm.Close()
	logger.Debug("view closed after %d notifications", m.renders)
}

// Body exposes the last rendered content for callers that print it after the
// program exits.
func (m *tuiModel) Body() view.Content {
	return m.view.Body()
}
