// Package browse is an interactive viewer that redraws one table while the
// user cycles through styles and toggles separators and the padding policy.
package browse

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/unitbl/pkg/style"
	"github.com/dkoosis/unitbl/pkg/table"
)

// chrome is the number of lines used by the title, status and help bars.
const chrome = 3

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Run starts the browser on t and blocks until the user quits.
func Run(t *table.Table, start style.Style, opts ...tea.ProgramOption) error {
	program := tea.NewProgram(New(t, start), opts...)
	_, err := program.Run()
	return err
}

// Model is the bubbletea model of the browser.
type Model struct {
	tbl      *table.Table
	styles   []style.Style
	selected int

	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	err      error
}

// New returns a browser model showing t in the start style.
func New(t *table.Table, start style.Style) Model {
	m := Model{
		tbl:      t,
		styles:   style.All(),
		keys:     defaultKeys(),
		help:     help.New(),
		viewport: viewport.New(0, 0),
	}
	for i, s := range m.styles {
		if s == start {
			m.selected = i
		}
	}
	m.refresh()
	return m
}

// Style returns the style currently shown.
func (m Model) Style() style.Style { return m.styles[m.selected] }

// Err returns the error of the last render, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selected = (m.selected + 1) % len(m.styles)
			m.refresh()
		case key.Matches(msg, m.keys.Prev):
			m.selected = (m.selected + len(m.styles) - 1) % len(m.styles)
			m.refresh()
		case key.Matches(msg, m.keys.Vertical):
			v, h := m.tbl.Interior()
			m.tbl.SetInterior(!v, h)
			m.refresh()
		case key.Matches(msg, m.keys.Horizontal):
			v, h := m.tbl.Interior()
			m.tbl.SetInterior(v, !h)
			m.refresh()
		case key.Matches(msg, m.keys.Header):
			m.tbl.SetHeaderLine(!m.tbl.HeaderLine())
			m.refresh()
		case key.Matches(msg, m.keys.Padding):
			cfg := m.tbl.Config()
			if cfg.Policy == table.KeepPadding {
				cfg.Policy = table.CutPadding
			} else {
				cfg.Policy = table.KeepPadding
			}
			m.refresh()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		default:
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.ready = true
	}
	return m, nil
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	s := m.Style()
	title := titleStyle.Render(s.String()) + "  " + mutedStyle.Render(s.Description())
	body := m.viewport.View()
	if m.err != nil {
		body = errorStyle.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, m.status(), body, m.help.View(m.keys))
}

func (m Model) status() string {
	v, h := m.tbl.Interior()
	return statusStyle.Render(fmt.Sprintf("%d/%d  vertical %s  horizontal %s  header %s  %s",
		m.selected+1, len(m.styles), flag(v), flag(h), flag(m.tbl.HeaderLine()), m.tbl.Config().Policy))
}

func flag(on bool) string {
	if on {
		return onStyle.Render("on")
	}
	return offStyle.Render("off")
}

// resize gives the viewport whatever the bars leave of the window. The full
// help is as tall as its longest column.
func (m *Model) resize() {
	bars := chrome
	if m.help.ShowAll {
		bars += len(m.keys.FullHelp()[0]) - 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-bars, 1)
}

func (m *Model) refresh() {
	out, err := m.tbl.Render(m.Style())
	m.err = err
	m.viewport.SetContent(out)
	m.viewport.GotoTop()
}
