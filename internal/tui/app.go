// Package tui implements the interactive theme picker.
package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opencode-ai/themeshell/internal/palette"
	"github.com/opencode-ai/themeshell/internal/theme"
	"github.com/opencode-ai/themeshell/internal/tui/components"
	"github.com/opencode-ai/themeshell/internal/tui/styles"
)

// Drainer runs the tasks the engine posted. *loop.Loop implements it.
type Drainer interface {
	RunPending() int
}

// Run launches the picker. The engine is driven from the program's update
// goroutine; l must not be running elsewhere.
func Run(engine *theme.Engine, l Drainer) error {
	program := tea.NewProgram(newModel(engine, l), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

type model struct {
	engine *theme.Engine
	loop   Drainer

	width     int
	height    int
	styles    styles.Styles
	picker    *components.Picker
	filtering bool
	status    string
	level     statusLevel

	// last is set by the engine's propagation observer during Update.
	last *theme.Propagation
}

type statusLevel int

const (
	statusInfo statusLevel = iota
	statusApplied
	statusDropped
)

const (
	minWidth  = 60
	minHeight = 15
)

func newModel(engine *theme.Engine, l Drainer) *model {
	state := engine.State()
	m := &model{
		engine: engine,
		loop:   l,
		styles: styles.BuildStyles(styles.FromState(state)),
		picker: components.NewPicker(state.Primary, state.Surface),
	}
	engine.OnPropagation(func(p theme.Propagation) {
		m.last = &p
	})
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		switch msg.String() {
		case "tab":
			m.picker.NextSection()
		case "up", "k":
			m.picker.Move(-1)
		case "down", "j":
			m.picker.Move(1)
		case "enter", " ":
			m.apply()
		case "d":
			m.engine.ToggleDarkMode()
			m.settle()
			m.setStatus(statusInfo, "dark mode %s", onOff(m.engine.IsDarkMode()))
		case "/":
			m.filtering = true
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyCtrlC:
		return tea.Quit
	case tea.KeyEsc:
		m.filtering = false
		m.picker.SetQuery("")
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyBackspace:
		if q := m.picker.Query; q != "" {
			_, size := utf8.DecodeLastRuneInString(q)
			m.picker.SetQuery(q[:len(q)-size])
		}
	case tea.KeyRunes:
		m.picker.SetQuery(m.picker.Query + string(msg.Runes))
	}
	return nil
}

func (m *model) apply() {
	entry, ok := m.picker.Selected()
	if !ok {
		return
	}

	m.last = nil
	m.engine.UpdateColors(m.picker.Section, entry.Name)
	m.settle()

	if m.last == nil {
		m.setStatus(statusDropped, "%s %s not applied", m.picker.Section, entry.Name)
		return
	}
	m.setStatus(statusApplied, "%s %s applied (%s)", m.last.Kind, m.last.Name, m.last.Strategy)
}

func (m *model) setStatus(level statusLevel, format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.level = level
}

// settle drains the engine's posted tasks so the guard is released before
// the next key is handled, then restyles from the new selection.
func (m *model) settle() {
	m.loop.RunPending()
	m.styles = styles.BuildStyles(styles.FromState(m.engine.State()))
}

func (m *model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		return strings.Join(m.smallViewLines(), "\n") + "\n"
	}

	state := m.engine.State()
	lines := []string{
		m.styles.Title.Render("Theme"),
		m.styles.Muted.Render(fmt.Sprintf("primary %s | surface %s | dark %s", state.Primary, state.Surface, onOff(state.DarkMode))),
		"",
	}

	lines = append(lines, m.picker.Render(m.styles, map[palette.Kind]string{
		palette.KindPrimary: state.Primary,
		palette.KindSurface: state.Surface,
	})...)

	if m.status != "" {
		style := m.styles.Info
		switch m.level {
		case statusApplied:
			style = m.styles.Success
		case statusDropped:
			style = m.styles.Error
		}
		lines = append(lines, "", style.Render(m.status))
	}
	lines = append(lines, "", m.styles.Muted.Render("Shortcuts: q quit | tab switch | enter apply | d dark mode | / filter"))

	return strings.Join(lines, "\n") + "\n"
}

func (m *model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
