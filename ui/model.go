package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tecla/application"
	"tecla/domain"
	"tecla/logging"
)

// mode is the UI interaction state
type mode int

const (
	modeBrowse mode = iota
	modeRecord
)

// Messages
type bindingsLoadedMsg struct {
	bindings []domain.Binding
}

type errMsg struct {
	err error
}

// Model is the bindings browser: a list of persisted bindings with
// enable/disable, delete, and shortcut re-recording.
type Model struct {
	service   *application.BindingService
	validator domain.Validator

	bindings []domain.Binding
	cursor   int
	mode     mode
	recorder *Recorder

	err     error
	help    help.Model
	keys    KeyMap
	loading bool
	width   int
}

// NewModel creates the bindings browser model
func NewModel(service *application.BindingService, validator domain.Validator) *Model {
	return &Model{
		service:   service,
		validator: validator,
		help:      help.New(),
		keys:      NewKeyMap(),
		loading:   true,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return m.loadBindings()
}

// loadBindings fetches all bindings, including disabled ones
func (m *Model) loadBindings() tea.Cmd {
	return func() tea.Msg {
		bindings, err := m.service.ListBindings(context.Background(), true)
		if err != nil {
			return errMsg{err}
		}
		return bindingsLoadedMsg{bindings}
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case bindingsLoadedMsg:
		m.bindings = msg.bindings
		m.loading = false
		if m.cursor >= len(m.bindings) && m.cursor > 0 {
			m.cursor = len(m.bindings) - 1
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		logging.Logger.Error("UI error", "error", msg.err)
		return m, nil

	case recorderDoneMsg:
		m.mode = modeBrowse
		m.recorder = nil
		return m, m.updateShortcut(msg.shortcut)

	case recorderCancelMsg:
		m.mode = modeBrowse
		m.recorder = nil
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeRecord {
			var cmd tea.Cmd
			m.recorder, cmd = m.recorder.Update(msg)
			return m, cmd
		}
		return m.handleBrowseKey(msg)
	}

	if m.mode == modeRecord && m.recorder != nil {
		var cmd tea.Cmd
		m.recorder, cmd = m.recorder.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleBrowseKey handles key presses in browse mode
func (m *Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.bindings)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		return m, m.deleteSelected()

	case key.Matches(msg, m.keys.Record):
		if len(m.bindings) == 0 {
			return m, nil
		}
		m.mode = modeRecord
		m.recorder = NewRecorder(m.validator)
		return m, m.recorder.Init()
	}
	return m, nil
}

// toggleSelected flips the enabled flag of the selected binding
func (m *Model) toggleSelected() tea.Cmd {
	if m.cursor >= len(m.bindings) {
		return nil
	}
	binding := m.bindings[m.cursor]
	return func() tea.Msg {
		if err := m.service.SetEnabled(context.Background(), binding.Name, !binding.Enabled); err != nil {
			return errMsg{err}
		}
		bindings, err := m.service.ListBindings(context.Background(), true)
		if err != nil {
			return errMsg{err}
		}
		return bindingsLoadedMsg{bindings}
	}
}

// deleteSelected removes the selected binding
func (m *Model) deleteSelected() tea.Cmd {
	if m.cursor >= len(m.bindings) {
		return nil
	}
	name := m.bindings[m.cursor].Name
	return func() tea.Msg {
		if err := m.service.RemoveBinding(context.Background(), name); err != nil {
			return errMsg{err}
		}
		bindings, err := m.service.ListBindings(context.Background(), true)
		if err != nil {
			return errMsg{err}
		}
		return bindingsLoadedMsg{bindings}
	}
}

// updateShortcut stores the recorded shortcut for the selected binding
func (m *Model) updateShortcut(shortcut domain.Shortcut) tea.Cmd {
	if m.cursor >= len(m.bindings) {
		return nil
	}
	name := m.bindings[m.cursor].Name
	return func() tea.Msg {
		if err := m.service.UpdateShortcut(context.Background(), name, shortcut); err != nil {
			return errMsg{err}
		}
		bindings, err := m.service.ListBindings(context.Background(), true)
		if err != nil {
			return errMsg{err}
		}
		return bindingsLoadedMsg{bindings}
	}
}

// View implements tea.Model
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("tecla bindings"))
	b.WriteString("\n")

	if m.mode == modeRecord && m.recorder != nil {
		binding := m.bindings[m.cursor]
		b.WriteString(NormalStyle.Render(fmt.Sprintf("Recording new shortcut for %q", binding.Name)))
		b.WriteString("\n\n")
		b.WriteString(m.recorder.View())
		return b.String()
	}

	switch {
	case m.loading:
		b.WriteString(NormalStyle.Render("Loading bindings..."))
	case len(m.bindings) == 0:
		b.WriteString(NormalStyle.Render("No bindings yet. Add one with: tecla bind <name> <shortcut> <command>"))
	default:
		for i, binding := range m.bindings {
			b.WriteString(m.renderBinding(i, binding))
			b.WriteString("\n")
		}
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderBinding renders one list row
func (m *Model) renderBinding(i int, binding domain.Binding) string {
	cursor := "  "
	if i == m.cursor {
		cursor = "> "
	}

	name := binding.Name
	shortcut := ShortcutStyle.Render(binding.Shortcut.String())
	command := CommandStyle.Render(binding.Command)

	line := fmt.Sprintf("%s%-20s %-12s %s", cursor, name, shortcut, command)
	if !binding.Enabled {
		return DisabledStyle.Render(line + "  (disabled)")
	}
	if i == m.cursor {
		return SelectedStyle.Render(line)
	}
	return NormalStyle.Render(line)
}
