package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tecla/domain"
)

// Recorder captures a shortcut as a typed spec ("cmd+shift+n") with live
// validation feedback. A terminal cannot observe the Command key directly,
// so recording is spec entry rather than raw chord capture.
type Recorder struct {
	input     textinput.Model
	validator domain.Validator

	// Result of the last parse, refreshed on every keystroke
	parseErr error
	shortcut domain.Shortcut
	valid    bool
}

// recorderDoneMsg reports the accepted shortcut to the parent model
type recorderDoneMsg struct {
	shortcut domain.Shortcut
}

// recorderCancelMsg reports that the user backed out
type recorderCancelMsg struct{}

// NewRecorder creates a Recorder using validator for live feedback
func NewRecorder(validator domain.Validator) *Recorder {
	input := textinput.New()
	input.Placeholder = "cmd+shift+n"
	input.Prompt = "Shortcut: "
	input.CharLimit = 64
	input.Focus()

	return &Recorder{
		input:     input,
		validator: validator,
	}
}

// Init implements tea.Model
func (r *Recorder) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (r *Recorder) Update(msg tea.Msg) (*Recorder, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return r, func() tea.Msg { return recorderCancelMsg{} }
		case tea.KeyEnter:
			if r.valid {
				shortcut := r.shortcut
				return r, func() tea.Msg { return recorderDoneMsg{shortcut: shortcut} }
			}
			return r, nil
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	r.refresh()
	return r, cmd
}

// refresh reparses and revalidates the current input
func (r *Recorder) refresh() {
	r.valid = false
	r.parseErr = nil
	r.shortcut = domain.NoShortcut

	value := r.input.Value()
	if value == "" {
		return
	}

	shortcut, err := domain.ParseShortcut(value)
	if err != nil {
		r.parseErr = err
		return
	}

	r.shortcut = shortcut
	if err := r.validator.Validate(shortcut); err != nil {
		r.parseErr = err
		return
	}
	r.valid = true
}

// View implements tea.Model
func (r *Recorder) View() string {
	view := r.input.View() + "\n\n"

	switch {
	case r.input.Value() == "":
		view += HelpStyle.Render("Type a shortcut spec, e.g. cmd+shift+n or ctrl+f5")
	case r.parseErr != nil:
		view += ErrorStyle.Render(fmt.Sprintf("✗ %v", r.parseErr))
	case r.valid:
		view += ValidStyle.Render(fmt.Sprintf("✓ %s", ShortcutStyle.Render(r.shortcut.String())))
	}

	view += "\n" + HelpStyle.Render("enter accept • esc cancel")
	return view
}

// Shortcut returns the last successfully validated shortcut
func (r *Recorder) Shortcut() (domain.Shortcut, bool) {
	return r.shortcut, r.valid
}
