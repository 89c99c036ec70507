package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tecla/logging"
	"tecla/ui"
)

// BindingsCmd opens the interactive bindings browser
type BindingsCmd struct{}

// Run executes the bindings command
func (b *BindingsCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing bindings command")

	service, repo, err := cli.openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	model := ui.NewModel(service, cli.validator())
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run bindings browser: %w", err)
	}
	return nil
}
