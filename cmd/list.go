package cmd

import (
	"context"
	"fmt"

	"tecla/logging"
)

// ListCmd lists bindings with their shortcuts and commands
type ListCmd struct {
	All bool `help:"Include disabled bindings" short:"a"`
}

// Run executes the list command
func (l *ListCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing list command", "all", l.All)

	service, repo, err := cli.openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	bindings, err := service.ListBindings(context.Background(), l.All)
	if err != nil {
		return fmt.Errorf("failed to list bindings: %w", err)
	}

	if len(bindings) == 0 {
		fmt.Println("No bindings")
		return nil
	}

	for _, binding := range bindings {
		marker := " "
		if !binding.Enabled {
			marker = "-"
		}
		fmt.Printf("%s %-20s %-12s %s\n", marker, binding.Name, binding.Shortcut, binding.Command)
	}
	return nil
}
