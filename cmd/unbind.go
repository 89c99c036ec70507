package cmd

import (
	"context"
	"fmt"

	"tecla/logging"
)

// UnbindCmd deletes a binding
type UnbindCmd struct {
	Force bool   `help:"Delete without confirmation" short:"f"`
	Name  string `arg:"" help:"Name of the binding to delete"`
}

// Run executes the unbind command
func (u *UnbindCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing unbind command", "name", u.Name)

	service, repo, err := cli.openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	binding, err := service.GetBinding(ctx, u.Name)
	if err != nil {
		return fmt.Errorf("binding not found: %w", err)
	}

	if !u.Force {
		fmt.Printf("Delete binding '%s' (%s -> %s)? (y/N): ", binding.Name, binding.Shortcut, binding.Command)
		var response string
		fmt.Scanln(&response)
		if response != "y" && response != "Y" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := service.RemoveBinding(ctx, u.Name); err != nil {
		return fmt.Errorf("failed to delete binding: %w", err)
	}

	fmt.Printf("Binding '%s' deleted\n", u.Name)
	return nil
}
