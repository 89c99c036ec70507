package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"tecla/application"
	"tecla/domain"
	"tecla/logging"
)

// BindCmd creates a binding from a shortcut spec and a shell command
type BindCmd struct {
	Disabled bool   `help:"Create the binding disabled"`
	Force    bool   `help:"Overwrite an existing binding without confirmation" short:"f"`
	Name     string `arg:"" help:"Binding name"`
	Shortcut string `arg:"" help:"Shortcut spec, e.g. 'cmd+shift+n' or 'f6'"`
	Command  string `arg:"" help:"Shell command to run when the shortcut fires"`
}

// Run executes the bind command
func (b *BindCmd) Run(cli *CLI) error {
	logging.Logger.Info("Executing bind command", "name", b.Name, "shortcut", b.Shortcut)

	shortcut, err := domain.ParseShortcut(b.Shortcut)
	if err != nil {
		return fmt.Errorf("invalid shortcut spec: %w", err)
	}

	service, repo, err := cli.openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	ctx := context.Background()
	params := application.CreateBindingParams{
		Command:  b.Command,
		Disabled: b.Disabled,
		Name:     b.Name,
		Shortcut: shortcut,
	}

	existing, err := service.GetBinding(ctx, b.Name)
	if err == nil && existing != nil {
		if !b.Force && !b.confirmOverwrite(existing) {
			fmt.Println("Cancelled")
			return nil
		}
		binding, err := service.ReplaceBinding(ctx, params)
		if err != nil {
			return err
		}
		fmt.Printf("Binding '%s' replaced: %s -> %s\n", binding.Name, binding.Shortcut, binding.Command)
		return nil
	}

	binding, err := service.CreateBinding(ctx, params)
	if err != nil {
		return err
	}
	fmt.Printf("Binding '%s' created: %s -> %s\n", binding.Name, binding.Shortcut, binding.Command)
	return nil
}

func (b *BindCmd) confirmOverwrite(existing *domain.Binding) bool {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Binding '%s' already exists (%s -> %s)", existing.Name, existing.Shortcut, existing.Command)).
			Description("Overwrite it?").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		logging.Logger.Debug("Overwrite prompt aborted", "error", err)
		return false
	}
	return confirmed
}
