package cmd

import (
	"fmt"

	"tecla/domain"
)

// ValidateCmd checks a shortcut spec against the validity policy
type ValidateCmd struct {
	Shortcut string `arg:"" help:"Shortcut spec to check, e.g. 'opt+j'"`
}

// Run executes the validate command
func (v *ValidateCmd) Run(cli *CLI) error {
	shortcut, err := domain.ParseShortcut(v.Shortcut)
	if err != nil {
		return fmt.Errorf("invalid shortcut spec: %w", err)
	}

	if err := cli.validator().Validate(shortcut); err != nil {
		return err
	}

	fmt.Printf("%s is a valid global shortcut\n", shortcut)
	return nil
}
