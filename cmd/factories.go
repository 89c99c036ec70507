package cmd

import (
	"fmt"

	"tecla/adapters/storage"
	"tecla/application"
)

// openService opens the bindings database and wraps it in a service.
// The caller must Close the returned repository.
func (c *CLI) openService() (*application.BindingService, *storage.SQLiteRepository, error) {
	repo, err := storage.NewSQLiteRepository(c.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open bindings database: %w", err)
	}
	return application.NewBindingService(repo, c.validator()), repo, nil
}

// serveAddress resolves the SSH listen address from settings with defaults
func (c *CLI) serveAddress() (string, string) {
	host, port := "localhost", "2222"
	if c.settings != nil {
		if c.settings.SSHHost != "" {
			host = c.settings.SSHHost
		}
		if c.settings.SSHPort != "" {
			port = c.settings.SSHPort
		}
	}
	return host, port
}
