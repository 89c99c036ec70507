package cmd

import (
	"fmt"

	"tecla/logging"
	"tecla/server"
)

// ServeCmd serves the bindings browser over SSH
type ServeCmd struct {
	Host string `help:"Host address to bind the SSH server to" default:"localhost"`
	Port string `help:"Port for the SSH server to listen on" default:"2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	host, port := s.Host, s.Port

	// Settings only apply when the flags are at their defaults
	if cli.settings != nil {
		if host == "localhost" && cli.settings.SSHHost != "" {
			host = cli.settings.SSHHost
		}
		if port == "2222" && cli.settings.SSHPort != "" {
			port = cli.settings.SSHPort
		}
	}

	logging.Logger.Info("Executing serve command", "host", host, "port", port)

	srv, err := server.NewServer(host, port, cli.DBPath, cli.settings)
	if err != nil {
		return fmt.Errorf("failed to create SSH server: %w", err)
	}
	return srv.Start()
}
