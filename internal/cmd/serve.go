package cmd

import (
	"weft/internal/config"
	"weft/internal/server"
)

// ServeCmd exposes the run-history TUI over SSH.
type ServeCmd struct {
	Host string `help:"Host to bind the SSH server to" default:"127.0.0.1"`
	Port string `help:"Port to bind the SSH server to" default:"2222"`
}

// Run starts the SSH server and blocks until interrupted.
func (s *ServeCmd) Run(cli *CLI) error {
	home, err := config.HomeDir()
	if err != nil {
		return err
	}

	srv, err := server.NewServer(s.Host, s.Port, home, cli.Container.Repository)
	if err != nil {
		return err
	}

	return srv.Start()
}
