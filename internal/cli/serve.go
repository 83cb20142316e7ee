package cli

import (
	"fmt"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/server"
)

// Execute implements the go-flags Commander interface for ServeCommand.
// It blocks until the listener fails or the process is stopped.
func (c *ServeCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	host := cfg.Server.Host
	if c.Host != "" {
		host = c.Host
	}
	port := cfg.Server.Port
	if c.Port != 0 {
		port = c.Port
	}

	client := catalog.NewClient(cfg.Data.BaseURL)
	srv := server.New(client, store, cfg.Server.AllowedOrigins, c.version)

	return srv.ListenAndServe(fmt.Sprintf("%s:%d", host, port))
}
