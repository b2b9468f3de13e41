package main

import (
	"context"

	"github.com/epeers/deficits/config"
	"github.com/epeers/deficits/internal/cli"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	cmd := cli.NewRootCommand(cli.DefaultRootOptions(cfg))
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}
