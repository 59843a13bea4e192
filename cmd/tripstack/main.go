package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/tripstack/tripstack/cmd/tripstack/auth"
	"github.com/tripstack/tripstack/cmd/tripstack/serve"
	"github.com/tripstack/tripstack/cmd/tripstack/store"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "tripstack",
		Usage: "Backend for the tripstack group trip planner",
		Commands: []*cli.Command{
			serve.Cmd(),
			store.Cmd(),
			auth.Cmd(),
		},
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Error().Err(err).Msg("Application failed")
	}
}
