package store

import (
	"github.com/tripstack/tripstack/internal/cmdflags"
	"github.com/tripstack/tripstack/internal/logutil"
	"github.com/tripstack/tripstack/store"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var storePath string
	return &cli.Command{
		Name:  "store",
		Usage: "Commands to manage the trip store",
		Subcommands: []*cli.Command{
			initCmd(&storePath),
		},
		Flags: []cli.Flag{
			cmdflags.Store(&storePath),
		},
	}
}

func initCmd(storePath *string) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create the store directory and its schema",
		Action: func(ctx *cli.Context) error {
			st, err := store.Open(ctx.Context, *storePath)
			if err != nil {
				return err
			}
			logger := logutil.GetOrDefault(ctx.Context)
			logger.Info().Str("store.path", *storePath).Msg("Store initialized")
			return st.Close()
		},
	}
}
