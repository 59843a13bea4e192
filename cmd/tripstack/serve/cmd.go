package serve

import (
	"github.com/tripstack/tripstack/api"
	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/internal/cmdflags"
	"github.com/tripstack/tripstack/internal/config"
	"github.com/tripstack/tripstack/internal/httpserver"
	"github.com/tripstack/tripstack/store"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	cfg, err := config.Load()
	adminTokenEnvVar := ""
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the tripstack HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "bind",
				Usage:       "Address to bind the API to",
				Value:       cfg.Bind,
				Destination: &cfg.Bind,
			},
			cmdflags.Store(&cfg.StorePath),
			cmdflags.AdminTokenEnvVar(&adminTokenEnvVar),
		},
		Action: func(ctx *cli.Context) error {
			if err != nil {
				return err
			}
			adminToken, err := config.AdminTokenFromEnv(adminTokenEnvVar, nil, nil)
			if err != nil {
				return err
			}
			st, err := store.Open(ctx.Context, cfg.StorePath)
			if err != nil {
				return err
			}
			defer st.Close()
			authSvc := auth.NewService(st, auth.Options{SessionTTL: cfg.SessionTTL})
			realm := api.NewRealm(adminToken, authSvc, st)
			throttle := auth.NewLoginThrottle(cfg.LoginMaxFailures, cfg.LoginWindow)
			handler := api.New(st, authSvc, realm, throttle).AsHandler()
			return httpserver.Serve(ctx.Context, cfg.Bind, handler)
		},
	}
}
