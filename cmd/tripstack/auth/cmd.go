package auth

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/tripstack/tripstack/auth"
	"github.com/tripstack/tripstack/internal/cmdflags"
	"github.com/tripstack/tripstack/internal/logutil"
	"github.com/tripstack/tripstack/store"
	"github.com/urfave/cli/v2"
)

func Cmd() *cli.Command {
	var st *store.Store
	var storePath string
	return &cli.Command{
		Name:  "auth",
		Usage: "Auth commands operate on the users of a trip store.",
		Flags: []cli.Flag{
			cmdflags.Store(&storePath),
		},
		Before: func(ctx *cli.Context) error {
			var err error
			st, err = store.Open(ctx.Context, storePath)
			return err
		},
		After: func(ctx *cli.Context) error {
			if st == nil {
				return nil
			}
			return st.Close()
		},
		Subcommands: []*cli.Command{
			registerCmd(&st),
		},
	}
}

func registerCmd(st **store.Store) *cli.Command {
	var email string
	var name string
	var password string
	return &cli.Command{
		Name:  "register",
		Usage: "Register a new user in the given store (password is read from stdin)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "email",
				Aliases:     []string{"e"},
				Usage:       "Email of the user to register",
				Destination: &email,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "Display name of the user",
				Destination: &name,
			},
		},
		Action: func(ctx *cli.Context) error {
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() {
				return sc.Err()
			}
			password = strings.TrimSpace(sc.Text())
			if len(password) == 0 {
				return errors.New("missing password from stdin")
			}
			svc := auth.NewService(*st, auth.Options{})
			user, _, err := svc.Register(ctx.Context, email, password, name)
			if err != nil {
				return err
			}
			logger := logutil.GetOrDefault(ctx.Context)
			logger.Info().Str("user.id", user.ID).Str("user.email", user.Email).Msg("User registered")
			return nil
		},
	}
}
