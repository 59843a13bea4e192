package cmdflags

import (
	"github.com/tripstack/tripstack/internal/config"
	"github.com/urfave/cli/v2"
)

func Store(out *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "store",
		Aliases:     []string{"s", "db"},
		Usage:       "Path to the directory holding the trip store",
		EnvVars:     []string{"TRIPSTACK_STORE"},
		Destination: out,
		Value:       *out,
	}
}

func AdminTokenEnvVar(out *string) cli.Flag {
	if len(*out) == 0 {
		*out = config.AdminTokenEnvVar
	}
	return &cli.StringFlag{
		Name:        "admin-token-envvar-name",
		Usage:       "Name of the environment variable that holds the admin token. The token itself should not be passed as an argument",
		Value:       *out,
		Destination: out,
	}
}
