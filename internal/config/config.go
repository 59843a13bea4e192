package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	AdminTokenEnvVar = "TRIPSTACK_ADMIN_TOKEN"
)

type Config struct {
	Bind             string        `env:"TRIPSTACK_BIND" envDefault:"localhost:7010"`
	StorePath        string        `env:"TRIPSTACK_STORE"`
	SessionTTL       time.Duration `env:"TRIPSTACK_SESSION_TTL" envDefault:"336h"`
	LoginMaxFailures int           `env:"TRIPSTACK_LOGIN_MAX_FAILURES" envDefault:"10"`
	LoginWindow      time.Duration `env:"TRIPSTACK_LOGIN_WINDOW" envDefault:"10m"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to parse environment config, cause %w", err)
	}
	return cfg, nil
}

// AdminTokenFromEnv reads the admin token from the named environment
// variable and clears it so the token does not leak to child processes.
func AdminTokenFromEnv(varname string, getfn func(string) string, setfn func(string, string) error) (string, error) {
	if getfn == nil {
		getfn = os.Getenv
	}
	if setfn == nil {
		setfn = func(k, v string) error { return os.Setenv(k, v) }
	}
	val := getfn(varname)
	setfn(varname, "")
	if val == "" {
		return "", fmt.Errorf("config: environment variable %v holds no admin token", varname)
	}
	return val, nil
}
