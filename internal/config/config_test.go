package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "localhost:7010", cfg.Bind)
	require.Equal(t, 14*24*time.Hour, cfg.SessionTTL)
	require.Equal(t, 10, cfg.LoginMaxFailures)
	require.Equal(t, 10*time.Minute, cfg.LoginWindow)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TRIPSTACK_BIND", "0.0.0.0:8080")
	t.Setenv("TRIPSTACK_SESSION_TTL", "1h")
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.Bind)
	require.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestAdminTokenFromEnv(t *testing.T) {
	vars := map[string]string{"TOKEN_VAR": "super-secret"}
	getfn := func(k string) string { return vars[k] }
	setfn := func(k, v string) error {
		vars[k] = v
		return nil
	}
	token, err := AdminTokenFromEnv("TOKEN_VAR", getfn, setfn)
	require.NoError(t, err)
	require.Equal(t, "super-secret", token)
	require.Empty(t, vars["TOKEN_VAR"], "reading the token should remove it from the environment")

	_, err = AdminTokenFromEnv("TOKEN_VAR", getfn, setfn)
	require.Error(t, err)
}
