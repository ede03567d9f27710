package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"10s", 10 * time.Second},
		{"5m", 5 * time.Minute},
		{"10", 10 * time.Second},
		{` "10s" `, 10 * time.Second},
		{"'30'", 30 * time.Second},
		{"24h", 24 * time.Hour},
	}
	for _, tc := range cases {
		got, err := parseDuration(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := parseDuration("")
	assert.Error(t, err)
	_, err = parseDuration("soon")
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost:5432/dogfacts")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout.Duration())
	assert.Equal(t, 60*time.Second, cfg.HTTP.IdleTimeout.Duration())
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL.Duration())
	assert.Equal(t, "dev", cfg.App.Env)
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("PG_DSN", "placeholder") // registers cleanup restoring the original
	os.Unsetenv("PG_DSN")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadTokenTTLOverride(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost:5432/dogfacts")
	t.Setenv("TOKEN_TTL", "3600")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL.Duration())
}
