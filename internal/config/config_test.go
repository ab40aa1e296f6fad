package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "barber"

[scheduling]
url = "http://scheduling:3000"

[booking]
timezone = "UTC"
horizon_days = 120
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 120, cfg.Booking.HorizonDays)
	assert.Equal(t, 14, cfg.Booking.EligibleDatesLimit)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_PasswordFromEnv(t *testing.T) {
	t.Setenv(EnvDBPassword, "s3cret")
	path := writeConfig(t, `
[database]
dbname = "barber"
password = "from-file"

[scheduling]
url = "http://scheduling:3000"
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.DSN(), "password=s3cret")
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
[scheduling]
url = "http://scheduling:3000"
retries = 3
`)

	_, err := Load(path)

	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Database.DBName = "barber"
		cfg.Scheduling.URL = "http://scheduling:3000"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no scheduling url", func(c *Config) { c.Scheduling.URL = "" }},
		{"bad port", func(c *Config) { c.Server.HTTPPort = 70000 }},
		{"bad timezone", func(c *Config) { c.Booking.Timezone = "Mars/Olympus" }},
		{"zero horizon", func(c *Config) { c.Booking.HorizonDays = 0 }},
		{"zero rate", func(c *Config) { c.Booking.SubmitRatePerSecond = 0 }},
		{"no dbname", func(c *Config) { c.Database.DBName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}
