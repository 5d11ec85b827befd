package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[server]
http_port = 8085

[database]
host = "db.internal"
port = 5433
user = "realty"
password = "secret"
dbname = "realty"

[logs]
level = "debug"

[cache]
enabled = true
ranking_ttl = 60

[follower_service]
url = "http://followers:8080"

[rankings]
areas = ["Vancouver", " Burnaby ", "Surrey"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8085, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 60, cfg.Cache.RankingTTL)
	assert.Equal(t, "http://followers:8080", cfg.FollowerService.URL)
	assert.Equal(t, []string{"Vancouver", "Burnaby", "Surrey"}, cfg.Rankings.Areas)
	assert.Equal(t,
		"host=db.internal port=5433 user=realty password=secret dbname=realty sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[database]
user = "realty"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 300, cfg.Cache.RankingTTL)
	assert.Equal(t, 5, cfg.FollowerService.Timeout)
	assert.Equal(t, DefaultAreas, cfg.Rankings.Areas)

	// Значения по умолчанию не должны делить память с DefaultAreas
	cfg.Rankings.Areas[0] = "Changed"
	assert.Equal(t, "Vancouver", DefaultAreas[0])
}

func TestLoad_EnvFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[database]
password = "from-toml"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PASSWORD=from-env\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DB_PASSWORD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Database.Password)
}

func TestLoad_EnvOverridesPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	path := writeConfig(t, t.TempDir(), `
[server]
http_port = 8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_InvalidEnvPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	path := writeConfig(t, t.TempDir(), "")

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_DuplicateAreas(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rankings]
areas = ["Vancouver", "Richmond", "Vancouver"]
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_EmptyAreaName(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[rankings]
areas = ["Vancouver", "  "]
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[server\nhttp_port = ")

	_, err := Load(path)
	assert.Error(t, err)
}
