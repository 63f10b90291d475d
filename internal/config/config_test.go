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
dbname = "availability"

[business_api]
url = "http://business-api:8081"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "UTC", cfg.Booking.Timezone)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
	assert.Equal(t, "host=localhost port=5432 user= password= dbname=availability sslmode=disable", cfg.Database.DSN())
}

func TestLoad_OverridesAndEnv(t *testing.T) {
	t.Setenv(envDatabasePassword, "from-env")

	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
user = "svc"
password = "from-file"
dbname = "availability"

[redis]
enabled = true
addr = "redis:6379"
cache_ttl = 60

[business_api]
url = "http://business-api:8081"
timeout = 3

[booking]
timezone = "Europe/Moscow"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 60, cfg.Redis.CacheTTL)
	assert.Equal(t, 3, cfg.BusinessAPI.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "missing dbname", content: "[business_api]\nurl = \"http://x\"\n"},
		{name: "missing business api", content: "[database]\ndbname = \"a\"\n"},
		{name: "bad timezone", content: "[database]\ndbname = \"a\"\n[business_api]\nurl = \"http://x\"\n[booking]\ntimezone = \"Mars/Olympus\"\n"},
		{name: "bad port", content: "[server]\nhttp_port = 70000\n[database]\ndbname = \"a\"\n[business_api]\nurl = \"http://x\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
