package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[server]
http_port = 9090

[database]
host = "localhost"
port = 5432
user = "tour"
password = "from-file"
dbname = "tours"
auto_migrate = true

[logs]
level = "debug"

[pricing]
quotation_validity_days = 21
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, 21, cfg.Pricing.QuotationValidityDays)

	// значения по умолчанию
	assert.Equal(t, 30.0, cfg.Pricing.DefaultDepositPercentage)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 720, cfg.Session.TTLMinutes)
	assert.Equal(t, 600, cfg.Server.BulkTimeout)
	assert.Equal(t, 600, cfg.RateLimit.IdleTTL)
	assert.Empty(t, cfg.RateLimit.TrustedProxies)
}

func TestLoad_TrustedProxies(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfig+"\n[ratelimit]\ntrusted_proxies = [\"10.0.0.0/8\", \"192.168.1.10\"]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.10"}, cfg.RateLimit.TrustedProxies)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("SENDGRID_API_KEY", "SG.test")

	cfg, err := Load(writeConfig(t, testConfig))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "SG.test", cfg.SendGrid.APIKey)
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_InvalidDeposit(t *testing.T) {
	_, err := Load(writeConfig(t, testConfig+"default_deposit_percentage = 120\n"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
