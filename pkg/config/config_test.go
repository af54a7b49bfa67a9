package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Ledger.Storage)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 30, cfg.Report.TimeoutSeconds)
	assert.Equal(t, "INR", cfg.Report.Currency)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("LEDGER_STORAGE", "Postgres")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LEDGER_SEED_PATH", "data/seed.json")
	t.Setenv("REPORT_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Ledger.Storage)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "data/seed.json", cfg.Ledger.SeedPath)
	assert.Equal(t, int64(5), int64(cfg.Report.Timeout().Seconds()))
}

func TestValidate_ReuneErrores(t *testing.T) {
	cfg := &Config{
		HTTP:   HTTPConfig{Port: 0},
		Ledger: LedgerConfig{Storage: "sqlite"},
		Report: ReportConfig{TimeoutSeconds: 0},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 3)
}

func TestDBConfig_PrefiereDatabaseURL(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/ledger?sslmode=disable", c.ConnectionString())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
