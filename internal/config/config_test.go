package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/netdiag/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netdiag.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	configPath := writeConfig(t, `
mode = "server"
address = "0.0.0.0:7000"
interval = "250ms"
history_length = 50
summary_interval = "1m"
prometheus = true
log_level = "debug"
pid_file = "/run/netdiag.pid"
`)

	// Set environment variable to point to the test config file
	t.Setenv("NETDIAG_CONFIG", configPath)

	cfg, err := config.Load(config.WithArgs(nil))
	require.NoError(t, err)

	assert.Equal(t, config.ModeServer, cfg.GetMode())
	assert.Equal(t, "0.0.0.0:7000", cfg.GetAddress())
	assert.Equal(t, 250*time.Millisecond, cfg.GetInterval())
	assert.Equal(t, 50, cfg.GetHistoryLength())
	assert.Equal(t, time.Minute, cfg.GetSummaryInterval())
	assert.True(t, cfg.IsPrometheusEnabled())
	assert.Equal(t, config.LogLevelDebug, cfg.GetLogLevel())
	assert.Equal(t, "/run/netdiag.pid", cfg.GetPIDFile())
}

func TestLoadDefaults(t *testing.T) {
	// Ensure no config file is used
	t.Setenv("NETDIAG_CONFIG", "")

	cfg, err := config.Load(config.WithArgs(nil), config.WithEnvPrefix("NETDIAG_TEST_DEFAULTS"))
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultMode, cfg.Mode)
	assert.Equal(t, config.DefaultAddress, cfg.Address)
	assert.Equal(t, config.DefaultInterval, cfg.Interval)
	assert.Equal(t, config.DefaultHistoryLength, cfg.HistoryLength)
	assert.Equal(t, config.DefaultSummaryInterval, cfg.SummaryInterval)
	assert.False(t, cfg.Prometheus)
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, filepath.Join(os.TempDir(), "netdiag.pid"), cfg.PIDFile)
}

func TestFlagsOverrideFile(t *testing.T) {
	configPath := writeConfig(t, `
mode = "server"
interval = "5s"
`)

	cfg, err := config.Load(
		config.WithConfigFile(configPath),
		config.WithArgs([]string{"--mode", "client", "--history-length", "8"}),
	)
	require.NoError(t, err)

	assert.Equal(t, config.ModeClient, cfg.Mode)
	assert.Equal(t, 8, cfg.HistoryLength)
	assert.Equal(t, 5*time.Second, cfg.Interval)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	configPath := writeConfig(t, `
address = "10.0.0.1:6000"
`)
	t.Setenv("NETDIAG_ADDRESS", "10.0.0.2:6000")

	cfg, err := config.Load(config.WithConfigFile(configPath), config.WithArgs(nil))
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:6000", cfg.Address)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	configPath := writeConfig(t, `
This is not a valid TOML file
`)

	_, err := config.Load(config.WithConfigFile(configPath), config.WithArgs(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read_config_failed")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load(
		config.WithConfigFile(filepath.Join(t.TempDir(), "missing.toml")),
		config.WithArgs(nil),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read_config_failed")
}

func TestUnknownFlag(t *testing.T) {
	t.Setenv("NETDIAG_CONFIG", "")

	_, err := config.Load(config.WithArgs([]string{"--no-such-flag"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bind_flags_failed")
}

func TestValidation(t *testing.T) {
	t.Setenv("NETDIAG_CONFIG", "")

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"invalid log level", []string{"--log-level", "invalid"}, "invalid_log_level"},
		{"invalid mode", []string{"--mode", "peer"}, "invalid_mode"},
		{"zero interval", []string{"--interval", "0s"}, "invalid_interval"},
		{"negative summary interval", []string{"--summary-interval", "-1s"}, "invalid_interval"},
		{"zero history", []string{"--history-length", "0"}, "invalid_history_length"},
		{"empty address", []string{"--address", ""}, "invalid_address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(config.WithArgs(tt.args))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestModeIsCaseInsensitive(t *testing.T) {
	t.Setenv("NETDIAG_CONFIG", "")

	cfg, err := config.Load(config.WithArgs([]string{"--mode", "SERVER"}))
	require.NoError(t, err)
	assert.Equal(t, config.ModeServer, cfg.Mode)
}
