package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"codeberg.org/mutker/netdiag/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultMode            = ModeClient
	DefaultAddress         = "127.0.0.1:6000"
	DefaultInterval        = time.Second
	DefaultHistoryLength   = 20
	DefaultSummaryInterval = 10 * time.Second
	DefaultLogLevel        = LogLevelInfo
	DefaultEnvPrefix       = "NETDIAG"

	configName = "netdiag"
	configType = "toml"
	configDir  = "/etc"
	pidFile    = "netdiag.pid"
)

type Config struct {
	Mode            Mode
	Address         string
	Interval        time.Duration
	HistoryLength   int
	SummaryInterval time.Duration
	Prometheus      bool
	LogLevel        LogLevel
	PIDFile         string
}

var _ Provider = (*Config)(nil)

// flag name -> config key
var flagKeys = map[string]string{
	"mode":             "mode",
	"address":          "address",
	"interval":         "interval",
	"history-length":   "history_length",
	"summary-interval": "summary_interval",
	"prometheus":       "prometheus",
	"log-level":        "log_level",
	"pid-file":         "pid_file",
}

// Load reads configuration from defaults, the TOML config file, NETDIAG_*
// environment variables and command-line flags, in increasing order of
// precedence, and validates the result.
func Load(opts ...Option) (*Config, error) {
	errFactory := errors.New()

	o := options{
		envPrefix: DefaultEnvPrefix,
		args:      os.Args[1:],
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
	}

	v := viper.New()

	fs := pflag.NewFlagSet(configName, pflag.ContinueOnError)
	fs.String("mode", string(DefaultMode), "Sample a client connection or every connection of a server (client|server)")
	fs.String("address", DefaultAddress, "Address to dial in client mode or listen on in server mode")
	fs.Duration("interval", DefaultInterval, "Interval between samples")
	fs.Int("history-length", DefaultHistoryLength, "Number of samples kept per series")
	fs.Duration("summary-interval", DefaultSummaryInterval, "Interval between diagnostics summaries, 0 disables")
	fs.Bool("prometheus", false, "Mirror series into the Prometheus registry")
	fs.String("log-level", string(DefaultLogLevel), "Log level (debug|info|warning|error)")
	fs.String("pid-file", filepath.Join(os.TempDir(), pidFile), "Path of the PID file")

	if err := fs.Parse(o.args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, errFactory.Wrap(errors.ErrBindFlags, err)
		}
	}

	v.SetEnvPrefix(o.envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	configPath := o.configPath
	if configPath == "" {
		configPath = os.Getenv(o.envPrefix + "_CONFIG")
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType(configType)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(configDir)
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	cfg := &Config{
		Mode:            Mode(strings.ToLower(v.GetString("mode"))),
		Address:         v.GetString("address"),
		Interval:        v.GetDuration("interval"),
		HistoryLength:   v.GetInt("history_length"),
		SummaryInterval: v.GetDuration("summary_interval"),
		Prometheus:      v.GetBool("prometheus"),
		LogLevel:        LogLevel(strings.ToLower(v.GetString("log_level"))),
		PIDFile:         v.GetString("pid_file"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	errFactory := errors.New()

	switch {
	case !c.Mode.IsValid():
		return errFactory.WithData(errors.ErrInvalidMode, c.Mode)
	case c.Address == "":
		return errFactory.New(errors.ErrInvalidAddress)
	case c.Interval <= 0:
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	case c.SummaryInterval < 0:
		return errFactory.WithData(errors.ErrInvalidInterval, c.SummaryInterval)
	case c.HistoryLength <= 0:
		return errFactory.WithData(errors.ErrInvalidHistoryLength, c.HistoryLength)
	case !c.LogLevel.IsValid():
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

func (c *Config) GetMode() Mode                     { return c.Mode }
func (c *Config) GetAddress() string                { return c.Address }
func (c *Config) GetInterval() time.Duration        { return c.Interval }
func (c *Config) GetHistoryLength() int             { return c.HistoryLength }
func (c *Config) GetSummaryInterval() time.Duration { return c.SummaryInterval }
func (c *Config) IsPrometheusEnabled() bool         { return c.Prometheus }
func (c *Config) GetLogLevel() LogLevel             { return c.LogLevel }
func (c *Config) GetPIDFile() string                { return c.PIDFile }
