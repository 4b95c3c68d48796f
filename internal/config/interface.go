package config

import "time"

// Provider defines the interface for accessing configuration values.
// All configuration values are immutable after initial loading.
type Provider interface {
	// GetMode returns which side of the connection is sampled: client or server
	GetMode() Mode

	// GetAddress returns the address to dial (client) or listen on (server)
	GetAddress() string

	// GetInterval returns the tick period
	GetInterval() time.Duration

	// GetHistoryLength returns the number of samples each series keeps
	GetHistoryLength() int

	// GetSummaryInterval returns how often series are logged, 0 disables
	GetSummaryInterval() time.Duration

	// IsPrometheusEnabled returns whether series are mirrored to Prometheus
	IsPrometheusEnabled() bool

	// GetLogLevel returns the configured logging level
	GetLogLevel() LogLevel

	// GetPIDFile returns the path of the single-instance PID file
	GetPIDFile() string
}

// Option defines a configuration option that can be passed to Load
type Option func(*options) error

// options holds internal configuration options
type options struct {
	configPath string
	envPrefix  string
	args       []string
}

// WithConfigFile specifies an explicit configuration file path
func WithConfigFile(path string) Option {
	return func(o *options) error {
		o.configPath = path
		return nil
	}
}

// WithEnvPrefix specifies a custom environment variable prefix
// Default is "NETDIAG"
func WithEnvPrefix(prefix string) Option {
	return func(o *options) error {
		o.envPrefix = prefix
		return nil
	}
}

// WithArgs specifies the command-line arguments to parse instead of os.Args
func WithArgs(args []string) Option {
	return func(o *options) error {
		o.args = args
		return nil
	}
}

// Mode is the side of the connection being sampled.
type Mode string

const (
	ModeClient Mode = "client"
	ModeServer Mode = "server"
)

// IsValid returns whether the mode is valid
func (m Mode) IsValid() bool {
	return m == ModeClient || m == ModeServer
}

func (m Mode) String() string {
	return string(m)
}

// LogLevel represents valid logging levels
type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

// IsValid returns whether the log level is valid
func (l LogLevel) IsValid() bool {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface
func (l LogLevel) String() string {
	return string(l)
}
