package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "service_unavailable"
	ErrAlreadyRunning  ErrorCode = "already_running"

	// Configuration errors
	ErrInvalidConfig        ErrorCode = "invalid_configuration"
	ErrBindFlags            ErrorCode = "bind_flags_failed"
	ErrReadConfig           ErrorCode = "read_config_failed"
	ErrInvalidInterval      ErrorCode = "invalid_interval"
	ErrInvalidMode          ErrorCode = "invalid_mode"
	ErrInvalidHistoryLength ErrorCode = "invalid_history_length"
	ErrInvalidAddress       ErrorCode = "invalid_address"

	// Logging errors
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Initialization errors
	ErrInitFailed     ErrorCode = "initialization_failed"
	ErrShutdownFailed ErrorCode = "shutdown_failed"

	// Application errors
	ErrInitApp  ErrorCode = "init_app_failed"
	ErrMainLoop ErrorCode = "main_loop_failed"

	// Network errors
	ErrDialFailed   ErrorCode = "dial_failed"
	ErrListenFailed ErrorCode = "listen_failed"
	ErrAcceptFailed ErrorCode = "accept_failed"

	// Diagnostics errors
	ErrInitDiagnostics ErrorCode = "init_diagnostics_failed"
	ErrRegisterSeries  ErrorCode = "register_series_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:             "Internal error occurred",
	ErrInvalidArgument:      "Invalid argument provided",
	ErrUnavailable:          "Service unavailable",
	ErrAlreadyRunning:       "Another instance is already running",
	ErrInvalidConfig:        "Invalid configuration",
	ErrBindFlags:            "Failed to bind flags",
	ErrReadConfig:           "Failed to read config file",
	ErrInvalidInterval:      "Invalid interval value",
	ErrInvalidMode:          "Invalid mode, expected client or server",
	ErrInvalidHistoryLength: "Invalid history length",
	ErrInvalidAddress:       "Invalid network address",
	ErrInvalidLogLevel:      "Invalid log level",
	ErrInitFailed:           "Initialization failed",
	ErrShutdownFailed:       "Shutdown failed",
	ErrInitApp:              "Failed to initialize application",
	ErrMainLoop:             "Error in main loop",
	ErrDialFailed:           "Failed to connect",
	ErrListenFailed:         "Failed to listen",
	ErrAcceptFailed:         "Failed to accept connection",
	ErrInitDiagnostics:      "Failed to initialize diagnostics",
	ErrRegisterSeries:       "Failed to register diagnostic series",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
