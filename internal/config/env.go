package config

import "os"

// Environment variables read by the CLI.
const (
	// EnvConfig names the configuration file.
	EnvConfig = "HOTKEYS_CONFIG"

	// EnvLogLevel sets the log level.
	EnvLogLevel = "HOTKEYS_LOG_LEVEL"
)

// ResolvePath returns the configuration path: flagPath when set, else
// $HOTKEYS_CONFIG, else "". Environment variables in the result are
// expanded.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return os.ExpandEnv(flagPath)
	}
	return os.ExpandEnv(os.Getenv(EnvConfig))
}

// LogLevel returns $HOTKEYS_LOG_LEVEL, or def when it is unset or empty.
func LogLevel(def string) string {
	return GetEnvOrDefault(EnvLogLevel, def)
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
