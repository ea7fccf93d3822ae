package config

import (
	"github.com/passdesk/passdesk/internal/config/data"
)

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *data.Flags {
	configFile := AppConfigFile
	logLevel := DefaultLogLevel
	logFile := AppLogFile
	driver := ""
	dsn := ""
	pageSize := 0
	command := ""
	readOnly := false
	seed := 0

	return &data.Flags{
		ConfigFile: &configFile,
		LogLevel:   &logLevel,
		LogFile:    &logFile,
		Driver:     &driver,
		DSN:        &dsn,
		PageSize:   &pageSize,
		Command:    &command,
		ReadOnly:   &readOnly,
		Seed:       &seed,
	}
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
