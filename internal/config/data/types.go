// Package data provides configuration data types for the passdesk application.
package data

// Flags represents CLI command-line flags for the passdesk application.
type Flags struct {
	ConfigFile *string // Path to the config file
	LogLevel   *string // Log level (e.g., debug, info, warn, error)
	LogFile    *string // Path to log file
	Driver     *string // Database driver, sqlite or pgx
	DSN        *string // Database connection string
	PageSize   *int    // Initial page size
	Command    *string // View to open at startup
	ReadOnly   *bool   // Disable row actions
	Seed       *int    // Populate empty tables with demo records
}

// DataSource represents the database connection settings.
type DataSource struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
	Logoless    bool `yaml:"logoless"`
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		ConfigFile: new(string),
		LogLevel:   new(string),
		LogFile:    new(string),
		Driver:     new(string),
		DSN:        new(string),
		PageSize:   new(int),
		Command:    new(string),
		ReadOnly:   new(bool),
		Seed:       new(int),
	}
}
