package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/passdesk/passdesk/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	Passdesk *Passdesk   `yaml:"passdesk"`
	Views    *data.Views `yaml:"-"`
	path     string
	mx       sync.RWMutex
}

// NewConfig creates a new Config with default settings.
func NewConfig() *Config {
	return &Config{
		Passdesk: NewPassdesk(),
		Views:    data.NewViews(),
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept unless force is set.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.path = path
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if !force {
			return nil
		}
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := data.LoadYAML(path, c); err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if c.Passdesk == nil {
		c.Passdesk = NewPassdesk()
	}

	return nil
}

// Save saves the configuration to the path it was loaded from.
// If force is false, only saves if the file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	path := c.path
	if path == "" {
		path = AppConfigFile
	}
	if path == "" {
		return fmt.Errorf("no config file path configured")
	}

	if _, err := os.Stat(path); err != nil && !force {
		return nil
	}

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine applies CLI flags on top of the loaded file and validates the result.
// Precedence: CLI flag > config file > built-in default.
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.Passdesk == nil {
		return fmt.Errorf("config.Passdesk is nil")
	}
	c.Passdesk.Override(flags)

	if c.Passdesk.DataSource.DSN == "" && (c.Passdesk.DataSource.Driver == "" || c.Passdesk.DataSource.Driver == DefaultDriver) {
		c.Passdesk.DataSource.DSN = AppDBFile
	}

	return c.Passdesk.Validate()
}
