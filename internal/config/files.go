package config

import (
	"os"
	"path/filepath"
)

const AppName = "passdesk"

var (
	// AppConfigDir is ~/.config/passdesk
	AppConfigDir string

	// AppDataDir is ~/.local/share/passdesk
	AppDataDir string

	// AppStateDir is ~/.local/state/passdesk
	AppStateDir string

	// AppConfigFile is ~/.config/passdesk/passdesk.yaml
	AppConfigFile string

	// AppAliasesFile is ~/.config/passdesk/aliases.yaml
	AppAliasesFile string

	// AppViewsFile is ~/.config/passdesk/views.yaml
	AppViewsFile string

	// AppDBFile is ~/.local/share/passdesk/passdesk.db
	AppDBFile string

	// AppLogFile is ~/.local/state/passdesk/passdesk.log
	AppLogFile string
)

// InitLocs initializes all application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppDataDir = filepath.Join(dataHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")
	AppViewsFile = filepath.Join(AppConfigDir, "views.yaml")
	AppDBFile = filepath.Join(AppDataDir, AppName+".db")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	for _, dir := range []string{AppConfigDir, AppDataDir, AppStateDir} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	return nil
}
