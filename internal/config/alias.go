package config

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/passdesk/passdesk/internal/config/data"
)

// DefaultAliases are the built-in short names for passdesk views.
var DefaultAliases = map[string]string{
	"o":      "offers",
	"offer":  "offers",
	"g":      "grants",
	"grant":  "grants",
	"ph":     "passholders",
	"holder": "passholders",
	"pass":   "passholders",
}

// Aliases maps short names typed in the command bar to view names.
// Names are matched case-insensitively.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex
}

// NewAliases returns the built-in aliases.
func NewAliases() *Aliases {
	a := Aliases{Alias: make(map[string]string, len(DefaultAliases))}
	for k, v := range DefaultAliases {
		a.Alias[k] = v
	}

	return &a
}

// Load merges the user alias file over the built-ins.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom merges the aliases found at path, a missing file keeps the built-ins.
func (a *Aliases) LoadFrom(path string) error {
	var file struct {
		Alias map[string]string `yaml:"aliases"`
	}
	if err := data.LoadYAMLIfExists(path, &file); err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}

	a.mx.Lock()
	defer a.mx.Unlock()
	for k, v := range file.Alias {
		if k = normalize(k); k != "" {
			a.Alias[k] = strings.TrimSpace(v)
		}
	}

	return nil
}

// Save writes the aliases to the user alias file.
func (a *Aliases) Save() error {
	return a.SaveTo(AppAliasesFile)
}

// SaveTo writes the aliases to path.
func (a *Aliases) SaveTo(path string) error {
	a.mx.RLock()
	defer a.mx.RUnlock()

	return data.SaveYAML(path, a)
}

// Get returns the view an alias points to, or the alias itself when unknown.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	if v, ok := a.Alias[normalize(alias)]; ok {
		return v
	}
	return alias
}

// Set binds an alias to a view.
func (a *Aliases) Set(alias, view string) {
	a.mx.Lock()
	defer a.mx.Unlock()

	a.Alias[normalize(alias)] = view
}

// All returns a copy of every alias.
func (a *Aliases) All() map[string]string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	out := make(map[string]string, len(a.Alias))
	for k, v := range a.Alias {
		out[k] = v
	}
	return out
}

// ShortNames returns the sorted aliases of a view.
func (a *Aliases) ShortNames(view string) []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	var nn []string
	for k, v := range a.Alias {
		if v == view {
			nn = append(nn, k)
		}
	}
	sort.Strings(nn)

	return nn
}

func normalize(alias string) string {
	return strings.ToLower(strings.TrimSpace(alias))
}
