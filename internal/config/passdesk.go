package config

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/passdesk/passdesk/internal/config/data"
	"github.com/passdesk/passdesk/internal/logutil"
)

// Default values
const (
	DefaultQueryTimeout = 10 * time.Second
	DefaultView         = "offers"
	DefaultPageSize     = 10
	DefaultDriver       = "sqlite"
)

// DefaultPageSizes lists the page sizes offered by the paginator.
var DefaultPageSizes = []int{5, 10, 25, 50}

// Passdesk represents the passdesk global configuration.
type Passdesk struct {
	PageSizes       []int             `yaml:"pageSizes"`
	DefaultPageSize int               `yaml:"defaultPageSize"`
	DefaultView     string            `yaml:"defaultView"`
	ReadOnly        bool              `yaml:"readOnly"`
	QueryTimeout    string            `yaml:"queryTimeout"`
	DataSource      data.DataSource   `yaml:"dataSource"`
	UI              data.UI           `yaml:"ui"`
	Logger          logutil.LogConfig `yaml:"logger"`

	mx sync.RWMutex
}

// NewPassdesk creates a Passdesk with default settings.
func NewPassdesk() *Passdesk {
	return &Passdesk{
		PageSizes:       append([]int(nil), DefaultPageSizes...),
		DefaultPageSize: DefaultPageSize,
		DefaultView:     DefaultView,
		QueryTimeout:    DefaultQueryTimeout.String(),
		DataSource:      data.DataSource{Driver: DefaultDriver},
		Logger:          *logutil.NewLogConfig(),
	}
}

// Validate fills in defaults and reports settings that cannot be repaired.
func (p *Passdesk) Validate() error {
	p.mx.Lock()
	defer p.mx.Unlock()

	sizes := make([]int, 0, len(p.PageSizes))
	seen := make(map[int]struct{}, len(p.PageSizes))
	for _, s := range p.PageSizes {
		if _, ok := seen[s]; ok || s <= 0 {
			continue
		}
		seen[s] = struct{}{}
		sizes = append(sizes, s)
	}
	if len(sizes) == 0 {
		sizes = append(sizes, DefaultPageSizes...)
	}
	sort.Ints(sizes)
	p.PageSizes = sizes

	if p.DefaultPageSize <= 0 {
		p.DefaultPageSize = DefaultPageSize
	}
	if !containsInt(p.PageSizes, p.DefaultPageSize) {
		p.PageSizes = append(p.PageSizes, p.DefaultPageSize)
		sort.Ints(p.PageSizes)
	}

	if p.DefaultView == "" {
		p.DefaultView = DefaultView
	}

	if p.QueryTimeout == "" {
		p.QueryTimeout = DefaultQueryTimeout.String()
	}
	if _, err := time.ParseDuration(p.QueryTimeout); err != nil {
		return fmt.Errorf("invalid query timeout %q: %w", p.QueryTimeout, err)
	}

	switch p.DataSource.Driver {
	case "":
		p.DataSource.Driver = DefaultDriver
	case "sqlite", "pgx", "postgres":
	default:
		return fmt.Errorf("unsupported driver %q", p.DataSource.Driver)
	}

	if p.Logger.Level == "" {
		p.Logger.Level = DefaultLogLevel
	}
	return p.Logger.Validate()
}

// Override applies CLI flag overrides to the configuration.
func (p *Passdesk) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	p.mx.Lock()
	defer p.mx.Unlock()

	if IsStringSet(flags.LogLevel) {
		p.Logger.Level = *flags.LogLevel
	}
	if IsStringSet(flags.LogFile) {
		p.Logger.Filename = *flags.LogFile
	}
	if IsStringSet(flags.Driver) {
		p.DataSource.Driver = *flags.Driver
	}
	if IsStringSet(flags.DSN) {
		p.DataSource.DSN = *flags.DSN
	}
	if flags.PageSize != nil && *flags.PageSize > 0 {
		p.DefaultPageSize = *flags.PageSize
	}
	if IsStringSet(flags.Command) {
		p.DefaultView = *flags.Command
	}
	if IsBoolSet(flags.ReadOnly) {
		p.ReadOnly = true
	}
}

// GetQueryTimeout returns the parsed query timeout duration.
func (p *Passdesk) GetQueryTimeout() time.Duration {
	p.mx.RLock()
	s := p.QueryTimeout
	p.mx.RUnlock()

	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return DefaultQueryTimeout
	}
	return d
}

// NextPageSize returns the page size following current, wrapping around.
func (p *Passdesk) NextPageSize(current int) int {
	p.mx.RLock()
	defer p.mx.RUnlock()

	if len(p.PageSizes) == 0 {
		return current
	}
	for _, s := range p.PageSizes {
		if s > current {
			return s
		}
	}
	return p.PageSizes[0]
}

func containsInt(ii []int, v int) bool {
	for _, i := range ii {
		if i == v {
			return true
		}
	}
	return false
}
