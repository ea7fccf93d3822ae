package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passdesk/passdesk/internal/config/data"
)

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "passdesk.yaml")
	raw := `passdesk:
  defaultView: grants
  pageSizes: [20, 5, 5, -1]
  dataSource:
    driver: pgx
    dsn: postgres://localhost/passdesk
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0600))

	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, true))
	require.NoError(t, cfg.Refine(nil))

	p := cfg.Passdesk
	assert.Equal(t, "grants", p.DefaultView)
	assert.Equal(t, "pgx", p.DataSource.Driver)
	assert.Equal(t, "postgres://localhost/passdesk", p.DataSource.DSN)
	assert.Equal(t, DefaultQueryTimeout, p.GetQueryTimeout())
	if diff := cmp.Diff([]int{5, 10, 20}, p.PageSizes); diff != "" {
		t.Errorf("PageSizes mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, false))
	assert.Error(t, cfg.Load(path, true))
	assert.Equal(t, DefaultView, cfg.Passdesk.DefaultView)
}

func TestRefineFlagsBeatFile(t *testing.T) {
	cfg := NewConfig()
	cfg.Passdesk.DataSource.DSN = "file.db"

	flags := data.NewFlags()
	*flags.LogLevel = "debug"
	*flags.DSN = "other.db"
	*flags.PageSize = 25
	*flags.Command = "passholders"
	*flags.ReadOnly = true

	require.NoError(t, cfg.Refine(flags))
	p := cfg.Passdesk
	assert.Equal(t, "debug", p.Logger.Level)
	assert.Equal(t, "other.db", p.DataSource.DSN)
	assert.Equal(t, 25, p.DefaultPageSize)
	assert.Equal(t, "passholders", p.DefaultView)
	assert.True(t, p.ReadOnly)
}

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		mutate func(*Passdesk)
		err    bool
	}{
		"defaults": {mutate: func(*Passdesk) {}},
		"bad timeout": {
			mutate: func(p *Passdesk) { p.QueryTimeout = "soon" },
			err:    true,
		},
		"bad driver": {
			mutate: func(p *Passdesk) { p.DataSource.Driver = "mysql" },
			err:    true,
		},
		"bad log format": {
			mutate: func(p *Passdesk) { p.Logger.Format = "xml" },
			err:    true,
		},
		"default size added to sizes": {
			mutate: func(p *Passdesk) { p.DefaultPageSize = 15 },
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p := NewPassdesk()
			tt.mutate(p)
			err := p.Validate()
			if tt.err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, p.PageSizes, p.DefaultPageSize)
		})
	}
}

func TestNextPageSize(t *testing.T) {
	p := NewPassdesk()
	assert.Equal(t, 25, p.NextPageSize(10))
	assert.Equal(t, 50, p.NextPageSize(25))
	assert.Equal(t, 5, p.NextPageSize(50))
	assert.Equal(t, 5, p.NextPageSize(3))
}

func TestQueryTimeout(t *testing.T) {
	p := NewPassdesk()
	p.QueryTimeout = "250ms"
	assert.Equal(t, 250*time.Millisecond, p.GetQueryTimeout())

	p.QueryTimeout = "-1s"
	assert.Equal(t, DefaultQueryTimeout, p.GetQueryTimeout())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "passdesk.yaml")

	cfg := NewConfig()
	require.NoError(t, cfg.Load(path, false))
	require.NoError(t, cfg.Save(false))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "save without force skips a missing file")

	cfg.Passdesk.DefaultView = "grants"
	require.NoError(t, cfg.Save(true))

	other := NewConfig()
	require.NoError(t, other.Load(path, true))
	assert.Equal(t, "grants", other.Passdesk.DefaultView)
}

func TestAliases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aliases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("aliases:\n  pp: passholders\n  o: grants\n"), 0600))

	a := NewAliases()
	require.NoError(t, a.LoadFrom(path))
	assert.Equal(t, "passholders", a.Get("pp"))
	assert.Equal(t, "grants", a.Get("o"))
	assert.Equal(t, "offers", a.Get("offer"))
	assert.Equal(t, "unknown", a.Get("unknown"))
	assert.Equal(t, "passholders", a.Get(" PP "))
	assert.Equal(t, []string{"g", "grant", "o"}, a.ShortNames("grants"))

	out := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, a.SaveTo(out))
	b := NewAliases()
	require.NoError(t, b.LoadFrom(out))
	assert.Equal(t, a.All(), b.All())
}

func TestAliasesMissingFile(t *testing.T) {
	a := NewAliases()
	require.NoError(t, a.LoadFrom(filepath.Join(t.TempDir(), "none.yaml")))
	assert.Equal(t, DefaultAliases, a.All())
}

func TestViewsPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.yaml")

	vv := data.NewViews()
	assert.Nil(t, vv.Get("offers"))
	vv.SetColumns("offers", []string{"title", "status"})
	vv.SetPageSize("offers", 25)
	require.NoError(t, vv.Save(path))

	loaded := data.NewViews()
	require.NoError(t, loaded.Load(path))
	got := loaded.Get("offers")
	require.NotNil(t, got)
	if diff := cmp.Diff([]string{"title", "status"}, got.Columns); diff != "" {
		t.Errorf("Columns mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 25, got.PageSize)

	missing := data.NewViews()
	require.NoError(t, missing.Load(filepath.Join(t.TempDir(), "none.yaml")))
	assert.Nil(t, missing.Get("offers"))
}
