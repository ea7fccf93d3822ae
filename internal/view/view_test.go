package view

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/passdesk/passdesk/internal/config"
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model1"
	"github.com/passdesk/passdesk/internal/render"
	"github.com/passdesk/passdesk/internal/ui"
)

const seedCount = 37

type fakeHost struct {
	factory dao.Factory
	cfg     *config.Config
	pages   *ui.Pages
	flash   *Flash
	queue   chan func()
	pushed  []ui.Component
	pops    int
	focused tview.Primitive
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()

	ctx := context.Background()
	s, err := dao.Open(ctx, dao.DriverSQLite, filepath.Join(t.TempDir(), "passdesk.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Seed(ctx, seedCount))

	cfg := config.NewConfig()
	require.NoError(t, cfg.Passdesk.Validate())

	return &fakeHost{
		factory: dao.NewFactory(s),
		cfg:     cfg,
		pages:   ui.NewPages(),
		flash:   NewFlash(nil),
		queue:   make(chan func(), 1024),
	}
}

func (h *fakeHost) Factory() dao.Factory    { return h.factory }
func (h *fakeHost) Config() *config.Config  { return h.cfg }
func (*fakeHost) Logger() *zap.Logger       { return zap.NewNop() }
func (h *fakeHost) Pages() *ui.Pages        { return h.pages }
func (h *fakeHost) Flash() *Flash           { return h.flash }
func (h *fakeHost) Dispatch(f func())       { h.queue <- f }
func (h *fakeHost) Focus(p tview.Primitive) { h.focused = p }
func (h *fakeHost) Push(c ui.Component)     { h.pushed = append(h.pushed, c) }
func (h *fakeHost) Pop()                    { h.pops++ }

// pump runs the dispatched updates until cond holds.
func (h *fakeHost) pump(t *testing.T, cond func() bool) {
	t.Helper()

	deadline := time.After(5 * time.Second)
	for !cond() {
		select {
		case f := <-h.queue:
			f()
		case <-deadline:
			t.Fatal("condition not met before deadline")
		}
	}
}

func startBrowser(t *testing.T, h *fakeHost, rid dao.ResourceID, c model1.FilterCriteria) *Browser {
	t.Helper()

	b := NewBrowser(h, rid)
	b.SetCriteria(c)
	require.NoError(t, b.Init(context.Background()))
	b.Start()
	t.Cleanup(b.Stop)
	h.pump(t, func() bool {
		return len(b.Table().CurrentRows()) > 0 && b.view.SelectedIndex() >= 0
	})

	return b
}

func press(b *Browser, k tcell.Key) {
	evt := tcell.NewEventKey(k, 0, tcell.ModNone)
	if k < 256 && k >= ' ' {
		evt = tcell.NewEventKey(tcell.KeyRune, rune(k), tcell.ModNone)
	}
	b.view.Actions().Handle(evt)
}

func TestBrowserLoadsFirstPage(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.OfferRID, nil)

	assert.Equal(t, seedCount, b.Table().ListLength())
	assert.Equal(t, config.DefaultPageSize, b.Table().PageSize())
	assert.Len(t, b.Table().CurrentRows(), config.DefaultPageSize)
	assert.Equal(t, 4, b.Table().Paginated().PageCount())

	h.pump(t, func() bool {
		info := b.paginator.Info()
		return info.Total == seedCount && !info.Loading
	})
	info := b.paginator.Info()
	assert.Equal(t, 0, info.Index)
	assert.Equal(t, seedCount, info.Total)
	assert.Equal(t, ui.CheckboxOff, b.view.GetCell(0, 0).Text)
}

func TestBrowserSelection(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.OfferRID, nil)

	rows := b.Table().CurrentRows()
	press(b, ui.KeyA)
	assert.Equal(t, rows.Enabled(), b.Table().Selection().Count)
	for _, r := range rows {
		assert.Equal(t, !r.CheckboxDisabled, r.Selected)
		if r.CheckboxDisabled {
			assert.Equal(t, render.StateExpired, r.Item.GetStatus())
		}
	}

	press(b, ui.KeyX)
	assert.Equal(t, 0, b.Table().Selection().Count)
	assert.Empty(t, b.Table().SelectedRows())
}

func TestBrowserPaging(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.OfferRID, nil)
	first := b.Table().CurrentRows()[0].Item.GetID()

	press(b, ui.KeyN)
	h.pump(t, func() bool {
		pd := b.Table().Paginated()
		return pd.CurrentIndex == 1 && len(b.Table().CurrentRows()) > 0
	})
	assert.NotEqual(t, first, b.Table().CurrentRows()[0].Item.GetID())

	press(b, ui.KeyP)
	assert.Equal(t, 0, b.Table().Paginated().CurrentIndex)
	assert.Equal(t, first, b.Table().CurrentRows()[0].Item.GetID())

	press(b, ui.KeyS)
	h.pump(t, func() bool { return len(b.Table().CurrentRows()) == 25 })
	assert.Equal(t, 25, b.Table().PageSize())
	assert.Equal(t, 2, b.Table().Paginated().PageCount())
}

func TestBrowserFilters(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.OfferRID, nil)

	acc, err := dao.AccessorFor(h.factory, &dao.OfferRID)
	require.NoError(t, err)
	want, err := acc.Count(context.Background(), model1.FilterCriteria{model1.StatusFilter: render.StateActive})
	require.NoError(t, err)
	require.Positive(t, want)

	b.Table().SetFilterValue(model1.StatusFilter, render.StateActive)
	h.pump(t, func() bool {
		return b.Table().ListLength() == want && len(b.Table().CurrentRows()) > 0
	})
	for _, r := range b.Table().CurrentRows() {
		assert.Equal(t, render.StateActive, r.Item.GetStatus())
	}
	assert.Equal(t, "Status: Active ▾", b.filterBar.Label(model1.StatusFilter))
}

func TestBrowserStartupCriteria(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.GrantRID, model1.FilterCriteria{model1.GrantsFilter: "STUDENT"})

	for _, r := range b.Table().CurrentRows() {
		assert.Contains(t, r.Item.GetName(), "STUDENT")
	}
	assert.Equal(t, "STUDENT", b.Table().Criteria()[model1.GrantsFilter])
}

func TestBrowserSearchNarrowsFocusedFilter(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.OfferRID, nil)

	require.Equal(t, model1.StatusFilter, b.filterBar.Focused())
	b.Search("act")

	ff := b.Table().FilterColumns()
	i, ok := ff.IndexOf(model1.StatusFilter)
	require.True(t, ok)
	require.Len(t, ff[i].Source, 1)
	assert.Equal(t, render.StateActive, ff[i].Source[0].Value)

	b.Search("")
	ff = b.Table().FilterColumns()
	assert.Len(t, ff[i].Source, len(ff[i].FilteredSource))
}

func TestBrowserDetailsAction(t *testing.T) {
	h := newFakeHost(t)
	b := startBrowser(t, h, dao.PassholderRID, nil)

	press(b, tcell.KeyEnter)
	require.Len(t, h.pushed, 1)
	d, ok := h.pushed[0].(*Describe)
	require.True(t, ok)

	s, err := d.Content()
	require.NoError(t, err)
	assert.Contains(t, s, "id: "+b.Table().CurrentRows()[0].Item.GetID())
	assert.Contains(t, s, "grantKind:")
}

func TestBrowserReadOnlyHidesMutatingActions(t *testing.T) {
	ui.RegisterRowAction(ui.RowAction{Name: render.ActionCopyID, Key: ui.KeyY, Description: "Copy ID", Mutating: true})
	t.Cleanup(func() {
		ui.RegisterRowAction(ui.RowAction{Name: render.ActionCopyID, Key: ui.KeyY, Description: "Copy ID"})
	})

	h := newFakeHost(t)
	h.cfg.Passdesk.ReadOnly = true
	b := startBrowser(t, h, dao.OfferRID, nil)

	_, ok := b.view.Actions().Get(ui.KeyY)
	assert.False(t, ok)
	_, ok = b.view.Actions().Get(tcell.KeyEnter)
	assert.True(t, ok)
}

func TestBrowserUnknownResource(t *testing.T) {
	h := newFakeHost(t)
	b := NewBrowser(h, dao.ResourceID{Resource: "pods"})
	assert.ErrorIs(t, b.Init(context.Background()), dao.ErrUnknownResource)
}
