// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package view

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"go.uber.org/zap"

	"github.com/passdesk/passdesk/internal/config"
	"github.com/passdesk/passdesk/internal/config/data"
	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/model"
	"github.com/passdesk/passdesk/internal/model1"
	"github.com/passdesk/passdesk/internal/render"
	"github.com/passdesk/passdesk/internal/ui"
)

// Host is the part of the application a browser depends on.
type Host interface {
	Factory() dao.Factory
	Config() *config.Config
	Logger() *zap.Logger
	Pages() *ui.Pages
	Flash() *Flash
	Dispatch(func())
	Focus(tview.Primitive)
	Push(ui.Component)
	Pop()
}

// Searchable narrows its options from the search bar.
type Searchable interface {
	Search(text string)
}

// Browser shows one resource as a paginated, filterable, multi-select table.
type Browser struct {
	*tview.Flex

	host      Host
	rid       dao.ResourceID
	renderer  render.Renderer
	accessor  dao.Accessor
	table     *model.Table[dao.Object]
	loader    *model.Loader[dao.Object]
	view      *ui.Table
	filterBar *ui.FilterBar
	paginator *ui.Paginator
	columns   *ui.ColumnManager
	criteria  model1.FilterCriteria
	log       *zap.Logger
	cancelFn  context.CancelFunc
	loading   bool
	mx        sync.RWMutex
}

// NewBrowser returns a browser for a resource.
func NewBrowser(h Host, rid dao.ResourceID) *Browser {
	return &Browser{
		Flex: tview.NewFlex().SetDirection(tview.FlexRow),
		host: h,
		rid:  rid,
		log:  h.Logger().With(zap.String("view", rid.String())),
	}
}

// SetCriteria sets the filter values applied when the browser starts.
func (b *Browser) SetCriteria(c model1.FilterCriteria) {
	b.criteria = c.Clone()
}

// Init resolves the resource declarations and builds the table controller.
func (b *Browser) Init(ctx context.Context) error {
	r, err := render.RendererFor(b.rid)
	if err != nil {
		return err
	}
	acc, err := dao.AccessorFor(b.host.Factory(), &b.rid)
	if err != nil {
		return err
	}
	b.renderer, b.accessor = r, acc

	filters, err := render.BuildFilters(ctx, r, acc.Options)
	if err != nil {
		return err
	}
	prefs := b.prefs()
	cols := ApplyViewPrefs(r.Columns(), prefs)

	b.table = model.NewTable[dao.Object](cols, filters, r.DisplayedSlots(), 0)
	for k, v := range b.criteria {
		b.table.SetFilterValue(k, v)
	}
	b.table.AddListener(b)

	b.loader = model.NewLoader(b.table, model.Source[dao.Object](acc), b.host.Dispatch, b.log)
	b.loader.SetDisabledFunc(r.CheckboxDisabled)
	b.loader.SetErrorHandler(b.host.Flash().Err)
	if cfg := b.passdesk(); cfg != nil {
		b.loader.SetTimeout(cfg.GetQueryTimeout())
	}

	b.view = ui.NewTable(b.rid.String())
	b.view.Init()
	b.view.SetColorerFn(r.ColorerFunc())
	b.filterBar = ui.NewFilterBar()
	b.filterBar.SetChangedFn(b.table.SetFilterValue)
	b.filterBar.SetDoneFn(func() { b.host.Focus(b.view) })
	b.paginator = ui.NewPaginator()
	b.columns = ui.NewColumnManager(b.host.Pages())
	b.columns.SetFocusFn(b.host.Focus)

	b.AddItem(b.filterBar, 1, 0, false).
		AddItem(b.view, 0, 1, true).
		AddItem(b.paginator, 1, 0, false)
	b.bindKeys(b.view.Actions())
	b.refresh()

	return nil
}

// Start counts the records and loads the first page.
func (b *Browser) Start() {
	size := b.table.PageSize()
	if size <= 0 {
		size = b.initialPageSize()
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.mx.Lock()
	if b.cancelFn != nil {
		b.cancelFn()
	}
	b.cancelFn = cancel
	b.loading = true
	b.mx.Unlock()

	go func() {
		if err := b.loader.Start(ctx, size); err != nil && !errors.Is(err, context.Canceled) {
			b.log.Error("browser start failed", zap.Error(err))
			b.host.Flash().Err(err)
		}
	}()
}

// Stop cancels the pending loads.
func (b *Browser) Stop() {
	b.mx.Lock()
	if b.cancelFn != nil {
		b.cancelFn()
		b.cancelFn = nil
	}
	b.mx.Unlock()

	if b.loader != nil {
		b.loader.Stop()
	}
}

// Name returns the resource name.
func (b *Browser) Name() string {
	return b.rid.String()
}

// Hints returns the table key bindings.
func (b *Browser) Hints() ui.MenuHints {
	if b.view == nil {
		return nil
	}
	return b.view.Hints()
}

// Table returns the table controller.
func (b *Browser) Table() *model.Table[dao.Object] {
	return b.table
}

// Search narrows the options of the focused filter.
func (b *Browser) Search(text string) {
	if name := b.filterBar.Focused(); name != "" {
		b.table.NarrowOptions(name, text)
	}
	b.refresh()
}

// TableLoadData implements model.TableListener.
func (b *Browser) TableLoadData(model.PageRequest) {
	b.setLoading(true)
	b.host.Dispatch(b.refresh)
}

// TablePageChanged implements model.TableListener.
func (b *Browser) TablePageChanged(pd model1.PaginatedData[dao.Object]) {
	b.setLoading(currentCold(pd))
	b.host.Dispatch(b.refresh)
}

// TableCheckboxUpdated implements model.TableListener.
func (b *Browser) TableCheckboxUpdated(bool) {
	b.host.Dispatch(b.refresh)
}

// TableSelectedItems implements model.TableListener.
func (b *Browser) TableSelectedItems(n int) {
	b.log.Debug("selection changed", zap.Int("selected", n))
}

// TableFiltersApplied implements model.TableListener.
func (b *Browser) TableFiltersApplied(c model1.FilterCriteria) {
	b.log.Debug("filters applied", zap.Any("criteria", c))
	b.setLoading(true)
	b.host.Dispatch(b.refresh)
}

// TableActionClicked implements model.TableListener.
func (b *Browser) TableActionClicked(evt model.ActionEvent[dao.Object]) {
	o := evt.Row.Item
	b.log.Info("row action", zap.String("action", evt.Action), zap.String("id", o.GetID()))

	switch evt.Action {
	case render.ActionDetails:
		d := NewDescribe(b.host, b.rid, b.renderer, o)
		if err := d.Init(context.Background()); err != nil {
			b.host.Flash().Err(err)
			return
		}
		b.host.Push(d)
	case render.ActionCopyID:
		if err := clipboard.WriteAll(o.GetID()); err != nil {
			b.log.Warn("clipboard unavailable", zap.Error(err))
			b.host.Flash().Infof("ID %s", o.GetID())
			return
		}
		b.host.Flash().Infof("Copied %s to clipboard", o.GetID())
	default:
		b.host.Flash().Warnf("Unsupported action %q", evt.Action)
	}
}

func currentCold(pd model1.PaginatedData[dao.Object]) bool {
	i := pd.CurrentIndex
	return i >= 0 && i < pd.PageCount() && pd.Pages[i].Cold()
}

func (b *Browser) setLoading(v bool) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.loading = v
}

func (b *Browser) isLoading() bool {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.loading
}

// refresh redraws the widgets from the controller state.
func (b *Browser) refresh() {
	pd := b.table.Paginated()
	rows := b.table.CurrentRows()
	st := b.table.Selection()
	total := b.table.ListLength()
	loading := b.isLoading()

	b.filterBar.Update(b.table.FilterColumns(), b.table.DisplayedSlots(), b.table.Criteria())
	b.paginator.Update(ui.PageInfo{
		Index:    pd.CurrentIndex,
		Pages:    pd.PageCount(),
		Size:     pd.PageSize,
		Total:    total,
		Selected: st.Count,
		Loading:  loading,
	})

	if loading && len(rows) == 0 {
		b.view.ShowMessage("Loading...")
		return
	}
	vv := make([]ui.RowView, 0, len(rows))
	for _, r := range rows {
		vv = append(vv, ui.RowView{
			Fields:   b.renderer.Fields(r.Item),
			Selected: r.Selected,
			Disabled: r.CheckboxDisabled,
		})
	}
	b.view.Update(b.table.VisibleColumns(), vv, st, total)
}

func (b *Browser) bindKeys(aa *ui.KeyActions) {
	aa.Bulk(ui.KeyMap{
		ui.KeySpace:    ui.NewKeyAction("Toggle", b.toggleRowCmd, true),
		ui.KeyA:        ui.NewKeyAction("Toggle All", b.toggleAllCmd, true),
		ui.KeyX:        ui.NewKeyAction("Clear Selection", b.clearCmd, true),
		ui.KeyN:        ui.NewKeyAction("Next Page", b.nextCmd, true),
		ui.KeyP:        ui.NewKeyAction("Prev Page", b.prevCmd, true),
		ui.KeyS:        ui.NewKeyAction("Page Size", b.pageSizeCmd, true),
		ui.KeyC:        ui.NewKeyAction("Columns", b.columnsCmd, true),
		ui.KeyF:        ui.NewKeyAction("Filters", b.filtersCmd, true),
		tcell.KeyCtrlR: ui.NewKeyAction("Refresh", b.refreshCmd, true),
	})

	readOnly := false
	if cfg := b.passdesk(); cfg != nil {
		readOnly = cfg.ReadOnly
	}
	for _, a := range ui.RowActionsFor(b.renderer.Actions(), readOnly) {
		aa.Add(a.Key, ui.NewKeyAction(a.Description, b.rowActionCmd(a.Name), true))
	}
}

func (b *Browser) toggleRowCmd(*tcell.EventKey) *tcell.EventKey {
	b.table.ToggleRow(b.view.SelectedIndex())
	return nil
}

func (b *Browser) toggleAllCmd(*tcell.EventKey) *tcell.EventKey {
	b.table.Toggle()
	return nil
}

func (b *Browser) clearCmd(*tcell.EventKey) *tcell.EventKey {
	b.table.DeselectAll()
	return nil
}

func (b *Browser) nextCmd(*tcell.EventKey) *tcell.EventKey {
	b.table.NextPage()
	return nil
}

func (b *Browser) prevCmd(*tcell.EventKey) *tcell.EventKey {
	b.table.PrevPage()
	return nil
}

func (b *Browser) pageSizeCmd(*tcell.EventKey) *tcell.EventKey {
	cfg := b.passdesk()
	if cfg == nil {
		return nil
	}
	size := cfg.NextPageSize(b.table.PageSize())
	if err := b.table.ChangePageSize(size); err != nil {
		b.host.Flash().Err(err)
		return nil
	}
	b.host.Flash().Infof("Showing %d per page", size)
	if views := b.views(); views != nil {
		views.SetPageSize(b.Name(), size)
		b.savePrefs()
	}

	return nil
}

func (b *Browser) columnsCmd(*tcell.EventKey) *tcell.EventKey {
	before := b.table.Columns()
	b.table.ManageColumns(b.columns, func(applied bool) {
		defer b.host.Focus(b.view)
		if !applied {
			return
		}
		after := b.table.Columns()
		patch, err := ColumnsPatch(before, after)
		switch {
		case errors.Is(err, ErrNoChanges):
			return
		case err != nil:
			b.log.Warn("column diff failed", zap.Error(err))
		default:
			b.log.Info("columns changed", zap.String("patch", patch))
		}
		if views := b.views(); views != nil {
			views.SetColumns(b.Name(), b.table.VisibleProperties())
			b.savePrefs()
		}
		b.refresh()
	})

	return nil
}

func (b *Browser) filtersCmd(*tcell.EventKey) *tcell.EventKey {
	b.host.Focus(b.filterBar)
	return nil
}

func (b *Browser) refreshCmd(*tcell.EventKey) *tcell.EventKey {
	b.host.Flash().Info("Refreshing...")
	if f := b.host.Factory(); f != nil && f.Cache() != nil {
		f.Cache().Forget(b.rid.String())
	}
	b.Start()
	return nil
}

func (b *Browser) rowActionCmd(action string) ui.ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		b.table.ClickAction(action, b.view.SelectedIndex())
		return nil
	}
}

func (b *Browser) initialPageSize() int {
	cfg := b.passdesk()
	if cfg == nil {
		return config.DefaultPageSize
	}
	return PrefPageSize(b.prefs(), cfg.PageSizes, cfg.DefaultPageSize)
}

func (b *Browser) passdesk() *config.Passdesk {
	if cfg := b.host.Config(); cfg != nil {
		return cfg.Passdesk
	}
	return nil
}

func (b *Browser) views() *data.Views {
	if cfg := b.host.Config(); cfg != nil {
		return cfg.Views
	}
	return nil
}

func (b *Browser) prefs() *data.View {
	if views := b.views(); views != nil {
		return views.Get(b.Name())
	}
	return nil
}

func (b *Browser) savePrefs() {
	if config.AppViewsFile == "" {
		return
	}
	if err := b.views().Save(config.AppViewsFile); err != nil {
		b.log.Warn("failed to save view preferences", zap.Error(err))
		b.host.Flash().Err(fmt.Errorf("failed to save view preferences: %w", err))
	}
}
