// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of passdesk

package view

import (
	"context"
	"strconv"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"go.uber.org/zap"

	"github.com/passdesk/passdesk/internal/dao"
	"github.com/passdesk/passdesk/internal/render"
	"github.com/passdesk/passdesk/internal/ui"
)

// Resources lists the browsable resources with their record count.
type Resources struct {
	*tview.Table

	host     Host
	rids     []dao.ResourceID
	counts   map[string]int
	selectFn func(dao.ResourceID)
}

// NewResources returns a resource picker. selectFn runs on enter.
func NewResources(h Host, selectFn func(dao.ResourceID)) *Resources {
	r := Resources{
		Table:    tview.NewTable(),
		host:     h,
		counts:   make(map[string]int),
		selectFn: selectFn,
	}
	r.SetBorder(true)
	r.SetTitle(" Resources ")
	r.SetTitleAlign(tview.AlignCenter)
	r.SetBorderColor(tcell.ColorAqua)
	r.SetBackgroundColor(tcell.ColorDefault)
	r.SetSelectable(true, false)
	r.SetFixed(1, 0)

	return &r
}

// Init lists the registered resources.
func (r *Resources) Init(context.Context) error {
	r.rids = r.rids[:0]
	for _, rid := range dao.ListAccessors() {
		r.rids = append(r.rids, *rid)
	}
	r.SetInputCapture(r.keyboard)
	r.render()

	return nil
}

// Start counts the records of every resource.
func (r *Resources) Start() {
	f := r.host.Factory()
	rids := append([]dao.ResourceID(nil), r.rids...)
	go func() {
		counts := make(map[string]int, len(rids))
		for _, rid := range rids {
			acc, err := dao.AccessorFor(f, &rid)
			if err != nil {
				r.host.Logger().Warn("no accessor", zap.Stringer("resource", rid), zap.Error(err))
				continue
			}
			n, err := acc.Count(context.Background(), nil)
			if err != nil {
				r.host.Flash().Err(err)
				continue
			}
			counts[rid.String()] = n
		}
		r.host.Dispatch(func() {
			r.counts = counts
			r.render()
		})
	}()
}

// Stop is a no-op.
func (*Resources) Stop() {}

// Name returns the view name.
func (*Resources) Name() string {
	return cmdResources
}

// Hints returns menu hints.
func (*Resources) Hints() ui.MenuHints {
	return ui.MenuHints{
		{Mnemonic: "enter", Description: "Browse", Visible: true},
		{Mnemonic: "esc", Description: "Back", Visible: true},
	}
}

// Selected returns the highlighted resource.
func (r *Resources) Selected() (dao.ResourceID, bool) {
	row, _ := r.GetSelection()
	if row < 1 || row > len(r.rids) {
		return dao.ResourceID{}, false
	}
	return r.rids[row-1], true
}

func (r *Resources) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if evt.Key() != tcell.KeyEnter {
		return evt
	}
	if rid, ok := r.Selected(); ok && r.selectFn != nil {
		r.selectFn(rid)
	}
	return nil
}

func (r *Resources) render() {
	row, _ := r.GetSelection()
	r.Clear()
	for i, h := range []string{"RESOURCE", "RECORDS"} {
		r.SetCell(0, i, tview.NewTableCell(h).
			SetTextColor(tcell.ColorYellow).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false).
			SetExpansion(1))
	}
	for i, rid := range r.rids {
		count := render.NAValue
		if n, ok := r.counts[rid.String()]; ok {
			count = strconv.Itoa(n)
		}
		r.SetCell(i+1, 0, tview.NewTableCell(render.Title(rid.String())))
		r.SetCell(i+1, 1, tview.NewTableCell(count).SetAlign(tview.AlignRight))
	}
	r.Select(min(max(row, 1), max(len(r.rids), 1)), 0)
}
