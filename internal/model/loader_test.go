package model_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passdesk/passdesk/internal/model"
	"github.com/passdesk/passdesk/internal/model1"
)

type fakeSource struct {
	items    []offer
	countErr error
	mx       sync.Mutex
	pages    []int

	// unfiltered counts announce themselves on entered then wait for gate
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeSource) offsets() []int {
	f.mx.Lock()
	defer f.mx.Unlock()
	return append([]int(nil), f.pages...)
}

func (f *fakeSource) match(c model1.FilterCriteria) []offer {
	want, ok := c["titleFilter"]
	if !ok {
		return f.items
	}
	var out []offer
	for _, it := range f.items {
		if it.Title == want {
			out = append(out, it)
		}
	}
	return out
}

func (f *fakeSource) Count(_ context.Context, c model1.FilterCriteria) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if _, ok := c["titleFilter"]; !ok && f.gate != nil {
		f.entered <- struct{}{}
		<-f.gate
	}
	return len(f.match(c)), nil
}

func (f *fakeSource) Page(_ context.Context, c model1.FilterCriteria, offset, limit int) ([]offer, error) {
	f.mx.Lock()
	f.pages = append(f.pages, offset)
	f.mx.Unlock()

	items := f.match(c)
	if offset >= len(items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], nil
}

func offers(n int) []offer {
	oo := make([]offer, 0, n)
	for i := 0; i < n; i++ {
		title := "even"
		if i%2 == 1 {
			title = "odd"
		}
		oo = append(oo, offer{ID: i + 1, Title: title})
	}
	return oo
}

// pump runs dispatched callbacks on the test goroutine until cond holds.
func pump(t *testing.T, q chan func(), cond func() bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case f := <-q:
			f()
		case <-deadline:
			t.Fatal("timed out waiting for loader")
		}
	}
}

func newLoader(src *fakeSource, listLength int) (*model.Table[offer], *model.Loader[offer], chan func()) {
	q := make(chan func(), 16)
	tbl := model.NewTable[offer](offerColumns(), offerFilters(), offerSlots(), listLength)
	l := model.NewLoader[offer](tbl, src, func(f func()) { q <- f }, nil)
	return tbl, l, q
}

func TestLoaderStart(t *testing.T) {
	src := &fakeSource{items: offers(12)}
	tbl, l, q := newLoader(src, 0)
	l.SetDisabledFunc(func(o offer) bool { return o.ID == 2 })

	require.NoError(t, l.Start(context.Background(), 5))
	defer l.Stop()

	assert.Equal(t, 12, tbl.ListLength())
	pump(t, q, func() bool { return len(tbl.CurrentRows()) == 5 })
	assert.True(t, tbl.CurrentRows()[1].CheckboxDisabled)

	tbl.ChangePage(2)
	pump(t, q, func() bool { return len(tbl.CurrentRows()) == 2 })
	assert.Equal(t, 11, tbl.CurrentRows()[0].Item.ID)
}

func TestLoaderFiltersRecount(t *testing.T) {
	src := &fakeSource{items: offers(12)}
	tbl, l, q := newLoader(src, 0)
	require.NoError(t, l.Start(context.Background(), 10))
	defer l.Stop()
	pump(t, q, func() bool { return len(tbl.CurrentRows()) == 10 })

	tbl.SetFilterValue("titleFilter", "odd")
	pump(t, q, func() bool { return tbl.ListLength() == 6 && len(tbl.CurrentRows()) == 6 })
	for _, r := range tbl.CurrentRows() {
		assert.Equal(t, "odd", r.Item.Title)
	}
	assert.Equal(t, 1, tbl.Paginated().PageCount())
}

func TestLoaderErrors(t *testing.T) {
	src := &fakeSource{items: offers(3), countErr: errors.New("boom")}
	tbl, l, q := newLoader(src, 0)

	assert.Error(t, l.Start(context.Background(), 10))

	var got error
	l.SetErrorHandler(func(err error) { got = err })
	tbl.SetFilterValue("titleFilter", "odd")
	pump(t, q, func() bool { return got != nil })
	assert.ErrorContains(t, got, "boom")
}

func TestLoaderNoSource(t *testing.T) {
	tbl := model.NewTable[offer](offerColumns(), offerFilters(), offerSlots(), 0)
	l := model.NewLoader[offer](tbl, nil, nil, nil)

	assert.ErrorIs(t, l.Start(context.Background(), 10), model.ErrNoSource)
}

func TestLoaderStartTwiceFetchesOnce(t *testing.T) {
	src := &fakeSource{items: offers(12)}
	tbl, l, q := newLoader(src, 0)
	ctx := context.Background()

	require.NoError(t, l.Start(ctx, 5))
	require.NoError(t, l.Start(ctx, 5))
	pump(t, q, func() bool { return len(tbl.CurrentRows()) == 5 })

	tbl.ChangePage(1)
	pump(t, q, func() bool {
		rows := tbl.CurrentRows()
		return len(rows) == 5 && rows[0].Item.ID == 6
	})
	var second int
	for _, o := range src.offsets() {
		if o == 5 {
			second++
		}
	}
	assert.Equal(t, 1, second)

	l.Stop()
	tbl.ChangePage(2)
	assert.NotContains(t, src.offsets(), 10)
}

func TestLoaderDropsStaleStartupCount(t *testing.T) {
	src := &fakeSource{
		items:   offers(12),
		gate:    make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	tbl, l, q := newLoader(src, 0)
	defer l.Stop()

	started := make(chan error, 1)
	go func() { started <- l.Start(context.Background(), 5) }()
	<-src.entered

	tbl.SetFilterValue("titleFilter", "odd")
	pump(t, q, func() bool { return tbl.ListLength() == 6 && len(tbl.CurrentRows()) == 5 })

	close(src.gate)
	require.NoError(t, <-started)
	assert.Equal(t, 6, tbl.ListLength())
	assert.Equal(t, 2, tbl.Paginated().PageCount())
	assert.Equal(t, model1.FilterCriteria{"titleFilter": "odd"}, tbl.Criteria())
}
