package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passdesk/passdesk/internal/model"
)

func TestPaginationCacheInitialize(t *testing.T) {
	tests := map[string]struct {
		listLength int
		pageSize   int
		wantPages  int
		wantLoad   bool
	}{
		"empty list":       {listLength: 0, pageSize: 10, wantPages: 0},
		"single page":      {listLength: 3, pageSize: 10, wantPages: 1, wantLoad: true},
		"exact multiple":   {listLength: 20, pageSize: 10, wantPages: 2, wantLoad: true},
		"partial last":     {listLength: 21, pageSize: 10, wantPages: 3, wantLoad: true},
		"page of one":      {listLength: 4, pageSize: 1, wantPages: 4, wantLoad: true},
		"negative clamped": {listLength: -5, pageSize: 10, wantPages: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p := model.NewPaginationCache[offer](tc.listLength)
			req, err := p.Initialize(tc.pageSize)
			require.NoError(t, err)

			data := p.Data()
			assert.Equal(t, tc.wantPages, data.PageCount())
			assert.Equal(t, 0, data.CurrentIndex)
			assert.Equal(t, tc.pageSize, data.PageSize)
			assert.Empty(t, p.Current())
			if !tc.wantLoad {
				assert.Nil(t, req)
				assert.False(t, p.IsDataExisting())
				return
			}
			require.NotNil(t, req)
			assert.Equal(t, 0, req.Index)
			assert.Equal(t, 0, req.Offset)
			assert.Equal(t, tc.pageSize, req.PageSize)
			assert.True(t, p.IsDataExisting())
		})
	}
}

func TestPaginationCacheInvalidPageSize(t *testing.T) {
	p := model.NewPaginationCache[offer](12)
	_, err := p.Initialize(5)
	require.NoError(t, err)
	before := p.Data()

	for _, size := range []int{0, -1} {
		req, err := p.Initialize(size)
		assert.ErrorIs(t, err, model.ErrInvalidPageSize)
		assert.Nil(t, req)
	}
	assert.Equal(t, before, p.Data())
}

func TestPaginationCacheNoRedundantLoads(t *testing.T) {
	p := model.NewPaginationCache[offer](25)
	req, err := p.Initialize(10)
	require.NoError(t, err)
	require.True(t, p.ReceivePageData(*req, makeRows(10)))

	req = p.ChangePage(1)
	require.NotNil(t, req)
	assert.Equal(t, 10, req.Offset)
	page1 := makeRows(10)
	require.True(t, p.ReceivePageData(*req, page1))

	assert.Nil(t, p.ChangePage(0))
	assert.Len(t, p.Current(), 10)

	assert.Nil(t, p.ChangePage(1), "warm page must be served from cache")
	assert.Same(t, page1[0], p.Current()[0])
}

func TestPaginationCacheColdPageKeepsView(t *testing.T) {
	p := model.NewPaginationCache[offer](25)
	req, _ := p.Initialize(10)
	page0 := makeRows(10)
	p.ReceivePageData(*req, page0)

	req = p.ChangePage(2)
	require.NotNil(t, req)
	assert.Equal(t, 2, p.CurrentIndex())
	assert.Same(t, page0[0], p.Current()[0], "view waits for the load")

	last := makeRows(5)
	assert.True(t, p.ReceivePageData(*req, last))
	assert.Len(t, p.Current(), 5)
}

func TestPaginationCacheOutOfRange(t *testing.T) {
	p := model.NewPaginationCache[offer](25)
	_, _ = p.Initialize(10)

	assert.Nil(t, p.ChangePage(3))
	assert.Nil(t, p.ChangePage(-1))
	assert.Equal(t, 0, p.CurrentIndex())
}

func TestPaginationCacheStaleReplies(t *testing.T) {
	p := model.NewPaginationCache[offer](30)
	first, _ := p.Initialize(10)
	second := p.ChangePage(1)
	require.NotNil(t, second)

	// Reply for page 0 lands after the user moved on: cached, not displayed.
	assert.False(t, p.ReceivePageData(*first, makeRows(10)))
	assert.Empty(t, p.Current())
	assert.False(t, p.Data().Pages[0].Cold())

	// Page size change invalidates outstanding requests.
	third, err := p.ChangePageSize(5)
	require.NoError(t, err)
	assert.Equal(t, 6, p.PageCount())
	assert.False(t, p.ReceivePageData(*second, makeRows(10)))
	assert.True(t, p.Data().Pages[1].Cold())

	page0 := makeRows(5)
	assert.True(t, p.ReceivePageData(*third, page0))
	assert.False(t, p.ReceivePageData(*third, makeRows(5)), "warm pages are never replaced")
	assert.Same(t, page0[0], p.Current()[0])
}

func TestPaginationCacheEmptyReplyStaysCold(t *testing.T) {
	p := model.NewPaginationCache[offer](3)
	req, _ := p.Initialize(10)

	p.ReceivePageData(*req, nil)
	assert.True(t, p.Data().Pages[0].Cold())
	assert.NotNil(t, p.ChangePage(0))
}
