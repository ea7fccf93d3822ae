package model

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/passdesk/passdesk/internal/model1"
)

// DefaultLoadTimeout bounds a single count or page query.
const DefaultLoadTimeout = 10 * time.Second

// ErrNoSource is returned when a loader has no data source.
var ErrNoSource = errors.New("no data source configured")

// DispatchFunc runs f on the goroutine owning the table, typically the UI event loop.
type DispatchFunc func(f func())

// Loader answers the table load requests from a data source.
// Queries run on their own goroutine, replies are handed back through the dispatcher.
type Loader[T any] struct {
	table    *Table[T]
	source   Source[T]
	disabled func(T) bool
	dispatch DispatchFunc
	timeout  time.Duration
	log      *zap.Logger
	onError  func(error)

	ctx      context.Context
	cancelFn context.CancelFunc
	attached bool
	size     int
	countSeq uint64
	mx       sync.RWMutex

	// applyMx serializes the stale check and the rebuild of a count reply.
	applyMx sync.Mutex
}

// NewLoader returns a loader feeding the table from the source.
func NewLoader[T any](t *Table[T], src Source[T], dispatch DispatchFunc, log *zap.Logger) *Loader[T] {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader[T]{
		table:    t,
		source:   src,
		dispatch: dispatch,
		timeout:  DefaultLoadTimeout,
		log:      log,
		ctx:      context.Background(),
	}
}

// SetTimeout sets the per query timeout.
func (l *Loader[T]) SetTimeout(d time.Duration) {
	l.mx.Lock()
	defer l.mx.Unlock()
	if d > 0 {
		l.timeout = d
	}
}

// SetDisabledFunc decides which records get a locked checkbox.
func (l *Loader[T]) SetDisabledFunc(f func(T) bool) {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.disabled = f
}

// SetErrorHandler registers a callback for load failures. It runs through the dispatcher.
func (l *Loader[T]) SetErrorHandler(f func(error)) {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.onError = f
}

// Start counts the records and initializes the table with the given page size.
// Starting again restarts the queries, the loader stays attached once.
func (l *Loader[T]) Start(ctx context.Context, pageSize int) error {
	if l.source == nil {
		return ErrNoSource
	}
	l.mx.Lock()
	if l.cancelFn != nil {
		l.cancelFn()
	}
	l.ctx, l.cancelFn = context.WithCancel(ctx)
	attach := !l.attached
	l.attached = true
	l.mx.Unlock()

	if attach {
		l.table.AddListener(l)
	}
	return l.Refresh(ctx, pageSize)
}

// Stop cancels in flight queries and detaches from the table.
func (l *Loader[T]) Stop() {
	l.mx.Lock()
	detach := l.attached
	l.attached = false
	if l.cancelFn != nil {
		l.cancelFn()
		l.cancelFn = nil
	}
	l.mx.Unlock()

	if detach {
		l.table.RemoveListener(l)
	}
}

// Refresh recounts the records for the current criteria and rebuilds the pages.
// The count is dropped when a newer one was requested meanwhile.
func (l *Loader[T]) Refresh(ctx context.Context, pageSize int) error {
	if l.source == nil {
		return ErrNoSource
	}
	if pageSize > 0 {
		l.mx.Lock()
		l.size = pageSize
		l.mx.Unlock()
	} else {
		pageSize = l.pageSize()
	}
	seq := l.nextSeq()
	n, err := l.count(ctx, l.table.Criteria())
	if err != nil {
		return err
	}

	return l.apply(seq, n, pageSize)
}

// TableLoadData implements TableListener.
func (l *Loader[T]) TableLoadData(req PageRequest) {
	criteria := l.table.Criteria()
	ctx := l.context()
	go func() {
		rows, err := l.page(ctx, criteria, req)
		if err != nil {
			l.fail(err)
			return
		}
		l.dispatch(func() {
			l.table.ReceivePageData(req, rows)
		})
	}()
}

// TableFiltersApplied implements TableListener.
func (l *Loader[T]) TableFiltersApplied(c model1.FilterCriteria) {
	seq := l.nextSeq()
	ctx := l.context()
	go func() {
		n, err := l.count(ctx, c)
		if err != nil {
			l.fail(err)
			return
		}
		l.dispatch(func() {
			if err := l.apply(seq, n, l.pageSize()); err != nil {
				l.report(err)
			}
		})
	}()
}

// TablePageChanged implements TableListener.
func (l *Loader[T]) TablePageChanged(model1.PaginatedData[T]) {}

// TableCheckboxUpdated implements TableListener.
func (l *Loader[T]) TableCheckboxUpdated(bool) {}

// TableSelectedItems implements TableListener.
func (l *Loader[T]) TableSelectedItems(int) {}

// TableActionClicked implements TableListener.
func (l *Loader[T]) TableActionClicked(ActionEvent[T]) {}

func (l *Loader[T]) count(ctx context.Context, c model1.FilterCriteria) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, l.queryTimeout())
	defer cancel()

	n, err := l.source.Count(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	l.log.Debug("counted records", zap.Int("count", n), zap.Any("criteria", c))

	return n, nil
}

func (l *Loader[T]) page(ctx context.Context, c model1.FilterCriteria, req PageRequest) (model1.Rows[T], error) {
	ctx, cancel := context.WithTimeout(ctx, l.queryTimeout())
	defer cancel()

	start := time.Now()
	items, err := l.source.Page(ctx, c, req.Offset, req.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", req.Index+1, err)
	}
	l.log.Debug("loaded page",
		zap.Int("index", req.Index),
		zap.Int("size", req.PageSize),
		zap.Int("rows", len(items)),
		zap.Uint64("generation", req.Generation),
		zap.Duration("elapsed", time.Since(start)),
	)

	l.mx.RLock()
	disabled := l.disabled
	l.mx.RUnlock()

	rows := make(model1.Rows[T], 0, len(items))
	for _, it := range items {
		rows = append(rows, model1.NewRow(it, disabled != nil && disabled(it)))
	}

	return rows, nil
}

func (l *Loader[T]) fail(err error) {
	if errors.Is(err, context.Canceled) {
		return
	}
	l.dispatch(func() { l.report(err) })
}

func (l *Loader[T]) report(err error) {
	l.log.Error("load failed", zap.Error(err))

	l.mx.RLock()
	onError := l.onError
	l.mx.RUnlock()
	if onError != nil {
		onError(err)
	}
}

// apply rebuilds the pages from a count unless a newer count is pending.
func (l *Loader[T]) apply(seq uint64, n, pageSize int) error {
	l.applyMx.Lock()
	defer l.applyMx.Unlock()

	if !l.latest(seq) {
		l.log.Debug("dropping stale count", zap.Uint64("seq", seq), zap.Int("count", n))
		return nil
	}
	l.table.SetListLength(n)

	return l.table.Initialize(pageSize)
}

func (l *Loader[T]) nextSeq() uint64 {
	l.mx.Lock()
	defer l.mx.Unlock()
	l.countSeq++
	return l.countSeq
}

func (l *Loader[T]) latest(seq uint64) bool {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return seq == l.countSeq
}

// pageSize prefers the table's size, falling back to the one given to Start
// while the table has not been initialized yet.
func (l *Loader[T]) pageSize() int {
	if s := l.table.PageSize(); s > 0 {
		return s
	}
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.size
}

func (l *Loader[T]) context() context.Context {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.ctx
}

func (l *Loader[T]) queryTimeout() time.Duration {
	l.mx.RLock()
	defer l.mx.RUnlock()
	return l.timeout
}
