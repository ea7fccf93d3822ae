package dao

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/passdesk/passdesk/internal/model1"
)

// BaseObject implements the Object interface with embedded fields.
type BaseObject struct {
	ID        string
	Name      string
	Status    string
	CreatedAt *time.Time
}

// GetID returns the record ID.
func (b *BaseObject) GetID() string {
	return b.ID
}

// GetName returns the record display name.
func (b *BaseObject) GetName() string {
	return b.Name
}

// GetStatus returns the record status.
func (b *BaseObject) GetStatus() string {
	return b.Status
}

// GetCreatedAt returns the creation timestamp.
func (b *BaseObject) GetCreatedAt() *time.Time {
	return b.CreatedAt
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// tableSpec describes how a resource maps onto its SQL table.
type tableSpec struct {
	table   string
	columns []string
	order   string
	filters map[string]string
	scan    func(scanner) (Object, error)
}

// Resource is the base struct that all specific DAOs embed.
// It provides factory access, resource identification, and the SQL mapping.
type Resource struct {
	Factory
	rid  *ResourceID
	spec *tableSpec
	mx   sync.RWMutex
}

// Init initializes the Resource with factory and resource ID.
func (r *Resource) Init(f Factory, rid *ResourceID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.rid = rid
}

// ResourceID returns the resource identifier.
func (r *Resource) ResourceID() *ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.rid
}

func (r *Resource) setSpec(s *tableSpec) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.spec = s
}

func (r *Resource) deps() (*Store, *CountCache, *tableSpec, error) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	if r.Factory == nil || r.Factory.Store() == nil {
		return nil, nil, nil, fmt.Errorf("no data store configured")
	}
	if r.spec == nil {
		return nil, nil, nil, fmt.Errorf("no table mapping for %v", r.rid)
	}
	return r.Factory.Store(), r.Factory.Cache(), r.spec, nil
}

// Count returns the number of records matching the criteria.
func (r *Resource) Count(ctx context.Context, criteria model1.FilterCriteria) (int, error) {
	store, cache, spec, err := r.deps()
	if err != nil {
		return 0, err
	}

	key := cacheKey(spec.table, criteria)
	if cache != nil {
		if n, ok := cache.Get(key); ok {
			return n, nil
		}
	}

	q, args := countQuery(store.Dialect(), spec, criteria)
	var n int
	if err := store.DB().QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", spec.table, err)
	}
	if cache != nil {
		cache.Set(key, n)
	}

	return n, nil
}

// Page returns at most limit records matching the criteria, starting at offset.
func (r *Resource) Page(ctx context.Context, criteria model1.FilterCriteria, offset, limit int) ([]Object, error) {
	store, _, spec, err := r.deps()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}
	if offset < 0 {
		offset = 0
	}

	q, args := pageQuery(store.Dialect(), spec, criteria, offset, limit)
	rows, err := store.DB().QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", spec.table, err)
	}
	defer rows.Close()

	oo := make([]Object, 0, limit)
	for rows.Next() {
		o, err := spec.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", spec.table, err)
		}
		oo = append(oo, o)
	}

	return oo, rows.Err()
}

// Options returns the distinct values of the column backing a filter.
func (r *Resource) Options(ctx context.Context, filterName string) ([]string, error) {
	store, _, spec, err := r.deps()
	if err != nil {
		return nil, err
	}
	col, ok := spec.filters[filterName]
	if !ok {
		return nil, nil
	}

	rows, err := store.DB().QueryContext(ctx, optionsQuery(spec, col))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s options: %w", filterName, err)
	}
	defer rows.Close()

	var vv []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		if v.Valid {
			vv = append(vv, v.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	oo := model1.OptionsFrom(vv)
	out := make([]string, 0, len(oo))
	for _, o := range oo {
		out = append(out, o.Value)
	}
	return out, nil
}

func parseTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
