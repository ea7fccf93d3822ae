package dao

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/passdesk/passdesk/internal/model1"
)

func TestPageQuery(t *testing.T) {
	criteria := model1.FilterCriteria{
		model1.StatusFilter: "ACTIVE",
		"cityFilter":        "Ghent",
		"notAColumnFilter":  "x",
	}

	tests := map[string]struct {
		dialect Dialect
		query   string
	}{
		"sqlite": {
			dialect: SQLite,
			query:   "SELECT id, title, city, category, type, status, price, created_at FROM offers WHERE city = ? AND status = ? ORDER BY created_at DESC, id LIMIT ? OFFSET ?",
		},
		"postgres": {
			dialect: Postgres,
			query:   "SELECT id, title, city, category, type, status, price, created_at FROM offers WHERE city = $1 AND status = $2 ORDER BY created_at DESC, id LIMIT $3 OFFSET $4",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			q, args := pageQuery(tt.dialect, offerSpec, criteria, 20, 10)
			assert.Equal(t, tt.query, q)
			if diff := cmp.Diff([]any{"Ghent", "ACTIVE", 10, 20}, args); diff != "" {
				t.Errorf("pageQuery() args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountQueryNoCriteria(t *testing.T) {
	q, args := countQuery(Postgres, grantSpec, nil)
	assert.Equal(t, "SELECT COUNT(*) FROM grants", q)
	assert.Empty(t, args)
}

func TestCacheKeyIsOrderIndependent(t *testing.T) {
	a := cacheKey("offers", model1.FilterCriteria{"a": "1", "b": "2"})
	b := cacheKey("offers", model1.FilterCriteria{"b": "2", "a": "1"})
	assert.Equal(t, a, b)
	assert.Equal(t, "offers|a=1|b=2", a)
}
