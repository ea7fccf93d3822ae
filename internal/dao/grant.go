package dao

import (
	"database/sql"

	"github.com/passdesk/passdesk/internal/model1"
)

// GrantRecord is a single grant row.
type GrantRecord struct {
	BaseObject
	Kind   string
	City   string
	Amount int // cents
}

// Grant is the DAO for grants.
type Grant struct {
	Resource
}

var grantSpec = &tableSpec{
	table:   "grants",
	columns: []string{"id", "name", "kind", "city", "status", "amount", "created_at"},
	order:   "created_at DESC",
	filters: map[string]string{
		model1.StatusFilter:      "status",
		model1.GrantsFilter:      "kind",
		model1.FilterKey("city"): "city",
	},
	scan: func(sc scanner) (Object, error) {
		var (
			g                   GrantRecord
			kind, city, created sql.NullString
		)
		if err := sc.Scan(&g.ID, &g.Name, &kind, &city, &g.Status, &g.Amount, &created); err != nil {
			return nil, err
		}
		g.Kind, g.City = kind.String, city.String
		g.CreatedAt = parseTime(created)
		return &g, nil
	},
}

// Init initializes the grant DAO.
func (g *Grant) Init(f Factory, rid *ResourceID) {
	g.Resource.Init(f, rid)
	g.setSpec(grantSpec)
}
