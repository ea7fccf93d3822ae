package dao

import (
	"database/sql"

	"github.com/passdesk/passdesk/internal/model1"
)

// PassholderRecord is a single passholder row.
type PassholderRecord struct {
	BaseObject
	FirstName string
	LastName  string
	City      string
	GrantKind string
}

// Passholder is the DAO for passholders.
type Passholder struct {
	Resource
}

var passholderSpec = &tableSpec{
	table:   "passholders",
	columns: []string{"id", "first_name", "last_name", "city", "grant_kind", "status", "created_at"},
	order:   "last_name, first_name",
	filters: map[string]string{
		model1.StatusFilter:      "status",
		model1.GrantsFilter:      "grant_kind",
		model1.FilterKey("city"): "city",
	},
	scan: func(sc scanner) (Object, error) {
		var (
			p                        PassholderRecord
			city, grantKind, created sql.NullString
		)
		if err := sc.Scan(&p.ID, &p.FirstName, &p.LastName, &city, &grantKind, &p.Status, &created); err != nil {
			return nil, err
		}
		p.Name = p.FirstName + " " + p.LastName
		p.City, p.GrantKind = city.String, grantKind.String
		p.CreatedAt = parseTime(created)
		return &p, nil
	},
}

// Init initializes the passholder DAO.
func (p *Passholder) Init(f Factory, rid *ResourceID) {
	p.Resource.Init(f, rid)
	p.setSpec(passholderSpec)
}
