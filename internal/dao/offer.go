package dao

import (
	"database/sql"

	"github.com/passdesk/passdesk/internal/model1"
)

// OfferRecord is a single offer row.
type OfferRecord struct {
	BaseObject
	City     string
	Category string
	Type     string
	Price    int // cents
}

// Offer is the DAO for offers.
type Offer struct {
	Resource
}

var offerSpec = &tableSpec{
	table:   "offers",
	columns: []string{"id", "title", "city", "category", "type", "status", "price", "created_at"},
	order:   "created_at DESC",
	filters: map[string]string{
		model1.StatusFilter:          "status",
		model1.OfferTypeFilter:       "type",
		model1.FilterKey("city"):     "city",
		model1.FilterKey("category"): "category",
	},
	scan: func(sc scanner) (Object, error) {
		var (
			o                    OfferRecord
			city, category, kind sql.NullString
			created              sql.NullString
		)
		if err := sc.Scan(&o.ID, &o.Name, &city, &category, &kind, &o.Status, &o.Price, &created); err != nil {
			return nil, err
		}
		o.City, o.Category, o.Type = city.String, category.String, kind.String
		o.CreatedAt = parseTime(created)
		return &o, nil
	},
}

// Init initializes the offer DAO.
func (o *Offer) Init(f Factory, rid *ResourceID) {
	o.Resource.Init(f, rid)
	o.setSpec(offerSpec)
}
