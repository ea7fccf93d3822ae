package dao

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/passdesk/passdesk/internal/model1"
)

// ErrUnknownResource is returned for resources without an accessor.
var ErrUnknownResource = errors.New("unknown resource")

// ResourceID identifies a record collection.
type ResourceID struct {
	Resource string // e.g., "offers", "grants", "passholders"
}

// String returns the resource name.
func (r ResourceID) String() string {
	return r.Resource
}

// Parse parses a resource name, singular forms and case are tolerated.
func (r *ResourceID) Parse(s string) error {
	name := strings.ToLower(strings.TrimSpace(s))
	if name != "" && !strings.HasSuffix(name, "s") {
		name += "s"
	}
	for _, rid := range []ResourceID{OfferRID, GrantRID, PassholderRID} {
		if rid.Resource == name {
			r.Resource = name
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownResource, s)
}

// Predefined ResourceID variables.
var (
	OfferRID      = ResourceID{Resource: "offers"}
	GrantRID      = ResourceID{Resource: "grants"}
	PassholderRID = ResourceID{Resource: "passholders"}
)

// Object represents a domain record.
type Object interface {
	GetID() string
	GetName() string
	GetStatus() string
	GetCreatedAt() *time.Time
}

// Factory provides the shared data store and caches.
type Factory interface {
	Store() *Store
	Cache() *CountCache
}

// Counter counts records matching filter criteria.
type Counter interface {
	Count(ctx context.Context, criteria model1.FilterCriteria) (int, error)
}

// Pager retrieves a window of records matching filter criteria.
type Pager interface {
	Page(ctx context.Context, criteria model1.FilterCriteria, offset, limit int) ([]Object, error)
}

// Accessor combines counting, paging and option lookups with initialization.
type Accessor interface {
	Counter
	Pager

	// Options returns the distinct values a filter can take.
	Options(ctx context.Context, filterName string) ([]string, error)

	Init(Factory, *ResourceID)
	ResourceID() *ResourceID
}
