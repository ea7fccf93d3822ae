package dao

import (
	"fmt"
	"sort"
)

// AccessorFunc builds a fresh accessor.
type AccessorFunc func() Accessor

// accessors maps resource names to accessor constructors.
var accessors = map[string]AccessorFunc{}

func init() {
	RegisterAccessor(OfferRID, func() Accessor { return new(Offer) })
	RegisterAccessor(GrantRID, func() Accessor { return new(Grant) })
	RegisterAccessor(PassholderRID, func() Accessor { return new(Passholder) })
}

// RegisterAccessor binds a resource to its accessor constructor.
func RegisterAccessor(rid ResourceID, fn AccessorFunc) {
	accessors[rid.String()] = fn
}

// AccessorFor returns an initialized accessor for the resource.
// Each call yields its own instance so browsers never share query state.
func AccessorFor(f Factory, rid *ResourceID) (Accessor, error) {
	fn, ok := accessors[rid.String()]
	if !ok {
		return nil, fmt.Errorf("%w: no accessor for %s", ErrUnknownResource, rid)
	}

	acc := fn()
	acc.Init(f, rid)

	return acc, nil
}

// ListAccessors returns the registered resources in name order.
func ListAccessors() []*ResourceID {
	names := make([]string, 0, len(accessors))
	for name := range accessors {
		names = append(names, name)
	}
	sort.Strings(names)

	rids := make([]*ResourceID, 0, len(names))
	for _, n := range names {
		rids = append(rids, &ResourceID{Resource: n})
	}
	return rids
}
