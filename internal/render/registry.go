package render

import (
	"fmt"

	"github.com/passdesk/passdesk/internal/dao"
)

var renderers = map[string]Renderer{
	dao.OfferRID.String():      &Offer{},
	dao.GrantRID.String():      &Grant{},
	dao.PassholderRID.String(): &Passholder{},
}

// RendererFor returns the renderer of a resource.
func RendererFor(rid dao.ResourceID) (Renderer, error) {
	r, ok := renderers[rid.String()]
	if !ok {
		return nil, fmt.Errorf("%w: no renderer for %s", dao.ErrUnknownResource, rid)
	}
	return r, nil
}
