package stacclient

import (
	"context"
	"net/http"

	stac "github.com/planetlabs/go-stac"

	"github.com/robert-malhotra/go-stac-search/search"
)

// Catalog is the STAC API landing page document. It advertises the service's
// STAC version and conformance classes and links out to the searchable
// resources.
type Catalog struct {
	Type        string       `json:"type,omitempty"`
	ID          string       `json:"id"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	StacVersion string       `json:"stac_version"`
	ConformsTo  []string     `json:"conformsTo,omitempty"`
	Links       []*stac.Link `json:"links,omitempty"`
}

// Catalog fetches the landing page document from the service root.
func (c *Client) Catalog(ctx context.Context, opts ...RequestOption) (*Catalog, error) {
	var cat Catalog
	if err := c.doJSON(ctx, http.MethodGet, "/", nil, nil, &cat, opts); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Open fetches the landing page and returns the base search query for this
// service, carrying its advertised STAC version. The returned query is the
// starting point for search.Build.
func (c *Client) Open(ctx context.Context, opts ...RequestOption) (search.Query, error) {
	cat, err := c.Catalog(ctx, opts...)
	if err != nil {
		return search.Query{}, err
	}
	return search.NewQuery(c.BaseURL(), cat.StacVersion), nil
}
