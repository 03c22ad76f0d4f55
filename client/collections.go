package stacclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	stac "github.com/planetlabs/go-stac"
)

// CollectionList is the response document for /collections.
type CollectionList struct {
	Collections []*stac.Collection `json:"collections"`
	Links       []*stac.Link       `json:"links,omitempty"`
}

// CollectionService browses the catalog's collections.
type CollectionService struct {
	client *Client
}

// Get retrieves a single collection by ID.
func (s *CollectionService) Get(ctx context.Context, id string, opts ...RequestOption) (*stac.Collection, error) {
	if id == "" {
		return nil, fmt.Errorf("stacclient: collection id is required")
	}
	endpoint := fmt.Sprintf("/collections/%s", url.PathEscape(id))
	var collection stac.Collection
	if err := s.client.doJSON(ctx, http.MethodGet, endpoint, nil, nil, &collection, opts); err != nil {
		return nil, err
	}
	return &collection, nil
}

// List retrieves the catalog's collections.
func (s *CollectionService) List(ctx context.Context, opts ...RequestOption) (*CollectionList, error) {
	var result CollectionList
	if err := s.client.doJSON(ctx, http.MethodGet, "/collections", nil, nil, &result, opts); err != nil {
		return nil, err
	}
	return &result, nil
}
