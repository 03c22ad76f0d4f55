package stacclient

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"net/http"
	"net/url"
	"strconv"

	stac "github.com/planetlabs/go-stac"

	"github.com/robert-malhotra/go-stac-search/search"
)

// ItemService lists and retrieves items within a collection.
type ItemService struct {
	client *Client
}

// ItemPageOptions tune a collection-items listing.
type ItemPageOptions struct {
	// Limit caps the page size; zero means service default.
	Limit int
	// Token resumes listing from a pagination token.
	Token string
}

func (o ItemPageOptions) query() url.Values {
	values := make(url.Values)
	if o.Limit > 0 {
		values.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Token != "" {
		values.Set("token", o.Token)
	}
	return values
}

// List streams a collection's items, following rel="next" links.
func (s *ItemService) List(ctx context.Context, collectionID string, page ItemPageOptions, opts ...RequestOption) iter.Seq2[*stac.Item, error] {
	return func(yield func(*stac.Item, error) bool) {
		collection, err := s.GetPage(ctx, collectionID, page, opts...)
		for {
			if err != nil {
				yield(nil, err)
				return
			}
			for _, item := range collection.Items {
				if item == nil {
					continue
				}
				if !yield(item, nil) {
					return
				}
			}
			next := collection.NextLink()
			if next == nil || next.Href == "" {
				return
			}
			collection, err = s.followNext(ctx, next.Href, opts)
		}
	}
}

// GetPage fetches a single page of a collection's items.
func (s *ItemService) GetPage(ctx context.Context, collectionID string, page ItemPageOptions, opts ...RequestOption) (*search.ItemCollection, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("stacclient: collection id is required")
	}
	endpoint := fmt.Sprintf("/collections/%s/items", url.PathEscape(collectionID))
	var collection search.ItemCollection
	if err := s.client.doJSON(ctx, http.MethodGet, endpoint, page.query(), nil, &collection, opts); err != nil {
		return nil, err
	}
	return &collection, nil
}

// GetOne retrieves a single item from a collection by ID.
func (s *ItemService) GetOne(ctx context.Context, collectionID, itemID string, opts ...RequestOption) (*stac.Item, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("stacclient: collection id is required")
	}
	if itemID == "" {
		return nil, fmt.Errorf("stacclient: item id is required")
	}
	endpoint := fmt.Sprintf("/collections/%s/items/%s", url.PathEscape(collectionID), url.PathEscape(itemID))
	var item stac.Item
	if err := s.client.doJSON(ctx, http.MethodGet, endpoint, nil, nil, &item, opts); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ItemService) followNext(ctx context.Context, href string, opts []RequestOption) (*search.ItemCollection, error) {
	nextURL, err := url.Parse(href)
	if err != nil {
		return nil, err
	}
	target := s.client.baseURL.ResolveReference(nextURL)
	req, err := s.client.newRequest(ctx, http.MethodGet, target.String(), nil, opts)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var collection search.ItemCollection
	if err := json.NewDecoder(resp.Body).Decode(&collection); err != nil {
		return nil, err
	}
	return &collection, nil
}
