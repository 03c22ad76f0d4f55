package stacclient

import (
	"context"
	"io"
	"iter"
	"net/http"
	"net/url"

	stac "github.com/planetlabs/go-stac"

	"github.com/robert-malhotra/go-stac-search/search"
)

// SearchService dispatches queries built with the search package.
type SearchService struct {
	client *Client
}

// Do executes one search request. The query is guarded before any network
// I/O: an illegal verb or a verb/parameter conflict fails here without a
// request being sent. GET queries carry their parameters in the URL, POST
// queries as a JSON body; the endpoint path follows the query's API version.
func (s *SearchService) Do(ctx context.Context, q search.Query, opts ...RequestOption) (*search.Document, error) {
	if err := search.BeforeRequest(q); err != nil {
		return nil, err
	}

	endpoint := search.Endpoint(q)
	params := q.Params()

	var (
		req *http.Request
		err error
	)
	if q.Verb == search.VerbPost {
		req, err = s.client.newRequest(ctx, http.MethodPost, s.client.buildURL(endpoint, nil), params.Body(), opts)
	} else {
		req, err = s.client.newRequest(ctx, http.MethodGet, s.client.buildURL(endpoint, params.QueryValues()), nil, opts)
	}
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, q, req)
}

// Items streams search results lazily, following rel="next" links until the
// service stops providing one or the consumer stops.
func (s *SearchService) Items(ctx context.Context, q search.Query, opts ...RequestOption) iter.Seq2[*stac.Item, error] {
	return func(yield func(*stac.Item, error) bool) {
		doc, err := s.Do(ctx, q, opts...)
		for {
			if err != nil {
				yield(nil, err)
				return
			}
			for _, item := range doc.Collection.Items {
				if item == nil {
					continue
				}
				if !yield(item, nil) {
					return
				}
			}
			next := doc.Collection.NextLink()
			if next == nil || next.Href == "" {
				return
			}
			doc, err = s.followNext(ctx, q, next.Href, opts)
		}
	}
}

// followNext fetches a continuation page. Next links are always followed
// with GET, relative hrefs resolved against the service base URL.
func (s *SearchService) followNext(ctx context.Context, q search.Query, href string, opts []RequestOption) (*search.Document, error) {
	nextURL, err := url.Parse(href)
	if err != nil {
		return nil, err
	}
	target := s.client.baseURL.ResolveReference(nextURL)
	req, err := s.client.newRequest(ctx, http.MethodGet, target.String(), nil, opts)
	if err != nil {
		return nil, err
	}
	return s.dispatch(ctx, q, req)
}

func (s *SearchService) dispatch(ctx context.Context, q search.Query, req *http.Request) (*search.Document, error) {
	resp, err := s.client.execute(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return search.ParseResponse(q, search.Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	})
}
