package search

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	stac "github.com/planetlabs/go-stac"
)

// Media types a search endpoint may answer with.
const (
	MediaTypeGeoJSON = "application/geo+json"
	MediaTypeJSON    = "application/json"
)

// Response is the raw HTTP exchange result handed over by the transport.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// ItemCollection is the GeoJSON FeatureCollection-shaped document a search
// returns, each feature being one catalog item.
type ItemCollection struct {
	Type    string         `json:"type"`
	Items   []*stac.Item   `json:"features"`
	Links   []*stac.Link   `json:"links,omitempty"`
	Context map[string]any `json:"context,omitempty"`
}

// NextLink returns the rel="next" link if present.
func (c *ItemCollection) NextLink() *stac.Link {
	if c == nil {
		return nil
	}
	for _, link := range c.Links {
		if link == nil {
			continue
		}
		if strings.EqualFold(link.Rel, "next") {
			return link
		}
	}
	return nil
}

// Document is one parsed search result page. It is created only by
// ParseResponse and never mutated afterwards; Query points back at the
// originating query for traceability.
type Document struct {
	Collection *ItemCollection
	Query      Query
}

// ParseResponse validates the raw exchange and decodes the body into a
// Document. A non-200 status or an unrecognized content type yields an
// UnexpectedResponseError carrying the raw body; a body that is not valid
// JSON yields a MalformedBodyError.
func ParseResponse(q Query, resp Response) (*Document, error) {
	mediaType := resp.ContentType
	if parsed, _, err := mime.ParseMediaType(resp.ContentType); err == nil {
		mediaType = parsed
	}
	if resp.Status != http.StatusOK || (mediaType != MediaTypeGeoJSON && mediaType != MediaTypeJSON) {
		return nil, &UnexpectedResponseError{
			Status:      resp.Status,
			ContentType: resp.ContentType,
			Body:        resp.Body,
		}
	}

	var collection ItemCollection
	if err := json.Unmarshal(resp.Body, &collection); err != nil {
		return nil, &MalformedBodyError{Err: err}
	}
	return &Document{Collection: &collection, Query: q}, nil
}
