package search

import (
	"encoding/json"
	"fmt"

	ogcfilter "github.com/planetlabs/go-ogc/filter"
)

// Filters is the optional-field search configuration. A nil or zero field is
// absent and contributes nothing; a present field is validated in full before
// anything is merged.
type Filters struct {
	// Collections restricts the search to the named collections.
	Collections []string
	// IDs restricts the search to the named items.
	IDs []string
	// Datetime is a single RFC 3339 instant or a "start/end" interval where
	// either bound may be "..".
	Datetime string
	// BBox is a 4- or 6-element bounding box.
	BBox []float64
	// Intersects is a GeoJSON geometry; raw JSON and Go values both work.
	// Requires the POST verb.
	Intersects any
	// Limit caps the page size. Use a pointer so zero stays expressible.
	Limit *int

	// Filter attaches a CQL2 filter expression (filter extension). Encoded
	// as cql2-json, which requires the POST verb.
	Filter ogcfilter.BooleanExpression
	// FilterLang overrides the advertised filter encoding.
	FilterLang string
}

// Build validates the present filters and merges them into base, producing a
// new Query. Validation runs in a fixed field order (collections, ids,
// datetime, bbox, intersects, limit, filter) and fails on the first invalid
// field; base is never modified. Merging is right-biased: a key already
// present on base is overwritten but keeps its position.
func Build(base Query, f Filters) (Query, error) {
	if base.Kind != KindSearch {
		return Query{}, ErrInvalidQueryType
	}

	params := base.params.clone()

	if f.Collections != nil {
		v, err := ParseCollections(f.Collections)
		if err != nil {
			return Query{}, err
		}
		params.set(KeyCollections, v)
	}
	if f.IDs != nil {
		v, err := ParseIDs(f.IDs)
		if err != nil {
			return Query{}, err
		}
		params.set(KeyIDs, v)
	}
	if f.Datetime != "" {
		v, err := ParseDatetime(f.Datetime)
		if err != nil {
			return Query{}, err
		}
		params.set(KeyDatetime, v)
	}
	if f.BBox != nil {
		v, err := ParseBBox(f.BBox)
		if err != nil {
			return Query{}, err
		}
		params.set(KeyBBox, v)
	}
	if f.Intersects != nil {
		v, err := ParseGeometry(f.Intersects)
		if err != nil {
			return Query{}, err
		}
		params.set(KeyIntersects, v)
	}
	if f.Limit != nil {
		v, err := ParseLimit(*f.Limit)
		if err != nil {
			return Query{}, err
		}
		params.set(KeyLimit, v)
	}
	if f.Filter != nil {
		data, err := json.Marshal(f.Filter)
		if err != nil {
			return Query{}, &InvalidParameterError{
				Field:  KeyFilter,
				Reason: fmt.Sprintf("expression does not encode to JSON: %v", err),
			}
		}
		params.set(KeyFilter, filterExpr(data))
		lang := f.FilterLang
		if lang == "" {
			lang = "cql2-json"
		}
		params.set(KeyFilterLang, filterLang(lang))
	}

	return base.withParams(params), nil
}
