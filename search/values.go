package search

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Wire parameter keys understood by STAC search endpoints.
const (
	KeyCollections = "collections"
	KeyIDs         = "ids"
	KeyDatetime    = "datetime"
	KeyBBox        = "bbox"
	KeyIntersects  = "intersects"
	KeyLimit       = "limit"
	KeyFilter      = "filter"
	KeyFilterLang  = "filter-lang"
)

// Value is a validated, wire-ready search parameter. The set of
// implementations is closed: every Value comes out of one of the Parse
// functions in this package.
type Value interface {
	// QueryValue renders the parameter for a GET query string.
	QueryValue() string
	// BodyValue renders the parameter for a POST JSON body.
	BodyValue() any

	isValue()
}

// Collections is a validated list of collection identifiers. Duplicates are
// passed through unchanged and order is preserved.
type Collections []string

func (c Collections) QueryValue() string { return strings.Join(c, ",") }
func (c Collections) BodyValue() any     { return []string(c) }
func (Collections) isValue()             {}

// IDs is a validated list of item identifiers.
type IDs []string

func (ids IDs) QueryValue() string { return strings.Join(ids, ",") }
func (ids IDs) BodyValue() any     { return []string(ids) }
func (IDs) isValue()               {}

// OpenBound is the literal marking an open interval end in a datetime filter.
const OpenBound = ".."

// Datetime is a validated temporal filter: either a single instant or an
// interval whose bounds may be open on one side.
type Datetime struct {
	start    string
	end      string
	interval bool
}

// Interval reports whether the filter is a start/end interval rather than a
// single instant.
func (d Datetime) Interval() bool { return d.interval }

// Start returns the start bound, or the single instant. For an open-started
// interval it returns OpenBound.
func (d Datetime) Start() string { return d.start }

// End returns the end bound. It is empty for a single instant and OpenBound
// for an open-ended interval.
func (d Datetime) End() string { return d.end }

func (d Datetime) QueryValue() string {
	if d.interval {
		return d.start + "/" + d.end
	}
	return d.start
}

func (d Datetime) BodyValue() any { return d.QueryValue() }
func (Datetime) isValue()         {}

// BBox is a validated bounding-box filter of 4 (2D) or 6 (3D) coordinates.
// Corner ordering is not checked, so antimeridian-spanning boxes pass
// through as-is.
type BBox []float64

func (b BBox) QueryValue() string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (b BBox) BodyValue() any { return []float64(b) }
func (BBox) isValue()         {}

// Geometry is a structurally validated GeoJSON geometry used for the
// intersects filter. The geometry itself is opaque; only the outer object
// shape and its type member are checked.
type Geometry json.RawMessage

func (g Geometry) QueryValue() string { return string(g) }
func (g Geometry) BodyValue() any     { return json.RawMessage(g) }
func (Geometry) isValue()             {}

// Limit is a validated page-size filter.
type Limit int

func (l Limit) QueryValue() string { return strconv.Itoa(int(l)) }
func (l Limit) BodyValue() any     { return int(l) }
func (Limit) isValue()             {}

// filterExpr carries a CQL2 filter expression, pre-encoded as JSON.
type filterExpr json.RawMessage

func (f filterExpr) QueryValue() string { return string(f) }
func (f filterExpr) BodyValue() any     { return json.RawMessage(f) }
func (filterExpr) isValue()             {}

// filterLang names the encoding of a filter expression.
type filterLang string

func (l filterLang) QueryValue() string { return string(l) }
func (l filterLang) BodyValue() any     { return string(l) }
func (filterLang) isValue()             {}
