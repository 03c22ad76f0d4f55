package search

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// geometryTypes is the standard GeoJSON geometry type set (RFC 7946 §1.4).
var geometryTypes = map[string]bool{
	"Point":              true,
	"MultiPoint":         true,
	"LineString":         true,
	"MultiLineString":    true,
	"Polygon":            true,
	"MultiPolygon":       true,
	"GeometryCollection": true,
}

// ParseCollections validates a list of collection identifiers. The list must
// be non-empty and every element non-blank. Duplicates are not removed.
func ParseCollections(raw []string) (Collections, error) {
	if err := checkIdentifiers(KeyCollections, raw); err != nil {
		return nil, err
	}
	return Collections(append([]string{}, raw...)), nil
}

// ParseIDs validates a list of item identifiers under the same rules as
// ParseCollections.
func ParseIDs(raw []string) (IDs, error) {
	if err := checkIdentifiers(KeyIDs, raw); err != nil {
		return nil, err
	}
	return IDs(append([]string{}, raw...)), nil
}

func checkIdentifiers(field string, raw []string) error {
	if len(raw) == 0 {
		return &InvalidParameterError{Field: field, Reason: "must not be empty"}
	}
	for i, id := range raw {
		if strings.TrimSpace(id) == "" {
			return &InvalidParameterError{
				Field:  field,
				Reason: fmt.Sprintf("element %d is blank", i),
			}
		}
	}
	return nil
}

// ParseDatetime validates a temporal filter. A value containing exactly one
// "/" is an interval whose bounds are either RFC 3339 instants or the open
// marker ".." (but not both open). A value without "/" must be a single
// RFC 3339 instant. Date-only bounds (2006-01-02) are accepted, matching
// what STAC services accept on the wire.
func ParseDatetime(raw string) (Datetime, error) {
	switch strings.Count(raw, "/") {
	case 0:
		if !validInstant(raw) {
			return Datetime{}, &InvalidParameterError{
				Field:  KeyDatetime,
				Reason: fmt.Sprintf("%q is not a valid RFC 3339 instant", raw),
			}
		}
		return Datetime{start: raw}, nil
	case 1:
		start, end, _ := strings.Cut(raw, "/")
		if start == OpenBound && end == OpenBound {
			return Datetime{}, &InvalidParameterError{
				Field:  KeyDatetime,
				Reason: "interval cannot be open on both ends",
			}
		}
		for _, bound := range []string{start, end} {
			if bound == OpenBound || validInstant(bound) {
				continue
			}
			return Datetime{}, &InvalidParameterError{
				Field:  KeyDatetime,
				Reason: fmt.Sprintf("bound %q is neither %q nor a valid RFC 3339 instant", bound, OpenBound),
			}
		}
		return Datetime{start: start, end: end, interval: true}, nil
	default:
		return Datetime{}, &InvalidParameterError{
			Field:  KeyDatetime,
			Reason: "interval must contain exactly one \"/\"",
		}
	}
}

func validInstant(value string) bool {
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

// ParseBBox validates a bounding box: exactly 4 or 6 finite numbers.
func ParseBBox(raw []float64) (BBox, error) {
	if len(raw) != 4 && len(raw) != 6 {
		return nil, &InvalidParameterError{
			Field:  KeyBBox,
			Reason: fmt.Sprintf("must contain 4 or 6 coordinates, got %d", len(raw)),
		}
	}
	for i, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidParameterError{
				Field:  KeyBBox,
				Reason: fmt.Sprintf("coordinate %d is not finite", i),
			}
		}
	}
	return BBox(append([]float64{}, raw...)), nil
}

// ParseGeometry validates an intersects filter. The value may be raw GeoJSON
// bytes or any Go value that marshals to JSON; it must encode an object whose
// "type" member is one of the standard GeoJSON geometry types. The geometry
// coordinates are not analyzed.
func ParseGeometry(raw any) (Geometry, error) {
	var data []byte
	switch v := raw.(type) {
	case nil:
		return nil, &InvalidParameterError{Field: KeyIntersects, Reason: "geometry is missing"}
	case Geometry:
		data = []byte(v)
	case json.RawMessage:
		data = []byte(v)
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, &InvalidParameterError{
				Field:  KeyIntersects,
				Reason: fmt.Sprintf("value does not encode to JSON: %v", err),
			}
		}
		data = encoded
	}

	var shape struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return nil, &InvalidParameterError{
			Field:  KeyIntersects,
			Reason: "value is not a JSON object",
		}
	}
	if shape.Type == nil {
		return nil, &InvalidParameterError{
			Field:  KeyIntersects,
			Reason: "geometry has no \"type\" member",
		}
	}
	if !geometryTypes[*shape.Type] {
		return nil, &InvalidParameterError{
			Field:  KeyIntersects,
			Reason: fmt.Sprintf("%q is not a GeoJSON geometry type", *shape.Type),
		}
	}
	return Geometry(append([]byte{}, data...)), nil
}

// ParseLimit validates a result limit, which must not be negative.
func ParseLimit(raw int) (Limit, error) {
	if raw < 0 {
		return 0, &InvalidParameterError{
			Field:  KeyLimit,
			Reason: fmt.Sprintf("must not be negative, got %d", raw),
		}
	}
	return Limit(raw), nil
}
