// Package query builds OGC CQL2 filter expressions fluently for use with the
// search filter extension.
package query

import (
	"fmt"
	"time"

	ogcfilter "github.com/planetlabs/go-ogc/filter"
)

// Builder accumulates boolean expressions.
type Builder struct {
	expr ogcfilter.BooleanExpression
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Where ANDs the expression with the current one, or sets it if none exists.
func (b *Builder) Where(expr ogcfilter.BooleanExpression) *Builder {
	if expr == nil {
		return b
	}
	if b.expr == nil {
		b.expr = expr
		return b
	}
	b.expr = &ogcfilter.And{Args: []ogcfilter.BooleanExpression{b.expr, expr}}
	return b
}

// Or combines the current expression with the provided ones using logical OR.
func (b *Builder) Or(exprs ...ogcfilter.BooleanExpression) *Builder {
	args := make([]ogcfilter.BooleanExpression, 0, len(exprs)+1)
	if b.expr != nil {
		args = append(args, b.expr)
	}
	for _, expr := range exprs {
		if expr != nil {
			args = append(args, expr)
		}
	}
	if len(args) == 0 {
		return b
	}
	b.expr = &ogcfilter.Or{Args: args}
	return b
}

// Not negates the current expression.
func (b *Builder) Not() *Builder {
	if b.expr != nil {
		b.expr = &ogcfilter.Not{Arg: b.expr}
	}
	return b
}

// Filter returns the built expression, nil if nothing was added.
func (b *Builder) Filter() ogcfilter.BooleanExpression {
	return b.expr
}

// Property starts a comparison against the named item property.
func Property(name string) PropertyExpression {
	return PropertyExpression{property: &ogcfilter.Property{Name: name}}
}

// PropertyExpression exposes fluent comparison helpers.
type PropertyExpression struct {
	property *ogcfilter.Property
}

// Eq creates an equality predicate. A nil value becomes an isNull check.
func (p PropertyExpression) Eq(value any) ogcfilter.BooleanExpression {
	if value == nil {
		return &ogcfilter.IsNull{Value: p.property}
	}
	return &ogcfilter.Comparison{Name: ogcfilter.Equals, Left: p.property, Right: toScalar(value)}
}

// Neq creates an inequality predicate.
func (p PropertyExpression) Neq(value any) ogcfilter.BooleanExpression {
	if value == nil {
		return &ogcfilter.Not{Arg: &ogcfilter.IsNull{Value: p.property}}
	}
	return &ogcfilter.Comparison{Name: ogcfilter.NotEquals, Left: p.property, Right: toScalar(value)}
}

// Lt creates a less-than predicate.
func (p PropertyExpression) Lt(value any) ogcfilter.BooleanExpression {
	return &ogcfilter.Comparison{Name: ogcfilter.LessThan, Left: p.property, Right: toScalar(value)}
}

// Lte creates a less-than-or-equal predicate.
func (p PropertyExpression) Lte(value any) ogcfilter.BooleanExpression {
	return &ogcfilter.Comparison{Name: ogcfilter.LessThanOrEquals, Left: p.property, Right: toScalar(value)}
}

// Gt creates a greater-than predicate.
func (p PropertyExpression) Gt(value any) ogcfilter.BooleanExpression {
	return &ogcfilter.Comparison{Name: ogcfilter.GreaterThan, Left: p.property, Right: toScalar(value)}
}

// Gte creates a greater-than-or-equal predicate.
func (p PropertyExpression) Gte(value any) ogcfilter.BooleanExpression {
	return &ogcfilter.Comparison{Name: ogcfilter.GreaterThanOrEquals, Left: p.property, Right: toScalar(value)}
}

// Like creates a pattern-match predicate.
func (p PropertyExpression) Like(pattern string) ogcfilter.BooleanExpression {
	return &ogcfilter.Like{
		Value:   p.property,
		Pattern: &ogcfilter.String{Value: pattern},
	}
}

// In creates a set-membership predicate.
func (p PropertyExpression) In(values ...any) ogcfilter.BooleanExpression {
	list := make([]ogcfilter.ScalarExpression, 0, len(values))
	for _, v := range values {
		if expr := toScalar(v); expr != nil {
			list = append(list, expr)
		}
	}
	return &ogcfilter.In{
		Item: p.property,
		List: ogcfilter.ScalarList(list),
	}
}

// IsNull creates an isNull predicate for the property.
func (p PropertyExpression) IsNull() ogcfilter.BooleanExpression {
	return &ogcfilter.IsNull{Value: p.property}
}

// Intersects builds a spatial intersection predicate between the geometry
// property and a bounding box.
func Intersects(minLon, minLat, maxLon, maxLat float64) ogcfilter.BooleanExpression {
	return &ogcfilter.SpatialComparison{
		Name:  ogcfilter.GeometryIntersects,
		Left:  &ogcfilter.Property{Name: "geometry"},
		Right: &ogcfilter.BoundingBox{Extent: []float64{minLon, minLat, maxLon, maxLat}},
	}
}

// During constrains the datetime property to the inclusive interval
// [start, end].
func During(start, end time.Time) ogcfilter.BooleanExpression {
	if end.Before(start) {
		start, end = end, start
	}
	return &ogcfilter.TemporalComparison{
		Name: ogcfilter.TimeIntersects,
		Left: &ogcfilter.Property{Name: "datetime"},
		Right: &ogcfilter.Interval{
			Start: &ogcfilter.Timestamp{Value: start.UTC()},
			End:   &ogcfilter.Timestamp{Value: end.UTC()},
		},
	}
}

func toScalar(value any) ogcfilter.ScalarExpression {
	switch v := value.(type) {
	case nil:
		return nil
	case ogcfilter.ScalarExpression:
		return v
	case PropertyExpression:
		return v.property
	case string:
		return &ogcfilter.String{Value: v}
	case bool:
		return &ogcfilter.Boolean{Value: v}
	case int:
		return &ogcfilter.Number{Value: float64(v)}
	case int64:
		return &ogcfilter.Number{Value: float64(v)}
	case float32:
		return &ogcfilter.Number{Value: float64(v)}
	case float64:
		return &ogcfilter.Number{Value: v}
	case time.Time:
		return &ogcfilter.Timestamp{Value: v}
	default:
		return &ogcfilter.String{Value: fmt.Sprint(value)}
	}
}
