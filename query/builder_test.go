package query_test

import (
	"testing"
	"time"

	ogcfilter "github.com/planetlabs/go-ogc/filter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-stac-search/query"
)

func TestBuilderWhereChainsWithAnd(t *testing.T) {
	b := query.New().
		Where(query.Property("eo:cloud_cover").Lt(10)).
		Where(query.Property("collection").Eq("sentinel-2"))

	and, ok := b.Filter().(*ogcfilter.And)
	require.True(t, ok)
	require.Len(t, and.Args, 2)
}

func TestBuilderSingleExpression(t *testing.T) {
	expr := query.Property("platform").Eq("landsat-8")
	b := query.New().Where(expr)
	assert.Equal(t, expr, b.Filter())
}

func TestBuilderEmpty(t *testing.T) {
	assert.Nil(t, query.New().Filter())
	assert.Nil(t, query.New().Where(nil).Not().Filter())
}

func TestBuilderOrAndNot(t *testing.T) {
	b := query.New().
		Where(query.Property("gsd").Lte(30)).
		Or(query.Property("gsd").IsNull()).
		Not()

	not, ok := b.Filter().(*ogcfilter.Not)
	require.True(t, ok)
	_, ok = not.Arg.(*ogcfilter.Or)
	require.True(t, ok)
}

func TestPropertyNilValues(t *testing.T) {
	_, ok := query.Property("x").Eq(nil).(*ogcfilter.IsNull)
	assert.True(t, ok)

	not, ok := query.Property("x").Neq(nil).(*ogcfilter.Not)
	require.True(t, ok)
	_, ok = not.Arg.(*ogcfilter.IsNull)
	assert.True(t, ok)
}

func TestSpatialAndTemporalHelpers(t *testing.T) {
	spatial, ok := query.Intersects(-47, -17.4, -42.5, -12.9).(*ogcfilter.SpatialComparison)
	require.True(t, ok)
	bbox, ok := spatial.Right.(*ogcfilter.BoundingBox)
	require.True(t, ok)
	assert.Equal(t, []float64{-47, -17.4, -42.5, -12.9}, bbox.Extent)

	start := time.Date(2017, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)
	temporal, ok := query.During(end, start).(*ogcfilter.TemporalComparison)
	require.True(t, ok)
	interval, ok := temporal.Right.(*ogcfilter.Interval)
	require.True(t, ok)
	// Bounds are reordered when reversed.
	assert.Equal(t, start, interval.Start.(*ogcfilter.Timestamp).Value)
	assert.Equal(t, end, interval.End.(*ogcfilter.Timestamp).Value)
}
