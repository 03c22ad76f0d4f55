package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-stac-search/search"
)

func intPtr(v int) *int { return &v }

func TestBuildMergesValidatedFilters(t *testing.T) {
	base := search.NewQuery("https://brazildatacube.dpi.inpe.br/stac", "0.9.0")

	q, err := search.Build(base, search.Filters{
		Collections: []string{"CB4_64_16D_STK-1"},
		Datetime:    "2017-08-01/2018-03-01",
		Limit:       intPtr(10),
	})
	require.NoError(t, err)

	assert.Equal(t, "/search", search.Endpoint(q))
	require.NoError(t, search.BeforeRequest(q))

	params := q.Params()
	assert.Equal(t, []string{"collections", "datetime", "limit"}, params.Keys())

	collections, ok := q.Param("collections")
	require.True(t, ok)
	assert.Equal(t, search.Collections{"CB4_64_16D_STK-1"}, collections)

	datetime, ok := q.Param("datetime")
	require.True(t, ok)
	assert.Equal(t, "2017-08-01/2018-03-01", datetime.QueryValue())

	limit, ok := q.Param("limit")
	require.True(t, ok)
	assert.Equal(t, search.Limit(10), limit)

	// The base query is untouched.
	assert.Zero(t, base.Params().Len())
}

func TestBuildRightBiasedOverwrite(t *testing.T) {
	base := search.NewQuery("https://example.com", "1.0.0")

	first, err := search.Build(base, search.Filters{
		Collections: []string{"a"},
		Limit:       intPtr(5),
	})
	require.NoError(t, err)

	second, err := search.Build(first, search.Filters{
		Collections: []string{"b"},
		IDs:         []string{"item-1"},
	})
	require.NoError(t, err)

	// Overwritten key keeps its original position, new keys append.
	assert.Equal(t, []string{"collections", "limit", "ids"}, second.Params().Keys())
	collections, _ := second.Param("collections")
	assert.Equal(t, search.Collections{"b"}, collections)

	// The intermediate query still holds its own values.
	collections, _ = first.Param("collections")
	assert.Equal(t, search.Collections{"a"}, collections)
	_, ok := first.Param("ids")
	assert.False(t, ok)
}

func TestBuildFailFast(t *testing.T) {
	base := search.NewQuery("https://example.com", "1.0.0")

	// Both collections and limit are invalid; collections is validated
	// first, so its error is the one reported.
	_, err := search.Build(base, search.Filters{
		Collections: []string{" "},
		Limit:       intPtr(-1),
	})
	var invalid *search.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "collections", invalid.Field)
}

func TestBuildRejectsNonSearchQuery(t *testing.T) {
	_, err := search.Build(search.Query{}, search.Filters{})
	require.ErrorIs(t, err, search.ErrInvalidQueryType)
}

func TestBuildAllFiltersTogether(t *testing.T) {
	base := search.NewQuery("https://example.com", "1.0.0").WithVerb(search.VerbPost)

	q, err := search.Build(base, search.Filters{
		Collections: []string{"sentinel-2"},
		IDs:         []string{"item-1", "item-2"},
		Datetime:    "2020-01-01T00:00:00Z/..",
		BBox:        []float64{-47.02148, -12.98314, -42.53906, -17.35063},
		Intersects:  map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}},
		Limit:       intPtr(50),
	})
	require.NoError(t, err)
	require.NoError(t, search.BeforeRequest(q))

	assert.Equal(t,
		[]string{"collections", "ids", "datetime", "bbox", "intersects", "limit"},
		q.Params().Keys())

	body := q.Params().Body()
	assert.Equal(t, []string{"sentinel-2"}, body["collections"])
	assert.Equal(t, []float64{-47.02148, -12.98314, -42.53906, -17.35063}, body["bbox"])
	assert.Equal(t, 50, body["limit"])
}
