package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-stac-search/search"
)

func TestParamsIterationOrderIsDeterministic(t *testing.T) {
	base := search.NewQuery("https://example.com", "1.0.0")
	q, err := search.Build(base, search.Filters{
		IDs:         []string{"i"},
		Collections: []string{"c"},
		Limit:       intPtr(1),
	})
	require.NoError(t, err)

	// Build applies fields in its fixed order regardless of how the filter
	// record was populated.
	var keys []string
	for key, value := range q.Params().All() {
		keys = append(keys, key)
		assert.NotNil(t, value)
	}
	assert.Equal(t, []string{"collections", "ids", "limit"}, keys)
}

func TestParamsWireEncodings(t *testing.T) {
	q, err := search.Build(search.NewQuery("https://example.com", "1.0.0"), search.Filters{
		Collections: []string{"CB4_64_16D_STK-1", "S2_10_16D_STK-1"},
		Datetime:    "2017-08-01/2018-03-01",
		BBox:        []float64{-47.02148, -12.98314, -42.53906, -17.35063},
		Limit:       intPtr(10),
	})
	require.NoError(t, err)

	values := q.Params().QueryValues()
	assert.Equal(t, "CB4_64_16D_STK-1,S2_10_16D_STK-1", values.Get("collections"))
	assert.Equal(t, "2017-08-01/2018-03-01", values.Get("datetime"))
	assert.Equal(t, "-47.02148,-12.98314,-42.53906,-17.35063", values.Get("bbox"))
	assert.Equal(t, "10", values.Get("limit"))

	body := q.Params().Body()
	assert.Equal(t, []string{"CB4_64_16D_STK-1", "S2_10_16D_STK-1"}, body["collections"])
	assert.Equal(t, "2017-08-01/2018-03-01", body["datetime"])
	assert.Equal(t, 10, body["limit"])
}

func TestWithVerbCopies(t *testing.T) {
	base := search.NewQuery("https://example.com", "1.0.0")
	post := base.WithVerb(search.VerbPost)

	assert.Equal(t, search.VerbGet, base.Verb)
	assert.Equal(t, search.VerbPost, post.Verb)
	assert.Equal(t, base.Version, post.Version)
	assert.Equal(t, search.KindSearch, post.Kind)
}
