package stacclient_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stacclient "github.com/robert-malhotra/go-stac-search/client"
)

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := stacclient.New()
	require.ErrorIs(t, err, stacclient.ErrInvalidBaseURL)

	_, err = stacclient.New(stacclient.WithBaseURL("not-absolute"))
	require.ErrorIs(t, err, stacclient.ErrInvalidBaseURL)

	_, err = stacclient.New(
		stacclient.WithBaseURL("https://example.com"),
		stacclient.WithHTTPClient(nil),
	)
	require.ErrorIs(t, err, stacclient.ErrNilHTTPClient)
}

func TestOpenReadsAdvertisedVersion(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"Catalog","id":"bdc","stac_version":"0.8.0","conformsTo":["core"],"links":[]}`))
	})

	q, err := client.Open(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "0.8.0", q.Version)
	assert.Equal(t, client.BaseURL(), q.BaseURL)
}

func TestCollections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/collections":
			w.Write([]byte(`{"collections":[{"id":"sentinel-2","description":"","license":"","extent":{},"links":[]}],"links":[]}`))
		case "/collections/sentinel-2":
			w.Write([]byte(`{"id":"sentinel-2","description":"","license":"","extent":{},"links":[]}`))
		default:
			http.NotFound(w, r)
		}
	})

	ctx := context.Background()
	list, err := client.Collections().List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Collections, 1)
	assert.Equal(t, "sentinel-2", list.Collections[0].Id)

	collection, err := client.Collections().Get(ctx, "sentinel-2")
	require.NoError(t, err)
	assert.Equal(t, "sentinel-2", collection.Id)

	_, err = client.Collections().Get(ctx, "")
	require.Error(t, err)
}

func TestItemListPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/collections/sentinel-2/items", r.URL.Path)
		w.Header().Set("Content-Type", "application/geo+json")
		switch r.URL.Query().Get("token") {
		case "":
			assert.Equal(t, "1", r.URL.Query().Get("limit"))
			w.Write([]byte(featurePage("item-1", "/collections/sentinel-2/items?token=abc")))
		case "abc":
			w.Write([]byte(featurePage("item-2", "")))
		default:
			http.NotFound(w, r)
		}
	})

	var ids []string
	seq := client.Items().List(context.Background(), "sentinel-2", stacclient.ItemPageOptions{Limit: 1})
	for item, err := range seq {
		require.NoError(t, err)
		ids = append(ids, item.Id)
	}
	assert.Equal(t, []string{"item-1", "item-2"}, ids)
}

func TestItemGetOne(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/sentinel-2/items/item-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/geo+json")
		w.Write([]byte(`{"type":"Feature","stac_version":"1.0.0","id":"item-1","geometry":null,"properties":{},"assets":{},"links":[]}`))
	})

	item, err := client.Items().GetOne(context.Background(), "sentinel-2", "item-1")
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.Id)
}

func TestAPIErrorFromErrorPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"status":403,"title":"Forbidden","detail":"token expired"}`))
	})

	_, err := client.Collections().List(context.Background())
	var apiErr *stacclient.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Error(), "Forbidden")
	assert.False(t, apiErr.Temporary())
}
