package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-stac-search/auth"
)

func TestAPIKeyHeader(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer server.Close()

	client := &http.Client{Transport: &auth.APIKey{Key: "secret", Header: "X-API-Key"}}
	_, err := client.Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Get("X-API-Key"))

	// Defaults to Authorization when no header name is set.
	client = &http.Client{Transport: &auth.APIKey{Key: "secret"}}
	_, err = client.Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "secret", got.Get("Authorization"))
}

func TestBearerToken(t *testing.T) {
	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer server.Close()

	client := &http.Client{Transport: &auth.BearerToken{Token: "tok"}}
	_, err := client.Get(server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
}
