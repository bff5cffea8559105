package dataforseo

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okResponse = `{
	"status_code": 20000,
	"status_message": "Ok.",
	"tasks": [{
		"status_code": 20000,
		"status_message": "Ok.",
		"result": [{
			"items": [
				{
					"title": "Lumen Photo Co",
					"place_id": "ChIJabc123",
					"main_image": "https://img.example/lumen.jpg",
					"rating": {"value": 4.8, "votes_count": 212, "rating_type": "Max5"},
					"phone": "+15125550100",
					"address": "Austin, TX",
					"url": "https://lumenphoto.example"
				},
				{"title": "Plain Vendor"}
			]
		}]
	}]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{Login: "login", Password: "password", BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestNewClientMissingCredentials(t *testing.T) {
	_, err := NewClient(Config{})
	assert.True(t, errors.Is(err, constants.ErrProviderNotConfigured))

	_, err = NewClient(Config{Login: "login"})
	assert.True(t, errors.Is(err, constants.ErrProviderNotConfigured))
}

func TestSearchBusinesses(t *testing.T) {
	var gotBody []taskRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		login, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "login", login)
		assert.Equal(t, "password", password)
		assert.Equal(t, searchPath, r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, sonic.Unmarshal(raw, &gotBody))

		_, _ = w.Write([]byte(okResponse))
	})

	listings, err := client.SearchBusinesses(context.Background(), "photographer", 1026201)
	require.NoError(t, err)

	require.Len(t, gotBody, 1)
	assert.Equal(t, "photographer", gotBody[0].Keyword)
	assert.Equal(t, 1026201, gotBody[0].LocationCode)
	assert.Equal(t, "en", gotBody[0].LanguageCode)

	require.Len(t, listings, 2)
	assert.Equal(t, "Lumen Photo Co", listings[0].Title)
	assert.Equal(t, "ChIJabc123", listings[0].PlaceID)
	require.NotNil(t, listings[0].Rating)
	assert.Equal(t, 212, listings[0].Rating.VotesCount)
	assert.Nil(t, listings[1].Rating)
}

func TestSearchBusinessesEmptyResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status_code": 20000, "tasks": [{"status_code": 20000, "result": [{"items": []}]}]}`))
	})

	listings, err := client.SearchBusinesses(context.Background(), "florist", 1026201)
	require.NoError(t, err, "empty item list is a valid, non-error result")
	assert.Empty(t, listings)
}

func TestSearchBusinessesHTTPError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.SearchBusinesses(context.Background(), "florist", 1026201)
	assert.True(t, errors.Is(err, constants.ErrProviderFailure))
}

func TestSearchBusinessesMalformedJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status_code": 20000, "tasks": [`))
	})

	_, err := client.SearchBusinesses(context.Background(), "florist", 1026201)
	assert.True(t, errors.Is(err, constants.ErrProviderFailure))
}

func TestSearchBusinessesEnvelopeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status_code": 40200, "status_message": "Payment Required."}`))
	})

	_, err := client.SearchBusinesses(context.Background(), "florist", 1026201)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constants.ErrProviderFailure))
	assert.Contains(t, err.Error(), "Payment Required")
}

func TestSearchBusinessesRetriesServerErrors(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(okResponse))
	})

	listings, err := client.SearchBusinesses(context.Background(), "florist", 1026201)
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Len(t, listings, 2)
}
