package infra

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, baseURL string) *SerpAPIClient {
	t.Helper()
	client := NewSerpAPIClient("test-key", zap.NewNop())
	client.BaseURL = baseURL
	client.RetryDelay = 0
	return client
}

func TestSearchDecodesPayloadAndSendsParams(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"organic_results": [
				{"title": "Haleakala National Park", "link": "https://example.com/haleakala", "snippet": "Sunrise above the clouds"}
			],
			"local_results": {
				"places": [
					{"title": "Mama's Fish House", "rating": 4.8, "reviews": 9000, "address": "799 Poho Pl", "phone": "+1 808-555-0100"}
				]
			}
		}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.Search(context.Background(), "top attractions", "Maui, Hawaii")

	require.NoError(t, err)
	require.Len(t, result.OrganicResults, 1)
	assert.Equal(t, "Haleakala National Park", result.OrganicResults[0].Title)
	assert.Equal(t, "https://example.com/haleakala", result.OrganicResults[0].Link)
	require.NotNil(t, result.LocalResults)
	require.Len(t, result.LocalResults.Places, 1)
	assert.Equal(t, 4.8, result.LocalResults.Places[0].Rating)

	assert.Equal(t, "google", got.Get("engine"))
	assert.Equal(t, "top attractions", got.Get("q"))
	assert.Equal(t, "Maui, Hawaii", got.Get("location"))
	assert.Equal(t, "en", got.Get("hl"))
	assert.Equal(t, "us", got.Get("gl"))
	assert.Equal(t, "test-key", got.Get("api_key"))
}

func TestSearchGivesUpAfterMaxRetries(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Search(context.Background(), "anything", "Maui")

	require.Error(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&hits))
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Contains(t, err.Error(), "status 500")
}

func TestSearchRecoversBeforeRetriesExhausted(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"organic_results": [{"title": "Recovered"}]}`)
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	result, err := client.Search(context.Background(), "anything", "Maui")

	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&hits))
	require.Len(t, result.OrganicResults, 1)
	assert.Equal(t, "Recovered", result.OrganicResults[0].Title)
}

func TestSearchRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "definitely not json")
	}))
	defer srv.Close()

	client := newTestClient(t, srv.URL)
	_, err := client.Search(context.Background(), "anything", "Maui")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode search response")
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewSerpAPIClient("", zap.NewNop()).Configured())
	assert.True(t, NewSerpAPIClient("key", zap.NewNop()).Configured())
}
