package steamapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{APIKey: "secret", BaseURL: srv.URL, TimeoutSeconds: 5}, nil)
	require.NoError(t, err)
	return c
}

func TestClient_URL(t *testing.T) {
	c, err := NewClient(Config{APIKey: "K", BaseURL: "http://api.example.com/"}, nil)
	require.NoError(t, err)

	got := c.URL("ISteamUser", "ResolveVanityURL", 1, url.Values{"vanityurl": {"gaben"}})
	assert.Equal(t, "http://api.example.com/ISteamUser/ResolveVanityURL/v0001/?key=K&format=json&vanityurl=gaben", got)

	got = c.URL("IEconItems_440", "GetSchemaItems", 12, nil)
	assert.Equal(t, "http://api.example.com/IEconItems_440/GetSchemaItems/v0012/?key=K&format=json", got)
}

func TestClient_ResolveVanityURL(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ISteamUser/ResolveVanityURL/v0001/", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		if r.URL.Query().Get("vanityurl") == "gaben" {
			_, _ = w.Write([]byte(`{"response":{"success":1,"steamid":"76561197960287930"}}`))
			return
		}
		_, _ = w.Write([]byte(`{"response":{"success":42,"message":"No match"}}`))
	})

	id, err := c.ResolveVanityURL(context.Background(), "gaben")
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", id)

	id, err = c.ResolveVanityURL(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestClient_GetPlayerSummary_Cached(t *testing.T) {
	var calls int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/ISteamUser/GetPlayerSummaries/v0002/", r.URL.Path)
		_, _ = w.Write([]byte(`{"response":{"players":[{"steamid":"1","personaname":"robin","realname":""}]}}`))
	})

	for i := 0; i < 3; i++ {
		s, err := c.GetPlayerSummary(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "robin", s.DisplayName())
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_GetPlayerItems(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"Public", `{"result":{"status":1,"items":[{"id":1,"defindex":13,"quality":6,"inventory":2147483649},{"id":2,"defindex":13,"quality":6,"flag_cannot_trade":true}]}}`, 2},
		{"Private", `{"result":{"status":15}}`, 0},
		{"Missing result", `{}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/IEconItems_440/GetPlayerItems/v0001/", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			})

			items, err := c.GetPlayerItems(context.Background(), "1")
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Len(t, items, tt.want)
		})
	}
}

func TestClient_GetSchema_FollowsCursor(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en", r.URL.Query().Get("language"))
		switch r.URL.Query().Get("start") {
		case "":
			_, _ = w.Write([]byte(`{"result":{"status":1,"items":[{"defindex":0,"item_name":"Bat"}],"next":5}}`))
		case "5":
			_, _ = w.Write([]byte(`{"result":{"status":1,"items":[{"defindex":5,"item_name":"Fists"}]}}`))
		default:
			t.Errorf("unexpected start %s", r.URL.Query().Get("start"))
		}
	})

	items, err := c.GetSchema(context.Background(), "en")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bat", items[0].ItemName)
	assert.Equal(t, 5, items[1].Defindex)
}

func TestClient_Errors(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte("forbidden"))
		})

		_, err := c.GetPlayerItems(context.Background(), "1")
		assert.ErrorIs(t, err, ErrStatus)
	})

	t.Run("Malformed body", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>"))
		})

		_, err := c.ResolveVanityURL(context.Background(), "x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("Missing key", func(t *testing.T) {
		_, err := NewClient(Config{APIKeyFile: ""}, nil)
		assert.ErrorIs(t, err, ErrMissingKey)
	})
}

func TestClient_LogsMaskedURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"steamid":"1"}}`))
	}))
	defer srv.Close()

	core, logs := observer.New(zap.InfoLevel)
	c, err := NewClient(Config{APIKey: "topsecret", BaseURL: srv.URL, LogRequests: true}, zap.New(core))
	require.NoError(t, err)

	_, err = c.ResolveVanityURL(context.Background(), "x")
	require.NoError(t, err)

	requests := logs.FilterMessage("Steam API request").All()
	require.Len(t, requests, 1)
	logged := requests[0].ContextMap()["url"].(string)
	assert.False(t, strings.Contains(logged, "topsecret"))
	assert.Contains(t, logged, "/ISteamUser/ResolveVanityURL/v0001/")
	assert.NotEmpty(t, requests[0].ContextMap()["request_id"])
}
