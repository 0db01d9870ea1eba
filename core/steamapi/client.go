package steamapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrStatus is returned when the API answers with a non-2xx status.
var ErrStatus = errors.New("unexpected status")

const (
	summaryTTL   = 10 * time.Minute
	schemaMethod = "GetSchemaItems"
	itemsIface   = "IEconItems_440"
	userIface    = "ISteamUser"
)

// API is the subset of the Steam Web API the application calls.
type API interface {
	// ResolveVanityURL returns the account id for a custom profile name, or "" when there is none.
	ResolveVanityURL(ctx context.Context, name string) (string, error)
	// GetPlayerSummary returns the public profile of an account.
	GetPlayerSummary(ctx context.Context, steamID string) (*PlayerSummary, error)
	// GetPlayerItems returns the backpack of an account. A private backpack yields no items.
	GetPlayerItems(ctx context.Context, steamID string) ([]PlayerItem, error)
	// GetSchema returns every schema item in the given language.
	GetSchema(ctx context.Context, language string) ([]SchemaItem, error)
}

// Client calls the Steam Web API over HTTP.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
	logger     *zap.Logger
	summaries  *cache.Cache
}

// NewClient creates a client from the configuration. The API key must resolve.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	key, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	var transport http.RoundTripper = http.DefaultTransport
	if cfg.LogRequests {
		transport = newLoggingTransport(transport, logger, key)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     key,
		httpClient: &http.Client{
			Timeout:   time.Duration(timeout) * time.Second,
			Transport: transport,
		},
		logger:    logger,
		summaries: cache.New(summaryTTL, 2*summaryTTL),
	}, nil
}

// ResolveVanityURL returns the account id for a custom profile name.
func (c *Client) ResolveVanityURL(ctx context.Context, name string) (string, error) {
	var out vanityResponse
	if err := c.call(ctx, userIface, "ResolveVanityURL", 1, url.Values{"vanityurl": {name}}, &out); err != nil {
		return "", fmt.Errorf("resolve vanity url %q: %w", name, err)
	}
	return out.Response.SteamID, nil
}

// GetPlayerSummary returns the public profile of an account. Results are cached.
func (c *Client) GetPlayerSummary(ctx context.Context, steamID string) (*PlayerSummary, error) {
	if cached, ok := c.summaries.Get(steamID); ok {
		return cached.(*PlayerSummary), nil
	}

	var out summariesResponse
	if err := c.call(ctx, userIface, "GetPlayerSummaries", 2, url.Values{"steamids": {steamID}}, &out); err != nil {
		return nil, fmt.Errorf("get player summary %s: %w", steamID, err)
	}

	summary := &PlayerSummary{SteamID: steamID}
	if len(out.Response.Players) > 0 {
		summary = &out.Response.Players[0]
	}
	c.summaries.SetDefault(steamID, summary)
	return summary, nil
}

// GetPlayerItems returns the backpack of an account.
func (c *Client) GetPlayerItems(ctx context.Context, steamID string) ([]PlayerItem, error) {
	var out playerItemsResponse
	if err := c.call(ctx, itemsIface, "GetPlayerItems", 1, url.Values{"SteamID": {steamID}}, &out); err != nil {
		return nil, fmt.Errorf("get player items %s: %w", steamID, err)
	}

	if out.Result == nil || out.Result.Status == privateBackpack {
		c.logger.Warn("Could not fetch items", zap.String("steamid", steamID))
		return []PlayerItem{}, nil
	}
	return out.Result.Items, nil
}

// GetSchema returns every schema item, following the pagination cursor until it runs out.
func (c *Client) GetSchema(ctx context.Context, language string) ([]SchemaItem, error) {
	var items []SchemaItem
	start := 0

	for {
		params := url.Values{"language": {language}}
		if start > 0 {
			params.Set("start", strconv.Itoa(start))
		}

		var out schemaResponse
		if err := c.call(ctx, itemsIface, schemaMethod, 1, params, &out); err != nil {
			return nil, fmt.Errorf("get schema: %w", err)
		}
		items = append(items, out.Result.Items...)

		if out.Result.Next == nil || *out.Result.Next <= start {
			break
		}
		start = *out.Result.Next
	}

	return items, nil
}

// URL builds the request URL of an API method. The key and format always lead the query.
func (c *Client) URL(iface, method string, version int, params url.Values) string {
	query := "key=" + url.QueryEscape(c.key) + "&format=json"
	if len(params) > 0 {
		query += "&" + params.Encode()
	}
	return fmt.Sprintf("%s/%s/%s/v%04d/?%s", c.baseURL, iface, method, version, query)
}

func (c *Client) call(ctx context.Context, iface, method string, version int, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(iface, method, version, params), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w %d: %s", ErrStatus, resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(body []byte, n int) string {
	if len(body) > n {
		return string(body[:n]) + "..."
	}
	return string(body)
}
