// Package overpass queries the Overpass API for OpenStreetMap elements and
// flattens them to bare coordinates.
package overpass

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/poiforge/internal/geo"
)

// DefaultBaseURL is the public Overpass API interpreter endpoint.
const DefaultBaseURL = "https://overpass-api.de/api/interpreter"

// Option configures the client.
type Option func(*Client)

// WithBaseURL points the client at a different interpreter endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRateLimit sets the requests-per-second limit for API calls.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// Client issues Overpass QL queries over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates an Overpass client with the given options. The default
// rate limit is conservative: the public interpreter throttles aggressively.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 6 * time.Minute},
		limiter:    rate.NewLimiter(rate.Limit(0.5), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// response mirrors the slice of the Overpass JSON output we care about.
// Nodes carry lat/lon directly; ways and relations queried with "out center"
// carry their centroid under "center".
type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *center  `json:"center"`
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FetchCandidates posts one Overpass QL query and returns the coordinates of
// every element in the result. Elements with no usable coordinates are
// dropped; only their aggregate count is reported.
func (c *Client) FetchCandidates(ctx context.Context, query string) ([]geo.Point, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "overpass: rate limit")
	}

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, eris.Wrap(err, "overpass: build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: request")
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("overpass: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "overpass: read body")
	}

	var parsed response
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, eris.Wrap(err, "overpass: parse response")
	}

	points := make([]geo.Point, 0, len(parsed.Elements))
	malformed := 0
	for _, el := range parsed.Elements {
		switch {
		case el.Center != nil:
			points = append(points, geo.Point{Latitude: el.Center.Lat, Longitude: el.Center.Lon})
		case el.Lat != nil && el.Lon != nil:
			points = append(points, geo.Point{Latitude: *el.Lat, Longitude: *el.Lon})
		default:
			malformed++
		}
	}

	zap.L().Debug("overpass query complete",
		zap.Int("elements", len(parsed.Elements)),
		zap.Int("points", len(points)),
		zap.Int("malformed", malformed),
	)
	return points, nil
}
