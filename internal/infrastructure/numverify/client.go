// Package numverify implements ports.LookupClient against a numverify-compatible
// number validation API.
package numverify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/domain"
	"github.com/EtsTest-ReactNativeApps/Find-Phone-Country/internal/ports"
)

// DefaultEndpoint is the public numverify validation endpoint.
const DefaultEndpoint = "http://apilayer.net/api/validate"

var errMissingValid = errors.New(`response has no "valid" field`)

// Options configures a Client.
type Options struct {
	Endpoint          string
	AccessKey         string
	Timeout           time.Duration
	RequestsPerMinute int
	HTTPClient        *http.Client
	Logger            ports.Logger
}

// Client issues a single GET per lookup and interprets the JSON answer.
type Client struct {
	endpoint   string
	accessKey  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     ports.Logger
}

// New builds a Client. A zero RequestsPerMinute disables throttling.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = domain.DefaultHTTPClientTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	limit := rate.Inf
	if opts.RequestsPerMinute > 0 {
		limit = rate.Limit(float64(opts.RequestsPerMinute) / 60.0)
	}
	return &Client{
		endpoint:   defaultString(opts.Endpoint, DefaultEndpoint),
		accessKey:  opts.AccessKey,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     opts.Logger,
	}
}

// response is the subset of the provider payload we read. Valid is a pointer
// so that a missing field can be told apart from false.
type response struct {
	Valid       *bool  `json:"valid"`
	Number      string `json:"number"`
	Carrier     string `json:"carrier"`
	Location    string `json:"location"`
	CountryName string `json:"country_name"`
	LineType    string `json:"line_type"`

	Success *bool          `json:"success"`
	Error   *providerError `json:"error"`
}

type providerError struct {
	Code int    `json:"code"`
	Type string `json:"type"`
	Info string `json:"info"`
}

// Lookup implements ports.LookupClient.
func (c *Client) Lookup(ctx context.Context, number string) (domain.LookupResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return domain.LookupResult{}, domain.Transport("wait for rate limiter", err).WithOp("numverify")
	}

	reqURL, err := c.buildURL(number)
	if err != nil {
		return domain.LookupResult{}, domain.Transport("build request url", err).WithOp("numverify")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.LookupResult{}, domain.Transport("build request", err).WithOp("numverify")
	}
	httpReq.Header.Set("accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.LookupResult{}, domain.Transport("request failed", err).WithOp("numverify")
	}
	defer resp.Body.Close()

	c.debug("provider responded", map[string]interface{}{
		"status":     resp.StatusCode,
		"latency_ms": time.Since(started).Milliseconds(),
	})

	if resp.StatusCode/100 != 2 {
		return domain.LookupResult{}, domain.Transport("unexpected status", errors.New(resp.Status)).WithOp("numverify")
	}

	var body bytes.Buffer
	if _, err := body.ReadFrom(io.LimitReader(resp.Body, domain.MaxProviderResponseBytes)); err != nil {
		return domain.LookupResult{}, domain.Transport("read response", err).WithOp("numverify")
	}

	payload, err := parseResponse(body.Bytes())
	if err != nil {
		return domain.LookupResult{}, domain.Transport("parse response", err).WithOp("numverify")
	}
	return interpret(payload), nil
}

func (c *Client) buildURL(number string) (string, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("number", number)
	if c.accessKey != "" {
		q.Set("access_key", c.accessKey)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) debug(msg string, fields map[string]interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

func parseResponse(body []byte) (response, error) {
	var payload response
	if err := json.Unmarshal(body, &payload); err != nil {
		return response{}, err
	}
	if payload.Error != nil {
		return response{}, fmt.Errorf("provider error %d (%s): %s", payload.Error.Code, payload.Error.Type, payload.Error.Info)
	}
	if payload.Success != nil && !*payload.Success {
		return response{}, errors.New("provider reported failure")
	}
	if payload.Valid == nil {
		return response{}, errMissingValid
	}
	return payload, nil
}

// interpret derives display fields from a well-formed payload.
func interpret(payload response) domain.LookupResult {
	if !*payload.Valid {
		return domain.LookupResult{Valid: false}
	}

	carrier := domain.NotAvailable
	if payload.Carrier != "" {
		carrier = Capitalize(payload.Carrier)
	}

	country := Capitalize(payload.CountryName)
	if payload.Location != "" {
		country = Capitalize(payload.Location) + ", " + country
	}

	return domain.LookupResult{
		Valid:           true,
		Carrier:         carrier,
		CountryOfOrigin: country,
		PhoneType:       Capitalize(payload.LineType),
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

var _ ports.LookupClient = (*Client)(nil)
