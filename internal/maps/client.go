// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package maps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/tripcache/internal/query"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com"
	matrixPath     = "/maps/api/distancematrix/json"
	statusOK       = "OK"
)

// ErrInvalidAPIKey is returned by NewClient when the key is blank.
var ErrInvalidAPIKey = errors.New("invalid API key")

// StatusError reports a non-OK status from the Distance Matrix API, either for
// the whole request or for the single origin/destination element.
type StatusError struct {
	Origin      string
	Destination string
	Status      string
	Message     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("an error occurred when fetching the distance between '%s' and '%s': %s",
		e.Origin, e.Destination, e.Status)
	if e.Message != "" {
		msg += " (" + e.Message + ")"
	}
	return msg
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client fetches travel distance and duration. It is safe for concurrent use.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, such as a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.session = hc }
}

// NewClient returns a Client for apiKey. Surrounding whitespace, such as the
// trailing newline of a key file, is ignored.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("failed to create maps client: %w", ErrInvalidAPIKey)
	}

	c := &Client{
		session: http.DefaultClient,
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch looks up k. Cancellation and deadlines come from ctx.
func (c *Client) Fetch(ctx context.Context, k query.Key) (query.Result, error) {
	params := url.Values{}
	params.Set("origins", k.Origin)
	params.Set("destinations", k.Destination)
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + matrixPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return query.Result{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("fetching distance matrix for %s", k)
	resp, err := c.session.Do(req)
	if err != nil {
		// The URL carries the key; keep it out of the message.
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return query.Result{}, fmt.Errorf("failed to execute request for %s: %w", k, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return query.Result{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return query.Result{}, fmt.Errorf("distance matrix request for %s failed: %w", k,
			&httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))})
	}

	return parseMatrix(k, body)
}

// parseMatrix extracts the single element of a one-by-one matrix response.
func parseMatrix(k query.Key, body []byte) (query.Result, error) {
	if !gjson.ValidBytes(body) {
		return query.Result{}, fmt.Errorf("invalid distance matrix response for %s", k)
	}
	doc := gjson.ParseBytes(body)

	if status := doc.Get("status").String(); status != statusOK {
		return query.Result{}, &StatusError{
			Origin:      k.Origin,
			Destination: k.Destination,
			Status:      status,
			Message:     doc.Get("error_message").String(),
		}
	}

	element := doc.Get("rows.0.elements.0")
	if !element.Exists() {
		return query.Result{}, fmt.Errorf("distance matrix response for %s has no elements", k)
	}

	if status := element.Get("status").String(); status != statusOK {
		return query.Result{}, &StatusError{
			Origin:      k.Origin,
			Destination: k.Destination,
			Status:      status,
		}
	}

	var r query.Result
	if v := element.Get("distance.value"); v.Exists() {
		m, err := meters(v)
		if err != nil {
			return query.Result{}, fmt.Errorf("distance matrix response for %s: %w", k, err)
		}
		r.DistanceMeters = query.Ptr(m)
	}
	if v := element.Get("distance.text"); v.Exists() {
		r.DistanceText = query.Ptr(v.String())
	}
	if v := element.Get("duration.value"); v.Exists() {
		if v.Type != gjson.Number || v.Num != math.Trunc(v.Num) || v.Num >= math.MaxInt64 || v.Num < math.MinInt64 {
			return query.Result{}, fmt.Errorf("distance matrix response for %s: invalid duration %s", k, v.Raw)
		}
		r.DurationSeconds = query.Ptr(v.Int())
	}
	if v := element.Get("duration.text"); v.Exists() {
		r.DurationText = query.Ptr(v.String())
	}
	return r, nil
}

// meters validates a distance value: a whole number that fits in a uint32.
func meters(v gjson.Result) (uint32, error) {
	if v.Type != gjson.Number || v.Num < 0 || v.Num > math.MaxUint32 || v.Num != math.Trunc(v.Num) {
		return 0, fmt.Errorf("invalid distance %s", v.Raw)
	}
	return uint32(v.Num), nil
}
