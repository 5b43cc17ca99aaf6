package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"sculpturesly.GO/config"
)

// Client wraps calls to the commerce backend REST API. It picks the internal
// base address when one is configured (server-side path) and falls back to the
// public base otherwise, forwards the caller's session cookie, and injects the
// CSRF token on state-changing requests.
//
// No explicit timeout or retry policy: transport defaults apply, errors are
// surfaced once and never retried here.
type Client struct {
	http           *http.Client
	internalBase   string
	publicBase     string
	hostNameHeader string
}

// Options carry per-request extras.
type Options struct {
	// Incoming is the storefront request on whose behalf the backend call is
	// made. Its Cookie header is forwarded and its csrftoken cookie becomes
	// the X-CSRFToken header on state-changing methods.
	Incoming *http.Request
	// Headers override everything composed before them.
	Headers http.Header
}

// New builds a client from the global app config.
func New() *Client {
	config.LoadAppConfig()
	cfg := config.AppConfig
	return &Client{
		http:           &http.Client{},
		internalBase:   cfg.APIInternal,
		publicBase:     cfg.APIPublic,
		hostNameHeader: cfg.HostNameHeader,
	}
}

// NewWithBase builds a client against an explicit base URL (tests, tools).
func NewWithBase(base string) *Client {
	return &Client{http: &http.Client{}, internalBase: base}
}

// BaseURL returns the effective backend base address.
func (c *Client) BaseURL() string {
	if c.internalBase != "" {
		return c.internalBase
	}
	return c.publicBase
}

// HasBackend reports whether a backend address is configured at all. Without
// one the cart service runs in its local variant.
func (c *Client) HasBackend() bool {
	return c.BaseURL() != ""
}

func stateChanging(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// Do issues a request against the backend. Header composition order, later
// overrides earlier: Accept -> forwarded Cookie -> host override -> CSRF ->
// caller headers.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}, opts *Options) (*http.Response, error) {
	full := strings.TrimRight(c.BaseURL(), "/") + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, full, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if opts != nil && opts.Incoming != nil {
		if cookie := opts.Incoming.Header.Get("Cookie"); cookie != "" {
			req.Header.Set("Cookie", cookie)
		}
	}

	if c.hostNameHeader != "" {
		req.Host = c.hostNameHeader
		req.Header.Set("X-Forwarded-Proto", "https")
	}

	if stateChanging(method) && opts != nil && opts.Incoming != nil {
		if token, err := opts.Incoming.Cookie(config.CSRFCookieName); err == nil && token.Value != "" {
			req.Header.Set("X-CSRFToken", token.Value)
		}
	}

	if opts != nil {
		for k, vals := range opts.Headers {
			req.Header.Del(k)
			for _, v := range vals {
				req.Header.Add(k, v)
			}
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("API request failed: %s %s: %v", method, path, err)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		log.Printf("API error: %d %s on %s %s: %s", resp.StatusCode, http.StatusText(resp.StatusCode), method, path, string(data))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return resp, nil
}

// StatusError is a non-2xx backend response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d %s", e.Code, http.StatusText(e.Code))
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}, opts *Options) error {
	resp, err := c.Do(ctx, method, path, query, body, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// GetJSON fetches path and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}, opts *Options) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out, opts)
}

// PostJSON sends body and decodes the JSON response into out (out may be nil).
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}, opts *Options) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out, opts)
}

// PatchJSON sends body and decodes the JSON response into out.
func (c *Client) PatchJSON(ctx context.Context, path string, body, out interface{}, opts *Options) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, body, out, opts)
}

// Delete issues a DELETE and decodes the JSON response into out (may be nil).
func (c *Client) Delete(ctx context.Context, path string, out interface{}, opts *Options) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, out, opts)
}
