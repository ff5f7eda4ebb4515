package scanner

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	consts "github.com/khanhnv2901/safepi/internal/shared/constants"
)

// The assessment endpoint is fixed on purpose: accepting it from flags or
// config would turn every run into a potential SSRF primitive.
const (
	apiHost   = "observatory-api.mdn.mozilla.net"
	apiPath   = "/api/v2/scan"
	userAgent = "safepi-cli/1.0"
)

var (
	// ErrResponseTooLarge signals the response body blew past MaxResponseBytes.
	ErrResponseTooLarge = errors.New("scan API response exceeds size limit")
	// ErrHostMismatch signals a request or redirect aimed anywhere but the
	// pinned API host.
	ErrHostMismatch = errors.New("request host does not match the scan API host")
)

// Options carries the two pass-through flags the API accepts per scan. They
// double as the POST body.
type Options struct {
	Hidden bool `json:"hidden"`
	Rescan bool `json:"rescan"`
}

// Client issues scan requests against the pinned assessment host. TLS
// verification is never relaxed and redirects off the pinned host are
// refused.
type Client struct {
	httpClient *http.Client
	baseURL    string
	host       string
	opts       Options
}

// NewClient builds a Client bound to the production API host.
func NewClient(opts Options) *Client {
	c := &Client{
		baseURL: "https://" + apiHost,
		host:    apiHost,
		opts:    opts,
	}
	c.httpClient = &http.Client{
		Timeout: consts.RequestTimeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: false},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if req.URL.Hostname() != c.host {
				return fmt.Errorf("%w: redirect to %s", ErrHostMismatch, req.URL.Hostname())
			}
			return nil
		},
	}
	return c
}

// Scan submits one domain and returns the HTTP status plus decoded payload.
// Exactly one POST is made; there is no retry at this layer or above.
func (c *Client) Scan(ctx context.Context, domain string) (*Response, error) {
	body, err := json.Marshal(c.opts)
	if err != nil {
		return nil, fmt.Errorf("encode scan request: %w", err)
	}

	endpoint := c.baseURL + apiPath + "?host=" + url.QueryEscape(domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create scan request: %w", err)
	}
	if got := req.URL.Hostname(); got != c.host {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrHostMismatch, got, c.host)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Timeout() {
			return nil, fmt.Errorf("scan request timed out after %s: %w", c.httpClient.Timeout, err)
		}
		return nil, fmt.Errorf("scan request failed: %w", err)
	}
	defer resp.Body.Close()

	// Read one byte past the cap so an oversize body is distinguishable from
	// one that is exactly at the limit. Returning early leaves the rest of
	// the body unread and the connection is torn down on Close.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, consts.MaxResponseBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read scan response: %w", err)
	}
	if len(raw) > consts.MaxResponseBytes {
		return nil, fmt.Errorf("%w (cap %d bytes)", ErrResponseTooLarge, consts.MaxResponseBytes)
	}

	out := &Response{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(raw, &out.Payload); err != nil {
		if resp.StatusCode == http.StatusOK {
			return nil, fmt.Errorf("decode scan response: %w", err)
		}
		// Error statuses are not required to carry JSON; the status code is
		// enough for the caller to classify the failure.
		return out, nil
	}
	return out, nil
}
