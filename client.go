package prof

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/planet-nine-app/prof-go/logging"
)

// Client talks to a prof profile service. The zero value is not usable;
// construct one with New. A configured Client is safe for concurrent use:
// operations never mutate it.
type Client struct {
	baseURL string
	httpc   *http.Client
	signer  Signer
	log     logging.Logger
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithSigner attaches the signing identity used for authenticated calls.
func WithSigner(s Signer) Option {
	return func(c *Client) { c.signer = s }
}

// WithHTTPClient replaces the default HTTP client, e.g. to set timeouts
// or a custom transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithLogger enables request tracing. Clients log nothing by default.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for the service at baseURL. A single trailing
// slash is stripped. A client without a signer can still call
// HealthCheck; every other operation fails with an AuthError.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{},
		log:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSigner replaces the signing identity. Set it before sharing the
// client across goroutines; operations read it without locking.
func (c *Client) SetSigner(s Signer) {
	c.signer = s
}

// do issues the request and drains the response body. Transport and read
// failures come back as HTTPError; any received status is returned as is.
func (c *Client) do(ctx context.Context, method, url, contentType string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, &HTTPError{Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debug(ctx, "sending request", "method", method, "url", url)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, &HTTPError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &HTTPError{Err: err}
	}

	c.log.Debug(ctx, "received response", "status", resp.StatusCode, "bytes", len(data))

	return resp.StatusCode, data, nil
}

func (c *Client) profileURL(uuid string) string {
	return c.baseURL + "/user/" + uuid + "/profile"
}

func (c *Client) profileImageURL(uuid string) string {
	return c.profileURL(uuid) + "/image"
}

// rawQuery joins params as key=value pairs with no percent-encoding.
// The server reads auth values verbatim; hex and decimal strings need
// no escaping.
func rawQuery(params map[string]string) string {
	pairs := make([]string, 0, len(params))
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, "&")
}
