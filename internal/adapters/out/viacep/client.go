// Package viacep resolves Brazilian postal codes against a ViaCEP-compatible
// HTTP service.
package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freight/internal/core/domain/model/address"
)

const (
	DefaultBaseURL = "https://viacep.com.br"
	DefaultTimeout = 8 * time.Second

	maxBodyBytes = 1 << 20
)

// payload is the JSON document returned by the service. Erro is true for
// well-formed codes that do not exist; some deployments send it as a string.
type payload struct {
	Street       string          `json:"logradouro"`
	Complement   string          `json:"complemento"`
	Neighborhood string          `json:"bairro"`
	City         string          `json:"localidade"`
	State        string          `json:"uf"`
	Erro         json.RawMessage `json:"erro,omitempty"`
}

func (p payload) notFound() bool {
	raw := strings.Trim(strings.TrimSpace(string(p.Erro)), `"`)
	return raw == "true"
}

// Client implements ports.AddressResolver.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the underlying client. Its Timeout is overwritten
// unless WithTimeout is applied after it.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.httpClient.Timeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve normalizes rawCode and fetches its address. Invalid codes fail with
// address.KindInvalidCode before any request is made. No retries.
func (c *Client) Resolve(ctx context.Context, rawCode string) (address.Address, error) {
	code, ok := address.NormalizePostalCode(rawCode)
	if !ok {
		return address.Address{}, address.NewError(address.KindInvalidCode, 0, nil)
	}

	endpoint := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return address.Address{}, address.NewError(address.KindUnknown, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		kind := classifyTransportError(err)
		c.logger.WarnContext(ctx, "address lookup failed",
			slog.String("postalCode", code),
			slog.String("kind", kind.String()),
			slog.String("error", err.Error()),
		)
		return address.Address{}, address.NewError(kind, 0, err)
	}
	defer resp.Body.Close()

	if kind, failed := classifyStatus(resp.StatusCode); failed {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		c.logger.WarnContext(ctx, "address service returned an error status",
			slog.String("postalCode", code),
			slog.Int("status", resp.StatusCode),
		)
		return address.Address{}, address.NewError(kind, resp.StatusCode, nil)
	}

	var body payload
	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		if isTimeout(err) {
			return address.Address{}, address.NewError(address.KindTimeout, resp.StatusCode, err)
		}
		return address.Address{}, address.NewError(address.KindUnknown, resp.StatusCode, err)
	}

	if body.notFound() {
		return address.Address{}, address.NewError(address.KindNotFound, resp.StatusCode, nil)
	}

	addr, err := address.NewAddress(code, body.Street, body.Neighborhood, body.Complement, body.City, body.State)
	if err != nil {
		return address.Address{}, address.NewError(address.KindUnknown, resp.StatusCode, err)
	}
	return addr, nil
}

// classifyStatus maps a non-2xx status to its kind.
func classifyStatus(status int) (address.Kind, bool) {
	switch {
	case status >= 200 && status < 300:
		return address.KindUnknown, false
	case status == http.StatusBadRequest:
		return address.KindBadRequest, true
	case status == http.StatusNotFound:
		return address.KindEndpointNotFound, true
	case status >= 500:
		return address.KindServiceUnavailable, true
	default:
		return address.KindTransportError, true
	}
}

func classifyTransportError(err error) address.Kind {
	if isTimeout(err) {
		return address.KindTimeout
	}
	if errors.Is(err, context.Canceled) {
		return address.KindUnknown
	}

	var urlErr *url.Error
	var netErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &netErr) || errors.As(err, &dnsErr) || errors.As(err, &urlErr) {
		return address.KindNetworkError
	}
	return address.KindUnknown
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
