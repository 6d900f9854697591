// Package restapi talks to the remote storefront REST API that owns the
// authoritative cart and wishlist collections.
package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	contentTypeJSON = "application/json"

	// maxErrorBody bounds how much of a failed response is kept in a RemoteError.
	maxErrorBody = 4 << 10
)

// Transport performs the actual HTTP round trip. *http.Client satisfies it.
type Transport interface {
	Do(*http.Request) (*http.Response, error)
}

// ClientParams holds dependencies for Client, injected by Fx.
type ClientParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Transport Transport `optional:"true"`
}

// Client sends JSON requests to the collection API (api.baseUrl) and the
// authentication API (api.authBaseUrl).
type Client struct {
	baseURL     string
	authBaseURL string
	transport   Transport
	logger      *slog.Logger
}

// NewClient builds a Client from configuration. A zero api.timeout keeps
// the transport defaults.
func NewClient(params ClientParams) *Client {
	transport := params.Transport
	if transport == nil {
		transport = &http.Client{Timeout: params.Config.API.Timeout}
	}

	return &Client{
		baseURL:     strings.TrimRight(params.Config.API.BaseURL, "/"),
		authBaseURL: strings.TrimRight(params.Config.API.AuthBaseURL, "/"),
		transport:   transport,
		logger:      params.Logger,
	}
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// request describes one call. Path is relative to the collection or auth base URL.
type request struct {
	method string
	path   string
	auth   bool // true: path is under authBaseURL
	token  string
	body   any
}

// do sends req and decodes a 2xx body into result when result is non-nil.
// Any other status is returned as a *domainerrors.RemoteError.
func (c *Client) do(ctx context.Context, req request, result any) error {
	base := c.baseURL
	if req.auth {
		base = c.authBaseURL
	}
	url := base + req.path

	var body io.Reader
	if req.body != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(req.body); err != nil {
			return errors.Wrap(err, "encode request body")
		}
		body = buf
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, url, body)
	if err != nil {
		return errors.Wrap(err, "can not make new request")
	}
	httpReq.Header.Set("Accept", contentTypeJSON)
	if body != nil {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		httpReq.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.transport.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "%s %s", req.method, req.path)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	c.log(ctx).Debug("Remote API call",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newRemoteError(req, resp)
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return errors.Wrapf(domainerrors.ErrUnexpectedResponse, "%s %s: %v", req.method, req.path, err)
	}

	return nil
}

func newRemoteError(req request, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := strings.TrimSpace(string(raw))
	var envelope struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
		message = envelope.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &domainerrors.RemoteError{
		Method:     req.method,
		Path:       req.path,
		StatusCode: resp.StatusCode,
		Body:       message,
	}
}
