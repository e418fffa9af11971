// Package apiclient is a typed client for the library REST API.
//
// Every request reads the bearer token from its TokenSource, so a token
// written or cleared by login/logout is picked up by the next call. Calls
// are never retried or cached; transport errors are returned unchanged and
// non-2xx responses come back as *errors.APIError.
package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "libadmin/internal/errors"
)

const tracerName = "libadmin/internal/apiclient"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenSource supplies the bearer token for outgoing requests.
// An empty token sends the request unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client calls the library API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	tracer  trace.Tracer
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTracerProvider sets the provider for request spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) { c.tracer = tp.Tracer(tracerName) }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the API rooted at baseURL (for example
// "https://library.example.com/api").
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
		tokens:  tokens,
		tracer:  otel.Tracer(tracerName),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// errorBody is the shape of an API failure.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	var (
		body        io.Reader
		contentType string
	)
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", op, err)
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	return c.send(ctx, op, method, path, query, body, contentType, out)
}

func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	ctx, span := c.tracer.Start(ctx, "apiclient."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	defer span.End()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return fmt.Errorf("read token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	c.logger.DebugContext(ctx, "api call", "op", op, "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := decodeError(resp)
		span.SetStatus(codes.Error, apiErr.Error())
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode response")
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

func decodeError(resp *http.Response) *apperrors.APIError {
	apiErr := &apperrors.APIError{StatusCode: resp.StatusCode}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(raw) == 0 {
		return apiErr
	}
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return apiErr
	}
	apiErr.Message = eb.Message
	apiErr.Errors = eb.Errors
	return apiErr
}

// ListParams selects one page of a searchable listing.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v
}

func idPath(format string, id int) string {
	return fmt.Sprintf(format, id)
}
