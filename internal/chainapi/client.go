package chainapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// envelope is the uniform response wrapper of the remote API.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client binds every endpoint of the remote chain API.
type Client struct {
	logs    *zap.SugaredLogger
	baseURL string
	http    HTTPDoer
}

// NewClient is a constructor function for the Client type. The doer carries the request timeout.
func NewClient(logger *zap.SugaredLogger, baseURL string, doer HTTPDoer) *Client {
	return &Client{
		logs:    logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return requestError(fmt.Errorf("marshal request body: %w", err))
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return requestError(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logs.Warnw("chain api unreachable",
			"method", method,
			"path", path,
			"error", err)
		return networkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(fmt.Errorf("read response body: %w", err))
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		c.logs.Warnw("chain api returned error status",
			"method", method,
			"path", path,
			"status", resp.StatusCode)
		if decodeErr == nil && (env.Error != "" || env.Message != "") {
			return rejectedError(resp.StatusCode, env)
		}
		return statusError(resp.StatusCode)
	}

	if decodeErr != nil {
		return &Error{Kind: KindRequest, Message: "malformed response from chain api", Err: decodeErr}
	}

	if !env.Success {
		return rejectedError(0, env)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return &Error{Kind: KindRequest, Message: "malformed response from chain api", Err: fmt.Errorf("decode %s data: %w", path, err)}
	}

	return nil
}

func escape(segment string) string {
	return url.PathEscape(segment)
}

// IsNotFound reports whether err is a 404 from the remote API.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
