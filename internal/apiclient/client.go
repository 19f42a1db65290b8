// Package apiclient is the bearer-token REST client for the manage-aset
// API. Every operation attaches the stored credential; SessionGate is
// expected to have admitted the caller already, so a 401 here means the
// session died mid-flight.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kelola-aset/kelola/internal/model"
	"github.com/kelola-aset/kelola/internal/session"
)

const apiPrefix = "/api/v1/manage-aset"

// Client talks to one backend. Zero-value is not usable; construct with
// New.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Store
}

// New creates a client for the given base URL, reading the bearer
// token from the session store on every request.
func New(baseURL string, sess *session.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: model.DefaultRequestTimeout},
		session: sess,
	}
}

// do issues one request and decodes the full response body into out
// (when non-nil). Non-2xx statuses map onto the failure taxonomy.
func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}
	if tok := c.session.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrAuthExpired
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Path: path}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &ServerError{StatusCode: resp.StatusCode, Message: serverMessage(resp.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, "", nil, out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", path, err)
	}
	return c.do(ctx, http.MethodPut, path, "application/json", bytes.NewReader(data), out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding %s payload: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, "application/json", bytes.NewReader(data), out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, nil)
}

// serverMessage pulls a human-readable message out of an error body.
func serverMessage(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(data) == 0 {
		return ""
	}
	var body struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		for _, m := range []string{body.Message, body.Msg, body.Error} {
			if m != "" {
				return m
			}
		}
	}
	return strings.TrimSpace(string(data))
}
