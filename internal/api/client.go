package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Session is the collaborator every request reads the bearer token from.
// Unauthorized fires on any 401 so session teardown happens in exactly one
// place instead of in every store.
type Session interface {
	Token() string
	Unauthorized()
}

// Client is the REST backend client. All store traffic goes through it.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    Session
}

// NewClient constructs a backend client.
func NewClient(httpClient *http.Client, baseURL string, session Session) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		session:    session,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// getJSON issues an authenticated GET and decodes the response body into out.
// A missing token degrades to an anonymous request; endpoints that need auth
// answer 401 and the taxonomy takes over.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: MsgNoConnection}
	}
	return c.do(req, out)
}

// sendJSON issues a request with a JSON body and decodes the response into out
// (out may be nil when the caller only cares about success).
func (c *Client) sendJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindServer, Message: err.Error()}
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: MsgNoConnection}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: MsgNoConnection}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.errorFrom(resp)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindServer, Status: resp.StatusCode, Message: "Formato de respuesta inválido del servidor"}
	}
	return nil
}

// errorFrom maps a non-2xx response into the failure taxonomy. The backend's
// payload message wins over the default when present.
func (c *Client) errorFrom(resp *http.Response) *Error {
	apiErr := &Error{
		Kind:    kindFor(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: defaultMessage(resp.StatusCode),
	}

	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			apiErr.Message = payload.Message
		} else if payload.Err != "" {
			apiErr.Message = payload.Err
		}
	}
	// 401 and 403 keep the taxonomy wording so the user message is uniform.
	if resp.StatusCode == 401 || resp.StatusCode == 403 {
		apiErr.Message = defaultMessage(resp.StatusCode)
	}

	if resp.StatusCode == 401 {
		c.session.Unauthorized()
	}
	return apiErr
}
