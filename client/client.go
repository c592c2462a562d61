package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Nic0aranda/PokeShop-sub000/logger"
)

// Doer abstracts a single remote resource family. Repositories depend on
// this interface so tests can substitute a fake backend.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error)
}

// BackendClient talks to one backend host. Each resource family may live on
// a different host/port, so callers construct one client per family.
type BackendClient struct {
	baseURL string
	client  *http.Client
}

func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Do issues a request against the backend. A fresh request id is attached
// unless the context already carries one.
func (c *BackendClient) Do(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	requestID, ok := logger.FromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.client.Do(req)
}

// APIError is a structured (well-formed, >=400) backend response. Body holds
// the raw error payload text exactly as the backend sent it.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error: status=%d body=%s", e.Status, e.Body)
}

// DecodeJSON decodes a 2xx response body into out. Statuses >= 400 are
// returned as *APIError carrying the body text.
func DecodeJSON(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Discard drains and closes a response, returning *APIError for >=400.
func Discard(resp *http.Response) error {
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Body: string(body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// BodyFromJSON serializes v into a request body reader.
func BodyFromJSON(v interface{}) (io.Reader, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// GetJSON issues a GET and decodes the response into out.
func GetJSON(ctx context.Context, d Doer, path string, query url.Values, out interface{}) error {
	resp, err := d.Do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return DecodeJSON(resp, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out.
// Pass nil out to discard the response body.
func PostJSON(ctx context.Context, d Doer, path string, in, out interface{}) error {
	body, err := BodyFromJSON(in)
	if err != nil {
		return err
	}
	resp, err := d.Do(ctx, http.MethodPost, path, nil, body)
	if err != nil {
		return err
	}
	if out == nil {
		return Discard(resp)
	}
	return DecodeJSON(resp, out)
}

// PutJSON issues a PUT with a JSON body, discarding any response payload.
func PutJSON(ctx context.Context, d Doer, path string, in interface{}) error {
	body, err := BodyFromJSON(in)
	if err != nil {
		return err
	}
	resp, err := d.Do(ctx, http.MethodPut, path, nil, body)
	if err != nil {
		return err
	}
	return Discard(resp)
}

// Delete issues a DELETE, discarding any response payload.
func Delete(ctx context.Context, d Doer, path string) error {
	resp, err := d.Do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return Discard(resp)
}
