package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Response - status and fully read body of a completed request
type Response struct {
	StatusCode int
	Body       []byte
}

type HTTPClient struct {
	client *http.Client
}

// NewHTTPClient - new HTTP client. A zero timeout means no timeout.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// SetBearerAuth sets the Authorization header to a bearer token
func SetBearerAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// PostJSON - marshals payload, POSTs it once with bearer auth and reads the whole response.
// The status code is returned to the caller uninterpreted.
func (c *HTTPClient) PostJSON(ctx context.Context, url, token string, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	SetBearerAuth(req, token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "POST %s", url)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}

	return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
