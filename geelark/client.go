package geelark

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mdmdirector/phonewatch/types"
	"github.com/mdmdirector/phonewatch/utils"
	"github.com/pkg/errors"
)

// StatusClient looks up the status of cloud phones
type StatusClient interface {
	// PhoneStatus returns the decoded response and the raw body it was decoded from
	PhoneStatus(ctx context.Context, ids []string) (*types.StatusResponse, []byte, error)
}

// Client talks to the Geelark open API phone status endpoint
type Client struct {
	url    string
	token  string
	client *utils.HTTPClient
}

var _ StatusClient = (*Client)(nil)

// NewClient creates a status client. A zero timeout means no timeout.
func NewClient(url, token string, timeout time.Duration) *Client {
	return &Client{
		url:    url,
		token:  token,
		client: utils.NewHTTPClient(timeout),
	}
}

// PhoneStatus POSTs the ids once. The HTTP status is not checked; the provider
// reports errors through the code field of the body.
func (c *Client) PhoneStatus(ctx context.Context, ids []string) (*types.StatusResponse, []byte, error) {
	if ids == nil {
		ids = []string{}
	}

	resp, err := c.client.PostJSON(ctx, c.url, c.token, types.StatusRequest{IDs: ids})
	if err != nil {
		return nil, nil, errors.Wrap(err, "request phone status")
	}

	var result types.StatusResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, resp.Body, errors.Wrapf(err, "decode phone status response (HTTP %d): %s", resp.StatusCode, string(resp.Body))
	}

	return &result, resp.Body, nil
}
