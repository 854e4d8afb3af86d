package notify

import (
	"context"
	"errors"
	"net/url"

	"github.com/go-resty/resty/v2"
)

// newRestyClient wraps c, or a fresh client when c is nil.
func newRestyClient(c *resty.Client) *resty.Client {
	if c != nil {
		return c
	}
	return resty.New()
}

// postJSON sends body as JSON to endpoint and returns the raw response.
// Transport errors have the endpoint removed from their message so that
// credentials embedded in the URL are not logged.
func postJSON(ctx context.Context, client *resty.Client, endpoint string, body any) (*resty.Response, error) {
	resp, err := client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(endpoint)
	if err != nil {
		return nil, redactURL(err)
	}
	return resp, nil
}

func redactURL(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	return &url.Error{Op: ue.Op, URL: "[redacted]", Err: ue.Err}
}
