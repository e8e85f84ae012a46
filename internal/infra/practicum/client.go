// internal/infra/practicum/client.go
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client calls the Practicum homework-status API over HTTP.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the given endpoint. The timeout bounds every
// request end to end so a stalled server cannot hang a poll cycle forever.
func NewClient(endpoint, token string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// HomeworkStatuses requests every status change since the given Unix
// timestamp. Only HTTP 200 counts as success; the decoded body is returned
// as-is and shape validation is the caller's concern. No retries here: the
// poll loop's fixed interval is the retry policy.
func (c *Client) HomeworkStatuses(ctx context.Context, from int64) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build status request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	q := url.Values{}
	q.Set("from_date", strconv.FormatInt(from, 10))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{URL: c.endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, URL: c.endpoint}
	}

	var body any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}

	// A well-formed 200 reply can still be a refusal: the API signals errors
	// in-band through these keys.
	if obj, ok := body.(map[string]any); ok {
		for _, key := range []string{"code", "error"} {
			if v, present := obj[key]; present {
				return nil, &APIError{Key: key, Value: v}
			}
		}
	}

	return body, nil
}
