package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// httpClient is a thin JSON-over-HTTP helper shared by the provider
// adapters. One attempt per call: a provider is queried at most once per
// verification request, failures degrade to empty evidence upstream.
type httpClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *httpClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{client: &http.Client{Timeout: timeout}}
}

func (c *httpClient) doJSON(ctx context.Context, method, url string, headers map[string]string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// read response body (best-effort) to include in error
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.New(resp.Status + ": " + string(b))
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
