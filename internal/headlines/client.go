package headlines

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

type jsonGetter struct {
	client *http.Client
}

func newJSONGetter(timeout time.Duration) *jsonGetter {
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	return &jsonGetter{client: &http.Client{Timeout: timeout}}
}

func (g *jsonGetter) doJSONGet(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.New(resp.Status + ": " + string(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
