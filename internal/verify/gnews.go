package verify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/crosscheck-io/crosscheck/config"
)

// GNewsProvider searches the GNews article index for coverage of a claim.
// Requires an API key; disabled silently without one.
type GNewsProvider struct {
	cfg  config.GNewsConfig
	http *httpClient
}

func NewGNewsProvider(cfg config.GNewsConfig) *GNewsProvider {
	return &GNewsProvider{cfg: cfg, http: newHTTPClient(cfg.Timeout)}
}

func (g *GNewsProvider) Name() ProviderName { return ProviderGNews }

func (g *GNewsProvider) Configured() bool { return g.cfg.APIKey != "" }

func (g *GNewsProvider) Search(ctx context.Context, query string) ([]Evidence, error) {
	var resp struct {
		Errors   []string `json:"errors"`
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("lang", "en")
	params.Add("max", strconv.Itoa(g.cfg.MaxResults))
	params.Add("apikey", g.cfg.APIKey)
	reqURL := fmt.Sprintf("%s/search?%s", g.cfg.Endpoint, params.Encode())

	if err := g.http.doJSON(ctx, "GET", reqURL, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("gnews search: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, fmt.Errorf("gnews api errors: %v", resp.Errors)
	}

	out := make([]Evidence, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		out = append(out, Evidence{
			Title:       a.Title,
			URL:         a.URL,
			Snippet:     a.Description,
			Domain:      domainOf(a.URL),
			Provider:    ProviderGNews,
			PublishedAt: a.PublishedAt,
			SourceName:  a.Source.Name,
		})
	}
	return out, nil
}
