package verify

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/crosscheck-io/crosscheck/config"
)

// FactCheckProvider queries the Google Fact Check Tools claim registry.
// A single claim may carry several reviews; each review becomes its own
// Evidence item so the verdict engine can count raters independently.
// Requires an API key; disabled silently without one.
type FactCheckProvider struct {
	cfg  config.FactCheckConfig
	http *httpClient
}

func NewFactCheckProvider(cfg config.FactCheckConfig) *FactCheckProvider {
	return &FactCheckProvider{cfg: cfg, http: newHTTPClient(cfg.Timeout)}
}

func (f *FactCheckProvider) Name() ProviderName { return ProviderFactCheck }

func (f *FactCheckProvider) Configured() bool { return f.cfg.APIKey != "" }

func (f *FactCheckProvider) Search(ctx context.Context, query string) ([]Evidence, error) {
	var resp struct {
		Claims []struct {
			Text        string `json:"text"`
			Claimant    string `json:"claimant"`
			ClaimReview []struct {
				Title         string `json:"title"`
				URL           string `json:"url"`
				TextualRating string `json:"textualRating"`
				Publisher     struct {
					Name string `json:"name"`
				} `json:"publisher"`
			} `json:"claimReview"`
		} `json:"claims"`
	}

	params := url.Values{}
	params.Add("query", query)
	params.Add("key", f.cfg.APIKey)
	params.Add("languageCode", "en")
	params.Add("pageSize", strconv.Itoa(f.cfg.PageSize))
	reqURL := fmt.Sprintf("%s?%s", f.cfg.Endpoint, params.Encode())

	if err := f.http.doJSON(ctx, "GET", reqURL, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("factcheck search: %w", err)
	}

	var out []Evidence
	for _, claim := range resp.Claims {
		for _, review := range claim.ClaimReview {
			title := review.Title
			if title == "" {
				title = claim.Text
			}
			out = append(out, Evidence{
				Title:     title,
				URL:       review.URL,
				Snippet:   claim.Text,
				Domain:    domainOf(review.URL),
				Provider:  ProviderFactCheck,
				ClaimText: claim.Text,
				Claimant:  claim.Claimant,
				Rating:    review.TextualRating,
				Publisher: review.Publisher.Name,
			})
		}
	}
	return out, nil
}
