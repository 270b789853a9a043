package verify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/crosscheck-io/crosscheck/config"
	"golang.org/x/time/rate"
)

const ddgUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// DuckDuckGoProvider scrapes the DuckDuckGo HTML endpoint for general web
// results. No credential needed, so it is always attempted; requests go
// through a process-wide rate limiter because DuckDuckGo throttles hard.
type DuckDuckGoProvider struct {
	cfg     config.DuckDuckGoConfig
	client  *http.Client
	limiter *rate.Limiter
}

func NewDuckDuckGoProvider(cfg config.DuckDuckGoConfig) *DuckDuckGoProvider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 8
	}
	rpm := cfg.RatePerMinute
	if rpm <= 0 {
		rpm = 20
	}
	return &DuckDuckGoProvider{
		cfg:     cfg,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
	}
}

func (d *DuckDuckGoProvider) Name() ProviderName { return ProviderDuckDuckGo }

// Configured is always true: DuckDuckGo needs no credential.
func (d *DuckDuckGoProvider) Configured() bool { return true }

func (d *DuckDuckGoProvider) Search(ctx context.Context, query string) ([]Evidence, error) {
	if err := d.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	form := url.Values{}
	form.Set("q", query)
	req, err := http.NewRequestWithContext(ctx, "POST", d.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", ddgUserAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo search: %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo parse: %w", err)
	}

	var out []Evidence
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		link := sel.Find("a.result__a")
		href, _ := link.Attr("href")
		href = resolveDDGRedirect(href)
		out = append(out, Evidence{
			Title:    strings.TrimSpace(link.Text()),
			URL:      href,
			Snippet:  strings.TrimSpace(sel.Find(".result__snippet").Text()),
			Domain:   domainOf(href),
			Provider: ProviderDuckDuckGo,
		})
		return len(out) < d.cfg.MaxResults
	})
	return out, nil
}

// resolveDDGRedirect unwraps DuckDuckGo's /l/?uddg= redirect links to the
// destination URL. Unwrappable links pass through untouched.
func resolveDDGRedirect(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if !strings.HasSuffix(u.Host, "duckduckgo.com") || u.Path != "/l/" {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
