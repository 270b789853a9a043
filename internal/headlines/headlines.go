// Package headlines serves one live headline per news category, with RSS
// and static fallbacks when the news API is unavailable.
package headlines

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/crosscheck-io/crosscheck/config"
	"github.com/mmcdole/gofeed"
)

// Headline is one front-page item surfaced to the caller.
type Headline struct {
	Headline    string `json:"headline"`
	Category    string `json:"category"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	TimeAgo     string `json:"time_ago,omitempty"`
	Image       string `json:"image,omitempty"`
}

// categoryLabels maps category slugs to their display labels.
var categoryLabels = map[string]string{
	"politics":      "POLITICS",
	"technology":    "TECH",
	"business":      "BUSINESS",
	"entertainment": "ENTERTAINMENT",
	"world":         "WORLD",
}

// fallbackHeadlines is the curated static set used when neither the news
// API nor an RSS feed yields anything for a category.
var fallbackHeadlines = map[string]Headline{
	"POLITICS": {
		Headline: "Global Leaders Discuss New Trade Agreements",
		Category: "POLITICS",
		Source:   "World Affairs Daily",
	},
	"TECH": {
		Headline: "AI Breakthrough Enables Faster Drug Discovery",
		Category: "TECH",
		Source:   "Tech Review",
	},
	"BUSINESS": {
		Headline: "Stock Markets Rally on Strong Earnings Reports",
		Category: "BUSINESS",
		Source:   "Finance Today",
	},
	"ENTERTAINMENT": {
		Headline: "Award-Winning Film Director Announces New Project",
		Category: "ENTERTAINMENT",
		Source:   "Entertainment Wire",
	},
	"WORLD": {
		Headline: "UN Launches Initiative for Climate Resilience",
		Category: "WORLD",
		Source:   "Global News",
	},
}

// Service fetches one headline per configured category. Fetch fans out over
// categories concurrently; each category falls back independently, so the
// endpoint always returns a full set.
type Service struct {
	cfg    config.HeadlinesConfig
	gnews  config.GNewsConfig
	logger *log.Logger
	http   *jsonGetter
}

func NewService(cfg config.HeadlinesConfig, gnews config.GNewsConfig, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(log.Writer(), "[HEADLINES] ", log.LstdFlags)
	}
	return &Service{
		cfg:    cfg,
		gnews:  gnews,
		logger: logger,
		http:   newJSONGetter(cfg.Timeout),
	}
}

// Fetch returns one headline per category, in the configured category order.
func (s *Service) Fetch(ctx context.Context) []Headline {
	out := make([]Headline, len(s.cfg.Categories))
	var wg sync.WaitGroup
	for i, cat := range s.cfg.Categories {
		wg.Add(1)
		go func(i int, cat string) {
			defer wg.Done()
			out[i] = s.fetchCategory(ctx, cat)
		}(i, cat)
	}
	wg.Wait()
	return out
}

func (s *Service) fetchCategory(ctx context.Context, category string) Headline {
	if s.gnews.APIKey != "" {
		if h, err := s.fetchFromGNews(ctx, category); err == nil {
			return h
		} else {
			s.logger.Printf("gnews headline fetch failed for %s: %v", category, err)
		}
	}
	if feedURL := s.cfg.Feeds[category]; feedURL != "" {
		if h, err := s.fetchFromFeed(ctx, category, feedURL); err == nil {
			return h
		} else {
			s.logger.Printf("rss headline fetch failed for %s: %v", category, err)
		}
	}
	return staticFallback(category)
}

func (s *Service) fetchFromGNews(ctx context.Context, category string) (Headline, error) {
	var resp struct {
		Articles []struct {
			Title       string `json:"title"`
			URL         string `json:"url"`
			Image       string `json:"image"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}
	endpoint := s.gnews.Endpoint
	if endpoint == "" {
		endpoint = "https://gnews.io/api/v4"
	}
	reqURL := fmt.Sprintf("%s/top-headlines?category=%s&lang=en&max=1&apikey=%s",
		endpoint, url.QueryEscape(category), s.gnews.APIKey)
	if err := s.http.doJSONGet(ctx, reqURL, &resp); err != nil {
		return Headline{}, err
	}
	if len(resp.Articles) == 0 {
		return Headline{}, fmt.Errorf("no articles for category %q", category)
	}
	a := resp.Articles[0]
	return Headline{
		Headline:    a.Title,
		Category:    labelFor(category),
		URL:         a.URL,
		Source:      a.Source.Name,
		PublishedAt: a.PublishedAt,
		TimeAgo:     timeAgo(a.PublishedAt, time.Now()),
		Image:       a.Image,
	}, nil
}

func (s *Service) fetchFromFeed(ctx context.Context, category, feedURL string) (Headline, error) {
	// gofeed parsers initialize translators lazily on first parse, so one
	// instance must not be shared across the per-category goroutines.
	parser := gofeed.NewParser()
	parser.UserAgent = "crosscheck/1.0"
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return Headline{}, err
	}
	if len(feed.Items) == 0 {
		return Headline{}, fmt.Errorf("feed %q is empty", feedURL)
	}
	item := feed.Items[0]
	published := ""
	timeago := ""
	if item.PublishedParsed != nil {
		published = item.PublishedParsed.UTC().Format(time.RFC3339)
		timeago = timeAgo(published, time.Now())
	}
	return Headline{
		Headline:    strings.TrimSpace(item.Title),
		Category:    labelFor(category),
		URL:         item.Link,
		Source:      feed.Title,
		PublishedAt: published,
		TimeAgo:     timeago,
	}, nil
}

func staticFallback(category string) Headline {
	if h, ok := fallbackHeadlines[labelFor(category)]; ok {
		return h
	}
	return Headline{Category: labelFor(category)}
}

func labelFor(category string) string {
	if label, ok := categoryLabels[category]; ok {
		return label
	}
	return strings.ToUpper(category)
}

// timeAgo renders an ISO timestamp as a human-friendly delta relative to
// now. Unparseable or empty timestamps render as "".
func timeAgo(publishedAt string, now time.Time) string {
	if publishedAt == "" {
		return ""
	}
	pub, err := time.Parse(time.RFC3339, publishedAt)
	if err != nil {
		return ""
	}
	minutes := int(now.Sub(pub).Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%d min ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d %s ago", hours, plural(hours, "hour"))
	}
	days := hours / 24
	return fmt.Sprintf("%d %s ago", days, plural(days, "day"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
