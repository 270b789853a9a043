package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig("")
	if cfg.Server.Address != ":8080" {
		t.Fatalf("unexpected default address: %q", cfg.Server.Address)
	}
	if cfg.Providers.GNews.Endpoint != "https://gnews.io/api/v4" {
		t.Fatalf("gnews endpoint default missing: %q", cfg.Providers.GNews.Endpoint)
	}
	if cfg.Providers.GNews.MaxResults != 10 {
		t.Fatalf("gnews max_results default missing: %d", cfg.Providers.GNews.MaxResults)
	}
	if cfg.Providers.DuckDuckGo.MaxResults != 8 {
		t.Fatalf("duckduckgo max_results default missing: %d", cfg.Providers.DuckDuckGo.MaxResults)
	}
	if cfg.Providers.FactCheck.PageSize != 10 {
		t.Fatalf("factcheck page_size default missing: %d", cfg.Providers.FactCheck.PageSize)
	}
	if len(cfg.Headlines.Categories) != 5 {
		t.Fatalf("headline categories default missing: %v", cfg.Headlines.Categories)
	}
}

func TestLoadConfigReadsCredentialsFromEnv(t *testing.T) {
	t.Setenv("CROSSCHECK_PROVIDERS_GNEWS_API_KEY", "gnews-env-key")
	t.Setenv("CROSSCHECK_PROVIDERS_FACTCHECK_API_KEY", "fc-env-key")

	cfg := LoadConfig("")
	if cfg.Providers.GNews.APIKey != "gnews-env-key" {
		t.Fatalf("gnews env credential not loaded: %q", cfg.Providers.GNews.APIKey)
	}
	if cfg.Providers.FactCheck.APIKey != "fc-env-key" {
		t.Fatalf("factcheck env credential not loaded: %q", cfg.Providers.FactCheck.APIKey)
	}
}

func TestLoadConfigEnvOverridesProviderTuning(t *testing.T) {
	t.Setenv("CROSSCHECK_PROVIDERS_DUCKDUCKGO_MAX_RESULTS", "5")

	cfg := LoadConfig("")
	if cfg.Providers.DuckDuckGo.MaxResults != 5 {
		t.Fatalf("env override lost: %d", cfg.Providers.DuckDuckGo.MaxResults)
	}
}

func TestProvidersNormalizeKeepsExplicitValues(t *testing.T) {
	p := ProvidersConfig{
		GNews:      GNewsConfig{Endpoint: "https://example.test", MaxResults: 3, Timeout: 2 * time.Second},
		DuckDuckGo: DuckDuckGoConfig{MaxResults: 4},
	}
	p = p.Normalize()
	if p.GNews.Endpoint != "https://example.test" || p.GNews.MaxResults != 3 {
		t.Fatalf("explicit gnews values overwritten: %+v", p.GNews)
	}
	if p.DuckDuckGo.MaxResults != 4 {
		t.Fatalf("explicit duckduckgo values overwritten: %+v", p.DuckDuckGo)
	}
	if p.FactCheck.Timeout != 10*time.Second {
		t.Fatalf("factcheck timeout default missing: %v", p.FactCheck.Timeout)
	}
}

func TestProvidersValidateRejectsNegatives(t *testing.T) {
	p := ProvidersConfig{GNews: GNewsConfig{MaxResults: -1}}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected validation error for negative max_results")
	}
}
