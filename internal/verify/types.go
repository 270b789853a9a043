// Package verify implements the claim cross-referencing engine: it builds a
// short search query from free-form claim text, fans out to the configured
// evidence providers, merges and deduplicates what comes back, and computes
// a deterministic verdict with a confidence score and an explanation.
package verify

// ProviderName identifies one evidence provider.
type ProviderName string

const (
	ProviderGNews      ProviderName = "gnews"
	ProviderFactCheck  ProviderName = "factcheck"
	ProviderDuckDuckGo ProviderName = "duckduckgo"
)

// Verdict is the categorical conclusion about a claim.
type Verdict string

const (
	VerdictFake       Verdict = "FAKE"
	VerdictReal       Verdict = "REAL"
	VerdictUnverified Verdict = "UNVERIFIED"
)

// Evidence is one unit of third-party corroboration for a claim: a news
// article, a general web hit, or a fact-check review. Built fresh per
// request and never mutated afterwards.
type Evidence struct {
	Title    string       `json:"title"`
	URL      string       `json:"url"`
	Snippet  string       `json:"snippet"`
	Domain   string       `json:"domain"`
	Provider ProviderName `json:"provider"`

	// News-search extras.
	PublishedAt string `json:"published_at,omitempty"`
	SourceName  string `json:"source_name,omitempty"`

	// Fact-check extras; empty for other providers.
	ClaimText string `json:"claim_text,omitempty"`
	Claimant  string `json:"claimant,omitempty"`
	Rating    string `json:"rating,omitempty"`
	Publisher string `json:"publisher,omitempty"`
}

// Decision is the verdict engine's output for one claim.
type Decision struct {
	Verdict     Verdict `json:"verdict"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// VerificationResult is the full outcome of verifying one claim.
type VerificationResult struct {
	QueryUsed     string         `json:"query_used"`
	Verdict       Verdict        `json:"verdict"`
	Confidence    float64        `json:"confidence"`
	Explanation   string         `json:"explanation"`
	ProvidersUsed []ProviderName `json:"providers_used"`
	FactChecks    []Evidence     `json:"fact_checks"`
	Sources       []Evidence     `json:"sources"`
	SourcesFound  int            `json:"sources_found"`
}
