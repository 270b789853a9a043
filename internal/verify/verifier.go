package verify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/crosscheck-io/crosscheck/config"
	"github.com/crosscheck-io/crosscheck/internal/telemetry"
	"github.com/google/uuid"
)

// Verifier composes the query builder, the evidence providers, the
// aggregator and the verdict engine into the single public operation
// Verify. Stateless across calls: every request builds its own evidence.
type Verifier struct {
	providers []EvidenceProvider
	logger    *log.Logger
}

// NewVerifier wires the standard provider set in its fixed dispatch order:
// news search, fact-check registry, keyless web search.
func NewVerifier(cfg config.ProvidersConfig, logger *log.Logger) *Verifier {
	if logger == nil {
		logger = log.New(log.Writer(), "[VERIFY] ", log.LstdFlags)
	}
	return &Verifier{
		providers: []EvidenceProvider{
			NewGNewsProvider(cfg.GNews),
			NewFactCheckProvider(cfg.FactCheck),
			NewDuckDuckGoProvider(cfg.DuckDuckGo),
		},
		logger: logger,
	}
}

// NewVerifierWithProviders builds a Verifier over an explicit provider set.
// Dispatch order follows the slice order.
func NewVerifierWithProviders(providers []EvidenceProvider, logger *log.Logger) *Verifier {
	if logger == nil {
		logger = log.New(log.Writer(), "[VERIFY] ", log.LstdFlags)
	}
	return &Verifier{providers: providers, logger: logger}
}

// Verify cross-references a claim against all configured providers and
// returns a complete result for any input, including empty text. Provider
// calls fan out concurrently and the call suspends until every one has
// finished or failed; a slow or broken provider costs only its own evidence.
// ctx is propagated into every provider request, so caller cancellation
// aborts in-flight network calls and their partial results are discarded.
func (v *Verifier) Verify(ctx context.Context, text string) VerificationResult {
	started := time.Now()
	reqID := uuid.NewString()[:8]

	query := BuildQuery(text)
	v.logger.Printf("[%s] built search query %q (from %d chars of input)", reqID, query, len(text))

	results := make([][]Evidence, len(v.providers))
	var wg sync.WaitGroup
	for i, p := range v.providers {
		if !p.Configured() {
			v.logger.Printf("[%s] %s: not configured, skipping", reqID, p.Name())
			continue
		}
		wg.Add(1)
		go func(i int, p EvidenceProvider) {
			defer wg.Done()
			results[i] = v.search(ctx, reqID, p, query)
		}(i, p)
	}
	wg.Wait()

	factChecks := make([]Evidence, 0)
	newsAndWeb := make([][]Evidence, 0, len(v.providers))
	providersUsed := make([]ProviderName, 0, len(v.providers))
	for i, p := range v.providers {
		if !p.Configured() {
			continue
		}
		providersUsed = append(providersUsed, p.Name())
		if p.Name() == ProviderFactCheck {
			factChecks = append(factChecks, results[i]...)
		} else {
			newsAndWeb = append(newsAndWeb, results[i])
		}
	}

	sources := MergeSources(newsAndWeb...)
	if sources == nil {
		sources = make([]Evidence, 0)
	}
	v.logger.Printf("[%s] evidence: %d fact-check(s), %d merged source(s)", reqID, len(factChecks), len(sources))

	decision := ComputeVerdict(sources, factChecks)
	telemetry.Verdicts.WithLabelValues(string(decision.Verdict)).Inc()
	telemetry.VerificationDuration.Observe(time.Since(started).Seconds())

	return VerificationResult{
		QueryUsed:     query,
		Verdict:       decision.Verdict,
		Confidence:    decision.Confidence,
		Explanation:   decision.Explanation,
		ProvidersUsed: providersUsed,
		FactChecks:    factChecks,
		Sources:       sources,
		SourcesFound:  len(sources),
	}
}

// search is the failure containment boundary: any provider error is logged,
// counted and mapped to an empty evidence list, never propagated.
func (v *Verifier) search(ctx context.Context, reqID string, p EvidenceProvider, query string) []Evidence {
	name := string(p.Name())
	telemetry.ProviderRequests.WithLabelValues(name).Inc()
	started := time.Now()
	evidence, err := p.Search(ctx, query)
	telemetry.ProviderDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
	if err != nil {
		telemetry.ProviderFailures.WithLabelValues(name).Inc()
		v.logger.Printf("[%s] %s search failed: %v", reqID, name, err)
		return nil
	}
	v.logger.Printf("[%s] %s returned %d result(s)", reqID, name, len(evidence))
	return evidence
}
