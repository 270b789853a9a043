package verify

import (
	"context"
	"net/url"
)

// EvidenceProvider wraps one external evidence source behind a uniform
// search capability. Implementations return whatever evidence they found;
// errors are contained at the orchestrator boundary and degrade to an empty
// list, so a failing provider never sinks a verification request.
type EvidenceProvider interface {
	Name() ProviderName
	// Configured reports whether the provider can be queried at all. An
	// unconfigured provider (missing credential) is skipped without any
	// network I/O and is not listed in the result's providers.
	Configured() bool
	Search(ctx context.Context, query string) ([]Evidence, error)
}

// domainOf derives the host from a URL, deterministically: non-empty URL
// yields its host (possibly empty on garbage input), empty URL yields "".
func domainOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
