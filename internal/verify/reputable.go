package verify

import "strings"

// reputableDomains is a curated set of high-credibility news outlets and
// established fact-checking organizations. Membership is a credibility
// weighting signal, not a guarantee of accuracy. Immutable after init.
var reputableDomains = []string{
	"reuters.com", "apnews.com", "bbc.com", "bbc.co.uk",
	"nytimes.com", "washingtonpost.com", "theguardian.com",
	"cnn.com", "aljazeera.com", "npr.org", "pbs.org",
	"abcnews.go.com", "cbsnews.com", "nbcnews.com",
	"usatoday.com", "bloomberg.com", "economist.com",
	"forbes.com", "time.com", "thehindu.com", "ndtv.com",
	"hindustantimes.com", "indianexpress.com",
	"snopes.com", "factcheck.org", "politifact.com",
	"fullfact.org", "boomlive.in", "altnews.in",
}

// isReputableDomain reports whether the host contains any curated reputable
// domain as a substring, so subdomains like edition.cnn.com match.
func isReputableDomain(domain string) bool {
	if domain == "" {
		return false
	}
	for _, rd := range reputableDomains {
		if strings.Contains(domain, rd) {
			return true
		}
	}
	return false
}
