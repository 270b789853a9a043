package verify

import "strings"

// MergeSources concatenates news and web evidence lists and deduplicates by
// URL, normalized by stripping one trailing slash. First occurrence wins and
// insertion order is preserved. Items without a URL are dropped: they cannot
// be deduplicated reliably. Fact-check evidence is a separate evidence class
// and must never be passed through here.
func MergeSources(lists ...[]Evidence) []Evidence {
	seen := make(map[string]struct{})
	var unique []Evidence
	for _, list := range lists {
		for _, ev := range list {
			key := strings.TrimSuffix(ev.URL, "/")
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			unique = append(unique, ev)
		}
	}
	return unique
}
