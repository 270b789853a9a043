package verify

import (
	"fmt"
	"math"
	"strings"
)

// fakeRatingKeywords mark a fact-check textual rating as debunking.
var fakeRatingKeywords = []string{
	"false", "fake", "pants on fire", "incorrect",
	"misleading", "mostly false", "not true", "hoax",
	"fabricated", "satire", "scam",
}

// realRatingKeywords mark a fact-check textual rating as corroborating.
var realRatingKeywords = []string{
	"true", "correct", "accurate", "mostly true",
	"verified", "confirmed", "real",
}

// Tie-break policy for equally split fact-check ratings: lean REAL. An even
// split means real fact-checkers found substance on both sides, which is a
// weak mixed signal rather than a debunk; the fixed 0.55 confidence carries
// the uncertainty.
const tieVerdict = VerdictReal

// ComputeVerdict cross-references the merged news/web sources and the
// fact-check reviews to produce a verdict. Pure function of its inputs:
// identical evidence always yields the identical decision. Fact-check
// evidence dominates when any rating is recognizable; otherwise the decision
// falls back to counting coverage, weighted by reputable domains. Every
// branch yields a non-empty explanation since callers surface it verbatim.
func ComputeVerdict(sources, factChecks []Evidence) Decision {
	if d, ok := verdictFromFactChecks(factChecks); ok {
		return d
	}
	return verdictFromSources(sources)
}

func verdictFromFactChecks(factChecks []Evidence) (Decision, bool) {
	var fake, real []Evidence
	for _, fc := range factChecks {
		rating := strings.ToLower(fc.Rating)
		switch {
		case containsAny(rating, fakeRatingKeywords):
			fake = append(fake, fc)
		case containsAny(rating, realRatingKeywords):
			real = append(real, fc)
		}
	}

	switch {
	case len(fake) > 0 && len(real) == 0:
		return Decision{
			Verdict:    VerdictFake,
			Confidence: round2(math.Min(0.95, 0.70+0.05*float64(len(fake)))),
			Explanation: fmt.Sprintf(
				"This claim has been fact-checked and rated FALSE by %d fact-checker(s) including: %s.",
				len(fake), publisherNames(fake)),
		}, true
	case len(real) > 0 && len(fake) == 0:
		return Decision{
			Verdict:    VerdictReal,
			Confidence: round2(math.Min(0.95, 0.70+0.05*float64(len(real)))),
			Explanation: fmt.Sprintf(
				"This claim has been fact-checked and rated TRUE by %d fact-checker(s) including: %s.",
				len(real), publisherNames(real)),
		}, true
	case len(fake) > 0 && len(real) > 0:
		verdict := tieVerdict
		if len(fake) > len(real) {
			verdict = VerdictFake
		} else if len(real) > len(fake) {
			verdict = VerdictReal
		}
		return Decision{
			Verdict:    verdict,
			Confidence: 0.55,
			Explanation: fmt.Sprintf(
				"Mixed fact-check results: %d rated it false, %d rated it true. Leaning towards the majority.",
				len(fake), len(real)),
		}, true
	}
	// Ratings present but none recognizable: no usable fact-check signal.
	return Decision{}, false
}

func verdictFromSources(sources []Evidence) Decision {
	total := len(sources)
	if total == 0 {
		return Decision{
			Verdict:     VerdictUnverified,
			Confidence:  0.0,
			Explanation: "No web sources found discussing this claim. Unable to verify.",
		}
	}

	reputable := 0
	for _, s := range sources {
		if isReputableDomain(s.Domain) {
			reputable++
		}
	}

	switch {
	case reputable >= 3:
		return Decision{
			Verdict:    VerdictReal,
			Confidence: round2(math.Min(0.85, 0.50+0.07*float64(reputable))),
			Explanation: fmt.Sprintf(
				"Found %d source(s) discussing this claim, including %d reputable news outlet(s). "+
					"The claim appears to be widely reported by credible sources.",
				total, reputable),
		}
	case reputable >= 1:
		return Decision{
			Verdict:    VerdictReal,
			Confidence: round2(math.Min(0.65, 0.35+0.10*float64(reputable))),
			Explanation: fmt.Sprintf(
				"Found %d source(s) discussing this claim, including %d reputable outlet(s). "+
					"Some credible coverage exists.",
				total, reputable),
		}
	case total >= 3:
		return Decision{
			Verdict:    VerdictReal,
			Confidence: 0.40,
			Explanation: fmt.Sprintf(
				"Found %d source(s) discussing this claim but none from major reputable outlets. "+
					"The claim has some web presence but limited credible coverage.",
				total),
		}
	default:
		return Decision{
			Verdict:    VerdictUnverified,
			Confidence: 0.25,
			Explanation: fmt.Sprintf(
				"Found only %d source(s) with no reputable outlets. Insufficient evidence to verify this claim.",
				total),
		}
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// publisherNames joins the distinct publishers of up to the first three
// items, in first-seen order. Unnamed publishers show as "?".
func publisherNames(items []Evidence) string {
	if len(items) > 3 {
		items = items[:3]
	}
	seen := make(map[string]struct{}, len(items))
	var names []string
	for _, it := range items {
		name := it.Publisher
		if name == "" {
			name = "?"
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
