package verify

import (
	"reflect"
	"testing"
)

func TestVerdictFactCheckedFalse(t *testing.T) {
	factChecks := []Evidence{
		{Provider: ProviderFactCheck, Rating: "False", Publisher: "Snopes"},
		{Provider: ProviderFactCheck, Rating: "Pants on Fire", Publisher: "PolitiFact"},
	}
	d := ComputeVerdict(nil, factChecks)
	if d.Verdict != VerdictFake {
		t.Fatalf("expected FAKE, got %s", d.Verdict)
	}
	if d.Confidence != 0.80 {
		t.Fatalf("expected confidence 0.80, got %v", d.Confidence)
	}
	if d.Explanation == "" {
		t.Fatalf("expected explanation")
	}
}

func TestVerdictFactCheckedTrueConfidenceCap(t *testing.T) {
	var factChecks []Evidence
	for i := 0; i < 8; i++ {
		factChecks = append(factChecks, Evidence{Provider: ProviderFactCheck, Rating: "True", Publisher: "FullFact"})
	}
	d := ComputeVerdict(nil, factChecks)
	if d.Verdict != VerdictReal {
		t.Fatalf("expected REAL, got %s", d.Verdict)
	}
	// 0.70 + 0.05*8 = 1.10, capped at 0.95.
	if d.Confidence != 0.95 {
		t.Fatalf("expected capped confidence 0.95, got %v", d.Confidence)
	}
}

func TestVerdictMixedFactChecks(t *testing.T) {
	factChecks := []Evidence{
		{Provider: ProviderFactCheck, Rating: "Mostly False", Publisher: "Snopes"},
		{Provider: ProviderFactCheck, Rating: "True", Publisher: "FullFact"},
	}
	d := ComputeVerdict(nil, factChecks)
	if d.Confidence != 0.55 {
		t.Fatalf("expected fixed confidence 0.55, got %v", d.Confidence)
	}
	// 1 vs 1 is the named tie policy.
	if d.Verdict != tieVerdict {
		t.Fatalf("expected tie policy verdict %s, got %s", tieVerdict, d.Verdict)
	}
}

func TestVerdictMixedMajorityFake(t *testing.T) {
	factChecks := []Evidence{
		{Provider: ProviderFactCheck, Rating: "False"},
		{Provider: ProviderFactCheck, Rating: "Fabricated"},
		{Provider: ProviderFactCheck, Rating: "Accurate"},
	}
	d := ComputeVerdict(nil, factChecks)
	if d.Verdict != VerdictFake {
		t.Fatalf("expected majority FAKE, got %s", d.Verdict)
	}
	if d.Confidence != 0.55 {
		t.Fatalf("expected fixed confidence 0.55, got %v", d.Confidence)
	}
}

func TestVerdictUnrecognizedRatingsFallThrough(t *testing.T) {
	factChecks := []Evidence{
		{Provider: ProviderFactCheck, Rating: "Unproven"},
		{Provider: ProviderFactCheck, Rating: "In dispute"},
	}
	sources := []Evidence{
		{URL: "https://reuters.com/a", Domain: "reuters.com"},
		{URL: "https://bbc.com/b", Domain: "bbc.com"},
		{URL: "https://apnews.com/c", Domain: "apnews.com"},
		{URL: "https://blog.example/d", Domain: "blog.example"},
	}
	d := ComputeVerdict(sources, factChecks)
	// Phase 2 takes over: reputable=3, total=4.
	if d.Verdict != VerdictReal {
		t.Fatalf("expected REAL via source analysis, got %s", d.Verdict)
	}
	if d.Confidence != 0.71 {
		t.Fatalf("expected confidence 0.71, got %v", d.Confidence)
	}
}

func TestVerdictReputableCoverage(t *testing.T) {
	sources := []Evidence{
		{URL: "https://www.reuters.com/a", Domain: "www.reuters.com"},
		{URL: "https://bbc.com/b", Domain: "bbc.com"},
		{URL: "https://apnews.com/c", Domain: "apnews.com"},
		{URL: "https://random.net/d", Domain: "random.net"},
	}
	d := ComputeVerdict(sources, nil)
	if d.Verdict != VerdictReal {
		t.Fatalf("expected REAL, got %s", d.Verdict)
	}
	if d.Confidence != 0.71 {
		t.Fatalf("expected min(0.85, 0.50+0.21)=0.71, got %v", d.Confidence)
	}
}

func TestVerdictSomeReputableCoverage(t *testing.T) {
	sources := []Evidence{
		{URL: "https://npr.org/a", Domain: "npr.org"},
		{URL: "https://random.net/b", Domain: "random.net"},
	}
	d := ComputeVerdict(sources, nil)
	if d.Verdict != VerdictReal {
		t.Fatalf("expected REAL, got %s", d.Verdict)
	}
	if d.Confidence != 0.45 {
		t.Fatalf("expected min(0.65, 0.35+0.10)=0.45, got %v", d.Confidence)
	}
}

func TestVerdictBroadButNonAuthoritative(t *testing.T) {
	sources := []Evidence{
		{URL: "https://a.example/1", Domain: "a.example"},
		{URL: "https://b.example/2", Domain: "b.example"},
		{URL: "https://c.example/3", Domain: "c.example"},
	}
	d := ComputeVerdict(sources, nil)
	if d.Verdict != VerdictReal || d.Confidence != 0.40 {
		t.Fatalf("expected weak REAL at 0.40, got %s %v", d.Verdict, d.Confidence)
	}
}

func TestVerdictThinCoverageUnverified(t *testing.T) {
	sources := []Evidence{{URL: "https://a.example/1", Domain: "a.example"}}
	d := ComputeVerdict(sources, nil)
	if d.Verdict != VerdictUnverified || d.Confidence != 0.25 {
		t.Fatalf("expected UNVERIFIED at 0.25, got %s %v", d.Verdict, d.Confidence)
	}
}

func TestVerdictNoEvidence(t *testing.T) {
	d := ComputeVerdict(nil, nil)
	if d.Verdict != VerdictUnverified {
		t.Fatalf("expected UNVERIFIED, got %s", d.Verdict)
	}
	if d.Confidence != 0.0 {
		t.Fatalf("expected confidence 0.0, got %v", d.Confidence)
	}
	if d.Explanation == "" {
		t.Fatalf("expected explanation even with no evidence")
	}
}

func TestVerdictIsPureFunction(t *testing.T) {
	sources := []Evidence{
		{URL: "https://bbc.com/b", Domain: "bbc.com"},
		{URL: "https://x.example/1", Domain: "x.example"},
	}
	factChecks := []Evidence{{Provider: ProviderFactCheck, Rating: "Misleading", Publisher: "BOOM"}}
	first := ComputeVerdict(sources, factChecks)
	for i := 0; i < 5; i++ {
		if got := ComputeVerdict(sources, factChecks); !reflect.DeepEqual(got, first) {
			t.Fatalf("verdict is not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestVerdictConfidenceAlwaysInRange(t *testing.T) {
	cases := [][2][]Evidence{
		{nil, nil},
		{[]Evidence{{URL: "https://a.example", Domain: "a.example"}}, nil},
		{nil, []Evidence{{Rating: "False"}}},
		{nil, []Evidence{{Rating: "True"}, {Rating: "False"}}},
	}
	for i, c := range cases {
		d := ComputeVerdict(c[0], c[1])
		if d.Confidence < 0.0 || d.Confidence > 1.0 {
			t.Fatalf("case %d: confidence %v out of range", i, d.Confidence)
		}
	}
}

func TestPublisherNamesDistinctAndCapped(t *testing.T) {
	items := []Evidence{
		{Publisher: "Snopes"},
		{Publisher: "Snopes"},
		{Publisher: ""},
		{Publisher: "PolitiFact"},
	}
	got := publisherNames(items)
	// Only the first three items are considered, unnamed shows as "?".
	if got != "Snopes, ?" {
		t.Fatalf("unexpected publisher list: %q", got)
	}
}
