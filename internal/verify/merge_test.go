package verify

import "testing"

func TestMergeSourcesDeduplicatesByURL(t *testing.T) {
	news := []Evidence{
		{Title: "A", URL: "https://example.com/story", Provider: ProviderGNews},
		{Title: "B", URL: "https://other.com/x", Provider: ProviderGNews},
	}
	web := []Evidence{
		{Title: "A again", URL: "https://example.com/story/", Provider: ProviderDuckDuckGo},
		{Title: "C", URL: "https://third.com/y", Provider: ProviderDuckDuckGo},
	}

	merged := MergeSources(news, web)
	if len(merged) != 3 {
		t.Fatalf("expected 3 unique sources, got %d", len(merged))
	}
	// First occurrence wins: the news item, not the trailing-slash variant.
	if merged[0].Title != "A" || merged[0].Provider != ProviderGNews {
		t.Fatalf("expected first-seen item to win, got %+v", merged[0])
	}
	if merged[1].Title != "B" || merged[2].Title != "C" {
		t.Fatalf("insertion order not preserved: %+v", merged)
	}
}

func TestMergeSourcesDropsEmptyURLs(t *testing.T) {
	merged := MergeSources([]Evidence{
		{Title: "no url"},
		{Title: "has url", URL: "https://example.com/a"},
		{Title: "slash only", URL: "/"},
	})
	if len(merged) != 1 {
		t.Fatalf("expected only the item with a real URL, got %d", len(merged))
	}
	if merged[0].Title != "has url" {
		t.Fatalf("unexpected survivor: %+v", merged[0])
	}
}

func TestMergeSourcesEmptyInput(t *testing.T) {
	if merged := MergeSources(); len(merged) != 0 {
		t.Fatalf("expected empty merge, got %d items", len(merged))
	}
	if merged := MergeSources(nil, nil); len(merged) != 0 {
		t.Fatalf("expected empty merge from nil lists, got %d items", len(merged))
	}
}
