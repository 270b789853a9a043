package verify

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxQueryKeywords = 10
	fallbackRawWords = 8
)

var (
	urlPattern = regexp.MustCompile(`https?://\S+`)
	// Word characters must stay Unicode-aware: proper nouns like Zürich or
	// São Paulo carry the most discriminating signal in a claim.
	nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s'-]`)
	spacePattern   = regexp.MustCompile(`\s+`)
)

// stopWords are common English function words stripped from search queries.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "do", "does", "did", "will", "would", "shall",
		"should", "may", "might", "must", "can", "could", "this", "that",
		"these", "those", "i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them", "my", "your", "his", "its",
		"our", "their", "what", "which", "who", "whom", "where", "when",
		"why", "how", "all", "each", "every", "both", "few", "more",
		"most", "other", "some", "such", "no", "not", "only", "same",
		"so", "than", "too", "very", "just", "about", "above", "after",
		"again", "against", "and", "any", "because", "before", "below",
		"between", "but", "by", "for", "from", "if", "in", "into",
		"of", "on", "or", "out", "over", "then", "to", "under", "up",
		"with", "as", "at", "also", "here", "there", "won", "won't",
		"don", "don't", "doesn", "doesn't", "didn", "didn't",
	} {
		stopWords[w] = struct{}{}
	}
}

// BuildQuery turns arbitrary claim text into a short, search-engine-friendly
// keyword query. It strips URLs and punctuation, drops stop words and tokens
// shorter than three characters, and keeps the first ten surviving tokens in
// their original casing and order. When nothing survives filtering it falls
// back to the first eight raw words of the cleaned text. Total: never fails,
// returns an empty string only for empty or pure-punctuation input.
func BuildQuery(text string) string {
	text = strings.TrimSpace(text)
	text = urlPattern.ReplaceAllString(text, "")
	text = nonWordPattern.ReplaceAllString(text, " ")
	text = strings.TrimSpace(spacePattern.ReplaceAllString(text, " "))

	words := strings.Fields(text)
	keywords := make([]string, 0, maxQueryKeywords)
	for _, w := range words {
		clean := strings.ToLower(strings.Trim(w, "'-"))
		if utf8.RuneCountInString(clean) < 3 {
			continue
		}
		if _, stop := stopWords[clean]; stop {
			continue
		}
		// Original casing carries the proper nouns.
		keywords = append(keywords, w)
		if len(keywords) >= maxQueryKeywords {
			break
		}
	}

	if len(keywords) == 0 {
		if len(words) > fallbackRawWords {
			words = words[:fallbackRawWords]
		}
		return strings.Join(words, " ")
	}
	return strings.Join(keywords, " ")
}
