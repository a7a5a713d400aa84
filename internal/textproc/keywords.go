package textproc

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMaxKeywords is the keyword-set size used for similarity scoring.
const DefaultMaxKeywords = 50

var wordRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// stopwords holds English function words plus generic resume vocabulary
// that carries no signal when comparing candidates to postings.
var stopwords = buildStopwords()

func buildStopwords() map[string]bool {
	words := []string{
		// English function words
		"the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
		"with", "by", "from", "up", "about", "into", "through", "during",
		"before", "after", "above", "below", "between", "among", "this",
		"that", "these", "those", "i", "me", "my", "myself", "we", "our",
		"ours", "ourselves", "you", "your", "yours", "yourself",
		"yourselves", "he", "him", "his", "himself", "she", "her", "hers",
		"herself", "it", "its", "itself", "they", "them", "their",
		"theirs", "themselves", "what", "which", "who", "whom", "am",
		"is", "are", "was", "were", "be", "been", "being", "have", "has",
		"had", "having", "do", "does", "did", "doing", "a", "an", "as",
		"if", "each", "how", "when", "where", "why", "all", "any", "both",
		"few", "more", "most", "other", "some", "such", "only", "own",
		"same", "so", "than", "too", "very", "can", "will", "just",
		"should", "now", "not", "out",
		// Generic resume vocabulary
		"experience", "work", "job", "position", "role", "company",
		"team", "project", "year", "years", "month", "months", "time",
		"good", "great", "excellent", "strong", "able", "ability",
		"skill", "skills", "knowledge",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// ExtractKeywords tokenizes text into alphabetic runs of length >= 3,
// lower-cases them, drops stopwords, and returns the top maxKeywords terms
// by frequency. Ties are broken by first occurrence so the result is
// deterministic. Empty input yields an empty slice, never an error.
func ExtractKeywords(text string, maxKeywords int) []string {
	if text == "" || maxKeywords <= 0 {
		return nil
	}

	tokens := wordRe.FindAllString(Clean(strings.ToLower(text)), -1)

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if stopwords[tok] {
			continue
		}
		if _, ok := counts[tok]; !ok {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return firstSeen[terms[i]] < firstSeen[terms[j]]
	})

	if len(terms) > maxKeywords {
		terms = terms[:maxKeywords]
	}
	return terms
}

// KeywordSet returns a weighted bag of the top max terms in text, keyed by
// term with frequency counts as weights. Terms are lower-cased and at least
// three characters long; weights are always positive.
func KeywordSet(text string, max int) map[string]int {
	terms := ExtractKeywords(text, max)
	if len(terms) == 0 {
		return map[string]int{}
	}

	counts := make(map[string]int)
	for _, tok := range wordRe.FindAllString(Clean(strings.ToLower(text)), -1) {
		if stopwords[tok] {
			continue
		}
		counts[tok]++
	}

	set := make(map[string]int, len(terms))
	for _, term := range terms {
		set[term] = counts[term]
	}
	return set
}
