package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/jobmatch/internal/textproc"
)

// requirementPatterns capture explicit requirement phrases. The first
// capture group is the phrase kept.
var requirementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:requires?|required|must have|should have|looking for)[:\s]+([^\n.]+)`),
	regexp.MustCompile(`(?i)(?:experience with|knowledge of|proficiency in)[:\s]+([^\n.]+)`),
	regexp.MustCompile(`(?i)(?:skills?)[:\s]+([^\n.]+)`),
	regexp.MustCompile(`(?i)([0-9]+\+?\s*years?\s+(?:of\s+)?experience)`),
}

// techVocabulary groups common technology terms: languages, databases,
// cloud, API/architecture, tooling, and data/ML. A keyword matching any
// group counts as a technology requirement.
var techVocabulary = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:python|java|javascript|typescript|golang|ruby|rust|react|angular|vue|node)`),
	regexp.MustCompile(`(?i)^(?:sql|database|mysql|postgresql|postgres|mongodb|redis|elasticsearch)`),
	regexp.MustCompile(`(?i)^(?:aws|azure|gcp|cloud|docker|kubernetes|terraform)`),
	regexp.MustCompile(`(?i)^(?:api|rest|graphql|grpc|microservices)`),
	regexp.MustCompile(`(?i)^(?:git|github|gitlab|jenkins|devops|linux)`),
	regexp.MustCompile(`(?i)(?:machine learning|tensorflow|pytorch|analytics|spark)`),
}

const (
	minRequirementLen = 10
	maxRequirementLen = 100
)

// Requirements extracts requirement phrases from posting text: explicit
// requirement patterns plus technology keywords identified by the keyword
// engine. The result is deduplicated case-insensitively and capped at
// MaxRequirements, preserving extraction order.
func Requirements(text string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(req string) {
		req = strings.TrimSpace(req)
		key := strings.ToLower(req)
		if req == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, req)
	}

	for _, pattern := range requirementPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			req := strings.TrimSpace(m[1])
			if len(req) >= minRequirementLen && len(req) <= maxRequirementLen {
				add(req)
			}
		}
	}

	for _, kw := range textproc.ExtractKeywords(text, 20) {
		if isTechKeyword(kw) {
			add(kw)
		}
	}

	if len(out) > MaxRequirements {
		out = out[:MaxRequirements]
	}
	return out
}

func isTechKeyword(keyword string) bool {
	for _, re := range techVocabulary {
		if re.MatchString(keyword) {
			return true
		}
	}
	return false
}
