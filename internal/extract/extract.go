// Package extract turns raw career-page HTML into structured job postings
// using a cascade of extraction strategies. It is pure parsing: no network
// calls happen here.
package extract

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

// MaxPostingsPerPage bounds how many postings the free-text strategy will
// produce from one page.
const MaxPostingsPerPage = 10

// MaxRequirements bounds the requirement phrases kept per posting.
const MaxRequirements = 10

// strategy is one pure extraction attempt over a page's HTML.
// A nil or empty result means the strategy found nothing.
type strategy func(html, company, sourceURL string) []types.JobPosting

// Postings extracts job postings from one page's HTML. Strategies are tried
// in fixed order and the first one producing at least one posting wins for
// the entire page; mixing strategies on one page produces inconsistent
// titles and descriptions. Empty or unparseable HTML yields an empty slice,
// never an error.
func Postings(html, company, sourceURL string) []types.JobPosting {
	if strings.TrimSpace(html) == "" {
		return nil
	}

	strategies := []strategy{
		structuredElements,
		freeText,
	}

	for _, s := range strategies {
		if postings := s(html, company, sourceURL); len(postings) > 0 {
			return postings
		}
	}
	return nil
}

var companyPrefixRe = regexp.MustCompile(`^(www\.|careers\.|jobs\.)`)

// CompanyNameFromURL derives a display company name from a page URL:
// strip common host prefixes, take the registrable label, title-case it.
func CompanyNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}

	domain := companyPrefixRe.ReplaceAllString(strings.ToLower(u.Host), "")
	if idx := strings.Index(domain, "."); idx > 0 {
		domain = domain[:idx]
	}

	domain = strings.NewReplacer("-", " ", "_", " ").Replace(domain)
	return titleCase(domain)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// resolveAgainst resolves href against base, returning base unchanged when
// href is empty or malformed.
func resolveAgainst(base, href string) string {
	if href == "" {
		return base
	}
	baseURL, err := url.Parse(base)
	if err != nil {
		return base
	}
	hrefURL, err := url.Parse(href)
	if err != nil {
		return base
	}
	return baseURL.ResolveReference(hrefURL).String()
}
