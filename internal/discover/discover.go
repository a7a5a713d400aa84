// Package discover proposes candidate career-page URLs for a company site
// using link-text heuristics and conventional path guesses.
package discover

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/jobmatch/internal/fetch"
)

// careerKeywords are matched against anchor hrefs and visible link text.
var careerKeywords = []string{
	"careers", "jobs", "employment", "opportunities",
	"join-us", "work-with-us", "hiring", "positions",
}

// conventionalPaths are guessed on the root domain even when no career
// link is discoverable, because many sites serve them without linking.
var conventionalPaths = []string{
	"/careers", "/jobs", "/employment", "/join-us",
}

// conventionalSubdomains are prefixed to the registrable domain.
var conventionalSubdomains = []string{"careers", "jobs"}

// Error represents a discovery failure for a root URL.
type Error struct {
	RootURL string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("discovery error for %s: %s: %v", e.RootURL, e.Message, e.Cause)
	}
	return fmt.Sprintf("discovery error for %s: %s", e.RootURL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CareerPages returns candidate career-page URLs for the company at
// rootURL: the union of links found on the root page and a synthesized list
// of conventional paths and subdomains. A failed root fetch only empties
// the link-derived half; the synthesized half always applies. The result is
// deduplicated and deterministic: discovered links in document order, then
// synthesized candidates.
func CareerPages(ctx context.Context, rootURL string, getter fetch.Getter, verbose bool) ([]string, error) {
	base, err := url.Parse(rootURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, &Error{
			RootURL: rootURL,
			Message: "invalid root URL (must have scheme and host)",
			Cause:   err,
		}
	}

	var candidates []string
	seen := make(map[string]bool)
	add := func(u string) {
		u = strings.TrimSuffix(u, "/")
		if u == "" || seen[u] {
			return
		}
		seen[u] = true
		candidates = append(candidates, u)
	}

	result, err := getter.Get(ctx, rootURL)
	if err != nil {
		if verbose {
			log.Printf("[DISCOVER] root fetch failed for %s: %v", rootURL, err)
		}
	} else {
		for _, link := range careerLinks(result.HTML, base) {
			add(link)
		}
	}

	for _, guess := range synthesizeCandidates(base) {
		add(guess)
	}

	if verbose {
		log.Printf("[DISCOVER] %d candidate career pages for %s", len(candidates), rootURL)
	}

	return candidates, nil
}

// careerLinks extracts anchors whose href or visible text mentions a career
// keyword, resolved against the base URL. Malformed HTML or hrefs are
// skipped silently.
func careerLinks(html string, base *url.URL) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		hrefLower := strings.ToLower(href)
		textLower := strings.ToLower(strings.TrimSpace(s.Text()))
		if !matchesCareerKeyword(hrefLower) && !matchesCareerKeyword(textLower) {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			return
		}

		resolved := base.ResolveReference(linkURL)
		if resolved.Scheme != "http" && resolved.Scheme != "https" {
			return
		}
		resolved.Fragment = ""
		links = append(links, resolved.String())
	})

	return links
}

func matchesCareerKeyword(s string) bool {
	for _, kw := range careerKeywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// synthesizeCandidates builds the fixed list of conventional career URLs
// for a domain. It needs only the parsed root URL, never the network.
func synthesizeCandidates(base *url.URL) []string {
	host := base.Host
	domain := strings.TrimPrefix(host, "www.")

	out := make([]string, 0, len(conventionalPaths)+len(conventionalSubdomains))
	for _, p := range conventionalPaths {
		out = append(out, fmt.Sprintf("%s://%s%s", base.Scheme, host, p))
	}
	for _, sub := range conventionalSubdomains {
		out = append(out, fmt.Sprintf("%s://%s.%s", base.Scheme, sub, domain))
	}
	return out
}
