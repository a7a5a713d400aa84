package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/jobmatch/internal/textproc"
	"github.com/jonathan/jobmatch/internal/types"
)

// titlePatterns recognize job titles in unstructured page text. Each
// pattern's first capture group is the candidate title.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:position|role|job)[:*\s]+([^\n,]+(?:engineer|developer|manager|analyst|specialist|coordinator|director|lead))`),
	regexp.MustCompile(`(?i)\b((?:senior|junior|lead|principal|staff)\s+[A-Za-z][^\n,.]{2,60})`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?\s+(?:Engineer|Developer|Manager|Analyst|Specialist|Coordinator|Director))\b`),
}

const (
	contextBefore = 200
	contextAfter  = 300
	minTitleLen   = 5
)

// freeText scans the whole page text for job-title patterns when no
// structured listing matched. Titles are deduplicated case-insensitively
// and surrounding text becomes the description context. Output is capped
// at MaxPostingsPerPage to bound cost.
func freeText(html, company, sourceURL string) []types.JobPosting {
	pageText := pageTextFromHTML(html)
	if pageText == "" {
		return nil
	}

	var postings []types.JobPosting
	seenTitles := make(map[string]bool)

	for _, pattern := range titlePatterns {
		for _, loc := range pattern.FindAllStringSubmatchIndex(pageText, -1) {
			// loc[2]:loc[3] is the first capture group
			title := strings.TrimSpace(pageText[loc[2]:loc[3]])
			if len(title) < minTitleLen {
				continue
			}
			key := strings.ToLower(title)
			if seenTitles[key] {
				continue
			}
			seenTitles[key] = true

			start := loc[0] - contextBefore
			if start < 0 {
				start = 0
			}
			end := loc[1] + contextAfter
			if end > len(pageText) {
				end = len(pageText)
			}
			context := pageText[start:end]

			location := "See job posting"
			postings = append(postings, types.JobPosting{
				ID:              types.PostingID(title, company, location),
				Title:           title,
				Company:         company,
				Location:        location,
				Description:     textproc.Clean(context),
				Requirements:    Requirements(context),
				URL:             sourceURL,
				ExperienceLevel: firstMatch(experienceLevelRe, title),
			})

			if len(postings) >= MaxPostingsPerPage {
				return postings
			}
		}
	}

	return postings
}

// pageTextFromHTML strips markup and obvious non-content elements,
// returning the page's visible text.
func pageTextFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	doc.Find("script, style, noscript").Remove()
	return doc.Text()
}
