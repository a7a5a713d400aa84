package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/jobmatch/internal/textproc"
	"github.com/jonathan/jobmatch/internal/types"
)

// listingSelectors are tried in order; the first selector matching at least
// one element that yields a valid posting is used for the whole page.
var listingSelectors = []string{
	".job-listing", ".job-item", ".position", ".opening",
	`[class*="job"]`, `[class*="position"]`, `[class*="career"]`,
	"article", ".card", ".listing",
}

// titleSelectors locate the posting title inside a listing element.
var titleSelectors = []string{
	"h1", "h2", "h3", ".title", ".job-title", `[class*="title"]`,
}

var (
	locationLabelRe   = regexp.MustCompile(`(?i)location[:\-\s]+([^,\n]+(?:,\s*[A-Z]{2,})?)`)
	cityStateRe       = regexp.MustCompile(`([A-Za-z][A-Za-z\s]+,\s*[A-Z]{2,})`)
	workModeRe        = regexp.MustCompile(`(?i)\b(Remote|On-site|Hybrid)\b`)
	employmentTypeRe  = regexp.MustCompile(`(?i)\b(full[\s-]?time|part[\s-]?time|contract|internship)\b`)
	experienceLevelRe = regexp.MustCompile(`(?i)\b(senior|junior|principal|staff|lead|entry[\s-]level)\b`)
	departmentLabelRe = regexp.MustCompile(`(?i)(?:department|team)[:\-\s]+([A-Za-z][A-Za-z\s&]{2,40})`)
)

// structuredElements extracts postings from listing-shaped DOM elements.
func structuredElements(html, company, sourceURL string) []types.JobPosting {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	for _, selector := range listingSelectors {
		elements := doc.Find(selector)
		if elements.Length() == 0 {
			continue
		}

		var postings []types.JobPosting
		elements.Each(func(_ int, el *goquery.Selection) {
			if p, ok := postingFromElement(el, company, sourceURL); ok {
				postings = append(postings, p)
			}
		})

		if len(postings) > 0 {
			return postings
		}
	}
	return nil
}

// postingFromElement builds one posting from a listing element. Elements
// without a discernible title are discarded.
func postingFromElement(el *goquery.Selection, company, sourceURL string) (types.JobPosting, bool) {
	title := ""
	for _, sel := range titleSelectors {
		if t := el.Find(sel).First(); t.Length() > 0 {
			title = strings.TrimSpace(t.Text())
			if title != "" {
				break
			}
		}
	}
	if title == "" {
		return types.JobPosting{}, false
	}

	elementText := el.Text()
	location := extractLocation(elementText)

	description := ""
	if d := el.Find(".description, .summary, .content, p").First(); d.Length() > 0 {
		description = strings.TrimSpace(d.Text())
	}
	if description == "" {
		description = truncate(strings.TrimSpace(elementText), 500)
	}

	postingURL := sourceURL
	if link := el.Find("a[href]").First(); link.Length() > 0 {
		if href, ok := link.Attr("href"); ok {
			postingURL = resolveAgainst(sourceURL, href)
		}
	}

	return types.JobPosting{
		ID:              types.PostingID(title, company, location),
		Title:           title,
		Company:         company,
		Location:        location,
		Description:     textproc.Clean(description),
		Requirements:    Requirements(elementText),
		URL:             postingURL,
		EmploymentType:  firstMatch(employmentTypeRe, elementText),
		Department:      extractDepartment(el, elementText),
		ExperienceLevel: firstMatch(experienceLevelRe, title),
	}, true
}

// extractDepartment prefers a department-classed child, falling back to a
// "Department:" label in the element text.
func extractDepartment(el *goquery.Selection, text string) string {
	if d := el.Find(`.department, [class*="department"]`).First(); d.Length() > 0 {
		if dep := strings.TrimSpace(d.Text()); dep != "" {
			return dep
		}
	}
	if m := departmentLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// extractLocation applies the location heuristics in priority order:
// explicit label, "City, ST" pattern, then work-mode keyword.
func extractLocation(text string) string {
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := cityStateRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := workModeRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return "Not specified"
}

func firstMatch(re *regexp.Regexp, text string) string {
	if m := re.FindStringSubmatch(text); m != nil {
		return strings.ToLower(strings.TrimSpace(m[1]))
	}
	return ""
}

// truncate cuts s to at most max runes without splitting a multi-byte
// character.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
