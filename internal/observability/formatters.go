// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines on rune boundaries
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPostings outputs a human-readable summary of crawled postings.
func (p *Printer) PrintPostings(postings []types.JobPosting) {
	if len(postings) == 0 {
		return
	}

	var sb strings.Builder

	count := min(len(postings), maxItemsToShow)
	for i := 0; i < count; i++ {
		posting := postings[i]
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, posting.Title))
		sb.WriteString(fmt.Sprintf("   %s", posting.Company))
		if posting.Location != "" {
			sb.WriteString(fmt.Sprintf(" - %s", posting.Location))
		}
		sb.WriteString("\n")
		if len(posting.Requirements) > 0 {
			sb.WriteString(fmt.Sprintf("   Requirements: %d\n", len(posting.Requirements)))
		}
	}
	if len(postings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(postings)-maxItemsToShow))
	}

	p.printBox(fmt.Sprintf("POSTINGS FOUND (%d)", len(postings)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatches outputs the ranked match results with scores and skills.
func (p *Printer) PrintMatches(results []*types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder

	for i, result := range results {
		sb.WriteString(fmt.Sprintf("%d. %s @ %s\n", i+1, result.JobTitle, result.Company))
		line := fmt.Sprintf("   Score: %.1f", result.Score)
		if result.Degraded {
			line += " (keyword-only)"
		}
		if result.Recommendation != "" {
			line += fmt.Sprintf(" | %s", result.Recommendation)
		}
		sb.WriteString(line + "\n")
		if len(result.MatchingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   Matching: %s\n", strings.Join(result.MatchingSkills, ", ")))
		}
		if len(result.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("   Missing:  %s\n", strings.Join(result.MissingSkills, ", ")))
		}
	}

	p.printBox("RANKED MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGaps outputs the three skill-gap buckets for one posting.
func (p *Printer) PrintSkillGaps(gaps *types.SkillGaps) {
	if gaps == nil {
		return
	}

	var sb strings.Builder

	if len(gaps.Matching) > 0 {
		sb.WriteString(fmt.Sprintf("Matching:    %s\n", strings.Join(gaps.Matching, ", ")))
	}
	if len(gaps.Missing) > 0 {
		sb.WriteString(fmt.Sprintf("Missing:     %s\n", strings.Join(gaps.Missing, ", ")))
	}
	if len(gaps.ResumeOnly) > 0 {
		sb.WriteString(fmt.Sprintf("Resume-only: %s\n", strings.Join(gaps.ResumeOnly, ", ")))
	}
	if sb.Len() == 0 {
		sb.WriteString("No overlapping terms found\n")
	}

	p.printBox("SKILL GAPS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCrawlSummary outputs per-page crawl outcomes for one session.
func (p *Printer) PrintCrawlSummary(session *types.CrawlSession) {
	if session == nil {
		return
	}

	var sb strings.Builder

	succeeded, failed := 0, 0
	for _, page := range session.Pages() {
		switch page.State {
		case types.PageSucceeded:
			succeeded++
			sb.WriteString(fmt.Sprintf("✓ %s (%d postings)\n", page.URL, page.Postings))
		case types.PageFailed:
			failed++
			sb.WriteString(fmt.Sprintf("✗ %s: %s\n", page.URL, page.Error))
		default:
			sb.WriteString(fmt.Sprintf("… %s\n", page.URL))
		}
	}
	sb.WriteString(fmt.Sprintf("\n%d succeeded, %d failed", succeeded, failed))

	p.printBox("CRAWL SUMMARY", sb.String())
}
