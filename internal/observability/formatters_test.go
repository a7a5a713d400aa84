package observability

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintPostings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	postings := []types.JobPosting{
		{Title: "Backend Engineer", Company: "Acme", Location: "Remote", Requirements: []string{"Go"}},
		{Title: "Data Analyst", Company: "Acme"},
	}

	p.PrintPostings(postings)
	output := buf.String()

	assert.Contains(t, output, "POSTINGS FOUND (2)")
	assert.Contains(t, output, "Backend Engineer")
	assert.Contains(t, output, "Remote")
	assert.Contains(t, output, "Data Analyst")
}

func TestPrintPostings_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPostings(nil)

	assert.Empty(t, buf.String())
}

func TestPrintPostings_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	postings := make([]types.JobPosting, 8)
	for i := range postings {
		postings[i] = types.JobPosting{Title: "Role", Company: "Acme"}
	}

	p.PrintPostings(postings)

	assert.Contains(t, buf.String(), "and 3 more")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []*types.MatchResult{
		{
			JobTitle:       "Backend Engineer",
			Company:        "Acme",
			Score:          82.5,
			MatchingSkills: []string{"python", "aws"},
			MissingSkills:  []string{"terraform"},
			Recommendation: "apply",
		},
		{
			JobTitle: "Data Analyst",
			Company:  "Acme",
			Score:    31.0,
			Degraded: true,
		},
	}

	p.PrintMatches(results)
	output := buf.String()

	assert.Contains(t, output, "RANKED MATCHES")
	assert.Contains(t, output, "Backend Engineer @ Acme")
	assert.Contains(t, output, "82.5")
	assert.Contains(t, output, "python, aws")
	assert.Contains(t, output, "terraform")
	assert.Contains(t, output, "keyword-only")
}

func TestPrintSkillGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	gaps := &types.SkillGaps{
		Matching:   []string{"python"},
		Missing:    []string{"terraform"},
		ResumeOnly: []string{"docker"},
	}

	p.PrintSkillGaps(gaps)
	output := buf.String()

	assert.Contains(t, output, "SKILL GAPS")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "terraform")
	assert.Contains(t, output, "docker")
}

func TestPrintSkillGaps_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGaps(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesOnRuneBoundaries(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("Zürich Café ", 20)
	p.PrintPostings([]types.JobPosting{{Title: long, Company: "Müller & Söhne"}})

	assert.True(t, utf8.ValidString(buf.String()))
}

func TestPrintCrawlSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	session := types.NewCrawlSession("https://acme.example.com")
	session.AddPage("https://acme.example.com/careers")
	session.AddPage("https://acme.example.com/jobs")
	session.MarkSucceeded("https://acme.example.com/careers", []types.JobPosting{{Title: "Role", Company: "Acme"}})
	session.MarkFailed("https://acme.example.com/jobs", errors.New("connection refused"))

	p.PrintCrawlSummary(session)
	output := buf.String()

	assert.Contains(t, output, "CRAWL SUMMARY")
	assert.Contains(t, output, "1 succeeded, 1 failed")
	assert.Contains(t, output, "connection refused")
}
