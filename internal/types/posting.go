// Package types defines the shared data model for crawling and matching.
package types

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// JobPosting is a single structured job opening extracted from a career page.
type JobPosting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	URL             string   `json:"url"`
	PostedDate      string   `json:"posted_date,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	EmploymentType  string   `json:"employment_type,omitempty"`
	Department      string   `json:"department,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
}

// PostingID derives a stable content identifier from normalized title,
// company, and location so that re-crawls converge on the same ID.
func PostingID(title, company, location string) string {
	key := normalizeField(title) + "|" + normalizeField(company) + "|" + normalizeField(location)
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:8])
}

// DedupKey returns the normalized (title, company) pair used to collapse
// duplicate extractions of the same opening across pages.
func (p *JobPosting) DedupKey() string {
	return normalizeField(p.Title) + "|" + normalizeField(p.Company)
}

// Text returns the posting content used for keyword analysis: the
// description followed by the requirement phrases.
func (p *JobPosting) Text() string {
	if len(p.Requirements) == 0 {
		return p.Description
	}
	return p.Description + " " + strings.Join(p.Requirements, " ")
}

func normalizeField(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
