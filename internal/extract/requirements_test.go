package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirements_ExplicitPhrases(t *testing.T) {
	text := `
		We are looking for someone special. Requires: solid distributed systems background.
		Must have: production debugging skills under pressure.
		Experience with container orchestration at scale.
		5+ years experience
	`
	reqs := Requirements(text)
	require.NotEmpty(t, reqs)

	joined := strings.ToLower(strings.Join(reqs, " | "))
	assert.Contains(t, joined, "distributed systems")
	assert.Contains(t, joined, "container orchestration")
	assert.Contains(t, joined, "5+ years experience")
}

func TestRequirements_TechKeywords(t *testing.T) {
	text := "Our stack is Python on AWS with PostgreSQL and Kubernetes. Python everywhere."
	reqs := Requirements(text)

	joined := strings.ToLower(strings.Join(reqs, " | "))
	assert.Contains(t, joined, "python")
	assert.Contains(t, joined, "aws")
	assert.Contains(t, joined, "postgresql")
	assert.Contains(t, joined, "kubernetes")
}

func TestRequirements_DedupedCaseInsensitive(t *testing.T) {
	text := "Requires: Python programming mastery. requires: python programming mastery."
	reqs := Requirements(text)

	seen := make(map[string]int)
	for _, r := range reqs {
		seen[strings.ToLower(r)]++
	}
	for r, n := range seen {
		assert.Equal(t, 1, n, "duplicate requirement: %s", r)
	}
}

func TestRequirements_Capped(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("Python Java JavaScript TypeScript Golang Ruby Rust React Angular Vue. ")
	sb.WriteString("Requires: one two three four five. Must have: six seven eight nine ten. ")
	sb.WriteString("MySQL PostgreSQL MongoDB Redis Docker Kubernetes Terraform AWS Azure GCP.")

	reqs := Requirements(sb.String())
	assert.LessOrEqual(t, len(reqs), MaxRequirements)
}

func TestRequirements_LengthBounds(t *testing.T) {
	// Captured phrase shorter than 10 chars is dropped
	reqs := Requirements("Requires: grit.")
	assert.Empty(t, reqs)
}

func TestRequirements_EmptyText(t *testing.T) {
	assert.Empty(t, Requirements(""))
}
