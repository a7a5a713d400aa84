package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch/internal/types"
)

func writePostingsFile(t *testing.T, dir string) string {
	t.Helper()
	postings := []types.JobPosting{
		{
			ID:           types.PostingID("Backend Engineer", "Acme", "Remote"),
			Title:        "Backend Engineer",
			Company:      "Acme",
			Location:     "Remote",
			Description:  "Build python services on AWS.",
			Requirements: []string{"Requires Python", "Experience with AWS"},
		},
	}
	data, err := json.Marshal(postings)
	require.NoError(t, err)

	path := filepath.Join(dir, "postings.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func writeResumeFile(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python engineer building backend services."), 0644))
	return path
}

func TestMatchCommand_MissingResumeFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match",
		"--company-url", "https://example.com")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "resume required")
}

func TestMatchCommand_CompanyAndPostingsExclusive(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumePath := writeResumeFile(t, tmpDir)
	postingsPath := writePostingsFile(t, tmpDir)

	cmd := exec.Command(binaryPath, "match",
		"--resume", resumePath,
		"--company-url", "https://example.com",
		"--postings", postingsPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "mutually exclusive")
}

func TestMatchCommand_ConfigFileSuppliesResume(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumePath := writeResumeFile(t, tmpDir)
	postingsPath := writePostingsFile(t, tmpDir)

	configPath := filepath.Join(tmpDir, "config.json")
	configJSON := `{"resume": ` + strconv.Quote(resumePath) + `}`
	require.NoError(t, os.WriteFile(configPath, []byte(configJSON), 0644))

	cmd := exec.Command(binaryPath, "match",
		"--config", configPath,
		"--postings", postingsPath)
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=")
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Backend Engineer")
}

func TestMatchCommand_KeywordOnlyFromPostingsFile(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	resumePath := writeResumeFile(t, tmpDir)
	postingsPath := writePostingsFile(t, tmpDir)
	outPath := filepath.Join(tmpDir, "results.json")

	// No API key: scores must come from keyword similarity.
	cmd := exec.Command(binaryPath, "match",
		"--resume", resumePath,
		"--postings", postingsPath,
		"--out", outPath)
	cmd.Env = append(os.Environ(), "GEMINI_API_KEY=")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results []*types.MatchResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Degraded)
	assert.Equal(t, "Backend Engineer", results[0].JobTitle)
}
