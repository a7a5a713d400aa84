package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/match"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/types"
)

var gapsCmd = &cobra.Command{
	Use:   "gaps",
	Short: "Report skill gaps between a resume and a posting",
	Long:  "Compares the resume's keyword set against one posting from a previous crawl and reports matching, missing, and resume-only terms. Works fully offline.",
	RunE:  runGaps,
}

var (
	gapsResumePath   string
	gapsPostingsPath string
	gapsJobID        string
	gapsVerbose      bool
)

func init() {
	gapsCmd.Flags().StringVarP(&gapsResumePath, "resume", "r", "", "Path to resume text file (required)")
	gapsCmd.Flags().StringVarP(&gapsPostingsPath, "postings", "p", "", "Postings JSON file from a previous crawl (required)")
	gapsCmd.Flags().StringVar(&gapsJobID, "job-id", "", "Posting ID to compare against (default: first posting)")
	gapsCmd.Flags().BoolVarP(&gapsVerbose, "verbose", "v", false, "Print a formatted gap report")

	if err := gapsCmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := gapsCmd.MarkFlagRequired("postings"); err != nil {
		panic(fmt.Sprintf("failed to mark postings flag as required: %v", err))
	}

	rootCmd.AddCommand(gapsCmd)
}

func runGaps(_ *cobra.Command, _ []string) error {
	resumeData, err := os.ReadFile(gapsResumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", gapsResumePath, err)
	}

	postingsData, err := os.ReadFile(gapsPostingsPath)
	if err != nil {
		return fmt.Errorf("failed to read postings file %s: %w", gapsPostingsPath, err)
	}
	var postings []types.JobPosting
	if err := json.Unmarshal(postingsData, &postings); err != nil {
		return fmt.Errorf("failed to parse postings JSON: %w", err)
	}
	if len(postings) == 0 {
		return fmt.Errorf("postings file is empty")
	}

	posting := postings[0]
	if gapsJobID != "" {
		found := false
		for _, p := range postings {
			if p.ID == gapsJobID {
				posting = p
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("no posting with id %s in %s", gapsJobID, gapsPostingsPath)
		}
	}

	gaps := match.SkillGaps(string(resumeData), posting)

	if gapsVerbose {
		observability.NewPrinter(os.Stderr).PrintSkillGaps(gaps)
	}

	data, err := json.MarshalIndent(gaps, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal gaps to JSON: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(data))

	return nil
}
