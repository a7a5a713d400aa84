package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/crawl"
	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/observability"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl a company site and extract job postings",
	Long:  "Discovers career pages starting from a company root URL, extracts structured job postings, and writes them as JSON.",
	RunE:  runCrawl,
}

var (
	crawlCompanyURL   string
	crawlMaxPages     int
	crawlConcurrency  int
	crawlPerHostDelay time.Duration
	crawlUseBrowser   bool
	crawlOutputPath   string
	crawlVerbose      bool
)

func init() {
	crawlCmd.Flags().StringVarP(&crawlCompanyURL, "company-url", "u", "", "Company root URL (required)")
	crawlCmd.Flags().IntVar(&crawlMaxPages, "max-pages", 10, "Maximum career pages to crawl (max: 15)")
	crawlCmd.Flags().IntVar(&crawlConcurrency, "concurrency", crawl.DefaultConcurrency, "Simultaneous page fetches (max: 4)")
	crawlCmd.Flags().DurationVar(&crawlPerHostDelay, "per-host-delay", crawl.DefaultPerHostDelay, "Minimum delay between requests to the same host")
	crawlCmd.Flags().BoolVar(&crawlUseBrowser, "use-browser", false, "Render thin pages with a headless browser")
	crawlCmd.Flags().StringVarP(&crawlOutputPath, "out", "o", "", "Output JSON file (default: stdout)")
	crawlCmd.Flags().BoolVarP(&crawlVerbose, "verbose", "v", false, "Print crawl progress")

	if err := crawlCmd.MarkFlagRequired("company-url"); err != nil {
		panic(fmt.Sprintf("failed to mark company-url flag as required: %v", err))
	}

	rootCmd.AddCommand(crawlCmd)
}

func runCrawl(_ *cobra.Command, _ []string) error {
	crawler := crawl.New(fetch.NewClient(nil, nil), &crawl.Options{
		MaxPages:     crawlMaxPages,
		Concurrency:  crawlConcurrency,
		PerHostDelay: crawlPerHostDelay,
		UseBrowser:   crawlUseBrowser,
		Verbose:      crawlVerbose,
	})

	session, err := crawler.CompanySession(context.Background(), crawlCompanyURL)
	if err != nil {
		return fmt.Errorf("failed to crawl %s: %w", crawlCompanyURL, err)
	}
	postings := session.Postings()

	if crawlVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintCrawlSummary(session)
		printer.PrintPostings(postings)
	}

	data, err := json.MarshalIndent(postings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal postings to JSON: %w", err)
	}

	if crawlOutputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(crawlOutputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write postings file %s: %w", crawlOutputPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Found %d postings\n", len(postings))
	_, _ = fmt.Fprintf(os.Stdout, "Postings: %s\n", crawlOutputPath)

	return nil
}
