package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmatch/internal/config"
	"github.com/jonathan/jobmatch/internal/crawl"
	"github.com/jonathan/jobmatch/internal/fetch"
	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/match"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/jonathan/jobmatch/internal/rank"
	"github.com/jonathan/jobmatch/internal/textproc"
	"github.com/jonathan/jobmatch/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Rank a company's job postings against a resume",
	Long:  "Crawls a company's career pages (or loads postings from a previous crawl) and ranks every posting against the resume using a hybrid AI/keyword score. Without an API key the scores degrade to keyword similarity.",
	RunE:  runMatch,
}

var (
	matchConfigPath   string
	matchResumePath   string
	matchCompanyURL   string
	matchPostingsPath string
	matchMaxPages     int
	matchMaxResults   int
	matchUseBrowser   bool
	matchAPIKey       string
	matchAIWeight     float64
	matchKWWeight     float64
	matchOutputPath   string
	matchVerbose      bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchConfigPath, "config", "c", "", "Path to JSON config file")
	matchCmd.Flags().StringVarP(&matchResumePath, "resume", "r", "", "Path to resume text file")
	matchCmd.Flags().StringVarP(&matchCompanyURL, "company-url", "u", "", "Company root URL to crawl")
	matchCmd.Flags().StringVarP(&matchPostingsPath, "postings", "p", "", "Postings JSON file from a previous crawl")
	matchCmd.Flags().IntVar(&matchMaxPages, "max-pages", 10, "Maximum career pages to crawl (max: 15)")
	matchCmd.Flags().IntVar(&matchMaxResults, "max-results", 10, "Maximum ranked results to report")
	matchCmd.Flags().BoolVar(&matchUseBrowser, "use-browser", false, "Render thin pages with a headless browser")
	matchCmd.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	matchCmd.Flags().Float64Var(&matchAIWeight, "ai-weight", match.DefaultAIWeight, "Weight of the AI compatibility signal")
	matchCmd.Flags().Float64Var(&matchKWWeight, "keyword-weight", match.DefaultKeywordWeight, "Weight of the keyword similarity signal")
	matchCmd.Flags().StringVarP(&matchOutputPath, "out", "o", "", "Output JSON file (default: stdout)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print progress and ranked matches")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveMatchConfig(cmd)
	if err != nil {
		return err
	}

	resumeData, err := os.ReadFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file %s: %w", cfg.Resume, err)
	}
	if cfg.Verbose {
		stats := textproc.WordCountStats(string(resumeData))
		fmt.Fprintf(os.Stderr, "Resume: %d words, %d sentences\n", stats.Words, stats.Sentences)
	}

	ctx := context.Background()

	postings, err := loadPostings(ctx, cfg)
	if err != nil {
		return err
	}
	if len(postings) == 0 {
		return fmt.Errorf("no postings to rank")
	}

	client := newLLMClient(ctx, cfg.APIKey, cfg.Verbose)
	if client != nil {
		defer func() { _ = client.Close() }()
	}

	scorer := match.NewScorer(client, &match.Options{
		AIWeight:      cfg.AIWeight,
		KeywordWeight: cfg.KeywordWeight,
		Verbose:       cfg.Verbose,
	})

	results, err := rank.Rank(ctx, scorer, string(resumeData), postings, &rank.Options{
		MaxResults:  cfg.MaxResults,
		Concurrency: cfg.Concurrency,
		Verbose:     cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("failed to rank postings: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintMatches(results)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}

	if matchOutputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(data))
		return nil
	}
	if err := os.WriteFile(matchOutputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", matchOutputPath, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d postings\n", len(results))
	_, _ = fmt.Fprintf(os.Stdout, "Results: %s\n", matchOutputPath)

	return nil
}

// resolveMatchConfig loads the optional config file and applies CLI
// overrides; command-line args take priority over config values.
func resolveMatchConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = loaded.MergeWithDefaults(cfg)
		if matchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", matchConfigPath)
		}
	}

	// Only override when the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = matchResumePath
	}
	if cmd.Flags().Changed("company-url") {
		cfg.CompanyURL = matchCompanyURL
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = matchMaxPages
	}
	if cmd.Flags().Changed("max-results") {
		cfg.MaxResults = matchMaxResults
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = matchUseBrowser
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("ai-weight") {
		cfg.AIWeight = matchAIWeight
	}
	if cmd.Flags().Changed("keyword-weight") {
		cfg.KeywordWeight = matchKWWeight
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}

	if cfg.Resume == "" {
		return nil, fmt.Errorf("resume required: set --resume flag or 'resume' in the config file")
	}
	if cfg.CompanyURL == "" && matchPostingsPath == "" {
		return nil, fmt.Errorf("postings source required: set --company-url (or 'company_url' in the config file) or --postings")
	}
	if cfg.CompanyURL != "" && matchPostingsPath != "" && cmd.Flags().Changed("company-url") {
		return nil, fmt.Errorf("--company-url and --postings are mutually exclusive")
	}

	return &cfg, nil
}

// loadPostings reads postings from the JSON file or crawls the company.
func loadPostings(ctx context.Context, cfg *config.Config) ([]types.JobPosting, error) {
	if matchPostingsPath != "" {
		data, err := os.ReadFile(matchPostingsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read postings file %s: %w", matchPostingsPath, err)
		}
		var postings []types.JobPosting
		if err := json.Unmarshal(data, &postings); err != nil {
			return nil, fmt.Errorf("failed to parse postings JSON: %w", err)
		}
		return types.DedupPostings(postings), nil
	}

	crawler := crawl.New(fetch.NewClient(nil, nil), &crawl.Options{
		MaxPages:    cfg.MaxPages,
		Concurrency: cfg.Concurrency,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
	})
	postings, err := crawler.Company(ctx, cfg.CompanyURL)
	if err != nil {
		return nil, fmt.Errorf("failed to crawl %s: %w", cfg.CompanyURL, err)
	}
	return postings, nil
}

// newLLMClient builds the Gemini client when a key is available. A missing
// key is not an error: scoring degrades to keyword similarity.
func newLLMClient(ctx context.Context, apiKey string, verbose bool) llm.Client {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		if verbose {
			fmt.Fprintln(os.Stderr, "No API key found; scores will use keyword similarity only")
		}
		return nil
	}
	client, err := llm.NewClient(ctx, nil, apiKey)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM client unavailable (%v); scores will use keyword similarity only\n", err)
		return nil
	}
	return client
}
