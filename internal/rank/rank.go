// Package rank scores a batch of postings against one resume and returns
// them ordered best-first.
package rank

import (
	"context"
	"log"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmatch/internal/match"
	"github.com/jonathan/jobmatch/internal/types"
)

// DefaultConcurrency bounds simultaneous scoring calls. Each score may hit
// the AI collaborator, so the pool stays small.
const DefaultConcurrency = 3

// Options configures a ranking run.
type Options struct {
	MaxResults  int
	Concurrency int
	Verbose     bool
}

// Rank scores every posting against the resume and returns the results
// sorted by descending score, title ascending on ties. Postings whose
// scoring fails are skipped with a log line; only caller misuse (an empty
// resume) aborts the run.
func Rank(ctx context.Context, scorer *match.Scorer, resumeText string, postings []types.JobPosting, opts *Options) ([]*types.MatchResult, error) {
	if opts == nil {
		opts = &Options{}
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	if strings.TrimSpace(resumeText) == "" {
		return nil, &match.ValidationError{Field: "resumeText", Message: "must not be empty"}
	}

	results := make([]*types.MatchResult, len(postings))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, posting := range postings {
		g.Go(func() error {
			result, err := scorer.Score(gCtx, resumeText, posting)
			if err != nil {
				if opts.Verbose {
					log.Printf("[RANK] Skipping %q: %v", posting.Title, err)
				}
				return nil
			}
			results[i] = result
			return nil
		})
	}
	_ = g.Wait()

	ranked := make([]*types.MatchResult, 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, r)
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].Score != ranked[b].Score {
			return ranked[a].Score > ranked[b].Score
		}
		return ranked[a].JobTitle < ranked[b].JobTitle
	})

	if opts.MaxResults > 0 && len(ranked) > opts.MaxResults {
		ranked = ranked[:opts.MaxResults]
	}
	return ranked, nil
}
