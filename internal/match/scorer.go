// Package match computes hybrid match scores for (resume, posting) pairs,
// combining a deterministic keyword signal with the AI collaborator's
// compatibility signal and degrading gracefully when the latter is
// unavailable.
package match

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/jonathan/jobmatch/internal/llm"
	"github.com/jonathan/jobmatch/internal/textproc"
	"github.com/jonathan/jobmatch/internal/types"
)

// Default weights for combining the AI and keyword signals. The AI signal
// captures semantic equivalence that lexical overlap misses; the keyword
// signal keeps the score anchored and auditable when the collaborator
// hallucinates or fails.
const (
	DefaultAIWeight      = 0.7
	DefaultKeywordWeight = 0.3
)

// ValidationError reports caller misuse, such as an empty resume.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Options configures a Scorer.
type Options struct {
	AIWeight      float64
	KeywordWeight float64
	Verbose       bool
}

// Scorer computes match scores. The LLM client is constructor-injected;
// a nil client means every score is keyword-only (degraded).
type Scorer struct {
	client llm.Client
	opts   *Options
}

// NewScorer creates a Scorer. Nil options use the default 0.7/0.3
// weighting; non-positive weight pairs fall back to the defaults.
func NewScorer(client llm.Client, opts *Options) *Scorer {
	if opts == nil {
		opts = &Options{}
	}
	if opts.AIWeight <= 0 && opts.KeywordWeight <= 0 {
		opts.AIWeight = DefaultAIWeight
		opts.KeywordWeight = DefaultKeywordWeight
	}
	return &Scorer{client: client, opts: opts}
}

// Score computes the hybrid match score for one (resume, posting) pair.
// When the AI collaborator is unavailable the result is exactly the
// keyword similarity scaled to 0-100, with Degraded set. Only an empty
// resume is an error.
func (s *Scorer) Score(ctx context.Context, resumeText string, posting types.JobPosting) (*types.MatchResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &ValidationError{Field: "resumeText", Message: "must not be empty"}
	}

	keywordScore := textproc.Similarity(resumeText, posting.Text()) * 100

	result := &types.MatchResult{
		JobID:    posting.ID,
		JobTitle: posting.Title,
		Company:  posting.Company,
	}

	analysis, err := s.analyze(ctx, resumeText, posting)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[MATCH] AI analysis unavailable for %q, using keyword score: %v", posting.Title, err)
		}
		matching, missing := keywordSkillSets(resumeText, posting)
		result.Score = keywordScore
		result.MatchingSkills = matching
		result.MissingSkills = missing
		result.Degraded = true
		return result, nil
	}

	result.Score = clampScore(s.opts.AIWeight*analysis.CompatibilityScore + s.opts.KeywordWeight*keywordScore)
	result.Recommendation = analysis.Recommendation
	result.Reasoning = analysis.Reasoning

	matching, missing := analysis.MatchingSkills, analysis.MissingSkills
	if len(matching) == 0 && len(missing) == 0 {
		matching, missing = keywordSkillSets(resumeText, posting)
	}
	result.MatchingSkills, result.MissingSkills = disjoint(matching, missing)

	return result, nil
}

func (s *Scorer) analyze(ctx context.Context, resumeText string, posting types.JobPosting) (*llm.Compatibility, error) {
	if s.client == nil {
		return nil, &llm.CollaboratorError{Message: "no client configured"}
	}
	return llm.AnalyzeCompatibility(ctx, s.client, resumeText, postingPrompt(posting))
}

// postingPrompt renders the posting for the AI collaborator.
func postingPrompt(p types.JobPosting) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Job Title: %s\n", p.Title)
	fmt.Fprintf(&sb, "Company: %s\n", p.Company)
	if p.Location != "" {
		fmt.Fprintf(&sb, "Location: %s\n", p.Location)
	}
	fmt.Fprintf(&sb, "Description: %s\n", p.Description)
	if len(p.Requirements) > 0 {
		fmt.Fprintf(&sb, "Requirements: %s\n", strings.Join(p.Requirements, ", "))
	}
	return sb.String()
}

// keywordSkillSets derives matching and missing skills purely from the
// resume and posting keyword sets. Output is sorted for determinism and
// the two sets are disjoint by construction.
func keywordSkillSets(resumeText string, posting types.JobPosting) (matching, missing []string) {
	resumeSet := textproc.KeywordSet(resumeText, textproc.DefaultMaxKeywords)
	jobSet := textproc.KeywordSet(posting.Text(), textproc.DefaultMaxKeywords)

	for term := range jobSet {
		if _, ok := resumeSet[term]; ok {
			matching = append(matching, term)
		} else {
			missing = append(missing, term)
		}
	}
	sort.Strings(matching)
	sort.Strings(missing)
	return matching, missing
}

// disjoint removes any term from missing that also appears in matching,
// preserving order.
func disjoint(matching, missing []string) ([]string, []string) {
	inMatching := toSet(matching)
	out := missing[:0:0]
	for _, term := range missing {
		if !inMatching[term] {
			out = append(out, term)
		}
	}
	return matching, out
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
