package match

import (
	"sort"

	"github.com/jonathan/jobmatch/internal/textproc"
	"github.com/jonathan/jobmatch/internal/types"
)

// maxGapTerms bounds each skill-gap bucket so the report stays readable.
const maxGapTerms = 10

// SkillGaps compares the resume against one posting using keyword sets
// alone. No AI call is made, so it works offline and is fully
// deterministic. Requirements lines are folded into the posting's term
// set alongside the description.
func SkillGaps(resumeText string, posting types.JobPosting) *types.SkillGaps {
	resumeSet := toSet(textproc.ExtractKeywords(resumeText, 30))

	jobSet := toSet(textproc.ExtractKeywords(posting.Description, 30))
	for _, req := range posting.Requirements {
		for _, term := range textproc.ExtractKeywords(req, 10) {
			jobSet[term] = true
		}
	}

	gaps := &types.SkillGaps{}
	for term := range jobSet {
		if resumeSet[term] {
			gaps.Matching = append(gaps.Matching, term)
		} else {
			gaps.Missing = append(gaps.Missing, term)
		}
	}
	for term := range resumeSet {
		if !jobSet[term] {
			gaps.ResumeOnly = append(gaps.ResumeOnly, term)
		}
	}

	sort.Strings(gaps.Matching)
	sort.Strings(gaps.Missing)
	sort.Strings(gaps.ResumeOnly)
	gaps.Matching = truncateTerms(gaps.Matching)
	gaps.Missing = truncateTerms(gaps.Missing)
	gaps.ResumeOnly = truncateTerms(gaps.ResumeOnly)
	return gaps
}

func truncateTerms(terms []string) []string {
	if len(terms) > maxGapTerms {
		return terms[:maxGapTerms]
	}
	return terms
}
