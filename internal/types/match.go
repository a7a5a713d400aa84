package types

// MatchResult is the outcome of scoring one (resume, posting) pair.
// It is computed on demand and never mutated after creation.
type MatchResult struct {
	JobID    string `json:"job_id"`
	JobTitle string `json:"job_title"`
	Company  string `json:"company"`

	// Score is the combined match score, clamped to [0,100].
	Score float64 `json:"score"`

	// MatchingSkills and MissingSkills are always disjoint sets of
	// normalized lower-case terms.
	MatchingSkills []string `json:"matching_skills"`
	MissingSkills  []string `json:"missing_skills"`

	Recommendation string `json:"recommendation,omitempty"`
	Reasoning      string `json:"reasoning,omitempty"`

	// Degraded is true when the AI collaborator was unavailable and the
	// score is keyword-only.
	Degraded bool `json:"degraded"`
}

// SkillGaps is a cheap keyword-set breakdown of resume vs posting,
// available regardless of the AI collaborator.
type SkillGaps struct {
	Matching   []string `json:"matching_skills"`
	Missing    []string `json:"missing_skills"`
	ResumeOnly []string `json:"resume_unique_skills"`
}
