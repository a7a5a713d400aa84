package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/jobmatch/internal/schemas"
)

const (
	// DefaultCallTimeout bounds one compatibility call, independent of the
	// crawl's HTTP timeouts.
	DefaultCallTimeout = 20 * time.Second
	// DefaultMaxAttempts is the retry budget for one analysis.
	DefaultMaxAttempts = 2
)

// Compatibility is the strict result of one AI compatibility analysis.
type Compatibility struct {
	CompatibilityScore float64  `json:"compatibility_score"`
	MatchingSkills     []string `json:"matching_skills"`
	MissingSkills      []string `json:"missing_skills"`
	Recommendation     string   `json:"recommendation"`
	Reasoning          string   `json:"reasoning"`
}

// CollaboratorError reports that the AI collaborator could not produce a
// usable analysis. Callers treat it as "collaborator unavailable" and fall
// back to keyword-only scoring; it is never fatal.
type CollaboratorError struct {
	Message string
	Cause   error
}

func (e *CollaboratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("collaborator error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("collaborator error: %s", e.Message)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Cause
}

// compatibilitySchema guards the parse-or-degrade boundary: responses that
// do not match it are rejected before unmarshaling.
const compatibilitySchema = `{
	"type": "object",
	"required": ["compatibility_score"],
	"properties": {
		"compatibility_score": {"type": "number", "minimum": 0, "maximum": 100},
		"matching_skills": {"type": "array", "items": {"type": "string"}},
		"missing_skills": {"type": "array", "items": {"type": "string"}},
		"recommendation": {"type": "string"},
		"reasoning": {"type": "string"}
	}
}`

// AnalyzeCompatibility asks the AI collaborator how well a resume matches a
// job posting. The response may arrive wrapped in commentary or code
// fences; the embedded JSON object is located, schema-checked, and parsed
// into a strict struct. Every failure mode returns a CollaboratorError so
// the caller can degrade rather than fail.
func AnalyzeCompatibility(ctx context.Context, client Client, resumeText, jobText string) (*Compatibility, error) {
	if client == nil {
		return nil, &CollaboratorError{Message: "no client configured"}
	}

	prompt := buildCompatibilityPrompt(resumeText, jobText)

	var lastErr error
	for attempt := 0; attempt < DefaultMaxAttempts; attempt++ {
		if ctx.Err() != nil {
			return nil, &CollaboratorError{Message: "analysis canceled", Cause: ctx.Err()}
		}

		callCtx, cancel := context.WithTimeout(ctx, DefaultCallTimeout)
		raw, err := client.GenerateJSON(callCtx, prompt, TierStandard)
		cancel()
		if err != nil {
			lastErr = err
			continue
		}

		result, err := parseCompatibility(raw)
		if err != nil {
			lastErr = err
			continue
		}
		return result, nil
	}

	return nil, &CollaboratorError{Message: "analysis failed after retries", Cause: lastErr}
}

// parseCompatibility applies the parse-or-degrade boundary to one raw
// response.
func parseCompatibility(raw string) (*Compatibility, error) {
	jsonStr := ExtractJSONObject(CleanJSONBlock(raw))
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	if err := schemas.ValidateJSONString(compatibilitySchema, jsonStr); err != nil {
		return nil, fmt.Errorf("response failed schema validation: %w", err)
	}

	var result Compatibility
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.CompatibilityScore < 0 {
		result.CompatibilityScore = 0
	}
	if result.CompatibilityScore > 100 {
		result.CompatibilityScore = 100
	}

	normalizeSkills(result.MatchingSkills)
	normalizeSkills(result.MissingSkills)

	return &result, nil
}

func normalizeSkills(skills []string) {
	for i, s := range skills {
		skills[i] = strings.ToLower(strings.TrimSpace(s))
	}
}

// buildCompatibilityPrompt constructs the analysis prompt.
func buildCompatibilityPrompt(resumeText, jobText string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert recruiter. Analyze how well this resume matches the job posting.\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	sb.WriteString("  \"compatibility_score\": number, // 0-100 overall match score (required)\n")
	sb.WriteString("  \"matching_skills\": [\"string\"], // skills present in both resume and posting\n")
	sb.WriteString("  \"missing_skills\": [\"string\"], // skills the posting wants that the resume lacks\n")
	sb.WriteString("  \"recommendation\": string, // one of: apply, review, skip\n")
	sb.WriteString("  \"reasoning\": string // brief explanation of the assessment\n")
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Base the assessment only on the provided texts, do not invent skills.\n")
	sb.WriteString("- A skill must never appear in both matching_skills and missing_skills.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("RESUME:\n\"\"\"\n")
	sb.WriteString(resumeText)
	sb.WriteString("\n\"\"\"\n\n")

	sb.WriteString("JOB POSTING:\n\"\"\"\n")
	sb.WriteString(jobText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}
