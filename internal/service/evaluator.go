package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/job-portal/internal/scoring"
	"github.com/tidwall/gjson"
)

// resumeExcerptLimit caps how much resume text goes into the prompt, to keep
// token cost and latency bounded.
const resumeExcerptLimit = 1000

// Evaluation is the qualitative output of the semantic evaluator. Score is the
// semantic score only; the final score is always recomputed by the aggregator.
type Evaluation struct {
	Score     int
	Summary   string
	Reasons   []string
	Questions []string
}

type EvaluatorServiceInterface interface {
	Evaluate(ctx context.Context, candidate scoring.CandidateFacts, job scoring.JobFacts) (*Evaluation, error)
}

// BuildScreeningPrompt renders the structured prompt shared by all remote
// evaluators.
func BuildScreeningPrompt(candidate scoring.CandidateFacts, job scoring.JobFacts) string {
	return fmt.Sprintf(`
You are an experienced technical recruiter. Evaluate how well the candidate below fits the job below.

Return your answer STRICTLY in JSON format with this schema:
{
	"semantic_score": <integer 0-100, overall fit based on skills, experience, and resume>,
	"summary": "<2-3 sentence summary of the candidate's fit for this role>",
	"reasons": ["<short reason>", "<short reason>", ...],
	"questions": ["<interview question>", "<interview question>", "<interview question>"]
}

Job title: %s
Job description:
%s

Required skills: %s
Minimum years of experience: %d

Candidate skills: %s
Candidate years of experience: %d

Resume excerpt:
%s
`,
		job.Title,
		job.Description,
		strings.Join(job.RequiredSkills, ", "),
		job.MinYears,
		strings.Join(candidate.Skills, ", "),
		candidate.ExperienceYears,
		resumeExcerpt(candidate.ResumeText),
	)
}

func resumeExcerpt(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "(no resume provided)"
	}
	if len(text) > resumeExcerptLimit {
		return text[:resumeExcerptLimit]
	}
	return text
}

// ParseEvaluation extracts an Evaluation from raw model output. Missing fields
// fall back to zero values so one weak answer does not fail the whole run; a
// payload with no JSON object at all is an error.
func ParseEvaluation(text string) (*Evaluation, error) {
	payload := extractJSON(text)
	if !gjson.Valid(payload) || !gjson.Parse(payload).IsObject() {
		return nil, fmt.Errorf("no JSON object in model response")
	}

	eval := &Evaluation{
		Score:     clamp(int(gjson.Get(payload, "semantic_score").Int())),
		Summary:   gjson.Get(payload, "summary").String(),
		Reasons:   stringArray(gjson.Get(payload, "reasons")),
		Questions: stringArray(gjson.Get(payload, "questions")),
	}
	return eval, nil
}

// extractJSON strips markdown fences and anything around the outermost object.
// Model sering membungkus JSON dengan ```json ... ```.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return text[start : end+1]
}

func stringArray(result gjson.Result) []string {
	if !result.IsArray() {
		return []string{}
	}
	items := []string{}
	for _, r := range result.Array() {
		if s := r.String(); s != "" {
			items = append(items, s)
		}
	}
	return items
}

func clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
