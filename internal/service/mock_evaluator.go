package service

import (
	"context"

	"github.com/fadilmartias/job-portal/internal/scoring"
)

// Fixed payload returned when no provider credential is configured. The values
// are literals so mock output is unmistakable next to real provider output.
const (
	MockSemanticScore = 80
	MockSummary       = "[mock] Candidate shows a solid overlap with the role requirements; evaluated without an AI provider."
)

var mockQuestions = []string{
	"[mock] Walk me through a project where you used the required skills.",
	"[mock] How do you approach learning a skill the role needs that you lack?",
	"[mock] Describe a technical decision you made and its trade-offs.",
}

var mockReasons = []string{
	"[mock] Skill overlap computed from the submitted profile.",
	"[mock] Experience compared against the job minimum.",
}

// MockEvaluator keeps the pipeline fully operable and testable without any
// external provider.
type MockEvaluator struct{}

func NewMockEvaluator() *MockEvaluator {
	return &MockEvaluator{}
}

func (e *MockEvaluator) Evaluate(ctx context.Context, candidate scoring.CandidateFacts, job scoring.JobFacts) (*Evaluation, error) {
	return &Evaluation{
		Score:     MockSemanticScore,
		Summary:   MockSummary,
		Reasons:   append([]string(nil), mockReasons...),
		Questions: append([]string(nil), mockQuestions...),
	}, nil
}
