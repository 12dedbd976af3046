package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/job-portal/internal/config"
	"github.com/fadilmartias/job-portal/internal/scoring"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the alternate remote evaluator, used when only an
// OpenRouter key is configured.
type OpenRouterService struct {
	APIKey string
	Model  string
	client *resty.Client
}

func NewOpenRouterService() *OpenRouterService {
	return &OpenRouterService{
		APIKey: config.LoadOpenRouterConfig().APIKey,
		Model:  "openai/gpt-4o-mini",
		client: resty.New().SetTimeout(90 * time.Second),
	}
}

func (s *OpenRouterService) Evaluate(ctx context.Context, candidate scoring.CandidateFacts, job scoring.JobFacts) (*Evaluation, error) {
	prompt := BuildScreeningPrompt(candidate, job)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an AI screening job applications for a hiring platform."},
				{"role": "user", "content": prompt},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return nil, fmt.Errorf("openrouter request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("openrouter returned status %d: %s", resp.StatusCode(), resp.String())
	}

	// Isi jawaban ada di choices.0.message.content
	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return nil, fmt.Errorf("no response from LLM")
	}

	eval, err := ParseEvaluation(text)
	if err != nil {
		return nil, fmt.Errorf("parse openrouter evaluation: %w", err)
	}
	return eval, nil
}
