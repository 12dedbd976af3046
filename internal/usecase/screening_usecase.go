package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/fadilmartias/job-portal/internal/model"
	"github.com/fadilmartias/job-portal/internal/repository"
	"github.com/fadilmartias/job-portal/internal/scoring"
	"github.com/fadilmartias/job-portal/internal/service"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// ScreeningUsecase owns the screening lifecycle: pending -> processing ->
// complete/failed. It is the only writer of ScreeningResult.
type ScreeningUsecase struct {
	applications ApplicationStore
	screenings   ScreeningStore
	evaluator    service.EvaluatorServiceInterface
	group        singleflight.Group
}

func NewScreeningUsecase(applications ApplicationStore, screenings ScreeningStore, evaluator service.EvaluatorServiceInterface) *ScreeningUsecase {
	return &ScreeningUsecase{applications: applications, screenings: screenings, evaluator: evaluator}
}

// TriggerScreening starts a screening run in the background and returns
// immediately. Callers observe the outcome by re-fetching the screening
// result; no error ever reaches them from here.
func (uc *ScreeningUsecase) TriggerScreening(applicationID uuid.UUID) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("screening panic for application %s: %v", applicationID, r)
				uc.markFailed(applicationID)
			}
		}()

		if err := uc.RunScreening(context.Background(), applicationID); err != nil {
			log.Printf("screening for application %s: %v", applicationID, err)
		}
	}()
}

// RunScreening executes one screening run. Concurrent runs for the same
// application collapse into a single flight.
func (uc *ScreeningUsecase) RunScreening(ctx context.Context, applicationID uuid.UUID) error {
	_, err, _ := uc.group.Do(applicationID.String(), func() (any, error) {
		return nil, uc.runScreening(ctx, applicationID)
	})
	return err
}

func (uc *ScreeningUsecase) runScreening(ctx context.Context, applicationID uuid.UUID) error {
	appCtx, err := uc.applications.FindApplicationWithContext(applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// No result row is created or touched for an unknown application.
			log.Printf("screening skipped: application %s or its job/profile not found", applicationID)
			return nil
		}
		return fmt.Errorf("load application context: %w", err)
	}

	result, err := uc.screenings.GetOrCreateResult(applicationID)
	if err != nil {
		return fmt.Errorf("get or create screening result: %w", err)
	}

	// Re-entry from complete or failed goes back through processing.
	result.AIStatus = model.ScreeningStatusProcessing
	if err := uc.screenings.UpdateResult(result); err != nil {
		return fmt.Errorf("mark screening processing: %w", err)
	}

	if err := uc.score(ctx, appCtx, result); err != nil {
		// Prior scores from an earlier successful run stay in place; only the
		// status flips.
		result.AIStatus = model.ScreeningStatusFailed
		if updateErr := uc.screenings.UpdateResult(result); updateErr != nil {
			log.Printf("could not mark screening failed for application %s: %v", applicationID, updateErr)
		}
		return err
	}

	return nil
}

// score runs both scorers and persists the terminal complete state in one
// update. Score fields on result are only mutated once the evaluator has
// succeeded.
func (uc *ScreeningUsecase) score(ctx context.Context, appCtx *repository.ApplicationContext, result *model.ScreeningResult) error {
	candidate := scoring.CandidateFacts{
		Email:           appCtx.Profile.Email,
		Skills:          appCtx.Profile.Skills,
		ExperienceYears: appCtx.Profile.ExperienceYears,
		ResumeText:      appCtx.Profile.ResumeText,
	}
	job := scoring.JobFacts{
		Title:          appCtx.Job.Title,
		Description:    appCtx.Job.Description,
		RequiredSkills: appCtx.Job.RequiredSkills,
		MinYears:       appCtx.Job.MinYears,
	}

	rulesScore := scoring.RulesScore(candidate, job)

	eval, err := uc.evaluator.Evaluate(ctx, candidate, job)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEvaluationFailed, err)
	}

	finalScore := scoring.FinalScore(rulesScore, eval.Score)

	result.RulesScore = &rulesScore
	result.SemanticScore = &eval.Score
	result.FinalScore = &finalScore
	result.Reasons = eval.Reasons
	result.AISummary = eval.Summary
	result.AIQuestions = eval.Questions
	result.AIStatus = model.ScreeningStatusComplete
	if err := uc.screenings.UpdateResult(result); err != nil {
		return fmt.Errorf("persist screening result: %w", err)
	}
	return nil
}

// markFailed is the last-resort boundary for panics: a run must never leave
// the result parked in processing.
func (uc *ScreeningUsecase) markFailed(applicationID uuid.UUID) {
	result, err := uc.screenings.FindResultByApplicationID(applicationID)
	if err != nil {
		log.Printf("could not load screening result for application %s after panic: %v", applicationID, err)
		return
	}
	if result.AIStatus != model.ScreeningStatusProcessing {
		return
	}
	result.AIStatus = model.ScreeningStatusFailed
	if err := uc.screenings.UpdateResult(result); err != nil {
		log.Printf("could not mark screening failed for application %s: %v", applicationID, err)
	}
}

// GetResult returns the persisted screening result for an application.
func (uc *ScreeningUsecase) GetResult(applicationID uuid.UUID) (*model.ScreeningResult, error) {
	return uc.screenings.FindResultByApplicationID(applicationID)
}
