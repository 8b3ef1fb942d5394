// simulation/simulation.go
//
// Package simulation drives full onboarding assessments for synthetic
// users through the real service stack. It exists to exercise the
// selection engine and scorer end to end without an HTTP client or a
// live LLM.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/P-Pranath/Unora-app/internal/domain/personality"
	"github.com/P-Pranath/Unora-app/internal/engine"
	"github.com/P-Pranath/Unora-app/internal/id"
	"github.com/P-Pranath/Unora-app/internal/service"
	"github.com/P-Pranath/Unora-app/internal/store"
	"github.com/P-Pranath/Unora-app/internal/summary"
	"github.com/P-Pranath/Unora-app/internal/worker"
)

// UserReport is the outcome of one simulated user's onboarding run.
type UserReport struct {
	UserID            string
	QuestionsAnswered int
	AskedQuestionIDs  []string
	Skipped           int
	OverallConfidence float64
	Summary           string
	Err               error
}

// offlineGenerator always fails, which routes every summary through the
// deterministic fallback path.
type offlineGenerator struct{}

func (offlineGenerator) GenerateText(context.Context, string, string) (string, error) {
	return "", errors.New("text generation disabled in simulation")
}

// Run simulates `users` complete onboarding assessments against the
// given store, `workers` at a time.
func Run(ctx context.Context, s store.Store, logger *slog.Logger, users, workers int) []UserReport {
	svc := service.NewAssessmentService(
		s,
		engine.New(logger),
		summary.NewGenerator(offlineGenerator{}, logger),
		logger,
	)

	pool := worker.NewPool[UserReport](workers, users)
	for i := 0; i < users; i++ {
		seq := i
		userID := "sim-" + id.GenerateID()
		pool.Submit(userID, func() UserReport {
			return runUser(ctx, svc, userID, seq)
		})
	}
	pool.Close()

	reports := make([]UserReport, 0, users)
	for i := 0; i < users; i++ {
		result := <-pool.Results()
		reports = append(reports, result.Output)
	}
	return reports
}

// runUser plays one user through onboarding. Every fourth user skips
// their third question; everyone else answers with a deterministic
// option pick, so runs are reproducible for a given day.
func runUser(ctx context.Context, svc *service.AssessmentService, userID string, seq int) UserReport {
	report := UserReport{UserID: userID}

	if _, err := svc.InitProfile(ctx, userID); err != nil {
		report.Err = fmt.Errorf("init profile: %w", err)
		return report
	}

	for {
		result, err := svc.NextQuestion(ctx, userID, personality.ModeOnboarding)
		if err != nil {
			report.Err = fmt.Errorf("next question: %w", err)
			return report
		}
		if result.Complete {
			break
		}

		question := result.Question
		report.AskedQuestionIDs = append(report.AskedQuestionIDs, question.ID)

		req := service.AnswerRequest{
			UserID:     userID,
			QuestionID: question.ID,
			Mode:       personality.ModeOnboarding,
		}
		if seq%4 == 0 && len(report.AskedQuestionIDs) == 3 {
			report.Skipped++
		} else {
			pick := (seq + len(report.AskedQuestionIDs)) % len(question.Options)
			req.OptionIndex = &pick
		}

		answer, err := svc.SubmitAnswer(ctx, req)
		if err != nil {
			report.Err = fmt.Errorf("submit answer %s: %w", question.ID, err)
			return report
		}
		report.QuestionsAnswered = answer.QuestionsAnswered
	}

	view, err := svc.Summary(ctx, userID)
	if err != nil {
		report.Err = fmt.Errorf("summary: %w", err)
		return report
	}
	report.OverallConfidence = view.OverallConfidence
	report.Summary = view.Text
	return report
}
