package service

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/skills-wallet-api/internal/models"
	"github.com/noah-isme/skills-wallet-api/internal/store"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
)

// PassingScore is the percentage threshold at or above which an attempt
// counts as passed.
const PassingScore = 70

type evaluationStore interface {
	FindExamByID(id string) (*models.Exam, error)
}

// EvaluationService scores submitted answers against an exam's questions.
// It holds no state and never writes.
type EvaluationService struct {
	store  evaluationStore
	logger *zap.Logger
}

// NewEvaluationService creates a new evaluation service.
func NewEvaluationService(st evaluationStore, logger *zap.Logger) *EvaluationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EvaluationService{store: st, logger: logger}
}

// Evaluate compares answers against the exam's questions by question id.
// Missing or unknown answers count as incorrect. The result is always on
// the percentage scale: MaxScore is 100 regardless of the exam's configured
// point value.
func (s *EvaluationService) Evaluate(ctx context.Context, examID string, answers []models.Answer) (*models.EvaluationResult, error) {
	exam, err := s.store.FindExamByID(examID)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam")
	}

	if len(exam.Questions) == 0 {
		return nil, appErrors.Clone(appErrors.ErrInvalidExam, "exam has no questions")
	}

	answerByQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.SelectedAnswer
	}

	correct := 0
	for _, q := range exam.Questions {
		if selected, ok := answerByQuestion[q.QuestionID]; ok && selected == q.CorrectAnswer {
			correct++
		}
	}

	total := len(exam.Questions)
	score := int(math.Round(float64(correct) / float64(total) * 100))

	return &models.EvaluationResult{
		Score:          score,
		MaxScore:       100,
		CorrectAnswers: correct,
		TotalQuestions: total,
		Passed:         score >= PassingScore,
	}, nil
}
