package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skills-wallet-api/internal/generator"
	"github.com/noah-isme/skills-wallet-api/internal/models"
	"github.com/noah-isme/skills-wallet-api/internal/store"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
)

type examStore interface {
	CreateExam(exam *models.Exam) error
	FindExamByID(id string) (*models.Exam, error)
	ListExams(filter models.ExamFilter) []models.Exam
}

// QuestionInput is one authored question in a create-exam payload.
type QuestionInput struct {
	Text          string   `json:"text" validate:"required"`
	Options       []string `json:"options" validate:"required,min=2,unique"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
	Explanation   string   `json:"explanation"`
}

// CreateExamRequest captures fields for creating exams.
type CreateExamRequest struct {
	SubjectClassID   string            `json:"subject_class_id" validate:"required"`
	Code             string            `json:"code" validate:"required"`
	Title            string            `json:"title" validate:"required"`
	Description      string            `json:"description"`
	PublicKey        string            `json:"public_key"`
	MaxScore         int               `json:"max_score" validate:"gte=0"`
	Questions        []QuestionInput   `json:"questions" validate:"required,min=1,dive"`
	TimeLimitSeconds int               `json:"time_limit_seconds"`
	Difficulty       models.Difficulty `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Skills           []string          `json:"skills"`
}

// GenerateExamRequest asks for a skill-based exam draft.
type GenerateExamRequest struct {
	Skills     []generator.SkillRequest `json:"skills" validate:"required_without=SkillSet,omitempty,min=1,dive"`
	SkillSet   string                   `json:"skill_set"`
	Difficulty models.Difficulty        `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// ExamService handles exam authoring and lookup.
type ExamService struct {
	store     examStore
	generator *generator.Generator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService creates a new exam service.
func NewExamService(st examStore, gen *generator.Generator, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if gen == nil {
		gen = generator.New(nil)
	}
	return &ExamService{store: st, generator: gen, validator: validate, logger: logger}
}

// List returns exams newest first, optionally filtered by subject class.
func (s *ExamService) List(ctx context.Context, filter models.ExamFilter) []models.Exam {
	return s.store.ListExams(filter)
}

// Get returns an exam by identifier.
func (s *ExamService) Get(ctx context.Context, id string) (*models.Exam, error) {
	exam, err := s.store.FindExamByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam")
	}
	return exam, nil
}

// Create publishes a new exam under an existing class. The question list
// must be non-empty and every question's correct answer must be one of its
// options.
func (s *ExamService) Create(ctx context.Context, req CreateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for _, in := range req.Questions {
		if !containsOption(in.Options, in.CorrectAnswer) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "correct answer must match one of the options")
		}
		questions = append(questions, models.Question{
			Text:          in.Text,
			Options:       in.Options,
			CorrectAnswer: in.CorrectAnswer,
			Explanation:   in.Explanation,
		})
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyIntermediate
	}

	exam := &models.Exam{
		SubjectClassID:   req.SubjectClassID,
		Code:             req.Code,
		Title:            req.Title,
		Description:      req.Description,
		PublicKey:        req.PublicKey,
		MaxScore:         req.MaxScore,
		Questions:        questions,
		TimeLimitSeconds: req.TimeLimitSeconds,
		Difficulty:       difficulty,
		Skills:           req.Skills,
		Status:           models.ExamStatusPublished,
	}

	if err := s.store.CreateExam(exam); err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create exam")
	}

	s.logger.Info("exam created",
		zap.String("exam_id", exam.ExamID),
		zap.String("subject_class_id", exam.SubjectClassID),
		zap.Int("total_questions", exam.TotalQuestions))
	return exam, nil
}

// Generate produces a skill-based exam draft. The draft is not stored; the
// authoring flow reviews it and submits it through Create.
func (s *ExamService) Generate(ctx context.Context, req GenerateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload")
	}

	skills := req.Skills
	if len(skills) == 0 {
		bundle, ok := generator.SkillSets[req.SkillSet]
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, "unknown skill set")
		}
		skills = bundle
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = models.DifficultyIntermediate
	}

	exam := s.generator.GenerateSkillBasedExam(skills, difficulty)
	if len(exam.Questions) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "no questions could be generated for the requested skills")
	}
	return &exam, nil
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
