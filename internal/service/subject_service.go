package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/skills-wallet-api/internal/models"
	"github.com/noah-isme/skills-wallet-api/internal/store"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
)

type subjectStore interface {
	CreateSubject(subject *models.Subject) error
	FindSubjectByID(id string) (*models.Subject, error)
	ListSubjects() []models.Subject
}

// CreateSubjectRequest captures fields for creating subjects.
type CreateSubjectRequest struct {
	Code        string `json:"code" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	PublicKey   string `json:"public_key"`
}

// SubjectService handles subject workflows.
type SubjectService struct {
	store     subjectStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubjectService creates a new subject service.
func NewSubjectService(st subjectStore, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{store: st, validator: validate, logger: logger}
}

// List returns all subjects, newest first.
func (s *SubjectService) List(ctx context.Context) []models.Subject {
	return s.store.ListSubjects()
}

// Get returns a subject by identifier.
func (s *SubjectService) Get(ctx context.Context, id string) (*models.Subject, error) {
	subject, err := s.store.FindSubjectByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	return subject, nil
}

// Create adds a new subject ensuring code uniqueness.
func (s *SubjectService) Create(ctx context.Context, req CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	subject := &models.Subject{
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
		PublicKey:   req.PublicKey,
	}

	if err := s.store.CreateSubject(subject); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, appErrors.Clone(appErrors.ErrDuplicateCode, "subject code already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}

	s.logger.Info("subject created", zap.String("subject_id", subject.SubjectID), zap.String("code", subject.Code))
	return subject, nil
}
