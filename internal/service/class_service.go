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

type classStore interface {
	CreateSubjectClass(class *models.SubjectClass) error
	FindSubjectClassByID(id string) (*models.SubjectClass, error)
	FindSubjectByID(id string) (*models.Subject, error)
	ListSubjectClasses(subjectID string) []models.SubjectClass
}

// CreateSubjectClassRequest captures fields for creating a class.
type CreateSubjectClassRequest struct {
	Code        string `json:"code" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// ClassService handles subject class workflows.
type ClassService struct {
	store     classStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService creates a new class service.
func NewClassService(st classStore, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{store: st, validator: validate, logger: logger}
}

// List returns the classes of one subject, newest first.
func (s *ClassService) List(ctx context.Context, subjectID string) ([]models.SubjectClass, error) {
	if _, err := s.store.FindSubjectByID(subjectID); err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	return s.store.ListSubjectClasses(subjectID), nil
}

// Create adds a class under an existing subject.
func (s *ClassService) Create(ctx context.Context, subjectID string, req CreateSubjectClassRequest) (*models.SubjectClass, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class := &models.SubjectClass{
		SubjectID:   subjectID,
		Code:        req.Code,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.store.CreateSubjectClass(class); err != nil {
		switch {
		case errors.Is(err, store.ErrNoRecord):
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		case errors.Is(err, store.ErrDuplicate):
			return nil, appErrors.Clone(appErrors.ErrDuplicateCode, "class code already exists in subject")
		default:
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
		}
	}

	s.logger.Info("subject class created", zap.String("subject_class_id", class.SubjectClassID), zap.String("subject_id", subjectID))
	return class, nil
}
