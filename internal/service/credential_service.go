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

type credentialStore interface {
	FindExamByID(id string) (*models.Exam, error)
	AppendIssuance(credential *models.Credential) (*models.Transaction, error)
	FindCredentialByID(id string) (*models.Credential, error)
	FindTransactionByTxID(txID string) (*models.Transaction, error)
	ListTransactions() []models.Transaction
}

// IssueCredentialRequest captures the issuance payload.
type IssueCredentialRequest struct {
	StudentID   string `json:"student_id" validate:"required"`
	StudentName string `json:"student_name" validate:"required"`
	ExamID      string `json:"exam_id" validate:"required"`
	Score       int    `json:"score" validate:"gte=0,lte=100"`
}

// IssueCredentialResponse returns the minted identifiers and record.
type IssueCredentialResponse struct {
	CredentialID string             `json:"credential_id"`
	TxID         string             `json:"tx_id"`
	Credential   *models.Credential `json:"credential"`
}

// CredentialService converts evaluation results into permanent credential
// and ledger records.
type CredentialService struct {
	store     credentialStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCredentialService creates a new credential service.
func NewCredentialService(st credentialStore, validate *validator.Validate, logger *zap.Logger) *CredentialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CredentialService{store: st, validator: validate, logger: logger}
}

// Issue mints a credential and its ledger transaction in one store
// operation. Fails when the score is out of range or the exam is unknown.
// Re-submitting mints a new pair; callers must not retry blindly.
func (s *CredentialService) Issue(ctx context.Context, req IssueCredentialRequest) (*IssueCredentialResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid issuance payload")
	}

	if _, err := s.store.FindExamByID(req.ExamID); err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "exam not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load exam")
	}

	credential := &models.Credential{
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		ExamID:      req.ExamID,
		Score:       req.Score,
	}

	tx, err := s.store.AppendIssuance(credential)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record issuance")
	}

	s.logger.Info("credential issued",
		zap.String("credential_id", credential.CredentialID),
		zap.String("tx_id", tx.TxID),
		zap.String("student_id", credential.StudentID),
		zap.Int("score", credential.Score))

	return &IssueCredentialResponse{
		CredentialID: credential.CredentialID,
		TxID:         tx.TxID,
		Credential:   credential,
	}, nil
}

// Get returns a credential by identifier.
func (s *CredentialService) Get(ctx context.Context, id string) (*models.Credential, error) {
	credential, err := s.store.FindCredentialByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "credential not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load credential")
	}
	return credential, nil
}

// GetTransaction returns a ledger entry by transaction id.
func (s *CredentialService) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	tx, err := s.store.FindTransactionByTxID(txID)
	if err != nil {
		if errors.Is(err, store.ErrNoRecord) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "transaction not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transaction")
	}
	return tx, nil
}

// ListTransactions returns the full ledger, newest first.
func (s *CredentialService) ListTransactions(ctx context.Context) []models.Transaction {
	return s.store.ListTransactions()
}
