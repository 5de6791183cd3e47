package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

type verificationStore interface {
	FindCredentialByID(id string) (*models.Credential, error)
	FindTransactionByTxID(txID string) (*models.Transaction, error)
	ListCredentialsByStudent(studentID string) []models.Credential
}

// VerificationService provides read-only credential lookups for verifiers.
// No operation here mutates state.
type VerificationService struct {
	store  verificationStore
	logger *zap.Logger
}

// NewVerificationService creates a new verification service.
func NewVerificationService(st verificationStore, logger *zap.Logger) *VerificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerificationService{store: st, logger: logger}
}

// VerifyByTransaction resolves a ledger transaction id to its credential.
func (s *VerificationService) VerifyByTransaction(ctx context.Context, txID string) models.VerificationResult {
	tx, err := s.store.FindTransactionByTxID(txID)
	if err != nil {
		return models.VerificationResult{Valid: false, Error: "not found"}
	}
	credential, err := s.store.FindCredentialByID(tx.CredentialID)
	if err != nil {
		// Issuance writes both records atomically; a dangling transaction
		// would mean the ledger invariant is broken.
		s.logger.Error("transaction without credential", zap.String("tx_id", txID))
		return models.VerificationResult{Valid: false, Error: "not found"}
	}
	return models.VerificationResult{Valid: true, Credential: credential}
}

// VerifyByCredentialID resolves a credential id directly.
func (s *VerificationService) VerifyByCredentialID(ctx context.Context, credentialID string) models.VerificationResult {
	credential, err := s.store.FindCredentialByID(credentialID)
	if err != nil {
		return models.VerificationResult{Valid: false, Error: "not found"}
	}
	return models.VerificationResult{Valid: true, Credential: credential}
}

// VerifyToken accepts either a transaction id or a credential id from a
// single search box. Transaction lookup takes priority; the credential id
// namespace is only consulted when no ledger entry matches.
func (s *VerificationService) VerifyToken(ctx context.Context, tokenID string) models.VerificationResult {
	if result := s.VerifyByTransaction(ctx, tokenID); result.Valid {
		return result
	}
	return s.VerifyByCredentialID(ctx, tokenID)
}

// StudentCredentials aggregates a student's wallet: totals, passed count
// and the rounded mean score. A student with no credentials yields
// success=false, never an error.
func (s *VerificationService) StudentCredentials(ctx context.Context, studentID string) models.WalletSummary {
	credentials := s.store.ListCredentialsByStudent(studentID)
	if len(credentials) == 0 {
		return models.WalletSummary{
			Success:     false,
			StudentID:   studentID,
			Credentials: []models.Credential{},
			Error:       "no credentials found for student",
		}
	}

	sum := 0
	passed := 0
	for _, c := range credentials {
		sum += c.Score
		if c.Score >= PassingScore {
			passed++
		}
	}

	return models.WalletSummary{
		Success:           true,
		StudentID:         studentID,
		StudentName:       credentials[0].StudentName,
		Credentials:       credentials,
		TotalCredentials:  len(credentials),
		PassedCredentials: passed,
		AverageScore:      int(math.Round(float64(sum) / float64(len(credentials)))),
	}
}
