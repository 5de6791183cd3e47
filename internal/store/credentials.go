package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/skills-wallet-api/internal/models"
)

// AppendIssuance mints ids for the credential, records it together with its
// ledger transaction, and returns the transaction. Both records are written
// under one lock acquisition: no reader can observe a credential without
// its transaction.
func (s *Store) AppendIssuance(credential *models.Credential) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if credential.CredentialID == "" {
		credential.CredentialID = uuid.NewString()
	}
	credential.TxID = s.newTxID()
	if credential.Timestamp.IsZero() {
		credential.Timestamp = time.Now().UTC()
	}

	tx := models.Transaction{
		TxID:         credential.TxID,
		CredentialID: credential.CredentialID,
		StudentID:    credential.StudentID,
		StudentName:  credential.StudentName,
		ExamID:       credential.ExamID,
		Score:        credential.Score,
		Timestamp:    credential.Timestamp,
	}

	s.credentials[credential.CredentialID] = *credential
	s.credentialOrder = append(s.credentialOrder, credential.CredentialID)
	s.transactions[tx.TxID] = tx
	s.txOrder = append(s.txOrder, tx.TxID)
	s.credentialsByStudent[credential.StudentID] = append(s.credentialsByStudent[credential.StudentID], credential.CredentialID)

	return &tx, nil
}

// FindCredentialByID returns a credential copy by id.
func (s *Store) FindCredentialByID(id string) (*models.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	credential, ok := s.credentials[id]
	if !ok {
		return nil, ErrNoRecord
	}
	return &credential, nil
}

// FindTransactionByTxID returns a ledger entry copy by transaction id.
func (s *Store) FindTransactionByTxID(txID string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.transactions[txID]
	if !ok {
		return nil, ErrNoRecord
	}
	return &tx, nil
}

// ListTransactions returns the full ledger, most recent first.
func (s *Store) ListTransactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, 0, len(s.txOrder))
	for i := len(s.txOrder) - 1; i >= 0; i-- {
		out = append(out, s.transactions[s.txOrder[i]])
	}
	return out
}

// ListCredentialsByStudent returns a student's credentials, newest first.
func (s *Store) ListCredentialsByStudent(studentID string) []models.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.credentialsByStudent[studentID]
	out := make([]models.Credential, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		out = append(out, s.credentials[ids[i]])
	}
	return out
}
