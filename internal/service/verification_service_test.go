package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/skills-wallet-api/internal/models"
	"github.com/noah-isme/skills-wallet-api/internal/store"
)

func issueForStudent(t *testing.T, s *store.Store, studentID string, score int) *models.Credential {
	t.Helper()
	credential := &models.Credential{
		StudentID:   studentID,
		StudentName: "Student A",
		ExamID:      "exam_default",
		Score:       score,
	}
	_, err := s.AppendIssuance(credential)
	require.NoError(t, err)
	return credential
}

func TestVerifyByTransaction(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)
	credential := issueForStudent(t, s, "user_student_1", 95)

	result := svc.VerifyByTransaction(context.Background(), credential.TxID)
	require.True(t, result.Valid)
	assert.Equal(t, credential.CredentialID, result.Credential.CredentialID)
	assert.Equal(t, 95, result.Credential.Score)
	assert.Empty(t, result.Error)
}

func TestVerifyByTransactionUnknown(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)

	result := svc.VerifyByTransaction(context.Background(), "0xdeadbeef")
	assert.False(t, result.Valid)
	assert.Equal(t, "not found", result.Error)
	assert.Nil(t, result.Credential)
}

func TestVerifyByCredentialID(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)
	credential := issueForStudent(t, s, "user_student_1", 70)

	result := svc.VerifyByCredentialID(context.Background(), credential.CredentialID)
	require.True(t, result.Valid)
	assert.Equal(t, credential.TxID, result.Credential.TxID)
}

func TestVerifyTokenAcceptsEitherIdentifier(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)
	credential := issueForStudent(t, s, "user_student_1", 88)

	byTx := svc.VerifyToken(context.Background(), credential.TxID)
	byID := svc.VerifyToken(context.Background(), credential.CredentialID)
	assert.True(t, byTx.Valid)
	assert.True(t, byID.Valid)
	assert.Equal(t, byTx.Credential.CredentialID, byID.Credential.CredentialID)
}

func TestVerifyTokenPrefersTransactionNamespace(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)

	anchor := issueForStudent(t, s, "user_student_1", 40)

	// A credential whose id equals an existing tx id: token lookup must
	// resolve the ledger entry, not this credential.
	shadow := &models.Credential{
		CredentialID: anchor.TxID,
		StudentID:    "user_student_2",
		StudentName:  "Student B",
		ExamID:       "exam_default",
		Score:        99,
	}
	_, err := s.AppendIssuance(shadow)
	require.NoError(t, err)

	result := svc.VerifyToken(context.Background(), anchor.TxID)
	require.True(t, result.Valid)
	assert.Equal(t, anchor.CredentialID, result.Credential.CredentialID)
	assert.Equal(t, 40, result.Credential.Score)
}

func TestStudentCredentialsSummary(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)
	issueForStudent(t, s, "user_student_1", 80)
	issueForStudent(t, s, "user_student_1", 60)

	summary := svc.StudentCredentials(context.Background(), "user_student_1")
	require.True(t, summary.Success)
	assert.Equal(t, 2, summary.TotalCredentials)
	assert.Equal(t, 1, summary.PassedCredentials)
	assert.Equal(t, 70, summary.AverageScore)
	assert.Equal(t, "Student A", summary.StudentName)
	assert.Len(t, summary.Credentials, 2)
}

func TestStudentCredentialsAverageRoundsHalfUp(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)
	issueForStudent(t, s, "user_student_1", 70)
	issueForStudent(t, s, "user_student_1", 75)

	summary := svc.StudentCredentials(context.Background(), "user_student_1")
	assert.Equal(t, 73, summary.AverageScore)
	assert.Equal(t, 2, summary.PassedCredentials)
}

func TestStudentCredentialsEmptyWallet(t *testing.T) {
	s := newSeededStore(t)
	svc := NewVerificationService(s, nil)

	summary := svc.StudentCredentials(context.Background(), "nobody")
	assert.False(t, summary.Success)
	assert.Equal(t, "nobody", summary.StudentID)
	assert.NotNil(t, summary.Credentials)
	assert.Empty(t, summary.Credentials)
	assert.NotEmpty(t, summary.Error)
	assert.Zero(t, summary.TotalCredentials)
}
