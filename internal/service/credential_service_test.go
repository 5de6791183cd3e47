package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
)

func TestIssueCredential(t *testing.T) {
	s := newSeededStore(t)
	svc := NewCredentialService(s, nil, nil)

	resp, err := svc.Issue(context.Background(), IssueCredentialRequest{
		StudentID:   "user_student_1",
		StudentName: "Student A",
		ExamID:      "exam_default",
		Score:       85,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.CredentialID)
	assert.True(t, strings.HasPrefix(resp.TxID, "0x"))
	assert.Len(t, resp.TxID, 34)
	assert.Equal(t, 85, resp.Credential.Score)
	assert.Equal(t, resp.TxID, resp.Credential.TxID)

	tx, err := svc.GetTransaction(context.Background(), resp.TxID)
	require.NoError(t, err)
	assert.Equal(t, resp.CredentialID, tx.CredentialID)

	credential, err := svc.Get(context.Background(), resp.CredentialID)
	require.NoError(t, err)
	assert.Equal(t, "exam_default", credential.ExamID)
}

func TestIssueCredentialScoreOutOfRange(t *testing.T) {
	s := newSeededStore(t)
	svc := NewCredentialService(s, nil, nil)

	for _, score := range []int{-1, 101} {
		_, err := svc.Issue(context.Background(), IssueCredentialRequest{
			StudentID:   "user_student_1",
			StudentName: "Student A",
			ExamID:      "exam_default",
			Score:       score,
		})
		assert.True(t, appErrors.Is(err, appErrors.ErrValidation), "score %d", score)
	}
}

func TestIssueCredentialUnknownExam(t *testing.T) {
	s := newSeededStore(t)
	svc := NewCredentialService(s, nil, nil)

	_, err := svc.Issue(context.Background(), IssueCredentialRequest{
		StudentID:   "user_student_1",
		StudentName: "Student A",
		ExamID:      "missing",
		Score:       50,
	})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestIssueCredentialMissingFields(t *testing.T) {
	s := newSeededStore(t)
	svc := NewCredentialService(s, nil, nil)

	_, err := svc.Issue(context.Background(), IssueCredentialRequest{ExamID: "exam_default", Score: 50})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestGetUnknownCredential(t *testing.T) {
	s := newSeededStore(t)
	svc := NewCredentialService(s, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestListTransactionsNewestFirst(t *testing.T) {
	s := newSeededStore(t)
	svc := NewCredentialService(s, nil, nil)

	first, err := svc.Issue(context.Background(), IssueCredentialRequest{
		StudentID: "user_student_1", StudentName: "Student A", ExamID: "exam_default", Score: 60,
	})
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), IssueCredentialRequest{
		StudentID: "user_student_1", StudentName: "Student A", ExamID: "exam_default", Score: 90,
	})
	require.NoError(t, err)

	txs := svc.ListTransactions(context.Background())
	require.Len(t, txs, 2)
	assert.Equal(t, second.TxID, txs[0].TxID)
	assert.Equal(t, first.TxID, txs[1].TxID)
}
