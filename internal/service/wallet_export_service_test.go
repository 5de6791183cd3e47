package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
)

func newWalletExportService(t *testing.T) (*WalletExportService, *VerificationService) {
	t.Helper()
	s := newSeededStore(t)
	issueForStudent(t, s, "user_student_1", 85)
	issueForStudent(t, s, "user_student_1", 55)
	verifier := NewVerificationService(s, nil)
	return NewWalletExportService(verifier, "", nil), verifier
}

func TestExportWalletCSV(t *testing.T) {
	svc, _ := newWalletExportService(t)

	file, err := svc.Export(context.Background(), "user_student_1", ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "wallet_user_student_1.csv", file.FileName)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimSpace(string(file.Content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Credential ID,Exam ID,Score,Transaction ID,Issued At", strings.TrimSpace(lines[0]))
	// Newest credential first, matching the wallet listing.
	assert.Contains(t, lines[1], ",55,")
	assert.Contains(t, lines[2], ",85,")
}

func TestExportWalletDefaultsToCSV(t *testing.T) {
	svc, _ := newWalletExportService(t)

	file, err := svc.Export(context.Background(), "user_student_1", "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", file.ContentType)
}

func TestExportWalletPDF(t *testing.T) {
	svc, _ := newWalletExportService(t)

	file, err := svc.Export(context.Background(), "user_student_1", ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "wallet_user_student_1.pdf", file.FileName)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
}

func TestExportWalletUnsupportedFormat(t *testing.T) {
	svc, _ := newWalletExportService(t)

	_, err := svc.Export(context.Background(), "user_student_1", "xlsx")
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))
}

func TestExportWalletEmpty(t *testing.T) {
	svc, _ := newWalletExportService(t)

	_, err := svc.Export(context.Background(), "nobody", ExportFormatCSV)
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}
