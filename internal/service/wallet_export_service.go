package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/export"
)

// Export output formats.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

var walletExportHeaders = []string{"Credential ID", "Exam ID", "Score", "Transaction ID", "Issued At"}

// ExportFile is a rendered wallet export.
type ExportFile struct {
	FileName    string
	ContentType string
	Content     []byte
}

// WalletExportService renders a student's wallet as CSV or PDF.
type WalletExportService struct {
	verifier *VerificationService
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	title    string
	logger   *zap.Logger
}

// NewWalletExportService creates a new wallet export service.
func NewWalletExportService(verifier *VerificationService, title string, logger *zap.Logger) *WalletExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if title == "" {
		title = "Skills Wallet Credentials"
	}
	return &WalletExportService{
		verifier: verifier,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		title:    title,
		logger:   logger,
	}
}

// Export renders the student's credentials in the requested format. A
// student with no credentials gets NotFound, matching the wallet lookup.
func (s *WalletExportService) Export(ctx context.Context, studentID, format string) (*ExportFile, error) {
	summary := s.verifier.StudentCredentials(ctx, studentID)
	if !summary.Success {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no credentials found for student")
	}

	dataset := export.Dataset{Headers: walletExportHeaders}
	for _, c := range summary.Credentials {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Credential ID":  c.CredentialID,
			"Exam ID":        c.ExamID,
			"Score":          strconv.Itoa(c.Score),
			"Transaction ID": c.TxID,
			"Issued At":      c.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	switch format {
	case ExportFormatCSV, "":
		content, err := s.csv.Render(dataset)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportFile{
			FileName:    fmt.Sprintf("wallet_%s.csv", studentID),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	case ExportFormatPDF:
		content, err := s.pdf.Render(dataset, fmt.Sprintf("%s - %s", s.title, summary.StudentName))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportFile{
			FileName:    fmt.Sprintf("wallet_%s.pdf", studentID),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "unsupported export format")
	}
}
