package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/service"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/response"
)

// WalletHandler serves a student's credential wallet.
type WalletHandler struct {
	verification *service.VerificationService
	exporter     *service.WalletExportService
}

// NewWalletHandler constructs a wallet handler.
func NewWalletHandler(verification *service.VerificationService, exporter *service.WalletExportService) *WalletHandler {
	return &WalletHandler{verification: verification, exporter: exporter}
}

// Get returns the wallet summary for one student.
func (h *WalletHandler) Get(c *gin.Context) {
	summary := h.verification.StudentCredentials(c.Request.Context(), c.Param("studentId"))
	response.JSON(c, http.StatusOK, summary)
}

// Export downloads the wallet as CSV or PDF.
func (h *WalletHandler) Export(c *gin.Context) {
	if h.exporter == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "wallet export is disabled"))
		return
	}
	file, err := h.exporter.Export(c.Request.Context(), c.Param("studentId"), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+file.FileName)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
