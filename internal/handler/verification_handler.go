package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/service"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/response"
)

// VerificationHandler handles verifier-facing lookups.
type VerificationHandler struct {
	verification *service.VerificationService
	metrics      *service.MetricsService
}

// NewVerificationHandler constructs a verification handler.
func NewVerificationHandler(verification *service.VerificationService, metrics *service.MetricsService) *VerificationHandler {
	return &VerificationHandler{verification: verification, metrics: metrics}
}

type verifyTokenRequest struct {
	TokenID string `json:"token_id" binding:"required"`
}

type verifyCredentialRequest struct {
	CredentialID string `json:"credential_id" binding:"required"`
}

type verifyTransactionRequest struct {
	TxID string `json:"tx_id" binding:"required"`
}

// VerifyToken accepts either a transaction id or a credential id.
// Transaction lookup takes priority.
func (h *VerificationHandler) VerifyToken(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result := h.verification.VerifyToken(c.Request.Context(), req.TokenID)
	h.metrics.RecordVerification(result.Valid)
	response.JSON(c, http.StatusOK, result)
}

// VerifyCredential resolves a credential id.
func (h *VerificationHandler) VerifyCredential(c *gin.Context) {
	var req verifyCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result := h.verification.VerifyByCredentialID(c.Request.Context(), req.CredentialID)
	h.metrics.RecordVerification(result.Valid)
	response.JSON(c, http.StatusOK, result)
}

// VerifyTransaction resolves a ledger transaction id.
func (h *VerificationHandler) VerifyTransaction(c *gin.Context) {
	var req verifyTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result := h.verification.VerifyByTransaction(c.Request.Context(), req.TxID)
	h.metrics.RecordVerification(result.Valid)
	response.JSON(c, http.StatusOK, result)
}
