package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/service"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/response"
)

// CredentialHandler handles issuance and ledger endpoints.
type CredentialHandler struct {
	credentials *service.CredentialService
	metrics     *service.MetricsService
}

// NewCredentialHandler constructs a credential handler.
func NewCredentialHandler(credentials *service.CredentialService, metrics *service.MetricsService) *CredentialHandler {
	return &CredentialHandler{credentials: credentials, metrics: metrics}
}

// Issue mints a credential and its ledger transaction.
func (h *CredentialHandler) Issue(c *gin.Context) {
	var req service.IssueCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.credentials.Issue(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordIssuance()
	response.Created(c, result)
}

// Get returns one credential by id.
func (h *CredentialHandler) Get(c *gin.Context) {
	credential, err := h.credentials.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, credential)
}

// ListTransactions returns the full ledger, newest first.
func (h *CredentialHandler) ListTransactions(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.credentials.ListTransactions(c.Request.Context()))
}

// GetTransaction returns one ledger entry by transaction id.
func (h *CredentialHandler) GetTransaction(c *gin.Context) {
	tx, err := h.credentials.GetTransaction(c.Request.Context(), c.Param("txId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tx)
}
