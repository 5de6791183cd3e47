package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/models"
	"github.com/noah-isme/skills-wallet-api/internal/service"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/response"
)

// ExamHandler handles exam authoring, lookup, generation and evaluation.
type ExamHandler struct {
	exams      *service.ExamService
	evaluation *service.EvaluationService
}

// NewExamHandler constructs an exam handler.
func NewExamHandler(exams *service.ExamService, evaluation *service.EvaluationService) *ExamHandler {
	return &ExamHandler{exams: exams, evaluation: evaluation}
}

// List returns exams newest first, optionally filtered by subject class.
func (h *ExamHandler) List(c *gin.Context) {
	filter := models.ExamFilter{SubjectClassID: c.Query("subject_class_id")}
	response.JSON(c, http.StatusOK, h.exams.List(c.Request.Context(), filter))
}

// Get returns one exam by id.
func (h *ExamHandler) Get(c *gin.Context) {
	exam, err := h.exams.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

// Create publishes a new exam.
func (h *ExamHandler) Create(c *gin.Context) {
	var req service.CreateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.exams.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exam)
}

// Generate returns a skill-based exam draft for the authoring flow.
func (h *ExamHandler) Generate(c *gin.Context) {
	var req service.GenerateExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	exam, err := h.exams.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, exam)
}

type evaluateRequest struct {
	Answers []models.Answer `json:"answers"`
}

// Evaluate scores submitted answers against the exam.
func (h *ExamHandler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.evaluation.Evaluate(c.Request.Context(), c.Param("id"), req.Answers)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
