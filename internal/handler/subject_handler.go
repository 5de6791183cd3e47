package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/service"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/response"
)

// SubjectHandler handles subject and subject class endpoints.
type SubjectHandler struct {
	subjects *service.SubjectService
	classes  *service.ClassService
}

// NewSubjectHandler constructs a subject handler.
func NewSubjectHandler(subjects *service.SubjectService, classes *service.ClassService) *SubjectHandler {
	return &SubjectHandler{subjects: subjects, classes: classes}
}

// List returns all subjects, newest first.
func (h *SubjectHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.subjects.List(c.Request.Context()))
}

// Get returns one subject by id.
func (h *SubjectHandler) Get(c *gin.Context) {
	subject, err := h.subjects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject)
}

// Create adds a new subject.
func (h *SubjectHandler) Create(c *gin.Context) {
	var req service.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	subject, err := h.subjects.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// ListClasses returns the classes of one subject.
func (h *SubjectHandler) ListClasses(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classes)
}

// CreateClass adds a class under a subject.
func (h *SubjectHandler) CreateClass(c *gin.Context) {
	var req service.CreateSubjectClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	class, err := h.classes.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}
