package handler

import (
	"net/http"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/arjun/callpilot/internal/repository"
	"github.com/gin-gonic/gin"
)

// ExpertHandler exposes experts as a simple resource collection.
type ExpertHandler struct {
	experts *repository.ExpertRepository
}

// NewExpertHandler creates a new expert handler.
func NewExpertHandler(experts *repository.ExpertRepository) *ExpertHandler {
	return &ExpertHandler{experts: experts}
}

// List handles GET /api/experts.
func (h *ExpertHandler) List(c *gin.Context) {
	experts, err := h.experts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, experts)
}

// Create handles POST /api/experts.
func (h *ExpertHandler) Create(c *gin.Context) {
	var expert domain.Expert
	if err := c.ShouldBindJSON(&expert); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.experts.Create(c.Request.Context(), &expert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expert)
}
