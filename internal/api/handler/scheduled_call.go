package handler

import (
	"net/http"

	"github.com/arjun/callpilot/internal/domain"
	"github.com/arjun/callpilot/internal/repository"
	"github.com/gin-gonic/gin"
)

// ScheduledCallHandler exposes scheduled calls as a simple resource collection.
type ScheduledCallHandler struct {
	calls *repository.ScheduledCallRepository
}

// NewScheduledCallHandler creates a new scheduled-call handler.
func NewScheduledCallHandler(calls *repository.ScheduledCallRepository) *ScheduledCallHandler {
	return &ScheduledCallHandler{calls: calls}
}

// List handles GET /api/scheduled-calls.
func (h *ScheduledCallHandler) List(c *gin.Context) {
	calls, err := h.calls.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, calls)
}

// Create handles POST /api/scheduled-calls.
func (h *ScheduledCallHandler) Create(c *gin.Context) {
	var call domain.ScheduledCall
	if err := c.ShouldBindJSON(&call); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.calls.Create(c.Request.Context(), &call); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, call)
}
