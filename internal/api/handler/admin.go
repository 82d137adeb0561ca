package handler

import (
	"net/http"

	"github.com/arjun/callpilot/internal/repository"
	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the admin record.
type AdminHandler struct {
	admins *repository.AdminRepository
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(admins *repository.AdminRepository) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Get handles GET /api/admin.
func (h *AdminHandler) Get(c *gin.Context) {
	admin, err := h.admins.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, admin)
}
