package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/arjun/callpilot/internal/service"
	"github.com/gin-gonic/gin"
)

// ProviderAdmin is the pass-through slice of the provider client used for
// assistant and phone-number management.
type ProviderAdmin interface {
	CreateAssistant(ctx context.Context, payload interface{}) (json.RawMessage, error)
	ListAssistants(ctx context.Context) (json.RawMessage, error)
	ListPhoneNumbers(ctx context.Context) (json.RawMessage, error)
	UpdatePhoneNumber(ctx context.Context, id, assistantID string) (json.RawMessage, error)
}

// CallHandler handles call placement, transcripts, and provider pass-through
// endpoints.
type CallHandler struct {
	orch     *service.Orchestrator
	provider ProviderAdmin
}

// NewCallHandler creates a new call handler.
func NewCallHandler(orch *service.Orchestrator, provider ProviderAdmin) *CallHandler {
	return &CallHandler{
		orch:     orch,
		provider: provider,
	}
}

// PlaceCall handles POST /api/vapi/call.
func (h *CallHandler) PlaceCall(c *gin.Context) {
	var req service.PlaceCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	call, err := h.orch.PlaceCall(c.Request.Context(), &req)
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": call.Raw})
}

// GetCallDetails handles GET /api/vapi/call/:callId.
func (h *CallHandler) GetCallDetails(c *gin.Context) {
	call, err := h.orch.GetCallDetails(c.Request.Context(), c.Param("callId"))
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": call.Raw})
}

// storeTranscriptRequest is the body of POST /api/vapi/transcribe.
type storeTranscriptRequest struct {
	CallID          string `json:"call_id"`
	ScheduledCallID string `json:"scheduled_call_id"`
}

// StoreTranscript handles POST /api/vapi/transcribe.
func (h *CallHandler) StoreTranscript(c *gin.Context) {
	var req storeTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	call, err := h.orch.StoreTranscript(c.Request.Context(), req.CallID, req.ScheduledCallID)
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transcript stored",
		"data":    call.Raw,
	})
}

// ListTranscripts handles GET /api/vapi/transcripts?admin_id=.
func (h *CallHandler) ListTranscripts(c *gin.Context) {
	transcripts, err := h.orch.ListTranscripts(c.Request.Context(), c.Query("admin_id"))
	if err != nil {
		if service.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": transcripts})
}

// CreateAssistant handles POST /api/vapi/assistants.
func (h *CallHandler) CreateAssistant(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	data, err := h.provider.CreateAssistant(c.Request.Context(), payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// ListAssistants handles GET /api/vapi/assistants.
func (h *CallHandler) ListAssistants(c *gin.Context) {
	data, err := h.provider.ListAssistants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// ListPhoneNumbers handles GET /api/vapi/phone-numbers.
func (h *CallHandler) ListPhoneNumbers(c *gin.Context) {
	data, err := h.provider.ListPhoneNumbers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// updatePhoneNumberRequest is the body of PATCH /api/vapi/phone-numbers/:id.
type updatePhoneNumberRequest struct {
	AssistantID string `json:"assistantId"`
}

// UpdatePhoneNumber handles PATCH /api/vapi/phone-numbers/:id.
func (h *CallHandler) UpdatePhoneNumber(c *gin.Context) {
	var req updatePhoneNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body: " + err.Error(),
		})
		return
	}

	data, err := h.provider.UpdatePhoneNumber(c.Request.Context(), c.Param("id"), req.AssistantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   service.ProviderErrorBody(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
