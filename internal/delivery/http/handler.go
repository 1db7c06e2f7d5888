package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/domain"
	"github.com/rudradcruze/GTRLTD-samsung-phone-advisor/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	advisor *usecase.AdvisorService
	store   domain.PhoneRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(advisor *usecase.AdvisorService, store domain.PhoneRepository) *Handler {
	return &Handler{advisor: advisor, store: store}
}

// AskRequest is the body of POST /api/v1/ask
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse is the reply of POST /api/v1/ask
type AskResponse struct {
	Answer string `json:"answer"`
}

// APIInfo describes the available endpoints
func (h *Handler) APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Samsung Phone Advisor API",
		"version":     "1.0.0",
		"description": "Ask natural-language questions about Samsung phones",
		"endpoints": gin.H{
			"/api/v1/ask":          "POST - Ask a question about Samsung phones",
			"/api/v1/phones":       "GET - List all phones in the catalog",
			"/api/v1/phones/:name": "GET - Get specific phone details",
			"/health":              "GET - Check API health status",
		},
	})
}

// AskQuestion answers a free-text question about the catalog
func (h *Handler) AskQuestion(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := h.advisor.Answer(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuestion) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error processing your question"})
		return
	}

	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}

// ListPhones returns every phone in the catalog
func (h *Handler) ListPhones(c *gin.Context) {
	phones, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list phones"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(phones), "phones": phones})
}

// GetPhoneByName returns one phone looked up by (possibly partial) name
func (h *Handler) GetPhoneByName(c *gin.Context) {
	name := c.Param("name")

	phone, err := h.store.GetByName(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, domain.ErrPhoneNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Phone '" + name + "' not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up phone"})
		return
	}

	c.JSON(http.StatusOK, phone)
}

// HealthCheck returns the health status of the API and its catalog store
func (h *Handler) HealthCheck(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"store":  "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"store":       "connected",
		"phone_count": count,
	})
}
