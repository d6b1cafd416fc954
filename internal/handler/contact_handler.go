package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/internal/domain"
	"blog-platform/internal/service"
)

// ContactHandler handles the contact form.
type ContactHandler struct {
	contactService service.ContactServiceInterface
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactServiceInterface) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Send handles POST /api/v1/contact
func (h *ContactHandler) Send(c *gin.Context) {
	var msg domain.ContactMessage
	if !bindJSON(c, &msg) {
		return
	}

	if err := h.contactService.Send(c.Request.Context(), msg); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "sent"})
}
