package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact route (public, no auth required).
// submissionLimit is the contact-specific rate-limit window, applied on top of
// the global one.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, submissionLimit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", submissionLimit, handler.SubmitContact)
}

// SubmitContact accepts a contact-form submission. The originating client
// address is captured here, never taken from the payload.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("invalid request body"))
		return
	}

	completedAt, err := h.contactUC.Submit(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		c.Error(err)
		return
	}

	response.Message(c, http.StatusOK, "Message sent successfully", completedAt)
}
