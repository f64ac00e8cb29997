package v1

import (
	"net/http"
	"strconv"

	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

// NewAdminHandler registers the admin routes. The group must already carry
// bearer-token auth.
func NewAdminHandler(admin *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin.GET("/messages", handler.ListMessages)
}

// ListMessages returns stored submissions, newest first, at most 50.
func (h *AdminHandler) ListMessages(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	contacts, err := h.adminUC.ListMessages(c.Request.Context(), limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}
