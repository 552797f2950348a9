package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/1conorsteward/Appointment-Now/internal/domain/credential"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/httpresp"
	"github.com/1conorsteward/Appointment-Now/internal/middleware"
)

type MeHandler struct {
	users domain.Repository
}

func NewMeHandler(users domain.Repository) *MeHandler {
	return &MeHandler{users: users}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "internal_error", "Could not load the account.")
		return
	}
	if user == nil {
		httperr.NotFound(c, httperr.CodeNotFound, "Account not found.")
		return
	}

	httpresp.OK(c, gin.H{
		"id":         user.ID,
		"email":      user.Email,
		"sms_opt_in": user.SMSOptIn,
		"created_at": user.CreatedAt,
	})
}
