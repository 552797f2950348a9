package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/1conorsteward/Appointment-Now/internal/config"
	"github.com/1conorsteward/Appointment-Now/internal/httperr"
	"github.com/1conorsteward/Appointment-Now/internal/middleware"
	"github.com/1conorsteward/Appointment-Now/internal/models"
	"github.com/1conorsteward/Appointment-Now/internal/session"
	ucAuth "github.com/1conorsteward/Appointment-Now/internal/usecase/auth"
	"github.com/1conorsteward/Appointment-Now/internal/validators"
)

type AuthHandler struct {
	registerUC      *ucAuth.Register
	authenticateUC  *ucAuth.Authenticate
	deleteAccountUC *ucAuth.DeleteAccount
	sessions        *session.Store
	config          *config.Config
}

func NewAuthHandler(
	registerUC *ucAuth.Register,
	authenticateUC *ucAuth.Authenticate,
	deleteAccountUC *ucAuth.DeleteAccount,
	sessions *session.Store,
	cfg *config.Config,
) *AuthHandler {
	return &AuthHandler{
		registerUC:      registerUC,
		authenticateUC:  authenticateUC,
		deleteAccountUC: deleteAccountUC,
		sessions:        sessions,
		config:          cfg,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	SMSOptIn bool   `json:"sms_opt_in"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validators.IsEmailValid(req.Email) {
		httperr.BadRequest(c, "invalid_email", "The email address does not look valid.")
		return
	}

	user, err := h.registerUC.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		SMSOptIn: req.SMSOptIn,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeDuplicateEmail) {
			httperr.Conflict(c, httperr.CodeDuplicateEmail, "This email is already registered.")
			return
		}
		httperr.Internal(c, "failed_to_register", "Could not create the account.")
		return
	}

	token, err := h.issueToken(c, user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not start a session.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"sms_opt_in": user.SMSOptIn,
		},
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.authenticateUC.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeInvalidCredentials) {
			httperr.Unauthorized(c, httperr.CodeInvalidCredentials, "Email or password is incorrect.")
			return
		}
		httperr.Internal(c, "internal_error", "Could not log in.")
		return
	}

	token, err := h.issueToken(c, user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Could not start a session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"email":      user.Email,
			"sms_opt_in": user.SMSOptIn,
		},
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	jti := c.MustGet(middleware.ContextSessionID).(string)

	if err := h.sessions.Delete(c.Request.Context(), jti, userID); err != nil {
		httperr.Internal(c, "failed_to_logout", "Could not end the session.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	ok, err := h.deleteAccountUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "failed_to_delete_account", "Could not delete the account.")
		return
	}
	if !ok {
		httperr.NotFound(c, httperr.CodeNotFound, "Account not found.")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) issueToken(c *gin.Context, user *models.User) (string, error) {
	jti := uuid.New().String()

	claims := jwt.MapClaims{
		"sub": user.ID,
		"jti": jti,
		"exp": time.Now().Add(h.config.TokenTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.config.JWTSecret))
	if err != nil {
		return "", err
	}

	if err := h.sessions.Create(c.Request.Context(), jti, user.ID); err != nil {
		return "", err
	}

	return signed, nil
}
