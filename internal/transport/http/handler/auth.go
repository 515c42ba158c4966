package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/metrics"
	"github.com/worklink-app/worklink/internal/transport/http/middleware"
	"github.com/worklink-app/worklink/internal/usecase"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Account, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Logout(ctx context.Context, rawToken string) error
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword, currentToken string) error
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

type registerRequest struct {
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=8"`
	Role        string `json:"role"         binding:"required_without=InviteToken"`
	InviteToken string `json:"invite_token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// POST /auth/register
// Self-serve signups carry an explicit role; invited signups carry an
// invite token that dictates role and linked profile.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, token, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		InviteToken: req.InviteToken,
	})
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "register", "error", err)
		}
		if req.InviteToken != "" {
			metrics.InvitesRedeemedTotal.WithLabelValues("failure").Inc()
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	mode := "self"
	if req.InviteToken != "" {
		mode = "invite"
		metrics.InvitesRedeemedTotal.WithLabelValues("success").Inc()
	}
	metrics.RegistrationsTotal.WithLabelValues(mode).Inc()

	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

type loginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "login", "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// POST /auth/logout (protected)
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "logout", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /auth/session (protected)
// Echoes the account id the middleware resolved the token to.
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"account_id": middleware.AccountID(c)})
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password"     binding:"required,min=8"`
}

// POST /auth/password (protected)
// Every other session of the account is purged on success.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.authUsecase.ChangePassword(c.Request.Context(),
		middleware.AccountID(c), req.CurrentPassword, req.NewPassword, middleware.SessionToken(c))
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "change password", "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
