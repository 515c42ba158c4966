package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/transport/http/middleware"
)

type authzUsecaser interface {
	AccountInfo(ctx context.Context, accountID string) (*domain.Account, error)
	IsCompanyAccount(ctx context.Context, accountID string) (bool, error)
}

type AccountHandler struct {
	authz  authzUsecaser
	logger *slog.Logger
}

func NewAccountHandler(authz authzUsecaser, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		authz:  authz,
		logger: logger.With("component", "account_handler"),
	}
}

type accountResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	ProfileID         *string   `json:"profile_id"`
	Verified          bool      `json:"verified"`
	IsCompany         bool      `json:"is_company"`
	PasswordChangedAt time.Time `json:"password_changed_at"`
	CreatedAt         time.Time `json:"created_at"`
}

// GET /accounts/me (protected)
func (h *AccountHandler) Me(c *gin.Context) {
	accountID := middleware.AccountID(c)

	account, err := h.authz.AccountInfo(c.Request.Context(), accountID)
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "account info", "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	isCompany, err := h.authz.IsCompanyAccount(c.Request.Context(), accountID)
	if err != nil {
		h.logger.ErrorContext(c.Request.Context(), "company check", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, accountResponse{
		ID:                account.ID,
		Email:             account.Email,
		Role:              string(account.Role),
		ProfileID:         account.ProfileID,
		Verified:          account.Verified,
		IsCompany:         isCompany,
		PasswordChangedAt: account.PasswordChangedAt,
		CreatedAt:         account.CreatedAt,
	})
}
