package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/metrics"
	"github.com/worklink-app/worklink/internal/transport/http/middleware"
	"github.com/worklink-app/worklink/internal/usecase"
)

type inviteUsecaser interface {
	CreateInvite(ctx context.Context, input usecase.CreateInviteInput) (string, *domain.Invite, error)
}

type InviteHandler struct {
	inviteUsecase inviteUsecaser
	logger        *slog.Logger
}

func NewInviteHandler(inviteUsecase inviteUsecaser, logger *slog.Logger) *InviteHandler {
	return &InviteHandler{
		inviteUsecase: inviteUsecase,
		logger:        logger.With("component", "invite_handler"),
	}
}

type createInviteRequest struct {
	Duration string `json:"duration" binding:"required"`
	Role     string `json:"role"     binding:"required,oneof=company-manager company-employee"`
	Email    string `json:"email"    binding:"omitempty,email"`
}

type createInviteResponse struct {
	InviteToken string    `json:"invite_token"`
	Role        string    `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// POST /invites (protected, company-manager only)
func (h *InviteHandler) Create(c *gin.Context) {
	var req createInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	raw, invite, err := h.inviteUsecase.CreateInvite(c.Request.Context(), usecase.CreateInviteInput{
		IssuerAccountID: middleware.AccountID(c),
		Duration:        req.Duration,
		Role:            req.Role,
		RecipientEmail:  req.Email,
	})
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "create invite", "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	metrics.InvitesIssuedTotal.Inc()
	c.JSON(http.StatusCreated, createInviteResponse{
		InviteToken: raw,
		Role:        string(invite.Role),
		ExpiresAt:   invite.ExpiresAt,
	})
}
