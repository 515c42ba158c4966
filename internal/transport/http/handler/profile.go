package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/worklink-app/worklink/internal/domain"
	"github.com/worklink-app/worklink/internal/transport/http/middleware"
	"github.com/worklink-app/worklink/internal/usecase"
)

type profileUsecaser interface {
	CreateProfile(ctx context.Context, input usecase.CreateProfileInput) (*domain.Profile, error)
	GetProfile(ctx context.Context, profileID, requesterAccountID string) (*domain.Profile, usecase.Visibility, error)
}

type ProfileHandler struct {
	profileUsecase profileUsecaser
	logger         *slog.Logger
}

func NewProfileHandler(profileUsecase profileUsecaser, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		logger:         logger.With("component", "profile_handler"),
	}
}

type createProfileRequest struct {
	Name      string     `json:"name"    binding:"required"`
	Surname   string     `json:"surname"`
	Bio       string     `json:"bio"`
	Website   string     `json:"website" binding:"omitempty,url"`
	IsCompany bool       `json:"is_company"`
	Address   string     `json:"address"`
	LegalID   string     `json:"legal_id"`
	BirthDate *time.Time `json:"birth_date"`
	Sector    string     `json:"sector"`
}

// profileResponse carries every field the requester's visibility tier
// allows; the rest stay omitted. Public fields are always present.
type profileResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Bio       string `json:"bio"`
	Website   string `json:"website"`
	IsCompany bool   `json:"is_company"`

	Address   *string    `json:"address,omitempty"`
	LegalID   *string    `json:"legal_id,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Sector    *string    `json:"sector,omitempty"`
	CVPath    *string    `json:"cv_path,omitempty"`
}

// POST /profiles (protected)
// One-shot: an account that already has a profile gets 409.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileUsecase.CreateProfile(c.Request.Context(), usecase.CreateProfileInput{
		AccountID: middleware.AccountID(c),
		Name:      req.Name,
		Surname:   req.Surname,
		Bio:       req.Bio,
		Website:   req.Website,
		IsCompany: req.IsCompany,
		Address:   req.Address,
		LegalID:   req.LegalID,
		BirthDate: req.BirthDate,
		Sector:    req.Sector,
	})
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "create profile", "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusCreated, projectProfile(profile, usecase.VisibilityFull))
}

// GET /profiles/:id (protected)
// Response shape depends on the requester's visibility tier.
func (h *ProfileHandler) GetByID(c *gin.Context) {
	profile, vis, err := h.profileUsecase.GetProfile(c.Request.Context(), c.Param("id"), middleware.AccountID(c))
	if err != nil {
		status, msg := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.ErrorContext(c.Request.Context(), "get profile", "profile_id", c.Param("id"), "error", err)
		}
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.JSON(http.StatusOK, projectProfile(profile, vis))
}

func projectProfile(p *domain.Profile, vis usecase.Visibility) profileResponse {
	resp := profileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Surname:   p.Surname,
		Bio:       p.Bio,
		Website:   p.Website,
		IsCompany: p.IsCompany,
	}

	if vis >= usecase.VisibilityStaff {
		resp.Address = &p.Address
		resp.LegalID = &p.LegalID
		resp.BirthDate = p.BirthDate
		resp.Sector = &p.Sector
		resp.CVPath = &p.CVPath
	}
	return resp
}
