// Package api holds the HTTP handlers. Handlers translate between the
// JSON surface and the service layer and own no business logic.
package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bobfit/backend/internal/models"
	"github.com/bobfit/backend/internal/service"
)

// ProfileHandler serves profile registration, listing and sessions.
type ProfileHandler struct {
	profiles *service.ProfileService
	sessions *service.SessionService
}

func NewProfileHandler(profiles *service.ProfileService, sessions *service.SessionService) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		sessions: sessions,
	}
}

type registerRequest struct {
	Username              string `json:"username" binding:"required"`
	Preferences           string `json:"preferences"`
	RestrictionsAllergies string `json:"restrictions_allergies"`
	RestrictionsOther     string `json:"restrictions_other"`
	Goals                 string `json:"goals"`
	Budget                int    `json:"budget"`
}

func (h *ProfileHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Budget < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget must not be negative"})
		return
	}

	user, err := h.profiles.Register(c.Request.Context(), &models.User{
		Username:              req.Username,
		Preferences:           req.Preferences,
		RestrictionsAllergies: req.RestrictionsAllergies,
		RestrictionsOther:     req.RestrictionsOther,
		Goals:                 req.Goals,
		Budget:                req.Budget,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register profile"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	users, err := h.profiles.ListProfiles(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list profiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.profiles.GetProfile(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

type sessionRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// OpenSession issues a token for a selected profile. Profiles carry no
// credentials; this mirrors the demo's profile-picker login.
func (h *ProfileHandler) OpenSession(c *gin.Context) {
	var req sessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.sessions.OpenSession(req.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
