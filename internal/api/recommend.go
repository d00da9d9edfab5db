package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobfit/backend/internal/service"
)

// RecommendHandler serves plan generation for the authenticated profile.
type RecommendHandler struct {
	recommender *service.RecommendationService
}

func NewRecommendHandler(recommender *service.RecommendationService) *RecommendHandler {
	return &RecommendHandler{recommender: recommender}
}

type recommendRequest struct {
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Request string `json:"request"`
	TriMeal bool   `json:"tri_meal"`
}

func (h *RecommendHandler) Recommend(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req recommendRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.recommender.Recommend(c.Request.Context(), userID, service.RecommendationOptions{
		Date:    req.Date,
		Mood:    req.Mood,
		Request: req.Request,
		TriMeal: req.TriMeal,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		case errors.Is(err, service.ErrNoCandidates):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No recipes match the profile's restrictions"})
		case errors.Is(err, service.ErrPlanGenerationFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Plan generation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build recommendation"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// sessionUserID reads the authenticated profile id set by the auth
// middleware.
func sessionUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return 0, false
	}
	return userID, true
}
