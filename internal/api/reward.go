package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bobfit/backend/internal/service"
)

// RewardHandler serves the 7-day adherence checklist.
type RewardHandler struct {
	rewards *service.RewardService
}

func NewRewardHandler(rewards *service.RewardService) *RewardHandler {
	return &RewardHandler{rewards: rewards}
}

func (h *RewardHandler) GetReward(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	reward, err := h.rewards.GetReward(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reward state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reward": reward,
		"earned": h.rewards.Earned(reward),
	})
}

type rewardRequest struct {
	CheckedCount *int `json:"checked_count" binding:"required"`
}

func (h *RewardHandler) SetReward(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	var req rewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, err := h.rewards.SetCheckedCount(c.Request.Context(), userID, *req.CheckedCount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCheckedCount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store reward state"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reward": reward,
		"earned": h.rewards.Earned(reward),
	})
}
