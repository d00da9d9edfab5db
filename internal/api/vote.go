package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/service"
)

// VoteHandler serves per-recipe like/dislike votes.
type VoteHandler struct {
	votes *service.VoteService
}

func NewVoteHandler(votes *service.VoteService) *VoteHandler {
	return &VoteHandler{votes: votes}
}

type voteRequest struct {
	VoteType string `json:"vote_type" binding:"required"`
}

func (h *VoteHandler) CastVote(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}
	sno, ok := recipeSNO(c)
	if !ok {
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vote, err := h.votes.CastVote(c.Request.Context(), userID, sno, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidVoteType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record vote"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"vote": vote})
}

func (h *VoteHandler) ListVotes(c *gin.Context) {
	userID, ok := sessionUserID(c)
	if !ok {
		return
	}

	votes, err := h.votes.ListVotes(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list votes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"votes": votes})
}
