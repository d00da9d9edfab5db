package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/bobfit/backend/internal/models"
)

var ErrInvalidVoteType = errors.New("vote type must be Like or Dislike")

// VoteService records per-user recipe votes with last-write-wins
// semantics on the (user, recipe) pair.
type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// CastVote records or replaces the user's vote for a recipe.
func (s *VoteService) CastVote(ctx context.Context, userID, recipeSNO uint, voteType string) (*models.Vote, error) {
	if voteType != models.VoteLike && voteType != models.VoteDislike {
		return nil, ErrInvalidVoteType
	}

	if err := s.db.WithContext(ctx).First(&models.Recipe{}, `"RCP_SNO" = ?`, recipeSNO).Error; err != nil {
		return nil, err
	}

	vote := models.Vote{
		VoteID:    uuid.New(),
		UserID:    userID,
		RecipeSNO: recipeSNO,
		VoteType:  voteType,
		VotedAt:   time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_sno"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote_type", "voted_at"}),
	}).Create(&vote).Error
	if err != nil {
		return nil, err
	}
	return &vote, nil
}

// ListVotes returns the user's votes, most recent first.
func (s *VoteService) ListVotes(ctx context.Context, userID uint) ([]*models.Vote, error) {
	var votes []models.Vote
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("voted_at DESC").
		Find(&votes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Vote, len(votes))
	for i := range votes {
		result[i] = &votes[i]
	}
	return result, nil
}
