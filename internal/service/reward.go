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

var ErrInvalidCheckedCount = errors.New("checked count must be between 0 and 7")

// RewardService tracks the 7-day plan-adherence checklist per user.
// Completing all seven days earns the discount coupon.
type RewardService struct {
	db *gorm.DB
}

func NewRewardService(db *gorm.DB) *RewardService {
	return &RewardService{db: db}
}

// GetReward returns the user's checklist state, zero-valued if the user
// has never checked a day.
func (s *RewardService) GetReward(ctx context.Context, userID uint) (*models.Reward, error) {
	var reward models.Reward
	err := s.db.WithContext(ctx).First(&reward, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Reward{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// SetCheckedCount stores the user's current checklist progress with
// last-write-wins semantics on the user row.
func (s *RewardService) SetCheckedCount(ctx context.Context, userID uint, checkedCount int) (*models.Reward, error) {
	if checkedCount < 0 || checkedCount > models.RewardDays {
		return nil, ErrInvalidCheckedCount
	}

	reward := models.Reward{
		RewardID:     uuid.New(),
		UserID:       userID,
		CheckedCount: checkedCount,
		UpdatedAt:    time.Now(),
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"checked_count", "updated_at"}),
	}).Create(&reward).Error
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// Earned reports whether the checklist is complete.
func (s *RewardService) Earned(reward *models.Reward) bool {
	return reward.CheckedCount == models.RewardDays
}
