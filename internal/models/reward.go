package models

import (
	"time"

	"github.com/google/uuid"
)

// RewardDays is the length of the habit-completion streak.
const RewardDays = 7

// Reward tracks a user's 7-day habit-completion progress. One row per
// user; updates replace the count (latest write wins).
type Reward struct {
	RewardID     uuid.UUID `gorm:"column:reward_id;type:uuid;primaryKey" json:"reward_id"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex" json:"user_id"`
	CheckedCount int       `gorm:"column:checked_count;not null;default:0" json:"checked_count"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Reward) TableName() string {
	return "rewards"
}
