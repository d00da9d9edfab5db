package models

import (
	"time"

	"github.com/google/uuid"
)

// Vote labels for vote_type.
const (
	VoteLike    = "Like"
	VoteDislike = "Dislike"
)

// Vote records a user's like/dislike of a recommended recipe. One row
// per (user, recipe); re-voting replaces the label and timestamp.
type Vote struct {
	VoteID    uuid.UUID `gorm:"column:vote_id;type:uuid;primaryKey" json:"vote_id"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_votes_user_recipe" json:"user_id"`
	RecipeSNO uint      `gorm:"column:recipe_sno;not null;uniqueIndex:idx_votes_user_recipe" json:"recipe_sno"`
	VoteType  string    `gorm:"column:vote_type;size:10;not null" json:"vote_type"`
	VotedAt   time.Time `gorm:"column:voted_at;not null" json:"voted_at"`
}

func (Vote) TableName() string {
	return "votes"
}
