package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/models"
)

// ProfileService handles user profile operations
type ProfileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// Register creates a profile. Blank free-text fields are stored as the
// catalog's "none" marker so downstream parsing sees a uniform value.
func (s *ProfileService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	user.Preferences = orNone(user.Preferences)
	user.RestrictionsAllergies = orNone(user.RestrictionsAllergies)
	user.RestrictionsOther = orNone(user.RestrictionsOther)
	user.Goals = orNone(user.Goals)

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetProfile retrieves a profile by id
func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListProfiles lists all profiles ordered by id
func (s *ProfileService) ListProfiles(ctx context.Context) ([]*models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("user_id").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]*models.User, len(users))
	for i := range users {
		result[i] = &users[i]
	}
	return result, nil
}

func orNone(value string) string {
	if value == "" {
		return models.None
	}
	return value
}
