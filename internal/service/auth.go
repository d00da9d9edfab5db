package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/middleware"
	"github.com/bobfit/backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// SessionService issues and validates profile-session tokens. Profiles
// carry no credentials; selecting a profile opens a session bound to it.
type SessionService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewSessionService(db *gorm.DB, jwtSecret string) *SessionService {
	return &SessionService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// OpenSession returns a signed token for the given profile.
func (s *SessionService) OpenSession(userID uint) (string, error) {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	claims := jwt.MapClaims{
		"user_id":  float64(user.UserID),
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *SessionService) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["user_id"].(float64)
		if !ok {
			return nil, errors.New("invalid token claims")
		}
		username, _ := claims["username"].(string)

		return &middleware.TokenClaims{
			UserID:   uint(userID),
			Username: username,
		}, nil
	}

	return nil, errors.New("invalid token")
}
