package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/filter"
	"github.com/bobfit/backend/internal/models"
	"github.com/bobfit/backend/internal/rank"
	"github.com/bobfit/backend/internal/restriction"
)

var ErrNoCandidates = errors.New("no recipes survive the profile's restrictions")

// Recommendation is the result of one recommendation run.
type Recommendation struct {
	PlanText     string          `json:"plan_text"`
	Candidates   []models.Recipe `json:"candidates"`
	Restrictions []string        `json:"restrictions"`
}

// RecommendationOptions carries per-request situational context.
type RecommendationOptions struct {
	Date    string
	Mood    string
	Request string
	TriMeal bool
}

// RecommendationService runs the full pipeline: expand the profile's
// restrictions, filter the catalog, rank the survivors against the
// profile text, then request a formatted plan for the top candidates.
type RecommendationService struct {
	db       *gorm.DB
	expander *restriction.Expander
	ranker   *rank.Ranker
	planner  *PlannerService
}

// NewRecommendationService creates a new RecommendationService instance
func NewRecommendationService(db *gorm.DB, expander *restriction.Expander, ranker *rank.Ranker, planner *PlannerService) *RecommendationService {
	return &RecommendationService{
		db:       db,
		expander: expander,
		ranker:   ranker,
		planner:  planner,
	}
}

// Recommend produces a plan for the given profile.
func (s *RecommendationService) Recommend(ctx context.Context, userID uint, opts RecommendationOptions) (*Recommendation, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	forbidden := s.expander.Expand(&user)

	var catalog []models.Recipe
	if err := s.db.WithContext(ctx).Order(`"RCP_SNO"`).Find(&catalog).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}

	safe := filter.Apply(catalog, &user, forbidden)
	if len(safe) == 0 {
		return nil, ErrNoCandidates
	}
	log.Printf("recommend: user=%d forbidden=%d catalog=%d safe=%d", user.UserID, len(forbidden), len(catalog), len(safe))

	query := rank.QueryText(user.Preferences, user.Goals, situationalKeywords(opts))
	candidates := s.ranker.Rank(safe, query)

	planText, err := s.planner.RequestPlan(ctx, &PlanRequest{
		User:       &user,
		Candidates: candidates,
		Date:       opts.Date,
		Mood:       opts.Mood,
		Request:    opts.Request,
		TriMeal:    opts.TriMeal,
	})
	if err != nil {
		return nil, err
	}

	return &Recommendation{
		PlanText:     planText,
		Candidates:   candidates,
		Restrictions: forbidden,
	}, nil
}

func situationalKeywords(opts RecommendationOptions) string {
	keywords := ""
	if opts.Mood != "" {
		keywords = opts.Mood
	}
	if opts.Request != "" {
		if keywords != "" {
			keywords += " "
		}
		keywords += opts.Request
	}
	return keywords
}
