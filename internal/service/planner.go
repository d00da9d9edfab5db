package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bobfit/backend/internal/llm"
	"github.com/bobfit/backend/internal/models"
)

var ErrPlanGenerationFailed = errors.New("plan generation failed")

// maxPromptIngredients truncates each candidate's ingredient list in
// the prompt; the full list would blow the prompt up without improving
// selection quality.
const maxPromptIngredients = 5

// planCacheTTL keeps a generated plan for a day, matching the daily
// cadence of meal planning.
const planCacheTTL = 24 * time.Hour

// PlanRequest carries everything the planner needs for one request.
type PlanRequest struct {
	User       *models.User
	Candidates []models.Recipe
	Date       string
	Mood       string
	Request    string
	TriMeal    bool
}

// PlannerService turns a ranked candidate list into a formatted weekly
// meal plan via the text-generation service. A single call is made per
// request; any upstream failure is reported as one failure signal.
type PlannerService struct {
	generator llm.TextGenerator
	redis     *redis.Client
}

// NewPlannerService creates a new PlannerService instance. redisClient
// may be nil to disable plan caching.
func NewPlannerService(generator llm.TextGenerator, redisClient *redis.Client) *PlannerService {
	return &PlannerService{
		generator: generator,
		redis:     redisClient,
	}
}

// RequestPlan returns the generated plan text for the request, serving
// a cached plan when the same profile asked with the same context today.
func (s *PlannerService) RequestPlan(ctx context.Context, req *PlanRequest) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("%w: no text generator configured", ErrPlanGenerationFailed)
	}

	key := planCacheKey(req)
	if cached, ok := s.cachedPlan(ctx, key); ok {
		return cached, nil
	}

	prompt := BuildPlanPrompt(req)
	text, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPlanGenerationFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrPlanGenerationFailed
	}

	s.storePlan(ctx, key, text)
	return text, nil
}

// BuildPlanPrompt assembles the generation prompt: every candidate with
// its verbatim title, the full profile, situational context, and strict
// output-format instructions. Selections must repeat the title text
// verbatim so they can be matched back against the candidate set.
func BuildPlanPrompt(req *PlanRequest) string {
	selections := 7
	planLabel := "일주일치 저녁 식단 7개"
	if req.TriMeal {
		selections = 9
		planLabel = "3일치 아침/점심/저녁 식단 9개"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "당신은 BobFit의 식단 코치 전문 영양사입니다.\n")
	fmt.Fprintf(&b, "'%s' 님을 위한 %s를 추천해야 합니다.\n\n", req.User.Username, planLabel)

	b.WriteString("[사용자 프로필]\n")
	fmt.Fprintf(&b, "- 사용자명: %s\n", req.User.Username)
	fmt.Fprintf(&b, "- 선호 음식: %s\n", req.User.Preferences)
	fmt.Fprintf(&b, "- 달성 목표: %s\n", req.User.Goals)
	fmt.Fprintf(&b, "- 알레르기: %s\n", req.User.RestrictionsAllergies)
	fmt.Fprintf(&b, "- 기타 제약: %s\n", req.User.RestrictionsOther)
	if req.User.Budget > 0 {
		fmt.Fprintf(&b, "- 한 끼 예산: %d원\n", req.User.Budget)
	}

	if req.Date != "" || req.Mood != "" || req.Request != "" {
		b.WriteString("\n[오늘의 상황]\n")
		if req.Date != "" {
			fmt.Fprintf(&b, "- 날짜: %s\n", req.Date)
		}
		if req.Mood != "" {
			fmt.Fprintf(&b, "- 기분: %s\n", req.Mood)
		}
		if req.Request != "" {
			fmt.Fprintf(&b, "- 요청 사항: %s\n", req.Request)
		}
	}

	fmt.Fprintf(&b, "\n[추천 대상 레시피 후보 목록 (%d개)]\n", len(req.Candidates))
	for i := range req.Candidates {
		b.WriteString(candidateLine(&req.Candidates[i]))
		b.WriteByte('\n')
	}

	b.WriteString("\n[요청 사항]\n")
	fmt.Fprintf(&b, "1. 위 후보 목록 중에서 %d개의 레시피를 선택해주세요.\n", selections)
	b.WriteString("2. 선택 기준은 사용자의 [달성 목표]와 [선호 음식]을 최우선으로 고려해야 합니다.\n")
	b.WriteString("3. [기타 제약]과 [오늘의 상황]도 반드시 반영해주세요.\n")
	b.WriteString("4. 레시피명은 후보 목록의 제목을 한 글자도 바꾸지 말고 그대로 적어주세요.\n")
	b.WriteString("5. 추천 결과는 아래 [출력 형식]을 반드시 지켜주세요.\n")

	b.WriteString("\n[출력 형식]\n")
	b.WriteString("1. [레시피명]: (1인분 약 ---kcal) 추천 이유 (달성 목표/기호와 연결지어 설명)\n")
	b.WriteString("2. [레시피명]: (1인분 약 ---kcal) 추천 이유\n")
	b.WriteString("...\n")
	fmt.Fprintf(&b, "%d. [레시피명]: (1인분 약 ---kcal) 추천 이유\n", selections)

	return b.String()
}

// candidateLine renders one candidate with its verbatim title and the
// details the model should weigh when selecting.
func candidateLine(recipe *models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- %s (조리법: %s, 소요시간: %s", recipe.Title, recipe.CookingMethod, recipe.TimeCategory)
	if recipe.EstimatedPrice > 0 {
		fmt.Fprintf(&b, ", 재료비 약 %d원", recipe.EstimatedPrice)
	}
	if names := recipe.IngredientNames(); len(names) > 0 {
		if len(names) > maxPromptIngredients {
			names = names[:maxPromptIngredients]
		}
		fmt.Fprintf(&b, ", 주재료: %s", strings.Join(names, "/"))
	}
	b.WriteString(")")
	return b.String()
}

func (s *PlannerService) cachedPlan(ctx context.Context, key string) (string, bool) {
	if s.redis == nil {
		return "", false
	}
	text, err := s.redis.Get(ctx, key).Result()
	if err != nil || text == "" {
		return "", false
	}
	return text, true
}

func (s *PlannerService) storePlan(ctx context.Context, key, text string) {
	if s.redis == nil {
		return
	}
	s.redis.Set(ctx, key, text, planCacheTTL)
}

func planCacheKey(req *PlanRequest) string {
	return fmt.Sprintf("plan:%d:%s:%s:%s:%t", req.User.UserID, req.Date, req.Mood, req.Request, req.TriMeal)
}
