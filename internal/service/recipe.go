package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/llm"
	"github.com/bobfit/backend/internal/models"
)

// RecipeService handles catalog reads and on-demand step generation.
type RecipeService struct {
	db        *gorm.DB
	generator llm.TextGenerator
}

// NewRecipeService creates a new RecipeService instance. The generator
// may be nil; step generation then reports an error for uncached rows.
func NewRecipeService(db *gorm.DB, generator llm.TextGenerator) *RecipeService {
	return &RecipeService{
		db:        db,
		generator: generator,
	}
}

// ListRecipes lists catalog entries, optionally narrowed by a title or
// dish-name keyword and an exact time category, ordered by serial
// number.
func (s *RecipeService) ListRecipes(ctx context.Context, search, timeCategory string, limit int) ([]*models.Recipe, error) {
	query := s.db.WithContext(ctx).Order(`"RCP_SNO"`)
	if search != "" {
		like := "%" + strings.TrimSpace(search) + "%"
		query = query.Where(`"RCP_TTL" LIKE ? OR "CKG_NM" LIKE ?`, like, like)
	}
	if timeCategory != "" {
		query = query.Where(`"CKG_TIME_NM" = ?`, timeCategory)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, nil
}

// GetRecipe retrieves a recipe by serial number
func (s *RecipeService) GetRecipe(ctx context.Context, sno uint) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, `"RCP_SNO" = ?`, sno).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeSteps returns the cooking steps for a recipe. The source
// catalog carries no step text, so steps are generated once and then
// persisted on the recipe row.
func (s *RecipeService) GetRecipeSteps(ctx context.Context, sno uint) (string, error) {
	recipe, err := s.GetRecipe(ctx, sno)
	if err != nil {
		return "", err
	}

	if recipe.RecipeSteps != "" {
		return recipe.RecipeSteps, nil
	}

	if s.generator == nil {
		return "", fmt.Errorf("no step text recorded for recipe %d", sno)
	}

	steps, err := s.generator.GenerateText(ctx, stepsPrompt(recipe))
	if err != nil {
		return "", fmt.Errorf("failed to generate steps for recipe %d: %w", sno, err)
	}

	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).
		Where(`"RCP_SNO" = ?`, sno).
		Update("recipe_steps", steps).Error; err != nil {
		return "", err
	}
	return steps, nil
}

func stepsPrompt(recipe *models.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "당신은 요리 전문가입니다. 아래 레시피의 조리 과정을 단계별로 설명해주세요.\n\n")
	fmt.Fprintf(&b, "[레시피명] %s\n", recipe.Title)
	if recipe.CookingMethod != "" {
		fmt.Fprintf(&b, "[조리법] %s\n", recipe.CookingMethod)
	}
	if recipe.TimeCategory != "" {
		fmt.Fprintf(&b, "[소요시간] %s\n", recipe.TimeCategory)
	}
	if names := recipe.IngredientNames(); len(names) > 0 {
		fmt.Fprintf(&b, "[재료] %s\n", strings.Join(names, ", "))
	}
	b.WriteString("\n번호를 붙인 단계별 목록으로, 각 단계는 한두 문장으로 작성해주세요.")
	return b.String()
}
