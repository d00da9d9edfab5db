package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/service"
)

// RecipeHandler serves catalog reads and step lookups.
type RecipeHandler struct {
	recipes *service.RecipeService
}

func NewRecipeHandler(recipes *service.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	recipes, err := h.recipes.ListRecipes(c.Request.Context(), c.Query("q"), c.Query("time"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	sno, ok := recipeSNO(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), sno)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) GetRecipeSteps(c *gin.Context) {
	sno, ok := recipeSNO(c)
	if !ok {
		return
	}

	steps, err := h.recipes.GetRecipeSteps(c.Request.Context(), sno)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recipe steps"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe_sno": sno, "steps": steps})
}

func recipeSNO(c *gin.Context) (uint, bool) {
	sno, err := strconv.ParseUint(c.Param("sno"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe serial number"})
		return 0, false
	}
	return uint(sno), true
}
