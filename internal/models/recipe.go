package models

import (
	"encoding/json"
	"sort"
	"strings"
)

// Time categories used by the catalog (CKG_TIME_NM). The catalog source
// leaves the field empty for recipes with no recorded time.
const (
	TimeWithin5  = "5분이내"
	TimeWithin10 = "10분이내"
	TimeWithin15 = "15분이내"
	TimeWithin30 = "30분이내"
	TimeWithin60 = "60분이내"
)

// Recipe is a catalog entry. Rows are immutable after ingestion except
// for estimated_price (populated offline by the price updater) and
// recipe_steps (generated on demand and cached).
//
// Ingredients are stored as the raw serialized name->quantity mapping;
// rows with malformed ingredient data stay loadable and are excluded
// during filtering instead.
type Recipe struct {
	RecipeSNO       uint   `gorm:"column:RCP_SNO;primaryKey;autoIncrement" json:"recipe_sno"`
	Title           string `gorm:"column:RCP_TTL;size:255;not null" json:"title"`
	Name            string `gorm:"column:CKG_NM;size:255" json:"name"`
	IngredientsJSON string `gorm:"column:ingredients_json;type:text" json:"ingredients_json"`
	CookingMethod   string `gorm:"column:CKG_MTH_ACTO_NM;size:50" json:"cooking_method"`
	TimeCategory    string `gorm:"column:CKG_TIME_NM;size:20" json:"time_category"`
	Servings        string `gorm:"column:CKG_INBUN_NM;size:20" json:"servings"`
	EstimatedPrice  int    `gorm:"column:estimated_price;default:0" json:"estimated_price"`
	RecipeSteps     string `gorm:"column:recipe_steps;type:text" json:"recipe_steps,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// Ingredients parses the serialized ingredient mapping.
func (r *Recipe) Ingredients() (map[string]string, error) {
	var ingredients map[string]string
	if err := json.Unmarshal([]byte(r.IngredientsJSON), &ingredients); err != nil {
		return nil, err
	}
	return ingredients, nil
}

// IngredientNames returns the sorted, de-duplicated ingredient names,
// or nil if the ingredient data cannot be parsed.
func (r *Recipe) IngredientNames() []string {
	ingredients, err := r.Ingredients()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(ingredients))
	for name := range ingredients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IngredientText renders the ingredient-name bag as a single string,
// used as the recipe's document for similarity ranking.
func (r *Recipe) IngredientText() string {
	return strings.Join(r.IngredientNames(), " ")
}
