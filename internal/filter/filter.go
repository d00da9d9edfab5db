// Package filter narrows the recipe catalog to entries compatible with
// a profile's restrictions, time policy and budget.
package filter

import (
	"strings"

	"github.com/bobfit/backend/internal/models"
)

// Time constraint phrases recognised in the profile's other-restrictions
// field. The 30-minute constraint takes precedence when both appear.
const (
	TimeConstraint30 = "조리시간 30분 이내"
	TimeConstraint60 = "조리시간 60분 이내"
)

// budgetMultiplier converts a per-meal budget into a ceiling on the
// recorded bulk ingredient cost. Recorded costs reflect package-quantity
// purchases rather than a single serving, so comparing them against the
// raw per-meal budget would over-prune.
const budgetMultiplier = 3

var (
	tiersWithin30 = []string{models.TimeWithin5, models.TimeWithin10, models.TimeWithin15, models.TimeWithin30}
	tiersWithin60 = []string{models.TimeWithin5, models.TimeWithin10, models.TimeWithin15, models.TimeWithin30, models.TimeWithin60}
)

// Apply returns the subset of recipes that is safe for the forbidden
// substrings, within the profile's time policy, and within budget,
// preserving catalog order. An empty result is not an error.
//
// Recipes whose ingredient data cannot be parsed are excluded
// (fail-closed), as are recipes with an unknown time category when a
// time constraint applies.
func Apply(recipes []models.Recipe, user *models.User, forbidden []string) []models.Recipe {
	allowedTimes := allowedTimeCategories(user.RestrictionsOther)
	ceiling := 0
	if user.Budget > 0 {
		ceiling = user.Budget * budgetMultiplier
	}

	result := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if !safeIngredients(&recipe, forbidden) {
			continue
		}
		if allowedTimes != nil && !containsString(allowedTimes, recipe.TimeCategory) {
			continue
		}
		if ceiling > 0 && recipe.EstimatedPrice > ceiling {
			continue
		}
		result = append(result, recipe)
	}
	return result
}

// safeIngredients reports whether none of the forbidden substrings
// occurs inside any ingredient name. Matching is literal and
// case-sensitive: a "멸치" restriction catches "국물용 멸치".
func safeIngredients(recipe *models.Recipe, forbidden []string) bool {
	ingredients, err := recipe.Ingredients()
	if err != nil {
		return false
	}

	for name := range ingredients {
		for _, substring := range forbidden {
			if strings.Contains(name, substring) {
				return false
			}
		}
	}
	return true
}

// allowedTimeCategories returns the admissible time categories for the
// profile's declared constraint, or nil when no constraint applies.
func allowedTimeCategories(otherRestrictions string) []string {
	switch {
	case strings.Contains(otherRestrictions, TimeConstraint30):
		return tiersWithin30
	case strings.Contains(otherRestrictions, TimeConstraint60):
		return tiersWithin60
	default:
		return nil
	}
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
