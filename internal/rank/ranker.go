// Package rank orders filtered recipes by textual similarity between
// their ingredient names and the profile's preference/goal text.
package rank

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/bobfit/backend/internal/models"
)

// DefaultTopN bounds the candidate set forwarded to plan generation.
const DefaultTopN = 100

// fallbackSeed fixes the sampling order when vectorization is not
// possible, keeping the fallback reproducible.
const fallbackSeed = 42

// keywordBoost repeats situational keywords in the query text to weight
// them above the baseline preference/goal text.
const keywordBoost = 3

// Ranker selects the top-N most relevant recipes for a query.
type Ranker struct {
	topN int
}

// New creates a ranker returning at most topN recipes; a non-positive
// value selects DefaultTopN.
func New(topN int) *Ranker {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &Ranker{topN: topN}
}

// QueryText builds the ranking query from the profile's preference and
// goal text plus optional situational keywords, which are repeated for
// a deliberate relevance boost.
func QueryText(preferences, goals, situationalKeywords string) string {
	parts := []string{preferences, goals}
	if situationalKeywords = strings.TrimSpace(situationalKeywords); situationalKeywords != "" {
		for i := 0; i < keywordBoost; i++ {
			parts = append(parts, situationalKeywords)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Rank scores each recipe by cosine similarity between its ingredient
// text and the query, both vectorised in a tf-idf space fitted on the
// recipe corpus only, and returns the top N in descending score order.
//
// An empty input yields an empty result. If the corpus produces no
// usable vocabulary the ranker falls back to a seeded random sample, so
// even the degenerate path is deterministic.
func (r *Ranker) Rank(recipes []models.Recipe, query string) []models.Recipe {
	if len(recipes) == 0 {
		return []models.Recipe{}
	}

	documents := make([]string, len(recipes))
	for i := range recipes {
		documents[i] = recipes[i].IngredientText()
	}

	vectorizer, err := Fit(documents)
	if err != nil {
		return r.sample(recipes)
	}

	queryVector := vectorizer.Transform(query)
	scores := make([]float64, len(recipes))
	for i, document := range documents {
		scores[i] = cosine(vectorizer.Transform(document), queryVector)
	}

	order := make([]int, len(recipes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	n := r.topN
	if n > len(recipes) {
		n = len(recipes)
	}
	result := make([]models.Recipe, 0, n)
	for _, index := range order[:n] {
		result = append(result, recipes[index])
	}
	return result
}

// sample returns a fixed-seed random sample of min(topN, len) recipes.
func (r *Ranker) sample(recipes []models.Recipe) []models.Recipe {
	rng := rand.New(rand.NewSource(fallbackSeed))
	permutation := rng.Perm(len(recipes))

	n := r.topN
	if n > len(recipes) {
		n = len(recipes)
	}
	result := make([]models.Recipe, 0, n)
	for _, index := range permutation[:n] {
		result = append(result, recipes[index])
	}
	return result
}
