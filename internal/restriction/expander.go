package restriction

import (
	"sort"
	"strings"

	"github.com/bobfit/backend/internal/models"
)

// Trigger phrases recognised inside the free-text "other restrictions"
// field. Each maps to a restriction key fed through the table.
var otherTriggers = []struct {
	phrase string
	key    string
}{
	{"돼지고기", "돼지고기"},
	{"이슬람교", "돼지고기"},
	{"힌두교", "소고기"},
	{"채식", "채식"},
	{"비건", "비건"},
}

// Expander translates a profile's restriction fields into the set of
// forbidden ingredient-name substrings.
type Expander struct {
	table Table
}

// NewExpander creates an expander over the given translation table.
func NewExpander(table Table) *Expander {
	return &Expander{table: table}
}

// Expand derives the forbidden-substring set for a profile. It is a
// pure function of the profile's restriction fields: the allergy field
// is split on commas, the other-restrictions field is scanned for
// trigger phrases, and every resulting key is run through the table.
// Keys without a table entry are kept as literal substrings. The result
// is de-duplicated and sorted.
func (e *Expander) Expand(user *models.User) []string {
	var rawTerms []string

	if allergies := strings.TrimSpace(user.RestrictionsAllergies); !isNone(allergies) {
		for _, term := range strings.Split(allergies, ",") {
			if term = strings.TrimSpace(term); term != "" {
				rawTerms = append(rawTerms, term)
			}
		}
	}

	if other := strings.TrimSpace(user.RestrictionsOther); !isNone(other) {
		for _, trigger := range otherTriggers {
			if strings.Contains(other, trigger.phrase) {
				rawTerms = append(rawTerms, trigger.key)
			}
		}
	}

	keywords := make(map[string]struct{})
	seen := make(map[string]struct{}, len(rawTerms))
	for _, term := range rawTerms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}

		if expansion, ok := e.table[term]; ok {
			for _, keyword := range expansion {
				keywords[keyword] = struct{}{}
			}
		} else {
			keywords[term] = struct{}{}
		}
	}

	result := make([]string, 0, len(keywords))
	for keyword := range keywords {
		result = append(result, keyword)
	}
	sort.Strings(result)
	return result
}

// isNone reports whether a restriction field carries no restriction.
func isNone(field string) bool {
	return field == "" || field == models.None || strings.EqualFold(field, "none")
}
