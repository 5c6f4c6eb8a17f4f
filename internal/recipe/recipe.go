package recipe

import "strings"

// Canonical meal-slot categories, in the order meals appear in a day.
// The values mirror the seeded catalog's locale.
const (
	CategoryBreakfast = "Petit-déjeuner"
	CategoryLunch     = "Déjeuner"
	CategoryDinner    = "Dîner"
)

// MealSlots lists the three daily slots in fixed serving order.
var MealSlots = []string{CategoryBreakfast, CategoryLunch, CategoryDinner}

// Difficulty levels used by the seeded catalog.
const (
	DifficultyEasy   = "Facile"
	DifficultyMedium = "Moyen"
	DifficultyHard   = "Difficile"
)

// Recipe is a single entry of the catalog. Recipes are reference data:
// seeded or imported once, then read-only.
type Recipe struct {
	ID           string `yaml:"id,omitempty"`
	Name         string `yaml:"name"`
	Category     string `yaml:"category"`
	Tags         string `yaml:"tags"`
	Ingredients  string `yaml:"ingredients"`
	Instructions string `yaml:"instructions"`
	Calories     int    `yaml:"calories"`
	PrepTime     int    `yaml:"prep_time"`
	Difficulty   string `yaml:"difficulty"`
}

// dietSynonyms maps a requested diet tag to the substrings that count
// as a match in a recipe's free-text tags. Lookups are lowercase.
var dietSynonyms = map[string][]string{
	"vegetarian":  {"vegetarian", "végétarien"},
	"végétarien":  {"vegetarian", "végétarien"},
	"vegan":       {"vegan", "végétalien"},
	"végétalien":  {"vegan", "végétalien"},
	"gluten-free": {"gluten-free", "sans gluten"},
	"sans gluten": {"gluten-free", "sans gluten"},
}

// MatchesDietTag reports whether the recipe's tags contain the given
// diet tag or one of its known translations. Matching is a
// case-insensitive substring test over the free-text tag field.
func (r Recipe) MatchesDietTag(tag string) bool {
	if tag == "" {
		return true
	}
	tags := strings.ToLower(r.Tags)
	want := strings.ToLower(strings.TrimSpace(tag))
	candidates, ok := dietSynonyms[want]
	if !ok {
		candidates = []string{want}
	}
	for _, c := range candidates {
		if strings.Contains(tags, c) {
			return true
		}
	}
	return false
}

// MatchesDifficulty reports whether the recipe's difficulty equals the
// given one, ignoring case. An empty filter matches everything.
func (r Recipe) MatchesDifficulty(difficulty string) bool {
	if difficulty == "" {
		return true
	}
	return strings.EqualFold(r.Difficulty, difficulty)
}

// IngredientExcerpt returns the leading part of the ingredient list for
// compact report lines.
func (r Recipe) IngredientExcerpt(maxLen int) string {
	ing := strings.TrimSpace(r.Ingredients)
	if maxLen <= 0 || len([]rune(ing)) <= maxLen {
		return ing
	}
	runes := []rune(ing)
	return strings.TrimRight(string(runes[:maxLen]), " ,") + "…"
}
