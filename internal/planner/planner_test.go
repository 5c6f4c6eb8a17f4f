package planner

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"smartmeal-planner/internal/recipe"
)

func testCatalog() []recipe.Recipe {
	return []recipe.Recipe{
		{ID: "a", Name: "Omelette", Category: recipe.CategoryBreakfast, Calories: 300, PrepTime: 15, Difficulty: "Facile", Tags: "végétarien", Ingredients: "œufs, épinards"},
		{ID: "b", Name: "Salade", Category: recipe.CategoryLunch, Calories: 400, PrepTime: 20, Difficulty: "Facile", Tags: "végétarien, végétalien", Ingredients: "quinoa, avocat"},
		{ID: "c", Name: "Saumon", Category: recipe.CategoryDinner, Calories: 450, PrepTime: 30, Difficulty: "Moyen", Tags: "", Ingredients: "saumon, brocoli"},
	}
}

func seededParams(days, target int) Params {
	return Params{
		Days:           days,
		TargetCalories: target,
		Rand:           rand.New(rand.NewSource(42)),
	}
}

func TestGenerateInvalidParameters(t *testing.T) {
	catalog := testCatalog()

	t.Run("ZeroDays", func(t *testing.T) {
		_, err := Generate(catalog, Params{Days: 0, TargetCalories: 2000})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("NegativeDays", func(t *testing.T) {
		_, err := Generate(catalog, Params{Days: -3, TargetCalories: 2000})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Expected ErrInvalidParameter, got %v", err)
		}
	})

	t.Run("ZeroTarget", func(t *testing.T) {
		_, err := Generate(catalog, Params{Days: 7, TargetCalories: 0})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Expected ErrInvalidParameter, got %v", err)
		}
	})
}

func TestGenerateEmptyCatalog(t *testing.T) {
	t.Run("NoRecipes", func(t *testing.T) {
		_, err := Generate(nil, seededParams(3, 2000))
		if !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("Expected ErrEmptyCatalog, got %v", err)
		}
	})

	t.Run("FiltersExcludeEverything", func(t *testing.T) {
		params := seededParams(3, 2000)
		params.DietTag = "végétalien"
		params.Difficulty = "Moyen"
		_, err := Generate(testCatalog(), params)
		if !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("Expected ErrEmptyCatalog, got %v", err)
		}
	})
}

// One recipe per slot makes every run deterministic regardless of seed:
// totals must come out exactly as the sum over days.
func TestGenerateFixedScenario(t *testing.T) {
	plan, err := Generate(testCatalog(), seededParams(2, 1000))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(plan.Days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(plan.Days))
	}
	for _, day := range plan.Days {
		if len(day.Meals) != 3 {
			t.Errorf("Day %d: expected 3 meal slots, got %d", day.Day, len(day.Meals))
		}
		if day.Calories != 300+400+450 {
			t.Errorf("Day %d: expected 1150 calories, got %d", day.Day, day.Calories)
		}
	}

	if plan.TotalCalories != 2300 {
		t.Errorf("Expected total 2300, got %d", plan.TotalCalories)
	}
	if plan.AverageCalories != 1150 {
		t.Errorf("Expected average 1150, got %d", plan.AverageCalories)
	}
	if plan.Deviation != 150 {
		t.Errorf("Expected deviation 150, got %d", plan.Deviation)
	}
	if plan.Rating != RatingAcceptable {
		t.Errorf("Expected acceptable rating, got %s", plan.Rating)
	}
}

func TestGenerateAverageUsesIntegerDivision(t *testing.T) {
	// Two breakfast recipes with different calories force uneven daily
	// sums; the average must be the truncated quotient in every case.
	catalog := []recipe.Recipe{
		{ID: "a", Name: "A", Category: recipe.CategoryBreakfast, Calories: 100},
		{ID: "b", Name: "B", Category: recipe.CategoryBreakfast, Calories: 101},
	}
	plan, err := Generate(catalog, seededParams(3, 500))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if plan.AverageCalories != plan.TotalCalories/3 {
		t.Errorf("Expected average %d (truncated), got %d", plan.TotalCalories/3, plan.AverageCalories)
	}
}

func TestGenerateUnavailableSlots(t *testing.T) {
	// Catalog with no dinner recipe: the dinner slot must be marked
	// unavailable on every day and contribute zero calories.
	catalog := []recipe.Recipe{
		{ID: "a", Name: "Omelette", Category: recipe.CategoryBreakfast, Calories: 300},
		{ID: "b", Name: "Salade", Category: recipe.CategoryLunch, Calories: 400},
	}
	plan, err := Generate(catalog, seededParams(3, 700))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, day := range plan.Days {
		if len(day.Meals) != 3 {
			t.Fatalf("Day %d: expected 3 slots, got %d", day.Day, len(day.Meals))
		}
		dinner := day.Meals[2]
		if dinner.Slot != recipe.CategoryDinner {
			t.Errorf("Day %d: expected third slot to be dinner, got %s", day.Day, dinner.Slot)
		}
		if dinner.Available() {
			t.Errorf("Day %d: expected dinner to be unavailable", day.Day)
		}
		if day.Calories != 700 {
			t.Errorf("Day %d: expected 700 calories, got %d", day.Day, day.Calories)
		}
	}
	if plan.TotalCalories != 2100 {
		t.Errorf("Expected total 2100, got %d", plan.TotalCalories)
	}
	if plan.Deviation != 0 {
		t.Errorf("Expected deviation 0, got %d", plan.Deviation)
	}
	if plan.Rating != RatingExcellent {
		t.Errorf("Expected excellent rating, got %s", plan.Rating)
	}
}

func TestGenerateNonCanonicalCategoryExcluded(t *testing.T) {
	catalog := []recipe.Recipe{
		{ID: "a", Name: "Omelette", Category: recipe.CategoryBreakfast, Calories: 300},
		{ID: "s", Name: "Barre de céréales", Category: "Collation", Calories: 150},
	}
	plan, err := Generate(catalog, seededParams(2, 300))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			if meal.Available() && meal.Recipe.Name == "Barre de céréales" {
				t.Errorf("Day %d: snack recipe must never be selected", day.Day)
			}
		}
	}
}

func TestGenerateCategoryFilter(t *testing.T) {
	// Restricting to one category fills that slot and leaves the other
	// two unavailable.
	params := seededParams(2, 400)
	params.Category = recipe.CategoryLunch
	plan, err := Generate(testCatalog(), params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			switch meal.Slot {
			case recipe.CategoryLunch:
				if !meal.Available() {
					t.Errorf("Day %d: expected lunch to be assigned", day.Day)
				}
			default:
				if meal.Available() {
					t.Errorf("Day %d: expected %s to be unavailable", day.Day, meal.Slot)
				}
			}
		}
		if day.Calories != 400 {
			t.Errorf("Day %d: expected 400 calories, got %d", day.Day, day.Calories)
		}
	}
}

func TestGenerateFilters(t *testing.T) {
	t.Run("DifficultyCaseInsensitive", func(t *testing.T) {
		params := seededParams(1, 1000)
		params.Difficulty = "facile"
		plan, err := Generate(testCatalog(), params)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		// Dinner (Moyen) is filtered out, breakfast and lunch stay.
		if plan.Days[0].Calories != 700 {
			t.Errorf("Expected 700 calories, got %d", plan.Days[0].Calories)
		}
	})

	t.Run("DietTagSynonym", func(t *testing.T) {
		params := seededParams(1, 700)
		params.DietTag = "vegetarian" // must match the French tag
		plan, err := Generate(testCatalog(), params)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if plan.Days[0].Calories != 700 {
			t.Errorf("Expected 700 calories from the two vegetarian recipes, got %d", plan.Days[0].Calories)
		}
	})
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	catalog := []recipe.Recipe{
		{ID: "a", Name: "A", Category: recipe.CategoryBreakfast, Calories: 100},
		{ID: "b", Name: "B", Category: recipe.CategoryBreakfast, Calories: 200},
		{ID: "c", Name: "C", Category: recipe.CategoryBreakfast, Calories: 300},
	}

	run := func() []string {
		params := Params{Days: 5, TargetCalories: 300, Rand: rand.New(rand.NewSource(7))}
		plan, err := Generate(catalog, params)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		var names []string
		for _, day := range plan.Days {
			names = append(names, day.Meals[0].Recipe.Name)
		}
		return names
	}

	first := strings.Join(run(), ",")
	second := strings.Join(run(), ",")
	if first != second {
		t.Errorf("Expected identical plans for identical seeds, got %q and %q", first, second)
	}
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		deviation int
		want      Rating
	}{
		{0, RatingExcellent},
		{100, RatingExcellent},
		{101, RatingAcceptable},
		{300, RatingAcceptable},
		{301, RatingNeedsAdjustment},
		{550, RatingNeedsAdjustment},
	}
	for _, c := range cases {
		if got := Classify(c.deviation); got != c.want {
			t.Errorf("Classify(%d) = %s, want %s", c.deviation, got, c.want)
		}
	}
}

func TestShoppingList(t *testing.T) {
	plan, err := Generate(testCatalog(), seededParams(3, 1000))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	items := ShoppingList(plan)
	// Same recipes repeat across the 3 days; ingredients appear once.
	want := []string{"avocat", "brocoli", "quinoa", "saumon", "épinards", "œufs"}
	if len(items) != len(want) {
		t.Fatalf("Expected %d items, got %d (%v)", len(want), len(items), items)
	}
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item] {
			t.Errorf("Duplicate shopping list item %q", item)
		}
		seen[item] = true
	}
	for _, w := range want {
		if !seen[w] {
			t.Errorf("Expected item %q in shopping list, got %v", w, items)
		}
	}

	rendered := RenderShoppingList(plan)
	if !strings.Contains(rendered, "LISTE DE COURSES") {
		t.Errorf("Expected shopping list header, got %q", rendered)
	}
}
