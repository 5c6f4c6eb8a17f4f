package planner

import (
	"fmt"
	"time"

	"smartmeal-planner/internal/recipe"
)

// Generate builds a day-by-day meal plan from the given catalog.
//
// It is a pure function of (catalog, params): filters the catalog,
// buckets it by meal slot, then picks one recipe per slot and day
// uniformly at random with replacement. Slots whose bucket is empty are
// marked unavailable and contribute zero calories. The calorie target
// only drives the summary assessment, never the selection.
func Generate(catalog []recipe.Recipe, params Params) (*GeneratedPlan, error) {
	if params.Days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", ErrInvalidParameter, params.Days)
	}
	if params.TargetCalories < 1 {
		return nil, fmt.Errorf("%w: target calories must be positive, got %d", ErrInvalidParameter, params.TargetCalories)
	}

	pool := filterCatalog(catalog, params)
	if len(pool) == 0 {
		return nil, ErrEmptyCatalog
	}

	// Bucket by canonical slot. Recipes outside the three slots are
	// never selectable.
	buckets := make(map[string][]recipe.Recipe, len(recipe.MealSlots))
	for _, rec := range pool {
		for _, slot := range recipe.MealSlots {
			if rec.Category == slot {
				buckets[slot] = append(buckets[slot], rec)
				break
			}
		}
	}

	rng := params.rng()
	plan := &GeneratedPlan{
		Params:      params,
		GeneratedAt: time.Now(),
	}

	for day := 1; day <= params.Days; day++ {
		dp := DayPlan{Day: day}
		for _, slot := range recipe.MealSlots {
			bucket := buckets[slot]
			if len(bucket) == 0 {
				dp.Meals = append(dp.Meals, MealAssignment{Slot: slot})
				continue
			}
			picked := bucket[rng.Intn(len(bucket))]
			dp.Meals = append(dp.Meals, MealAssignment{Slot: slot, Recipe: &picked})
			dp.Calories += picked.Calories
		}
		plan.TotalCalories += dp.Calories
		plan.Days = append(plan.Days, dp)
	}

	plan.AverageCalories = plan.TotalCalories / params.Days
	plan.Deviation = abs(plan.AverageCalories - params.TargetCalories)
	plan.Rating = Classify(plan.Deviation)
	plan.Report = renderReport(plan)

	return plan, nil
}

func filterCatalog(catalog []recipe.Recipe, params Params) []recipe.Recipe {
	var pool []recipe.Recipe
	for _, rec := range catalog {
		if params.Category != "" && rec.Category != params.Category {
			continue
		}
		if !rec.MatchesDifficulty(params.Difficulty) {
			continue
		}
		if !rec.MatchesDietTag(params.DietTag) {
			continue
		}
		pool = append(pool, rec)
	}
	return pool
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
