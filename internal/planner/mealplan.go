package planner

import (
	"errors"
	"math/rand"
	"time"

	"smartmeal-planner/internal/recipe"
)

var (
	// ErrInvalidParameter is returned for non-positive day counts or
	// calorie targets.
	ErrInvalidParameter = errors.New("invalid plan parameter")

	// ErrEmptyCatalog is returned when no recipe survives the filters.
	ErrEmptyCatalog = errors.New("no recipes match the requested filters")

	// ErrPlanNotFound is returned for a saved-plan id that does not exist.
	ErrPlanNotFound = errors.New("meal plan not found")
)

// Params are the inputs of a generation run.
type Params struct {
	Days           int
	TargetCalories int

	// Optional filters applied to the catalog before selection.
	Category   string // exact match against the recipe category
	Difficulty string // exact match, case-insensitive
	DietTag    string // substring match over the tags field, with synonyms

	// Rand drives recipe selection. Nil means time-seeded; tests inject
	// a seeded source for deterministic output.
	Rand *rand.Rand
}

func (p Params) rng() *rand.Rand {
	if p.Rand != nil {
		return p.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// MealAssignment is one slot of one day: either a selected recipe or an
// explicit unavailable marker (nil Recipe).
type MealAssignment struct {
	Slot   string
	Recipe *recipe.Recipe
}

// Available reports whether a recipe was assigned to the slot.
func (m MealAssignment) Available() bool {
	return m.Recipe != nil
}

// DayPlan holds one assignment per meal slot plus the day's calorie sum.
type DayPlan struct {
	Day      int
	Meals    []MealAssignment
	Calories int
}

// Rating is the qualitative assessment of a plan against its target.
type Rating string

const (
	RatingExcellent       Rating = "excellent"
	RatingAcceptable      Rating = "acceptable"
	RatingNeedsAdjustment Rating = "needs-adjustment"
)

// Classify maps a calorie deviation onto the fixed three-tier scale:
// up to 100 is excellent, up to 300 acceptable, beyond that the plan
// needs adjustment.
func Classify(deviation int) Rating {
	switch {
	case deviation <= 100:
		return RatingExcellent
	case deviation <= 300:
		return RatingAcceptable
	default:
		return RatingNeedsAdjustment
	}
}

// Label returns the user-facing wording for the rating.
func (r Rating) Label() string {
	switch r {
	case RatingExcellent:
		return "✅ Excellent équilibre !"
	case RatingAcceptable:
		return "👍 Équilibre acceptable"
	default:
		return "⚠️ Plan à ajuster"
	}
}

// GeneratedPlan is the transient result of one generation run.
type GeneratedPlan struct {
	Params          Params
	Days            []DayPlan
	TotalCalories   int
	AverageCalories int
	Deviation       int
	Rating          Rating
	GeneratedAt     time.Time
	Report          string
}
