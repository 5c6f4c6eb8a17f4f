package planner

import (
	"math/rand"
	"strings"
	"testing"

	"smartmeal-planner/internal/recipe"
)

func TestReportLayout(t *testing.T) {
	catalog := []recipe.Recipe{
		{ID: "a", Name: "Omelette aux légumes", Category: recipe.CategoryBreakfast, Calories: 280, PrepTime: 15, Ingredients: "2 œufs, 50g épinards"},
		{ID: "b", Name: "Salade de quinoa", Category: recipe.CategoryLunch, Calories: 350, PrepTime: 20, Ingredients: "100g quinoa, 1 avocat"},
	}
	params := Params{Days: 2, TargetCalories: 650, Rand: rand.New(rand.NewSource(1))}
	plan, err := Generate(catalog, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	report := plan.Report

	// Informational fields must appear, in header → days → summary order.
	markers := []string{
		"PLAN ALIMENTAIRE - 2 JOURS",
		"Calories cible par jour: 650",
		"Généré le:",
		"JOUR 1:",
		"Omelette aux légumes",
		"15 min | 🔥 280 cal",
		"Aucune recette disponible", // dinner bucket is empty
		"JOUR 2:",
		"RÉSUMÉ",
		"Total: 1260 cal",
		"Moyenne journalière: 630 cal",
		"Écart par rapport à l'objectif: 20 cal",
		"Excellent équilibre",
		"CONSEILS NUTRITION",
	}
	pos := 0
	for _, marker := range markers {
		idx := strings.Index(report[pos:], marker)
		if idx < 0 {
			t.Fatalf("Expected report to contain %q after position %d.\nReport:\n%s", marker, pos, report)
		}
		pos += idx
	}
}

func TestReportShowsFilters(t *testing.T) {
	catalog := []recipe.Recipe{
		{ID: "a", Name: "Omelette", Category: recipe.CategoryBreakfast, Calories: 280, Difficulty: "Facile", Tags: "végétarien"},
	}
	params := Params{
		Days:           1,
		TargetCalories: 300,
		Difficulty:     "Facile",
		DietTag:        "végétarien",
		Rand:           rand.New(rand.NewSource(1)),
	}
	plan, err := Generate(catalog, params)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(plan.Report, "Difficulté: Facile") {
		t.Errorf("Expected difficulty filter in header")
	}
	if !strings.Contains(plan.Report, "Régime: végétarien") {
		t.Errorf("Expected diet filter in header")
	}
}

func TestRatingLabels(t *testing.T) {
	if !strings.Contains(RatingExcellent.Label(), "Excellent") {
		t.Errorf("Unexpected excellent label: %s", RatingExcellent.Label())
	}
	if !strings.Contains(RatingAcceptable.Label(), "acceptable") {
		t.Errorf("Unexpected acceptable label: %s", RatingAcceptable.Label())
	}
	if !strings.Contains(RatingNeedsAdjustment.Label(), "ajuster") {
		t.Errorf("Unexpected adjustment label: %s", RatingNeedsAdjustment.Label())
	}
}
