package planner

import (
	"sort"
	"strings"
)

// ShoppingList aggregates the ingredient lines of every recipe selected
// in the plan into a deduplicated, alphabetically sorted list. A recipe
// repeated across days contributes its ingredients once.
func ShoppingList(plan *GeneratedPlan) []string {
	seen := make(map[string]struct{})
	var items []string

	for _, day := range plan.Days {
		for _, meal := range day.Meals {
			if !meal.Available() {
				continue
			}
			for _, item := range strings.Split(meal.Recipe.Ingredients, ",") {
				item = strings.TrimSpace(item)
				if item == "" {
					continue
				}
				key := strings.ToLower(item)
				if _, ok := seen[key]; ok {
					continue
				}
				seen[key] = struct{}{}
				items = append(items, item)
			}
		}
	}

	sort.Strings(items)
	return items
}

// RenderShoppingList formats the list for display.
func RenderShoppingList(plan *GeneratedPlan) string {
	items := ShoppingList(plan)
	var sb strings.Builder
	sb.WriteString("🛒 LISTE DE COURSES\n")
	sb.WriteString(headerRule + "\n")
	if len(items) == 0 {
		sb.WriteString("Aucun ingrédient (aucune recette sélectionnée)\n")
		return sb.String()
	}
	for _, item := range items {
		sb.WriteString("  • " + item + "\n")
	}
	return sb.String()
}
