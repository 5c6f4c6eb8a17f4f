package planner

import (
	"fmt"
	"strings"
)

const (
	headerRule = "=================================================="
	dayRule    = "----------------------------------------"
)

// Fixed advice block appended to every report summary.
var nutritionTips = []string{
	"Buvez au moins 1,5L d'eau par jour",
	"Privilégiez les aliments de saison",
	"Prenez le temps de mâcher à chaque repas",
}

// renderReport produces the human-readable plan text: header banner,
// one block per day, then the calorie summary. The text is stored
// as-is when the user saves the plan, so its layout is stable.
func renderReport(plan *GeneratedPlan) string {
	var sb strings.Builder
	p := plan.Params

	fmt.Fprintf(&sb, "📋 PLAN ALIMENTAIRE - %d JOURS\n", p.Days)
	fmt.Fprintf(&sb, "🎯 Calories cible par jour: %d\n", p.TargetCalories)
	if p.Category != "" {
		fmt.Fprintf(&sb, "🍽️ Catégorie: %s\n", p.Category)
	}
	if p.Difficulty != "" {
		fmt.Fprintf(&sb, "👨‍🍳 Difficulté: %s\n", p.Difficulty)
	}
	if p.DietTag != "" {
		fmt.Fprintf(&sb, "🥗 Régime: %s\n", p.DietTag)
	}
	fmt.Fprintf(&sb, "🕒 Généré le: %s\n", plan.GeneratedAt.Format("02/01/2006 15:04"))
	sb.WriteString(headerRule + "\n")

	for _, day := range plan.Days {
		fmt.Fprintf(&sb, "\n📅 JOUR %d:\n", day.Day)
		for _, meal := range day.Meals {
			fmt.Fprintf(&sb, "\n%s:\n", meal.Slot)
			if !meal.Available() {
				sb.WriteString("  ⚠️ Aucune recette disponible\n")
				continue
			}
			rec := meal.Recipe
			fmt.Fprintf(&sb, "  🍽️ %s\n", rec.Name)
			fmt.Fprintf(&sb, "  ⏱️ %d min | 🔥 %d cal\n", rec.PrepTime, rec.Calories)
			fmt.Fprintf(&sb, "  📝 %s\n", rec.IngredientExcerpt(70))
		}
		fmt.Fprintf(&sb, "\n🔥 Total calories: %d\n", day.Calories)
		sb.WriteString(dayRule + "\n")
	}

	sb.WriteString("\n" + headerRule + "\n")
	sb.WriteString("📊 RÉSUMÉ\n")
	fmt.Fprintf(&sb, "📆 Jours: %d\n", p.Days)
	fmt.Fprintf(&sb, "🎯 Objectif quotidien: %d cal\n", p.TargetCalories)
	fmt.Fprintf(&sb, "🔥 Total: %d cal\n", plan.TotalCalories)
	fmt.Fprintf(&sb, "⚖️ Moyenne journalière: %d cal\n", plan.AverageCalories)
	fmt.Fprintf(&sb, "📉 Écart par rapport à l'objectif: %d cal\n", plan.Deviation)
	sb.WriteString(plan.Rating.Label() + "\n")

	sb.WriteString("\n💡 CONSEILS NUTRITION\n")
	for _, tip := range nutritionTips {
		fmt.Fprintf(&sb, "  • %s\n", tip)
	}

	return sb.String()
}
