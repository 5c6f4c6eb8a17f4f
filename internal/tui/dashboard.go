package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"smartmeal-planner/internal/planner"
	"smartmeal-planner/internal/recipe"
)

var generateLabels = []string{"Nombre de jours", "Calories cible", "Difficulté (optionnel)", "Régime (optionnel)"}

type planItem struct {
	plan planner.SavedPlan
}

func (i planItem) Title() string { return "📋 " + i.plan.Name }
func (i planItem) Description() string {
	return fmt.Sprintf("%d jours • %d cal/jour • %s",
		i.plan.Days, i.plan.TargetCalories, i.plan.CreatedAt.Format("02/01/2006"))
}
func (i planItem) FilterValue() string { return i.plan.Name }

type recipeItem struct {
	rec recipe.Recipe
}

func (i recipeItem) Title() string { return "🍽️ " + i.rec.Name }
func (i recipeItem) Description() string {
	return fmt.Sprintf("%s • %d cal • %d min • %s",
		i.rec.Category, i.rec.Calories, i.rec.PrepTime, i.rec.Difficulty)
}
func (i recipeItem) FilterValue() string { return i.rec.Name }

func (a *App) initGenerateForm() {
	a.genInputs = make([]textinput.Model, len(generateLabels))
	defaults := []string{"7", "2000", "", ""}
	for i := range a.genInputs {
		ti := textinput.New()
		ti.CharLimit = 30
		ti.SetValue(defaults[i])
		a.genInputs[i] = ti
	}
	a.genFocus = 0
	a.genInputs[0].Focus()
	a.generated = nil
	a.viewingGen = false
	a.savePrompt = false
}

func (a *App) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case plansLoadedMsg:
		if msg.err != nil {
			a.errMsg = "Erreur: " + msg.err.Error()
			return a, nil
		}
		a.plans = msg.plans
		items := make([]list.Item, len(msg.plans))
		for i, p := range msg.plans {
			items[i] = planItem{plan: p}
		}
		return a, a.planList.SetItems(items)

	case recipesLoadedMsg:
		if msg.err != nil {
			a.errMsg = "Erreur: " + msg.err.Error()
			return a, nil
		}
		items := make([]list.Item, len(msg.recipes))
		for i, r := range msg.recipes {
			items[i] = recipeItem{rec: r}
		}
		return a, a.recipeList.SetItems(items)

	case planGeneratedMsg:
		if msg.err != nil {
			a.errMsg = generateErrorText(msg.err)
			return a, nil
		}
		a.errMsg = ""
		a.generated = msg.plan
		a.viewingGen = true
		a.showShopping = false
		a.reportView.SetContent(msg.plan.Report)
		a.reportView.GotoTop()
		return a, nil

	case planSavedMsg:
		a.savePrompt = false
		if msg.err != nil {
			a.errMsg = "Erreur: " + msg.err.Error()
			return a, nil
		}
		a.status = "Plan sauvegardé !"
		return a, tea.Batch(
			a.loadPlansCmd(a.currentUser.ID),
			a.planCountCmd(a.currentUser.ID),
		)

	case planDeletedMsg:
		a.confirmDelete = false
		if msg.err != nil {
			if errors.Is(msg.err, planner.ErrPlanNotFound) {
				a.errMsg = "Ce plan n'existe plus"
			} else {
				a.errMsg = "Erreur: " + msg.err.Error()
			}
			return a, nil
		}
		a.status = "Plan supprimé"
		a.viewingPlan = nil
		return a, tea.Batch(
			a.loadPlansCmd(a.currentUser.ID),
			a.planCountCmd(a.currentUser.ID),
		)

	case exportDoneMsg:
		if msg.err != nil {
			a.errMsg = "Erreur d'export: " + msg.err.Error()
			return a, nil
		}
		a.status = "Exporté vers " + msg.path
		return a, nil

	case planCountMsg:
		if msg.err == nil {
			a.planCount = msg.count
		}
		return a, nil

	case recipeImportedMsg:
		a.importing = false
		a.importInput.Blur()
		if msg.err != nil {
			a.errMsg = "Erreur d'import: " + msg.err.Error()
			return a, nil
		}
		a.status = fmt.Sprintf("Recette importée: %s", msg.rec.Name)
		return a, a.loadRecipesCmd("")

	case tea.KeyMsg:
		return a.handleDashboardKey(msg)
	}

	return a, nil
}

func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Tab switching is always available except while typing a plan name,
	// a search query or an import path.
	if !a.savePrompt && !a.searching && !a.importing {
		switch msg.String() {
		case "tab":
			a.switchTab(1)
			return a, nil
		case "shift+tab":
			a.switchTab(-1)
			return a, nil
		case "ctrl+q":
			// Logout
			a.currentUser = nil
			a.state = stateWelcome
			a.menuIndex = 0
			a.status = ""
			a.errMsg = ""
			return a, nil
		}
	}

	switch a.tab {
	case tabGenerate:
		return a.handleGenerateKey(msg)
	case tabPlans:
		return a.handlePlansKey(msg)
	case tabRecipes:
		return a.handleRecipesKey(msg)
	case tabProfile:
		if msg.String() == "esc" {
			a.tab = tabGenerate
		}
		return a, nil
	}
	return a, nil
}

func (a *App) switchTab(delta int) {
	a.tab = dashTab((int(a.tab) + delta + len(tabNames)) % len(tabNames))
	a.errMsg = ""
	a.status = ""
}

func (a *App) handleGenerateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Naming prompt for the generated plan.
	if a.savePrompt {
		switch msg.String() {
		case "esc":
			a.savePrompt = false
			return a, nil
		case "enter":
			name := strings.TrimSpace(a.saveName.Value())
			return a, a.savePlanCmd(a.currentUser.ID, name, a.generated)
		}
		var cmd tea.Cmd
		a.saveName, cmd = a.saveName.Update(msg)
		return a, cmd
	}

	// Report view of a freshly generated plan.
	if a.viewingGen {
		switch msg.String() {
		case "s":
			a.savePrompt = true
			a.saveName.SetValue("")
			a.saveName.Focus()
			return a, nil
		case "l":
			// Toggle between the report and its shopping list.
			a.showShopping = !a.showShopping
			if a.showShopping {
				a.reportView.SetContent(planner.RenderShoppingList(a.generated))
			} else {
				a.reportView.SetContent(a.generated.Report)
			}
			a.reportView.GotoTop()
			return a, nil
		case "esc":
			a.viewingGen = false
			a.showShopping = false
			return a, nil
		}
		var cmd tea.Cmd
		a.reportView, cmd = a.reportView.Update(msg)
		return a, cmd
	}

	// Parameter form.
	switch msg.String() {
	case "up":
		a.moveGenFocus(-1)
		return a, nil
	case "down":
		a.moveGenFocus(1)
		return a, nil
	case "enter":
		if a.genFocus < len(a.genInputs)-1 {
			a.moveGenFocus(1)
			return a, nil
		}
		return a.submitGenerate()
	}
	var cmd tea.Cmd
	a.genInputs[a.genFocus], cmd = a.genInputs[a.genFocus].Update(msg)
	return a, cmd
}

func (a *App) moveGenFocus(delta int) {
	a.genInputs[a.genFocus].Blur()
	a.genFocus = (a.genFocus + delta + len(a.genInputs)) % len(a.genInputs)
	a.genInputs[a.genFocus].Focus()
}

func (a *App) submitGenerate() (tea.Model, tea.Cmd) {
	a.errMsg = ""
	a.status = ""
	days, errD := strconv.Atoi(strings.TrimSpace(a.genInputs[0].Value()))
	calories, errC := strconv.Atoi(strings.TrimSpace(a.genInputs[1].Value()))
	if errD != nil || errC != nil {
		a.errMsg = "Jours et calories doivent être des nombres"
		return a, nil
	}
	params := planner.Params{
		Days:           days,
		TargetCalories: calories,
		Difficulty:     strings.TrimSpace(a.genInputs[2].Value()),
		DietTag:        strings.TrimSpace(a.genInputs[3].Value()),
	}
	return a, a.generateCmd(params)
}

func generateErrorText(err error) string {
	switch {
	case errors.Is(err, planner.ErrInvalidParameter):
		return "Paramètres invalides: jours et calories doivent être positifs"
	case errors.Is(err, planner.ErrEmptyCatalog):
		return "Aucune recette ne correspond à ces filtres"
	default:
		return "Erreur: " + err.Error()
	}
}

func (a *App) handlePlansKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.confirmDelete {
		switch msg.String() {
		case "y", "o":
			id := a.selectedPlanID()
			if id == "" {
				a.confirmDelete = false
				return a, nil
			}
			return a, a.deletePlanCmd(id)
		default:
			a.confirmDelete = false
			return a, nil
		}
	}

	if a.viewingPlan != nil {
		switch msg.String() {
		case "esc":
			a.viewingPlan = nil
			return a, nil
		case "t":
			return a, a.exportTextCmd(a.viewingPlan.ID)
		case "p":
			return a, a.exportPDFCmd(a.viewingPlan.ID)
		case "d":
			a.confirmDelete = true
			return a, nil
		}
		var cmd tea.Cmd
		a.reportView, cmd = a.reportView.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "enter":
		if item, ok := a.planList.SelectedItem().(planItem); ok {
			plan := item.plan
			a.viewingPlan = &plan
			a.reportView.SetContent(plan.Report)
			a.reportView.GotoTop()
		}
		return a, nil
	case "d":
		if a.selectedPlanID() != "" {
			a.confirmDelete = true
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.planList, cmd = a.planList.Update(msg)
	return a, cmd
}

func (a *App) selectedPlanID() string {
	if a.viewingPlan != nil {
		return a.viewingPlan.ID
	}
	if item, ok := a.planList.SelectedItem().(planItem); ok {
		return item.plan.ID
	}
	return ""
}

func (a *App) handleRecipesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.importing {
		switch msg.String() {
		case "esc":
			a.importing = false
			a.importInput.Blur()
			return a, nil
		case "enter":
			path := strings.TrimSpace(a.importInput.Value())
			if path == "" {
				a.importing = false
				a.importInput.Blur()
				return a, nil
			}
			return a, a.importRecipeCmd(path, recipe.CategoryLunch)
		}
		var cmd tea.Cmd
		a.importInput, cmd = a.importInput.Update(msg)
		return a, cmd
	}

	if a.searching {
		switch msg.String() {
		case "esc":
			a.searching = false
			a.searchInput.Blur()
			return a, nil
		case "enter":
			a.searching = false
			a.searchInput.Blur()
			return a, a.loadRecipesCmd(strings.TrimSpace(a.searchInput.Value()))
		}
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "/":
		a.searching = true
		a.searchInput.Focus()
		return a, nil
	case "r":
		a.searchInput.SetValue("")
		return a, a.loadRecipesCmd("")
	case "i":
		a.importing = true
		a.importInput.SetValue("")
		a.importInput.Focus()
		return a, nil
	}
	var cmd tea.Cmd
	a.recipeList, cmd = a.recipeList.Update(msg)
	return a, cmd
}

func (a *App) viewDashboard() string {
	var tabs []string
	for i, name := range tabNames {
		if dashTab(i) == a.tab {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, tabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	greeting := statusStyle.Render("Bonjour, " + a.currentUser.FirstName + " !")

	var content string
	switch a.tab {
	case tabGenerate:
		content = a.viewGenerate()
	case tabPlans:
		content = a.viewPlans()
	case tabRecipes:
		content = a.viewRecipes()
	case tabProfile:
		content = a.viewProfile()
	}

	footer := helpStyle.Render("tab changer d'onglet • ctrl+q déconnexion • ctrl+c quitter")
	var notices []string
	if a.errMsg != "" {
		notices = append(notices, errorStyle.Render(a.errMsg))
	}
	if a.status != "" {
		notices = append(notices, statusStyle.Render(a.status))
	}

	parts := []string{greeting, header, content}
	parts = append(parts, notices...)
	parts = append(parts, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (a *App) viewGenerate() string {
	if a.savePrompt {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Sauvegarder le plan"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Nom:"), a.saveName.View()),
			"",
			helpStyle.Render("entrée sauvegarder • échap annuler"),
		))
	}
	if a.viewingGen {
		return lipgloss.JoinVertical(lipgloss.Left,
			a.reportView.View(),
			helpStyle.Render("↑/↓ défiler • s sauvegarder • l liste de courses • échap retour"),
		)
	}

	var b []string
	b = append(b, titleStyle.Render("Générer un plan alimentaire"), "")
	for i, label := range generateLabels {
		b = append(b, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Render(label+":"),
			a.genInputs[i].View(),
		))
	}
	b = append(b, "", helpStyle.Render("↑/↓ champ • entrée sur le dernier champ: générer"))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b...))
}

func (a *App) viewPlans() string {
	if a.confirmDelete {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Supprimer ce plan ?"),
			"",
			helpStyle.Render("o/y confirmer • toute autre touche annuler"),
		))
	}
	if a.viewingPlan != nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			a.reportView.View(),
			helpStyle.Render("↑/↓ défiler • t export txt • p export pdf • d supprimer • échap retour"),
		)
	}
	if len(a.plans) == 0 {
		return cardStyle.Render("Aucun plan sauvegardé pour le moment.")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.planList.View(),
		helpStyle.Render("entrée voir • d supprimer"),
	)
}

func (a *App) viewRecipes() string {
	if a.importing {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Importer une recette (page HTML locale)"),
			"",
			lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("Fichier:"), a.importInput.View()),
			"",
			helpStyle.Render("entrée importer (catégorie Déjeuner) • échap annuler"),
		))
	}
	search := lipgloss.JoinHorizontal(lipgloss.Top,
		labelStyle.Render("Rechercher:"),
		a.searchInput.View(),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		search,
		a.recipeList.View(),
		helpStyle.Render("/ rechercher • r réinitialiser • i importer"),
	)
}

func (a *App) viewProfile() string {
	if a.currentUser == nil || a.currentUser.ID == "demo" {
		return cardStyle.Render("Mode démo - Profil non disponible")
	}
	u := a.currentUser
	info := fmt.Sprintf(
		"👤 Nom: %s %s\n📧 Email: %s\n📏 Taille: %d cm\n⚖️ Poids: %.1f kg\n\n📊 Plans sauvegardés: %d",
		u.FirstName, u.LastName, u.Email, u.Height, u.Weight, a.planCount,
	)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Vos informations"),
		"",
		info,
	))
}
