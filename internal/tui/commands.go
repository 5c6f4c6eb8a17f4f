package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"smartmeal-planner/internal/planner"
	"smartmeal-planner/internal/recipe"
	"smartmeal-planner/internal/user"
)

// Every store or generator call runs inside a tea.Cmd and reports back
// through one of these messages. Each call is a single synchronous
// operation; there is no background work beyond the command itself.

type loginResultMsg struct {
	user *user.User
	err  error
}

type registerResultMsg struct {
	user *user.User
	err  error
}

type planGeneratedMsg struct {
	plan *planner.GeneratedPlan
	err  error
}

type planSavedMsg struct {
	id  string
	err error
}

type plansLoadedMsg struct {
	plans []planner.SavedPlan
	err   error
}

type planDeletedMsg struct {
	err error
}

type recipesLoadedMsg struct {
	recipes []recipe.Recipe
	err     error
}

type recipeImportedMsg struct {
	rec *recipe.Recipe
	err error
}

type exportDoneMsg struct {
	path string
	err  error
}

type planCountMsg struct {
	count int
	err   error
}

func (a *App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		u, err := a.svc.Login(context.Background(), email, password)
		return loginResultMsg{user: u, err: err}
	}
}

func (a *App) registerCmd(reg user.Registration) tea.Cmd {
	return func() tea.Msg {
		u, err := a.svc.Register(context.Background(), reg)
		return registerResultMsg{user: u, err: err}
	}
}

func (a *App) generateCmd(params planner.Params) tea.Cmd {
	return func() tea.Msg {
		plan, err := a.svc.GeneratePlan(context.Background(), params)
		return planGeneratedMsg{plan: plan, err: err}
	}
}

func (a *App) savePlanCmd(userID, name string, plan *planner.GeneratedPlan) tea.Cmd {
	return func() tea.Msg {
		id, err := a.svc.SavePlan(context.Background(), userID, name, plan)
		return planSavedMsg{id: id, err: err}
	}
}

func (a *App) loadPlansCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		plans, err := a.svc.ListPlans(context.Background(), userID)
		return plansLoadedMsg{plans: plans, err: err}
	}
}

func (a *App) deletePlanCmd(planID string) tea.Cmd {
	return func() tea.Msg {
		return planDeletedMsg{err: a.svc.DeletePlan(context.Background(), planID)}
	}
}

func (a *App) loadRecipesCmd(query string) tea.Cmd {
	return func() tea.Msg {
		recipes, err := a.svc.SearchRecipes(context.Background(), query)
		return recipesLoadedMsg{recipes: recipes, err: err}
	}
}

func (a *App) importRecipeCmd(path, category string) tea.Cmd {
	return func() tea.Msg {
		rec, err := a.svc.ImportRecipe(context.Background(), path, category)
		return recipeImportedMsg{rec: rec, err: err}
	}
}

func (a *App) exportTextCmd(planID string) tea.Cmd {
	return func() tea.Msg {
		path, err := a.svc.ExportPlanText(context.Background(), planID)
		return exportDoneMsg{path: path, err: err}
	}
}

func (a *App) exportPDFCmd(planID string) tea.Cmd {
	return func() tea.Msg {
		path, err := a.svc.ExportPlanPDF(context.Background(), planID)
		return exportDoneMsg{path: path, err: err}
	}
}

func (a *App) planCountCmd(userID string) tea.Cmd {
	return func() tea.Msg {
		count, err := a.svc.PlanCount(context.Background(), userID)
		return planCountMsg{count: count, err: err}
	}
}
