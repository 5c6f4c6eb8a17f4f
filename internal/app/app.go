// Package app ties the stores and the plan generator together behind
// the operations the presentation layer invokes. The UI never touches
// a repository or the generator directly.
package app

import (
	"context"
	"fmt"

	"smartmeal-planner/internal/config"
	"smartmeal-planner/internal/export"
	"smartmeal-planner/internal/logging"
	"smartmeal-planner/internal/planner"
	"smartmeal-planner/internal/recipe"
	"smartmeal-planner/internal/user"
)

// App holds the application's dependencies.
type App struct {
	cfg      *config.Config
	log      *logging.Logger
	users    *user.Repository
	plans    *planner.PlanRepository
	recipes  *recipe.Repository
	importer *recipe.Importer
}

// NewApp creates and initializes a new App instance.
func NewApp(
	cfg *config.Config,
	log *logging.Logger,
	users *user.Repository,
	plans *planner.PlanRepository,
	recipes *recipe.Repository,
) *App {
	return &App{
		cfg:      cfg,
		log:      log,
		users:    users,
		plans:    plans,
		recipes:  recipes,
		importer: recipe.NewImporter(recipes),
	}
}

// Register creates a new user account.
func (a *App) Register(ctx context.Context, reg user.Registration) (*user.User, error) {
	u, err := a.users.Register(ctx, reg)
	if err != nil {
		a.log.Printf("register failed for %s: %v", reg.Email, err)
		return nil, err
	}
	a.log.Printf("registered user %s (%s)", u.ID, u.Email)
	return u, nil
}

// Login authenticates an email/password pair.
func (a *App) Login(ctx context.Context, email, password string) (*user.User, error) {
	u, err := a.users.Login(ctx, email, password)
	if err != nil {
		a.log.Printf("login failed for %s: %v", email, err)
		return nil, err
	}
	a.log.Printf("user %s logged in", u.ID)
	return u, nil
}

// GeneratePlan fetches the catalog and runs the generator.
func (a *App) GeneratePlan(ctx context.Context, params planner.Params) (*planner.GeneratedPlan, error) {
	catalog, err := a.recipes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe catalog: %w", err)
	}
	plan, err := planner.Generate(catalog, params)
	if err != nil {
		return nil, err
	}
	a.log.Printf("generated %d-day plan, total %d cal, rating %s",
		params.Days, plan.TotalCalories, plan.Rating)
	return plan, nil
}

// SavePlan persists a generated plan under the given name. An empty
// name gets a timestamp-based default.
func (a *App) SavePlan(ctx context.Context, userID, name string, plan *planner.GeneratedPlan) (string, error) {
	id, err := a.plans.Save(ctx, planner.SavedPlan{
		UserID:         userID,
		Name:           name,
		Report:         plan.Report,
		TargetCalories: plan.Params.TargetCalories,
		Days:           plan.Params.Days,
		CreatedAt:      plan.GeneratedAt.UTC(),
	})
	if err != nil {
		return "", err
	}
	a.log.Printf("saved plan %s for user %s", id, userID)
	return id, nil
}

// ListPlans returns the user's saved plans, newest first.
func (a *App) ListPlans(ctx context.Context, userID string) ([]planner.SavedPlan, error) {
	return a.plans.ListByUser(ctx, userID)
}

// ViewPlan returns one saved plan with its full report text.
func (a *App) ViewPlan(ctx context.Context, planID string) (*planner.SavedPlan, error) {
	return a.plans.Get(ctx, planID)
}

// DeletePlan removes a saved plan.
func (a *App) DeletePlan(ctx context.Context, planID string) error {
	if err := a.plans.Delete(ctx, planID); err != nil {
		return err
	}
	a.log.Printf("deleted plan %s", planID)
	return nil
}

// PlanCount returns how many plans the user has saved, for the profile
// statistics.
func (a *App) PlanCount(ctx context.Context, userID string) (int, error) {
	return a.plans.CountByUser(ctx, userID)
}

// ListRecipes returns the full catalog.
func (a *App) ListRecipes(ctx context.Context) ([]recipe.Recipe, error) {
	return a.recipes.List(ctx)
}

// SearchRecipes filters the catalog by a keyword over name, category
// and ingredients.
func (a *App) SearchRecipes(ctx context.Context, query string) ([]recipe.Recipe, error) {
	return a.recipes.Search(ctx, query)
}

// ImportRecipe adds a recipe parsed from a locally saved HTML page.
func (a *App) ImportRecipe(ctx context.Context, path, category string) (*recipe.Recipe, error) {
	rec, err := a.importer.ImportFile(ctx, path, category)
	if err != nil {
		a.log.Printf("import of %s failed: %v", path, err)
		return nil, err
	}
	a.log.Printf("imported recipe %q from %s", rec.Name, path)
	return rec, nil
}

// ExportPlanText writes a saved plan to a text file and returns the path.
func (a *App) ExportPlanText(ctx context.Context, planID string) (string, error) {
	plan, err := a.plans.Get(ctx, planID)
	if err != nil {
		return "", err
	}
	path, err := export.WriteText(a.cfg.ExportDir, *plan)
	if err != nil {
		return "", err
	}
	a.log.Printf("exported plan %s to %s", planID, path)
	return path, nil
}

// ExportPlanPDF writes a saved plan to a PDF file and returns the path.
func (a *App) ExportPlanPDF(ctx context.Context, planID string) (string, error) {
	plan, err := a.plans.Get(ctx, planID)
	if err != nil {
		return "", err
	}
	path, err := export.WritePDF(a.cfg.ExportDir, *plan)
	if err != nil {
		return "", err
	}
	a.log.Printf("exported plan %s to %s", planID, path)
	return path, nil
}
