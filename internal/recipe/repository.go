package recipe

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository is a database-backed repository for recipes.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{db: d}
}

const recipeColumns = "id, name, category, tags, ingredients, instructions, calories, prep_time, difficulty"

// Save inserts a recipe, assigning an ID when it has none.
func (r *Repository) Save(ctx context.Context, rec Recipe) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO recipes ("+recipeColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		rec.ID, rec.Name, rec.Category, rec.Tags, rec.Ingredients,
		rec.Instructions, rec.Calories, rec.PrepTime, rec.Difficulty,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save recipe %q: %w", rec.Name, err)
	}
	return rec.ID, nil
}

// Get retrieves a recipe by its ID. Returns (nil, nil) when absent.
func (r *Repository) Get(ctx context.Context, id string) (*Recipe, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes WHERE id = ?", id)
	rec, err := scanRecipe(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe by ID: %w", err)
	}
	return rec, nil
}

// List retrieves the full catalog ordered by category then name.
func (r *Repository) List(ctx context.Context) ([]Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+recipeColumns+" FROM recipes ORDER BY category, name")
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()
	return collectRecipes(rows)
}

// Search returns recipes whose name, category or ingredients contain
// the query. An empty query returns the full catalog.
func (r *Repository) Search(ctx context.Context, query string) ([]Recipe, error) {
	if query == "" {
		return r.List(ctx)
	}
	pattern := "%" + query + "%"
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+recipeColumns+` FROM recipes
		 WHERE name LIKE ? OR category LIKE ? OR ingredients LIKE ?
		 ORDER BY category, name`,
		pattern, pattern, pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes: %w", err)
	}
	defer rows.Close()
	return collectRecipes(rows)
}

// Count returns the number of recipes in the database.
func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipes").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count recipes: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*Recipe, error) {
	var rec Recipe
	err := row.Scan(&rec.ID, &rec.Name, &rec.Category, &rec.Tags,
		&rec.Ingredients, &rec.Instructions, &rec.Calories, &rec.PrepTime, &rec.Difficulty)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func collectRecipes(rows *sql.Rows) ([]Recipe, error) {
	var recipes []Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe row: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipe rows: %w", err)
	}
	return recipes, nil
}
