package recipe

import (
	"context"
	"path/filepath"
	"testing"

	"smartmeal-planner/internal/database"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(db.SQL)
}

func TestRepositorySaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	id, err := repo.Save(ctx, Recipe{
		Name:         "Salade de quinoa",
		Category:     CategoryLunch,
		Tags:         "végétarien",
		Ingredients:  "100g quinoa, 1 avocat",
		Instructions: "Cuire le quinoa, mélanger",
		Calories:     350,
		PrepTime:     20,
		Difficulty:   DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if id == "" {
		t.Fatal("Expected a generated id")
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected recipe, got nil")
	}
	if got.Name != "Salade de quinoa" || got.Calories != 350 {
		t.Errorf("Unexpected recipe: %+v", got)
	}

	missing, err := repo.Get(ctx, "no-such-id")
	if err != nil {
		t.Fatalf("Get on missing id failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for missing id, got %+v", missing)
	}
}

func TestRepositorySeed(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	inserted, err := repo.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	if inserted != 9 {
		t.Errorf("Expected 9 recipes seeded, got %d", inserted)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 9 {
		t.Errorf("Expected 9 recipes in catalog, got %d", count)
	}

	// Seeding again is a no-op.
	inserted, err = repo.Seed(ctx)
	if err != nil {
		t.Fatalf("Second seed failed: %v", err)
	}
	if inserted != 0 {
		t.Errorf("Expected second seed to insert nothing, got %d", inserted)
	}
}

func TestRepositorySearch(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	if _, err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	t.Run("ByName", func(t *testing.T) {
		results, err := repo.Search(ctx, "quinoa")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 1 || results[0].Name != "Salade de quinoa" {
			t.Errorf("Unexpected results: %+v", results)
		}
	})

	t.Run("ByIngredient", func(t *testing.T) {
		results, err := repo.Search(ctx, "saumon")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("Expected 1 result, got %d", len(results))
		}
	})

	t.Run("ByCategory", func(t *testing.T) {
		results, err := repo.Search(ctx, CategoryDinner)
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 3 {
			t.Errorf("Expected 3 dinner recipes, got %d", len(results))
		}
	})

	t.Run("EmptyQueryReturnsAll", func(t *testing.T) {
		results, err := repo.Search(ctx, "")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 9 {
			t.Errorf("Expected full catalog, got %d", len(results))
		}
	})

	t.Run("NoMatch", func(t *testing.T) {
		results, err := repo.Search(ctx, "pizza quatre fromages")
		if err != nil {
			t.Fatalf("Search failed: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("Expected no results, got %d", len(results))
		}
	})
}
