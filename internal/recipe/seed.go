package recipe

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	Recipes []Recipe `yaml:"recipes"`
}

// SeedRecipes returns the embedded starter catalog.
func SeedRecipes() ([]Recipe, error) {
	var f seedFile
	if err := yaml.Unmarshal(seedYAML, &f); err != nil {
		return nil, fmt.Errorf("failed to parse embedded seed catalog: %w", err)
	}
	return f.Recipes, nil
}

// Seed inserts the starter catalog when the recipes table is empty.
// Returns the number of recipes inserted (0 when already seeded).
func (r *Repository) Seed(ctx context.Context) (int, error) {
	count, err := r.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	recipes, err := SeedRecipes()
	if err != nil {
		return 0, err
	}
	for _, rec := range recipes {
		if _, err := r.Save(ctx, rec); err != nil {
			return 0, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}
	return len(recipes), nil
}
