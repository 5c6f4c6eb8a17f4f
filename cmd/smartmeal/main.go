package main

import (
	"context"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"smartmeal-planner/internal/app"
	"smartmeal-planner/internal/config"
	"smartmeal-planner/internal/database"
	"smartmeal-planner/internal/logging"
	"smartmeal-planner/internal/planner"
	"smartmeal-planner/internal/recipe"
	"smartmeal-planner/internal/tui"
	"smartmeal-planner/internal/user"
)

func main() {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logger.Close()

	db, err := database.NewDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	userRepo := user.NewRepository(db.SQL)
	planRepo := planner.NewPlanRepository(db.SQL)
	recipeRepo := recipe.NewRepository(db.SQL)

	seeded, err := recipeRepo.Seed(context.Background())
	if err != nil {
		log.Fatalf("Failed to seed recipe catalog: %v", err)
	}
	if seeded > 0 {
		logger.Printf("seeded catalog with %d recipes", seeded)
	}

	application := app.NewApp(cfg, logger, userRepo, planRepo, recipeRepo)

	program := tea.NewProgram(tui.New(application), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
