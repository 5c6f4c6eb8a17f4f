package planner

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SavedPlan is a persisted, immutable copy of a generated report.
// The report text is stored as an opaque blob and never re-parsed.
type SavedPlan struct {
	ID             string
	UserID         string
	Name           string
	Report         string
	TargetCalories int
	Days           int
	CreatedAt      time.Time
}

// DefaultPlanName returns the name used when the user saves a plan
// without typing one.
func DefaultPlanName(now time.Time) string {
	return "Plan du " + now.Format("02/01/2006 15:04")
}

// PlanRepository is a database-backed repository for saved meal plans.
type PlanRepository struct {
	db *sql.DB
}

// NewPlanRepository creates a new PlanRepository.
func NewPlanRepository(d *sql.DB) *PlanRepository {
	return &PlanRepository{db: d}
}

// Save inserts a new saved plan and returns its id. Names need not be
// unique; two saves always produce two records.
func (r *PlanRepository) Save(ctx context.Context, plan SavedPlan) (string, error) {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	if plan.Name == "" {
		plan.Name = DefaultPlanName(plan.CreatedAt)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO meal_plans (id, user_id, name, report, target_calories, days, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.UserID, plan.Name, plan.Report,
		plan.TargetCalories, plan.Days, plan.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save meal plan: %w", err)
	}
	return plan.ID, nil
}

// ListByUser retrieves a user's saved plans, newest first.
func (r *PlanRepository) ListByUser(ctx context.Context, userID string) ([]SavedPlan, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, name, report, target_calories, days, created_at
		 FROM meal_plans WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans for user %s: %w", userID, err)
	}
	defer rows.Close()

	var plans []SavedPlan
	for rows.Next() {
		var p SavedPlan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Report,
			&p.TargetCalories, &p.Days, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meal plan row: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal plan rows: %w", err)
	}
	return plans, nil
}

// Get retrieves one saved plan by id.
func (r *PlanRepository) Get(ctx context.Context, id string) (*SavedPlan, error) {
	var p SavedPlan
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, report, target_calories, days, created_at
		 FROM meal_plans WHERE id = ?`, id).
		Scan(&p.ID, &p.UserID, &p.Name, &p.Report, &p.TargetCalories, &p.Days, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get meal plan %s: %w", id, err)
	}
	return &p, nil
}

// CountByUser returns how many plans a user has saved.
func (r *PlanRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM meal_plans WHERE user_id = ?", userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count meal plans for user %s: %w", userID, err)
	}
	return count, nil
}

// Delete removes a saved plan. Deleting an unknown id reports
// ErrPlanNotFound.
func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM meal_plans WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete meal plan %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
