package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smartmeal-planner/internal/planner"
)

func samplePlan() planner.SavedPlan {
	return planner.SavedPlan{
		ID:             "p1",
		UserID:         "u1",
		Name:           "Plan équilibré",
		Report:         "📋 PLAN ALIMENTAIRE - 2 JOURS\nDéjeuner: Salade de quinoa\n",
		TargetCalories: 2000,
		Days:           2,
		CreatedAt:      time.Date(2024, 11, 15, 9, 30, 0, 0, time.UTC),
	}
}

func TestWriteText(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	plan := samplePlan()

	path, err := WriteText(dir, plan)
	if err != nil {
		t.Fatalf("WriteText failed: %v", err)
	}
	if filepath.Base(path) != "meal_plan_20241115_093000.txt" {
		t.Errorf("Unexpected export filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	// The text export is the report, byte for byte.
	if string(data) != plan.Report {
		t.Errorf("Export content mismatch:\nwant %q\ngot  %q", plan.Report, string(data))
	}
}

func TestWritePDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	plan := samplePlan()

	path, err := WritePDF(dir, plan)
	if err != nil {
		t.Fatalf("WritePDF failed: %v", err)
	}
	if filepath.Base(path) != "meal_plan_20241115_093000.pdf" {
		t.Errorf("Unexpected export filename: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read export: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF") {
		t.Error("Expected a PDF header")
	}
	if len(data) < 500 {
		t.Errorf("PDF suspiciously small: %d bytes", len(data))
	}
}
