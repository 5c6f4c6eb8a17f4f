// Package export writes saved plan reports to files the user can keep
// or print: plain text and A4 PDF.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"smartmeal-planner/internal/planner"
)

func exportFilename(createdAt time.Time, ext string) string {
	return fmt.Sprintf("meal_plan_%s.%s", createdAt.Format("20060102_150405"), ext)
}

// WriteText writes the report to <dir>/meal_plan_<timestamp>.txt and
// returns the full path.
func WriteText(dir string, plan planner.SavedPlan) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, exportFilename(plan.CreatedAt, "txt"))
	if err := os.WriteFile(path, []byte(plan.Report), 0o644); err != nil {
		return "", fmt.Errorf("failed to write plan export: %w", err)
	}
	return path, nil
}

// WritePDF renders the report as an A4 PDF and returns the full path.
// The core PDF fonts cover latin-1 only, so decorative symbols outside
// that range are dropped by the translator.
func WritePDF(dir string, plan planner.SavedPlan) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 8, tr(plan.Name), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range strings.Split(plan.Report, "\n") {
		pdf.MultiCell(0, 5, tr(line), "", "L", false)
	}

	path := filepath.Join(dir, exportFilename(plan.CreatedAt, "pdf"))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write PDF export: %w", err)
	}
	return path, nil
}
