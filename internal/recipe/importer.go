package recipe

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Importer extracts a recipe from a locally saved HTML page and adds it
// to the catalog. It only reads the filesystem; nothing is fetched.
type Importer struct {
	repo *Repository
}

// NewImporter creates a new Importer backed by the given repository.
func NewImporter(repo *Repository) *Importer {
	return &Importer{repo: repo}
}

var (
	caloriesRe = regexp.MustCompile(`(?i)(\d+)\s*(?:k?cal|calories?)`)
	prepTimeRe = regexp.MustCompile(`(?i)(\d+)\s*min`)
)

// ImportFile parses the HTML file at path, builds a Recipe for the
// given meal-slot category and saves it. The category is caller-chosen
// because saved pages rarely carry one.
func (im *Importer) ImportFile(ctx context.Context, path, category string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe page: %w", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe page: %w", err)
	}

	// Remove noise before extracting text
	doc.Find("script, style, nav, footer, iframe").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	rec := extractRecipe(doc)
	if rec.Name == "" {
		return nil, fmt.Errorf("no recipe title found in %s", path)
	}
	if rec.Ingredients == "" {
		return nil, fmt.Errorf("no ingredient list found in %s", path)
	}
	rec.Category = category
	if rec.Difficulty == "" {
		rec.Difficulty = DifficultyMedium
	}

	id, err := im.repo.Save(ctx, rec)
	if err != nil {
		return nil, err
	}
	rec.ID = id
	return &rec, nil
}

func extractRecipe(doc *goquery.Document) Recipe {
	var rec Recipe

	rec.Name = strings.TrimSpace(doc.Find("h1").First().Text())
	if rec.Name == "" {
		rec.Name = strings.TrimSpace(doc.Find("title").First().Text())
	}

	// Ingredients: list items of the first <ul>, falling back to any list.
	var ingredients []string
	doc.Find("ul").First().Find("li").Each(func(i int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			ingredients = append(ingredients, t)
		}
	})
	rec.Ingredients = strings.Join(ingredients, ", ")

	// Instructions: ordered-list steps, else paragraphs.
	var steps []string
	doc.Find("ol").First().Find("li").Each(func(i int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			steps = append(steps, t)
		}
	})
	if len(steps) == 0 {
		doc.Find("p").Each(func(i int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				steps = append(steps, t)
			}
		})
	}
	rec.Instructions = strings.Join(steps, " ")

	body := doc.Find("body").Text()
	if m := caloriesRe.FindStringSubmatch(body); m != nil {
		rec.Calories, _ = strconv.Atoi(m[1])
	}
	if m := prepTimeRe.FindStringSubmatch(body); m != nil {
		rec.PrepTime, _ = strconv.Atoi(m[1])
	}

	return rec
}
