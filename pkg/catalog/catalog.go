// Package catalog is the static template registry: category -> ordered
// templates. It is loaded once at init and read-only afterwards, so lookups
// need no locking.
package catalog

import "github.com/Eloura74/Backbone/pkg/models"

// Template is a reusable subject/body skeleton scoped to a category.
// Subject and body may contain [BRACKET] placeholder tokens which are left
// untouched until the resolver substitutes them.
type Template struct {
	ID       string
	Label    string
	Category models.Category
	Subject  string
	Body     string
}

// Ref is the lightweight view returned to template pickers.
type Ref struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var (
	byCategory map[models.Category][]Template
	byID       map[string]Template
)

// For returns the ordered template refs eligible for a category. Categories
// without dedicated templates, and unknown categories, fall back to the
// general bucket; the result is never empty.
func For(cat models.Category) []Ref {
	ts, ok := byCategory[cat]
	if !ok || len(ts) == 0 {
		ts = byCategory[models.CategoryGeneral]
	}
	out := make([]Ref, 0, len(ts))
	for _, t := range ts {
		out = append(out, Ref{ID: t.ID, Label: t.Label})
	}
	return out
}

// Get looks a template up by id across all categories.
func Get(id string) (Template, bool) {
	t, ok := byID[id]
	return t, ok
}

// IDs returns all template ids, in registration order per category. Mostly
// useful for tests and the docs endpoint.
func IDs() []string {
	out := make([]string, 0, len(byID))
	for _, cat := range []models.Category{
		models.CategoryFacturation, models.CategoryRH, models.CategoryLogement,
		models.CategoryDirection, models.CategoryUrgence, models.CategoryGeneral,
	} {
		for _, t := range byCategory[cat] {
			out = append(out, t.ID)
		}
	}
	return out
}

func register(ts ...Template) {
	for _, t := range ts {
		byCategory[t.Category] = append(byCategory[t.Category], t)
		byID[t.ID] = t
	}
}

func init() {
	byCategory = make(map[models.Category][]Template)
	byID = make(map[string]Template)
	register(facturationTemplates...)
	register(rhTemplates...)
	register(logementTemplates...)
	register(directionTemplates...)
	register(urgenceTemplates...)
	register(generalTemplates...)
}
