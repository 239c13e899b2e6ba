// Package categorizer resolves subscription category names against the
// closed default set plus any user-defined custom categories. Unknown
// names resolve to the Other category so a record with a stale or
// misspelled category still renders somewhere sensible.
package categorizer

import "strings"

// Default category names.
const (
	CategoryStreaming    = "Streaming"
	CategoryMusic        = "Music"
	CategoryGaming       = "Gaming"
	CategoryProductivity = "Productivity"
	CategoryUtilities    = "Utilities"
	CategoryFitness      = "Fitness"
	CategoryEducation    = "Education"
	CategoryNews         = "News"
	CategoryFood         = "Food"
	CategoryShopping     = "Shopping"
	CategoryFinance      = "Finance"
	CategoryOther        = "Other"
)

// DefaultCategories lists the built-in categories in display order.
var DefaultCategories = []string{
	CategoryStreaming,
	CategoryMusic,
	CategoryGaming,
	CategoryProductivity,
	CategoryUtilities,
	CategoryFitness,
	CategoryEducation,
	CategoryNews,
	CategoryFood,
	CategoryShopping,
	CategoryFinance,
	CategoryOther,
}

// CustomCategory is a user-defined category with an optional display
// color.
type CustomCategory struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color,omitempty"`
}

// Registry answers category membership questions for the default set
// extended with a fixed list of custom categories.
type Registry struct {
	customs []CustomCategory
	byFold  map[string]string // folded name -> canonical name
	colors  map[string]string // canonical name -> color
}

// NewRegistry builds a registry over the default categories plus the
// given custom ones. Custom categories whose folded name collides with
// a default or an earlier custom entry are ignored.
func NewRegistry(customs []CustomCategory) *Registry {
	r := &Registry{
		byFold: make(map[string]string, len(DefaultCategories)+len(customs)),
		colors: make(map[string]string, len(customs)),
	}
	for _, name := range DefaultCategories {
		r.byFold[fold(name)] = name
	}
	for _, c := range customs {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		if _, exists := r.byFold[fold(name)]; exists {
			continue
		}
		r.byFold[fold(name)] = name
		if c.Color != "" {
			r.colors[name] = c.Color
		}
		r.customs = append(r.customs, CustomCategory{Name: name, Color: c.Color})
	}
	return r
}

// Resolve maps an arbitrary category string to its canonical known
// name, falling back to Other for empty or unknown input.
func (r *Registry) Resolve(name string) string {
	if canonical, ok := r.byFold[fold(name)]; ok {
		return canonical
	}
	return CategoryOther
}

// Known reports whether a name matches a default or custom category.
func (r *Registry) Known(name string) bool {
	_, ok := r.byFold[fold(name)]
	return ok
}

// Customs returns the registered custom categories.
func (r *Registry) Customs() []CustomCategory {
	return r.customs
}

// ColorFor returns the display color of a custom category, or "" for
// defaults and unknown names.
func (r *Registry) ColorFor(name string) string {
	return r.colors[r.Resolve(name)]
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
