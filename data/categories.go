package data

import "strings"

// Category classifies a book within the catalog.
type Category string

const (
	CategoryNovel     Category = "NOVEL"
	CategoryEssay     Category = "ESSAY"
	CategoryChildren  Category = "CHILDREN"
	CategoryComic     Category = "COMIC"
	CategoryPoetry    Category = "POETRY"
	CategoryTechnical Category = "TECHNICAL"
	CategoryOther     Category = "OTHER"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryNovel,
		CategoryEssay,
		CategoryChildren,
		CategoryComic,
		CategoryPoetry,
		CategoryTechnical,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, category := range Categories() {
		if c == category {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts user input into a Category, ignoring case and
// surrounding whitespace.
func ParseCategory(value string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(value)))
	if !c.IsValid() {
		return "", failedValidationf("category", "must be one of NOVEL, ESSAY, CHILDREN, COMIC, POETRY, TECHNICAL, OTHER")
	}
	return c, nil
}
