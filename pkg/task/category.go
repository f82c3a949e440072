package task

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultColor is used whenever a task's category cannot be resolved or a
// category carries an unusable color token.
const DefaultColor = "#6b7280"

// Category is a named display grouping for tasks. Tasks reference it by
// Name, not ID; a dangling reference falls back to DefaultColor.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Palette is a read-only lookup over a category snapshot.
type Palette []Category

// ColorFor resolves the display color for a category name. Unknown names,
// empty names and invalid color tokens all degrade to DefaultColor.
func (p Palette) ColorFor(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultColor
	}
	for _, c := range p {
		if c.Name == name {
			if _, err := colorful.Hex(c.Color); err != nil {
				return DefaultColor
			}
			return c.Color
		}
	}
	return DefaultColor
}

// Find returns the category with the given name, if present.
func (p Palette) Find(name string) (Category, bool) {
	for _, c := range p {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}

// ForegroundFor picks a readable text color for chips drawn on the
// category's background color.
func ForegroundFor(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		c, _ = colorful.Hex(DefaultColor)
	}
	if _, _, l := c.Hcl(); l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
