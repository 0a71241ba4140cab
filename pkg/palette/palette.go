// Package palette assigns display colors to event categories. The base
// mapping is a total lookup over the closed category enumeration;
// headliner titles rotate through an accent set so back-to-back
// headline acts stay distinguishable; Lighten derives the softer fill
// variant used for block interiors.
package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/venuedeck/venuedeck/pkg/models"
)

// Neutral is the default color of drag-created events before the user
// picks a category.
const Neutral = "#8d99ae"

var baseColors = map[models.Category]string{
	models.CategoryShow:        "#d62839",
	models.CategoryRehearsal:   "#ba9d2f",
	models.CategoryMaintenance: "#6c757d",
	models.CategoryMovie:       "#1d3557",
	models.CategoryGame:        "#2a9d8f",
	models.CategoryActivity:    "#457b9d",
	models.CategoryMusic:       "#7209b7",
	models.CategoryParty:       "#f3722c",
	models.CategoryComedy:      "#f9844a",
	models.CategoryHeadliner:   "#9b2226",
	models.CategoryOther:       "#8d99ae",
}

// headlinerRotation is cycled per title for headliner events.
var headlinerRotation = []string{"#9b2226", "#540b0e", "#c1121f", "#780000"}

// Palette resolves category colors, with optional per-category
// overrides loaded from a YAML file.
type Palette struct {
	overrides map[models.Category]string
}

// New returns a palette with the built-in mapping.
func New() *Palette {
	return &Palette{overrides: map[models.Category]string{}}
}

// Load returns a palette with overrides merged from a YAML file of
// category-to-hex pairs. A missing file yields the built-in palette.
func Load(path string) (*Palette, error) {
	p := New()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}

	raw := map[string]string{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse palette file: %w", err)
	}
	for cat, hex := range raw {
		p.overrides[models.Category(cat)] = hex
	}
	return p, nil
}

// CategoryColor returns the display color for a category, a total
// function over the enumeration. Unset or unknown categories resolve to
// Neutral. Headliner titles rotate deterministically so recomputation
// never reshuffles colors.
func (p *Palette) CategoryColor(cat models.Category, title string) string {
	if hex, ok := p.overrides[cat]; ok {
		return hex
	}
	if cat == models.CategoryHeadliner && title != "" {
		return headlinerRotation[titleKey(title)%len(headlinerRotation)]
	}
	if hex, ok := baseColors[cat]; ok {
		return hex
	}
	return Neutral
}

// Lighten blends a hex color toward white by the given fraction
// (0 = unchanged, 1 = white), the secondary pass that produces the
// block-fill variant of a category color.
func Lighten(hex string, fraction float64) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	blend := func(c uint8) uint8 {
		return uint8(float64(c) + (255-float64(c))*fraction)
	}
	return fmt.Sprintf("#%02x%02x%02x", blend(r), blend(g), blend(b))
}

func titleKey(title string) int {
	sum := 0
	for _, r := range title {
		sum += int(r)
	}
	return sum
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	var ri, gi, bi int
	if _, err := fmt.Sscanf(hex[1:], "%02x%02x%02x", &ri, &gi, &bi); err != nil {
		return 0, 0, 0, false
	}
	return uint8(ri), uint8(gi), uint8(bi), true
}
