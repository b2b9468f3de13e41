package services

import (
	"image/color"

	"github.com/epeers/deficits/internal/models"
)

// paletteSpace is the size of the RGB cube's linear index, 255^3 as in the
// reference chart.
const paletteSpace = 255 * 255 * 255

// Palette binds one color to each president of a merged result.
// It is only stable within a single run.
type Palette struct {
	presidents []string
	colors     map[string]color.RGBA
}

// SpacedColors partitions the linear RGB index into n equal steps and returns
// the color at the start of each step.
func SpacedColors(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	interval := paletteSpace / n
	if interval == 0 {
		interval = 1
	}

	colors := make([]color.RGBA, n)
	for i := range colors {
		v := i * interval
		colors[i] = color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
	}
	return colors
}

// PresidentsInOrder returns the distinct presidents of merged in order of first appearance
func PresidentsInOrder(merged []models.MergedYearRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range merged {
		if seen[m.President] {
			continue
		}
		seen[m.President] = true
		names = append(names, m.President)
	}
	return names
}

// AssignPalette gives every president in merged a distinct color
func AssignPalette(merged []models.MergedYearRecord) *Palette {
	names := PresidentsInOrder(merged)
	colors := SpacedColors(len(names))

	p := &Palette{
		presidents: names,
		colors:     make(map[string]color.RGBA, len(names)),
	}
	for i, name := range names {
		p.colors[name] = colors[i]
	}
	return p
}

// Color returns the color bound to president, and false if none was assigned
func (p *Palette) Color(president string) (color.RGBA, bool) {
	c, ok := p.colors[president]
	return c, ok
}

// Presidents returns the palette's presidents in first-appearance order
func (p *Palette) Presidents() []string {
	return p.presidents
}
