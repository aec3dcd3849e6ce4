package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// Palette is a list of category colors. Colors are reused when there are more categories than colors.
var Palette = []string{
	"#6366F1", "#10B981", "#F59E0B", "#F43F5E", "#06B6D4",
	"#A78BFA", "#22C55E", "#3B82F6", "#E11D48", "#14B8A6",
}

// ColorAt returns palette color for i-th category.
func ColorAt(i int) string {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// Colors returns colors for n categories.
func Colors(n int) []string {
	colors := make([]string, 0, n)
	for i := 0; i < n; i++ {
		colors = append(colors, ColorAt(i))
	}
	return colors
}

// WithAlpha converts "#RRGGBB" color to css rgba notation with given alpha.
// Returns input unchanged if it's not a valid hex color.
func WithAlpha(hex string, alpha float64) string {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return hex
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return hex
	}

	r := (v >> 16) & 0xff
	g := (v >> 8) & 0xff
	b := v & 0xff
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64))
}
