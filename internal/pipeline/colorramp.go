package pipeline

import (
	"fmt"
	"math"
	"strings"

	"go-dominance/internal/model"
)

// Direction orders the gradient palette against the values
type Direction int

const (
	// Ascending maps larger values to later (darker) palette shades
	Ascending Direction = iota
	// Descending maps larger values to earlier (lighter) palette shades
	Descending
)

// HighlightRed marks the maximum value
const HighlightRed model.Color = "#e74c3c"

// BluesPalette is the 9-shade sequential Blues scale, light to dark.
var BluesPalette = []model.Color{
	"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
	"#4292c6", "#2171b5", "#08519c", "#08306b",
}

// RampOptions configures ColorRamp. Zero values fall back to the defaults.
type RampOptions struct {
	Palette   []model.Color
	Highlight model.Color
	Direction Direction
}

// ParseDirection accepts "", "asc", "ascending", "desc" and "descending".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: gradient direction %q", ErrInvalidRequest, s)
	}
}

func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

func (o RampOptions) withDefaults() RampOptions {
	if len(o.Palette) == 0 {
		o.Palette = BluesPalette
	}
	if o.Highlight == "" {
		o.Highlight = HighlightRed
	}
	return o
}

// FlatShade is the palette index used when all non-maximum values are equal.
func (o RampOptions) FlatShade() int {
	return len(o.withDefaults().Palette) / 2
}

// ColorRamp colors a value series for a bar chart: the first maximum gets the
// highlight color and every other value a palette shade, chosen by normalizing
// it between the min and max of the non-maximum values.
//
// NaN never wins the maximum and is shaded as the subset minimum.
func ColorRamp(values []float64, opts RampOptions) []model.Color {
	colors := make([]model.Color, len(values))
	if len(values) == 0 {
		return colors
	}
	opts = opts.withDefaults()

	maxIdx := argMax(values)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i, v := range values {
		if i == maxIdx || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	for i, v := range values {
		if i == maxIdx {
			colors[i] = opts.Highlight
			continue
		}
		colors[i] = opts.Palette[opts.shadeIndex(v, lo, hi)]
	}
	return colors
}

func (o RampOptions) shadeIndex(v, lo, hi float64) int {
	k := len(o.Palette)
	if !(hi > lo) {
		return k / 2
	}
	if math.IsNaN(v) {
		v = lo
	}

	idx := int((v - lo) / (hi - lo) * float64(k-1))
	if idx < 0 {
		idx = 0
	}
	if idx > k-1 {
		idx = k - 1
	}
	if o.Direction == Descending {
		idx = k - 1 - idx
	}
	return idx
}

// argMax returns the first index of the maximum; NaN is skipped.
func argMax(values []float64) int {
	best := 0
	bestVal := math.Inf(-1)
	found := false
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !found || v > bestVal {
			best, bestVal, found = i, v, true
		}
	}
	return best
}
