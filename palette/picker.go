package palette

import (
	"fmt"

	"github.com/DSuveges/GenomePlotter/chunk"
)

// DefaultGradientLength is the number of shades generated per category.
const DefaultGradientLength = 30

// Options configures a Picker.
type Options struct {
	// Colors maps every category (and "dummy") to its base hex color.
	Colors map[chunk.Feature]string

	// GradientLength is the number of shades per category gradient.
	GradientLength int

	// Width is the number of windows in one plotted row.
	Width int

	// DarkStart is the fraction of the row width where positional
	// darkening begins; DarkMax is the darkening fraction reached at the
	// last column. Both must be in (0,1).
	DarkStart float64
	DarkMax   float64
}

// Picker assigns a final display color to a classified window. Construct it
// once per plot; it is read-only afterward.
type Picker struct {
	gradients map[chunk.Feature][]string
	width     int
	count     int
	darkStart float64
	darkMax   float64
}

// requiredFeatures must all have a configured base color.
var requiredFeatures = []chunk.Feature{
	chunk.FeatureCentromere,
	chunk.FeatureHeterochromatin,
	chunk.FeatureIntergenic,
	chunk.FeatureExon,
	chunk.FeatureGene,
	chunk.FeatureDummy,
}

// NewPicker validates the options and precomputes the per-category shade
// gradients (base color fading toward white).
func NewPicker(opt Options) (*Picker, error) {
	if opt.GradientLength == 0 {
		opt.GradientLength = DefaultGradientLength
	}
	if opt.GradientLength < 2 {
		return nil, fmt.Errorf("gradient length must be at least 2, got %d", opt.GradientLength)
	}
	if opt.Width <= 0 {
		return nil, fmt.Errorf("row width must be positive, got %d", opt.Width)
	}
	for name, v := range map[string]float64{"dark_start": opt.DarkStart, "dark_max": opt.DarkMax} {
		if v <= 0 || v >= 1 {
			return nil, fmt.Errorf("option %s must be between 0 and 1 exclusive, got %f", name, v)
		}
	}

	p := &Picker{
		gradients: make(map[chunk.Feature][]string),
		width:     opt.Width,
		count:     opt.GradientLength,
		darkStart: opt.DarkStart,
		darkMax:   opt.DarkMax,
	}

	for _, feature := range requiredFeatures {
		base, ok := opt.Colors[feature]
		if !ok {
			return nil, fmt.Errorf("missing color for category %q", feature)
		}

		gradient, err := LinearGradient(base, "#FFFFFF", p.count)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", feature, err)
		}
		p.gradients[feature] = gradient
	}

	return p, nil
}

// BaseColor returns the flat base color of a category.
func (p *Picker) BaseColor(feature chunk.Feature) (string, error) {
	gradient, ok := p.gradients[feature]
	if !ok {
		return "", fmt.Errorf("category %q has no configured color", feature)
	}

	return gradient[0], nil
}

// Pick computes the final color for a window of the given category, GC ratio,
// and column x. Centromere and heterochromatin windows keep their flat base
// color; dummy windows are never darkened; everything else is shaded by GC
// ratio and darkened by row position.
func (p *Picker) Pick(feature chunk.Feature, gc chunk.GCRatio, x int) (string, error) {
	switch feature {
	case chunk.FeatureDummy, chunk.FeatureCentromere, chunk.FeatureHeterochromatin:
		return p.BaseColor(feature)
	}

	gradient, ok := p.gradients[feature]
	if !ok {
		return "", fmt.Errorf("category %q has no configured color", feature)
	}

	if !gc.Defined {
		// Undefined GC is classified heterochromatin upstream; falling
		// through here means the caller skipped classification.
		return p.BaseColor(chunk.FeatureHeterochromatin)
	}
	if gc.Value < 0 || gc.Value > 1 {
		return "", fmt.Errorf("GC ratio %f outside [0,1]", gc.Value)
	}

	color := gradient[int(gc.Value*float64(p.count-1))]

	return Darken(color, x, p.width, p.darkStart, p.darkMax)
}
