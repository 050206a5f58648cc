package plotter

import (
	"fmt"

	"github.com/DSuveges/GenomePlotter/chunk"
)

// DrawChromosome renders the classified windows of one chromosome as a grid
// of pixel-sized rectangles, one per window, and carves out the centromere
// constriction.
func DrawChromosome(windows []chunk.ClassifiedWindow, pixel int) *SVG {
	maxX, maxY := 0, 0
	for _, w := range windows {
		if w.X > maxX {
			maxX = w.X
		}
		if w.Y > maxY {
			maxY = w.Y
		}
	}

	s := NewSVG("", float64(pixel*(maxX+1)), float64(pixel*(maxY+1)))

	for _, w := range windows {
		s.Rect(float64(w.X*pixel), float64(w.Y*pixel), float64(pixel), float64(pixel), w.Color, w.Color)
	}

	addCentromereCutout(s, windows, pixel)

	return s
}

// DrawDummy renders a featureless chromosome silhouette with correct
// dimensions: one solid rectangle in the dummy color with the centromere band
// overlaid.
func DrawDummy(windows []chunk.ClassifiedWindow, pixel int) *SVG {
	maxX, maxY := 0, 0
	var dummyColor, centromereColor string
	centromereStart, centromereEnd := -1, -1

	for _, w := range windows {
		if w.X > maxX {
			maxX = w.X
		}
		if w.Y > maxY {
			maxY = w.Y
		}

		if w.Feature == chunk.FeatureCentromere {
			centromereColor = w.Color
			if centromereStart < 0 || w.Y < centromereStart {
				centromereStart = w.Y
			}
			if w.Y > centromereEnd {
				centromereEnd = w.Y
			}
		} else if dummyColor == "" {
			dummyColor = w.Color
		}
	}

	width := float64(pixel * (maxX + 1))
	height := float64(pixel * (maxY + 1))

	s := NewSVG("", width, height)
	s.Rect(0, 0, width, height, dummyColor, dummyColor)

	if centromereStart >= 0 {
		s.Rect(0, float64(centromereStart*pixel), width,
			float64((centromereEnd-centromereStart)*pixel), centromereColor, centromereColor)
	}

	addCentromereCutout(s, windows, pixel)

	return s
}

// addCentromereCutout draws the white constriction at the centromere: two
// mirrored lens-shaped paths eating into the sides of the chunk grid.
func addCentromereCutout(s *SVG, windows []chunk.ClassifiedWindow, pixel int) {
	start, end := -1, -1
	for _, w := range windows {
		if w.Feature != chunk.FeatureCentromere {
			continue
		}
		if start < 0 || w.Y < start {
			start = w.Y
		}
		if w.Y > end {
			end = w.Y
		}
	}

	// The plotted region may not include a centromere at all.
	if start < 0 {
		return
	}

	centromereStart := float64(start * pixel)
	height := float64(end*pixel) - centromereStart
	midpoint := height / 2
	depth := s.Width() / 3

	side := fmt.Sprintf(
		"<path d=\"M -1 0 C 0 %g, %g %g, %g %g C %g %g, 0 %g, -1 %g Z\" fill=\"white\"/>\n",
		midpoint, depth/2, midpoint, depth/2, midpoint,
		depth/2, midpoint, midpoint, height)

	left := fmt.Sprintf("<g transform=\"translate(0, %g)\">\n\t%s</g>\n", centromereStart, side)
	right := fmt.Sprintf(
		"<g transform=\"rotate(180 0 %g) translate(-%g, 0)\">\n\t%s</g>\n",
		centromereStart+midpoint, s.Width(), left)

	s.Append(fmt.Sprintf("\n<g id=\"centromere\">\n\t%s\t%s</g>\n", left, right))
}
