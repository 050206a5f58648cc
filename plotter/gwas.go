package plotter

import (
	"math"

	"github.com/DSuveges/GenomePlotter/chunk"
)

const (
	// circleUnit scales the GWAS marker area per hit.
	circleUnit = 63

	// gwasCap is the largest hit count a single marker represents.
	gwasCap = 10
)

// GwasOverlay draws one circle per window carrying GWAS hits. The circle
// area grows with the hit count, capped so a hot window cannot swallow its
// neighbors.
func GwasOverlay(windows []chunk.ClassifiedWindow, pixel int, color string) *SVG {
	s := NewSVG("", 0, 0)

	for _, w := range windows {
		if w.GwasHits == 0 {
			continue
		}

		count := w.GwasHits
		if count > gwasCap {
			count = gwasCap
		}

		radius := math.Sqrt(float64(count*count) * circleUnit / math.Pi)
		s.Circle(float64(w.X*pixel)+radius/2, float64(w.Y*pixel)+radius/2, radius, color)
	}

	return s
}
