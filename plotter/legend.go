package plotter

import (
	"fmt"

	"github.com/DSuveges/GenomePlotter/chunk"
	"github.com/DSuveges/GenomePlotter/palette"
)

// legendRows fixes the order and labels of the legend entries.
var legendRows = []struct {
	feature chunk.Feature
	label   string
}{
	{chunk.FeatureExon, "Exons"},
	{chunk.FeatureGene, "Introns"},
	{chunk.FeatureCentromere, "Centromere"},
	{chunk.FeatureHeterochromatin, "Heterochromatic region"},
}

// DrawLegend renders one gradient strip per category with its label, plus
// GC-percentage guide lines, so a reader can decode the heat map shades.
func DrawLegend(colors map[chunk.Feature]string, pixel int) (*SVG, error) {
	box := float64(pixel * 5)

	s := NewSVG("", 750, 300)
	y := 0.0

	for _, row := range legendRows {
		base := colors[row.feature]

		// Heterochromatin is flat; every other strip fades to white.
		finish := "#FFFFFF"
		if row.feature == chunk.FeatureHeterochromatin || row.feature == chunk.FeatureCentromere {
			finish = base
		}

		gradient, err := palette.LinearGradient(base, finish, 20)
		if err != nil {
			return nil, err
		}

		x := 0.0
		for _, color := range gradient {
			s.Rect(x, y, box/2, box, color, color)
			x += box / 2
		}

		s.Text(x+box*0.5, y+box*0.6, row.label, box/2, "#000000", "start")
		y += box * 1.1
	}

	// GC content guide marks at 0, 50, and 100 percent.
	for _, percent := range []float64{0, 50, 100} {
		x := percent * box / 10
		s.Line(x, 0, x, y+10, "#000000", 2)
		s.Text(x-box*0.5, y+10+box*0.5, fmt.Sprintf("%g%%", percent), box*0.5, "#000000", "start")
	}

	return s, nil
}
