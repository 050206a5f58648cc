package plotter

import (
	"image/png"
	"math"
	"os"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"

	"github.com/DSuveges/GenomePlotter/chunk"
)

// RasterizeChromosome draws the classified windows (and their GWAS markers)
// onto a raster canvas and encodes it as PNG. The layout is identical to the
// SVG output's chunk grid.
func RasterizeChromosome(windows []chunk.ClassifiedWindow, pixel int, gwasColor, outName string) error {
	maxX, maxY := 0, 0
	for _, w := range windows {
		if w.X > maxX {
			maxX = w.X
		}
		if w.Y > maxY {
			maxY = w.Y
		}
	}

	// dc represents the drawing canvas.
	dc := gg.NewContext(pixel*(maxX+1), pixel*(maxY+1))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for _, w := range windows {
		dc.SetHexColor(w.Color)
		dc.DrawRectangle(float64(w.X*pixel), float64(w.Y*pixel), float64(pixel), float64(pixel))
		dc.Fill()
	}

	dc.SetHexColor(gwasColor)
	for _, w := range windows {
		if w.GwasHits == 0 {
			continue
		}

		count := w.GwasHits
		if count > gwasCap {
			count = gwasCap
		}
		radius := math.Sqrt(float64(count*count) * circleUnit / math.Pi)

		dc.DrawCircle(float64(w.X*pixel)+radius/2, float64(w.Y*pixel)+radius/2, radius)
		dc.Fill()
	}

	return savePNG(dc, outName)
}

func savePNG(dc *gg.Context, outName string) error {
	f, err := os.OpenFile(outName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(png.Encode(f, dc.Image()))
}
