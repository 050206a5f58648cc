package plotter

import (
	"fmt"
	"strings"

	"github.com/DSuveges/GenomePlotter/annotation"
)

// CytobandSidebar draws the karyotype sidebar for one chromosome: one box per
// Giemsa band, labeled, with the centromeric "acen" bands drawn as triangles
// facing each other. The vertical scale matches the chunk grid so that the
// sidebar lines up with the heat map rows.
func CytobandSidebar(bands []annotation.Cytoband, chromosome string, pixel, chunkSize, width int, colors map[string]string) *SVG {
	var (
		xOffset     = float64(pixel * 40)
		fontSize    = float64(pixel * 9)
		borderWidth = float64(pixel) / 2
		boxWidth    = float64(pixel * 5)
		rightMargin = float64(pixel * 4)
		halfPoint   = boxWidth/2 + xOffset
	)

	scale := func(pos int) float64 {
		return float64(pos) / float64(chunkSize) / float64(width) * float64(pixel)
	}

	border := colors["border"]

	s := NewSVG("", 0, 0)
	maxY := 0.0

	for _, band := range bands {
		if band.Chromosome != chromosome {
			continue
		}

		startY, endY := scale(band.Start), scale(band.End)
		if endY > maxY {
			maxY = endY
		}

		switch {
		case band.Type == "acen" && strings.HasPrefix(band.Name, "p"):
			s.Append(centromereTriangle(xOffset, startY, xOffset+boxWidth, startY, halfPoint, endY,
				colors["acen"], border, borderWidth))
		case band.Type == "acen":
			s.Append(centromereTriangle(xOffset, endY, xOffset+boxWidth, endY, halfPoint, startY,
				colors["acen"], border, borderWidth))
		default:
			fill, ok := colors[band.Type]
			if !ok {
				fill = colors["gneg"]
			}
			s.Rect(xOffset, startY, boxWidth, endY-startY, border, fill)
		}

		// Centromeric bands stay unlabeled.
		if band.Type != "acen" {
			s.Text(xOffset*0.8, startY+(endY-startY)/2, band.Name, fontSize, border, "end")
		}
	}

	s.width = xOffset + boxWidth + rightMargin
	s.height = maxY

	return s
}

func centromereTriangle(x1, y1, x2, y2, x3, y3 float64, fill, border string, borderWidth float64) string {
	return fmt.Sprintf(
		"<polygon points=\"%g,%g %g,%g %g,%g\" style=\"fill:%s;stroke:%s;stroke-width:%g;fill-rule:nonzero;\" />\n",
		x1, y1, x2, y2, x3, y3, fill, border, borderWidth)
}
