// Package plotter renders classified windows as a per-chromosome heat map,
// with the GWAS overlay, the cytological band sidebar, and a color legend.
// Output is SVG text or a PNG raster.
package plotter

import (
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// SVG accumulates SVG elements together with the bounding size of the
// drawing. It mirrors the merge/group/translate operations the plot assembly
// needs.
type SVG struct {
	content strings.Builder
	width   float64
	height  float64
}

// NewSVG starts a drawing with the given bounds.
func NewSVG(content string, width, height float64) *SVG {
	s := &SVG{width: width, height: height}
	s.content.WriteString(content)

	return s
}

// Group wraps the current content in a translated group and grows the bounds
// by the translation.
func (s *SVG) Group(dx, dy float64) {
	grouped := fmt.Sprintf("<g transform=\"translate(%g %g)\">\n%s\n</g>\n", dx, dy, s.content.String())
	s.content.Reset()
	s.content.WriteString(grouped)

	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	s.width += dx
	s.height += dy
}

// Append adds raw SVG elements without touching the bounds.
func (s *SVG) Append(svg string) {
	s.content.WriteString(svg)
}

// Merge appends another drawing; the bounds grow to cover both.
func (s *SVG) Merge(other *SVG) {
	s.content.WriteString(other.content.String())

	if other.width > s.width {
		s.width = other.width
	}
	if other.height > s.height {
		s.height = other.height
	}
}

// Rect appends a rectangle element.
func (s *SVG) Rect(x, y, width, height float64, stroke, fill string) {
	fmt.Fprintf(&s.content,
		"<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\" style=\"stroke-width:1;stroke:%s; fill: %s\" />\n",
		x, y, width, height, stroke, fill)
}

// Line appends a line element.
func (s *SVG) Line(x1, y1, x2, y2 float64, stroke string, strokeWidth float64) {
	fmt.Fprintf(&s.content,
		"<line x1=\"%g\" y1=\"%g\" x2=\"%g\" y2=\"%g\" stroke=\"%s\" stroke-width=\"%g\" />\n",
		x1, y1, x2, y2, stroke, strokeWidth)
}

// Text appends a text element.
func (s *SVG) Text(x, y float64, text string, size float64, fill, anchor string) {
	fmt.Fprintf(&s.content,
		"<text x=\"%g\" y=\"%g\" text-anchor=\"%s\" font-family=\"sans-serif\" font-size=\"%gpx\" fill=\"%s\">%s</text>\n",
		x, y, anchor, size, fill, text)
}

// Circle appends a filled circle element.
func (s *SVG) Circle(cx, cy, r float64, color string) {
	fmt.Fprintf(&s.content,
		"<circle cx=\"%g\" cy=\"%g\" r=\"%g\" stroke=\"%s\" stroke-width=\"1\" fill=\"%s\" />\n",
		cx, cy, r, color, color)
}

// Width returns the drawing width.
func (s *SVG) Width() float64 { return s.width }

// Height returns the drawing height.
func (s *SVG) Height() float64 { return s.height }

// Content returns the accumulated elements without the document wrapper.
func (s *SVG) Content() string { return s.content.String() }

// Document wraps the content in a complete SVG document.
func (s *SVG) Document() string {
	return fmt.Sprintf(
		"<svg version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\" xml:space=\"preserve\" width=\"%g\" height=\"%g\">\n%s\n</svg>\n",
		s.width, s.height, s.content.String())
}

// SaveSVG writes the complete document to a file.
func (s *SVG) SaveSVG(path string) error {
	return pfx.Err(os.WriteFile(path, []byte(s.Document()), 0644))
}
