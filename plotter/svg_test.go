package plotter

import (
	"strings"
	"testing"

	"github.com/DSuveges/GenomePlotter/annotation"
	"github.com/DSuveges/GenomePlotter/chunk"
)

func TestSVGGroupAndMerge(t *testing.T) {
	s := NewSVG("", 100, 50)
	s.Rect(0, 0, 10, 10, "#000000", "#ff0000")

	s.Group(20, 30)
	if !strings.Contains(s.Content(), "translate(20 30)") {
		t.Errorf("group did not wrap content: %q", s.Content())
	}
	if s.Width() != 120 || s.Height() != 80 {
		t.Errorf("bounds after group: %gx%g, want 120x80", s.Width(), s.Height())
	}

	other := NewSVG("", 300, 40)
	other.Circle(5, 5, 2, "#00ff00")

	s.Merge(other)
	if s.Width() != 300 || s.Height() != 80 {
		t.Errorf("bounds after merge: %gx%g, want 300x80", s.Width(), s.Height())
	}
	if !strings.Contains(s.Content(), "<circle") {
		t.Error("merge dropped the other drawing's content")
	}
}

func TestSVGDocument(t *testing.T) {
	s := NewSVG("", 40, 20)
	s.Rect(0, 0, 10, 10, "#000000", "#ffffff")

	doc := s.Document()
	if !strings.HasPrefix(doc, "<svg ") || !strings.HasSuffix(strings.TrimSpace(doc), "</svg>") {
		t.Errorf("document not wrapped: %q", doc)
	}
	if !strings.Contains(doc, `width="40"`) || !strings.Contains(doc, `height="20"`) {
		t.Errorf("document lacks dimensions: %q", doc)
	}
}

func classifiedGrid(width, rows int) []chunk.ClassifiedWindow {
	out := make([]chunk.ClassifiedWindow, 0, width*rows)
	for i := 0; i < width*rows; i++ {
		w := chunk.ClassifiedWindow{
			X:       i % width,
			Y:       i / width,
			Feature: chunk.FeatureIntergenic,
			Color:   "#a3e0d1",
		}
		w.Chromosome = "1"
		w.Start = i * 450
		w.End = (i + 1) * 450
		out = append(out, w)
	}

	return out
}

func TestDrawChromosome(t *testing.T) {
	windows := classifiedGrid(10, 4)
	// Mark one row centromeric so the cutout is drawn.
	for i := 10; i < 20; i++ {
		windows[i].Feature = chunk.FeatureCentromere
		windows[i].Color = "#9393ff"
	}

	s := DrawChromosome(windows, 9)

	if s.Width() != 90 || s.Height() != 36 {
		t.Errorf("bounds %gx%g, want 90x36", s.Width(), s.Height())
	}
	if got := strings.Count(s.Content(), "<rect"); got != 40 {
		t.Errorf("drew %d rectangles, want one per window (40)", got)
	}
	if !strings.Contains(s.Content(), `id="centromere"`) {
		t.Error("centromere cutout missing")
	}
}

func TestDrawChromosomeWithoutCentromere(t *testing.T) {
	s := DrawChromosome(classifiedGrid(5, 2), 9)
	if strings.Contains(s.Content(), `id="centromere"`) {
		t.Error("cutout drawn for a region without centromere windows")
	}
}

func TestDrawDummy(t *testing.T) {
	windows := classifiedGrid(10, 4)
	for i := range windows {
		windows[i].Feature = chunk.FeatureDummy
		windows[i].Color = "#c0c0c0"
	}
	for i := 10; i < 20; i++ {
		windows[i].Feature = chunk.FeatureCentromere
		windows[i].Color = "#9393ff"
	}

	s := DrawDummy(windows, 9)

	if s.Width() != 90 || s.Height() != 36 {
		t.Errorf("bounds %gx%g, want 90x36", s.Width(), s.Height())
	}
	if !strings.Contains(s.Content(), "#c0c0c0") {
		t.Error("silhouette rectangle missing")
	}
	if !strings.Contains(s.Content(), "#9393ff") {
		t.Error("centromere band missing")
	}
}

func TestGwasOverlay(t *testing.T) {
	windows := classifiedGrid(10, 2)
	windows[3].GwasHits = 2
	windows[7].GwasHits = 50

	s := GwasOverlay(windows, 9, "#000000")

	if got := strings.Count(s.Content(), "<circle"); got != 2 {
		t.Errorf("drew %d circles, want 2", got)
	}

	// The 50-hit window draws the same circle a 10-hit window would.
	capped := classifiedGrid(10, 2)
	capped[7].GwasHits = 10
	want := GwasOverlay(capped, 9, "#000000").Content()
	if want == "" || !strings.Contains(s.Content(), strings.TrimSpace(want)) {
		t.Error("capped overlay differs from a 10-hit overlay")
	}
}

func TestCytobandSidebar(t *testing.T) {
	bands := []annotation.Cytoband{
		{Chromosome: "1", Start: 0, End: 900000, Name: "p36", Type: "gneg"},
		{Chromosome: "1", Start: 900000, End: 1350000, Name: "p11.1", Type: "acen"},
		{Chromosome: "1", Start: 1350000, End: 1800000, Name: "q11.1", Type: "acen"},
		{Chromosome: "1", Start: 1800000, End: 2700000, Name: "q12", Type: "gpos50"},
		{Chromosome: "2", Start: 0, End: 500000, Name: "p25", Type: "gneg"},
	}
	colors := map[string]string{
		"gneg":   "#ffffff",
		"gpos50": "#808080",
		"acen":   "#8b2323",
		"border": "#000000",
	}

	s := CytobandSidebar(bands, "1", 9, 450, 200, colors)

	// Two acen bands become triangles, the other two bands boxes.
	if got := strings.Count(s.Content(), "<polygon"); got != 2 {
		t.Errorf("drew %d triangles, want 2", got)
	}
	if got := strings.Count(s.Content(), "<rect"); got != 2 {
		t.Errorf("drew %d band boxes, want 2", got)
	}

	// Bands of the other chromosome and acen labels stay out.
	if strings.Contains(s.Content(), "p25") {
		t.Error("band of another chromosome drawn")
	}
	if strings.Contains(s.Content(), "p11.1") {
		t.Error("acen band labeled")
	}
	if !strings.Contains(s.Content(), "q12") {
		t.Error("band label missing")
	}

	// Height follows the chunk-grid scale: 2700000/450/200*9.
	if s.Height() != 270 {
		t.Errorf("sidebar height %g, want 270", s.Height())
	}
}

func TestDrawLegend(t *testing.T) {
	colors := map[chunk.Feature]string{
		chunk.FeatureExon:            "#ffd326",
		chunk.FeatureGene:            "#6cb8cc",
		chunk.FeatureCentromere:      "#9393ff",
		chunk.FeatureHeterochromatin: "#f9d2c2",
	}

	s, err := DrawLegend(colors, 9)
	if err != nil {
		t.Fatal(err)
	}

	// Four categories, 20 gradient boxes each.
	if got := strings.Count(s.Content(), "<rect"); got != 80 {
		t.Errorf("drew %d gradient boxes, want 80", got)
	}
	for _, label := range []string{"Exons", "Introns", "Centromere", "Heterochromatic region"} {
		if !strings.Contains(s.Content(), label) {
			t.Errorf("label %q missing", label)
		}
	}
	for _, mark := range []string{"0%", "50%", "100%"} {
		if !strings.Contains(s.Content(), mark) {
			t.Errorf("guide mark %q missing", mark)
		}
	}

	// Only the exon and gene strips fade to white; the flat strips never do.
	if got := strings.Count(s.Content(), "fill: #ffffff"); got != 2 {
		t.Errorf("counted %d white boxes, want 2", got)
	}
}
