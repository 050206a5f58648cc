// Package integrator implements the chunk classifier: it reduces the
// many-to-one overlap between annotation intervals and genomic windows into
// exactly one feature category, one display color, and one GWAS hit count per
// window.
package integrator

import (
	"fmt"

	"github.com/carbocation/pfx"

	"github.com/DSuveges/GenomePlotter/annotation"
	"github.com/DSuveges/GenomePlotter/chunk"
	"github.com/DSuveges/GenomePlotter/overlap"
	"github.com/DSuveges/GenomePlotter/palette"
)

// Datasets are the annotation inputs for one chromosome. Any of the slices
// may be empty; classification degrades gracefully (everything that is not
// heterochromatin becomes intergenic).
type Datasets struct {
	Genes       []annotation.IntervalFeature
	Exons       []annotation.IntervalFeature
	Centromeres []annotation.IntervalFeature
	GwasHits    []annotation.GwasHit
}

// indexes holds the per-chromosome read-only interval indexes. Safe to share
// across goroutines once built.
type indexes struct {
	genes       *overlap.Index
	exons       *overlap.Index
	centromeres *overlap.Index
	gwas        *overlap.Index
}

func buildIndexes(data Datasets) (*indexes, error) {
	var (
		idx indexes
		err error
	)

	if idx.genes, err = featureIndex(data.Genes); err != nil {
		return nil, fmt.Errorf("genes: %w", err)
	}
	if idx.exons, err = featureIndex(data.Exons); err != nil {
		return nil, fmt.Errorf("exons: %w", err)
	}
	if idx.centromeres, err = featureIndex(data.Centromeres); err != nil {
		return nil, fmt.Errorf("centromeres: %w", err)
	}
	if idx.gwas, err = gwasIndex(data.GwasHits); err != nil {
		return nil, fmt.Errorf("gwas hits: %w", err)
	}

	return &idx, nil
}

func featureIndex(features []annotation.IntervalFeature) (*overlap.Index, error) {
	spans := make([]overlap.Span, 0, len(features))
	for _, f := range features {
		spans = append(spans, overlap.Span{Start: f.Start, End: f.End})
	}

	return overlap.NewIndex(spans)
}

func gwasIndex(hits []annotation.GwasHit) (*overlap.Index, error) {
	spans := make([]overlap.Span, 0, len(hits))
	for _, h := range hits {
		end := h.End
		if end <= h.Start {
			// Hits are points; widen to a one-base interval.
			end = h.Start + 1
		}
		spans = append(spans, overlap.Span{Start: h.Start, End: end})
	}

	return overlap.NewIndex(spans)
}

// classifyWindow applies the fixed precedence order: undefined GC beats every
// annotation, centromere overrides exon and gene, exon is more specific than
// gene, and anything unannotated is intergenic.
func classifyWindow(w chunk.GenomicWindow, idx *indexes) chunk.Feature {
	switch {
	case !w.GC.Defined:
		return chunk.FeatureHeterochromatin
	case idx.centromeres.AnyOverlap(w.Start, w.End):
		return chunk.FeatureCentromere
	case idx.exons.AnyOverlap(w.Start, w.End):
		return chunk.FeatureExon
	case idx.genes.AnyOverlap(w.Start, w.End):
		return chunk.FeatureGene
	}

	return chunk.FeatureIntergenic
}

// Classify transforms one chromosome's ordered window list into classified,
// colored windows ready for rendering. The output is total: one classified
// window per input window, in input order. Row coordinates are assigned with
// the given row width; a width of zero lays every window out in a single row.
func Classify(windows []chunk.GenomicWindow, data Datasets, picker *palette.Picker, width int) ([]chunk.ClassifiedWindow, error) {
	if err := chunk.ValidateWindows(windows); err != nil {
		return nil, pfx.Err(err)
	}

	if width <= 0 {
		width = len(windows)
	}

	idx, err := buildIndexes(data)
	if err != nil {
		return nil, pfx.Err(err)
	}

	classified := make([]chunk.ClassifiedWindow, 0, len(windows))
	for i, w := range windows {
		x, y := i%width, i/width

		feature := classifyWindow(w, idx)
		color, err := picker.Pick(feature, w.GC, x)
		if err != nil {
			return nil, fmt.Errorf("window %d (%s:%d-%d): %w", i, w.Chromosome, w.Start, w.End, err)
		}

		classified = append(classified, chunk.ClassifiedWindow{
			GenomicWindow: w,
			X:             x,
			Y:             y,
			Feature:       feature,
			Color:         color,
			GwasHits:      idx.gwas.Count(w.Start, w.End),
		})
	}

	return classified, nil
}

// ClassifyDummy assigns the dummy category to every window, except windows
// overlapping a centromere, which keep the centromere category so the
// silhouette shows the constriction at the right place.
func ClassifyDummy(windows []chunk.GenomicWindow, centromeres []annotation.IntervalFeature, picker *palette.Picker, width int) ([]chunk.ClassifiedWindow, error) {
	if err := chunk.ValidateWindows(windows); err != nil {
		return nil, pfx.Err(err)
	}

	if width <= 0 {
		width = len(windows)
	}

	centromereIdx, err := featureIndex(centromeres)
	if err != nil {
		return nil, pfx.Err(err)
	}

	classified := make([]chunk.ClassifiedWindow, 0, len(windows))
	for i, w := range windows {
		feature := chunk.FeatureDummy
		if centromereIdx.AnyOverlap(w.Start, w.End) {
			feature = chunk.FeatureCentromere
		}

		color, err := picker.BaseColor(feature)
		if err != nil {
			return nil, pfx.Err(err)
		}

		classified = append(classified, chunk.ClassifiedWindow{
			GenomicWindow: w,
			X:             i % width,
			Y:             i / width,
			Feature:       feature,
			Color:         color,
		})
	}

	return classified, nil
}
