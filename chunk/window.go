// Package chunk defines the fixed-width genomic windows that tile a
// chromosome, along with their classified form consumed by the plotter.
package chunk

import (
	"fmt"
	"math"
	"strconv"
)

// Feature is the categorical label assigned to one genomic window. Every
// classified window carries exactly one of these.
type Feature string

const (
	FeatureCentromere      Feature = "centromere"
	FeatureHeterochromatin Feature = "heterochromatin"
	FeatureExon            Feature = "exon"
	FeatureGene            Feature = "gene"
	FeatureIntergenic      Feature = "intergenic"

	// FeatureDummy is used when rendering a featureless chromosome
	// silhouette with correct dimensions.
	FeatureDummy Feature = "dummy"
)

// Features lists the categories a classified window may carry, in precedence
// order (first match wins during classification).
var Features = []Feature{
	FeatureHeterochromatin,
	FeatureCentromere,
	FeatureExon,
	FeatureGene,
	FeatureIntergenic,
}

// GCRatio is the GC content of a window in [0,1], or undefined when too much
// of the window was unsequenced. The zero value is undefined.
type GCRatio struct {
	Value   float64
	Defined bool
}

// GC returns a defined ratio.
func GC(v float64) GCRatio {
	return GCRatio{Value: v, Defined: true}
}

// UndefinedGC returns the undefined marker.
func UndefinedGC() GCRatio {
	return GCRatio{}
}

// UnmarshalCSV parses the GC_ratio column of the processed chromosome files.
// An empty field, "NA", or "NaN" marks an undefined ratio.
func (gc *GCRatio) UnmarshalCSV(field string) error {
	switch field {
	case "", "NA", "NaN", "nan", "None":
		*gc = GCRatio{}
		return nil
	}

	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		*gc = GCRatio{}
		return nil
	}

	*gc = GCRatio{Value: v, Defined: true}
	return nil
}

// MarshalCSV renders the ratio the way the processed files store it.
func (gc GCRatio) MarshalCSV() (string, error) {
	if !gc.Defined {
		return "NA", nil
	}

	return strconv.FormatFloat(gc.Value, 'f', -1, 64), nil
}

// GenomicWindow is one fixed-length, non-overlapping tile of a chromosome.
// Coordinates are 0-based, half-open.
type GenomicWindow struct {
	Chromosome string  `csv:"chr"`
	Start      int     `csv:"start"`
	End        int     `csv:"end"`
	GC         GCRatio `csv:"GC_ratio"`
}

// ClassifiedWindow is a GenomicWindow after classification: it carries its
// plot-row coordinates, its single feature category, the final display color,
// and the number of GWAS hits falling inside the window.
type ClassifiedWindow struct {
	GenomicWindow
	X        int     `csv:"x"`
	Y        int     `csv:"y"`
	Feature  Feature `csv:"GENCODE"`
	Color    string  `csv:"color"`
	GwasHits int     `csv:"gwas_hits"`
}

// ValidateWindows checks the structural invariants of a window list before
// classification: at least one window, a single chromosome, start < end on
// every window, contiguous non-overlapping tiling, and every defined GC ratio
// within [0,1]. The returned error names the offending record and field.
func ValidateWindows(windows []GenomicWindow) error {
	if len(windows) == 0 {
		return fmt.Errorf("window list is empty")
	}

	chrom := windows[0].Chromosome

	for i, w := range windows {
		if w.Chromosome != chrom {
			return fmt.Errorf("window %d: chromosome %q differs from %q", i, w.Chromosome, chrom)
		}
		if w.Start >= w.End {
			return fmt.Errorf("window %d: start %d >= end %d", i, w.Start, w.End)
		}
		if i > 0 && w.Start != windows[i-1].End {
			return fmt.Errorf("window %d: start %d breaks contiguity with previous end %d", i, w.Start, windows[i-1].End)
		}
		if w.GC.Defined && (w.GC.Value < 0 || w.GC.Value > 1) {
			return fmt.Errorf("window %d: GC_ratio %f outside [0,1]", i, w.GC.Value)
		}
	}

	return nil
}
