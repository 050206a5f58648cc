// Package annotation holds the interval and point datasets that decorate the
// genome: GENCODE gene/exon intervals, cytological bands, and GWAS catalog
// hits, together with their processed-TSV readers.
package annotation

import (
	"fmt"

	"github.com/DSuveges/GenomePlotter/chunk"
)

// IntervalFeature is a half-open genomic interval tagged with a feature type.
// The processed GENCODE file stores one row per gene span and one per exon of
// the gene's canonical transcript.
type IntervalFeature struct {
	Chromosome   string        `csv:"chr"`
	Start        int           `csv:"start"`
	End          int           `csv:"end"`
	GeneID       string        `csv:"gene_id"`
	GeneName     string        `csv:"gene_name"`
	TranscriptID string        `csv:"transcript_id"`
	Type         chunk.Feature `csv:"type"`
}

// GwasHit is a single genome-wide association signal.
type GwasHit struct {
	Chromosome string `csv:"#chr"`
	Start      int    `csv:"start"`
	End        int    `csv:"end"`
	RsID       string `csv:"rsID"`
	Trait      string `csv:"trait"`
}

// Cytoband is one Giemsa band. Bands typed "acen" are centromeric and are the
// only ones that participate in window classification; the rest are drawn in
// the karyotype sidebar.
type Cytoband struct {
	Chromosome string `csv:"chr"`
	Start      int    `csv:"start"`
	End        int    `csv:"end"`
	Name       string `csv:"name"`
	Type       string `csv:"type"`
}

// ValidateIntervals rejects malformed interval records. The classifier
// assumes well-formed inputs and refuses to guess.
func ValidateIntervals(features []IntervalFeature) error {
	for i, f := range features {
		if f.Start >= f.End {
			return fmt.Errorf("interval %d (%s %s:%d-%d): start >= end", i, f.GeneID, f.Chromosome, f.Start, f.End)
		}
	}

	return nil
}

// FilterChromosome keeps the features on the named chromosome.
func FilterChromosome(features []IntervalFeature, chromosome string) []IntervalFeature {
	out := make([]IntervalFeature, 0, len(features))
	for _, f := range features {
		if f.Chromosome == chromosome {
			out = append(out, f)
		}
	}

	return out
}

// FilterType keeps the features of one type (gene or exon).
func FilterType(features []IntervalFeature, t chunk.Feature) []IntervalFeature {
	out := make([]IntervalFeature, 0, len(features))
	for _, f := range features {
		if f.Type == t {
			out = append(out, f)
		}
	}

	return out
}

// CentromereSpan returns the centromere of the given chromosome as a single
// interval spanning all of its "acen" bands. The boolean is false when the
// chromosome has no centromeric band in the cytoband set.
func CentromereSpan(bands []Cytoband, chromosome string) (IntervalFeature, bool) {
	start, end := -1, -1
	for _, b := range bands {
		if b.Chromosome != chromosome || b.Type != "acen" {
			continue
		}
		if start < 0 || b.Start < start {
			start = b.Start
		}
		if b.End > end {
			end = b.End
		}
	}

	if start < 0 {
		return IntervalFeature{}, false
	}

	return IntervalFeature{
		Chromosome: chromosome,
		Start:      start,
		End:        end,
		Type:       chunk.FeatureCentromere,
	}, true
}

// GwasChromosome keeps the hits on the named chromosome.
func GwasChromosome(hits []GwasHit, chromosome string) []GwasHit {
	out := make([]GwasHit, 0, len(hits))
	for _, h := range hits {
		if h.Chromosome == chromosome {
			out = append(out, h)
		}
	}

	return out
}
