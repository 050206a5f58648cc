package integrator

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/DSuveges/GenomePlotter/annotation"
	"github.com/DSuveges/GenomePlotter/chunk"
	"github.com/DSuveges/GenomePlotter/palette"
)

// GenomeInput bundles the whole-genome annotation datasets before they are
// filtered down to a single chromosome.
type GenomeInput struct {
	Gencode  []annotation.IntervalFeature
	Cytoband []annotation.Cytoband
	GwasHits []annotation.GwasHit
}

// ChromosomeDatasets filters the genome-wide inputs down to the named
// chromosome and splits GENCODE rows into gene and exon interval sets.
func ChromosomeDatasets(in GenomeInput, chromosome string) Datasets {
	gencode := annotation.FilterChromosome(in.Gencode, chromosome)

	data := Datasets{
		Genes:    annotation.FilterType(gencode, chunk.FeatureGene),
		Exons:    annotation.FilterType(gencode, chunk.FeatureExon),
		GwasHits: annotation.GwasChromosome(in.GwasHits, chromosome),
	}

	if centromere, ok := annotation.CentromereSpan(in.Cytoband, chromosome); ok {
		data.Centromeres = []annotation.IntervalFeature{centromere}
	}

	return data
}

// ClassifyGenome classifies every chromosome in windows concurrently, one
// task per chromosome. Classification is a pure computation, so this is
// strictly a throughput optimization; results are identical to sequential
// calls of Classify.
func ClassifyGenome(ctx context.Context, windows map[string][]chunk.GenomicWindow, in GenomeInput, picker *palette.Picker, width int) (map[string][]chunk.ClassifiedWindow, error) {
	var (
		mu  sync.Mutex
		out = make(map[string][]chunk.ClassifiedWindow, len(windows))
	)

	g, _ := errgroup.WithContext(ctx)

	for chromosome, chromWindows := range windows {
		chromosome, chromWindows := chromosome, chromWindows

		g.Go(func() error {
			classified, err := Classify(chromWindows, ChromosomeDatasets(in, chromosome), picker, width)
			if err != nil {
				return err
			}

			mu.Lock()
			out[chromosome] = classified
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
