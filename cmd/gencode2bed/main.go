// gencode2bed flattens a GENCODE gtf file into the processed gene/exon TSV
// consumed by the plotting stage. Only protein coding genes are kept; per
// gene, the gene span is emitted as one row and the exons of the gene's
// canonical transcript as one row each.
// Requires a 2-pass approach: canonical transcripts are chosen first.
package main

import (
	"compress/gzip"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"

	genomeplotter "github.com/DSuveges/GenomePlotter"
	_ "github.com/DSuveges/GenomePlotter/compileinfoprint"
)

func main() {
	var (
		filename string
		outName  string
	)

	flag.StringVar(&filename, "file", "", "Path to the GENCODE gtf file to flatten (may be gzipped).")
	flag.StringVar(&outName, "out", "GENCODE.processed.bed.gz", "Output TSV path.")
	flag.Parse()

	if filename == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Println("Pass 1: choosing canonical transcripts")
	canonical, err := ChooseCanonicalTranscripts(filename)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Protein coding genes found:", len(canonical))

	log.Println("Pass 2: writing gene and exon intervals")
	if err := WriteIntervals(filename, outName, canonical); err != nil {
		log.Fatalln(err)
	}
}

// ChooseCanonicalTranscripts maps each protein coding gene to its canonical
// transcript: the protein coding transcript with the longest genomic span,
// which approximates the Ensembl longest-CDS rule without a third pass.
func ChooseCanonicalTranscripts(filename string) (map[string]string, error) {
	type candidate struct {
		transcriptID string
		span         int
	}
	best := make(map[string]candidate)

	err := EachFeature(filename, func(f GtfFeature) error {
		if f.Type != "transcript" || f.Attributes["transcript_type"] != "protein_coding" {
			return nil
		}

		geneID := f.Attributes["gene_id"]
		span := f.End - f.Start
		if prev, ok := best[geneID]; !ok || span > prev.span {
			best[geneID] = candidate{transcriptID: f.Attributes["transcript_id"], span: span}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	canonical := make(map[string]string, len(best))
	for geneID, c := range best {
		canonical[geneID] = c.transcriptID
	}

	return canonical, nil
}

// WriteIntervals emits the processed rows: one per protein coding gene span,
// one per canonical-transcript exon.
func WriteIntervals(filename, outName string, canonical map[string]string) error {
	f, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	w := csv.NewWriter(gz)
	w.Comma = '\t'
	defer w.Flush()

	w.Write([]string{"chr", "start", "end", "gene_id", "gene_name", "transcript_id", "type"})

	var genes, exons int

	err = EachFeature(filename, func(f GtfFeature) error {
		geneID := f.Attributes["gene_id"]
		transcriptID, isProteinCoding := canonical[geneID]

		if !isProteinCoding {
			return nil
		}

		chrom := genomeplotter.NormalizeChromosome(f.Chromosome)
		if !genomeplotter.IsCanonicalChromosome(chrom) {
			return nil
		}

		switch f.Type {
		case "gene":
			genes++
			return w.Write([]string{
				chrom,
				// GTF coordinates are 1-based inclusive; the processed
				// files use 0-based half-open.
				strconv.Itoa(f.Start - 1), strconv.Itoa(f.End),
				geneID, f.Attributes["gene_name"], "", "gene",
			})
		case "exon":
			if f.Attributes["transcript_id"] != transcriptID {
				return nil
			}
			exons++
			return w.Write([]string{
				chrom,
				strconv.Itoa(f.Start - 1), strconv.Itoa(f.End),
				geneID, f.Attributes["gene_name"], transcriptID, "exon",
			})
		}

		return nil
	})
	if err != nil {
		return err
	}

	log.Println("Wrote", genes, "gene and", exons, "exon intervals to", outName)

	return nil
}
