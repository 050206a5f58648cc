package annotation

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	genomeplotter "github.com/DSuveges/GenomePlotter"
)

func readTSV(path string, out interface{}) error {
	f, err := genomeplotter.Open(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(decodeTSV(f, out))
}

func decodeTSV(r io.Reader, out interface{}) error {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true

	return gocsv.UnmarshalCSV(cr, out)
}

// ReadGencode loads the processed GENCODE file (gene and exon intervals for
// protein coding genes) and validates every interval.
func ReadGencode(path string) ([]IntervalFeature, error) {
	features := make([]IntervalFeature, 0)
	if err := readTSV(path, &features); err != nil {
		return nil, err
	}

	if err := ValidateIntervals(features); err != nil {
		return nil, pfx.Err(err)
	}

	return features, nil
}

// ReadCytobands loads the processed cytological band file.
func ReadCytobands(path string) ([]Cytoband, error) {
	bands := make([]Cytoband, 0)
	if err := readTSV(path, &bands); err != nil {
		return nil, err
	}

	return bands, nil
}

// ReadGwas loads the processed GWAS association file.
func ReadGwas(path string) ([]GwasHit, error) {
	hits := make([]GwasHit, 0)
	if err := readTSV(path, &hits); err != nil {
		return nil, err
	}

	return hits, nil
}
