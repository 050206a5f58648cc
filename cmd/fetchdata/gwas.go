package main

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"

	genomeplotter "github.com/DSuveges/GenomePlotter"
)

// FetchGwas streams the GWAS catalog association download and writes the
// processed hit TSV: chromosome, half-open single-base interval, rsID, and
// trait. Associations without a mapped single position or without an rsID are
// dropped, as are multi-chromosome mappings.
func FetchGwas(url, outFolder string) (int, error) {
	resp, err := http.Get(url)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("GWAS catalog returned status %s", resp.Status)
	}

	outName := filepath.Join(outFolder, "processed_GWAS.bed.gz")
	f, err := os.Create(outName)
	if err != nil {
		return 0, pfx.Err(err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	w := csv.NewWriter(gz)
	w.Comma = '\t'
	defer w.Flush()

	w.Write([]string{"#chr", "start", "end", "rsID", "trait"})

	return processAssociations(resp.Body, w)
}

func processAssociations(in io.Reader, w *csv.Writer) (int, error) {
	cr := csv.NewReader(in)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header := make(map[string]int)
	kept := 0

	for i := 0; ; i++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, fmt.Errorf("association row %d: %w", i, err)
		}

		if i == 0 {
			for col, name := range rec {
				header[name] = col
			}
			for _, required := range []string{"CHR_ID", "CHR_POS", "SNPS", "DISEASE/TRAIT"} {
				if _, ok := header[required]; !ok {
					return 0, fmt.Errorf("association header lacks column %q", required)
				}
			}
			continue
		}

		chrom := rec[header["CHR_ID"]]
		pos := rec[header["CHR_POS"]]
		snp := rec[header["SNPS"]]

		// Multi-position mappings carry separators; interactions carry "x".
		if chrom == "" || pos == "" ||
			strings.Contains(chrom, ";") || strings.Contains(chrom, "x") ||
			!strings.Contains(strings.ToLower(snp), "rs") {
			continue
		}
		if !genomeplotter.IsCanonicalChromosome(chrom) {
			continue
		}

		position, err := strconv.Atoi(pos)
		if err != nil {
			continue
		}

		kept++
		if err := w.Write([]string{
			chrom,
			strconv.Itoa(position), strconv.Itoa(position + 1),
			snp, rec[header["DISEASE/TRAIT"]],
		}); err != nil {
			return 0, pfx.Err(err)
		}
	}

	return kept, nil
}
