// preparegenome chunks a reference genome FASTA into fixed-size windows,
// computes the GC content of each window, and writes one gzipped TSV per
// chromosome for the plotting stage. Windows with too many unsequenced bases
// get an undefined GC ratio.
package main

import (
	"compress/gzip"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	genomeplotter "github.com/DSuveges/GenomePlotter"
	"github.com/DSuveges/GenomePlotter/chunk"
	_ "github.com/DSuveges/GenomePlotter/compileinfoprint"
	"github.com/DSuveges/GenomePlotter/sequence"
)

func main() {
	var (
		fastaFile string
		outFolder string
		chunkSize int
		tolerance float64
	)

	flag.StringVar(&fastaFile, "fasta", "", "Path to the genome FASTA file (may be gzipped).")
	flag.StringVar(&outFolder, "out", "", "Folder for the per-chromosome window files.")
	flag.IntVar(&chunkSize, "chunksize", 450, "Window length in base pairs.")
	flag.Float64Var(&tolerance, "tolerance", 0.5, "Fraction of a window that must be sequenced for GC content to be defined.")
	flag.Parse()

	if fastaFile == "" || outFolder == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(outFolder); err != nil {
		log.Fatalln("Output folder is not accessible:", err)
	}

	f, err := genomeplotter.Open(fastaFile)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	log.Println("Chunk size:", chunkSize)
	log.Println("Tolerance for unsequenced bases:", tolerance)

	err = sequence.ProcessFasta(f, chunkSize, tolerance, func(chromosome string, windows []chunk.GenomicWindow) error {
		return writeWindows(outFolder, chromosome, windows)
	})
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("All chromosomes processed.")
}

func writeWindows(folder, chromosome string, windows []chunk.GenomicWindow) error {
	outName := filepath.Join(folder, fmt.Sprintf("chr%s.bed.gz", chromosome))

	f, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	defer gz.Close()

	cw := csv.NewWriter(gz)
	cw.Comma = '\t'

	return gocsv.MarshalCSV(&windows, gocsv.NewSafeCSVWriter(cw))
}
